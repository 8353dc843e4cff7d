package planilla

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Fila is one spreadsheet data row: column header → cell value, as found.
type Fila map[string]string

// FilaLeida pairs a data row with its 1-based spreadsheet row number
// (header row = 1, first data row = 2), so per-row errors can reference
// the line the user sees in Excel even when blank rows were skipped.
type FilaLeida struct {
	Numero int
	Celdas Fila
}

// Hoja is one parsed worksheet. Filas may be empty; that is the per-sheet
// "sin datos" condition and is for the caller to report, not a read error.
type Hoja struct {
	Nombre string
	Filas  []FilaLeida
}

// LeerLibro parses an uploaded xlsx buffer into one Hoja per worksheet,
// in workbook order. The first row of each sheet is treated as the header.
func LeerLibro(r io.Reader) ([]Hoja, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("no se pudo abrir el archivo: %w", err)
	}
	defer f.Close()

	var hojas []Hoja
	for _, nombre := range f.GetSheetList() {
		filas, err := f.GetRows(nombre)
		if err != nil {
			return nil, fmt.Errorf("no se pudo leer la hoja %q: %w", nombre, err)
		}
		hojas = append(hojas, Hoja{Nombre: nombre, Filas: filasDesdeCeldas(filas)})
	}
	return hojas, nil
}

// filasDesdeCeldas zips the header row with each data row. Cells beyond the
// header width are dropped; missing trailing cells are simply absent keys.
// Fully blank rows (a common Excel artifact) are discarded without consuming
// an error slot, but the remaining rows keep their real spreadsheet numbers.
func filasDesdeCeldas(celdas [][]string) []FilaLeida {
	if len(celdas) < 2 {
		return nil
	}
	encabezados := celdas[0]
	filas := make([]FilaLeida, 0, len(celdas)-1)
	for i, fila := range celdas[1:] {
		obj := make(Fila, len(encabezados))
		vacia := true
		for j, h := range encabezados {
			h = strings.TrimSpace(h)
			if h == "" || j >= len(fila) {
				continue
			}
			obj[h] = fila[j]
			if strings.TrimSpace(fila[j]) != "" {
				vacia = false
			}
		}
		if !vacia {
			filas = append(filas, FilaLeida{Numero: i + 2, Celdas: obj})
		}
	}
	return filas
}
