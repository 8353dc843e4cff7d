package planilla

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"
)

// anchoMaximo caps derived column widths; Excel tops out at 255 anyway.
const anchoMaximo = 60

// Libro wraps an excelize workbook being assembled for export.
type Libro struct {
	f       *excelize.File
	primera bool
}

// NuevoLibro returns an empty export workbook.
func NuevoLibro() *Libro {
	return &Libro{f: excelize.NewFile(), primera: true}
}

// AgregarHoja adds one sheet with a header row, data rows, and column widths
// derived from the longest value (header or cell) per column.
func (l *Libro) AgregarHoja(nombre string, encabezados []string, filas [][]any) error {
	if err := l.nuevaHoja(nombre); err != nil {
		return err
	}

	anchos := make([]int, len(encabezados))
	for i, h := range encabezados {
		celda, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := l.f.SetCellValue(nombre, celda, h); err != nil {
			return err
		}
		anchos[i] = len(h)
	}

	for r, fila := range filas {
		for c, valor := range fila {
			celda, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := l.f.SetCellValue(nombre, celda, valor); err != nil {
				return err
			}
			if c < len(anchos) {
				if n := len(fmt.Sprint(valor)); n > anchos[c] {
					anchos[c] = n
				}
			}
		}
	}

	for i, ancho := range anchos {
		if ancho > anchoMaximo {
			ancho = anchoMaximo
		}
		col, _ := excelize.ColumnNumberToName(i + 1)
		_ = l.f.SetColWidth(nombre, col, col, float64(ancho+2))
	}
	return nil
}

// AgregarHojaSinDatos emits a placeholder sheet with a single marker row, so
// an empty table still appears in the backup instead of silently vanishing.
func (l *Libro) AgregarHojaSinDatos(nombre string) error {
	return l.AgregarHoja(nombre, []string{"aviso"}, [][]any{{"SIN DATOS"}})
}

// AgregarHojaError emits a "<tabla>_error" sheet carrying the failure message
// and a timestamp, so one broken query never aborts the whole export.
func (l *Libro) AgregarHojaError(tabla string, causa error) error {
	return l.AgregarHoja(tabla+"_error", []string{"error", "fecha"},
		[][]any{{causa.Error(), time.Now().Format(time.RFC3339)}})
}

// Escribir streams the finished workbook.
func (l *Libro) Escribir(w io.Writer) error {
	return l.f.Write(w)
}

// nuevaHoja renames the default Sheet1 on first use, creates afterwards.
func (l *Libro) nuevaHoja(nombre string) error {
	if l.primera {
		l.primera = false
		return l.f.SetSheetName("Sheet1", nombre)
	}
	_, err := l.f.NewSheet(nombre)
	return err
}
