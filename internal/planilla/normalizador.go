package planilla

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// BuscarTipoPorNombre resolves a product-category name to its id. It is
// injected by the caller so this package stays free of database concerns.
type BuscarTipoPorNombre func(nombre string) (int, error)

// Registro is a normalized row: target column name → coerced value.
// Value types by column class: string, decimal.Decimal, int, bool, *time.Time.
type Registro map[string]any

// layoutsFecha are tried in order; the first that parses wins.
var layoutsFecha = []string{
	"2006-01-02", "02/01/2006", "2/1/2006", "01-02-06",
	"2006-01-02T15:04:05Z07:00", "02-01-2006",
}

// Normalizar reconciles one spreadsheet row against a table schema: it locates
// each source cell (case-insensitive header match, then aliases), coerces the
// value by column class, and validates required columns. A failure returns an
// error referencing the row's 1-based spreadsheet number; the caller records
// it and continues with the next row.
func Normalizar(esq *Esquema, fila FilaLeida, buscarTipo BuscarTipoPorNombre) (Registro, error) {
	var faltantes []string
	reg := make(Registro, len(esq.Columnas))

	for _, col := range esq.Columnas {
		crudo, presente := localizar(fila.Celdas, col)

		// Zero and false count as present; only a truly empty cell is missing.
		if col.Requerida && (!presente || strings.TrimSpace(crudo) == "") {
			faltantes = append(faltantes, col.Nombre)
			continue
		}

		valor, err := coercionar(col, crudo, presente, fila.Celdas, buscarTipo)
		if err != nil {
			return nil, fmt.Errorf("Fila %d: %v", fila.Numero, err)
		}
		if valor != nil {
			reg[col.Nombre] = valor
		}
	}

	if len(faltantes) > 0 {
		return nil, fmt.Errorf("Fila %d: Faltan campos requeridos: %s", fila.Numero, strings.Join(faltantes, ", "))
	}
	return reg, nil
}

// localizar matches the column name against the row headers, case-insensitive
// exact first, then the declared aliases.
func localizar(celdas Fila, col Columna) (string, bool) {
	if v, ok := buscarClave(celdas, col.Nombre); ok {
		return v, true
	}
	for _, alias := range col.Alias {
		if v, ok := buscarClave(celdas, alias); ok {
			return v, true
		}
	}
	return "", false
}

func buscarClave(celdas Fila, nombre string) (string, bool) {
	for k, v := range celdas {
		if strings.EqualFold(strings.TrimSpace(k), nombre) {
			return v, true
		}
	}
	return "", false
}

func coercionar(col Columna, crudo string, presente bool, celdas Fila, buscarTipo BuscarTipoPorNombre) (any, error) {
	crudo = strings.TrimSpace(crudo)

	switch col.Clase {
	case ClaseTexto:
		if !presente {
			return nil, nil
		}
		return crudo, nil

	case ClaseNumero:
		// Missing or empty numeric cells default to 0.
		if crudo == "" {
			return decimal.Zero, nil
		}
		d, err := decimal.NewFromString(strings.ReplaceAll(crudo, ",", "."))
		if err != nil {
			return nil, fmt.Errorf("valor numerico invalido en %q: %s", col.Nombre, crudo)
		}
		return d, nil

	case ClaseEntero:
		if crudo == "" {
			return nil, nil
		}
		n, err := strconv.Atoi(crudo)
		if err != nil {
			return nil, fmt.Errorf("valor entero invalido en %q: %s", col.Nombre, crudo)
		}
		return n, nil

	case ClaseBooleano:
		if crudo == "" {
			return col.PorDefecto, nil
		}
		return strings.EqualFold(crudo, "true") || crudo == "1", nil

	case ClaseFecha:
		if crudo == "" {
			return nil, nil
		}
		for _, layout := range layoutsFecha {
			if t, err := time.Parse(layout, crudo); err == nil {
				return &t, nil
			}
		}
		// Unparseable dates become null rather than failing the row.
		return nil, nil

	case ClaseTipoFK:
		if crudo != "" {
			if n, err := strconv.Atoi(crudo); err == nil {
				return n, nil
			}
		}
		// No usable id: fall back to resolving a category name column.
		nombre := nombreTipoEnFila(celdas)
		if nombre == "" {
			if crudo != "" {
				return nil, fmt.Errorf("valor entero invalido en %q: %s", col.Nombre, crudo)
			}
			// No category at all: the row stays uncategorized.
			return nil, nil
		}
		id, err := buscarTipo(nombre)
		if err != nil {
			return nil, fmt.Errorf("tipo desconocido: %s", nombre)
		}
		return id, nil
	}
	return nil, fmt.Errorf("clase de columna desconocida para %q", col.Nombre)
}

// nombreTipoEnFila looks for a category-name column alongside the id column.
func nombreTipoEnFila(celdas Fila) string {
	for _, clave := range []string{"tipo", "nombre_tipo", "categoria"} {
		if v, ok := buscarClave(celdas, clave); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
