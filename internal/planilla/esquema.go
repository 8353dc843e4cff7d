package planilla

import (
	"fmt"
	"strings"
)

// Clase classifies a target column for type coercion during import.
type Clase int

const (
	ClaseTexto Clase = iota
	ClaseNumero
	ClaseEntero
	ClaseBooleano
	ClaseFecha
	// ClaseTipoFK is the product-category reference: an integer id, or a
	// category name resolved to its id when the sheet carries a name column.
	ClaseTipoFK
)

// Columna describes one target column of an importable table, including the
// alternate header names accepted for it.
type Columna struct {
	Nombre     string
	Alias      []string
	Clase      Clase
	Requerida  bool
	// PorDefecto applies to ClaseBooleano columns when the cell is absent.
	PorDefecto bool
}

// Esquema describes one importable table: its target columns and the
// sheet names that map to it.
type Esquema struct {
	Tabla    string
	Columnas []Columna
}

// Requeridas returns the names of the schema-declared required columns.
func (e *Esquema) Requeridas() []string {
	var out []string
	for _, c := range e.Columnas {
		if c.Requerida {
			out = append(out, c.Nombre)
		}
	}
	return out
}

// esquemas is the static table router: canonical table identifier → schema.
var esquemas = map[string]*Esquema{
	"productos": {
		Tabla: "productos",
		Columnas: []Columna{
			{Nombre: "nombre", Alias: []string{"nombre_producto", "producto"}, Clase: ClaseTexto, Requerida: true},
			{Nombre: "marca", Clase: ClaseTexto},
			{Nombre: "precio_costo", Alias: []string{"precio", "costo"}, Clase: ClaseNumero},
			{Nombre: "stock", Alias: []string{"cantidad"}, Clase: ClaseNumero},
			{Nombre: "id_tipo", Alias: []string{"tipo_id"}, Clase: ClaseTipoFK},
			{Nombre: "modificado", Clase: ClaseBooleano, PorDefecto: false},
			{Nombre: "estado", Alias: []string{"activo"}, Clase: ClaseBooleano, PorDefecto: true},
		},
	},
	"usuarios": {
		Tabla: "usuarios",
		Columnas: []Columna{
			{Nombre: "id", Clase: ClaseEntero},
			{Nombre: "nombre_usuario", Alias: []string{"usuario", "username"}, Clase: ClaseTexto, Requerida: true},
			{Nombre: "password", Alias: []string{"contrasenia", "clave"}, Clase: ClaseTexto, Requerida: true},
			{Nombre: "rol", Clase: ClaseTexto, Requerida: true},
			{Nombre: "nombre", Clase: ClaseTexto},
			{Nombre: "apellido", Clase: ClaseTexto},
			{Nombre: "email", Alias: []string{"correo"}, Clase: ClaseTexto},
			{Nombre: "telefono", Clase: ClaseTexto},
			{Nombre: "estado", Alias: []string{"activo"}, Clase: ClaseBooleano, PorDefecto: true},
		},
	},
	"clientes": {
		Tabla: "clientes",
		Columnas: []Columna{
			{Nombre: "id", Clase: ClaseEntero},
			{Nombre: "nombre", Alias: []string{"nombre_cliente"}, Clase: ClaseTexto, Requerida: true},
			{Nombre: "apellido", Clase: ClaseTexto},
			{Nombre: "direccion", Alias: []string{"domicilio"}, Clase: ClaseTexto},
			{Nombre: "localidad", Clase: ClaseTexto},
			{Nombre: "telefono", Clase: ClaseTexto},
			{Nombre: "email", Alias: []string{"correo"}, Clase: ClaseTexto},
			{Nombre: "estado", Alias: []string{"activo"}, Clase: ClaseBooleano, PorDefecto: true},
		},
	},
	"mascotas": {
		Tabla: "mascotas",
		Columnas: []Columna{
			{Nombre: "id", Clase: ClaseEntero},
			{Nombre: "nombre", Alias: []string{"nombre_mascota", "paciente"}, Clase: ClaseTexto, Requerida: true},
			{Nombre: "especie", Clase: ClaseTexto, Requerida: true},
			{Nombre: "raza", Clase: ClaseTexto},
			{Nombre: "sexo", Clase: ClaseTexto},
			{Nombre: "edad", Clase: ClaseNumero},
			{Nombre: "peso", Clase: ClaseNumero},
			{Nombre: "castrado", Clase: ClaseBooleano, PorDefecto: false},
			{Nombre: "fecha_nacimiento", Alias: []string{"nacimiento"}, Clase: ClaseFecha},
			{Nombre: "id_cliente", Alias: []string{"cliente_id"}, Clase: ClaseEntero, Requerida: true},
		},
	},
}

// aliasHojas maps alternate sheet names to canonical table identifiers.
var aliasHojas = map[string]string{
	"pacientes": "mascotas",
}

// BuscarEsquema resolves an explicit table identifier. Unknown identifiers are
// an error ("tabla invalida") because the caller asked for that table by name.
func BuscarEsquema(tabla string) (*Esquema, error) {
	e, ok := esquemas[normalizarNombre(tabla)]
	if !ok {
		return nil, fmt.Errorf("tabla invalida: %s", tabla)
	}
	return e, nil
}

// EsquemaParaHoja resolves a workbook sheet name. Unrecognized sheets return
// ok=false so the caller can skip them with a warning instead of failing.
func EsquemaParaHoja(hoja string) (*Esquema, bool) {
	nombre := normalizarNombre(hoja)
	if canonico, ok := aliasHojas[nombre]; ok {
		nombre = canonico
	}
	e, ok := esquemas[nombre]
	return e, ok
}

func normalizarNombre(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
