package dto

// ResultadoTabla summarizes one processed sheet/table.
type ResultadoTabla struct {
	Tabla        string   `json:"tabla"`
	Insertados   int      `json:"insertados"`
	Actualizados int      `json:"actualizados"`
	TotalFilas   int      `json:"totalFilas"`
	Errores      []string `json:"errores,omitempty"`
	Advertencia  string   `json:"advertencia,omitempty"`
}

// ImportacionResponse is the import endpoint contract: total rows written,
// the per-table breakdown, and a capped list of per-row error messages.
type ImportacionResponse struct {
	RegistrosInsertados int              `json:"registrosInsertados"`
	ResultadosPorTabla  []ResultadoTabla `json:"resultadosPorTabla"`
	TotalErrores        []string         `json:"totalErrores"`
}

// ExportacionRequest names the tables to include in the backup workbook.
type ExportacionRequest struct {
	Tablas []string `json:"tablas" validate:"required,min=1"`
}
