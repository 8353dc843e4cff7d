package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearProductoRequest struct {
	Nombre      string          `json:"nombre"       validate:"required,min=2,max=120"`
	Marca       string          `json:"marca"`
	PrecioCosto decimal.Decimal `json:"precio_costo" validate:"required"`
	Stock       decimal.Decimal `json:"stock"`
	TipoID      *int            `json:"id_tipo"`
}

type ActualizarProductoRequest struct {
	Nombre      *string          `json:"nombre"       validate:"omitempty,min=2,max=120"`
	Marca       *string          `json:"marca"`
	PrecioCosto *decimal.Decimal `json:"precio_costo"`
	Stock       *decimal.Decimal `json:"stock"`
	TipoID      *int             `json:"id_tipo"`
}

// ─── Filter / Pagination ─────────────────────────────────────────────────────

type ProductoFilter struct {
	Nombre string `form:"nombre"`
	TipoID int    `form:"id_tipo"`
	Estado string `form:"estado"` // "false" = inactivos, "all" = todos, default activos
	Page   int    `form:"page,default=1"   validate:"min=1"`
	Limit  int    `form:"limit,default=20" validate:"min=1,max=100"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductoResponse struct {
	ID          int             `json:"id"`
	Nombre      string          `json:"nombre"`
	Marca       string          `json:"marca"`
	PrecioCosto decimal.Decimal `json:"precio_costo"`
	Stock       decimal.Decimal `json:"stock"`
	TipoID      *int            `json:"id_tipo"`
	Tipo        string          `json:"tipo,omitempty"`
	Modificado  bool            `json:"modificado"`
	Estado      bool            `json:"estado"`
}

type ProductoListResponse struct {
	Data       []ProductoResponse `json:"data"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"total_pages"`
}

// ConsultaPrecioResponse is the computed price of one product: either the
// tipo's default markups over precio_costo, or the price-list override when
// the product is marked modificado.
type ConsultaPrecioResponse struct {
	ProductoID      int             `json:"producto_id"`
	Nombre          string          `json:"nombre"`
	PrecioCosto     decimal.Decimal `json:"precio_costo"`
	PrecioMayorista decimal.Decimal `json:"precio_mayorista"`
	PrecioMinorista decimal.Decimal `json:"precio_minorista"`
	Origen          string          `json:"origen"` // "tipo" | "lista"
}
