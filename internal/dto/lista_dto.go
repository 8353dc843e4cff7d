package dto

import "github.com/shopspring/decimal"

type DetalleListaRequest struct {
	ProductoID int             `json:"id_producto" validate:"required,min=1"`
	Precio     decimal.Decimal `json:"precio"      validate:"required"`
	PorcMayor  decimal.Decimal `json:"porc_mayor"`
	PorcMinor  decimal.Decimal `json:"porc_minor"`
}

// CrearListaRequest carries the list name and the full set of detail rows.
// The write is transactional: either every detail lands (and every touched
// product is marked modificado) or nothing does.
type CrearListaRequest struct {
	Nombre   string                `json:"nombre"   validate:"required,min=2,max=80"`
	Detalles []DetalleListaRequest `json:"detalles" validate:"dive"`
}

type ActualizarListaRequest struct {
	Nombre   *string               `json:"nombre"   validate:"omitempty,min=2,max=80"`
	Detalles []DetalleListaRequest `json:"detalles" validate:"dive"`
}

type DetalleListaResponse struct {
	ProductoID int             `json:"id_producto"`
	Producto   string          `json:"producto,omitempty"`
	Precio     decimal.Decimal `json:"precio"`
	PorcMayor  decimal.Decimal `json:"porc_mayor"`
	PorcMinor  decimal.Decimal `json:"porc_minor"`
}

type ListaResponse struct {
	ID       int                    `json:"id"`
	Nombre   string                 `json:"nombre"`
	Detalles []DetalleListaResponse `json:"detalles"`
}
