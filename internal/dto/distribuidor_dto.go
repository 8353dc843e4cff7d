package dto

import "github.com/shopspring/decimal"

// ─── Distribuidores ──────────────────────────────────────────────────────────

type CrearDistribuidorRequest struct {
	Nombre    string  `json:"nombre"    validate:"required,min=2,max=120"`
	Telefono  string  `json:"telefono"`
	Email     *string `json:"email"     validate:"omitempty,email"`
	Direccion string  `json:"direccion"`
}

type DistribuidorResponse struct {
	ID        int     `json:"id"`
	Nombre    string  `json:"nombre"`
	Telefono  string  `json:"telefono"`
	Email     *string `json:"email"`
	Direccion string  `json:"direccion"`
	Estado    bool    `json:"estado"`
}

// ─── Items ───────────────────────────────────────────────────────────────────

type CrearItemRequest struct {
	Nombre      string          `json:"nombre" validate:"required,min=2,max=120"`
	Descripcion *string         `json:"descripcion"`
	Precio      decimal.Decimal `json:"precio"`
	Stock       decimal.Decimal `json:"stock"`
}

type ActualizarItemRequest struct {
	Nombre      *string          `json:"nombre" validate:"omitempty,min=2,max=120"`
	Descripcion *string          `json:"descripcion"`
	Precio      *decimal.Decimal `json:"precio"`
	Stock       *decimal.Decimal `json:"stock"`
}

type ItemResponse struct {
	ID          int             `json:"id"`
	Nombre      string          `json:"nombre"`
	Descripcion *string         `json:"descripcion"`
	Precio      decimal.Decimal `json:"precio"`
	Stock       decimal.Decimal `json:"stock"`
	Estado      bool            `json:"estado"`
}
