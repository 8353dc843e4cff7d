package dto

import "github.com/shopspring/decimal"

type CrearTipoRequest struct {
	Nombre        string          `json:"nombre"         validate:"required,min=2,max=60"`
	PorcMayorista decimal.Decimal `json:"porc_mayorista"`
	PorcMinorista decimal.Decimal `json:"porc_minorista"`
}

type ActualizarTipoRequest struct {
	Nombre        *string          `json:"nombre" validate:"omitempty,min=2,max=60"`
	PorcMayorista *decimal.Decimal `json:"porc_mayorista"`
	PorcMinorista *decimal.Decimal `json:"porc_minorista"`
}

type TipoResponse struct {
	ID            int             `json:"id"`
	Nombre        string          `json:"nombre"`
	PorcMayorista decimal.Decimal `json:"porc_mayorista"`
	PorcMinorista decimal.Decimal `json:"porc_minorista"`
}
