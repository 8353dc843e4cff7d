package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CrearMascotaRequest struct {
	Nombre          string          `json:"nombre"  validate:"required,min=1,max=120"`
	Especie         string          `json:"especie" validate:"required"`
	Raza            string          `json:"raza"`
	Sexo            string          `json:"sexo"    validate:"omitempty,oneof=macho hembra"`
	Edad            decimal.Decimal `json:"edad"`
	Peso            decimal.Decimal `json:"peso"`
	Castrado        bool            `json:"castrado"`
	FechaNacimiento *time.Time      `json:"fecha_nacimiento"`
	ClienteID       int             `json:"id_cliente" validate:"required,min=1"`
}

type ActualizarMascotaRequest struct {
	Nombre          *string          `json:"nombre"  validate:"omitempty,min=1,max=120"`
	Especie         *string          `json:"especie"`
	Raza            *string          `json:"raza"`
	Sexo            *string          `json:"sexo"    validate:"omitempty,oneof=macho hembra"`
	Edad            *decimal.Decimal `json:"edad"`
	Peso            *decimal.Decimal `json:"peso"`
	Castrado        *bool            `json:"castrado"`
	FechaNacimiento *time.Time       `json:"fecha_nacimiento"`
}

type MascotaResponse struct {
	ID              int             `json:"id"`
	Nombre          string          `json:"nombre"`
	Especie         string          `json:"especie"`
	Raza            string          `json:"raza"`
	Sexo            string          `json:"sexo"`
	Edad            decimal.Decimal `json:"edad"`
	Peso            decimal.Decimal `json:"peso"`
	Castrado        bool            `json:"castrado"`
	FechaNacimiento *time.Time      `json:"fecha_nacimiento"`
	ClienteID       int             `json:"id_cliente"`
	Cliente         string          `json:"cliente,omitempty"`
	Estado          bool            `json:"estado"`
}
