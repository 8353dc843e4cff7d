package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Mascota is a patient. Edad is kept alongside FechaNacimiento because
// historical records were loaded with only an approximate age.
type Mascota struct {
	ID              int    `gorm:"primaryKey;autoIncrement"`
	Nombre          string `gorm:"index;not null"`
	Especie         string `gorm:"not null"`
	Raza            string
	Sexo            string          `gorm:"type:varchar(10)"`
	Edad            decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	Peso            decimal.Decimal `gorm:"type:decimal(6,2);not null;default:0"`
	Castrado        bool            `gorm:"not null;default:false"`
	FechaNacimiento *time.Time
	ClienteID       int  `gorm:"index;not null"`
	Estado          bool `gorm:"not null;default:true"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Cliente *Cliente `gorm:"foreignKey:ClienteID"`
}

func (Mascota) TableName() string { return "mascota" }
