package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipo is a product category ("tipo") carrying the default markup percentages
// applied over precio_costo when a product has no price-list override.
type Tipo struct {
	ID            int             `gorm:"primaryKey;autoIncrement"`
	Nombre        string          `gorm:"uniqueIndex;not null"`
	PorcMayorista decimal.Decimal `gorm:"type:decimal(6,2);not null;default:0"`
	PorcMinorista decimal.Decimal `gorm:"type:decimal(6,2);not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (Tipo) TableName() string { return "tipo" }
