package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item is an internal supply (gauze, syringes, etc.) not sold through the
// product catalog but tracked for stock.
type Item struct {
	ID          int    `gorm:"primaryKey;autoIncrement"`
	Nombre      string `gorm:"uniqueIndex;not null"`
	Descripcion *string
	Precio      decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Stock       decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Estado      bool            `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Item) TableName() string { return "item" }
