package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto is a retail or clinical product. Its natural key for import
// reconciliation is (lowercased nombre, tipo_id): duplicates under that key
// are updated, never re-inserted.
type Producto struct {
	ID          int    `gorm:"primaryKey;autoIncrement"`
	Nombre      string `gorm:"index;not null"`
	Marca       string
	PrecioCosto decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Stock       decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	// TipoID is nullable: imported rows may arrive without a category.
	TipoID *int `gorm:"index"`
	// Modificado marks that a price list carries overrides for this product,
	// so list pricing wins over the tipo's default markups.
	Modificado bool `gorm:"not null;default:false"`
	Estado     bool `gorm:"not null;default:true"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Tipo *Tipo `gorm:"foreignKey:TipoID"`
}

func (Producto) TableName() string { return "producto" }
