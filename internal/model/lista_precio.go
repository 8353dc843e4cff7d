package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ListaPrecio is a named set of per-product price overrides.
type ListaPrecio struct {
	ID        int    `gorm:"primaryKey;autoIncrement"`
	Nombre    string `gorm:"uniqueIndex;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Detalles []DetalleLista `gorm:"foreignKey:ListaPrecioID"`
}

func (ListaPrecio) TableName() string { return "lista_precio" }

// DetalleLista overrides the pricing of one product inside one list.
// Writing a detail row sets Producto.Modificado so that list pricing wins
// over the tipo's default markups.
type DetalleLista struct {
	ID            int             `gorm:"primaryKey;autoIncrement"`
	ListaPrecioID int             `gorm:"index;uniqueIndex:idx_lista_producto;not null"`
	ProductoID    int             `gorm:"uniqueIndex:idx_lista_producto;not null"`
	Precio        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	PorcMayor     decimal.Decimal `gorm:"type:decimal(6,2);not null;default:0"`
	PorcMinor     decimal.Decimal `gorm:"type:decimal(6,2);not null;default:0"`

	Producto *Producto `gorm:"foreignKey:ProductoID"`
}

func (DetalleLista) TableName() string { return "detalle_lista" }
