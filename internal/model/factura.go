package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Factura keeps the date split in parts (dia/mes/anio/hora) to match the
// reporting queries of the legacy schema. TipoFactura: "ingreso" | "egreso".
// Once created, line items are immutable; edits only patch header fields.
type Factura struct {
	ID             int             `gorm:"primaryKey;autoIncrement"`
	Dia            int             `gorm:"not null"`
	Mes            int             `gorm:"not null"`
	Anio           int             `gorm:"not null"`
	Hora           string          `gorm:"type:varchar(8)"`
	FormaPago      string          `gorm:"type:varchar(30);not null"`
	Total          decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	TipoFactura    string          `gorm:"type:varchar(10);not null"`
	UsuarioID      int             `gorm:"index;not null"`
	DistribuidorID *int            `gorm:"index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Usuario      *Usuario         `gorm:"foreignKey:UsuarioID"`
	Distribuidor *Distribuidor    `gorm:"foreignKey:DistribuidorID"`
	Detalles     []DetalleFactura `gorm:"foreignKey:FacturaID"`
}

func (Factura) TableName() string { return "factura" }

// DetalleFactura is one invoice line referencing a product.
type DetalleFactura struct {
	ID             int             `gorm:"primaryKey;autoIncrement"`
	FacturaID      int             `gorm:"index;not null"`
	ProductoID     int             `gorm:"index;not null"`
	Cantidad       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	PrecioUnitario decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	Producto *Producto `gorm:"foreignKey:ProductoID"`
}

func (DetalleFactura) TableName() string { return "detalle_factura" }
