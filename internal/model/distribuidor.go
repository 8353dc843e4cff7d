package model

import "time"

// Distribuidor is a supplier linked to expense invoices.
type Distribuidor struct {
	ID        int    `gorm:"primaryKey;autoIncrement"`
	Nombre    string `gorm:"uniqueIndex;not null"`
	Telefono  string
	Email     *string
	Direccion string
	Estado    bool `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Distribuidor) TableName() string { return "distribuidor" }
