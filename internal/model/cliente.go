package model

import "time"

// Cliente is a clinic client (the owner of one or more mascotas).
type Cliente struct {
	ID        int    `gorm:"primaryKey;autoIncrement"`
	Nombre    string `gorm:"index;not null"`
	Apellido  string
	Direccion string
	Localidad string
	Telefono  string
	Email     *string
	Estado    bool `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Mascotas []Mascota `gorm:"foreignKey:ClienteID"`
}

func (Cliente) TableName() string { return "cliente" }
