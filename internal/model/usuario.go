package model

import "time"

// Usuario stores system users with role-based access.
// Rol: "admin" | "veterinario" | "recepcion"
type Usuario struct {
	ID            int    `gorm:"primaryKey;autoIncrement"`
	NombreUsuario string `gorm:"uniqueIndex;not null"`
	PasswordHash  string `gorm:"not null"`
	Rol           string `gorm:"type:varchar(20);not null"`
	Nombre        string `gorm:"not null"`
	Apellido      string
	Email         *string
	Telefono      string
	Estado        bool `gorm:"not null;default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (Usuario) TableName() string { return "usuario" }
