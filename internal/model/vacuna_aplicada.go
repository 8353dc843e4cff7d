package model

import "time"

// VacunaAplicada records one applied vaccine dose and its next due date.
type VacunaAplicada struct {
	ID           int        `gorm:"primaryKey;autoIncrement"`
	MascotaID    int        `gorm:"index;not null"`
	Nombre       string     `gorm:"not null"`
	Fecha        time.Time  `gorm:"not null"`
	ProximaDosis *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Mascota *Mascota `gorm:"foreignKey:MascotaID"`
}

func (VacunaAplicada) TableName() string { return "vacuna_aplicada" }
