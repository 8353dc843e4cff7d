package model

import "time"

// Visita is a clinical visit of one mascota.
type Visita struct {
	ID          int       `gorm:"primaryKey;autoIncrement"`
	MascotaID   int       `gorm:"index;not null"`
	Fecha       time.Time `gorm:"not null"`
	Motivo      string    `gorm:"not null"`
	Diagnostico string
	Tratamiento string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Mascota *Mascota `gorm:"foreignKey:MascotaID"`
}

func (Visita) TableName() string { return "visita" }
