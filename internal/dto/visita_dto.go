package dto

import "time"

// ─── Visitas ─────────────────────────────────────────────────────────────────

type CrearVisitaRequest struct {
	MascotaID   int       `json:"id_mascota" validate:"required,min=1"`
	Fecha       time.Time `json:"fecha"      validate:"required"`
	Motivo      string    `json:"motivo"     validate:"required"`
	Diagnostico string    `json:"diagnostico"`
	Tratamiento string    `json:"tratamiento"`
}

type ActualizarVisitaRequest struct {
	Fecha       *time.Time `json:"fecha"`
	Motivo      *string    `json:"motivo"`
	Diagnostico *string    `json:"diagnostico"`
	Tratamiento *string    `json:"tratamiento"`
}

type VisitaResponse struct {
	ID          int       `json:"id"`
	MascotaID   int       `json:"id_mascota"`
	Fecha       time.Time `json:"fecha"`
	Motivo      string    `json:"motivo"`
	Diagnostico string    `json:"diagnostico"`
	Tratamiento string    `json:"tratamiento"`
}

// ─── Vacunas aplicadas ───────────────────────────────────────────────────────

type CrearVacunaRequest struct {
	MascotaID    int        `json:"id_mascota" validate:"required,min=1"`
	Nombre       string     `json:"nombre"     validate:"required"`
	Fecha        time.Time  `json:"fecha"      validate:"required"`
	ProximaDosis *time.Time `json:"proxima_dosis"`
}

type VacunaResponse struct {
	ID           int        `json:"id"`
	MascotaID    int        `json:"id_mascota"`
	Nombre       string     `json:"nombre"`
	Fecha        time.Time  `json:"fecha"`
	ProximaDosis *time.Time `json:"proxima_dosis"`
}
