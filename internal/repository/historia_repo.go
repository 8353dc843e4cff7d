package repository

import (
	"context"

	"elceibo/internal/model"

	"gorm.io/gorm"
)

// ─── Visitas ─────────────────────────────────────────────────────────────────

type VisitaRepository interface {
	Create(ctx context.Context, v *model.Visita) error
	FindByID(ctx context.Context, id int) (*model.Visita, error)
	ListByMascota(ctx context.Context, mascotaID int) ([]model.Visita, error)
	Update(ctx context.Context, v *model.Visita) error
	Delete(ctx context.Context, id int) error
}

type visitaRepo struct{ db *gorm.DB }

func NewVisitaRepository(db *gorm.DB) VisitaRepository { return &visitaRepo{db: db} }

func (r *visitaRepo) Create(ctx context.Context, v *model.Visita) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *visitaRepo) FindByID(ctx context.Context, id int) (*model.Visita, error) {
	var v model.Visita
	err := r.db.WithContext(ctx).First(&v, id).Error
	return &v, err
}

func (r *visitaRepo) ListByMascota(ctx context.Context, mascotaID int) ([]model.Visita, error) {
	var visitas []model.Visita
	err := r.db.WithContext(ctx).
		Where("mascota_id = ?", mascotaID).
		Order("fecha DESC").Find(&visitas).Error
	return visitas, err
}

func (r *visitaRepo) Update(ctx context.Context, v *model.Visita) error {
	return r.db.WithContext(ctx).Save(v).Error
}

func (r *visitaRepo) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&model.Visita{}, id).Error
}

// ─── Vacunas aplicadas ───────────────────────────────────────────────────────

type VacunaRepository interface {
	Create(ctx context.Context, v *model.VacunaAplicada) error
	ListByMascota(ctx context.Context, mascotaID int) ([]model.VacunaAplicada, error)
	Delete(ctx context.Context, id int) error
}

type vacunaRepo struct{ db *gorm.DB }

func NewVacunaRepository(db *gorm.DB) VacunaRepository { return &vacunaRepo{db: db} }

func (r *vacunaRepo) Create(ctx context.Context, v *model.VacunaAplicada) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *vacunaRepo) ListByMascota(ctx context.Context, mascotaID int) ([]model.VacunaAplicada, error) {
	var vacunas []model.VacunaAplicada
	err := r.db.WithContext(ctx).
		Where("mascota_id = ?", mascotaID).
		Order("fecha DESC").Find(&vacunas).Error
	return vacunas, err
}

func (r *vacunaRepo) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&model.VacunaAplicada{}, id).Error
}
