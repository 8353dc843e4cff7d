package repository

import (
	"context"

	"elceibo/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MascotaRepository interface {
	Create(ctx context.Context, m *model.Mascota) error
	FindByID(ctx context.Context, id int) (*model.Mascota, error)
	ListByCliente(ctx context.Context, clienteID int) ([]model.Mascota, error)
	Update(ctx context.Context, m *model.Mascota) error
	SoftDelete(ctx context.Context, id int) error
	Upsert(ctx context.Context, m *model.Mascota) error
}

type mascotaRepo struct{ db *gorm.DB }

func NewMascotaRepository(db *gorm.DB) MascotaRepository { return &mascotaRepo{db: db} }

func (r *mascotaRepo) Create(ctx context.Context, m *model.Mascota) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *mascotaRepo) FindByID(ctx context.Context, id int) (*model.Mascota, error) {
	var m model.Mascota
	err := r.db.WithContext(ctx).Preload("Cliente").First(&m, id).Error
	return &m, err
}

func (r *mascotaRepo) ListByCliente(ctx context.Context, clienteID int) ([]model.Mascota, error) {
	var mascotas []model.Mascota
	err := r.db.WithContext(ctx).
		Where("cliente_id = ? AND estado = true", clienteID).
		Order("nombre ASC").Find(&mascotas).Error
	return mascotas, err
}

func (r *mascotaRepo) Update(ctx context.Context, m *model.Mascota) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *mascotaRepo) SoftDelete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Model(&model.Mascota{}).Where("id = ?", id).Update("estado", false).Error
}

func (r *mascotaRepo) Upsert(ctx context.Context, m *model.Mascota) error {
	if m.ID == 0 {
		return r.db.WithContext(ctx).Create(m).Error
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(m).Error
}
