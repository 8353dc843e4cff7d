package repository

import (
	"context"

	"elceibo/internal/model"

	"gorm.io/gorm"
)

type DistribuidorRepository interface {
	Create(ctx context.Context, d *model.Distribuidor) error
	FindByID(ctx context.Context, id int) (*model.Distribuidor, error)
	List(ctx context.Context) ([]model.Distribuidor, error)
	Update(ctx context.Context, d *model.Distribuidor) error
	SoftDelete(ctx context.Context, id int) error
}

type distribuidorRepo struct{ db *gorm.DB }

func NewDistribuidorRepository(db *gorm.DB) DistribuidorRepository {
	return &distribuidorRepo{db: db}
}

func (r *distribuidorRepo) Create(ctx context.Context, d *model.Distribuidor) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *distribuidorRepo) FindByID(ctx context.Context, id int) (*model.Distribuidor, error) {
	var d model.Distribuidor
	err := r.db.WithContext(ctx).First(&d, id).Error
	return &d, err
}

func (r *distribuidorRepo) List(ctx context.Context) ([]model.Distribuidor, error) {
	var distribuidores []model.Distribuidor
	err := r.db.WithContext(ctx).Where("estado = true").Order("nombre ASC").Find(&distribuidores).Error
	return distribuidores, err
}

func (r *distribuidorRepo) Update(ctx context.Context, d *model.Distribuidor) error {
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *distribuidorRepo) SoftDelete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Model(&model.Distribuidor{}).Where("id = ?", id).Update("estado", false).Error
}
