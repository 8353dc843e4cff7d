package repository

import (
	"context"
	"strings"

	"elceibo/internal/model"

	"gorm.io/gorm"
)

type TipoRepository interface {
	Create(ctx context.Context, t *model.Tipo) error
	FindByID(ctx context.Context, id int) (*model.Tipo, error)
	// FindByNombre backs the import FK-by-name resolution (case-insensitive).
	FindByNombre(ctx context.Context, nombre string) (*model.Tipo, error)
	List(ctx context.Context) ([]model.Tipo, error)
	Update(ctx context.Context, t *model.Tipo) error
	Delete(ctx context.Context, id int) error
}

type tipoRepo struct{ db *gorm.DB }

func NewTipoRepository(db *gorm.DB) TipoRepository { return &tipoRepo{db: db} }

func (r *tipoRepo) Create(ctx context.Context, t *model.Tipo) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *tipoRepo) FindByID(ctx context.Context, id int) (*model.Tipo, error) {
	var t model.Tipo
	err := r.db.WithContext(ctx).First(&t, id).Error
	return &t, err
}

func (r *tipoRepo) FindByNombre(ctx context.Context, nombre string) (*model.Tipo, error) {
	var t model.Tipo
	err := r.db.WithContext(ctx).
		Where("LOWER(nombre) = ?", strings.ToLower(strings.TrimSpace(nombre))).
		First(&t).Error
	return &t, err
}

func (r *tipoRepo) List(ctx context.Context) ([]model.Tipo, error) {
	var tipos []model.Tipo
	err := r.db.WithContext(ctx).Order("nombre ASC").Find(&tipos).Error
	return tipos, err
}

func (r *tipoRepo) Update(ctx context.Context, t *model.Tipo) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *tipoRepo) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&model.Tipo{}, id).Error
}
