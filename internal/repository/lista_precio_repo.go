package repository

import (
	"context"

	"elceibo/internal/model"

	"gorm.io/gorm"
)

// ListaPrecioRepository handles price lists. All write methods take the
// caller's tx: a price-list write is the one multi-statement atomicity
// guarantee of the system, so the service owns the transaction boundary.
type ListaPrecioRepository interface {
	FindByID(ctx context.Context, id int) (*model.ListaPrecio, error)
	List(ctx context.Context) ([]model.ListaPrecio, error)

	CreateTx(tx *gorm.DB, l *model.ListaPrecio) error
	UpdateNombreTx(tx *gorm.DB, id int, nombre string) error
	ReplaceDetallesTx(tx *gorm.DB, listaID int, detalles []model.DetalleLista) error
	DeleteTx(tx *gorm.DB, id int) error

	DB() *gorm.DB
}

type listaPrecioRepo struct{ db *gorm.DB }

func NewListaPrecioRepository(db *gorm.DB) ListaPrecioRepository { return &listaPrecioRepo{db: db} }

func (r *listaPrecioRepo) FindByID(ctx context.Context, id int) (*model.ListaPrecio, error) {
	var l model.ListaPrecio
	err := r.db.WithContext(ctx).
		Preload("Detalles").Preload("Detalles.Producto").
		First(&l, id).Error
	return &l, err
}

func (r *listaPrecioRepo) List(ctx context.Context) ([]model.ListaPrecio, error) {
	var listas []model.ListaPrecio
	err := r.db.WithContext(ctx).Preload("Detalles").Order("nombre ASC").Find(&listas).Error
	return listas, err
}

func (r *listaPrecioRepo) CreateTx(tx *gorm.DB, l *model.ListaPrecio) error {
	return tx.Create(l).Error
}

func (r *listaPrecioRepo) UpdateNombreTx(tx *gorm.DB, id int, nombre string) error {
	return tx.Model(&model.ListaPrecio{}).Where("id = ?", id).Update("nombre", nombre).Error
}

func (r *listaPrecioRepo) ReplaceDetallesTx(tx *gorm.DB, listaID int, detalles []model.DetalleLista) error {
	if err := tx.Where("lista_precio_id = ?", listaID).Delete(&model.DetalleLista{}).Error; err != nil {
		return err
	}
	if len(detalles) == 0 {
		return nil
	}
	for i := range detalles {
		detalles[i].ListaPrecioID = listaID
	}
	return tx.Create(&detalles).Error
}

func (r *listaPrecioRepo) DeleteTx(tx *gorm.DB, id int) error {
	if err := tx.Where("lista_precio_id = ?", id).Delete(&model.DetalleLista{}).Error; err != nil {
		return err
	}
	return tx.Delete(&model.ListaPrecio{}, id).Error
}

func (r *listaPrecioRepo) DB() *gorm.DB { return r.db }
