package repository

import (
	"context"

	"elceibo/internal/dto"
	"elceibo/internal/model"

	"gorm.io/gorm"
)

type FacturaRepository interface {
	// CreateTx persists the invoice with its lines inside the caller's tx.
	CreateTx(tx *gorm.DB, f *model.Factura) error
	FindByID(ctx context.Context, id int) (*model.Factura, error)
	List(ctx context.Context, filter dto.FacturaFilter) ([]model.Factura, int64, error)
	// UpdateHeader patches header fields only; detalle rows are immutable.
	UpdateHeader(ctx context.Context, f *model.Factura) error
	Delete(ctx context.Context, id int) error

	DB() *gorm.DB
}

type facturaRepo struct{ db *gorm.DB }

func NewFacturaRepository(db *gorm.DB) FacturaRepository { return &facturaRepo{db: db} }

func (r *facturaRepo) CreateTx(tx *gorm.DB, f *model.Factura) error {
	return tx.Create(f).Error
}

func (r *facturaRepo) FindByID(ctx context.Context, id int) (*model.Factura, error) {
	var f model.Factura
	err := r.db.WithContext(ctx).
		Preload("Detalles").Preload("Detalles.Producto").
		Preload("Usuario").Preload("Distribuidor").
		First(&f, id).Error
	return &f, err
}

func (r *facturaRepo) List(ctx context.Context, filter dto.FacturaFilter) ([]model.Factura, int64, error) {
	var facturas []model.Factura
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Factura{})
	if filter.Mes != 0 {
		q = q.Where("mes = ?", filter.Mes)
	}
	if filter.Anio != 0 {
		q = q.Where("anio = ?", filter.Anio)
	}
	if filter.TipoFactura != "" {
		q = q.Where("tipo_factura = ?", filter.TipoFactura)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (filter.Page - 1) * filter.Limit
	err := q.Preload("Detalles").
		Order("anio DESC, mes DESC, dia DESC, id DESC").
		Limit(filter.Limit).Offset(offset).Find(&facturas).Error
	return facturas, total, err
}

func (r *facturaRepo) UpdateHeader(ctx context.Context, f *model.Factura) error {
	return r.db.WithContext(ctx).Model(&model.Factura{}).Where("id = ?", f.ID).
		Updates(map[string]interface{}{
			"dia":             f.Dia,
			"mes":             f.Mes,
			"anio":            f.Anio,
			"hora":            f.Hora,
			"forma_pago":      f.FormaPago,
			"distribuidor_id": f.DistribuidorID,
		}).Error
}

func (r *facturaRepo) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("factura_id = ?", id).Delete(&model.DetalleFactura{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Factura{}, id).Error
	})
}

func (r *facturaRepo) DB() *gorm.DB { return r.db }
