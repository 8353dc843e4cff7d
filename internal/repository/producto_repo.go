package repository

import (
	"context"
	"strings"

	"elceibo/internal/dto"
	"elceibo/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductoRepository defines the data access contract for products.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs.
type ProductoRepository interface {
	Create(ctx context.Context, p *model.Producto) error
	FindByID(ctx context.Context, id int) (*model.Producto, error)
	// FindByNombreTipo looks up the import natural key: case-insensitive
	// nombre within a tipo (nil tipo matches uncategorized products).
	FindByNombreTipo(ctx context.Context, nombre string, tipoID *int) (*model.Producto, error)
	List(ctx context.Context, filter dto.ProductoFilter) ([]model.Producto, int64, error)
	Update(ctx context.Context, p *model.Producto) error
	SoftDelete(ctx context.Context, id int) error
	Reactivar(ctx context.Context, id int) error

	// Used inside transactions — callers must pass the tx instance
	AjustarStockTx(tx *gorm.DB, id int, delta decimal.Decimal) error
	MarcarModificadoTx(tx *gorm.DB, id int, modificado bool) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type productoRepo struct{ db *gorm.DB }

func NewProductoRepository(db *gorm.DB) ProductoRepository { return &productoRepo{db: db} }

func (r *productoRepo) Create(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productoRepo) FindByID(ctx context.Context, id int) (*model.Producto, error) {
	var p model.Producto
	err := r.db.WithContext(ctx).Preload("Tipo").First(&p, id).Error
	return &p, err
}

func (r *productoRepo) FindByNombreTipo(ctx context.Context, nombre string, tipoID *int) (*model.Producto, error) {
	var p model.Producto
	q := r.db.WithContext(ctx).Where("LOWER(nombre) = ?", strings.ToLower(strings.TrimSpace(nombre)))
	if tipoID != nil {
		q = q.Where("tipo_id = ?", *tipoID)
	} else {
		q = q.Where("tipo_id IS NULL")
	}
	err := q.First(&p).Error
	return &p, err
}

func (r *productoRepo) List(ctx context.Context, filter dto.ProductoFilter) ([]model.Producto, int64, error) {
	var productos []model.Producto
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Producto{})

	// Estado filter: "false" = inactivos, "all" = todos, anything else = activos (default)
	switch filter.Estado {
	case "false":
		q = q.Where("estado = false")
	case "all":
		// no filter
	default:
		q = q.Where("estado = true")
	}

	if filter.Nombre != "" {
		q = q.Where("nombre ILIKE ?", "%"+filter.Nombre+"%")
	}
	if filter.TipoID != 0 {
		q = q.Where("tipo_id = ?", filter.TipoID)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Preload("Tipo").Order("nombre ASC").Limit(filter.Limit).Offset(offset).Find(&productos).Error
	return productos, total, err
}

func (r *productoRepo) Update(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *productoRepo) SoftDelete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Model(&model.Producto{}).Where("id = ?", id).Update("estado", false).Error
}

func (r *productoRepo) Reactivar(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Model(&model.Producto{}).Where("id = ?", id).Update("estado", true).Error
}

func (r *productoRepo) AjustarStockTx(tx *gorm.DB, id int, delta decimal.Decimal) error {
	return tx.Model(&model.Producto{}).Where("id = ?", id).
		Update("stock", gorm.Expr("stock + ?", delta)).Error
}

func (r *productoRepo) MarcarModificadoTx(tx *gorm.DB, id int, modificado bool) error {
	return tx.Model(&model.Producto{}).Where("id = ?", id).Update("modificado", modificado).Error
}

func (r *productoRepo) DB() *gorm.DB { return r.db }
