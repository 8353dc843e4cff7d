package service

import (
	"context"
	"errors"

	"elceibo/internal/dto"
	"elceibo/internal/model"
	"elceibo/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProductoService interface {
	Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error)
	ObtenerPorID(ctx context.Context, id int) (*dto.ProductoResponse, error)
	Listar(ctx context.Context, filter dto.ProductoFilter) (*dto.ProductoListResponse, error)
	Actualizar(ctx context.Context, id int, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error)
	Desactivar(ctx context.Context, id int) error
	Reactivar(ctx context.Context, id int) error
	// ConsultarPrecio computes the selling prices: tipo default markups over
	// precio_costo, or the price-list override when the product is marked
	// modificado and the list carries a detail row for it.
	ConsultarPrecio(ctx context.Context, id int, listaID int) (*dto.ConsultaPrecioResponse, error)
}

type productoService struct {
	repo      repository.ProductoRepository
	tipoRepo  repository.TipoRepository
	listaRepo repository.ListaPrecioRepository
}

func NewProductoService(repo repository.ProductoRepository, tipoRepo repository.TipoRepository, listaRepo repository.ListaPrecioRepository) ProductoService {
	return &productoService{repo: repo, tipoRepo: tipoRepo, listaRepo: listaRepo}
}

func (s *productoService) Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error) {
	if req.TipoID != nil {
		if _, err := s.tipoRepo.FindByID(ctx, *req.TipoID); err != nil {
			return nil, errors.New("tipo no encontrado")
		}
	}

	// Same natural key as the import path: never two products with the same
	// lowercased name inside one tipo.
	if _, err := s.repo.FindByNombreTipo(ctx, req.Nombre, req.TipoID); err == nil {
		return nil, errors.New("ya existe un producto con ese nombre en el tipo")
	}

	p := &model.Producto{
		Nombre:      req.Nombre,
		Marca:       req.Marca,
		PrecioCosto: req.PrecioCosto,
		Stock:       req.Stock,
		TipoID:      req.TipoID,
		Estado:      true,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	resp := productoToResponse(p)
	return &resp, nil
}

func (s *productoService) ObtenerPorID(ctx context.Context, id int) (*dto.ProductoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := productoToResponse(p)
	return &resp, nil
}

func (s *productoService) Listar(ctx context.Context, filter dto.ProductoFilter) (*dto.ProductoListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}
	productos, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.ProductoResponse, len(productos))
	for i := range productos {
		data[i] = productoToResponse(&productos[i])
	}
	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))
	return &dto.ProductoListResponse{
		Data: data, Total: total, Page: filter.Page, Limit: filter.Limit, TotalPages: totalPages,
	}, nil
}

func (s *productoService) Actualizar(ctx context.Context, id int, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("producto no encontrado")
	}
	if req.Nombre != nil {
		p.Nombre = *req.Nombre
	}
	if req.Marca != nil {
		p.Marca = *req.Marca
	}
	if req.PrecioCosto != nil {
		p.PrecioCosto = *req.PrecioCosto
	}
	if req.Stock != nil {
		p.Stock = *req.Stock
	}
	if req.TipoID != nil {
		if _, err := s.tipoRepo.FindByID(ctx, *req.TipoID); err != nil {
			return nil, errors.New("tipo no encontrado")
		}
		p.TipoID = req.TipoID
	}
	p.Tipo = nil
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	resp := productoToResponse(p)
	return &resp, nil
}

func (s *productoService) Desactivar(ctx context.Context, id int) error {
	return s.repo.SoftDelete(ctx, id)
}

func (s *productoService) Reactivar(ctx context.Context, id int) error {
	return s.repo.Reactivar(ctx, id)
}

func (s *productoService) ConsultarPrecio(ctx context.Context, id int, listaID int) (*dto.ConsultaPrecioResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("producto no encontrado")
	}

	resp := &dto.ConsultaPrecioResponse{
		ProductoID:  p.ID,
		Nombre:      p.Nombre,
		PrecioCosto: p.PrecioCosto,
		Origen:      "tipo",
	}

	if p.Modificado && listaID != 0 {
		if lista, err := s.listaRepo.FindByID(ctx, listaID); err == nil {
			for _, d := range lista.Detalles {
				if d.ProductoID == p.ID {
					resp.PrecioMayorista = aplicarPorcentaje(d.Precio, d.PorcMayor)
					resp.PrecioMinorista = aplicarPorcentaje(d.Precio, d.PorcMinor)
					resp.Origen = "lista"
					return resp, nil
				}
			}
		}
	}

	if p.Tipo != nil {
		resp.PrecioMayorista = aplicarPorcentaje(p.PrecioCosto, p.Tipo.PorcMayorista)
		resp.PrecioMinorista = aplicarPorcentaje(p.PrecioCosto, p.Tipo.PorcMinorista)
	} else {
		resp.PrecioMayorista = p.PrecioCosto
		resp.PrecioMinorista = p.PrecioCosto
	}
	return resp, nil
}

func aplicarPorcentaje(base, porc decimal.Decimal) decimal.Decimal {
	cien := decimal.NewFromInt(100)
	return base.Mul(cien.Add(porc)).Div(cien).Round(2)
}

func productoToResponse(p *model.Producto) dto.ProductoResponse {
	resp := dto.ProductoResponse{
		ID:          p.ID,
		Nombre:      p.Nombre,
		Marca:       p.Marca,
		PrecioCosto: p.PrecioCosto,
		Stock:       p.Stock,
		TipoID:      p.TipoID,
		Modificado:  p.Modificado,
		Estado:      p.Estado,
	}
	if p.Tipo != nil {
		resp.Tipo = p.Tipo.Nombre
	}
	return resp
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}
