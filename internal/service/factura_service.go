package service

import (
	"context"
	"errors"
	"math"

	"elceibo/internal/dto"
	"elceibo/internal/model"
	"elceibo/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// FacturaDispatcher enqueues the async email job for an invoice receipt.
// The worker package provides the redis-backed implementation.
type FacturaDispatcher interface {
	EnqueueFacturaEmail(ctx context.Context, facturaID int, email string) error
}

type FacturaService interface {
	Crear(ctx context.Context, usuarioID int, req dto.CrearFacturaRequest) (*dto.FacturaResponse, error)
	ObtenerPorID(ctx context.Context, id int) (*dto.FacturaResponse, error)
	Listar(ctx context.Context, filter dto.FacturaFilter) (*dto.FacturaListResponse, error)
	ActualizarEncabezado(ctx context.Context, id int, req dto.ActualizarFacturaRequest) (*dto.FacturaResponse, error)
	Eliminar(ctx context.Context, id int) error
	EnviarPorEmail(ctx context.Context, id int, req dto.EnviarFacturaRequest) error
}

type facturaService struct {
	repo         repository.FacturaRepository
	productoRepo repository.ProductoRepository
	dispatcher   FacturaDispatcher
}

func NewFacturaService(repo repository.FacturaRepository, productoRepo repository.ProductoRepository, dispatcher FacturaDispatcher) FacturaService {
	return &facturaService{repo: repo, productoRepo: productoRepo, dispatcher: dispatcher}
}

// Crear persists the invoice with its lines and adjusts product stock in one
// transaction. "ingreso" (a sale) decrements stock, "egreso" (a purchase)
// increments it. The total is always recomputed server side.
func (s *facturaService) Crear(ctx context.Context, usuarioID int, req dto.CrearFacturaRequest) (*dto.FacturaResponse, error) {
	total := decimal.Zero
	detalles := make([]model.DetalleFactura, 0, len(req.Detalles))
	for _, d := range req.Detalles {
		if d.Cantidad.LessThanOrEqual(decimal.Zero) {
			return nil, errors.New("la cantidad debe ser mayor a cero")
		}
		if _, err := s.productoRepo.FindByID(ctx, d.ProductoID); err != nil {
			return nil, errors.New("producto no encontrado")
		}
		subtotal := d.Cantidad.Mul(d.PrecioUnitario)
		total = total.Add(subtotal)
		detalles = append(detalles, model.DetalleFactura{
			ProductoID:     d.ProductoID,
			Cantidad:       d.Cantidad,
			PrecioUnitario: d.PrecioUnitario,
		})
	}

	f := &model.Factura{
		Dia:            req.Dia,
		Mes:            req.Mes,
		Anio:           req.Anio,
		Hora:           req.Hora,
		FormaPago:      req.FormaPago,
		Total:          total.Round(2),
		TipoFactura:    req.TipoFactura,
		UsuarioID:      usuarioID,
		DistribuidorID: req.DistribuidorID,
		Detalles:       detalles,
	}

	err := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CreateTx(tx, f); err != nil {
			return err
		}
		for _, d := range f.Detalles {
			delta := d.Cantidad
			if f.TipoFactura == "ingreso" {
				delta = delta.Neg()
			}
			if err := s.productoRepo.AjustarStockTx(tx, d.ProductoID, delta); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.ObtenerPorID(ctx, f.ID)
}

func (s *facturaService) ObtenerPorID(ctx context.Context, id int) (*dto.FacturaResponse, error) {
	f, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := facturaToResponse(f)
	return &resp, nil
}

func (s *facturaService) Listar(ctx context.Context, filter dto.FacturaFilter) (*dto.FacturaListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}
	facturas, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.FacturaResponse, len(facturas))
	for i := range facturas {
		data[i] = facturaToResponse(&facturas[i])
	}
	return &dto.FacturaListResponse{
		Data:       data,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
	}, nil
}

func (s *facturaService) ActualizarEncabezado(ctx context.Context, id int, req dto.ActualizarFacturaRequest) (*dto.FacturaResponse, error) {
	f, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("factura no encontrada")
	}
	if req.Dia != nil {
		f.Dia = *req.Dia
	}
	if req.Mes != nil {
		f.Mes = *req.Mes
	}
	if req.Anio != nil {
		f.Anio = *req.Anio
	}
	if req.Hora != nil {
		f.Hora = *req.Hora
	}
	if req.FormaPago != nil {
		f.FormaPago = *req.FormaPago
	}
	if req.DistribuidorID != nil {
		f.DistribuidorID = req.DistribuidorID
	}
	if err := s.repo.UpdateHeader(ctx, f); err != nil {
		return nil, err
	}
	return s.ObtenerPorID(ctx, id)
}

func (s *facturaService) Eliminar(ctx context.Context, id int) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return errors.New("factura no encontrada")
	}
	return s.repo.Delete(ctx, id)
}

// EnviarPorEmail only enqueues the job; PDF rendering and SMTP delivery
// happen in the worker pool.
func (s *facturaService) EnviarPorEmail(ctx context.Context, id int, req dto.EnviarFacturaRequest) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return errors.New("factura no encontrada")
	}
	return s.dispatcher.EnqueueFacturaEmail(ctx, id, req.Email)
}

func facturaToResponse(f *model.Factura) dto.FacturaResponse {
	detalles := make([]dto.DetalleFacturaResponse, len(f.Detalles))
	for i, d := range f.Detalles {
		dr := dto.DetalleFacturaResponse{
			ProductoID:     d.ProductoID,
			Cantidad:       d.Cantidad,
			PrecioUnitario: d.PrecioUnitario,
			Subtotal:       d.Cantidad.Mul(d.PrecioUnitario).Round(2),
		}
		if d.Producto != nil {
			dr.Producto = d.Producto.Nombre
		}
		detalles[i] = dr
	}
	return dto.FacturaResponse{
		ID:             f.ID,
		Dia:            f.Dia,
		Mes:            f.Mes,
		Anio:           f.Anio,
		Hora:           f.Hora,
		FormaPago:      f.FormaPago,
		Total:          f.Total,
		TipoFactura:    f.TipoFactura,
		UsuarioID:      f.UsuarioID,
		DistribuidorID: f.DistribuidorID,
		Detalles:       detalles,
	}
}
