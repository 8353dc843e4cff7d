package service

import (
	"context"
	"errors"

	"elceibo/internal/dto"
	"elceibo/internal/model"
	"elceibo/internal/repository"

	"gorm.io/gorm"
)

type ListaPrecioService interface {
	Crear(ctx context.Context, req dto.CrearListaRequest) (*dto.ListaResponse, error)
	ObtenerPorID(ctx context.Context, id int) (*dto.ListaResponse, error)
	Listar(ctx context.Context) ([]dto.ListaResponse, error)
	Actualizar(ctx context.Context, id int, req dto.ActualizarListaRequest) (*dto.ListaResponse, error)
	Eliminar(ctx context.Context, id int) error
}

type listaPrecioService struct {
	repo         repository.ListaPrecioRepository
	productoRepo repository.ProductoRepository
}

func NewListaPrecioService(repo repository.ListaPrecioRepository, productoRepo repository.ProductoRepository) ListaPrecioService {
	return &listaPrecioService{repo: repo, productoRepo: productoRepo}
}

// Crear writes the list, its detail rows and the modificado flag of every
// referenced product in a single transaction. Any failure rolls back the
// whole write.
func (s *listaPrecioService) Crear(ctx context.Context, req dto.CrearListaRequest) (*dto.ListaResponse, error) {
	for _, d := range req.Detalles {
		if _, err := s.productoRepo.FindByID(ctx, d.ProductoID); err != nil {
			return nil, errors.New("producto no encontrado")
		}
	}

	l := &model.ListaPrecio{Nombre: req.Nombre}
	err := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CreateTx(tx, l); err != nil {
			return err
		}
		if err := s.repo.ReplaceDetallesTx(tx, l.ID, detallesDesdeRequest(req.Detalles)); err != nil {
			return err
		}
		for _, d := range req.Detalles {
			if err := s.productoRepo.MarcarModificadoTx(tx, d.ProductoID, true); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.ObtenerPorID(ctx, l.ID)
}

func (s *listaPrecioService) ObtenerPorID(ctx context.Context, id int) (*dto.ListaResponse, error) {
	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := listaToResponse(l)
	return &resp, nil
}

func (s *listaPrecioService) Listar(ctx context.Context) ([]dto.ListaResponse, error) {
	listas, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ListaResponse, len(listas))
	for i := range listas {
		resp[i] = listaToResponse(&listas[i])
	}
	return resp, nil
}

// Actualizar replaces the detail set when one is sent. It runs under the
// same all-or-nothing transaction as Crear.
func (s *listaPrecioService) Actualizar(ctx context.Context, id int, req dto.ActualizarListaRequest) (*dto.ListaResponse, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, errors.New("lista de precios no encontrada")
	}
	for _, d := range req.Detalles {
		if _, err := s.productoRepo.FindByID(ctx, d.ProductoID); err != nil {
			return nil, errors.New("producto no encontrado")
		}
	}

	err := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if req.Nombre != nil {
			if err := s.repo.UpdateNombreTx(tx, id, *req.Nombre); err != nil {
				return err
			}
		}
		if req.Detalles == nil {
			return nil
		}
		if err := s.repo.ReplaceDetallesTx(tx, id, detallesDesdeRequest(req.Detalles)); err != nil {
			return err
		}
		for _, d := range req.Detalles {
			if err := s.productoRepo.MarcarModificadoTx(tx, d.ProductoID, true); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.ObtenerPorID(ctx, id)
}

func (s *listaPrecioService) Eliminar(ctx context.Context, id int) error {
	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return errors.New("lista de precios no encontrada")
	}
	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.DeleteTx(tx, id); err != nil {
			return err
		}
		// Products lose list pricing and fall back to the tipo markups.
		for _, d := range l.Detalles {
			if err := s.productoRepo.MarcarModificadoTx(tx, d.ProductoID, false); err != nil {
				return err
			}
		}
		return nil
	})
}

func detallesDesdeRequest(reqs []dto.DetalleListaRequest) []model.DetalleLista {
	detalles := make([]model.DetalleLista, len(reqs))
	for i, d := range reqs {
		detalles[i] = model.DetalleLista{
			ProductoID: d.ProductoID,
			Precio:     d.Precio,
			PorcMayor:  d.PorcMayor,
			PorcMinor:  d.PorcMinor,
		}
	}
	return detalles
}

func listaToResponse(l *model.ListaPrecio) dto.ListaResponse {
	detalles := make([]dto.DetalleListaResponse, len(l.Detalles))
	for i, d := range l.Detalles {
		dr := dto.DetalleListaResponse{
			ProductoID: d.ProductoID,
			Precio:     d.Precio,
			PorcMayor:  d.PorcMayor,
			PorcMinor:  d.PorcMinor,
		}
		if d.Producto != nil {
			dr.Producto = d.Producto.Nombre
		}
		detalles[i] = dr
	}
	return dto.ListaResponse{ID: l.ID, Nombre: l.Nombre, Detalles: detalles}
}
