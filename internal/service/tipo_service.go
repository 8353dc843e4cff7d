package service

import (
	"context"
	"errors"

	"elceibo/internal/dto"
	"elceibo/internal/model"
	"elceibo/internal/repository"

	"gorm.io/gorm"
)

type TipoService interface {
	Crear(ctx context.Context, req dto.CrearTipoRequest) (*dto.TipoResponse, error)
	Listar(ctx context.Context) ([]dto.TipoResponse, error)
	Actualizar(ctx context.Context, id int, req dto.ActualizarTipoRequest) (*dto.TipoResponse, error)
	Eliminar(ctx context.Context, id int) error
}

type tipoService struct {
	repo repository.TipoRepository
}

func NewTipoService(repo repository.TipoRepository) TipoService {
	return &tipoService{repo: repo}
}

func (s *tipoService) Crear(ctx context.Context, req dto.CrearTipoRequest) (*dto.TipoResponse, error) {
	if _, err := s.repo.FindByNombre(ctx, req.Nombre); err == nil {
		return nil, errors.New("ya existe un tipo con ese nombre")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	t := &model.Tipo{
		Nombre:        req.Nombre,
		PorcMayorista: req.PorcMayorista,
		PorcMinorista: req.PorcMinorista,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	resp := tipoToResponse(t)
	return &resp, nil
}

func (s *tipoService) Listar(ctx context.Context) ([]dto.TipoResponse, error) {
	tipos, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.TipoResponse, len(tipos))
	for i := range tipos {
		resp[i] = tipoToResponse(&tipos[i])
	}
	return resp, nil
}

func (s *tipoService) Actualizar(ctx context.Context, id int, req dto.ActualizarTipoRequest) (*dto.TipoResponse, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("tipo no encontrado")
	}
	if req.Nombre != nil {
		t.Nombre = *req.Nombre
	}
	if req.PorcMayorista != nil {
		t.PorcMayorista = *req.PorcMayorista
	}
	if req.PorcMinorista != nil {
		t.PorcMinorista = *req.PorcMinorista
	}
	if err := s.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	resp := tipoToResponse(t)
	return &resp, nil
}

func (s *tipoService) Eliminar(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func tipoToResponse(t *model.Tipo) dto.TipoResponse {
	return dto.TipoResponse{
		ID:            t.ID,
		Nombre:        t.Nombre,
		PorcMayorista: t.PorcMayorista,
		PorcMinorista: t.PorcMinorista,
	}
}
