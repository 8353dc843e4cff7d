package service

import (
	"context"
	"errors"

	"elceibo/internal/dto"
	"elceibo/internal/model"
	"elceibo/internal/repository"
)

type DistribuidorService interface {
	Crear(ctx context.Context, req dto.CrearDistribuidorRequest) (*dto.DistribuidorResponse, error)
	ObtenerPorID(ctx context.Context, id int) (*dto.DistribuidorResponse, error)
	Listar(ctx context.Context) ([]dto.DistribuidorResponse, error)
	Actualizar(ctx context.Context, id int, req dto.CrearDistribuidorRequest) (*dto.DistribuidorResponse, error)
	Desactivar(ctx context.Context, id int) error
}

type distribuidorService struct {
	repo repository.DistribuidorRepository
}

func NewDistribuidorService(repo repository.DistribuidorRepository) DistribuidorService {
	return &distribuidorService{repo: repo}
}

func (s *distribuidorService) Crear(ctx context.Context, req dto.CrearDistribuidorRequest) (*dto.DistribuidorResponse, error) {
	d := &model.Distribuidor{
		Nombre:    req.Nombre,
		Telefono:  req.Telefono,
		Email:     req.Email,
		Direccion: req.Direccion,
		Estado:    true,
	}
	if err := s.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	resp := distribuidorToResponse(d)
	return &resp, nil
}

func (s *distribuidorService) ObtenerPorID(ctx context.Context, id int) (*dto.DistribuidorResponse, error) {
	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := distribuidorToResponse(d)
	return &resp, nil
}

func (s *distribuidorService) Listar(ctx context.Context) ([]dto.DistribuidorResponse, error) {
	distribuidores, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.DistribuidorResponse, len(distribuidores))
	for i := range distribuidores {
		resp[i] = distribuidorToResponse(&distribuidores[i])
	}
	return resp, nil
}

func (s *distribuidorService) Actualizar(ctx context.Context, id int, req dto.CrearDistribuidorRequest) (*dto.DistribuidorResponse, error) {
	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("distribuidor no encontrado")
	}
	d.Nombre = req.Nombre
	d.Telefono = req.Telefono
	d.Email = req.Email
	d.Direccion = req.Direccion
	if err := s.repo.Update(ctx, d); err != nil {
		return nil, err
	}
	resp := distribuidorToResponse(d)
	return &resp, nil
}

func (s *distribuidorService) Desactivar(ctx context.Context, id int) error {
	return s.repo.SoftDelete(ctx, id)
}

func distribuidorToResponse(d *model.Distribuidor) dto.DistribuidorResponse {
	return dto.DistribuidorResponse{
		ID:        d.ID,
		Nombre:    d.Nombre,
		Telefono:  d.Telefono,
		Email:     d.Email,
		Direccion: d.Direccion,
		Estado:    d.Estado,
	}
}
