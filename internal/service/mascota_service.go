package service

import (
	"context"
	"errors"

	"elceibo/internal/dto"
	"elceibo/internal/model"
	"elceibo/internal/repository"
)

type MascotaService interface {
	Crear(ctx context.Context, req dto.CrearMascotaRequest) (*dto.MascotaResponse, error)
	ObtenerPorID(ctx context.Context, id int) (*dto.MascotaResponse, error)
	ListarPorCliente(ctx context.Context, clienteID int) ([]dto.MascotaResponse, error)
	Actualizar(ctx context.Context, id int, req dto.ActualizarMascotaRequest) (*dto.MascotaResponse, error)
	Desactivar(ctx context.Context, id int) error
}

type mascotaService struct {
	repo        repository.MascotaRepository
	clienteRepo repository.ClienteRepository
}

func NewMascotaService(repo repository.MascotaRepository, clienteRepo repository.ClienteRepository) MascotaService {
	return &mascotaService{repo: repo, clienteRepo: clienteRepo}
}

func (s *mascotaService) Crear(ctx context.Context, req dto.CrearMascotaRequest) (*dto.MascotaResponse, error) {
	if _, err := s.clienteRepo.FindByID(ctx, req.ClienteID); err != nil {
		return nil, errors.New("cliente no encontrado")
	}

	m := &model.Mascota{
		Nombre:          req.Nombre,
		Especie:         req.Especie,
		Raza:            req.Raza,
		Sexo:            req.Sexo,
		Edad:            req.Edad,
		Peso:            req.Peso,
		Castrado:        req.Castrado,
		FechaNacimiento: req.FechaNacimiento,
		ClienteID:       req.ClienteID,
		Estado:          true,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	resp := mascotaToResponse(m)
	return &resp, nil
}

func (s *mascotaService) ObtenerPorID(ctx context.Context, id int) (*dto.MascotaResponse, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := mascotaToResponse(m)
	return &resp, nil
}

func (s *mascotaService) ListarPorCliente(ctx context.Context, clienteID int) ([]dto.MascotaResponse, error) {
	mascotas, err := s.repo.ListByCliente(ctx, clienteID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.MascotaResponse, len(mascotas))
	for i := range mascotas {
		resp[i] = mascotaToResponse(&mascotas[i])
	}
	return resp, nil
}

func (s *mascotaService) Actualizar(ctx context.Context, id int, req dto.ActualizarMascotaRequest) (*dto.MascotaResponse, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("mascota no encontrada")
	}
	if req.Nombre != nil {
		m.Nombre = *req.Nombre
	}
	if req.Especie != nil {
		m.Especie = *req.Especie
	}
	if req.Raza != nil {
		m.Raza = *req.Raza
	}
	if req.Sexo != nil {
		m.Sexo = *req.Sexo
	}
	if req.Edad != nil {
		m.Edad = *req.Edad
	}
	if req.Peso != nil {
		m.Peso = *req.Peso
	}
	if req.Castrado != nil {
		m.Castrado = *req.Castrado
	}
	if req.FechaNacimiento != nil {
		m.FechaNacimiento = req.FechaNacimiento
	}
	m.Cliente = nil
	if err := s.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	resp := mascotaToResponse(m)
	return &resp, nil
}

func (s *mascotaService) Desactivar(ctx context.Context, id int) error {
	return s.repo.SoftDelete(ctx, id)
}

func mascotaToResponse(m *model.Mascota) dto.MascotaResponse {
	resp := dto.MascotaResponse{
		ID:              m.ID,
		Nombre:          m.Nombre,
		Especie:         m.Especie,
		Raza:            m.Raza,
		Sexo:            m.Sexo,
		Edad:            m.Edad,
		Peso:            m.Peso,
		Castrado:        m.Castrado,
		FechaNacimiento: m.FechaNacimiento,
		ClienteID:       m.ClienteID,
		Estado:          m.Estado,
	}
	if m.Cliente != nil {
		resp.Cliente = m.Cliente.Apellido + ", " + m.Cliente.Nombre
	}
	return resp
}
