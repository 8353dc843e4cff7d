package service

import (
	"context"
	"errors"

	"elceibo/internal/dto"
	"elceibo/internal/model"
	"elceibo/internal/repository"
)

// HistoriaService covers the clinical history of a mascota: visits and
// applied vaccines.
type HistoriaService interface {
	CrearVisita(ctx context.Context, req dto.CrearVisitaRequest) (*dto.VisitaResponse, error)
	ListarVisitas(ctx context.Context, mascotaID int) ([]dto.VisitaResponse, error)
	ActualizarVisita(ctx context.Context, id int, req dto.ActualizarVisitaRequest) (*dto.VisitaResponse, error)
	EliminarVisita(ctx context.Context, id int) error

	RegistrarVacuna(ctx context.Context, req dto.CrearVacunaRequest) (*dto.VacunaResponse, error)
	ListarVacunas(ctx context.Context, mascotaID int) ([]dto.VacunaResponse, error)
	EliminarVacuna(ctx context.Context, id int) error
}

type historiaService struct {
	visitaRepo  repository.VisitaRepository
	vacunaRepo  repository.VacunaRepository
	mascotaRepo repository.MascotaRepository
}

func NewHistoriaService(visitaRepo repository.VisitaRepository, vacunaRepo repository.VacunaRepository, mascotaRepo repository.MascotaRepository) HistoriaService {
	return &historiaService{visitaRepo: visitaRepo, vacunaRepo: vacunaRepo, mascotaRepo: mascotaRepo}
}

func (s *historiaService) CrearVisita(ctx context.Context, req dto.CrearVisitaRequest) (*dto.VisitaResponse, error) {
	if _, err := s.mascotaRepo.FindByID(ctx, req.MascotaID); err != nil {
		return nil, errors.New("mascota no encontrada")
	}
	v := &model.Visita{
		MascotaID:   req.MascotaID,
		Fecha:       req.Fecha,
		Motivo:      req.Motivo,
		Diagnostico: req.Diagnostico,
		Tratamiento: req.Tratamiento,
	}
	if err := s.visitaRepo.Create(ctx, v); err != nil {
		return nil, err
	}
	resp := visitaToResponse(v)
	return &resp, nil
}

func (s *historiaService) ListarVisitas(ctx context.Context, mascotaID int) ([]dto.VisitaResponse, error) {
	visitas, err := s.visitaRepo.ListByMascota(ctx, mascotaID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.VisitaResponse, len(visitas))
	for i := range visitas {
		resp[i] = visitaToResponse(&visitas[i])
	}
	return resp, nil
}

func (s *historiaService) ActualizarVisita(ctx context.Context, id int, req dto.ActualizarVisitaRequest) (*dto.VisitaResponse, error) {
	v, err := s.visitaRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("visita no encontrada")
	}
	if req.Fecha != nil {
		v.Fecha = *req.Fecha
	}
	if req.Motivo != nil {
		v.Motivo = *req.Motivo
	}
	if req.Diagnostico != nil {
		v.Diagnostico = *req.Diagnostico
	}
	if req.Tratamiento != nil {
		v.Tratamiento = *req.Tratamiento
	}
	if err := s.visitaRepo.Update(ctx, v); err != nil {
		return nil, err
	}
	resp := visitaToResponse(v)
	return &resp, nil
}

func (s *historiaService) EliminarVisita(ctx context.Context, id int) error {
	if _, err := s.visitaRepo.FindByID(ctx, id); err != nil {
		return errors.New("visita no encontrada")
	}
	return s.visitaRepo.Delete(ctx, id)
}

func (s *historiaService) RegistrarVacuna(ctx context.Context, req dto.CrearVacunaRequest) (*dto.VacunaResponse, error) {
	if _, err := s.mascotaRepo.FindByID(ctx, req.MascotaID); err != nil {
		return nil, errors.New("mascota no encontrada")
	}
	v := &model.VacunaAplicada{
		MascotaID:    req.MascotaID,
		Nombre:       req.Nombre,
		Fecha:        req.Fecha,
		ProximaDosis: req.ProximaDosis,
	}
	if err := s.vacunaRepo.Create(ctx, v); err != nil {
		return nil, err
	}
	resp := vacunaToResponse(v)
	return &resp, nil
}

func (s *historiaService) ListarVacunas(ctx context.Context, mascotaID int) ([]dto.VacunaResponse, error) {
	vacunas, err := s.vacunaRepo.ListByMascota(ctx, mascotaID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.VacunaResponse, len(vacunas))
	for i := range vacunas {
		resp[i] = vacunaToResponse(&vacunas[i])
	}
	return resp, nil
}

func (s *historiaService) EliminarVacuna(ctx context.Context, id int) error {
	return s.vacunaRepo.Delete(ctx, id)
}

func visitaToResponse(v *model.Visita) dto.VisitaResponse {
	return dto.VisitaResponse{
		ID:          v.ID,
		MascotaID:   v.MascotaID,
		Fecha:       v.Fecha,
		Motivo:      v.Motivo,
		Diagnostico: v.Diagnostico,
		Tratamiento: v.Tratamiento,
	}
}

func vacunaToResponse(v *model.VacunaAplicada) dto.VacunaResponse {
	return dto.VacunaResponse{
		ID:           v.ID,
		MascotaID:    v.MascotaID,
		Nombre:       v.Nombre,
		Fecha:        v.Fecha,
		ProximaDosis: v.ProximaDosis,
	}
}
