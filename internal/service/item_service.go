package service

import (
	"context"
	"errors"

	"elceibo/internal/dto"
	"elceibo/internal/model"
	"elceibo/internal/repository"
)

type ItemService interface {
	Crear(ctx context.Context, req dto.CrearItemRequest) (*dto.ItemResponse, error)
	ObtenerPorID(ctx context.Context, id int) (*dto.ItemResponse, error)
	Listar(ctx context.Context) ([]dto.ItemResponse, error)
	Actualizar(ctx context.Context, id int, req dto.ActualizarItemRequest) (*dto.ItemResponse, error)
	Desactivar(ctx context.Context, id int) error
}

type itemService struct {
	repo repository.ItemRepository
}

func NewItemService(repo repository.ItemRepository) ItemService {
	return &itemService{repo: repo}
}

func (s *itemService) Crear(ctx context.Context, req dto.CrearItemRequest) (*dto.ItemResponse, error) {
	i := &model.Item{
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		Precio:      req.Precio,
		Stock:       req.Stock,
		Estado:      true,
	}
	if err := s.repo.Create(ctx, i); err != nil {
		return nil, err
	}
	resp := itemToResponse(i)
	return &resp, nil
}

func (s *itemService) ObtenerPorID(ctx context.Context, id int) (*dto.ItemResponse, error) {
	i, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := itemToResponse(i)
	return &resp, nil
}

func (s *itemService) Listar(ctx context.Context) ([]dto.ItemResponse, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ItemResponse, len(items))
	for i := range items {
		resp[i] = itemToResponse(&items[i])
	}
	return resp, nil
}

func (s *itemService) Actualizar(ctx context.Context, id int, req dto.ActualizarItemRequest) (*dto.ItemResponse, error) {
	i, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("item no encontrado")
	}
	if req.Nombre != nil {
		i.Nombre = *req.Nombre
	}
	if req.Descripcion != nil {
		i.Descripcion = req.Descripcion
	}
	if req.Precio != nil {
		i.Precio = *req.Precio
	}
	if req.Stock != nil {
		i.Stock = *req.Stock
	}
	if err := s.repo.Update(ctx, i); err != nil {
		return nil, err
	}
	resp := itemToResponse(i)
	return &resp, nil
}

func (s *itemService) Desactivar(ctx context.Context, id int) error {
	return s.repo.SoftDelete(ctx, id)
}

func itemToResponse(i *model.Item) dto.ItemResponse {
	return dto.ItemResponse{
		ID:          i.ID,
		Nombre:      i.Nombre,
		Descripcion: i.Descripcion,
		Precio:      i.Precio,
		Stock:       i.Stock,
		Estado:      i.Estado,
	}
}
