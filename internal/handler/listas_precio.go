package handler

import (
	"fmt"
	"net/http"

	"elceibo/internal/apierror"
	"elceibo/internal/dto"
	"elceibo/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type ListasPrecioHandler struct {
	svc service.ListaPrecioService
	rdb *redis.Client
}

func NewListasPrecioHandler(svc service.ListaPrecioService, rdb *redis.Client) *ListasPrecioHandler {
	return &ListasPrecioHandler{svc: svc, rdb: rdb}
}

// Crear writes the list and all its details atomically: a failed detail or
// product flag rolls the whole write back.
func (h *ListasPrecioHandler) Crear(c *gin.Context) {
	var req dto.CrearListaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	// Marking a product modificado changes its price under every list
	// that carries it, not just the new one.
	for _, d := range req.Detalles {
		purgarCachePrecios(c.Request.Context(), h.rdb, fmt.Sprintf("precio:%d:*", d.ProductoID))
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ListasPrecioHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar listas de precios"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ListasPrecioHandler) ObtenerPorID(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Lista de precios no encontrada"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ListasPrecioHandler) Actualizar(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarListaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	// The previous detail set is gone by now, so purge everything rather
	// than guess which products it covered.
	purgarCachePrecios(c.Request.Context(), h.rdb, "precio:*")
	c.JSON(http.StatusOK, resp)
}

func (h *ListasPrecioHandler) Eliminar(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	purgarCachePrecios(c.Request.Context(), h.rdb, "precio:*")
	c.Status(http.StatusNoContent)
}
