package handler

import (
	"net/http"

	"elceibo/internal/apierror"
	"elceibo/internal/dto"
	"elceibo/internal/service"

	"github.com/gin-gonic/gin"
)

// HistoriaHandler serves clinical visits and applied vaccines.
type HistoriaHandler struct{ svc service.HistoriaService }

func NewHistoriaHandler(svc service.HistoriaService) *HistoriaHandler {
	return &HistoriaHandler{svc: svc}
}

func (h *HistoriaHandler) CrearVisita(c *gin.Context) {
	var req dto.CrearVisitaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CrearVisita(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *HistoriaHandler) ActualizarVisita(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarVisitaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ActualizarVisita(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *HistoriaHandler) EliminarVisita(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.EliminarVisita(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *HistoriaHandler) RegistrarVacuna(c *gin.Context) {
	var req dto.CrearVacunaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegistrarVacuna(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *HistoriaHandler) EliminarVacuna(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.EliminarVacuna(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}
