package handler

import (
	"net/http"

	"elceibo/internal/apierror"
	"elceibo/internal/dto"
	"elceibo/internal/service"

	"github.com/gin-gonic/gin"
)

type DistribuidoresHandler struct{ svc service.DistribuidorService }

func NewDistribuidoresHandler(svc service.DistribuidorService) *DistribuidoresHandler {
	return &DistribuidoresHandler{svc: svc}
}

func (h *DistribuidoresHandler) Crear(c *gin.Context) {
	var req dto.CrearDistribuidorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *DistribuidoresHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar distribuidores"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DistribuidoresHandler) ObtenerPorID(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Distribuidor no encontrado"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DistribuidoresHandler) Actualizar(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req dto.CrearDistribuidorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DistribuidoresHandler) Desactivar(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Desactivar(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}
