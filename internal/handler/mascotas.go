package handler

import (
	"net/http"

	"elceibo/internal/apierror"
	"elceibo/internal/dto"
	"elceibo/internal/service"

	"github.com/gin-gonic/gin"
)

type MascotasHandler struct {
	svc          service.MascotaService
	historiaSvc  service.HistoriaService
}

func NewMascotasHandler(svc service.MascotaService, historiaSvc service.HistoriaService) *MascotasHandler {
	return &MascotasHandler{svc: svc, historiaSvc: historiaSvc}
}

func (h *MascotasHandler) Crear(c *gin.Context) {
	var req dto.CrearMascotaRequest
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

func (h *MascotasHandler) ObtenerPorID(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Mascota no encontrada"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MascotasHandler) Actualizar(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarMascotaRequest
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

func (h *MascotasHandler) Desactivar(c *gin.Context) {
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

// ── Historia clinica ─────────────────────────────────────────────────────────

func (h *MascotasHandler) Visitas(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	resp, err := h.historiaSvc.ListarVisitas(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar visitas"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MascotasHandler) Vacunas(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	resp, err := h.historiaSvc.ListarVacunas(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar vacunas"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
