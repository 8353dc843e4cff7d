package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"elceibo/internal/apierror"
	"elceibo/internal/dto"
	"elceibo/internal/service"

	"github.com/gin-gonic/gin"
)

const contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ExportacionHandler struct{ svc service.ExportacionService }

func NewExportacionHandler(svc service.ExportacionService) *ExportacionHandler {
	return &ExportacionHandler{svc: svc}
}

// Exportar godoc
// @Summary Genera el libro xlsx de respaldo de las tablas pedidas
// @Tags exportacion
// @Accept json
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param body body dto.ExportacionRequest true "Tablas a exportar"
// @Success 200 {file} binary
// @Failure 400 {object} apierror.APIError
// @Router /v1/exportaciones [post]
func (h *ExportacionHandler) Exportar(c *gin.Context) {
	var req dto.ExportacionRequest
	if !bindAndValidate(c, &req) {
		return
	}

	var buf bytes.Buffer
	if err := h.svc.Exportar(c.Request.Context(), &buf, req.Tablas); err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("No se pudo generar el respaldo"))
		return
	}

	filename := fmt.Sprintf("respaldo_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentTypeXLSX, buf.Bytes())
}
