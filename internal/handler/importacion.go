package handler

import (
	"net/http"
	"strings"

	"elceibo/internal/apierror"
	"elceibo/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type ImportacionHandler struct {
	svc service.ImportacionService
	rdb *redis.Client
}

func NewImportacionHandler(svc service.ImportacionService, rdb *redis.Client) *ImportacionHandler {
	return &ImportacionHandler{svc: svc, rdb: rdb}
}

// Importar godoc
// @Summary Importa un libro xlsx de respaldo
// @Tags importacion
// @Accept multipart/form-data
// @Produce json
// @Param archivo formData file true "Libro xlsx"
// @Param tabla formData string false "Fuerza todas las hojas a esta tabla"
// @Success 200 {object} dto.ImportacionResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/importaciones [post]
func (h *ImportacionHandler) Importar(c *gin.Context) {
	fileHeader, err := c.FormFile("archivo")
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Falta el archivo a importar"))
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("No se pudo leer el archivo"))
		return
	}
	defer f.Close()

	tabla := strings.TrimSpace(c.PostForm("tabla"))
	resp, err := h.svc.Importar(c.Request.Context(), f, tabla)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	// Restores can rewrite costs and percentages wholesale, so drop every
	// cached price instead of tracking individual rows.
	for _, res := range resp.ResultadosPorTabla {
		if res.Tabla == "productos" || res.Tabla == "tipos" {
			purgarCachePrecios(c.Request.Context(), h.rdb, "precio:*")
			break
		}
	}
	c.JSON(http.StatusOK, resp)
}
