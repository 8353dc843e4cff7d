package service

import (
	"context"
	"io"
	"strings"

	"elceibo/internal/planilla"
	"elceibo/internal/repository"

	"github.com/rs/zerolog/log"
)

type ExportacionService interface {
	// Exportar builds the backup workbook for the requested tables and
	// streams it to w. Empty tables still get their placeholder sheet and a
	// failed query gets a "<tabla>_error" sheet; neither aborts the export.
	Exportar(ctx context.Context, w io.Writer, tablas []string) error
}

type exportacionService struct {
	repo repository.ExportacionRepository
}

func NewExportacionService(repo repository.ExportacionRepository) ExportacionService {
	return &exportacionService{repo: repo}
}

func (s *exportacionService) Exportar(ctx context.Context, w io.Writer, tablas []string) error {
	libro := planilla.NuevoLibro()

	for _, tabla := range tablas {
		tabla = strings.ToLower(strings.TrimSpace(tabla))
		consulta, ok := s.repo.Consulta(tabla)
		if !ok {
			log.Warn().Str("tabla", tabla).Msg("tabla no exportable, se omite")
			continue
		}

		filas, err := s.repo.Ejecutar(ctx, consulta)
		if err != nil {
			log.Error().Err(err).Str("tabla", tabla).Msg("fallo la consulta de exportacion")
			if err := libro.AgregarHojaError(consulta.Tabla, err); err != nil {
				return err
			}
			continue
		}
		if len(filas) == 0 {
			if err := libro.AgregarHojaSinDatos(consulta.Tabla); err != nil {
				return err
			}
			continue
		}
		if err := libro.AgregarHoja(consulta.Tabla, consulta.Encabezados, filas); err != nil {
			return err
		}
	}

	return libro.Escribir(w)
}
