package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"elceibo/internal/infra"
	"elceibo/internal/repository"

	"github.com/rs/zerolog/log"
)

// EmailWorker renders the receipt PDF for a factura and mails it.
type EmailWorker struct {
	facturaRepo repository.FacturaRepository
	mailer      *infra.Mailer
	storagePath string
}

func NewEmailWorker(facturaRepo repository.FacturaRepository, mailer *infra.Mailer, storagePath string) *EmailWorker {
	return &EmailWorker{facturaRepo: facturaRepo, mailer: mailer, storagePath: storagePath}
}

func (w *EmailWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload FacturaEmailPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("email_worker: payload invalido")
		return
	}
	if payload.ToEmail == "" {
		log.Warn().Msg("email_worker: destinatario vacio, se omite")
		return
	}

	factura, err := w.facturaRepo.FindByID(ctx, payload.FacturaID)
	if err != nil {
		log.Error().Err(err).Int("factura_id", payload.FacturaID).Msg("email_worker: factura no encontrada")
		return
	}

	pdfPath, err := infra.GenerateFacturaPDF(factura, w.storagePath)
	if err != nil {
		log.Error().Err(err).Int("factura_id", factura.ID).Msg("email_worker: no se pudo generar el PDF")
		return
	}

	subject := fmt.Sprintf("Veterinaria El Ceibo - Factura N° %d", factura.ID)
	body := fmt.Sprintf("Adjuntamos el comprobante de su factura N° %d.\n\nVeterinaria El Ceibo", factura.ID)
	if err := w.mailer.SendFactura(payload.ToEmail, subject, body, pdfPath); err != nil {
		log.Error().Err(err).Str("to", payload.ToEmail).Msg("email_worker: fallo el envio")
		return
	}
	log.Info().Str("to", payload.ToEmail).Int("factura_id", factura.ID).Msg("email_worker: comprobante enviado")
}
