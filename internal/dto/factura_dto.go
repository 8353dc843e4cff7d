package dto

import "github.com/shopspring/decimal"

type DetalleFacturaRequest struct {
	ProductoID     int             `json:"id_producto"     validate:"required,min=1"`
	Cantidad       decimal.Decimal `json:"cantidad"        validate:"required"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario" validate:"required"`
}

type CrearFacturaRequest struct {
	Dia            int                     `json:"dia"          validate:"required,min=1,max=31"`
	Mes            int                     `json:"mes"          validate:"required,min=1,max=12"`
	Anio           int                     `json:"anio"         validate:"required,min=2000"`
	Hora           string                  `json:"hora"`
	FormaPago      string                  `json:"forma_pago"   validate:"required"`
	TipoFactura    string                  `json:"tipo_factura" validate:"required,oneof=ingreso egreso"`
	DistribuidorID *int                    `json:"id_distribuidor"`
	Detalles       []DetalleFacturaRequest `json:"detalles"     validate:"required,min=1,dive"`
}

// ActualizarFacturaRequest only patches header fields: line items are
// immutable once the invoice exists.
type ActualizarFacturaRequest struct {
	Dia            *int    `json:"dia"  validate:"omitempty,min=1,max=31"`
	Mes            *int    `json:"mes"  validate:"omitempty,min=1,max=12"`
	Anio           *int    `json:"anio" validate:"omitempty,min=2000"`
	Hora           *string `json:"hora"`
	FormaPago      *string `json:"forma_pago"`
	DistribuidorID *int    `json:"id_distribuidor"`
}

type DetalleFacturaResponse struct {
	ProductoID     int             `json:"id_producto"`
	Producto       string          `json:"producto,omitempty"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

type FacturaResponse struct {
	ID             int                      `json:"id"`
	Dia            int                      `json:"dia"`
	Mes            int                      `json:"mes"`
	Anio           int                      `json:"anio"`
	Hora           string                   `json:"hora"`
	FormaPago      string                   `json:"forma_pago"`
	Total          decimal.Decimal          `json:"total"`
	TipoFactura    string                   `json:"tipo_factura"`
	UsuarioID      int                      `json:"id_usuario"`
	DistribuidorID *int                     `json:"id_distribuidor"`
	Detalles       []DetalleFacturaResponse `json:"detalles"`
}

type FacturaFilter struct {
	Mes         int    `form:"mes"  validate:"omitempty,min=1,max=12"`
	Anio        int    `form:"anio"`
	TipoFactura string `form:"tipo_factura" validate:"omitempty,oneof=ingreso egreso"`
	Page        int    `form:"page,default=1"   validate:"min=1"`
	Limit       int    `form:"limit,default=20" validate:"min=1,max=100"`
}

type FacturaListResponse struct {
	Data       []FacturaResponse `json:"data"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
}

// EnviarFacturaRequest asks for the invoice receipt to be emailed.
type EnviarFacturaRequest struct {
	Email string `json:"email" validate:"required,email"`
}
