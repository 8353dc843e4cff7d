package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elceibo/internal/dto"
	"elceibo/internal/model"
)

type fixturaFactura struct {
	svc        FacturaService
	facturas   *stubFacturaRepo
	productos  *stubProductoRepo
	dispatcher *stubDispatcher
}

func nuevaFixturaFactura(t *testing.T) fixturaFactura {
	t.Helper()
	facturas := newStubFacturaRepo()
	productos := newStubProductoRepo()
	productos.agregar(model.Producto{Nombre: "Vacuna antirrabica", PrecioCosto: decimalDe(t, "2000"), Stock: decimalDe(t, "10"), Estado: true})
	productos.agregar(model.Producto{Nombre: "Collar isabelino", PrecioCosto: decimalDe(t, "900"), Stock: decimalDe(t, "4"), Estado: true})
	dispatcher := &stubDispatcher{}
	return fixturaFactura{
		svc:        NewFacturaService(facturas, productos, dispatcher),
		facturas:   facturas,
		productos:  productos,
		dispatcher: dispatcher,
	}
}

func reqFacturaBase() dto.CrearFacturaRequest {
	return dto.CrearFacturaRequest{
		Dia:         15,
		Mes:         8,
		Anio:        2026,
		Hora:        "10:30",
		FormaPago:   "efectivo",
		TipoFactura: "ingreso",
	}
}

func TestCrearFacturaRecalculaElTotalEnElServidor(t *testing.T) {
	fx := nuevaFixturaFactura(t)

	req := reqFacturaBase()
	req.Detalles = []dto.DetalleFacturaRequest{
		{ProductoID: 1, Cantidad: decimalDe(t, "2"), PrecioUnitario: decimalDe(t, "2500")},
		{ProductoID: 2, Cantidad: decimalDe(t, "1"), PrecioUnitario: decimalDe(t, "1200.50")},
	}

	resp, err := fx.svc.Crear(context.Background(), 7, req)
	require.NoError(t, err)

	assert.True(t, resp.Total.Equal(decimalDe(t, "6200.50")), "total: %s", resp.Total)
	assert.Equal(t, 7, resp.UsuarioID)
	require.Len(t, resp.Detalles, 2)
	assert.True(t, resp.Detalles[0].Subtotal.Equal(decimalDe(t, "5000")))
}

func TestCrearFacturaIngresoDescuentaStock(t *testing.T) {
	fx := nuevaFixturaFactura(t)

	req := reqFacturaBase()
	req.Detalles = []dto.DetalleFacturaRequest{
		{ProductoID: 1, Cantidad: decimalDe(t, "3"), PrecioUnitario: decimalDe(t, "2500")},
	}

	_, err := fx.svc.Crear(context.Background(), 1, req)
	require.NoError(t, err)

	assert.True(t, fx.productos.productos[1].Stock.Equal(decimalDe(t, "7")), "stock: %s", fx.productos.productos[1].Stock)
}

func TestCrearFacturaEgresoSumaStock(t *testing.T) {
	fx := nuevaFixturaFactura(t)

	req := reqFacturaBase()
	req.TipoFactura = "egreso"
	req.Detalles = []dto.DetalleFacturaRequest{
		{ProductoID: 2, Cantidad: decimalDe(t, "6"), PrecioUnitario: decimalDe(t, "700")},
	}

	_, err := fx.svc.Crear(context.Background(), 1, req)
	require.NoError(t, err)

	assert.True(t, fx.productos.productos[2].Stock.Equal(decimalDe(t, "10")), "stock: %s", fx.productos.productos[2].Stock)
}

func TestCrearFacturaRechazaCantidadNoPositiva(t *testing.T) {
	fx := nuevaFixturaFactura(t)

	req := reqFacturaBase()
	req.Detalles = []dto.DetalleFacturaRequest{
		{ProductoID: 1, Cantidad: decimalDe(t, "0"), PrecioUnitario: decimalDe(t, "2500")},
	}

	_, err := fx.svc.Crear(context.Background(), 1, req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cantidad")
	assert.Empty(t, fx.facturas.facturas)
}

func TestCrearFacturaConProductoInexistente(t *testing.T) {
	fx := nuevaFixturaFactura(t)

	req := reqFacturaBase()
	req.Detalles = []dto.DetalleFacturaRequest{
		{ProductoID: 99, Cantidad: decimalDe(t, "1"), PrecioUnitario: decimalDe(t, "100")},
	}

	_, err := fx.svc.Crear(context.Background(), 1, req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "producto no encontrado")
}

func TestActualizarEncabezadoNoTocaLosDetalles(t *testing.T) {
	fx := nuevaFixturaFactura(t)

	req := reqFacturaBase()
	req.Detalles = []dto.DetalleFacturaRequest{
		{ProductoID: 1, Cantidad: decimalDe(t, "1"), PrecioUnitario: decimalDe(t, "2500")},
	}
	creada, err := fx.svc.Crear(context.Background(), 1, req)
	require.NoError(t, err)

	pago := "tarjeta"
	resp, err := fx.svc.ActualizarEncabezado(context.Background(), creada.ID, dto.ActualizarFacturaRequest{
		FormaPago: &pago,
	})
	require.NoError(t, err)

	assert.Equal(t, "tarjeta", resp.FormaPago)
	assert.True(t, resp.Total.Equal(creada.Total))
	require.Len(t, resp.Detalles, 1)
	assert.True(t, resp.Detalles[0].Cantidad.Equal(decimalDe(t, "1")))
}

func TestEnviarPorEmailEncolaElTrabajo(t *testing.T) {
	fx := nuevaFixturaFactura(t)

	req := reqFacturaBase()
	req.Detalles = []dto.DetalleFacturaRequest{
		{ProductoID: 1, Cantidad: decimalDe(t, "1"), PrecioUnitario: decimalDe(t, "2500")},
	}
	creada, err := fx.svc.Crear(context.Background(), 1, req)
	require.NoError(t, err)

	err = fx.svc.EnviarPorEmail(context.Background(), creada.ID, dto.EnviarFacturaRequest{Email: "duenio@example.com"})
	require.NoError(t, err)

	require.Len(t, fx.dispatcher.encolados, 1)
	assert.Equal(t, creada.ID, fx.dispatcher.encolados[0].FacturaID)
	assert.Equal(t, "duenio@example.com", fx.dispatcher.encolados[0].Email)
}

func TestEnviarPorEmailFacturaInexistente(t *testing.T) {
	fx := nuevaFixturaFactura(t)

	err := fx.svc.EnviarPorEmail(context.Background(), 99, dto.EnviarFacturaRequest{Email: "a@b.com"})
	require.Error(t, err)
	assert.Empty(t, fx.dispatcher.encolados)
}
