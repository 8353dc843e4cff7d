package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elceibo/internal/dto"
	"elceibo/internal/model"
)

type fixturaProducto struct {
	svc       ProductoService
	productos *stubProductoRepo
	tipos     *stubTipoRepo
	listas    *stubListaRepo
}

func nuevaFixturaProducto() fixturaProducto {
	productos := newStubProductoRepo()
	tipos := newStubTipoRepo()
	listas := newStubListaRepo()
	return fixturaProducto{
		svc:       NewProductoService(productos, tipos, listas),
		productos: productos,
		tipos:     tipos,
		listas:    listas,
	}
}

func TestConsultarPrecioAplicaPorcentajesDelTipo(t *testing.T) {
	fx := nuevaFixturaProducto()
	tipo := fx.tipos.agregar(model.Tipo{
		Nombre:        "Farmacia",
		PorcMayorista: decimalDe(t, "35"),
		PorcMinorista: decimalDe(t, "60"),
	})
	p := fx.productos.agregar(model.Producto{
		Nombre:      "Amoxicilina",
		PrecioCosto: decimalDe(t, "1000"),
		TipoID:      &tipo.ID,
		Tipo:        tipo,
		Estado:      true,
	})

	resp, err := fx.svc.ConsultarPrecio(context.Background(), p.ID, 0)
	require.NoError(t, err)

	assert.Equal(t, "tipo", resp.Origen)
	assert.True(t, resp.PrecioMayorista.Equal(decimalDe(t, "1350")), "mayorista: %s", resp.PrecioMayorista)
	assert.True(t, resp.PrecioMinorista.Equal(decimalDe(t, "1600")), "minorista: %s", resp.PrecioMinorista)
}

func TestConsultarPrecioPrefiereLaListaCuandoEstaModificado(t *testing.T) {
	fx := nuevaFixturaProducto()
	tipo := fx.tipos.agregar(model.Tipo{
		Nombre:        "Farmacia",
		PorcMayorista: decimalDe(t, "35"),
		PorcMinorista: decimalDe(t, "60"),
	})
	p := fx.productos.agregar(model.Producto{
		Nombre:      "Amoxicilina",
		PrecioCosto: decimalDe(t, "1000"),
		TipoID:      &tipo.ID,
		Tipo:        tipo,
		Modificado:  true,
		Estado:      true,
	})
	lista := &model.ListaPrecio{Nombre: "Mayorista Campo"}
	require.NoError(t, fx.listas.CreateTx(nil, lista))
	require.NoError(t, fx.listas.ReplaceDetallesTx(nil, lista.ID, []model.DetalleLista{{
		ProductoID: p.ID,
		Precio:     decimalDe(t, "800"),
		PorcMayor:  decimalDe(t, "10"),
		PorcMinor:  decimalDe(t, "25"),
	}}))

	resp, err := fx.svc.ConsultarPrecio(context.Background(), p.ID, lista.ID)
	require.NoError(t, err)

	assert.Equal(t, "lista", resp.Origen)
	assert.True(t, resp.PrecioMayorista.Equal(decimalDe(t, "880")), "mayorista: %s", resp.PrecioMayorista)
	assert.True(t, resp.PrecioMinorista.Equal(decimalDe(t, "1000")), "minorista: %s", resp.PrecioMinorista)
}

func TestConsultarPrecioModificadoSinDetalleCaeAlTipo(t *testing.T) {
	fx := nuevaFixturaProducto()
	tipo := fx.tipos.agregar(model.Tipo{
		Nombre:        "Farmacia",
		PorcMayorista: decimalDe(t, "10"),
		PorcMinorista: decimalDe(t, "20"),
	})
	p := fx.productos.agregar(model.Producto{
		Nombre:      "Gasas",
		PrecioCosto: decimalDe(t, "500"),
		TipoID:      &tipo.ID,
		Tipo:        tipo,
		Modificado:  true,
		Estado:      true,
	})
	lista := &model.ListaPrecio{Nombre: "Vacia"}
	require.NoError(t, fx.listas.CreateTx(nil, lista))

	resp, err := fx.svc.ConsultarPrecio(context.Background(), p.ID, lista.ID)
	require.NoError(t, err)

	assert.Equal(t, "tipo", resp.Origen)
	assert.True(t, resp.PrecioMayorista.Equal(decimalDe(t, "550")))
}

func TestConsultarPrecioSinTipoDevuelveElCosto(t *testing.T) {
	fx := nuevaFixturaProducto()
	p := fx.productos.agregar(model.Producto{
		Nombre:      "Jeringa 5ml",
		PrecioCosto: decimalDe(t, "120.40"),
		Estado:      true,
	})

	resp, err := fx.svc.ConsultarPrecio(context.Background(), p.ID, 0)
	require.NoError(t, err)

	assert.Equal(t, "tipo", resp.Origen)
	assert.True(t, resp.PrecioMayorista.Equal(decimalDe(t, "120.40")))
	assert.True(t, resp.PrecioMinorista.Equal(decimalDe(t, "120.40")))
}

func TestConsultarPrecioRedondeaADosDecimales(t *testing.T) {
	fx := nuevaFixturaProducto()
	tipo := fx.tipos.agregar(model.Tipo{
		Nombre:        "Insumos",
		PorcMayorista: decimalDe(t, "21"),
		PorcMinorista: decimalDe(t, "21"),
	})
	p := fx.productos.agregar(model.Producto{
		Nombre:      "Guantes",
		PrecioCosto: decimalDe(t, "99.99"),
		TipoID:      &tipo.ID,
		Tipo:        tipo,
		Estado:      true,
	})

	resp, err := fx.svc.ConsultarPrecio(context.Background(), p.ID, 0)
	require.NoError(t, err)

	// 99.99 * 1.21 = 120.9879
	assert.True(t, resp.PrecioMayorista.Equal(decimalDe(t, "120.99")), "mayorista: %s", resp.PrecioMayorista)
}

func TestCrearProductoRechazaNombreDuplicadoEnElTipo(t *testing.T) {
	fx := nuevaFixturaProducto()
	fx.productos.agregar(model.Producto{
		Nombre:      "Alcoholetilico",
		PrecioCosto: decimalDe(t, "300"),
		Estado:      true,
	})

	_, err := fx.svc.Crear(context.Background(), dto.CrearProductoRequest{
		Nombre:      "ALCOHOLETILICO",
		PrecioCosto: decimalDe(t, "350"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ya existe un producto")
	assert.Len(t, fx.productos.productos, 1)
}

func TestCrearProductoConTipoInexistente(t *testing.T) {
	fx := nuevaFixturaProducto()
	tipoID := 42

	_, err := fx.svc.Crear(context.Background(), dto.CrearProductoRequest{
		Nombre:      "Pipeta",
		PrecioCosto: decimalDe(t, "800"),
		TipoID:      &tipoID,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tipo no encontrado")
}

func TestActualizarProductoCambiaSoloLosCamposEnviados(t *testing.T) {
	fx := nuevaFixturaProducto()
	p := fx.productos.agregar(model.Producto{
		Nombre:      "Pipeta",
		Marca:       "Frontline",
		PrecioCosto: decimalDe(t, "800"),
		Estado:      true,
	})

	nuevoPrecio := decimalDe(t, "950")
	resp, err := fx.svc.Actualizar(context.Background(), p.ID, dto.ActualizarProductoRequest{
		PrecioCosto: &nuevoPrecio,
	})
	require.NoError(t, err)

	assert.Equal(t, "Pipeta", resp.Nombre)
	assert.Equal(t, "Frontline", resp.Marca)
	assert.True(t, resp.PrecioCosto.Equal(nuevoPrecio))
}

func TestListarSaneaLaPaginacionInvalida(t *testing.T) {
	fx := nuevaFixturaProducto()
	fx.productos.agregar(model.Producto{Nombre: "Ivermectina", PrecioCosto: decimalDe(t, "1000"), Estado: true})

	resp, err := fx.svc.Listar(context.Background(), dto.ProductoFilter{Page: 0, Limit: 0})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 20, resp.Limit)
	assert.Equal(t, 1, resp.TotalPages)
	assert.Len(t, resp.Data, 1)

	resp, err = fx.svc.Listar(context.Background(), dto.ProductoFilter{Page: 1, Limit: 500})
	require.NoError(t, err)
	assert.Equal(t, 20, resp.Limit)
}
