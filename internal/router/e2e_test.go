//go:build integration

package router_test

// End-to-end tests against real Postgres + Redis via testcontainers.
// Run with: go test -tags integration ./internal/router/... -v

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"elceibo/internal/config"
	"elceibo/internal/infra"
	"elceibo/internal/model"
	"elceibo/internal/router"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
	"github.com/xuri/excelize/v2"
	"golang.org/x/crypto/bcrypt"
)

// ── Helpers ──────────────────────────────────────────────────────────────────

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func do(t *testing.T, srv *httptest.Server, method, path string, body io.Reader, token string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, srv.URL+path, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

// subirPlanilla POSTs an xlsx workbook as multipart form data.
func subirPlanilla(t *testing.T, srv *httptest.Server, token, tabla string, libro *excelize.File) *http.Response {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("archivo", "carga.xlsx")
	require.NoError(t, err)
	wb, err := libro.WriteToBuffer()
	require.NoError(t, err)
	_, err = part.Write(wb.Bytes())
	require.NoError(t, err)
	if tabla != "" {
		require.NoError(t, mw.WriteField("tabla", tabla))
	}
	require.NoError(t, mw.Close())

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/v1/importaciones", &body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	return resp
}

// ── Test environment ─────────────────────────────────────────────────────────

type testEnv struct {
	server *httptest.Server
	token  string // admin JWT
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcPostgres.WithDatabase("elceibo_test"),
		tcPostgres.WithUsername("elceibo"),
		tcPostgres.WithPassword("elceibo"),
		tcPostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	pgURL, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	rdC, err := tcRedis.RunContainer(ctx,
		testcontainers.WithImage("redis:7-alpine"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdC.Terminate(ctx) })

	rdURL, err := rdC.ConnectionString(ctx)
	require.NoError(t, err)

	cfg := &config.Config{
		Port:               8000,
		Env:                "test",
		WorkerPoolSize:     1,
		DatabaseURL:        pgURL,
		RedisURL:           rdURL,
		JWTSecret:          "clave-e2e",
		JWTExpirationHours: 8,
		JWTRefreshHours:    24,
		PDFStoragePath:     t.TempDir(),
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	require.NoError(t, err)
	require.NoError(t, infra.RunMigrations(db))

	rdb, err := infra.NewRedis(cfg.RedisURL)
	require.NoError(t, err)

	hash, err := bcrypt.GenerateFromPassword([]byte("elceibo2026"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&model.Usuario{
		NombreUsuario: "admin",
		PasswordHash:  string(hash),
		Rol:           "admin",
		Nombre:        "Admin",
		Estado:        true,
	}).Error)

	r := router.New(cfg, db, rdb)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	loginResp := do(t, srv, http.MethodPost, "/v1/auth/login",
		jsonBody(t, map[string]string{"nombre_usuario": "admin", "password": "elceibo2026"}), "")
	require.Equal(t, http.StatusOK, loginResp.StatusCode)
	var loginBody struct {
		AccessToken string `json:"access_token"`
	}
	decodeJSON(t, loginResp, &loginBody)
	require.NotEmpty(t, loginBody.AccessToken)

	return &testEnv{server: srv, token: loginBody.AccessToken}
}

// ── Tests ────────────────────────────────────────────────────────────────────

// Import a productos sheet with one bad row, then query the computed price
// of the imported product and download the backup workbook.
func TestE2E_ImportarConsultarPrecioExportar(t *testing.T) {
	env := setupTestEnv(t)

	tipoResp := do(t, env.server, http.MethodPost, "/v1/tipos",
		jsonBody(t, map[string]any{
			"nombre":         "Farmacia",
			"porc_mayorista": "35",
			"porc_minorista": "60",
		}), env.token)
	require.Equal(t, http.StatusCreated, tipoResp.StatusCode)
	tipoResp.Body.Close()

	libro := excelize.NewFile()
	require.NoError(t, libro.SetSheetName("Sheet1", "productos"))
	filas := [][]any{
		{"nombre", "tipo", "precio_costo", "stock"},
		{"Ivermectina 500ml", "Farmacia", "1000", "10"},
		{"", "Farmacia", "200", "1"},
	}
	for i, fila := range filas {
		celda, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, libro.SetSheetRow("productos", celda, &fila))
	}

	impResp := subirPlanilla(t, env.server, env.token, "", libro)
	require.Equal(t, http.StatusOK, impResp.StatusCode)
	var imp struct {
		RegistrosInsertados int      `json:"registrosInsertados"`
		TotalErrores        []string `json:"totalErrores"`
	}
	decodeJSON(t, impResp, &imp)
	assert.Equal(t, 1, imp.RegistrosInsertados)
	require.Len(t, imp.TotalErrores, 1)
	assert.Equal(t, "Fila 3: Faltan campos requeridos: nombre", imp.TotalErrores[0])

	listResp := do(t, env.server, http.MethodGet, "/v1/productos?nombre=Ivermectina", nil, env.token)
	require.Equal(t, http.StatusOK, listResp.StatusCode)
	var list struct {
		Data []struct {
			ID int `json:"id"`
		} `json:"data"`
	}
	decodeJSON(t, listResp, &list)
	require.Len(t, list.Data, 1)

	precioResp := do(t, env.server, http.MethodGet,
		fmt.Sprintf("/v1/productos/%d/precio", list.Data[0].ID), nil, env.token)
	require.Equal(t, http.StatusOK, precioResp.StatusCode)
	var precio struct {
		PrecioMayorista string `json:"precio_mayorista"`
		PrecioMinorista string `json:"precio_minorista"`
		Origen          string `json:"origen"`
	}
	decodeJSON(t, precioResp, &precio)
	assert.Equal(t, "tipo", precio.Origen)
	assert.Equal(t, "1350", precio.PrecioMayorista)
	assert.Equal(t, "1600", precio.PrecioMinorista)

	expResp := do(t, env.server, http.MethodPost, "/v1/exportaciones",
		jsonBody(t, map[string]any{"tablas": []string{"productos", "tipos"}}), env.token)
	require.Equal(t, http.StatusOK, expResp.StatusCode)
	defer expResp.Body.Close()
	assert.Contains(t, expResp.Header.Get("Content-Disposition"), "respaldo_")

	wb, err := io.ReadAll(expResp.Body)
	require.NoError(t, err)
	f, err := excelize.OpenReader(bytes.NewReader(wb))
	require.NoError(t, err)
	defer f.Close()
	assert.Contains(t, f.GetSheetList(), "productos")
	assert.Contains(t, f.GetSheetList(), "tipos")
}

// A second import of the same product name must update, not duplicate.
func TestE2E_ReimportarActualizaSinDuplicar(t *testing.T) {
	env := setupTestEnv(t)

	cargar := func(precio string) {
		libro := excelize.NewFile()
		require.NoError(t, libro.SetSheetName("Sheet1", "productos"))
		filas := [][]any{
			{"nombre", "precio_costo"},
			{"Shampoo Antipulgas", precio},
		}
		for i, fila := range filas {
			celda, err := excelize.CoordinatesToCellName(1, i+1)
			require.NoError(t, err)
			require.NoError(t, libro.SetSheetRow("productos", celda, &fila))
		}
		resp := subirPlanilla(t, env.server, env.token, "productos", libro)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()
	}

	cargar("700")
	cargar("900")

	listResp := do(t, env.server, http.MethodGet, "/v1/productos?nombre=Shampoo", nil, env.token)
	require.Equal(t, http.StatusOK, listResp.StatusCode)
	var list struct {
		Data []struct {
			PrecioCosto string `json:"precio_costo"`
		} `json:"data"`
		Total int64 `json:"total"`
	}
	decodeJSON(t, listResp, &list)
	require.EqualValues(t, 1, list.Total)
	assert.Equal(t, "900", list.Data[0].PrecioCosto)
}

// Full invoice cycle: create product, invoice it, verify stock moved.
func TestE2E_FacturaIngresoDescuentaStock(t *testing.T) {
	env := setupTestEnv(t)

	prodResp := do(t, env.server, http.MethodPost, "/v1/productos",
		jsonBody(t, map[string]any{
			"nombre":       "Vacuna antirrabica",
			"precio_costo": "2000",
			"stock":        "10",
		}), env.token)
	require.Equal(t, http.StatusCreated, prodResp.StatusCode)
	var prod struct {
		ID int `json:"id"`
	}
	decodeJSON(t, prodResp, &prod)

	factResp := do(t, env.server, http.MethodPost, "/v1/facturas",
		jsonBody(t, map[string]any{
			"dia":          15,
			"mes":          8,
			"anio":         2026,
			"hora":         "10:30",
			"forma_pago":   "efectivo",
			"tipo_factura": "ingreso",
			"detalles": []map[string]any{
				{"id_producto": prod.ID, "cantidad": "3", "precio_unitario": "2500"},
			},
		}), env.token)
	require.Equal(t, http.StatusCreated, factResp.StatusCode)
	var fact struct {
		ID    int    `json:"id"`
		Total string `json:"total"`
	}
	decodeJSON(t, factResp, &fact)
	assert.Equal(t, "7500", fact.Total)

	getResp := do(t, env.server, http.MethodGet, fmt.Sprintf("/v1/productos/%d", prod.ID), nil, env.token)
	require.Equal(t, http.StatusOK, getResp.StatusCode)
	var actual struct {
		Stock string `json:"stock"`
	}
	decodeJSON(t, getResp, &actual)
	assert.Equal(t, "7", actual.Stock)
}

// Editing or deleting a price list must be visible on the very next price
// query, even when the previous answer was cached.
func TestE2E_EditarListaRefrescaElPrecioCacheado(t *testing.T) {
	env := setupTestEnv(t)

	tipoResp := do(t, env.server, http.MethodPost, "/v1/tipos",
		jsonBody(t, map[string]any{
			"nombre":         "Alimentos",
			"porc_mayorista": "20",
			"porc_minorista": "40",
		}), env.token)
	require.Equal(t, http.StatusCreated, tipoResp.StatusCode)
	var tipo struct {
		ID int `json:"id"`
	}
	decodeJSON(t, tipoResp, &tipo)

	prodResp := do(t, env.server, http.MethodPost, "/v1/productos",
		jsonBody(t, map[string]any{
			"nombre":       "Alimento Premium 15kg",
			"precio_costo": "1000",
			"id_tipo":      tipo.ID,
		}), env.token)
	require.Equal(t, http.StatusCreated, prodResp.StatusCode)
	var prod struct {
		ID int `json:"id"`
	}
	decodeJSON(t, prodResp, &prod)

	listaResp := do(t, env.server, http.MethodPost, "/v1/listas-precio",
		jsonBody(t, map[string]any{
			"nombre": "Mayorista Norte",
			"detalles": []map[string]any{
				{"id_producto": prod.ID, "precio": "900", "porc_mayor": "10", "porc_minor": "20"},
			},
		}), env.token)
	require.Equal(t, http.StatusCreated, listaResp.StatusCode)
	var lista struct {
		ID int `json:"id"`
	}
	decodeJSON(t, listaResp, &lista)

	rutaPrecio := fmt.Sprintf("/v1/productos/%d/precio?id_lista=%d", prod.ID, lista.ID)

	var precio struct {
		PrecioMayorista string `json:"precio_mayorista"`
		PrecioMinorista string `json:"precio_minorista"`
		Origen          string `json:"origen"`
	}
	precioResp := do(t, env.server, http.MethodGet, rutaPrecio, nil, env.token)
	require.Equal(t, http.StatusOK, precioResp.StatusCode)
	decodeJSON(t, precioResp, &precio)
	assert.Equal(t, "lista", precio.Origen)
	assert.Equal(t, "990", precio.PrecioMayorista)

	// Second read comes from the cache; the list edit below must evict it.
	precioResp = do(t, env.server, http.MethodGet, rutaPrecio, nil, env.token)
	require.Equal(t, http.StatusOK, precioResp.StatusCode)
	decodeJSON(t, precioResp, &precio)
	assert.Equal(t, "990", precio.PrecioMayorista)

	putResp := do(t, env.server, http.MethodPut, fmt.Sprintf("/v1/listas-precio/%d", lista.ID),
		jsonBody(t, map[string]any{
			"detalles": []map[string]any{
				{"id_producto": prod.ID, "precio": "1100", "porc_mayor": "10", "porc_minor": "20"},
			},
		}), env.token)
	require.Equal(t, http.StatusOK, putResp.StatusCode)
	putResp.Body.Close()

	precioResp = do(t, env.server, http.MethodGet, rutaPrecio, nil, env.token)
	require.Equal(t, http.StatusOK, precioResp.StatusCode)
	decodeJSON(t, precioResp, &precio)
	assert.Equal(t, "lista", precio.Origen)
	assert.Equal(t, "1210", precio.PrecioMayorista)
	assert.Equal(t, "1320", precio.PrecioMinorista)

	delResp := do(t, env.server, http.MethodDelete, fmt.Sprintf("/v1/listas-precio/%d", lista.ID), nil, env.token)
	require.Equal(t, http.StatusNoContent, delResp.StatusCode)
	delResp.Body.Close()

	// With the list gone the product falls back to its tipo percentages.
	precioResp = do(t, env.server, http.MethodGet, rutaPrecio, nil, env.token)
	require.Equal(t, http.StatusOK, precioResp.StatusCode)
	decodeJSON(t, precioResp, &precio)
	assert.Equal(t, "tipo", precio.Origen)
	assert.Equal(t, "1200", precio.PrecioMayorista)
	assert.Equal(t, "1400", precio.PrecioMinorista)
}
