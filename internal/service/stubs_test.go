package service

// In-memory repository stubs shared by the service tests. They mirror the
// persistence contracts closely enough to exercise the business rules
// without a database: lookups honor the same natural keys, Upsert assigns
// ids like the autoincrement column would, and the Tx methods record their
// effect so tests can assert on side effects.

import (
	"context"
	"errors"
	"strings"
	"testing"

	"elceibo/internal/dto"
	"elceibo/internal/model"
	"elceibo/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func decimalDe(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

// ── ProductoRepository ───────────────────────────────────────────────────────

type stubProductoRepo struct {
	productos map[int]*model.Producto
	nextID    int

	// side-effect log for the Tx methods
	ajustes   map[int]decimal.Decimal
	marcados  map[int]bool
	failMarca error
}

var _ repository.ProductoRepository = (*stubProductoRepo)(nil)

func newStubProductoRepo() *stubProductoRepo {
	return &stubProductoRepo{
		productos: make(map[int]*model.Producto),
		nextID:    1,
		ajustes:   make(map[int]decimal.Decimal),
		marcados:  make(map[int]bool),
	}
}

func (r *stubProductoRepo) agregar(p model.Producto) *model.Producto {
	if p.ID == 0 {
		p.ID = r.nextID
		r.nextID++
	} else if p.ID >= r.nextID {
		r.nextID = p.ID + 1
	}
	r.productos[p.ID] = &p
	return &p
}

func (r *stubProductoRepo) Create(_ context.Context, p *model.Producto) error {
	stored := r.agregar(*p)
	p.ID = stored.ID
	return nil
}

func (r *stubProductoRepo) FindByID(_ context.Context, id int) (*model.Producto, error) {
	p, ok := r.productos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cloned := *p
	return &cloned, nil
}

func (r *stubProductoRepo) FindByNombreTipo(_ context.Context, nombre string, tipoID *int) (*model.Producto, error) {
	for _, p := range r.productos {
		if !strings.EqualFold(p.Nombre, strings.TrimSpace(nombre)) {
			continue
		}
		switch {
		case p.TipoID == nil && tipoID == nil:
		case p.TipoID != nil && tipoID != nil && *p.TipoID == *tipoID:
		default:
			continue
		}
		cloned := *p
		return &cloned, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubProductoRepo) List(_ context.Context, _ dto.ProductoFilter) ([]model.Producto, int64, error) {
	out := make([]model.Producto, 0, len(r.productos))
	for _, p := range r.productos {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *stubProductoRepo) Update(_ context.Context, p *model.Producto) error {
	if _, ok := r.productos[p.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cloned := *p
	r.productos[p.ID] = &cloned
	return nil
}

func (r *stubProductoRepo) SoftDelete(_ context.Context, id int) error {
	p, ok := r.productos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Estado = false
	return nil
}

func (r *stubProductoRepo) Reactivar(_ context.Context, id int) error {
	p, ok := r.productos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Estado = true
	return nil
}

func (r *stubProductoRepo) AjustarStockTx(_ *gorm.DB, id int, delta decimal.Decimal) error {
	p, ok := r.productos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Stock = p.Stock.Add(delta)
	r.ajustes[id] = r.ajustes[id].Add(delta)
	return nil
}

func (r *stubProductoRepo) MarcarModificadoTx(_ *gorm.DB, id int, modificado bool) error {
	if r.failMarca != nil {
		return r.failMarca
	}
	p, ok := r.productos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Modificado = modificado
	r.marcados[id] = modificado
	return nil
}

func (r *stubProductoRepo) DB() *gorm.DB { return nil }

// ── TipoRepository ───────────────────────────────────────────────────────────

type stubTipoRepo struct {
	tipos  map[int]*model.Tipo
	nextID int
}

var _ repository.TipoRepository = (*stubTipoRepo)(nil)

func newStubTipoRepo() *stubTipoRepo {
	return &stubTipoRepo{tipos: make(map[int]*model.Tipo), nextID: 1}
}

func (r *stubTipoRepo) agregar(t model.Tipo) *model.Tipo {
	if t.ID == 0 {
		t.ID = r.nextID
		r.nextID++
	}
	r.tipos[t.ID] = &t
	return &t
}

func (r *stubTipoRepo) Create(_ context.Context, t *model.Tipo) error {
	stored := r.agregar(*t)
	t.ID = stored.ID
	return nil
}

func (r *stubTipoRepo) FindByID(_ context.Context, id int) (*model.Tipo, error) {
	t, ok := r.tipos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cloned := *t
	return &cloned, nil
}

func (r *stubTipoRepo) FindByNombre(_ context.Context, nombre string) (*model.Tipo, error) {
	for _, t := range r.tipos {
		if strings.EqualFold(t.Nombre, strings.TrimSpace(nombre)) {
			cloned := *t
			return &cloned, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubTipoRepo) List(_ context.Context) ([]model.Tipo, error) {
	out := make([]model.Tipo, 0, len(r.tipos))
	for _, t := range r.tipos {
		out = append(out, *t)
	}
	return out, nil
}

func (r *stubTipoRepo) Update(_ context.Context, t *model.Tipo) error {
	if _, ok := r.tipos[t.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cloned := *t
	r.tipos[t.ID] = &cloned
	return nil
}

func (r *stubTipoRepo) Delete(_ context.Context, id int) error {
	delete(r.tipos, id)
	return nil
}

// ── UsuarioRepository ────────────────────────────────────────────────────────

type stubUsuarioRepo struct {
	usuarios map[int]*model.Usuario
	nextID   int
}

var _ repository.UsuarioRepository = (*stubUsuarioRepo)(nil)

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{usuarios: make(map[int]*model.Usuario), nextID: 1}
}

func (r *stubUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	if u.ID == 0 {
		u.ID = r.nextID
		r.nextID++
	}
	cloned := *u
	r.usuarios[u.ID] = &cloned
	return nil
}

func (r *stubUsuarioRepo) FindByID(_ context.Context, id int) (*model.Usuario, error) {
	u, ok := r.usuarios[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cloned := *u
	return &cloned, nil
}

func (r *stubUsuarioRepo) FindByNombreUsuario(_ context.Context, nombreUsuario string) (*model.Usuario, error) {
	for _, u := range r.usuarios {
		if u.NombreUsuario == nombreUsuario {
			cloned := *u
			return &cloned, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUsuarioRepo) List(_ context.Context, incluirInactivos bool) ([]model.Usuario, error) {
	var out []model.Usuario
	for _, u := range r.usuarios {
		if !incluirInactivos && !u.Estado {
			continue
		}
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUsuarioRepo) Update(_ context.Context, u *model.Usuario) error {
	if _, ok := r.usuarios[u.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cloned := *u
	r.usuarios[u.ID] = &cloned
	return nil
}

func (r *stubUsuarioRepo) SoftDelete(_ context.Context, id int) error {
	u, ok := r.usuarios[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.Estado = false
	return nil
}

func (r *stubUsuarioRepo) Reactivar(_ context.Context, id int) error {
	u, ok := r.usuarios[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.Estado = true
	return nil
}

func (r *stubUsuarioRepo) Upsert(_ context.Context, u *model.Usuario) error {
	return r.Create(context.Background(), u)
}

// ── ClienteRepository ────────────────────────────────────────────────────────

type stubClienteRepo struct {
	clientes map[int]*model.Cliente
	nextID   int
}

var _ repository.ClienteRepository = (*stubClienteRepo)(nil)

func newStubClienteRepo() *stubClienteRepo {
	return &stubClienteRepo{clientes: make(map[int]*model.Cliente), nextID: 1}
}

func (r *stubClienteRepo) Create(_ context.Context, c *model.Cliente) error {
	if c.ID == 0 {
		c.ID = r.nextID
		r.nextID++
	}
	cloned := *c
	r.clientes[c.ID] = &cloned
	return nil
}

func (r *stubClienteRepo) FindByID(_ context.Context, id int) (*model.Cliente, error) {
	c, ok := r.clientes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cloned := *c
	return &cloned, nil
}

func (r *stubClienteRepo) List(_ context.Context, _ dto.ClienteFilter) ([]model.Cliente, int64, error) {
	out := make([]model.Cliente, 0, len(r.clientes))
	for _, c := range r.clientes {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

func (r *stubClienteRepo) Update(_ context.Context, c *model.Cliente) error {
	if _, ok := r.clientes[c.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cloned := *c
	r.clientes[c.ID] = &cloned
	return nil
}

func (r *stubClienteRepo) SoftDelete(_ context.Context, id int) error {
	c, ok := r.clientes[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	c.Estado = false
	return nil
}

func (r *stubClienteRepo) Reactivar(_ context.Context, id int) error {
	c, ok := r.clientes[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	c.Estado = true
	return nil
}

func (r *stubClienteRepo) Upsert(_ context.Context, c *model.Cliente) error {
	return r.Create(context.Background(), c)
}

// ── MascotaRepository ────────────────────────────────────────────────────────

type stubMascotaRepo struct {
	mascotas map[int]*model.Mascota
	nextID   int
}

var _ repository.MascotaRepository = (*stubMascotaRepo)(nil)

func newStubMascotaRepo() *stubMascotaRepo {
	return &stubMascotaRepo{mascotas: make(map[int]*model.Mascota), nextID: 1}
}

func (r *stubMascotaRepo) Create(_ context.Context, m *model.Mascota) error {
	if m.ID == 0 {
		m.ID = r.nextID
		r.nextID++
	}
	cloned := *m
	r.mascotas[m.ID] = &cloned
	return nil
}

func (r *stubMascotaRepo) FindByID(_ context.Context, id int) (*model.Mascota, error) {
	m, ok := r.mascotas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cloned := *m
	return &cloned, nil
}

func (r *stubMascotaRepo) ListByCliente(_ context.Context, clienteID int) ([]model.Mascota, error) {
	var out []model.Mascota
	for _, m := range r.mascotas {
		if m.ClienteID == clienteID {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *stubMascotaRepo) Update(_ context.Context, m *model.Mascota) error {
	if _, ok := r.mascotas[m.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cloned := *m
	r.mascotas[m.ID] = &cloned
	return nil
}

func (r *stubMascotaRepo) SoftDelete(_ context.Context, id int) error {
	m, ok := r.mascotas[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	m.Estado = false
	return nil
}

func (r *stubMascotaRepo) Upsert(_ context.Context, m *model.Mascota) error {
	return r.Create(context.Background(), m)
}

// ── FacturaRepository ────────────────────────────────────────────────────────

type stubFacturaRepo struct {
	facturas map[int]*model.Factura
	nextID   int
}

var _ repository.FacturaRepository = (*stubFacturaRepo)(nil)

func newStubFacturaRepo() *stubFacturaRepo {
	return &stubFacturaRepo{facturas: make(map[int]*model.Factura), nextID: 1}
}

func (r *stubFacturaRepo) CreateTx(_ *gorm.DB, f *model.Factura) error {
	if f.ID == 0 {
		f.ID = r.nextID
		r.nextID++
	}
	cloned := *f
	r.facturas[f.ID] = &cloned
	return nil
}

func (r *stubFacturaRepo) FindByID(_ context.Context, id int) (*model.Factura, error) {
	f, ok := r.facturas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cloned := *f
	return &cloned, nil
}

func (r *stubFacturaRepo) List(_ context.Context, _ dto.FacturaFilter) ([]model.Factura, int64, error) {
	out := make([]model.Factura, 0, len(r.facturas))
	for _, f := range r.facturas {
		out = append(out, *f)
	}
	return out, int64(len(out)), nil
}

func (r *stubFacturaRepo) UpdateHeader(_ context.Context, f *model.Factura) error {
	existente, ok := r.facturas[f.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	existente.Dia = f.Dia
	existente.Mes = f.Mes
	existente.Anio = f.Anio
	existente.Hora = f.Hora
	existente.FormaPago = f.FormaPago
	existente.DistribuidorID = f.DistribuidorID
	return nil
}

func (r *stubFacturaRepo) Delete(_ context.Context, id int) error {
	delete(r.facturas, id)
	return nil
}

func (r *stubFacturaRepo) DB() *gorm.DB { return nil }

// ── ListaPrecioRepository ────────────────────────────────────────────────────

type stubListaRepo struct {
	listas      map[int]*model.ListaPrecio
	nextID      int
	failReplace error
}

var _ repository.ListaPrecioRepository = (*stubListaRepo)(nil)

func newStubListaRepo() *stubListaRepo {
	return &stubListaRepo{listas: make(map[int]*model.ListaPrecio), nextID: 1}
}

func (r *stubListaRepo) FindByID(_ context.Context, id int) (*model.ListaPrecio, error) {
	l, ok := r.listas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cloned := *l
	cloned.Detalles = append([]model.DetalleLista(nil), l.Detalles...)
	return &cloned, nil
}

func (r *stubListaRepo) List(_ context.Context) ([]model.ListaPrecio, error) {
	out := make([]model.ListaPrecio, 0, len(r.listas))
	for _, l := range r.listas {
		out = append(out, *l)
	}
	return out, nil
}

func (r *stubListaRepo) CreateTx(_ *gorm.DB, l *model.ListaPrecio) error {
	if l.ID == 0 {
		l.ID = r.nextID
		r.nextID++
	}
	cloned := *l
	r.listas[l.ID] = &cloned
	return nil
}

func (r *stubListaRepo) UpdateNombreTx(_ *gorm.DB, id int, nombre string) error {
	l, ok := r.listas[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	l.Nombre = nombre
	return nil
}

func (r *stubListaRepo) ReplaceDetallesTx(_ *gorm.DB, listaID int, detalles []model.DetalleLista) error {
	if r.failReplace != nil {
		return r.failReplace
	}
	l, ok := r.listas[listaID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for i := range detalles {
		detalles[i].ListaPrecioID = listaID
	}
	l.Detalles = detalles
	return nil
}

func (r *stubListaRepo) DeleteTx(_ *gorm.DB, id int) error {
	delete(r.listas, id)
	return nil
}

func (r *stubListaRepo) DB() *gorm.DB { return nil }

// ── ExportacionRepository ────────────────────────────────────────────────────

type stubExportacionRepo struct {
	consultas map[string]repository.ConsultaExportacion
	filas     map[string][][]any
	fallas    map[string]error
}

var _ repository.ExportacionRepository = (*stubExportacionRepo)(nil)

func newStubExportacionRepo() *stubExportacionRepo {
	return &stubExportacionRepo{
		consultas: make(map[string]repository.ConsultaExportacion),
		filas:     make(map[string][][]any),
		fallas:    make(map[string]error),
	}
}

func (r *stubExportacionRepo) Consulta(tabla string) (repository.ConsultaExportacion, bool) {
	c, ok := r.consultas[tabla]
	return c, ok
}

func (r *stubExportacionRepo) Ejecutar(_ context.Context, c repository.ConsultaExportacion) ([][]any, error) {
	if err, ok := r.fallas[c.Tabla]; ok {
		return nil, err
	}
	return r.filas[c.Tabla], nil
}

// ── FacturaDispatcher ────────────────────────────────────────────────────────

type stubDispatcher struct {
	encolados []struct {
		FacturaID int
		Email     string
	}
	fallo error
}

var _ FacturaDispatcher = (*stubDispatcher)(nil)

func (d *stubDispatcher) EnqueueFacturaEmail(_ context.Context, facturaID int, email string) error {
	if d.fallo != nil {
		return d.fallo
	}
	d.encolados = append(d.encolados, struct {
		FacturaID int
		Email     string
	}{facturaID, email})
	return nil
}

var errStub = errors.New("fallo simulado")
