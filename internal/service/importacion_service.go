package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"elceibo/internal/dto"
	"elceibo/internal/model"
	"elceibo/internal/planilla"
	"elceibo/internal/repository"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// maxErroresImportacion caps the error list returned to the client; the
// counters keep accumulating past the cap.
const maxErroresImportacion = 20

type ImportacionService interface {
	// Importar processes an uploaded xlsx workbook. tabla, when not empty,
	// forces every sheet through that table's schema; otherwise each sheet
	// name is routed on its own and unrecognized sheets are skipped with a
	// warning. One bad row never aborts the batch.
	Importar(ctx context.Context, archivo io.Reader, tabla string) (*dto.ImportacionResponse, error)
}

type importacionService struct {
	productoRepo repository.ProductoRepository
	tipoRepo     repository.TipoRepository
	usuarioRepo  repository.UsuarioRepository
	clienteRepo  repository.ClienteRepository
	mascotaRepo  repository.MascotaRepository
}

func NewImportacionService(
	productoRepo repository.ProductoRepository,
	tipoRepo repository.TipoRepository,
	usuarioRepo repository.UsuarioRepository,
	clienteRepo repository.ClienteRepository,
	mascotaRepo repository.MascotaRepository,
) ImportacionService {
	return &importacionService{
		productoRepo: productoRepo,
		tipoRepo:     tipoRepo,
		usuarioRepo:  usuarioRepo,
		clienteRepo:  clienteRepo,
		mascotaRepo:  mascotaRepo,
	}
}

func (s *importacionService) Importar(ctx context.Context, archivo io.Reader, tabla string) (*dto.ImportacionResponse, error) {
	var forzado *planilla.Esquema
	if tabla != "" {
		esq, err := planilla.BuscarEsquema(tabla)
		if err != nil {
			return nil, err
		}
		forzado = esq
	}

	hojas, err := planilla.LeerLibro(archivo)
	if err != nil {
		return nil, err
	}

	resp := &dto.ImportacionResponse{
		ResultadosPorTabla: []dto.ResultadoTabla{},
		TotalErrores:       []string{},
	}

	for _, hoja := range hojas {
		esq := forzado
		if esq == nil {
			var ok bool
			esq, ok = planilla.EsquemaParaHoja(hoja.Nombre)
			if !ok {
				log.Warn().Str("hoja", hoja.Nombre).Msg("hoja no reconocida, se omite")
				continue
			}
		}

		resultado := s.procesarHoja(ctx, esq, hoja)
		resp.RegistrosInsertados += resultado.Insertados + resultado.Actualizados
		for _, e := range resultado.Errores {
			if len(resp.TotalErrores) < maxErroresImportacion {
				resp.TotalErrores = append(resp.TotalErrores, e)
			}
		}
		resp.ResultadosPorTabla = append(resp.ResultadosPorTabla, resultado)
	}

	return resp, nil
}

func (s *importacionService) procesarHoja(ctx context.Context, esq *planilla.Esquema, hoja planilla.Hoja) dto.ResultadoTabla {
	resultado := dto.ResultadoTabla{Tabla: esq.Tabla, TotalFilas: len(hoja.Filas)}
	if len(hoja.Filas) == 0 {
		resultado.Advertencia = fmt.Sprintf("la hoja %q no contiene datos", hoja.Nombre)
		return resultado
	}

	buscarTipo := func(nombre string) (int, error) {
		t, err := s.tipoRepo.FindByNombre(ctx, nombre)
		if err != nil {
			return 0, err
		}
		return t.ID, nil
	}

	for _, fila := range hoja.Filas {
		reg, err := planilla.Normalizar(esq, fila, buscarTipo)
		if err != nil {
			resultado.Errores = anotarError(resultado.Errores, err.Error())
			continue
		}

		insertado, err := s.persistir(ctx, esq.Tabla, reg)
		if err != nil {
			resultado.Errores = anotarError(resultado.Errores, fmt.Sprintf("Fila %d: %v", fila.Numero, err))
			continue
		}
		if insertado {
			resultado.Insertados++
		} else {
			resultado.Actualizados++
		}
	}
	return resultado
}

func anotarError(errores []string, msg string) []string {
	if len(errores) >= maxErroresImportacion {
		return errores
	}
	return append(errores, msg)
}

// persistir writes one normalized row. The bool result reports whether the
// row was inserted (true) or reconciled against an existing record (false).
func (s *importacionService) persistir(ctx context.Context, tabla string, reg planilla.Registro) (bool, error) {
	switch tabla {
	case "productos":
		return s.persistirProducto(ctx, reg)
	case "usuarios":
		return s.persistirUsuario(ctx, reg)
	case "clientes":
		return s.persistirCliente(ctx, reg)
	case "mascotas":
		return s.persistirMascota(ctx, reg)
	}
	return false, fmt.Errorf("tabla invalida: %s", tabla)
}

// persistirProducto reconciles against the natural key (lowercased nombre,
// tipo): a match updates the existing row, keeping its stored name and id.
func (s *importacionService) persistirProducto(ctx context.Context, reg planilla.Registro) (bool, error) {
	nombre := regTexto(reg, "nombre")
	tipoID := regEnteroPtr(reg, "id_tipo")

	existente, err := s.productoRepo.FindByNombreTipo(ctx, nombre, tipoID)
	switch {
	case err == nil:
		existente.Marca = regTexto(reg, "marca")
		existente.PrecioCosto = regNumero(reg, "precio_costo")
		existente.Stock = regNumero(reg, "stock")
		existente.TipoID = tipoID
		existente.Modificado = regBool(reg, "modificado")
		existente.Estado = regBool(reg, "estado")
		existente.Tipo = nil
		return false, s.productoRepo.Update(ctx, existente)
	case errors.Is(err, gorm.ErrRecordNotFound):
		p := &model.Producto{
			Nombre:      nombre,
			Marca:       regTexto(reg, "marca"),
			PrecioCosto: regNumero(reg, "precio_costo"),
			Stock:       regNumero(reg, "stock"),
			TipoID:      tipoID,
			Modificado:  regBool(reg, "modificado"),
			Estado:      regBool(reg, "estado"),
		}
		return true, s.productoRepo.Create(ctx, p)
	default:
		return false, err
	}
}

// persistirUsuario hashes the plaintext password from the sheet before the
// row touches the database.
func (s *importacionService) persistirUsuario(ctx context.Context, reg planilla.Registro) (bool, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(regTexto(reg, "password")), bcryptCost)
	if err != nil {
		return false, err
	}
	u := &model.Usuario{
		ID:            regEntero(reg, "id"),
		NombreUsuario: regTexto(reg, "nombre_usuario"),
		PasswordHash:  string(hash),
		Rol:           regTexto(reg, "rol"),
		Nombre:        regTexto(reg, "nombre"),
		Apellido:      regTexto(reg, "apellido"),
		Email:         regTextoPtr(reg, "email"),
		Telefono:      regTexto(reg, "telefono"),
		Estado:        regBool(reg, "estado"),
	}
	esNuevo := u.ID == 0
	return esNuevo, s.usuarioRepo.Upsert(ctx, u)
}

func (s *importacionService) persistirCliente(ctx context.Context, reg planilla.Registro) (bool, error) {
	c := &model.Cliente{
		ID:        regEntero(reg, "id"),
		Nombre:    regTexto(reg, "nombre"),
		Apellido:  regTexto(reg, "apellido"),
		Direccion: regTexto(reg, "direccion"),
		Localidad: regTexto(reg, "localidad"),
		Telefono:  regTexto(reg, "telefono"),
		Email:     regTextoPtr(reg, "email"),
		Estado:    regBool(reg, "estado"),
	}
	esNuevo := c.ID == 0
	return esNuevo, s.clienteRepo.Upsert(ctx, c)
}

func (s *importacionService) persistirMascota(ctx context.Context, reg planilla.Registro) (bool, error) {
	clienteID := regEntero(reg, "id_cliente")
	if _, err := s.clienteRepo.FindByID(ctx, clienteID); err != nil {
		return false, fmt.Errorf("cliente no encontrado: %d", clienteID)
	}
	m := &model.Mascota{
		ID:              regEntero(reg, "id"),
		Nombre:          regTexto(reg, "nombre"),
		Especie:         regTexto(reg, "especie"),
		Raza:            regTexto(reg, "raza"),
		Sexo:            regTexto(reg, "sexo"),
		Edad:            regNumero(reg, "edad"),
		Peso:            regNumero(reg, "peso"),
		Castrado:        regBool(reg, "castrado"),
		FechaNacimiento: regFecha(reg, "fecha_nacimiento"),
		ClienteID:       clienteID,
		Estado:          true,
	}
	esNuevo := m.ID == 0
	return esNuevo, s.mascotaRepo.Upsert(ctx, m)
}

// ─── typed accessors over a normalized row ───────────────────────────────────

func regTexto(reg planilla.Registro, clave string) string {
	if v, ok := reg[clave].(string); ok {
		return v
	}
	return ""
}

func regTextoPtr(reg planilla.Registro, clave string) *string {
	if v, ok := reg[clave].(string); ok && v != "" {
		return &v
	}
	return nil
}

func regNumero(reg planilla.Registro, clave string) decimal.Decimal {
	if v, ok := reg[clave].(decimal.Decimal); ok {
		return v
	}
	return decimal.Zero
}

func regEntero(reg planilla.Registro, clave string) int {
	if v, ok := reg[clave].(int); ok {
		return v
	}
	return 0
}

func regEnteroPtr(reg planilla.Registro, clave string) *int {
	if v, ok := reg[clave].(int); ok {
		return &v
	}
	return nil
}

func regBool(reg planilla.Registro, clave string) bool {
	if v, ok := reg[clave].(bool); ok {
		return v
	}
	return false
}

func regFecha(reg planilla.Registro, clave string) *time.Time {
	if v, ok := reg[clave].(*time.Time); ok {
		return v
	}
	return nil
}
