package repository

import (
	"context"

	"gorm.io/gorm"
)

// ConsultaExportacion is one fixed read query for the backup workbook:
// a join-enriched SELECT, not the raw table.
type ConsultaExportacion struct {
	Tabla       string
	Encabezados []string
	SQL         string
}

// consultas maps the exportable table identifiers to their queries.
// Column order in SQL and Encabezados must match: the sheet is built
// positionally.
var consultas = map[string]ConsultaExportacion{
	"productos": {
		Tabla:       "productos",
		Encabezados: []string{"id", "nombre", "marca", "precio_costo", "stock", "tipo", "modificado", "estado"},
		SQL: `SELECT p.id, p.nombre, p.marca, p.precio_costo, p.stock,
		             COALESCE(t.nombre, '') AS tipo, p.modificado, p.estado
		      FROM producto p LEFT JOIN tipo t ON t.id = p.tipo_id
		      ORDER BY p.nombre`,
	},
	"tipos": {
		Tabla:       "tipos",
		Encabezados: []string{"id", "nombre", "porc_mayorista", "porc_minorista"},
		SQL:         `SELECT id, nombre, porc_mayorista, porc_minorista FROM tipo ORDER BY nombre`,
	},
	"clientes": {
		Tabla:       "clientes",
		Encabezados: []string{"id", "nombre", "apellido", "direccion", "localidad", "telefono", "email", "estado"},
		SQL: `SELECT id, nombre, apellido, direccion, localidad, telefono,
		             COALESCE(email, '') AS email, estado
		      FROM cliente ORDER BY apellido, nombre`,
	},
	"mascotas": {
		Tabla:       "mascotas",
		Encabezados: []string{"id", "nombre", "especie", "raza", "sexo", "edad", "peso", "castrado", "fecha_nacimiento", "cliente"},
		SQL: `SELECT m.id, m.nombre, m.especie, m.raza, m.sexo, m.edad, m.peso, m.castrado,
		             COALESCE(TO_CHAR(m.fecha_nacimiento, 'YYYY-MM-DD'), '') AS fecha_nacimiento,
		             c.apellido || ', ' || c.nombre AS cliente
		      FROM mascota m JOIN cliente c ON c.id = m.cliente_id
		      ORDER BY m.nombre`,
	},
	"usuarios": {
		Tabla:       "usuarios",
		Encabezados: []string{"id", "nombre_usuario", "rol", "nombre", "apellido", "email", "telefono", "estado"},
		SQL: `SELECT id, nombre_usuario, rol, nombre, apellido,
		             COALESCE(email, '') AS email, telefono, estado
		      FROM usuario ORDER BY nombre_usuario`,
	},
	"facturas": {
		Tabla:       "facturas",
		Encabezados: []string{"id", "fecha", "hora", "forma_pago", "total", "tipo_factura", "usuario", "distribuidor"},
		SQL: `SELECT f.id,
		             LPAD(f.dia::text, 2, '0') || '/' || LPAD(f.mes::text, 2, '0') || '/' || f.anio AS fecha,
		             f.hora, f.forma_pago, f.total, f.tipo_factura,
		             u.nombre_usuario AS usuario,
		             COALESCE(d.nombre, '') AS distribuidor
		      FROM factura f
		      JOIN usuario u ON u.id = f.usuario_id
		      LEFT JOIN distribuidor d ON d.id = f.distribuidor_id
		      ORDER BY f.anio DESC, f.mes DESC, f.dia DESC`,
	},
	"distribuidores": {
		Tabla:       "distribuidores",
		Encabezados: []string{"id", "nombre", "telefono", "email", "direccion", "estado"},
		SQL: `SELECT id, nombre, telefono, COALESCE(email, '') AS email, direccion, estado
		      FROM distribuidor ORDER BY nombre`,
	},
	"listas_precio": {
		Tabla:       "listas_precio",
		Encabezados: []string{"lista", "producto", "precio", "porc_mayor", "porc_minor"},
		SQL: `SELECT l.nombre AS lista, p.nombre AS producto, d.precio, d.porc_mayor, d.porc_minor
		      FROM detalle_lista d
		      JOIN lista_precio l ON l.id = d.lista_precio_id
		      JOIN producto p ON p.id = d.producto_id
		      ORDER BY l.nombre, p.nombre`,
	},
	"visitas": {
		Tabla:       "visitas",
		Encabezados: []string{"id", "mascota", "fecha", "motivo", "diagnostico", "tratamiento"},
		SQL: `SELECT v.id, m.nombre AS mascota, TO_CHAR(v.fecha, 'YYYY-MM-DD') AS fecha,
		             v.motivo, v.diagnostico, v.tratamiento
		      FROM visita v JOIN mascota m ON m.id = v.mascota_id
		      ORDER BY v.fecha DESC`,
	},
	"vacunas": {
		Tabla:       "vacunas",
		Encabezados: []string{"id", "mascota", "vacuna", "fecha", "proxima_dosis"},
		SQL: `SELECT va.id, m.nombre AS mascota, va.nombre AS vacuna,
		             TO_CHAR(va.fecha, 'YYYY-MM-DD') AS fecha,
		             COALESCE(TO_CHAR(va.proxima_dosis, 'YYYY-MM-DD'), '') AS proxima_dosis
		      FROM vacuna_aplicada va JOIN mascota m ON m.id = va.mascota_id
		      ORDER BY va.fecha DESC`,
	},
	"items": {
		Tabla:       "items",
		Encabezados: []string{"id", "nombre", "descripcion", "precio", "stock", "estado"},
		SQL: `SELECT id, nombre, COALESCE(descripcion, '') AS descripcion, precio, stock, estado
		      FROM item ORDER BY nombre`,
	},
}

// ExportacionRepository runs the fixed per-table read queries.
type ExportacionRepository interface {
	// Consulta returns the query for a table identifier; ok=false means the
	// identifier is not exportable and the caller should skip it.
	Consulta(tabla string) (ConsultaExportacion, bool)
	// Ejecutar runs the query and returns rows in column order.
	Ejecutar(ctx context.Context, c ConsultaExportacion) ([][]any, error)
}

type exportacionRepo struct{ db *gorm.DB }

func NewExportacionRepository(db *gorm.DB) ExportacionRepository { return &exportacionRepo{db: db} }

func (r *exportacionRepo) Consulta(tabla string) (ConsultaExportacion, bool) {
	c, ok := consultas[tabla]
	return c, ok
}

func (r *exportacionRepo) Ejecutar(ctx context.Context, c ConsultaExportacion) ([][]any, error) {
	rows, err := r.db.WithContext(ctx).Raw(c.SQL).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var resultado [][]any
	for rows.Next() {
		valores := make([]any, len(cols))
		punteros := make([]any, len(cols))
		for i := range valores {
			punteros[i] = &valores[i]
		}
		if err := rows.Scan(punteros...); err != nil {
			return nil, err
		}
		for i, v := range valores {
			// Drivers hand back []byte for text/numeric; sheets want strings.
			if b, ok := v.([]byte); ok {
				valores[i] = string(b)
			}
		}
		resultado = append(resultado, valores)
	}
	return resultado, rows.Err()
}
