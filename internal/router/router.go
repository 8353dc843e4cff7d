package router

import (
	"time"

	"elceibo/internal/config"
	"elceibo/internal/handler"
	"elceibo/internal/middleware"
	"elceibo/internal/repository"
	"elceibo/internal/service"
	"elceibo/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	tipoRepo := repository.NewTipoRepository(db)
	productoRepo := repository.NewProductoRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	mascotaRepo := repository.NewMascotaRepository(db)
	facturaRepo := repository.NewFacturaRepository(db)
	distribuidorRepo := repository.NewDistribuidorRepository(db)
	listaRepo := repository.NewListaPrecioRepository(db)
	visitaRepo := repository.NewVisitaRepository(db)
	vacunaRepo := repository.NewVacunaRepository(db)
	itemRepo := repository.NewItemRepository(db)
	exportacionRepo := repository.NewExportacionRepository(db)

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	tipoSvc := service.NewTipoService(tipoRepo)
	productoSvc := service.NewProductoService(productoRepo, tipoRepo, listaRepo)
	clienteSvc := service.NewClienteService(clienteRepo)
	mascotaSvc := service.NewMascotaService(mascotaRepo, clienteRepo)
	facturaSvc := service.NewFacturaService(facturaRepo, productoRepo, dispatcher)
	distribuidorSvc := service.NewDistribuidorService(distribuidorRepo)
	listaSvc := service.NewListaPrecioService(listaRepo, productoRepo)
	historiaSvc := service.NewHistoriaService(visitaRepo, vacunaRepo, mascotaRepo)
	itemSvc := service.NewItemService(itemRepo)
	importacionSvc := service.NewImportacionService(productoRepo, tipoRepo, usuarioRepo, clienteRepo, mascotaRepo)
	exportacionSvc := service.NewExportacionService(exportacionRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usuariosH := handler.NewUsuariosHandler(authSvc)
	tiposH := handler.NewTiposHandler(tipoSvc)
	productosH := handler.NewProductosHandler(productoSvc, rdb)
	clientesH := handler.NewClientesHandler(clienteSvc, mascotaSvc)
	mascotasH := handler.NewMascotasHandler(mascotaSvc, historiaSvc)
	facturasH := handler.NewFacturasHandler(facturaSvc)
	distribuidoresH := handler.NewDistribuidoresHandler(distribuidorSvc)
	listasH := handler.NewListasPrecioHandler(listaSvc, rdb)
	historiaH := handler.NewHistoriaHandler(historiaSvc)
	itemsH := handler.NewItemsHandler(itemSvc)
	importacionH := handler.NewImportacionHandler(importacionSvc, rdb)
	exportacionH := handler.NewExportacionHandler(exportacionSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		todos := middleware.RequireRole("admin", "veterinario", "recepcion")
		clinica := middleware.RequireRole("admin", "veterinario")
		admin := middleware.RequireRole("admin")

		// Productos — reads for everyone, writes for admin
		v1.GET("/productos", todos, productosH.Listar)
		v1.GET("/productos/:id", todos, productosH.ObtenerPorID)
		v1.GET("/productos/:id/precio", todos, productosH.ConsultarPrecio)
		prods := v1.Group("/productos", admin)
		{
			prods.POST("", productosH.Crear)
			prods.PUT("/:id", productosH.Actualizar)
			prods.DELETE("/:id", productosH.Desactivar)
			prods.PATCH("/:id/reactivar", productosH.Reactivar)
		}

		// Tipos (categorias de producto)
		v1.GET("/tipos", todos, tiposH.Listar)
		tipos := v1.Group("/tipos", admin)
		{
			tipos.POST("", tiposH.Crear)
			tipos.PUT("/:id", tiposH.Actualizar)
			tipos.DELETE("/:id", tiposH.Eliminar)
		}

		// Clientes y mascotas
		clientes := v1.Group("/clientes", todos)
		{
			clientes.POST("", clientesH.Crear)
			clientes.GET("", clientesH.Listar)
			clientes.GET("/:id", clientesH.ObtenerPorID)
			clientes.GET("/:id/mascotas", clientesH.Mascotas)
			clientes.PUT("/:id", clientesH.Actualizar)
			clientes.DELETE("/:id", clientesH.Desactivar)
			clientes.PATCH("/:id/reactivar", clientesH.Reactivar)
		}

		mascotas := v1.Group("/mascotas", todos)
		{
			mascotas.POST("", mascotasH.Crear)
			mascotas.GET("/:id", mascotasH.ObtenerPorID)
			mascotas.PUT("/:id", mascotasH.Actualizar)
			mascotas.DELETE("/:id", mascotasH.Desactivar)
			mascotas.GET("/:id/visitas", mascotasH.Visitas)
			mascotas.GET("/:id/vacunas", mascotasH.Vacunas)
		}

		// Historia clinica — writes restricted to personal clinico
		visitas := v1.Group("/visitas", clinica)
		{
			visitas.POST("", historiaH.CrearVisita)
			visitas.PUT("/:id", historiaH.ActualizarVisita)
			visitas.DELETE("/:id", historiaH.EliminarVisita)
		}
		vacunas := v1.Group("/vacunas", clinica)
		{
			vacunas.POST("", historiaH.RegistrarVacuna)
			vacunas.DELETE("/:id", historiaH.EliminarVacuna)
		}

		// Facturas — line items immutable after creation
		facturas := v1.Group("/facturas", todos)
		{
			facturas.POST("", facturasH.Crear)
			facturas.GET("", facturasH.Listar)
			facturas.GET("/:id", facturasH.ObtenerPorID)
			facturas.PATCH("/:id", facturasH.ActualizarEncabezado)
			facturas.POST("/:id/enviar", facturasH.Enviar)
		}
		v1.DELETE("/facturas/:id", admin, facturasH.Eliminar)

		// Distribuidores
		distribuidores := v1.Group("/distribuidores", admin)
		{
			distribuidores.POST("", distribuidoresH.Crear)
			distribuidores.GET("", distribuidoresH.Listar)
			distribuidores.GET("/:id", distribuidoresH.ObtenerPorID)
			distribuidores.PUT("/:id", distribuidoresH.Actualizar)
			distribuidores.DELETE("/:id", distribuidoresH.Desactivar)
		}

		// Items de uso interno
		items := v1.Group("/items", todos)
		{
			items.GET("", itemsH.Listar)
			items.GET("/:id", itemsH.ObtenerPorID)
		}
		itemsAdmin := v1.Group("/items", admin)
		{
			itemsAdmin.POST("", itemsH.Crear)
			itemsAdmin.PUT("/:id", itemsH.Actualizar)
			itemsAdmin.DELETE("/:id", itemsH.Desactivar)
		}

		// Listas de precios — the one fully transactional write
		listas := v1.Group("/listas-precio", admin)
		{
			listas.POST("", listasH.Crear)
			listas.GET("", listasH.Listar)
			listas.GET("/:id", listasH.ObtenerPorID)
			listas.PUT("/:id", listasH.Actualizar)
			listas.DELETE("/:id", listasH.Eliminar)
		}

		// Usuarios
		usuarios := v1.Group("/usuarios", admin)
		{
			usuarios.POST("", usuariosH.Crear)
			usuarios.GET("", usuariosH.Listar)
			usuarios.PUT("/:id", usuariosH.Actualizar)
			usuarios.DELETE("/:id", usuariosH.Desactivar)
			usuarios.PATCH("/:id/reactivar", usuariosH.Reactivar)
		}

		// Respaldo: importacion y exportacion xlsx
		v1.POST("/importaciones", admin, importacionH.Importar)
		v1.POST("/exportaciones", admin, exportacionH.Exportar)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
