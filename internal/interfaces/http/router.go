package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/FotoStock-api/internal/application/auth"
	"github.com/jhoicas/FotoStock-api/internal/application/catalog"
	"github.com/jhoicas/FotoStock-api/internal/application/usecase"
	"github.com/jhoicas/FotoStock-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	StoreUC        *usecase.StoreUseCase
	ProductUC      *usecase.ProductUseCase
	SaleUC         *usecase.SaleUseCase
	PlanUC         *usecase.PlanUseCase
	TeamUC         *usecase.TeamUseCase
	DashboardUC    *usecase.DashboardUseCase
	NotificationUC *usecase.NotificationUseCase
	AdminUC        *usecase.AdminUseCase
	CatalogUC      *catalog.CatalogUseCase
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/signup", authHandler.Signup)
	authGroup.Post("/login", authHandler.Login)

	// Planes disponibles (público, para la página de selección)
	planHandler := NewPlanHandler(deps.PlanUC)
	api.Get("/plans", planHandler.List)

	// Catálogo público por slug (sin token)
	catalogGroup := api.Group("/catalog")
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	catalogGroup.Get("/:slug", catalogHandler.Get)
	catalogGroup.Get("/:slug/pdf", catalogHandler.ExportPDF)

	// Rutas protegidas: token válido + perfil resuelto contra la base.
	// El token solo identifica; el rol y la tienda salen del perfil.
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret), ResolveProfile(deps.AuthUC))

	protected.Get("/auth/me", authHandler.Me)

	// Tiendas (la autorización multi-tenant la decide el caso de uso)
	stores := protected.Group("/stores/:storeID")
	storeHandler := NewStoreHandler(deps.StoreUC)
	stores.Get("/", storeHandler.Get)
	stores.Put("/", storeHandler.Rename)
	stores.Put("/plan", planHandler.Assign)

	// Productos de la tienda
	productHandler := NewProductHandler(deps.ProductUC)
	stores.Post("/products", productHandler.Create)
	stores.Get("/products", productHandler.List)
	protected.Get("/products/:id", productHandler.GetByID)
	protected.Put("/products/:id", productHandler.Update)
	protected.Delete("/products/:id", productHandler.Delete)

	// Ventas
	saleHandler := NewSaleHandler(deps.SaleUC)
	stores.Post("/sales", saleHandler.Register)
	stores.Get("/sales", saleHandler.List)

	// Equipo
	teamHandler := NewTeamHandler(deps.TeamUC)
	stores.Post("/team", teamHandler.Invite)
	stores.Get("/team", teamHandler.List)

	// Dashboard y notificaciones
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.NotificationUC)
	stores.Get("/dashboard", dashboardHandler.Get)
	stores.Get("/notifications", dashboardHandler.ListNotifications)
	stores.Put("/notifications/:id/read", dashboardHandler.MarkNotificationRead)

	// Panel admin (rol admin global)
	adminGroup := protected.Group("/admin", RequireRole(entity.RoleAdmin))
	adminHandler := NewAdminHandler(deps.AdminUC)
	adminGroup.Get("/stores", adminHandler.Overview)
	adminGroup.Put("/profiles/:id/role", adminHandler.ChangeRole)
}
