package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/contentforge/admin-api/docs"
	"github.com/contentforge/admin-api/internal/api/handler"
	"github.com/contentforge/admin-api/internal/api/middleware"
	"github.com/contentforge/admin-api/internal/core/domain"
	"github.com/contentforge/admin-api/internal/core/ports"
)

// Services groups everything the HTTP layer calls into.
type Services struct {
	Auth       ports.AuthService
	Navigation ports.NavigationService
	Users      ports.UserService
	Prompts    ports.PromptService
	Catalog    ports.CatalogService
	Tasks      ports.TaskService
	Overview   ports.OverviewService
	Settings   ports.SettingsService
	Activity   ports.ActivityService
}

// Metrics picks the registry the request collectors are registered with and
// the gatherer served on /metrics. Nil fields fall back to the prometheus
// defaults.
type Metrics struct {
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(svc Services, checks map[string]handler.Check, metrics Metrics, log zerolog.Logger) *echo.Echo {
	if metrics.Registerer == nil {
		metrics.Registerer = prometheus.DefaultRegisterer
	}
	if metrics.Gatherer == nil {
		metrics.Gatherer = prometheus.DefaultGatherer
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(log))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "content_admin",
		Subsystem:  "http",
		Registerer: metrics.Registerer,
	}))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(svc.Auth)
	navHandler := handler.NewNavigationHandler(svc.Auth, svc.Navigation, svc.Users)
	userHandler := handler.NewUserHandler(svc.Users)
	promptHandler := handler.NewPromptHandler(svc.Prompts)
	catalogHandler := handler.NewCatalogHandler(svc.Catalog)
	taskHandler := handler.NewTaskHandler(svc.Tasks, svc.Overview)
	settingsHandler := handler.NewSettingsHandler(svc.Settings)
	activityHandler := handler.NewActivityHandler(svc.Activity)

	requireAuth := middleware.Auth(svc.Auth)
	optionalAuth := middleware.OptionalAuth(svc.Auth)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, optionalAuth)
	e.GET("/auth/session", authHandler.Session, optionalAuth)

	// --- Dashboard routes ---
	v1 := e.Group("/v1")
	v1.GET("/navigation", navHandler.Navigation, optionalAuth)
	v1.GET("/me", navHandler.Me, requireAuth, middleware.RequireRole(domain.RoleUser))
	v1.GET("/tasks", taskHandler.List, requireAuth, middleware.RequireRole(domain.RoleUser))

	// --- Admin routes ---
	admin := v1.Group("/admin", requireAuth)

	operator := admin.Group("", middleware.RequireRole(domain.RoleOperator))
	operator.GET("/overview", taskHandler.Overview)
	operator.GET("/tasks/stats", taskHandler.Stats)
	operator.GET("/keywords", catalogHandler.ListKeywords)
	operator.POST("/keywords", catalogHandler.TrackKeyword)
	operator.DELETE("/keywords/:id", catalogHandler.UntrackKeyword)
	operator.GET("/blog-posts", catalogHandler.ListBlogPosts)
	operator.GET("/blog-posts/summary", catalogHandler.BlogSummary)
	operator.GET("/products", catalogHandler.ListProducts)
	operator.GET("/products/:id", catalogHandler.GetProduct)

	prompts := admin.Group("/prompts", middleware.RequireRole(domain.RolePromptManager))
	prompts.GET("", promptHandler.ListTypes)
	prompts.GET("/:type/versions", promptHandler.ListVersions)
	prompts.POST("/:type/versions", promptHandler.CreateVersion)
	prompts.GET("/versions/:id", promptHandler.GetVersion)
	prompts.PUT("/versions/:id", promptHandler.UpdateDraft)
	prompts.POST("/versions/:id/activate", promptHandler.Activate)

	superAdmin := admin.Group("", middleware.RequireRole(domain.RoleSuperAdmin))
	superAdmin.POST("/products", catalogHandler.CreateProduct)
	superAdmin.PUT("/products/:id", catalogHandler.UpdateProduct)
	superAdmin.GET("/users", userHandler.List)
	superAdmin.GET("/users/:id", userHandler.Get)
	superAdmin.PATCH("/users/:id", userHandler.Update)
	superAdmin.GET("/settings", settingsHandler.Get)
	superAdmin.PUT("/settings", settingsHandler.Save)
	superAdmin.GET("/activity", activityHandler.Recent)

	// --- Health probes and docs (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(checks)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: metrics.Gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
