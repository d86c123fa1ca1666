package http

import (
	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	appanalytics "github.com/jhoicas/jprint-vendor-api/internal/application/analytics"
	"github.com/jhoicas/jprint-vendor-api/internal/application/auth"
	"github.com/jhoicas/jprint-vendor-api/internal/application/orders"
	"github.com/jhoicas/jprint-vendor-api/internal/application/payments"
	"github.com/jhoicas/jprint-vendor-api/internal/application/usecase"
	"github.com/jhoicas/jprint-vendor-api/internal/infrastructure/metrics"
)

func init() {
	// Importes como números JSON (324.5), no como strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	CreateOrder  *orders.CreateOrderUseCase
	UpdateStatus *orders.UpdateStatusUseCase
	OrderQuery   *orders.QueryUseCase
	Receipts     *orders.ReceiptUseCase
	Payments     *payments.PaymentUseCase
	Dashboard    *appanalytics.DashboardUseCase
	SalesReport  *appanalytics.SalesReportUseCase
	Pricing      *usecase.PricingUseCase
	Cookie       CookieConfig
	Log          zerolog.Logger
}

// AppConfig opciones de la aplicación Fiber.
type AppConfig struct {
	Name     string
	Metrics  *metrics.Metrics // nil: sin /metrics ni middleware de métricas
	DocsPath string           // swagger.json para /docs; vacío desactiva Swagger UI
	Log      zerolog.Logger
}

// NewApp construye la aplicación Fiber con recover, request id, log de peticiones,
// métricas, /health, /metrics y /docs. Las rutas de la API se registran con Router.
func NewApp(cfg AppConfig) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      cfg.Name,
		ErrorHandler: ErrorHandler(cfg.Log),
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(RequestLogger(cfg.Log))
	if cfg.Metrics != nil {
		app.Use(Metrics(cfg.Metrics))
		app.Get("/metrics", adaptor.HTTPHandler(cfg.Metrics.Handler()))
	}

	// Swagger UI en local: http://localhost:<port>/docs
	if cfg.DocsPath != "" {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.DocsPath,
			Path:     "docs",
			Title:    "JPRINT Vendor API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.Name})
	})
	return app
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.Cookie, deps.Log)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)

	// Rutas protegidas (requieren cookie de sesión)
	session := SessionMiddleware(deps.AuthUC, deps.Cookie.Name)
	authGroup.Get("/me", session, authHandler.Me)

	dashboardHandler := NewDashboardHandler(deps.Dashboard, deps.Log)
	api.Get("/dashboard", session, dashboardHandler.Get)

	// Orders: /history antes de /:id
	orderHandler := NewOrderHandler(deps.CreateOrder, deps.UpdateStatus, deps.OrderQuery, deps.Receipts, deps.Log)
	ordersGroup := api.Group("/orders", session)
	ordersGroup.Post("/", orderHandler.Create)
	ordersGroup.Get("/history", orderHandler.History)
	ordersGroup.Get("/:id", orderHandler.GetByID)
	ordersGroup.Put("/:id", orderHandler.UpdateStatus)
	ordersGroup.Get("/:id/download", orderHandler.Download)

	paymentHandler := NewPaymentHandler(deps.Payments, deps.Log)
	api.Put("/payments/:id", session, paymentHandler.UpdateStatus)

	salesHandler := NewSalesHandler(deps.SalesReport, deps.Log)
	api.Get("/sales", session, salesHandler.Report)

	pricingHandler := NewPricingHandler(deps.Pricing, deps.Log)
	pricingGroup := api.Group("/pricing", session)
	pricingGroup.Get("/rules", pricingHandler.Rules)
	pricingGroup.Post("/quote", pricingHandler.Quote)
}
