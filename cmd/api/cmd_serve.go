package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/jhoicas/jprint-vendor-api/docs"
	appanalytics "github.com/jhoicas/jprint-vendor-api/internal/application/analytics"
	"github.com/jhoicas/jprint-vendor-api/internal/application/auth"
	"github.com/jhoicas/jprint-vendor-api/internal/application/orders"
	"github.com/jhoicas/jprint-vendor-api/internal/application/payments"
	"github.com/jhoicas/jprint-vendor-api/internal/application/seed"
	"github.com/jhoicas/jprint-vendor-api/internal/application/usecase"
	"github.com/jhoicas/jprint-vendor-api/internal/domain/order"
	"github.com/jhoicas/jprint-vendor-api/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/jprint-vendor-api/internal/infrastructure/pdf"
	"github.com/jhoicas/jprint-vendor-api/internal/infrastructure/receipt"
	httpRouter "github.com/jhoicas/jprint-vendor-api/internal/interfaces/http"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Inicia el servidor HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		c, err := boot(ctx)
		if err != nil {
			return err
		}
		defer c.Close()

		cfg, log := c.cfg, c.log
		if cfg.Session.Secret == "" {
			return errors.New("SESSION_SECRET es obligatorio")
		}
		log.Info().
			Str("env", cfg.App.Env).
			Str("app", cfg.App.Name).
			Str("db_driver", cfg.DB.Driver).
			Msg("iniciando aplicación")

		if c.pool == nil {
			res, err := c.seeder().Run(ctx, seed.DefaultVendors(), true)
			if err != nil {
				return err
			}
			log.Info().Int("vendors", res.VendorsCreated).Msg("datos de demostración cargados en memoria")
		}

		sessions, err := c.sessionStore(ctx)
		if err != nil {
			return err
		}

		m := metrics.New()
		policy := order.TransitionPolicy{Strict: cfg.Orders.StrictTransitions}
		text := receipt.NewTextRenderer(language.English)

		authUC := auth.NewAuthUseCase(c.vendors, sessions, auth.SessionConfig{
			Secret: cfg.Session.Secret,
			TTL:    c.sessionTTL(),
			Issuer: cfg.Session.Issuer,
		}, log.Component("auth"))

		docsPath, err := docs.Ensure(cfg.App.DocsPath)
		if err != nil {
			log.Warn().Err(err).Msg("swagger.json no disponible, /docs deshabilitado")
			docsPath = ""
		}

		app := httpRouter.NewApp(httpRouter.AppConfig{
			Name:     cfg.App.Name,
			Metrics:  m,
			DocsPath: docsPath,
			Log:      log.Component("http"),
		})
		httpRouter.Router(app, httpRouter.RouterDeps{
			AuthUC:       authUC,
			CreateOrder:  orders.NewCreateOrderUseCase(c.tx, c.vendors, c.calc, m, log.Component("orders")),
			UpdateStatus: orders.NewUpdateStatusUseCase(c.tx, policy, m, log.Component("orders")),
			OrderQuery:   orders.NewQueryUseCase(c.orders),
			Receipts:     orders.NewReceiptUseCase(c.orders, text, infrapdf.NewReceiptRenderer(text.Amount)),
			Payments:     payments.NewPaymentUseCase(c.orders, c.payments, m, log.Component("payments")),
			Dashboard:    appanalytics.NewDashboardUseCase(c.orders),
			SalesReport:  appanalytics.NewSalesReportUseCase(c.orders, c.vendors),
			Pricing:      usecase.NewPricingUseCase(c.calc),
			Cookie: httpRouter.CookieConfig{
				Name:   cfg.Session.CookieName,
				TTL:    c.sessionTTL(),
				Secure: cfg.App.IsProduction(),
			},
			Log: log.Component("http"),
		})

		go func() {
			if err := app.Listen(cfg.HTTP.Addr()); err != nil {
				log.Error().Err(err).Msg("servidor HTTP finalizado")
			}
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		log.Info().Msg("señal de apagado recibida, cerrando servidor...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("apagado del servidor")
		}

		log.Info().Msg("aplicación detenida")
		return nil
	},
}
