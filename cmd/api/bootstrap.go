package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/jprint-vendor-api/internal/application/orders"
	"github.com/jhoicas/jprint-vendor-api/internal/application/payments"
	"github.com/jhoicas/jprint-vendor-api/internal/application/ports"
	"github.com/jhoicas/jprint-vendor-api/internal/application/seed"
	"github.com/jhoicas/jprint-vendor-api/internal/application/usecase"
	"github.com/jhoicas/jprint-vendor-api/internal/domain/order"
	"github.com/jhoicas/jprint-vendor-api/internal/domain/pricing"
	"github.com/jhoicas/jprint-vendor-api/internal/domain/repository"
	"github.com/jhoicas/jprint-vendor-api/internal/infrastructure/memory"
	"github.com/jhoicas/jprint-vendor-api/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/jprint-vendor-api/internal/infrastructure/redis"
	"github.com/jhoicas/jprint-vendor-api/pkg/config"
	"github.com/jhoicas/jprint-vendor-api/pkg/logger"
)

// container dependencias compartidas por los subcomandos.
type container struct {
	cfg *config.Config
	log *logger.Logger

	pool     *pgxpool.Pool // nil con DB_DRIVER=memory
	tx       orders.TxRunner
	vendors  repository.VendorRepository
	orders   repository.OrderRepository
	payments repository.PaymentRepository
	calc     *pricing.Calculator

	closers []func()
}

// boot carga configuración, logger y el driver de persistencia elegido.
func boot(ctx context.Context) (*container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("cargar configuración: %w", err)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	c := &container{cfg: cfg, log: log, calc: pricing.NewCalculator(ratesFromConfig(cfg.Pricing))}

	switch cfg.DB.Driver {
	case "memory":
		log.Warn().Msg("DB_DRIVER=memory: los datos se pierden al detener el proceso")
		s := memory.NewStore()
		c.tx, c.vendors, c.orders, c.payments = s, s.Vendors(), s.Orders(), s.Payments()
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		c.pool = pool
		c.closers = append(c.closers, pool.Close)
		c.tx = postgres.NewTxRunner(pool)
		c.vendors = postgres.NewVendorRepository(pool)
		c.orders = postgres.NewOrderRepository(pool)
		c.payments = postgres.NewPaymentRepository(pool)
	}
	return c, nil
}

// sessionStore Redis si REDIS_ADDR está definido; si no, revocaciones en memoria
// (se pierden al reiniciar y no se comparten entre réplicas).
func (c *container) sessionStore(ctx context.Context) (ports.SessionStore, error) {
	if c.cfg.Redis.Addr == "" {
		c.log.Warn().Msg("REDIS_ADDR vacío: revocación de sesiones en memoria")
		return memory.NewSessionStore(), nil
	}
	rdb, err := infraredis.NewClient(ctx, c.cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("conexión a Redis: %w", err)
	}
	c.closers = append(c.closers, func() { _ = rdb.Close() })
	return infraredis.NewSessionStore(rdb), nil
}

// seeder usa los mismos casos de uso que la API, sin métricas.
func (c *container) seeder() *seed.Seeder {
	log := c.log.Component("seed")
	events := ports.NopOrderEvents{}
	return seed.NewSeeder(
		usecase.NewVendorUseCase(c.vendors),
		orders.NewCreateOrderUseCase(c.tx, c.vendors, c.calc, events, log),
		orders.NewUpdateStatusUseCase(c.tx, order.TransitionPolicy{}, events, log),
		payments.NewPaymentUseCase(c.orders, c.payments, events, log),
		log,
	)
}

func (c *container) sessionTTL() time.Duration {
	return time.Duration(c.cfg.Session.TTLMinutes) * time.Minute
}

// Close libera conexiones en orden inverso.
func (c *container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
}

func ratesFromConfig(p config.PricingConfig) pricing.Rates {
	return pricing.Rates{
		BWPerPage:      decimal.NewFromFloat(p.BWPerPage),
		ColorPerPage:   decimal.NewFromFloat(p.ColorPerPage),
		DuplexPerCopy:  decimal.NewFromFloat(p.DuplexPerCopy),
		A3Multiplier:   decimal.NewFromFloat(p.A3Multiplier),
		BindingFlat:    decimal.NewFromFloat(p.BindingFlat),
		LaminationFlat: decimal.NewFromFloat(p.LaminationFlat),
	}
}
