package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/pressly/goose/v3"
	"github.com/stpnv0/SeatReserve/internal/config"
	"github.com/stpnv0/SeatReserve/internal/handler"
	"github.com/stpnv0/SeatReserve/internal/middleware"
	"github.com/stpnv0/SeatReserve/internal/notification"
	"github.com/stpnv0/SeatReserve/internal/repository"
	"github.com/stpnv0/SeatReserve/internal/repository/memory"
	"github.com/stpnv0/SeatReserve/internal/router"
	"github.com/stpnv0/SeatReserve/internal/scheduler"
	"github.com/stpnv0/SeatReserve/internal/service"
	"github.com/stpnv0/SeatReserve/internal/service/ports"
	"github.com/stpnv0/SeatReserve/internal/ticket"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const migrationsDir = "migrations"

type stores struct {
	events     ports.EventRepo
	bookings   ports.BookingRepo
	inventory  ports.InventoryStore
	categories ports.CategoryRepo
	profiles   ports.ProfileRepo
	roles      ports.RoleRepo
}

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"SeatReserve",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	st, err := app.initStorage()
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}

	if err = app.initServices(st); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initStorage() (*stores, error) {
	if a.cfg.Storage.Driver == config.StorageMemory {
		a.log.Warn("using in-memory storage, data is lost on restart")

		s := memory.NewStore()
		return &stores{
			events:     memory.NewEventRepo(s),
			bookings:   memory.NewBookingRepo(s),
			inventory:  memory.NewInventoryStore(s),
			categories: memory.NewCategoryRepo(s),
			profiles:   memory.NewProfileRepo(s),
			roles:      memory.NewRoleRepo(s),
		}, nil
	}

	if err := a.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err := a.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	return &stores{
		events:     repository.NewEventRepo(a.db),
		bookings:   repository.NewBookingRepo(a.db),
		inventory:  repository.NewInventoryRepo(a.db),
		categories: repository.NewCategoryRepo(a.db),
		profiles:   repository.NewProfileRepo(a.db),
		roles:      repository.NewRoleRepo(a.db),
	}, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	db.Master.SetConnMaxLifetime(a.cfg.Postgres.ConnMaxLifetime)

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initServices(st *stores) error {
	n, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	querySvc := service.NewQueryService(st.events, st.bookings, st.inventory, st.categories)
	ledgerSvc := service.NewLedgerService(st.bookings, st.inventory, st.events, st.profiles, n, a.log)
	reservationSvc := service.NewReservationService(
		querySvc,
		st.inventory,
		ledgerSvc,
		st.profiles,
		n,
		a.log,
		service.WithCompensationTimeout(a.cfg.Booking.CompensationTimeout),
	)
	adminSvc := service.NewAdminService(st.events, st.bookings, a.log)
	profileSvc := service.NewProfileService(st.profiles)
	accessSvc := service.NewAccessService(st.roles, a.log)
	ticketSvc := service.NewTicketService(st.bookings, ticket.NewIssuer(a.cfg.Ticket.Secret))

	if err = a.bootstrapAdmins(accessSvc); err != nil {
		return err
	}

	a.scheduler = scheduler.New(
		adminSvc,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	h := handler.NewHandler(querySvc, reservationSvc, ledgerSvc, adminSvc, profileSvc, ticketSvc)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		router.Guards{
			Auth:  middleware.Auth(a.cfg.Auth.JWTSecret, a.cfg.Auth.Issuer, a.log),
			Admin: middleware.RequireAdmin(accessSvc, a.log),
		},
		middleware.Recovery(a.log),
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) bootstrapAdmins(access *service.AccessService) error {
	ctx := context.Background()
	for _, id := range a.cfg.Auth.BootstrapAdmins {
		if id == "" {
			continue
		}
		if err := access.GrantAdmin(ctx, id); err != nil {
			return fmt.Errorf("bootstrap admin %s: %w", id, err)
		}
	}
	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
			logger.String("storage", a.cfg.Storage.Driver),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if a.db != nil {
		if err := a.db.Master.Close(); err != nil {
			return fmt.Errorf("close db: %w", err)
		}
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
