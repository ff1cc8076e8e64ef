package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/Abburizal/Flymora-Tours-Travels-sub000/internal/auth"
	"github.com/Abburizal/Flymora-Tours-Travels-sub000/internal/config"
	"github.com/Abburizal/Flymora-Tours-Travels-sub000/internal/handler"
	"github.com/Abburizal/Flymora-Tours-Travels-sub000/internal/jobs"
	"github.com/Abburizal/Flymora-Tours-Travels-sub000/internal/middleware"
	"github.com/Abburizal/Flymora-Tours-Travels-sub000/internal/notification"
	"github.com/Abburizal/Flymora-Tours-Travels-sub000/internal/repository"
	"github.com/Abburizal/Flymora-Tours-Travels-sub000/internal/router"
	"github.com/Abburizal/Flymora-Tours-Travels-sub000/internal/scheduler"
	"github.com/Abburizal/Flymora-Tours-Travels-sub000/internal/service"
	"github.com/Abburizal/Flymora-Tours-Travels-sub000/internal/storage"
	"github.com/wb-go/wbf/logger"
	"gorm.io/gorm"
)

const appName = "Flymora"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *gorm.DB
	jobs       *jobs.Registry
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(ctx context.Context, cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		appName,
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.initDB(ctx); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initServices(); err != nil {
		_ = storage.Close(app.db)
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB(ctx context.Context) error {
	db, err := storage.Open(ctx, storage.Options{
		Driver:          a.cfg.Database.Driver,
		DSN:             a.cfg.Database.DSN,
		MaxOpenConns:    a.cfg.Database.MaxOpenConns,
		MaxIdleConns:    a.cfg.Database.MaxIdleConns,
		ConnMaxLifetime: a.cfg.Database.ConnMaxLifetime,
	})
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(ctx, logger.InfoLevel, "database connected",
		logger.String("driver", a.cfg.Database.Driver),
	)

	return nil
}

func (a *App) initServices() error {
	loc, err := a.cfg.Booking.Location()
	if err != nil {
		return err
	}

	tourRepo := repository.NewTourRepo(a.db)
	bookingRepo := repository.NewBookingRepo(a.db)
	userRepo := repository.NewUserRepo(a.db)
	categoryRepo := repository.NewCategoryRepo(a.db)
	reviewRepo := repository.NewReviewRepo(a.db)
	wishlistRepo := repository.NewWishlistRepo(a.db)
	notificationRepo := repository.NewNotificationLogRepo(a.db)

	channel, err := a.notificationChannel()
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}
	notifier := notification.NewDispatcher(channel, notificationRepo, a.log)

	tokens := auth.NewManager(a.cfg.Auth.JWTSecret, a.cfg.Auth.TokenTTL)

	tourService := service.NewTourService(tourRepo, categoryRepo)
	userService := service.NewUserService(userRepo, tokens, a.cfg.Auth.AdminEmail)
	catalogService := service.NewCatalogService(categoryRepo, reviewRepo, wishlistRepo, tourRepo)
	notificationService := service.NewNotificationLogService(notificationRepo)
	bookingService := service.NewBookingService(
		bookingRepo,
		userRepo,
		notifier,
		a.cfg.Booking.PaymentWindow,
		a.log,
	)

	a.jobs = jobs.NewRegistry(a.log,
		jobs.NewExpireBookings(bookingRepo, notifier, a.log),
		jobs.NewPaymentReminders(bookingRepo, notifier, a.cfg.Booking.PaymentReminderWindow, a.log),
		jobs.NewTripReminders(bookingRepo, notifier, a.cfg.Booking.TripReminderDays, loc, a.log),
		jobs.NewCompleteTrips(bookingRepo, loc, a.log),
	)

	a.scheduler = scheduler.New(a.jobs, a.log,
		scheduler.Entry{Job: jobs.NameExpireBookings, Interval: a.cfg.Scheduler.ExpireBookings},
		scheduler.Entry{Job: jobs.NamePaymentReminders, Interval: a.cfg.Scheduler.PaymentReminders},
		scheduler.Entry{Job: jobs.NameTripReminders, Interval: a.cfg.Scheduler.TripReminders},
		scheduler.Entry{Job: jobs.NameCompleteTrips, Interval: a.cfg.Scheduler.CompleteTrips},
	)

	h := handler.NewHandler(tourService, bookingService, userService, catalogService, notificationService, a.jobs)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.Authenticate(tokens, userRepo),
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
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

func (a *App) notificationChannel() (notification.Channel, error) {
	if a.cfg.Telegram.BotToken == "" {
		a.log.Warn("telegram bot token is empty, notifications go to the log")
		return notification.NewLogChannel(a.log), nil
	}
	return notification.NewTelegramChannel(a.cfg.Telegram.BotToken)
}

// Migrate applies pending schema migrations.
func (a *App) Migrate() error {
	if err := storage.Migrate(a.db, a.cfg.Database.Driver); err != nil {
		return err
	}
	a.log.Info("migrations applied successfully", logger.String("driver", a.cfg.Database.Driver))
	return nil
}

// RunJob executes one scheduled job by name, as the CLI commands do.
func (a *App) RunJob(ctx context.Context, name string) (jobs.Report, error) {
	return a.jobs.Run(ctx, name)
}

func (a *App) JobNames() []string {
	return a.jobs.Names()
}

func (a *App) HasJob(name string) bool {
	return a.jobs.Has(name)
}

// Run migrates the schema, then serves HTTP and runs the scheduler until
// SIGINT or SIGTERM.
func (a *App) Run() error {
	if err := a.Migrate(); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	schedDone := make(chan struct{})
	if a.cfg.Scheduler.Enabled {
		go func() {
			defer close(schedDone)
			a.scheduler.Start(ctx)
		}()
	} else {
		close(schedDone)
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case runErr = <-errCh:
		stop()
	}

	<-schedDone
	if err := a.shutdown(); err != nil {
		return err
	}
	return runErr
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

	if err := a.Close(); err != nil {
		return err
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) Close() error {
	if err := storage.Close(a.db); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")
	return nil
}
