package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/estate/internal/apartment"
	apartmentStore "github.com/MrJamesThe3rd/estate/internal/apartment/store"
	"github.com/MrJamesThe3rd/estate/internal/auth"
	"github.com/MrJamesThe3rd/estate/internal/billing"
	billingStore "github.com/MrJamesThe3rd/estate/internal/billing/store"
	"github.com/MrJamesThe3rd/estate/internal/building"
	buildingStore "github.com/MrJamesThe3rd/estate/internal/building/store"
	"github.com/MrJamesThe3rd/estate/internal/config"
	"github.com/MrJamesThe3rd/estate/internal/contract"
	contractStore "github.com/MrJamesThe3rd/estate/internal/contract/store"
	"github.com/MrJamesThe3rd/estate/internal/database"
	"github.com/MrJamesThe3rd/estate/internal/hashing"
	estateHttp "github.com/MrJamesThe3rd/estate/internal/http"
	apartmentHandler "github.com/MrJamesThe3rd/estate/internal/http/apartment"
	authHandler "github.com/MrJamesThe3rd/estate/internal/http/auth"
	buildingHandler "github.com/MrJamesThe3rd/estate/internal/http/building"
	contractHandler "github.com/MrJamesThe3rd/estate/internal/http/contract"
	invoiceHandler "github.com/MrJamesThe3rd/estate/internal/http/invoice"
	lineItemHandler "github.com/MrJamesThe3rd/estate/internal/http/invoicedetail"
	notificationHandler "github.com/MrJamesThe3rd/estate/internal/http/notification"
	offeringHandler "github.com/MrJamesThe3rd/estate/internal/http/offering"
	paymentHandler "github.com/MrJamesThe3rd/estate/internal/http/payment"
	residentHandler "github.com/MrJamesThe3rd/estate/internal/http/resident"
	subscriptionHandler "github.com/MrJamesThe3rd/estate/internal/http/subscription"
	"github.com/MrJamesThe3rd/estate/internal/invoice"
	invoiceStore "github.com/MrJamesThe3rd/estate/internal/invoice/store"
	"github.com/MrJamesThe3rd/estate/internal/jobs"
	"github.com/MrJamesThe3rd/estate/internal/metrics"
	"github.com/MrJamesThe3rd/estate/internal/notification"
	notificationStore "github.com/MrJamesThe3rd/estate/internal/notification/store"
	"github.com/MrJamesThe3rd/estate/internal/offering"
	offeringStore "github.com/MrJamesThe3rd/estate/internal/offering/store"
	"github.com/MrJamesThe3rd/estate/internal/payment"
	paymentStore "github.com/MrJamesThe3rd/estate/internal/payment/store"
	"github.com/MrJamesThe3rd/estate/internal/resident"
	residentStore "github.com/MrJamesThe3rd/estate/internal/resident/store"
	"github.com/MrJamesThe3rd/estate/internal/roster"
	rosterStore "github.com/MrJamesThe3rd/estate/internal/roster/store"
	"github.com/MrJamesThe3rd/estate/internal/subscription"
	subscriptionStore "github.com/MrJamesThe3rd/estate/internal/subscription/store"
)

func main() {
	_ = godotenv.Load()

	decimal.MarshalJSONWithoutQuotes = true

	if err := run(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := cfg.ValidateAPI(); err != nil {
		return err
	}

	if cfg.DB.AutoMigrate {
		if err := migrateUp(cfg.ConnectionString()); err != nil {
			return err
		}
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer db.Close()

	var (
		hasher    = hashing.NewBcrypt(cfg.Auth.BcryptCost)
		issuer    = auth.NewIssuer(cfg.Auth.AccessSecret, cfg.Auth.RefreshSecret, cfg.Auth.AccessTTL, cfg.Auth.RefreshTTL)
		metric    = metrics.New()
		residents = residentStore.New(db)
	)

	var (
		authService         = auth.NewService(residents, hasher, issuer)
		residentService     = resident.NewService(residents, hasher)
		buildingService     = building.NewService(buildingStore.New(db))
		apartmentService    = apartment.NewService(apartmentStore.New(db))
		rosterService       = roster.NewService(rosterStore.New(db))
		offeringService     = offering.NewService(offeringStore.New(db))
		subscriptionService = subscription.NewService(subscriptionStore.New(db))
		invoiceService      = invoice.NewService(invoiceStore.New(db))
		billingService      = billing.NewService(billingStore.New(db))
		paymentService      = payment.NewService(paymentStore.New(db))
		notificationService = notification.NewService(notificationStore.New(db))
		contractService     = contract.NewService(contractStore.New(db))
	)

	router := estateHttp.New(estateHttp.Handlers{
		Auth:          authHandler.NewHandler(authService),
		Residents:     residentHandler.NewHandler(residentService),
		Buildings:     buildingHandler.NewHandler(buildingService),
		Apartments:    apartmentHandler.NewHandler(apartmentService, rosterService),
		Services:      offeringHandler.NewHandler(offeringService),
		Subscriptions: subscriptionHandler.NewHandler(subscriptionService),
		Invoices:      invoiceHandler.NewHandler(invoiceService),
		LineItems:     lineItemHandler.NewHandler(billingService),
		Payments:      paymentHandler.NewHandler(paymentService),
		Notifications: notificationHandler.NewHandler(notificationService),
		Contracts:     contractHandler.NewHandler(contractService),
	}, estateHttp.Options{
		Timeout:       cfg.Server.Timeout,
		CORSOrigins:   cfg.CORS.AllowedOrigins,
		AuthRequests:  cfg.RateLimit.AuthRequests,
		AuthWindow:    cfg.RateLimit.AuthWindow,
		Authenticator: authService,
		Health:        database.NewChecker(db),
		Metrics:       metric,
	})

	scheduler := jobs.NewScheduler()
	if err := scheduler.Add(cfg.Jobs.OverdueSchedule, jobs.NewOverdueJob(invoiceService, metric, time.Minute)); err != nil {
		return err
	}

	scheduler.Start()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)

	go func() {
		slog.Info("starting server", "port", srv.Addr, "overdue_schedule", cfg.Jobs.OverdueSchedule)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}

		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	scheduler.Stop(shutdownCtx)

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}

	return nil
}

func migrateUp(connStr string) error {
	m, err := database.NewMigrator(connStr)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil {
		return err
	}

	slog.Info("migrations applied")

	return nil
}
