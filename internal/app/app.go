package app

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"hoteldesk/internal/adapters/cache"
	"hoteldesk/internal/adapters/httpclient"
	"hoteldesk/internal/adapters/postgres"
	"hoteldesk/internal/api"
	"hoteldesk/internal/api/handler"
	"hoteldesk/internal/config"
	"hoteldesk/internal/currency"
	"hoteldesk/internal/draft"
	"hoteldesk/internal/platform/db"
	httpserver "hoteldesk/internal/platform/http"

	"github.com/sirupsen/logrus"
)

// Run wires the application components, starts HTTP server and scheduler
func Run() error {
	appCfg, err := config.Init()
	if err != nil {
		return err
	}
	// Logger
	logrus.SetOutput(os.Stdout)
	cfgLevel := appCfg.Logging.Level
	if parsedLvl, parseErr := logrus.ParseLevel(cfgLevel); parseErr != nil {
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(parsedLvl)
	}
	logrus.Info("✅ Config initialization successful")

	// Root context bound to OS signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Bounded context for startup operations (DB connect, initial reads)
	startupCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	// DB pool
	pool, err := db.CreatePoolAndPing(startupCtx, appCfg.DbServer)
	if err != nil {
		logrus.WithError(err).Error("Error connecting to db")
		return err
	}
	defer pool.Close()
	logrus.Info("✅ Postgres connection successful")

	// External clients
	backendBaseURL := strings.TrimSuffix(appCfg.Backend.BaseURL, "/")
	if backendBaseURL == "" {
		return fmt.Errorf("backend base url is required")
	}
	backendURL, err := url.Parse(backendBaseURL)
	if err != nil {
		return fmt.Errorf("invalid backend base url: %w", err)
	}

	backendTimeout := time.Duration(appCfg.Backend.TimeoutSeconds) * time.Second
	if backendTimeout <= 0 {
		backendTimeout = 10 * time.Second
	}
	backendClient := httpclient.NewBackendClient(
		&http.Client{Timeout: backendTimeout},
		backendBaseURL,
		appCfg.Backend.Token,
	)

	ratesTimeout := time.Duration(appCfg.RatesAPI.TimeoutSeconds) * time.Second
	if ratesTimeout <= 0 {
		ratesTimeout = 10 * time.Second
	}
	ratesClient := httpclient.NewRatesClient(
		&http.Client{Timeout: ratesTimeout},
		strings.TrimSuffix(appCfg.RatesAPI.BaseURL, "/"),
	)

	// Repositories
	settingsRepo := postgres.NewSettingsRepository(pool)
	currencyRepo := postgres.NewCurrencyRepository(pool)

	// Currency service seeded from persisted state
	currencyService := currency.NewService(ratesClient, currencyRepo, appCfg.Currency.Base, "")
	if tracked, loadErr := currencyRepo.ListTracked(startupCtx); loadErr != nil {
		logrus.WithError(loadErr).Warn("Failed to load tracked currencies, starting with defaults")
	} else {
		currencyService.Seed(tracked)
	}
	if settings, loadErr := settingsRepo.Load(startupCtx); loadErr != nil {
		logrus.WithError(loadErr).Warn("Failed to load settings, starting with defaults")
	} else if settings != nil {
		currencyService.SetDisplayCurrency(settings.Currency)
	}
	currencyService.RefreshRates(startupCtx)
	logrus.Info("✅ Currency service ready")

	// Periodic rate refresh
	scheduler := currency.NewScheduler(currencyService, time.Duration(appCfg.Currency.RefreshIntervalSeconds)*time.Second)
	// Ensure scheduler stops before DB pool closes
	defer func() {
		if shutDownErr := scheduler.Shutdown(); shutDownErr != nil {
			logrus.Errorf("Scheduler shutdown error: %v", shutDownErr)
		}
	}()
	if startErr := scheduler.Start(ctx); startErr != nil {
		logrus.WithError(startErr).Error("Failed to start scheduler")
		return startErr
	}
	logrus.Info("✅ Scheduler activation successful")

	// Draft sessions
	quoteCache, err := cache.NewQuoteCache(appCfg.Currency.QuoteCacheSize)
	if err != nil {
		logrus.WithError(err).Error("Failed to create quote cache")
		return err
	}
	defer quoteCache.Close()
	debounce := time.Duration(appCfg.Currency.QuoteDebounceMillis) * time.Millisecond
	registry := draft.NewRegistry(backendClient, quoteCache, backendClient, currencyService, debounce)

	// Handlers and router
	apiHandler := handler.NewHandler(registry, currencyService, backendClient, settingsRepo)
	proxy := api.NewBackendProxy(backendURL, appCfg.Backend.Token)
	router := api.NewRouter(apiHandler, proxy)

	logrus.Info("Starting http server")
	// Block until context is canceled, then perform graceful shutdown.
	if serverErr := httpserver.Start(ctx, appCfg.HTTPServer, router); serverErr != nil {
		// Cancel the root context to stop scheduler and other in-flight work
		stop()
		logrus.Errorf("HTTP server error: %v", serverErr)
		return serverErr
	}
	return nil
}
