package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"campaignd/internal/adapter/repo"
	"campaignd/internal/http/handlers"
	httpapi "campaignd/internal/http/httpapi"
	"campaignd/internal/infra"
	"campaignd/internal/infra/geoip"
	"campaignd/internal/mailer"
	"campaignd/internal/middleware"
)

func main() {
	// .env is optional; real deployments inject the environment directly.
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()
	dbpool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}
	defer dbpool.Close()

	runner := infra.NewSQLRunner(dbpool, logger)

	submissions := repo.NewSubmissionRepository(runner, logger)
	campaigns := repo.NewCampaignRepository(runner, logger)
	settings := repo.NewSettingsRepository(runner, cfg.DefaultCurrency)
	stats := repo.NewStatsRepository(runner)

	resolver, err := geoip.NewResolver(cfg.GeoIPDBPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open geoip database")
	}
	var countryLookup middleware.CountryLookup
	if resolver != nil {
		countryLookup = resolver.CountryCode
	}

	mail, err := mailer.NewFromConfig(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build mailer")
	}
	if !cfg.MailEnabled() {
		logger.Warn().Msg("SMTP_HOST not set, confirmation email disabled")
	}

	app := handlers.NewApp(cfg, logger, submissions, campaigns, settings, stats, mail)
	router := httpapi.NewRouter(app, cfg, countryLookup)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
