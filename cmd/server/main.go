package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"ulascansenturk/city-weather/config"
	"ulascansenturk/city-weather/internal/api/web/handlers"
	"ulascansenturk/city-weather/internal/db/lookuplog"
	"ulascansenturk/city-weather/internal/history"
	"ulascansenturk/city-weather/internal/inmemorycache"
	"ulascansenturk/city-weather/internal/providers"
	"ulascansenturk/city-weather/internal/service"
)

func main() {
	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logLevel, err := zerolog.ParseLevel(conf.LogLevel)
	if err != nil {
		logLevel = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stdout).
		Level(logLevel).
		With().
		Str("service_name", conf.ServiceName).
		Timestamp().
		Logger()
	log.Logger = logger
	zerolog.DefaultContextLogger = &logger

	ctx, mainCtxStop := context.WithCancel(context.Background())

	opts := service.Options{}

	if conf.LookupLogEnabled() {
		db, dbErr := initializeDatabase(conf)
		if dbErr != nil {
			logger.Fatal().Err(dbErr).Msg("failed to initialize database")
		}
		opts.LookupLog = lookuplog.NewRepository(db)
	} else {
		logger.Info().Msg("DATABASE_HOST not set, lookup log disabled")
	}

	cacheProvider := inmemorycache.NewInMemoryCacheProvider(time.Minute)
	defer cacheProvider.Close()
	opts.GeocodeCache = cacheProvider
	opts.GeocodeCacheTTL = conf.GeocodeCacheTTL

	httpClient := &http.Client{Timeout: conf.ProviderTimeout}

	geocoder := providers.NewGeocodingClient(conf.GeocodingBaseURL, httpClient, conf.BreakerSettings())
	weatherClient := providers.NewWeatherClient(conf.ForecastBaseURL, httpClient, conf.BreakerSettings())

	historyStore := history.NewFileStore(afero.NewOsFs(), conf.HistoryFile)

	weatherService := service.NewWeatherService(geocoder, weatherClient, historyStore, opts)

	handler := handlers.NewWeatherHandler(weatherService, conf.HTTPTimeoutDuration())

	httpServer := &http.Server{
		Addr:              conf.ServerAddress,
		Handler:           handler,
		ReadHeaderTimeout: conf.HTTPTimeoutDuration(),
	}

	handleSignals(ctx, mainCtxStop, func() {
		shutdownErr := httpServer.Shutdown(ctx)
		if shutdownErr != nil {
			log.Fatal().Err(shutdownErr).Msg("server shutdown failed")
		}
	})

	log.Info().
		Str("history_file", conf.HistoryFile).
		Msgf("started server on %s", conf.ServerAddress)

	serverErr := httpServer.ListenAndServe()
	if serverErr != nil && serverErr != http.ErrServerClosed {
		log.Err(serverErr).Msg("server stopped")
		mainCtxStop()
	}
	<-ctx.Done()
}

func initializeDatabase(config *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&lookuplog.CityLookup{}); err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(5)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(3 * time.Minute)

	return db, nil
}

func handleSignals(ctx context.Context, cancelCtx context.CancelFunc, callback func()) {
	sig := make(chan os.Signal, 1)

	signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	const shutdownDuration = 30 * time.Second

	go func() {
		<-sig

		shutdownCtx, cancel := context.WithTimeout(ctx, shutdownDuration)

		go func() {
			<-shutdownCtx.Done()

			if shutdownCtx.Err() == context.DeadlineExceeded {
				panic("graceful shutdown timed out.. forcing exit.")
			}
		}()

		callback()

		cancel()
		cancelCtx()
	}()
}
