package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pocketledger/backend/internal/auth"
	"github.com/pocketledger/backend/internal/cache"
	"github.com/pocketledger/backend/internal/config"
	v1 "github.com/pocketledger/backend/internal/controllers/v1"
	"github.com/pocketledger/backend/internal/events"
	"github.com/pocketledger/backend/internal/ledger"
	"github.com/pocketledger/backend/internal/models"
	"github.com/pocketledger/backend/internal/router"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// gin uses debug as the default mode, we use release for
	// security reasons
	gin.SetMode(cfg.GinMode)

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	output := io.Writer(os.Stdout)
	if (cfg.LogFormat == "" && gin.IsDebugging()) || cfg.LogFormat == "human" {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	if err := cfg.Validate(); err != nil {
		log.Fatal().Msg(err.Error())
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Connect to the database
	switch cfg.DBDriver {
	case "postgres":
		err = models.ConnectPostgres(cfg.DBDSN)
	default:
		// Create data directory
		err = os.MkdirAll(filepath.Dir(cfg.DBDSN), os.ModePerm)
		if err == nil {
			err = models.Connect(cfg.DBDSN)
		}
	}
	if err != nil {
		log.Fatal().Str("driver", cfg.DBDriver).Msg(err.Error())
	}

	summaryCache, closeCache := newCache(ctx, cfg)
	defer closeCache()

	publisher := newPublisher(cfg)
	defer publisher.Close()

	r, teardown, err := router.Config(cfg.APIURL, cfg.CORSOrigins...)
	defer teardown()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	router.AttachRoutes(router.Routes{
		Controller: v1.Controller{
			Engine:    ledger.NewEngine(ledger.NewDBStore(models.DB), cfg.RecentTransactions),
			Cache:     summaryCache,
			Publisher: publisher,
			Currency:  cfg.Currency,
		},
		Verifier:    auth.NewVerifier(cfg.JWTSecret),
		EnablePprof: cfg.EnablePprof,
	}, r.Group(cfg.APIURL.Path))

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.ListenAddr).Msg("backend startup complete")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msg(err.Error())
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
}

// newCache returns the summary cache configured by the backend setting and
// a function that releases it.
func newCache(ctx context.Context, cfg *config.Config) (cache.Cache, func()) {
	switch cfg.CacheBackend {
	case "redis":
		c, err := cache.NewRedis(ctx, cfg.RedisAddr, cfg.CacheTTL)
		if err != nil {
			log.Fatal().Str("addr", cfg.RedisAddr).Msg(err.Error())
		}

		return c, func() {
			if err := c.Close(); err != nil {
				log.Error().Err(err).Msg("closing redis")
			}
		}
	case "memory":
		return cache.NewLRU(cfg.CacheSize, cfg.CacheTTL), func() {}
	default:
		return cache.Nop{}, func() {}
	}
}

// newPublisher returns an AMQP publisher if a broker is configured.
// Otherwise, activities are only logged.
func newPublisher(cfg *config.Config) events.Publisher {
	if cfg.AMQPURL == "" {
		return events.Log{Logger: log.Logger}
	}

	p, err := events.NewAMQP(cfg.AMQPURL, cfg.AMQPExchange)
	if err != nil {
		log.Fatal().Str("exchange", cfg.AMQPExchange).Msg(err.Error())
	}

	return p
}
