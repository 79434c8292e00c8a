// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in the internal packages.
package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	authhandler "rosterhub/internal/auth/handler"
	authservice "rosterhub/internal/auth/service"
	sessionstore "rosterhub/internal/auth/store/session"
	userstore "rosterhub/internal/auth/store/user"
	invhandler "rosterhub/internal/inventory/handler"
	invservice "rosterhub/internal/inventory/service"
	invstore "rosterhub/internal/inventory/store"
	"rosterhub/internal/platform/config"
	"rosterhub/internal/platform/httpserver"
	"rosterhub/internal/platform/logger"
	"rosterhub/internal/platform/metrics"
	platformredis "rosterhub/internal/platform/redis"
	reqhandler "rosterhub/internal/requests/handler"
	reqservice "rosterhub/internal/requests/service"
	reqstore "rosterhub/internal/requests/store"
	rosterhandler "rosterhub/internal/roster/handler"
	rosterservice "rosterhub/internal/roster/service"
	rosterstore "rosterhub/internal/roster/store"
	"rosterhub/internal/storage/postgres"
	httptransport "rosterhub/internal/transport/http"
)

func main() {
	_ = godotenv.Load()

	cfg := config.FromEnv()
	log := logger.New()
	ctx := context.Background()

	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	healthChecks := make(map[string]func(ctx context.Context) error)

	var (
		users    userstore.Store
		items    invstore.Store
		roster   rosterstore.Store
		requests reqstore.Store
	)
	var db *sql.DB
	if cfg.DatabaseURL != "" {
		var err error
		db, err = postgres.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Error("postgres unavailable", "error", err.Error())
			os.Exit(1)
		}
		defer db.Close()
		if err := postgres.Migrate(ctx, db); err != nil {
			log.Error("migrations failed", "error", err.Error())
			os.Exit(1)
		}
		users = userstore.NewPostgres(db)
		items = invstore.NewPostgres(db)
		roster = rosterstore.NewPostgres(db)
		requests = reqstore.NewPostgres(db)
		healthChecks["postgres"] = db.PingContext
	} else {
		log.Warn("DATABASE_URL not set, using in-memory stores; data will not survive restart")
		users = userstore.NewInMemory()
		items = invstore.NewInMemory()
		roster = rosterstore.NewInMemory()
		requests = reqstore.NewInMemory()
	}

	var sessions sessionstore.Store
	redisClient, err := platformredis.New(cfg.RedisURL)
	if err != nil {
		log.Error("redis unavailable", "error", err.Error())
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
		sessions = sessionstore.NewRedis(redisClient.Client)
		healthChecks["redis"] = redisClient.Health
	} else {
		log.Warn("REDIS_URL not set, sessions are in-process only and will not survive restart")
		sessions = sessionstore.NewInMemory()
	}

	auth := authservice.New(users, sessions, cfg.SessionTTL, cfg.BcryptCost)

	router := httptransport.New(httptransport.Deps{
		Logger:   log,
		Metrics:  m,
		Gatherer: registry,
		Sessions: auth,
		Auth:     authhandler.New(auth, log, m),
		Protected: []httptransport.Registrar{
			invhandler.New(invservice.New(items), log, m),
			rosterhandler.New(rosterservice.New(roster), log, m),
			reqhandler.New(reqservice.New(requests), log, m),
		},
		HealthChecks: healthChecks,
	})

	srv := httpserver.New(cfg.Addr, router, cfg.WriteTimeout)

	log.Info("starting rosterhub", "addr", cfg.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err.Error())
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err.Error())
		os.Exit(1)
	}
}
