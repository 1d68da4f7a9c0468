// Package server boots the application: configuration, logging, database,
// cache, storage, migrations, seed data, and the HTTP server itself.
package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gorm.io/gorm"

	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/app/routes"
	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/app/services"
	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/config"
	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/database/migrations"
	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/database/seeders"
	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/pkg/cache"
	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/pkg/database"
	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/pkg/logger"
	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/pkg/metrics"
	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/pkg/middleware"
	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/pkg/migration"
	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/pkg/reqid"
	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/pkg/router"
	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/pkg/storage"
)

const shutdownTimeout = 10 * time.Second

// Start boots every subsystem and serves HTTP until SIGINT/SIGTERM.
func Start() error {
	if err := config.Load(); err != nil {
		return err
	}

	flush, err := logger.AttachMongo()
	if err != nil {
		logger.Warn("server: mongo log sink disabled", "error", err)
	} else if flush != nil {
		defer flush()
	}

	db, err := database.Open()
	if err != nil {
		return err
	}
	defer database.Close(db)

	if err := cache.Connect(); err != nil {
		logger.Warn("server: cache unavailable, continuing without it", "error", err)
	}
	storage.Connect()
	services.RegisterEventListeners()

	migrations.RegisterAll()
	if err := migration.New(db).Run(); err != nil {
		return err
	}
	if err := seeders.Run(db); err != nil {
		return err
	}

	handler := buildHandler(db)

	addr := ":" + config.AppPort()
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server: listening", "addr", addr, "env", config.AppEnv())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		logger.Info("server: shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(ctx)
}

// buildHandler assembles the middleware stack and mounts the routes.
//
// Stack order (outermost first):
//  1. Prometheus metrics — outermost for accurate total latency
//  2. Recovery           — catches panics before they kill the goroutine
//  3. Request ID         — inject unique ID before anything logs
//  4. Logger             — logs request_id from context
//  5. CORS               — set CORS headers
//  6. Rate limiter       — reject abusers early
func buildHandler(db *gorm.DB) http.Handler {
	r := router.New()

	r.Use(metrics.Middleware())
	r.Use(middleware.Recovery)
	r.Use(reqid.Middleware())
	r.Use(middleware.Logger)
	r.Use(middleware.CORS(middleware.DefaultCORSOptions()))
	r.Use(middleware.RateLimit(200, time.Minute))

	routes.RegisterAPI(r, db)
	return r.Handler()
}

// Routes returns the registered route table for the route:list command.
func Routes(db *gorm.DB) []router.RouteInfo {
	r := router.New()
	routes.RegisterAPI(r, db)
	return r.Routes()
}
