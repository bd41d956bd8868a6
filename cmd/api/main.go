package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pet-adoption-shelter/internal/adapters/auth/jwtauth"
	"pet-adoption-shelter/internal/adapters/storage/postgres"
	"pet-adoption-shelter/internal/config"
	"pet-adoption-shelter/internal/platform/audit"
	"pet-adoption-shelter/internal/platform/logger"
	"pet-adoption-shelter/internal/router"
)

// @title                       Refugio de mascotas API
// @version                     1.0
// @description                 API del refugio: animales, historial médico, tareas de voluntariado y solicitudes de adopción.
// @BasePath                    /api
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Bearer <token>
func main() {
	if err := run(); err != nil {
		logger.NewFromEnv().Error("server error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.Log.App,
	})

	// Auditoría de accesos: archivo append-only o stdout.
	var auditOut io.Writer = os.Stdout
	if cfg.Audit.Path != "" {
		f, err := audit.OpenFile(cfg.Audit.Path)
		if err != nil {
			return err
		}
		defer f.Close()
		auditOut = f
	}

	jwt, err := jwtauth.NewManager(cfg.JWT.Secret, cfg.JWT.TTL())
	if err != nil {
		return err
	}

	opts := router.Options{
		Logger:                    log,
		Verifier:                  jwt,
		Issuer:                    jwt,
		Audit:                     audit.NewWriterRecorder(auditOut),
		LoginRateLimit:            cfg.Login.RateLimit,
		LoginRateWindow:           cfg.Login.RateWindow,
		EnforceRequestTransitions: cfg.Requests.EnforceTransitions,
		CORSAllowedOrigins:        cfg.CORS.AllowedOrigins,
		TrustedProxies:            cfg.HTTP.TrustedProxies,
	}
	if cfg.Admin.Enabled() {
		opts.Admin = router.AdminSeed{
			Nombre:   cfg.Admin.Nombre,
			Correo:   cfg.Admin.Correo,
			Password: cfg.Admin.Password,
		}
	}

	if cfg.DB.DSN != "" {
		db, err := postgres.Open(cfg.DB.DSN, postgres.PoolOptions{
			MaxOpenConns: cfg.DB.MaxOpenConns,
			MaxIdleConns: cfg.DB.MaxIdleConns,
		})
		if err != nil {
			return err
		}
		defer db.Close()

		if cfg.DB.AutoMigrate {
			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			err := postgres.Migrate(ctx, db, log)
			cancel()
			if err != nil {
				return err
			}
		}
		opts.DB = db
	}

	h, err := router.NewRouter(opts)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         cfg.HTTP.Addr(),
		Handler:      h,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr, "postgres": opts.DB != nil})
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

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
