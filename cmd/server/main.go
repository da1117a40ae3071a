package main

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/xtding233/gridiron-sim/internal/config"
	"github.com/xtding233/gridiron-sim/internal/logging"
)

type envConfig struct {
	Port           int           `env:"PORT" envDefault:"8080"`
	HealthPort     int           `env:"HEALTH_PORT" envDefault:"8081"`
	ConfigDir      string        `env:"CONFIG_DIR" envDefault:"configs"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat      string        `env:"LOG_FORMAT" envDefault:"json"`
	SlateWorkers   int           `env:"SLATE_WORKERS" envDefault:"0"`
	ReloadInterval time.Duration `env:"RELOAD_INTERVAL" envDefault:"5s"`
	CORSOrigins    []string      `env:"CORS_ORIGINS" envSeparator:"," envDefault:"*"`
}

func loadEnv() (envConfig, error) {
	var cfg envConfig
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func main() {
	cfg, err := loadEnv()
	if err != nil {
		stdlog.Fatal(err)
	}
	log := logging.New(cfg.LogLevel, cfg.LogFormat)

	loader := config.NewLoader(cfg.ConfigDir)
	hs := health.NewServer()
	srv := newServer(loader, log, cfg.SlateWorkers, hs)
	if err := srv.checkPresets(); err != nil {
		log.WithField("dir", cfg.ConfigDir).Warn("starting with unusable presets")
	}

	watcher := config.NewFileWatcher(loader.WatchPaths, cfg.ReloadInterval, func(path string) {
		log.WithField("path", path).Info("preset changed")
		srv.reload()
	})
	watcher.Start()
	defer watcher.Stop()

	grpcServer := grpc.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.HealthPort))
	if err != nil {
		log.WithError(err).Fatal("listen health port")
	}
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			log.WithError(err).Error("health server stopped")
		}
	}()

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      srv.routes(cfg.CORSOrigins),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 2 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		log.WithField("addr", httpServer.Addr).Info("listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("http server")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("http shutdown")
	}
	hs.Shutdown()
	grpcServer.GracefulStop()
}
