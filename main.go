package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"opportunity-engine/internal/config"
	"opportunity-engine/internal/handler"
	"opportunity-engine/internal/logger"
	"opportunity-engine/internal/rates"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New("error", "json").Fatal("load config", zap.Error(err))
	}

	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer log.Sync()

	resolver := rates.NewResolver(cfg.RateRegistryURL, cfg.RateRegistryTimeout, log.Named("rates"))
	h := handler.New(cfg, resolver, log.Named("http"))

	srv := &fasthttp.Server{
		Handler:            h.Handle,
		Name:               "opportunity-engine",
		MaxRequestBodySize: 1 << 20,
	}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down")
		if err := srv.Shutdown(); err != nil {
			log.Error("shutdown", zap.Error(err))
		}
	}()

	log.Info("opportunity engine starting",
		zap.String("port", cfg.Port),
		zap.Int("max_years", cfg.MaxYears),
		zap.Bool("rate_registry", cfg.RateRegistryURL != ""))
	if err := srv.ListenAndServe(":" + cfg.Port); err != nil {
		log.Fatal("server failed", zap.Error(err))
	}
}
