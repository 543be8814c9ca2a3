package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/joho/godotenv"

	"snack-insights-go/internal/config"
	"snack-insights-go/internal/dataset"
	"snack-insights-go/internal/logger"
	"snack-insights-go/internal/pipeline"
	"snack-insights-go/internal/server"
)

func main() {
	_ = godotenv.Load() // loads .env

	log := logger.New()
	log.WithField("service", "snack-insights-go").Info("starting service")

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}

	// optionally fetch the dataset before loading it
	if cfg.DatasetURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		if err := dataset.Fetch(ctx, cfg.DatasetURL, cfg.DatasetPath); err != nil {
			cancel()
			log.WithError(err).Fatal("failed to fetch dataset")
		}
		cancel()
	}

	log.WithField("dataset_path", cfg.DatasetPath).Info("loading dataset")
	raws, err := dataset.Load(cfg.DatasetPath)
	if err != nil {
		log.WithError(err).Fatal("failed to load dataset")
	}

	res := pipeline.Run(raws, cfg)
	log.WithField("total_products", len(res.Products)).
		WithField("ranked_brands", len(res.Brands)).
		Info("analysis snapshot ready")

	addr := fmt.Sprintf(":%s", cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      server.Handler(res),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	log.WithField("addr", addr).Info("listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.WithError(err).Fatal("server terminated")
	}
}
