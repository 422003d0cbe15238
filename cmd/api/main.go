package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/punchamoorthee/receiptpoints/internal/api"
	"github.com/punchamoorthee/receiptpoints/internal/config"
	"github.com/punchamoorthee/receiptpoints/internal/points"
	"github.com/punchamoorthee/receiptpoints/internal/service"
	"github.com/punchamoorthee/receiptpoints/internal/store"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	scoreStore, err := openStore(cfg)
	if err != nil {
		slog.Error("Failed to open score store", "driver", cfg.Store, "error", err)
		os.Exit(1)
	}
	defer scoreStore.Close()

	// Initialize Layers
	engine := &points.Engine{LargeTotalBonus: cfg.LargeTotalBonus}
	svc := service.NewReceiptService(scoreStore, engine)
	handler := api.NewHandler(svc)
	router := api.NewRouter(handler)

	slog.Info("Server starting", "addr", cfg.Addr, "store", cfg.Store, "large_total_bonus", cfg.LargeTotalBonus)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		slog.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}

func openStore(cfg *config.Config) (store.ScoreStore, error) {
	switch cfg.Store {
	case config.StoreBolt:
		return store.NewBoltStore(cfg.BoltPath)
	case config.StorePostgres:
		pg, err := store.NewPostgresStore(cfg.DBSource)
		if err != nil {
			return nil, err
		}
		if err := pg.EnsureSchema(context.Background()); err != nil {
			pg.Close()
			return nil, err
		}
		return pg, nil
	default:
		return store.NewMemoryStore(), nil
	}
}
