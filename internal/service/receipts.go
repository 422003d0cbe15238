package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/punchamoorthee/receiptpoints/internal/identity"
	"github.com/punchamoorthee/receiptpoints/internal/models"
	"github.com/punchamoorthee/receiptpoints/internal/points"
	"github.com/punchamoorthee/receiptpoints/internal/store"
)

// ErrInvalidReceipt marks payloads rejected before scoring.
var ErrInvalidReceipt = errors.New("invalid receipt")

// ReceiptService ties the two pure core functions to the injected store.
type ReceiptService struct {
	store  store.ScoreStore
	engine *points.Engine
}

func NewReceiptService(s store.ScoreStore, e *points.Engine) *ReceiptService {
	return &ReceiptService{store: s, engine: e}
}

// Process validates a raw submission, derives its deterministic id, scores
// it and persists the resulting record. The id and points are pure
// functions of the payload bytes, so byte-identical re-submissions produce
// the same id and an identical record.
func (s *ReceiptService) Process(ctx context.Context, payload []byte) (string, error) {
	receipt, err := models.ParseReceipt(payload)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidReceipt, err)
	}

	id := identity.NewID(payload)
	pts := s.engine.Calculate(receipt)

	rec := models.ScoreRecord{ID: id, Points: pts, Receipt: payload}
	if err := s.store.Put(ctx, rec); err != nil {
		return "", fmt.Errorf("storing score record: %w", err)
	}

	slog.Info("receipt processed", "id", id, "points", pts)
	return id, nil
}

// Points looks up the stored score for an id. Returns store.ErrNotFound
// for unknown ids.
func (s *ReceiptService) Points(ctx context.Context, id string) (int64, error) {
	return s.store.GetPoints(ctx, id)
}
