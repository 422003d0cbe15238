// Package store persists score records keyed on their deterministic id.
package store

import (
	"context"
	"errors"

	"github.com/punchamoorthee/receiptpoints/internal/models"
)

// ErrNotFound is returned by GetPoints when no record exists for the id.
var ErrNotFound = errors.New("score record not found")

// ScoreStore is the key/value persistence capability handed to the
// request handlers. Put is an idempotent upsert: re-submitting the same
// payload writes a byte-identical record under the same key.
type ScoreStore interface {
	Put(ctx context.Context, rec models.ScoreRecord) error
	GetPoints(ctx context.Context, id string) (int64, error)
	Close() error
}
