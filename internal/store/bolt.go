package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/punchamoorthee/receiptpoints/internal/models"
)

const scoreBucket = "score_records"

// BoltStore is an embedded single-file ScoreStore backed by bbolt.
type BoltStore struct {
	db *bbolt.DB
}

func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening bolt database: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(scoreBucket))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating score bucket: %w", err)
	}

	return &BoltStore{db: db}, nil
}

func (b *BoltStore) Put(_ context.Context, rec models.ScoreRecord) error {
	return b.db.Update(func(tx *bbolt.Tx) error {
		data, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("marshaling score record: %w", err)
		}
		return tx.Bucket([]byte(scoreBucket)).Put([]byte(rec.ID), data)
	})
}

func (b *BoltStore) GetPoints(_ context.Context, id string) (int64, error) {
	var points int64
	err := b.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket([]byte(scoreBucket)).Get([]byte(id))
		if data == nil {
			return ErrNotFound
		}
		var rec models.ScoreRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			return fmt.Errorf("unmarshaling score record: %w", err)
		}
		points = rec.Points
		return nil
	})
	if err != nil {
		return 0, err
	}
	return points, nil
}

func (b *BoltStore) Close() error {
	return b.db.Close()
}
