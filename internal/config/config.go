package config

import (
	"fmt"

	"github.com/peterbourgon/ff/v4"
)

const (
	StoreMemory   = "memory"
	StoreBolt     = "bolt"
	StorePostgres = "postgres"
)

type Config struct {
	Addr            string
	Store           string
	BoltPath        string
	DBSource        string
	LargeTotalBonus bool
}

// Load parses flags with RECEIPTPOINTS_* environment variable fallback.
func Load(args []string) (*Config, error) {
	fs := ff.NewFlagSet("receiptpoints")
	var (
		addr      = fs.StringLong("addr", ":8080", "HTTP listen address")
		storeKind = fs.StringLong("store", StoreMemory, "Score store driver: 'memory', 'bolt' or 'postgres'")
		boltPath  = fs.StringLong("bolt-path", "receiptpoints.db", "bbolt database file path")
		dbSource  = fs.StringLong("db-source", "", "PostgreSQL DSN (required when --store=postgres)")
		bonus     = fs.BoolLong("large-total-bonus", "Award 5 bonus points when the receipt total exceeds 10.00")
	)

	if err := ff.Parse(fs, args,
		ff.WithEnvVarPrefix("RECEIPTPOINTS"),
	); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}

	switch *storeKind {
	case StoreMemory, StoreBolt:
	case StorePostgres:
		if *dbSource == "" {
			return nil, fmt.Errorf("--db-source is required when --store=postgres")
		}
	default:
		return nil, fmt.Errorf("unknown store driver %q", *storeKind)
	}

	return &Config{
		Addr:            *addr,
		Store:           *storeKind,
		BoltPath:        *boltPath,
		DBSource:        *dbSource,
		LargeTotalBonus: *bonus,
	}, nil
}
