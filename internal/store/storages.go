// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/myj-nikhil/earthlings-db-api/internal/config"
	"github.com/myj-nikhil/earthlings-db-api/internal/logger"
)

// Storages groups the server-side repositories into a single value that is
// handed to the service layer.
type Storages struct {
	// CustomerRepository is the PostgreSQL-backed customer_data repository.
	CustomerRepository CustomerRepository

	// HealthChecker reports database reachability for readiness probes.
	HealthChecker HealthChecker

	db *DB
}

// NewStorages connects to PostgreSQL using cfg.DB and wires the
// repositories to the resulting pool.
//
// Returns an error if the connection settings are invalid or the initial
// ping fails.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to postgres: %w", err)
	}

	return &Storages{
		CustomerRepository: NewCustomerRepository(db, log),
		HealthChecker:      db,
		db:                 db,
	}, nil
}

// Close releases the connection pool.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
