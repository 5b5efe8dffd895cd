// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"net/url"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/myj-nikhil/earthlings-db-api/internal/config"
	"github.com/myj-nikhil/earthlings-db-api/internal/logger"
)

// DB wraps the pooled *sql.DB together with the error classifier used by
// repositories to translate driver errors into store sentinels.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnectPostgres opens a connection pool to PostgreSQL through the pgx
// database/sql driver, applies the pool limits from cfg and pings the
// server once before returning.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	connConfig, err := buildConnConfig(cfg)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error parsing database connection settings")
		return nil, fmt.Errorf("error parsing database connection settings: %w", err)
	}

	if cfg.InsecureSkipVerify {
		log.Warn().Str("func", "NewConnectPostgres").
			Str("host", connConfig.Host).
			Msg("database server certificate verification is disabled")
	}

	conn := stdlib.OpenDB(*connConfig)

	conn.SetMaxOpenConns(cfg.MaxOpenConns)
	conn.SetMaxIdleConns(cfg.MaxIdleConns)
	conn.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	db := &DB{
		DB:                 conn,
		logger:             log,
		errorClassificator: NewPostgresErrorClassifier(),
	}

	if err = db.Ping(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").
		Str("host", connConfig.Host).
		Str("database", connConfig.Database).
		Msg("connected to database successfully")

	return db, nil
}

// Ping verifies that the database is reachable.
func (db *DB) Ping(ctx context.Context) error {
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	return nil
}

// connString returns cfg.DSN when present, otherwise a postgres:// URL
// assembled from the discrete fields.
func connString(cfg config.DB) string {
	if cfg.DSN != "" {
		return cfg.DSN
	}

	u := url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Path:   "/" + cfg.Database,
	}
	if cfg.User != "" {
		if cfg.Password != "" {
			u.User = url.UserPassword(cfg.User, cfg.Password)
		} else {
			u.User = url.User(cfg.User)
		}
	}
	if cfg.SSLMode != "" {
		u.RawQuery = url.Values{"sslmode": []string{cfg.SSLMode}}.Encode()
	}

	return u.String()
}

// buildConnConfig parses the connection settings with pgx. With
// InsecureSkipVerify every TLS attempt, including fallbacks, keeps
// encryption but stops verifying the server certificate.
func buildConnConfig(cfg config.DB) (*pgx.ConnConfig, error) {
	connConfig, err := pgx.ParseConfig(connString(cfg))
	if err != nil {
		return nil, err
	}

	if cfg.InsecureSkipVerify {
		if connConfig.TLSConfig != nil {
			connConfig.TLSConfig.InsecureSkipVerify = true
			connConfig.TLSConfig.VerifyPeerCertificate = nil
			connConfig.TLSConfig.VerifyConnection = nil
		}
		for _, fb := range connConfig.Fallbacks {
			if fb.TLSConfig != nil {
				fb.TLSConfig.InsecureSkipVerify = true
				fb.TLSConfig.VerifyPeerCertificate = nil
				fb.TLSConfig.VerifyConnection = nil
			}
		}
	}

	return connConfig, nil
}
