// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassificator maps a driver error onto an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// ErrorClassification is the result type returned by
// [ErrorClassificator.Classify]. It tells the repository which store
// sentinel, if any, a failed operation should be reported as.
type ErrorClassification int

const (
	// Unclassified errors are reported only with the operation sentinel.
	Unclassified ErrorClassification = iota

	// InvalidInput means PostgreSQL rejected a value supplied by the caller.
	InvalidInput

	// Conflict means a uniqueness constraint was violated.
	Conflict

	// Unavailable means the server could not be reached or refused the
	// connection.
	Unavailable
)

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. Errors that are neither a
// *pgconn.PgError nor a *pgconn.ConnectError are [Unclassified].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return Unclassified
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return Unavailable
	}

	return Unclassified
}

// ClassifyPgError maps a *pgconn.PgError to an [ErrorClassification] based on
// the PostgreSQL error code.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html for the
// full list of PostgreSQL error codes.
//
//   - Class 22 (data exceptions), not-null and check violations, and XX000
//     raised by PostGIS while parsing GeoJSON → [InvalidInput]. Any other
//     XX000 stays [Unclassified].
//   - 23505 unique_violation → [Conflict]
//   - Class 08 (connection exceptions) and Class 57 (operator
//     intervention) → [Unavailable]
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	code := pgErr.Code

	switch {
	case pgerrcode.IsDataException(code):
		return InvalidInput
	case pgerrcode.IsConnectionException(code), pgerrcode.IsOperatorIntervention(code):
		return Unavailable
	}

	switch code {
	case pgerrcode.NotNullViolation, pgerrcode.CheckViolation:
		return InvalidInput

	case pgerrcode.InternalError:
		if isGeoJSONParseError(pgErr) {
			return InvalidInput
		}

	case pgerrcode.UniqueViolation:
		return Conflict
	}

	return Unclassified
}

// isGeoJSONParseError reports whether an XX000 came from ST_GeomFromGeoJSON.
// PostGIS names the format in every parse message ("unknown GeoJSON type",
// "invalid GeoJson representation", "Unable to find 'coordinates' in GeoJSON
// string").
func isGeoJSONParseError(pgErr *pgconn.PgError) bool {
	return strings.Contains(strings.ToLower(pgErr.Message), "geojson")
}

// wrapError attaches the operation sentinel op and, when the classifier
// recognises err, the matching store sentinel.
func (db *DB) wrapError(op, err error) error {
	switch db.errorClassificator.Classify(err) {
	case InvalidInput:
		return fmt.Errorf("%w: %w: %w", op, ErrInvalidCustomerData, err)
	case Conflict:
		return fmt.Errorf("%w: %w: %w", op, ErrCustomerConflict, err)
	case Unavailable:
		return fmt.Errorf("%w: %w: %w", op, ErrStorageUnavailable, err)
	}

	return fmt.Errorf("%w: %w", op, err)
}
