// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrInvalidCustomerData is returned when PostgreSQL rejects a value that
	// was supplied by the caller: an out-of-range number, a string that is
	// too long, or a geometry that ST_GeomFromGeoJSON cannot parse.
	ErrInvalidCustomerData = errors.New("invalid customer data")

	// ErrCustomerConflict is returned when a write violates a uniqueness
	// constraint of the customer_data table.
	ErrCustomerConflict = errors.New("customer conflicts with an existing record")

	// ErrStorageUnavailable is returned when the database cannot be reached.
	ErrStorageUnavailable = errors.New("storage is unavailable")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or an
	// INSERT ... RETURNING query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan customer row")

	// ErrScanningRows is returned when iterating a multi-row result set
	// fails mid-way.
	ErrScanningRows = errors.New("failed to scan customer rows")

	// ErrReadingRowsAffected is returned when the driver cannot report how
	// many rows a statement touched.
	ErrReadingRowsAffected = errors.New("failed to read rows affected")
)
