// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/myj-nikhil/earthlings-db-api/internal/logger"
	"github.com/myj-nikhil/earthlings-db-api/models"
)

// customerRepository is the PostgreSQL-backed implementation of
// [CustomerRepository]. It runs squirrel-built statements against the
// customer_data table through the embedded [*DB] connection.
//
// Every method obtains a context-scoped logger via [logger.FromContext] so
// that database failures are logged with the request trace id.
type customerRepository struct {
	*DB
	logger *logger.Logger
}

// NewCustomerRepository constructs a [CustomerRepository] backed by the
// provided database connection and logger.
func NewCustomerRepository(db *DB, logger *logger.Logger) CustomerRepository {
	logger.Debug().Msg("creating customer repository")
	return &customerRepository{
		DB:     db,
		logger: logger,
	}
}

// ListCustomers returns every customer ordered by id ascending.
func (r *customerRepository) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	query, args, err := buildListCustomersQuery()
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "customerRepository.ListCustomers").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryCustomers(ctx, "customerRepository.ListCustomers", query, args...)
}

// ListAuth0Identifiers returns the auth0_id of every customer ordered by id,
// including customers without one.
func (r *customerRepository) ListAuth0Identifiers(ctx context.Context) ([]models.Auth0Identifier, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListAuth0IdentifiersQuery()
	if err != nil {
		log.Err(err).Str("func", "customerRepository.ListAuth0Identifiers").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "customerRepository.ListAuth0Identifiers").Msg("failed to execute query for listing auth0 ids")
		return nil, r.wrapError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	ids := make([]models.Auth0Identifier, 0)
	for rows.Next() {
		var auth0ID sql.NullString
		if scanErr := rows.Scan(&auth0ID); scanErr != nil {
			log.Err(scanErr).Str("func", "customerRepository.ListAuth0Identifiers").Msg("failed to scan auth0 id row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		ids = append(ids, models.Auth0Identifier{Auth0ID: stringPtr(auth0ID)})
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "customerRepository.ListAuth0Identifiers").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return ids, nil
}

// GetCustomerByID returns the customer with the given id as a slice with
// zero or one element.
func (r *customerRepository) GetCustomerByID(ctx context.Context, id int64) ([]models.Customer, error) {
	query, args, err := buildGetCustomerByIDQuery(id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "customerRepository.GetCustomerByID").Int64("id", id).Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryCustomers(ctx, "customerRepository.GetCustomerByID", query, args...)
}

// GetCustomerByAuth0ID returns every customer whose auth0_id equals auth0ID.
func (r *customerRepository) GetCustomerByAuth0ID(ctx context.Context, auth0ID string) ([]models.Customer, error) {
	query, args, err := buildGetCustomerByAuth0IDQuery(auth0ID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "customerRepository.GetCustomerByAuth0ID").Str("auth0_id", auth0ID).Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryCustomers(ctx, "customerRepository.GetCustomerByAuth0ID", query, args...)
}

// ListGeometries returns the GeoJSON text of every non-null geometry in id
// order.
func (r *customerRepository) ListGeometries(ctx context.Context) ([]json.RawMessage, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListGeometriesQuery()
	if err != nil {
		log.Err(err).Str("func", "customerRepository.ListGeometries").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "customerRepository.ListGeometries").Msg("failed to execute query for listing geometries")
		return nil, r.wrapError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	geometries := make([]json.RawMessage, 0)
	for rows.Next() {
		var geom []byte
		if scanErr := rows.Scan(&geom); scanErr != nil {
			log.Err(scanErr).Str("func", "customerRepository.ListGeometries").Msg("failed to scan geometry row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		if geom == nil {
			continue
		}
		geometries = append(geometries, json.RawMessage(geom))
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "customerRepository.ListGeometries").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return geometries, nil
}

// CreateCustomer inserts a new customer and returns the id assigned by the
// database.
func (r *customerRepository) CreateCustomer(ctx context.Context, in models.CustomerInput) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateCustomerQuery(in)
	if err != nil {
		log.Err(err).Str("func", "customerRepository.CreateCustomer").Msg("failed to build query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id int64
	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		log.Err(err).Str("func", "customerRepository.CreateCustomer").Msg("failed to insert customer")
		return 0, r.wrapError(ErrExecutingQuery, err)
	}

	log.Debug().Str("func", "customerRepository.CreateCustomer").Int64("id", id).Msg("customer inserted")
	return id, nil
}

// UpdateCustomer replaces name, phone and geometry of the customer with the
// given id and returns the number of affected rows.
func (r *customerRepository) UpdateCustomer(ctx context.Context, id int64, in models.CustomerInput) (int64, error) {
	query, args, err := buildUpdateCustomerQuery(id, in)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "customerRepository.UpdateCustomer").Int64("id", id).Msg("failed to build query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.exec(ctx, "customerRepository.UpdateCustomer", id, query, args...)
}

// DeleteCustomer removes the customer with the given id and returns the
// number of affected rows.
func (r *customerRepository) DeleteCustomer(ctx context.Context, id int64) (int64, error) {
	query, args, err := buildDeleteCustomerQuery(id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "customerRepository.DeleteCustomer").Int64("id", id).Msg("failed to build query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.exec(ctx, "customerRepository.DeleteCustomer", id, query, args...)
}

func (r *customerRepository) queryCustomers(ctx context.Context, funcName, query string, args ...any) ([]models.Customer, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute query for customers")
		return nil, r.wrapError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	customers := make([]models.Customer, 0)
	for rows.Next() {
		var (
			c       models.Customer
			name    sql.NullString
			phone   sql.NullString
			geom    []byte
			auth0ID sql.NullString
		)

		if scanErr := rows.Scan(&c.ID, &name, &phone, &geom, &auth0ID); scanErr != nil {
			log.Err(scanErr).Str("func", funcName).Msg("failed to scan customer row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		c.Name = stringPtr(name)
		c.Phone = stringPtr(phone)
		c.Auth0ID = stringPtr(auth0ID)
		if geom != nil {
			c.GeoJSON = json.RawMessage(geom)
		}

		customers = append(customers, c)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", funcName).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return customers, nil
}

func (r *customerRepository) exec(ctx context.Context, funcName string, id int64, query string, args ...any) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Int64("id", id).Msg("failed to execute statement")
		return 0, r.wrapError(ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", funcName).Int64("id", id).Msg("failed to read rows affected")
		return 0, fmt.Errorf("%w: %w", ErrReadingRowsAffected, err)
	}

	return affected, nil
}

func stringPtr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}
