// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"

	"github.com/myj-nikhil/earthlings-db-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// CustomerRepository is the data access layer over the customer_data table.
//
// Get methods return a slice that is empty when nothing matched. Update and
// Delete report the number of affected rows; zero means no record had the
// given id.
type CustomerRepository interface {
	ListCustomers(ctx context.Context) ([]models.Customer, error)
	ListAuth0Identifiers(ctx context.Context) ([]models.Auth0Identifier, error)
	GetCustomerByID(ctx context.Context, id int64) ([]models.Customer, error)
	GetCustomerByAuth0ID(ctx context.Context, auth0ID string) ([]models.Customer, error)
	ListGeometries(ctx context.Context) ([]json.RawMessage, error)
	CreateCustomer(ctx context.Context, in models.CustomerInput) (int64, error)
	UpdateCustomer(ctx context.Context, id int64, in models.CustomerInput) (int64, error)
	DeleteCustomer(ctx context.Context, id int64) (int64, error)
}

// HealthChecker reports whether the backing database is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}
