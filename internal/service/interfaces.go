// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"

	"github.com/myj-nikhil/earthlings-db-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// CustomerService exposes the customer_data table to the transport layer
// and adds not-found semantics on top of the repository.
type CustomerService interface {
	ListCustomers(ctx context.Context) ([]models.Customer, error)
	ListAuth0Identifiers(ctx context.Context) ([]models.Auth0Identifier, error)

	// GetCustomerByID and GetCustomerByAuth0ID return ErrCustomerNotFound
	// instead of an empty slice.
	GetCustomerByID(ctx context.Context, id int64) ([]models.Customer, error)
	GetCustomerByAuth0ID(ctx context.Context, auth0ID string) ([]models.Customer, error)

	// ListFeatureCollection aggregates every stored geometry.
	ListFeatureCollection(ctx context.Context) (models.FeatureCollection, error)

	CreateCustomer(ctx context.Context, in models.CustomerInput) (int64, error)

	// UpdateCustomer and DeleteCustomer return ErrCustomerNotFound when no
	// row had the given id.
	UpdateCustomer(ctx context.Context, id int64, in models.CustomerInput) error
	DeleteCustomer(ctx context.Context, id int64) error
}

// IdentityService forwards user profile updates to the identity provider.
type IdentityService interface {
	UpdateUser(ctx context.Context, update models.IdentityUserUpdate) (json.RawMessage, error)
}

// MediaAuthService issues signed parameters for client-side media uploads.
type MediaAuthService interface {
	GetUploadAuthParams(ctx context.Context) (models.UploadAuthParams, error)
}

// AppInfoService describes the running application.
type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.AppInfo
}

// HealthService reports whether the application's dependencies are usable.
type HealthService interface {
	Check(ctx context.Context) error
}

// TokenGenerator produces random one-time tokens.
type TokenGenerator interface {
	Generate() string
}
