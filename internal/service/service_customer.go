// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/myj-nikhil/earthlings-db-api/internal/logger"
	"github.com/myj-nikhil/earthlings-db-api/internal/store"
	"github.com/myj-nikhil/earthlings-db-api/models"
)

type customerService struct {
	customerRepository store.CustomerRepository

	logger *logger.Logger
}

func NewCustomerService(customerRepository store.CustomerRepository, logger *logger.Logger) CustomerService {
	return &customerService{
		customerRepository: customerRepository,
		logger:             logger,
	}
}

func (c *customerService) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	return c.customerRepository.ListCustomers(ctx)
}

func (c *customerService) ListAuth0Identifiers(ctx context.Context) ([]models.Auth0Identifier, error) {
	return c.customerRepository.ListAuth0Identifiers(ctx)
}

func (c *customerService) GetCustomerByID(ctx context.Context, id int64) ([]models.Customer, error) {
	customers, err := c.customerRepository.GetCustomerByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(customers) == 0 {
		return nil, fmt.Errorf("%w: id %d", ErrCustomerNotFound, id)
	}

	return customers, nil
}

func (c *customerService) GetCustomerByAuth0ID(ctx context.Context, auth0ID string) ([]models.Customer, error) {
	customers, err := c.customerRepository.GetCustomerByAuth0ID(ctx, auth0ID)
	if err != nil {
		return nil, err
	}
	if len(customers) == 0 {
		return nil, fmt.Errorf("%w: auth0_id %q", ErrCustomerNotFound, auth0ID)
	}

	return customers, nil
}

// ListFeatureCollection returns features in id order. Customers without a
// geometry are skipped.
func (c *customerService) ListFeatureCollection(ctx context.Context) (models.FeatureCollection, error) {
	geometries, err := c.customerRepository.ListGeometries(ctx)
	if err != nil {
		return models.FeatureCollection{}, err
	}

	return models.NewFeatureCollection(geometries), nil
}

func (c *customerService) CreateCustomer(ctx context.Context, in models.CustomerInput) (int64, error) {
	id, err := c.customerRepository.CreateCustomer(ctx, in)
	if err != nil {
		return 0, err
	}

	logger.FromContext(ctx).Info().Str("func", "customerService.CreateCustomer").Int64("id", id).Msg("customer created")
	return id, nil
}

func (c *customerService) UpdateCustomer(ctx context.Context, id int64, in models.CustomerInput) error {
	affected, err := c.customerRepository.UpdateCustomer(ctx, id, in)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: id %d", ErrCustomerNotFound, id)
	}

	return nil
}

func (c *customerService) DeleteCustomer(ctx context.Context, id int64) error {
	affected, err := c.customerRepository.DeleteCustomer(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: id %d", ErrCustomerNotFound, id)
	}

	logger.FromContext(ctx).Info().Str("func", "customerService.DeleteCustomer").Int64("id", id).Msg("customer deleted")
	return nil
}
