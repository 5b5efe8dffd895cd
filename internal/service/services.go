// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/myj-nikhil/earthlings-db-api/internal/adapter"
	"github.com/myj-nikhil/earthlings-db-api/internal/config"
	"github.com/myj-nikhil/earthlings-db-api/internal/logger"
	"github.com/myj-nikhil/earthlings-db-api/internal/store"
)

type Services struct {
	CustomerService  CustomerService
	IdentityService  IdentityService
	MediaAuthService MediaAuthService
	AppInfoService   AppInfoService
	HealthService    HealthService
}

func NewServices(storages *store.Storages, provider adapter.IdentityProvider, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	if storages == nil {
		return nil, ErrStorageIsNotInitialized
	}

	mediaAuthService, err := NewMediaAuthService(cfg.Media, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating media auth service: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		CustomerService:  NewCustomerService(storages.CustomerRepository, logger),
		IdentityService:  NewIdentityService(provider, logger),
		MediaAuthService: mediaAuthService,
		AppInfoService:   appInfoService,
		HealthService:    NewHealthService(storages.HealthChecker, logger),
	}, nil
}
