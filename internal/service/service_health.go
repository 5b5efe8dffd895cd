// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/myj-nikhil/earthlings-db-api/internal/logger"
	"github.com/myj-nikhil/earthlings-db-api/internal/store"
)

type healthService struct {
	checker store.HealthChecker

	logger *logger.Logger
}

func NewHealthService(checker store.HealthChecker, logger *logger.Logger) HealthService {
	return &healthService{checker: checker, logger: logger}
}

func (h *healthService) Check(ctx context.Context) error {
	if h.checker == nil {
		return ErrStorageIsNotInitialized
	}
	if err := h.checker.Ping(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "healthService.Check").Msg("storage health check failed")
		return err
	}
	return nil
}
