// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/myj-nikhil/earthlings-db-api/internal/config"
	"github.com/myj-nikhil/earthlings-db-api/internal/handler/grpc"
	"github.com/myj-nikhil/earthlings-db-api/internal/handler/http"
	"github.com/myj-nikhil/earthlings-db-api/internal/logger"
	"github.com/myj-nikhil/earthlings-db-api/internal/service"
)

// Handlers holds the transport handlers enabled by the server
// configuration. A nil field means that transport is switched off.
type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
