// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"

	"github.com/myj-nikhil/earthlings-db-api/internal/logger"
	"github.com/myj-nikhil/earthlings-db-api/internal/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// CustomerDataService is the service name reported by the health endpoint
// next to the overall ("") status.
const CustomerDataService = "earthlings.CustomerData"

// Handler is the root gRPC transport handler.
//
// It serves grpc.health.v1.Health. The reported status follows the storage
// readiness probe of the service layer.
type Handler struct {
	// services provides access to the readiness probe.
	services *service.Services

	health *health.Server

	// logger is used for request-scoped and diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler]. Every service starts as NOT_SERVING
// until [Handler.RefreshHealth] succeeds.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	h := &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)

	return h
}

// Register attaches the health service to server.
func (h *Handler) Register(server *grpc.Server) {
	healthpb.RegisterHealthServer(server, h.health)
}

// RefreshHealth probes storage and publishes SERVING or NOT_SERVING.
func (h *Handler) RefreshHealth(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	status := healthpb.HealthCheckResponse_SERVING
	if h.services == nil || h.services.HealthService == nil {
		status = healthpb.HealthCheckResponse_NOT_SERVING
	} else if err := h.services.HealthService.Check(ctx); err != nil {
		h.logger.Err(err).Str("func", "*Handler.RefreshHealth").Msg("storage is not ready")
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}

	h.setStatus(status)
	return status
}

// Shutdown reports NOT_SERVING for every service and ignores later updates.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(CustomerDataService, status)
}
