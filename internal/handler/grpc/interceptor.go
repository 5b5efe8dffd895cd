// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const traceIDMetadataKey = "x-trace-id"

// UnaryLoggingInterceptor attaches a trace-scoped logger to the call context
// and writes one access log entry per unary call.
func (h *Handler) UnaryLoggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	traceID := uuid.NewString()
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(traceIDMetadataKey); len(values) > 0 && values[0] != "" {
			traceID = values[0]
		}
	}

	log := h.logger.WithTraceID(traceID)
	ctx = log.WithContext(ctx)

	start := time.Now()
	resp, err := handler(ctx, req)

	log.Info().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Send()

	return resp, err
}
