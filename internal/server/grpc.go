// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/myj-nikhil/earthlings-db-api/internal/config"
	myGRPC "github.com/myj-nikhil/earthlings-db-api/internal/handler/grpc"
	"github.com/myj-nikhil/earthlings-db-api/internal/logger"

	"google.golang.org/grpc"
)

type grpcServer struct {
	handler *myGRPC.Handler

	address         string
	server          *grpc.Server
	gRPCNetListener net.Listener

	shutdownTimeout time.Duration

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	server := grpc.NewServer(grpc.UnaryInterceptor(handler.UnaryLoggingInterceptor))
	handler.Register(server)

	return &grpcServer{
		handler:         handler,
		address:         cfg.GRPCAddress,
		server:          server,
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}
}

func (g *grpcServer) listen() error {
	listener, err := net.Listen("tcp", g.address)
	if err != nil {
		return fmt.Errorf("%w: grpc %s: %w", errListen, g.address, err)
	}
	g.gRPCNetListener = listener
	return nil
}

// RunServer publishes the initial health status and serves until Shutdown
// is called.
func (g *grpcServer) RunServer() error {
	status := g.handler.RefreshHealth(context.Background())
	g.logger.Info().
		Str("address", g.gRPCNetListener.Addr().String()).
		Str("health", status.String()).
		Msg("gRPC server listening")

	if err := g.server.Serve(g.gRPCNetListener); err != nil {
		return fmt.Errorf("gRPC server Serve: %w", err)
	}
	return nil
}

// Shutdown flips health to NOT_SERVING, then stops gracefully. In-flight
// calls still running after shutdownTimeout are cut off.
func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("GRPC server Shutdown")
	g.handler.Shutdown()

	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	if g.shutdownTimeout <= 0 {
		<-stopped
		return
	}

	select {
	case <-stopped:
	case <-time.After(g.shutdownTimeout):
		g.logger.Warn().Msg("gRPC graceful stop timed out, forcing stop")
		g.server.Stop()
	}
}
