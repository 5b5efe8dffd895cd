// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"os/signal"
	"sync"
	"syscall"

	"github.com/myj-nikhil/earthlings-db-api/internal/config"
	"github.com/myj-nikhil/earthlings-db-api/internal/handler"
	"github.com/myj-nikhil/earthlings-db-api/internal/logger"
)

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	logger     *logger.Logger

	shutdownOnce sync.Once
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		servers.gRPCServer = newGRPCServer(handlers.GRPC, cfg, logger)
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.Run(ctx); err != nil {
		s.logger.Err(err).Msg("error running server")
	}
}

func (s *server) Run(ctx context.Context) error {
	if err := s.listen(); err != nil {
		return err
	}
	return s.serve(ctx)
}

// listen binds every listener first so a busy port fails before anything
// serves.
func (s *server) listen() error {
	if s.httpServer != nil {
		if err := s.httpServer.listen(); err != nil {
			return err
		}
	}
	if s.gRPCServer != nil {
		if err := s.gRPCServer.listen(); err != nil {
			if s.httpServer != nil {
				s.httpServer.listener.Close()
			}
			return err
		}
	}
	return nil
}

func (s *server) serve(ctx context.Context) error {
	errCh := make(chan error, 2)
	if s.httpServer != nil {
		s.logger.Info().Msg("Launching HTTP server")
		go func() { errCh <- s.httpServer.RunServer() }()
	}
	if s.gRPCServer != nil {
		s.logger.Info().Msg("Launching GRPC server")
		go func() { errCh <- s.gRPCServer.RunServer() }()
	}

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-errCh:
	}

	s.Shutdown()
	s.logger.Info().Msg("server Shutdown gracefully")

	return runErr
}

func (s *server) Shutdown() {
	s.shutdownOnce.Do(func() {
		// finish HTTP server
		if s.httpServer != nil {
			s.httpServer.Shutdown()
		}

		// finish gRPC server
		if s.gRPCServer != nil {
			s.gRPCServer.Shutdown()
		}
	})
}
