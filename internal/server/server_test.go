// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/myj-nikhil/earthlings-db-api/internal/config"
	"github.com/myj-nikhil/earthlings-db-api/internal/handler"
	myGRPC "github.com/myj-nikhil/earthlings-db-api/internal/handler/grpc"
	myHTTP "github.com/myj-nikhil/earthlings-db-api/internal/handler/http"
	"github.com/myj-nikhil/earthlings-db-api/internal/logger"
	"github.com/myj-nikhil/earthlings-db-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type stubHealth struct{ err error }

func (s stubHealth) Check(context.Context) error { return s.err }

func testConfig() config.Server {
	return config.Server{
		HTTPAddress:     "127.0.0.1:0",
		GRPCAddress:     "127.0.0.1:0",
		RequestTimeout:  time.Second,
		ShutdownTimeout: time.Second,
	}
}

func testHandlers(t *testing.T, cfg config.Server, log *logger.Logger) *handler.Handlers {
	t.Helper()

	appInfo, err := service.NewAppInfoService(config.App{Info: "hello"}, log)
	require.NoError(t, err)

	services := &service.Services{
		AppInfoService: appInfo,
		HealthService:  stubHealth{},
	}
	handlers := &handler.Handlers{}
	if cfg.HTTPAddress != "" {
		handlers.HTTP = myHTTP.NewHandler(services, cfg, log)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = myGRPC.NewHandler(services, log)
	}
	return handlers
}

func TestNewServer_NoServers(t *testing.T) {
	log := logger.Nop()

	srv, err := NewServer(&handler.Handlers{}, testConfig(), log)

	assert.Nil(t, srv)
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer_AddressWithoutHandlerIsSkipped(t *testing.T) {
	log := logger.Nop()
	cfg := testConfig()
	cfg.GRPCAddress = ""

	srv, err := NewServer(testHandlers(t, cfg, log), testConfig(), log)
	require.NoError(t, err)

	s := srv.(*server)
	assert.NotNil(t, s.httpServer)
	assert.Nil(t, s.gRPCServer)
}

func TestServer_RunServesBothTransportsUntilCancelled(t *testing.T) {
	log := logger.Nop()
	cfg := testConfig()

	srv, err := NewServer(testHandlers(t, cfg, log), cfg, log)
	require.NoError(t, err)
	s := srv.(*server)

	require.NoError(t, s.listen())
	httpAddr := s.httpServer.listener.Addr().String()
	grpcAddr := s.gRPCServer.gRPCNetListener.Addr().String()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.serve(ctx) }()

	// HTTP
	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + httpAddr + "/")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		return resp.StatusCode == http.StatusOK && string(body) != ""
	}, 2*time.Second, 20*time.Millisecond)

	// gRPC
	conn, err := grpc.NewClient(grpcAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool {
		resp, err := healthpb.NewHealthClient(conn).Check(context.Background(), &healthpb.HealthCheckRequest{})
		return err == nil && resp.GetStatus() == healthpb.HealthCheckResponse_SERVING
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}

	_, err = http.Get("http://" + httpAddr + "/")
	assert.Error(t, err)
}

func TestServer_RunFailsWhenAddressIsBusy(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	log := logger.Nop()
	cfg := testConfig()
	cfg.GRPCAddress = busy.Addr().String()

	srv, err := NewServer(testHandlers(t, cfg, log), cfg, log)
	require.NoError(t, err)
	s := srv.(*server)

	err = s.Run(context.Background())

	assert.ErrorIs(t, err, errListen)
	// the HTTP listener bound first must be released
	_, dialErr := net.Dial("tcp", s.httpServer.listener.Addr().String())
	assert.Error(t, dialErr)
}

func TestServer_ShutdownIsIdempotent(t *testing.T) {
	log := logger.Nop()
	cfg := testConfig()

	srv, err := NewServer(testHandlers(t, cfg, log), cfg, log)
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		srv.Shutdown()
		srv.Shutdown()
	})
}
