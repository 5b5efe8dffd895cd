// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle contract of the transport servers managed
// by this package.
type Server interface {
	// RunServer starts serving and blocks until SIGINT, SIGTERM or SIGQUIT
	// is received and every transport has shut down.
	RunServer()

	// Run is RunServer driven by ctx instead of process signals. It
	// returns early with an error when a transport cannot start.
	Run(ctx context.Context) error

	// Shutdown gracefully stops every transport.
	Shutdown()
}
