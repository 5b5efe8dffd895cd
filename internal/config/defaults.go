// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	defaultPort            = 8080
	defaultInfo            = "Go, chi, and Postgres API"
	defaultDBPort          = 5432
	defaultSSLMode         = "verify-full"
	defaultMaxOpenConns    = 10
	defaultMaxIdleConns    = 4
	defaultConnMaxLifetime = time.Hour
	defaultRequestTimeout  = 30 * time.Second
	defaultShutdownTimeout = 10 * time.Second
	defaultAdapterTimeout  = 15 * time.Second
	defaultMediaExpire     = 30 * time.Minute
)

// defaultConfig returns the lowest-priority layer of configuration.
// HTTPAddress is not set here: it is derived from Port in build.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Info: defaultInfo,
		},
		Storage: Storage{
			DB: DB{
				Port:            defaultDBPort,
				SSLMode:         defaultSSLMode,
				MaxOpenConns:    defaultMaxOpenConns,
				MaxIdleConns:    defaultMaxIdleConns,
				ConnMaxLifetime: defaultConnMaxLifetime,
			},
		},
		Server: Server{
			RequestTimeout:  defaultRequestTimeout,
			ShutdownTimeout: defaultShutdownTimeout,
		},
		Adapter: Adapter{
			RequestTimeout: defaultAdapterTimeout,
		},
		Media: Media{
			Expire: defaultMediaExpire,
		},
		Port: defaultPort,
	}
}
