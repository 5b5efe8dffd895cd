// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// earthlings-db-api server. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// an optional JSON file and finally built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings exposed by the root endpoint.
	App App `envPrefix:"APP_"`

	// Storage holds configuration of the relational store.
	Storage Storage

	// Server holds network address and timeout settings for the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the identity provider client-credentials settings.
	Adapter Adapter `envPrefix:"AUTH0_"`

	// Media holds the media upload provider key pair.
	Media Media `envPrefix:"IMAGEKIT_"`

	// Port is the plain listening port, kept for compatibility with hosting
	// platforms that only inject PORT. It is ignored when Server.HTTPAddress
	// is set.
	// Env: PORT
	Port int `env:"PORT"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Info is the message returned by GET /.
	// Env: APP_INFO
	Info string `env:"INFO"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"PG_"`
}

// DB holds connection settings for the PostgreSQL backend.
//
// Either DSN or the discrete Host/Database/User/Password fields must be
// provided. When DSN is set, the discrete fields are ignored.
type DB struct {
	// DSN is a complete PostgreSQL connection string.
	// Env: PG_DSN
	DSN string `env:"DSN"`

	// Env: PG_HOST
	Host string `env:"HOST"`

	// Env: PG_PORT
	Port int `env:"PORT"`

	// Env: PG_DATABASE
	Database string `env:"DATABASE"`

	// Env: PG_USER
	User string `env:"USER"`

	// Env: PG_PASSWORD
	Password string `env:"PASSWORD"`

	// SSLMode is the libpq sslmode value. Defaults to "verify-full".
	// Env: PG_SSLMODE
	SSLMode string `env:"SSLMODE"`

	// InsecureSkipVerify disables verification of the server certificate
	// while keeping TLS enabled. Off unless explicitly requested.
	// Env: PG_INSECURE_SKIP_VERIFY
	InsecureSkipVerify bool `env:"INSECURE_SKIP_VERIFY"`

	// Env: PG_MAX_OPEN_CONNS
	MaxOpenConns int `env:"MAX_OPEN_CONNS"`

	// Env: PG_MAX_IDLE_CONNS
	MaxIdleConns int `env:"MAX_IDLE_CONNS"`

	// Env: PG_CONN_MAX_LIFETIME
	ConnMaxLifetime time.Duration `env:"CONN_MAX_LIFETIME"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address of the optional gRPC health endpoint.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown of the HTTP server.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Adapter holds the identity provider (Auth0 management API) settings used
// for the client-credentials exchange and the user PATCH call.
type Adapter struct {
	// Env: AUTH0_CLIENT_ID
	ClientID string `env:"CLIENT_ID"`

	// Env: AUTH0_CLIENT_SECRET
	ClientSecret string `env:"CLIENT_SECRET"`

	// TokenURL is the OAuth2 token endpoint.
	// Env: AUTH0_TOKENURL
	TokenURL string `env:"TOKENURL"`

	// Audience is both the requested token audience and the base URL of the
	// management API (e.g. "https://tenant.eu.auth0.com/api/v2/").
	// Env: AUTH0_AUDIENCE
	Audience string `env:"AUDIENCE"`

	// RequestTimeout bounds each outbound call to the provider.
	// Env: AUTH0_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Media holds the media upload provider (ImageKit) settings.
type Media struct {
	// Env: IMAGEKIT_URL_ENDPOINT
	URLEndpoint string `env:"URL_ENDPOINT"`

	// Env: IMAGEKIT_PUBLICKEY
	PublicKey string `env:"PUBLICKEY"`

	// PrivateKey signs upload authentication parameters. Must be kept
	// confidential.
	// Env: IMAGEKIT_PRIVATEKEY
	PrivateKey string `env:"PRIVATEKEY"`

	// Expire is how long issued upload parameters remain valid.
	// Env: IMAGEKIT_EXPIRE
	Expire time.Duration `env:"EXPIRE"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources. For every field the first
// non-zero value wins in the following order:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}

// Redacted returns a copy of cfg with secrets masked, suitable for logging.
func (cfg StructuredConfig) Redacted() StructuredConfig {
	redacted := cfg
	redacted.Storage.DB.Password = mask(cfg.Storage.DB.Password)
	if cfg.Storage.DB.DSN != "" {
		redacted.Storage.DB.DSN = redactedValue
	}
	redacted.Adapter.ClientSecret = mask(cfg.Adapter.ClientSecret)
	redacted.Media.PrivateKey = mask(cfg.Media.PrivateKey)

	return redacted
}

const redactedValue = "[REDACTED]"

func mask(secret string) string {
	if secret == "" {
		return ""
	}
	return redactedValue
}
