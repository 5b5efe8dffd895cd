// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"app": { "info": "hello", "version": "1.0.0" },
		"server": {
			"http_address": "localhost:8080",
			"grpc_address": "localhost:9090",
			"request_timeout": "30s",
			"shutdown_timeout": "5s"
		},
		"storage": {
			"db": {
				"host": "db.local",
				"port": 5433,
				"database": "earthlings",
				"user": "api",
				"password": "pw",
				"sslmode": "require",
				"insecure_skip_verify": true,
				"conn_max_lifetime": "1h"
			}
		},
		"auth0": {
			"client_id": "client",
			"client_secret": "secret",
			"token_url": "https://tenant.auth0.com/oauth/token",
			"audience": "https://tenant.auth0.com/api/v2/",
			"request_timeout": "10s"
		},
		"imagekit": {
			"url_endpoint": "https://ik.imagekit.io/demo",
			"public_key": "public",
			"private_key": "private",
			"expire": "15m"
		},
		"port": 9000
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "hello", cfg.App.Info)
	assert.Equal(t, "1.0.0", cfg.App.Version)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "localhost:9090", cfg.Server.GRPCAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)

	assert.Equal(t, "db.local", cfg.Storage.DB.Host)
	assert.Equal(t, 5433, cfg.Storage.DB.Port)
	assert.Equal(t, "earthlings", cfg.Storage.DB.Database)
	assert.Equal(t, "api", cfg.Storage.DB.User)
	assert.Equal(t, "pw", cfg.Storage.DB.Password)
	assert.True(t, cfg.Storage.DB.InsecureSkipVerify)
	assert.Equal(t, time.Hour, cfg.Storage.DB.ConnMaxLifetime)

	assert.Equal(t, "client", cfg.Adapter.ClientID)
	assert.Equal(t, "secret", cfg.Adapter.ClientSecret)
	assert.Equal(t, "https://tenant.auth0.com/oauth/token", cfg.Adapter.TokenURL)
	assert.Equal(t, "https://tenant.auth0.com/api/v2/", cfg.Adapter.Audience)
	assert.Equal(t, 10*time.Second, cfg.Adapter.RequestTimeout)

	assert.Equal(t, "https://ik.imagekit.io/demo", cfg.Media.URLEndpoint)
	assert.Equal(t, "public", cfg.Media.PublicKey)
	assert.Equal(t, "private", cfg.Media.PrivateKey)
	assert.Equal(t, 15*time.Minute, cfg.Media.Expire)

	assert.Equal(t, 9000, cfg.Port)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	// Act
	cfg, err := parseJSON("definitely-does-not-exist.json")

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{ this is not json }`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "bad_duration.json")

	jsonBody := `{
		"auth0": { "request_timeout": "not-a-duration" }
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_NumericDurationIsNanoseconds(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "numeric.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"imagekit": {"expire": 1000000000}}`), 0o600))

	cfg, err := parseJSON(p)

	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.Media.Expire)
}

func TestParseJSON_EmptyObject(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(p, []byte(`{}`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	// With non-pointer nested structs, all fields are zero values.
	assert.Equal(t, StructuredConfig{}, *cfg)
}

func TestParseJSON_PartialObject(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "partial.json")

	jsonBody := `{
		"server": { "http_address": "127.0.0.1:8000" }
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "127.0.0.1:8000", cfg.Server.HTTPAddress)
	assert.Empty(t, cfg.Server.GRPCAddress)
	assert.Zero(t, cfg.Server.RequestTimeout)

	// Others remain zero
	assert.Equal(t, Adapter{}, cfg.Adapter)
	assert.Equal(t, Media{}, cfg.Media)
	assert.Equal(t, Storage{}, cfg.Storage)
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(90 * time.Second).MarshalJSON()

	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}
