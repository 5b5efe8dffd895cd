// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates missing database settings
	// (neither a DSN nor host and database name were provided).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAdapterConfigs indicates incomplete identity provider settings.
	ErrInvalidAdapterConfigs = errors.New("invalid identity provider configuration")
	// ErrInvalidMediaConfigs indicates a missing media provider private key.
	ErrInvalidMediaConfigs = errors.New("invalid media provider configuration")
	// ErrInvalidServerConfigs indicates that no listening address could be
	// resolved.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
