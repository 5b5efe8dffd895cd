// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads the earthlings-db-api settings: the Postgres
// connection, the identity provider credentials, the media signing key and
// the HTTP/gRPC listen addresses.
//
// A field takes the first non-zero value from, in order, environment
// variables (PG_*, AUTH0_*, IMAGEKIT_*, SERVER_*, APP_*, PORT, CONFIG),
// command-line flags, the JSON file named by CONFIG or -c, and finally the
// built-in defaults. The merged result is validated before it is returned.
//
// The main entry point is [GetStructuredConfig]. Use
// [StructuredConfig.Redacted] before logging a config.
package config
