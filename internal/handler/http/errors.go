// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the transport layer itself, before a request
// reaches the services.
var (
	// ErrInvalidCustomerID is returned when the {id} path parameter is not a
	// base-10 int64.
	ErrInvalidCustomerID = errors.New("invalid customer id")

	// ErrInvalidRequestBody is returned when the body cannot be decoded as
	// JSON or url-encoded form data.
	ErrInvalidRequestBody = errors.New("invalid request body")

	// ErrUnsupportedContentType is returned for bodies that are neither
	// application/json nor application/x-www-form-urlencoded.
	ErrUnsupportedContentType = errors.New("unsupported content type")

	ErrRouteNotFound    = errors.New("route not found")
	ErrMethodNotAllowed = errors.New("method not allowed")
)
