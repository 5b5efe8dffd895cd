// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer message strings used across
// the earthlings-db-api handlers and middleware.
//
// Msg* constants are written into the "error" field of JSON error bodies.
// Fmt* constants are the plain-text confirmations of write operations.
package app

const (
	MsgInvalidCustomerID      = "invalid customer id"
	MsgInvalidRequestBody     = "invalid request body"
	MsgUnsupportedContentType = "unsupported content type"
	MsgRouteNotFound          = "route not found"
	MsgMethodNotAllowed       = "method not allowed"

	// MsgInvalidDataProvided is returned when a required field is missing
	// or empty after decoding.
	MsgInvalidDataProvided = "invalid data provided"
	MsgCustomerNotFound    = "customer not found"
	MsgInvalidUserID       = "invalid user id"

	MsgProviderTimeout     = "identity provider timed out"
	MsgProviderTokenFailed = "identity provider token request failed"
	MsgProviderPatchFailed = "identity provider user update failed"

	MsgInvalidCustomerData = "invalid customer data"
	MsgCustomerConflict    = "customer conflicts with an existing record"
	MsgStorageUnavailable  = "storage unavailable"
	MsgRequestTimedOut     = "request timed out"

	// MsgStorageError hides query and driver details from clients; the
	// full error is only logged.
	MsgStorageError = "storage error"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)

const (
	FmtCustomerCreated  = "User added with ID: %d"
	FmtCustomerModified = "User modified with ID: %d"
	FmtCustomerDeleted  = "User deleted with ID: %d"
)
