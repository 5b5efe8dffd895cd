// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AppInfo is returned by the root endpoint.
type AppInfo struct {
	Info    string `json:"info"`
	Version string `json:"version,omitempty"`
}

// ErrorResponse is the stable body of every non-2xx JSON response.
type ErrorResponse struct {
	// Error is a short, stable description of the failure class.
	Error string `json:"error"`

	// Detail carries the underlying cause, e.g. the upstream provider
	// response body. Omitted when empty.
	Detail string `json:"detail,omitempty"`
}
