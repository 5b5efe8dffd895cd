// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Request tracing, access logging, response compression and CORS are
// applied here before requests are delegated to the service layer. Every
// endpoint returns an error instead of writing failures itself, and
// [Handler.handle] maps that error to exactly one JSON error response.
package http
