// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"
)

var corsAllowedHeaders = []string{"Origin", "X-Requested-With", "Content-Type", "Accept"}

// withCORSHeaders stamps the permissive CORS headers on every response,
// including requests without an Origin header that cors.Handler leaves
// untouched. cors.Handler runs after it and owns preflight handling.
func withCORSHeaders(next http.Handler) http.Handler {
	allowHeaders := strings.Join(corsAllowedHeaders, ", ")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", allowHeaders)
		next.ServeHTTP(w, r)
	})
}
