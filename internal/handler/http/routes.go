// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withGZip)
	router.Use(withCORSHeaders)
	router.Use(cors.Handler(corsOptions()))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/", h.handle(h.getAppInfo))
	router.Get("/healthz", h.handle(h.checkHealth))

	// customers
	router.Get("/users", h.handle(h.listCustomers))
	router.Post("/users", h.handle(h.createCustomer))
	router.Get("/users/auth0", h.handle(h.listAuth0Identifiers))
	router.Get("/users/auth0/{auth0_id}", h.handle(h.getCustomerByAuth0ID))
	router.Get("/users/{id}", h.handle(h.getCustomerByID))
	router.Put("/users/{id}", h.handle(h.updateCustomer))
	router.Delete("/users/{id}", h.handle(h.deleteCustomer))
	router.Get("/geojson", h.handle(h.listGeoJSON))

	// third-party bridges
	router.Post("/update-auth0-user-data", h.handle(h.updateIdentityUser))
	router.Get("/imagekit-auth", h.handle(h.getUploadAuthParams))

	router.NotFound(h.handle(routeNotFound))
	router.MethodNotAllowed(h.methodNotAllowed(router))

	return router
}

// corsOptions allows any origin. There is no inbound authentication, so
// credentials are never allowed.
func corsOptions() cors.Options {
	return cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: corsAllowedHeaders,
		ExposedHeaders: []string{traceIDHeader},
		MaxAge:         300,
	}
}
