// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// routeMethods is the set of methods probed when building the Allow header.
var routeMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
}

func routeNotFound(_ http.ResponseWriter, r *http.Request) error {
	return fmt.Errorf("%w: %s %s", ErrRouteNotFound, r.Method, r.URL.Path)
}

// methodNotAllowed returns the router's MethodNotAllowed handler. It
// answers 405 with a JSON body and an Allow header listing every method
// router has registered for the requested path.
func (h *Handler) methodNotAllowed(router *chi.Mux) http.HandlerFunc {
	return h.handle(func(w http.ResponseWriter, r *http.Request) error {
		allowed := allowedMethods(router, r.URL.Path)
		if len(allowed) > 0 {
			w.Header().Set("Allow", strings.Join(allowed, ", "))
		}
		return fmt.Errorf("%w: %s %s", ErrMethodNotAllowed, r.Method, r.URL.Path)
	})
}

func allowedMethods(router *chi.Mux, path string) []string {
	var allowed []string
	for _, method := range routeMethods {
		if router.Match(chi.NewRouteContext(), method, path) {
			allowed = append(allowed, method)
		}
	}
	return allowed
}
