// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/myj-nikhil/earthlings-db-api/internal/logger"
	"github.com/rs/zerolog"
)

// withLogging writes one access log line per request. The route field is
// the matched chi pattern, so /users/7 and /users/8 share "/users/{id}".
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		start := time.Now()

		lw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(lw, r)

		status := lw.status
		if status == 0 {
			status = http.StatusOK
		}

		event := accessLogEvent(log, status).
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size)

		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				event = event.Str("route", pattern)
			}
		}
		if origin := r.Header.Get("Origin"); origin != "" {
			event = event.Str("origin", origin)
		}

		event.Send()
	})
}

func accessLogEvent(log *logger.Logger, status int) *zerolog.Event {
	switch {
	case status >= http.StatusInternalServerError:
		return log.Error()
	case status >= http.StatusBadRequest:
		return log.Warn()
	default:
		return log.Info()
	}
}
