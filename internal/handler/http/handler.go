// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/myj-nikhil/earthlings-db-api/internal/config"
	"github.com/myj-nikhil/earthlings-db-api/internal/logger"
	"github.com/myj-nikhil/earthlings-db-api/internal/service"
)

type Handler struct {
	services *service.Services

	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}

// handlerFunc is an endpoint that reports failure by returning an error
// instead of writing the response itself.
type handlerFunc func(w http.ResponseWriter, r *http.Request) error

// handle adapts fn to http.HandlerFunc. A returned error is turned into the
// only response of the request. Errors returned after fn has started the
// response are logged and dropped.
func (h *Handler) handle(fn handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rw := &responseWriter{ResponseWriter: w}

		err := fn(rw, r)
		if err == nil {
			return
		}
		if rw.wroteHeader {
			logger.FromRequest(r).Err(err).Str("func", "*Handler.handle").Int("status", rw.status).Msg("error after response was started")
			return
		}

		h.writeError(rw, r, err)
	}
}
