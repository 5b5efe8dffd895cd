// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/myj-nikhil/earthlings-db-api/internal/adapter"
	"github.com/myj-nikhil/earthlings-db-api/internal/app"
	"github.com/myj-nikhil/earthlings-db-api/internal/logger"
	"github.com/myj-nikhil/earthlings-db-api/internal/service"
	"github.com/myj-nikhil/earthlings-db-api/internal/store"
	"github.com/myj-nikhil/earthlings-db-api/internal/utils"
	"github.com/myj-nikhil/earthlings-db-api/models"
)

type errorStatus struct {
	target  error
	status  int
	message string
}

// errorStatuses is matched top to bottom. Storage and provider errors wrap
// several sentinels at once, so specific classes must come before generic
// ones.
var errorStatuses = []errorStatus{
	{ErrInvalidCustomerID, http.StatusBadRequest, app.MsgInvalidCustomerID},
	{ErrInvalidRequestBody, http.StatusBadRequest, app.MsgInvalidRequestBody},
	{ErrUnsupportedContentType, http.StatusUnsupportedMediaType, app.MsgUnsupportedContentType},
	{ErrRouteNotFound, http.StatusNotFound, app.MsgRouteNotFound},
	{ErrMethodNotAllowed, http.StatusMethodNotAllowed, app.MsgMethodNotAllowed},

	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{service.ErrCustomerNotFound, http.StatusNotFound, app.MsgCustomerNotFound},

	{adapter.ErrInvalidUserID, http.StatusBadRequest, app.MsgInvalidUserID},
	{adapter.ErrProviderTimeout, http.StatusGatewayTimeout, app.MsgProviderTimeout},
	{adapter.ErrTokenAcquisition, http.StatusBadGateway, app.MsgProviderTokenFailed},
	{adapter.ErrUserPatch, http.StatusBadGateway, app.MsgProviderPatchFailed},

	{store.ErrInvalidCustomerData, http.StatusBadRequest, app.MsgInvalidCustomerData},
	{store.ErrCustomerConflict, http.StatusConflict, app.MsgCustomerConflict},
	{store.ErrStorageUnavailable, http.StatusServiceUnavailable, app.MsgStorageUnavailable},

	{context.DeadlineExceeded, http.StatusGatewayTimeout, app.MsgRequestTimedOut},

	{store.ErrBuildingSQLQuery, http.StatusInternalServerError, app.MsgStorageError},
	{store.ErrExecutingQuery, http.StatusInternalServerError, app.MsgStorageError},
	{store.ErrExecutingStatement, http.StatusInternalServerError, app.MsgStorageError},
	{store.ErrScanningRow, http.StatusInternalServerError, app.MsgStorageError},
	{store.ErrScanningRows, http.StatusInternalServerError, app.MsgStorageError},
	{store.ErrReadingRowsAffected, http.StatusInternalServerError, app.MsgStorageError},
}

func statusFromError(err error) (int, string) {
	for _, es := range errorStatuses {
		if errors.Is(err, es.target) {
			return es.status, es.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// errorResponse builds the body for err. Client errors carry the cause,
// provider errors carry the upstream detail and storage errors carry
// nothing beyond the class.
func errorResponse(err error) (int, models.ErrorResponse) {
	status, message := statusFromError(err)
	resp := models.ErrorResponse{Error: message}

	var providerErr *adapter.ProviderError
	switch {
	case errors.As(err, &providerErr):
		resp.Detail = providerErr.Detail()
	case status < http.StatusInternalServerError:
		resp.Detail = err.Error()
	}

	return status, resp
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status, resp := errorResponse(err)

	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Str("func", "*Handler.writeError").Int("status", status).Msg(resp.Error)

	if _, writeErr := utils.WriteJSON(w, resp, status); writeErr != nil {
		log.Err(writeErr).Str("func", "*Handler.writeError").Msg("error writing error response")
	}
}
