// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/myj-nikhil/earthlings-db-api/internal/utils"
)

// updateIdentityUser relays the provider's response body with status 200.
// An empty provider body is answered with an empty JSON object; a body that
// is not JSON is relayed as plain text.
func (h *Handler) updateIdentityUser(w http.ResponseWriter, r *http.Request) error {
	update, err := decodeIdentityUserUpdate(w, r)
	if err != nil {
		return err
	}

	result, err := h.services.IdentityService.UpdateUser(r.Context(), update)
	if err != nil {
		return err
	}

	if len(result) == 0 {
		result = []byte("{}")
	}

	if !json.Valid(result) {
		_, err = utils.WriteText(w, string(result), http.StatusOK)
		return err
	}

	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(http.StatusOK)
	_, err = w.Write(result)
	return err
}
