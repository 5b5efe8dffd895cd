// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/myj-nikhil/earthlings-db-api/internal/utils"
)

func (h *Handler) getUploadAuthParams(w http.ResponseWriter, r *http.Request) error {
	params, err := h.services.MediaAuthService.GetUploadAuthParams(r.Context())
	if err != nil {
		return err
	}

	_, err = utils.WriteJSON(w, params, http.StatusOK)
	return err
}
