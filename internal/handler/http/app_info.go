// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/myj-nikhil/earthlings-db-api/internal/utils"
)

func (h *Handler) getAppInfo(w http.ResponseWriter, r *http.Request) error {
	_, err := utils.WriteJSON(w, h.services.AppInfoService.GetAppInfo(r.Context()), http.StatusOK)
	return err
}

func (h *Handler) checkHealth(w http.ResponseWriter, r *http.Request) error {
	if err := h.services.HealthService.Check(r.Context()); err != nil {
		return err
	}

	_, err := utils.WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
	return err
}
