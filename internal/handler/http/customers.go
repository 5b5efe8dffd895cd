// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/myj-nikhil/earthlings-db-api/internal/app"
	"github.com/myj-nikhil/earthlings-db-api/internal/utils"
)

func (h *Handler) listCustomers(w http.ResponseWriter, r *http.Request) error {
	customers, err := h.services.CustomerService.ListCustomers(r.Context())
	if err != nil {
		return err
	}

	_, err = utils.WriteJSON(w, customers, http.StatusOK)
	return err
}

func (h *Handler) listAuth0Identifiers(w http.ResponseWriter, r *http.Request) error {
	identifiers, err := h.services.CustomerService.ListAuth0Identifiers(r.Context())
	if err != nil {
		return err
	}

	_, err = utils.WriteJSON(w, identifiers, http.StatusOK)
	return err
}

func (h *Handler) getCustomerByID(w http.ResponseWriter, r *http.Request) error {
	id, err := parseCustomerID(r)
	if err != nil {
		return err
	}

	customers, err := h.services.CustomerService.GetCustomerByID(r.Context(), id)
	if err != nil {
		return err
	}

	_, err = utils.WriteJSON(w, customers, http.StatusOK)
	return err
}

func (h *Handler) getCustomerByAuth0ID(w http.ResponseWriter, r *http.Request) error {
	auth0ID := chi.URLParam(r, "auth0_id")
	// chi matches on RawPath when the path holds escaped slashes, leaving
	// the parameter escaped.
	if r.URL.RawPath != "" {
		if unescaped, err := url.PathUnescape(auth0ID); err == nil {
			auth0ID = unescaped
		}
	}

	customers, err := h.services.CustomerService.GetCustomerByAuth0ID(r.Context(), auth0ID)
	if err != nil {
		return err
	}

	_, err = utils.WriteJSON(w, customers, http.StatusOK)
	return err
}

func (h *Handler) listGeoJSON(w http.ResponseWriter, r *http.Request) error {
	collection, err := h.services.CustomerService.ListFeatureCollection(r.Context())
	if err != nil {
		return err
	}

	_, err = utils.WriteJSON(w, collection, http.StatusOK)
	return err
}

func (h *Handler) createCustomer(w http.ResponseWriter, r *http.Request) error {
	in, err := decodeCustomerInput(w, r)
	if err != nil {
		return err
	}

	id, err := h.services.CustomerService.CreateCustomer(r.Context(), in)
	if err != nil {
		return err
	}

	_, err = utils.WriteText(w, fmt.Sprintf(app.FmtCustomerCreated, id), http.StatusCreated)
	return err
}

func (h *Handler) updateCustomer(w http.ResponseWriter, r *http.Request) error {
	id, err := parseCustomerID(r)
	if err != nil {
		return err
	}

	in, err := decodeCustomerInput(w, r)
	if err != nil {
		return err
	}

	if err = h.services.CustomerService.UpdateCustomer(r.Context(), id, in); err != nil {
		return err
	}

	_, err = utils.WriteText(w, fmt.Sprintf(app.FmtCustomerModified, id), http.StatusOK)
	return err
}

func (h *Handler) deleteCustomer(w http.ResponseWriter, r *http.Request) error {
	id, err := parseCustomerID(r)
	if err != nil {
		return err
	}

	if err = h.services.CustomerService.DeleteCustomer(r.Context(), id); err != nil {
		return err
	}

	_, err = utils.WriteText(w, fmt.Sprintf(app.FmtCustomerDeleted, id), http.StatusOK)
	return err
}
