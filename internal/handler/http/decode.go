// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/myj-nikhil/earthlings-db-api/models"
)

const (
	contentTypeJSON = "application/json"
	contentTypeForm = "application/x-www-form-urlencoded"

	maxBodyBytes = 1 << 20
)

// parseCustomerID reads the {id} path segment. customer_data.id is an int4
// column, so ids outside the int32 range are rejected here.
func parseCustomerID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCustomerID, raw)
	}
	return id, nil
}

// bodyKind reports whether the request body is JSON or form data. A missing
// Content-Type is treated as JSON.
func bodyKind(r *http.Request) (string, error) {
	header := r.Header.Get("Content-Type")
	if header == "" {
		return contentTypeJSON, nil
	}

	mediaType, _, err := mime.ParseMediaType(header)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnsupportedContentType, err)
	}

	switch mediaType {
	case contentTypeJSON, contentTypeForm:
		return mediaType, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedContentType, mediaType)
	}
}

func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequestBody, err)
	}
	return nil
}

func parseFormBody(w http.ResponseWriter, r *http.Request) (url.Values, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequestBody, err)
	}
	return r.PostForm, nil
}

// formString returns nil when key is absent so that it is stored as NULL.
func formString(form url.Values, key string) *string {
	if _, ok := form[key]; !ok {
		return nil
	}
	value := form.Get(key)
	return &value
}

// formJSON returns the raw JSON text carried by a form field.
func formJSON(form url.Values, key string) (json.RawMessage, error) {
	value := form.Get(key)
	if value == "" {
		return nil, nil
	}
	if !json.Valid([]byte(value)) {
		return nil, fmt.Errorf("%w: field %q is not valid JSON", ErrInvalidRequestBody, key)
	}
	return json.RawMessage(value), nil
}

func decodeCustomerInput(w http.ResponseWriter, r *http.Request) (models.CustomerInput, error) {
	var in models.CustomerInput

	kind, err := bodyKind(r)
	if err != nil {
		return in, err
	}

	if kind == contentTypeJSON {
		err = decodeJSONBody(w, r, &in)
		return in, err
	}

	form, err := parseFormBody(w, r)
	if err != nil {
		return in, err
	}
	in.Name = formString(form, "name")
	in.Phone = formString(form, "phone")
	in.Auth0ID = formString(form, "auth0_id")
	in.GeoJSON, err = formJSON(form, "geojson")

	return in, err
}

func decodeIdentityUserUpdate(w http.ResponseWriter, r *http.Request) (models.IdentityUserUpdate, error) {
	var update models.IdentityUserUpdate

	kind, err := bodyKind(r)
	if err != nil {
		return update, err
	}

	if kind == contentTypeJSON {
		err = decodeJSONBody(w, r, &update)
		return update, err
	}

	form, err := parseFormBody(w, r)
	if err != nil {
		return update, err
	}
	update.UserID = form.Get("userId")
	update.Data, err = formJSON(form, "data")

	return update, err
}
