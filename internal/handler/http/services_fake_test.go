// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/myj-nikhil/earthlings-db-api/internal/logger"
	"github.com/myj-nikhil/earthlings-db-api/internal/service"
	"github.com/myj-nikhil/earthlings-db-api/models"
)

// ---- Mock: CustomerService ----

type mockCustomerSvc struct {
	listFn       func(ctx context.Context) ([]models.Customer, error)
	listAuth0Fn  func(ctx context.Context) ([]models.Auth0Identifier, error)
	getByIDFn    func(ctx context.Context, id int64) ([]models.Customer, error)
	getByAuth0Fn func(ctx context.Context, auth0ID string) ([]models.Customer, error)
	collectionFn func(ctx context.Context) (models.FeatureCollection, error)
	createFn     func(ctx context.Context, in models.CustomerInput) (int64, error)
	updateFn     func(ctx context.Context, id int64, in models.CustomerInput) error
	deleteFn     func(ctx context.Context, id int64) error
}

func (m *mockCustomerSvc) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return []models.Customer{}, nil
}

func (m *mockCustomerSvc) ListAuth0Identifiers(ctx context.Context) ([]models.Auth0Identifier, error) {
	if m.listAuth0Fn != nil {
		return m.listAuth0Fn(ctx)
	}
	return []models.Auth0Identifier{}, nil
}

func (m *mockCustomerSvc) GetCustomerByID(ctx context.Context, id int64) ([]models.Customer, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return []models.Customer{{ID: id}}, nil
}

func (m *mockCustomerSvc) GetCustomerByAuth0ID(ctx context.Context, auth0ID string) ([]models.Customer, error) {
	if m.getByAuth0Fn != nil {
		return m.getByAuth0Fn(ctx, auth0ID)
	}
	return []models.Customer{{ID: 1, Auth0ID: &auth0ID}}, nil
}

func (m *mockCustomerSvc) ListFeatureCollection(ctx context.Context) (models.FeatureCollection, error) {
	if m.collectionFn != nil {
		return m.collectionFn(ctx)
	}
	return models.NewFeatureCollection(nil), nil
}

func (m *mockCustomerSvc) CreateCustomer(ctx context.Context, in models.CustomerInput) (int64, error) {
	if m.createFn != nil {
		return m.createFn(ctx, in)
	}
	return 1, nil
}

func (m *mockCustomerSvc) UpdateCustomer(ctx context.Context, id int64, in models.CustomerInput) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, in)
	}
	return nil
}

func (m *mockCustomerSvc) DeleteCustomer(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

// ---- Mock: IdentityService ----

type mockIdentitySvc struct {
	updateFn func(ctx context.Context, update models.IdentityUserUpdate) (json.RawMessage, error)
}

func (m *mockIdentitySvc) UpdateUser(ctx context.Context, update models.IdentityUserUpdate) (json.RawMessage, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, update)
	}
	return json.RawMessage(`{}`), nil
}

// ---- Mock: MediaAuthService ----

type mockMediaAuthSvc struct {
	params models.UploadAuthParams
	err    error
}

func (m *mockMediaAuthSvc) GetUploadAuthParams(_ context.Context) (models.UploadAuthParams, error) {
	return m.params, m.err
}

// ---- Mock: AppInfoService ----

type mockAppInfoSvc struct{}

func (m *mockAppInfoSvc) GetAppInfo(_ context.Context) models.AppInfo {
	return models.AppInfo{Info: "test-info", Version: "test-version"}
}

// ---- Mock: HealthService ----

type mockHealthSvc struct {
	err error
}

func (m *mockHealthSvc) Check(_ context.Context) error {
	return m.err
}

// ---- Helpers ----

// testServices returns a service container whose members can be replaced
// per test.
func testServices() *service.Services {
	return &service.Services{
		CustomerService:  &mockCustomerSvc{},
		IdentityService:  &mockIdentitySvc{},
		MediaAuthService: &mockMediaAuthSvc{},
		AppInfoService:   &mockAppInfoSvc{},
		HealthService:    &mockHealthSvc{},
	}
}

func newTestHandler(services *service.Services) *Handler {
	return &Handler{services: services, logger: logger.Nop()}
}

func newTestRouter(t *testing.T, services *service.Services) http.Handler {
	t.Helper()
	return newTestHandler(services).Init()
}

// serve runs a request through router and returns the recorder.
func serve(router http.Handler, method, path, contentType, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeErrorResponse(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not an error body: %v: %s", err, rec.Body.String())
	}
	return resp
}

func strPtr(s string) *string { return &s }
