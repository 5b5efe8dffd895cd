// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/myj-nikhil/earthlings-db-api/internal/logger"
	"github.com/myj-nikhil/earthlings-db-api/internal/mock"
	"github.com/myj-nikhil/earthlings-db-api/internal/store"
	"github.com/myj-nikhil/earthlings-db-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestCustomerSvc(t *testing.T, ctrl *gomock.Controller) (CustomerService, *mock.MockCustomerRepository) {
	t.Helper()
	repo := mock.NewMockCustomerRepository(ctrl)
	return NewCustomerService(repo, logger.Nop()), repo
}

func strPtr(s string) *string { return &s }

// ── List ─────────────────────────────────────────────────────────────────────

func TestCustomerService_ListCustomers_PassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestCustomerSvc(t, ctrl)
	ctx := context.Background()

	want := []models.Customer{
		{ID: 1, Name: strPtr("Ada")},
		{ID: 2, Name: strPtr("Grace")},
	}
	repo.EXPECT().ListCustomers(ctx).Return(want, nil)

	got, err := svc.ListCustomers(ctx)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCustomerService_ListCustomers_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestCustomerSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().ListCustomers(ctx).Return(nil, store.ErrStorageUnavailable)

	got, err := svc.ListCustomers(ctx)

	assert.Nil(t, got)
	assert.ErrorIs(t, err, store.ErrStorageUnavailable)
}

func TestCustomerService_ListAuth0Identifiers_KeepsNulls(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestCustomerSvc(t, ctrl)
	ctx := context.Background()

	want := []models.Auth0Identifier{{Auth0ID: strPtr("auth0|1")}, {Auth0ID: nil}}
	repo.EXPECT().ListAuth0Identifiers(ctx).Return(want, nil)

	got, err := svc.ListAuth0Identifiers(ctx)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// ── Get ──────────────────────────────────────────────────────────────────────

func TestCustomerService_GetCustomerByID_Found(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestCustomerSvc(t, ctrl)
	ctx := context.Background()

	want := []models.Customer{{ID: 7, Name: strPtr("Ada")}}
	repo.EXPECT().GetCustomerByID(ctx, int64(7)).Return(want, nil)

	got, err := svc.GetCustomerByID(ctx, 7)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCustomerService_GetCustomerByID_EmptyIsNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestCustomerSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().GetCustomerByID(ctx, int64(99)).Return([]models.Customer{}, nil)

	got, err := svc.GetCustomerByID(ctx, 99)

	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestCustomerService_GetCustomerByAuth0ID_EmptyIsNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestCustomerSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().GetCustomerByAuth0ID(ctx, "auth0|missing").Return(nil, nil)

	_, err := svc.GetCustomerByAuth0ID(ctx, "auth0|missing")

	assert.ErrorIs(t, err, ErrCustomerNotFound)
	assert.Contains(t, err.Error(), "auth0|missing")
}

func TestCustomerService_GetCustomerByAuth0ID_MultipleRows(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestCustomerSvc(t, ctrl)
	ctx := context.Background()

	want := []models.Customer{
		{ID: 1, Auth0ID: strPtr("auth0|dup")},
		{ID: 4, Auth0ID: strPtr("auth0|dup")},
	}
	repo.EXPECT().GetCustomerByAuth0ID(ctx, "auth0|dup").Return(want, nil)

	got, err := svc.GetCustomerByAuth0ID(ctx, "auth0|dup")

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestCustomerService_GetCustomerByID_StorageErrorIsNotMaskedAsNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestCustomerSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().GetCustomerByID(ctx, int64(1)).Return(nil, store.ErrExecutingQuery)

	_, err := svc.GetCustomerByID(ctx, 1)

	assert.ErrorIs(t, err, store.ErrExecutingQuery)
	assert.NotErrorIs(t, err, ErrCustomerNotFound)
}

// ── FeatureCollection ────────────────────────────────────────────────────────

func TestCustomerService_ListFeatureCollection_WrapsGeometries(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestCustomerSvc(t, ctrl)
	ctx := context.Background()

	geoms := []json.RawMessage{
		json.RawMessage(`{"type":"Point","coordinates":[1,2]}`),
		json.RawMessage(`{"type":"Point","coordinates":[3,4]}`),
	}
	repo.EXPECT().ListGeometries(ctx).Return(geoms, nil)

	got, err := svc.ListFeatureCollection(ctx)

	require.NoError(t, err)
	assert.Equal(t, "FeatureCollection", got.Type)
	assert.Equal(t, geoms, got.Features)
}

func TestCustomerService_ListFeatureCollection_EmptyIsEmptyArray(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestCustomerSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().ListGeometries(ctx).Return(nil, nil)

	got, err := svc.ListFeatureCollection(ctx)
	require.NoError(t, err)

	raw, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"FeatureCollection","features":[]}`, string(raw))
}

func TestCustomerService_ListFeatureCollection_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestCustomerSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().ListGeometries(ctx).Return(nil, errors.New("boom"))

	_, err := svc.ListFeatureCollection(ctx)

	assert.EqualError(t, err, "boom")
}

// ── Create / Update / Delete ─────────────────────────────────────────────────

func TestCustomerService_CreateCustomer_ReturnsID(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestCustomerSvc(t, ctrl)
	ctx := context.Background()

	in := models.CustomerInput{Name: strPtr("Ada"), Phone: strPtr("555")}
	repo.EXPECT().CreateCustomer(ctx, in).Return(int64(42), nil)

	id, err := svc.CreateCustomer(ctx, in)

	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestCustomerService_CreateCustomer_InvalidData(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestCustomerSvc(t, ctrl)
	ctx := context.Background()

	in := models.CustomerInput{GeoJSON: json.RawMessage(`{"type":"Nope"}`)}
	repo.EXPECT().CreateCustomer(ctx, in).Return(int64(0), store.ErrInvalidCustomerData)

	id, err := svc.CreateCustomer(ctx, in)

	assert.Zero(t, id)
	assert.ErrorIs(t, err, store.ErrInvalidCustomerData)
}

func TestCustomerService_UpdateCustomer(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		repoErr  error
		wantErr  error
	}{
		{name: "one row", affected: 1},
		{name: "zero rows is not found", affected: 0, wantErr: ErrCustomerNotFound},
		{name: "storage error", repoErr: store.ErrExecutingStatement, wantErr: store.ErrExecutingStatement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, repo := newTestCustomerSvc(t, ctrl)
			ctx := context.Background()

			in := models.CustomerInput{Name: strPtr("New")}
			repo.EXPECT().UpdateCustomer(ctx, int64(3), in).Return(tt.affected, tt.repoErr)

			err := svc.UpdateCustomer(ctx, 3, in)

			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCustomerService_DeleteCustomer(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		repoErr  error
		wantErr  error
	}{
		{name: "one row", affected: 1},
		{name: "zero rows is not found", affected: 0, wantErr: ErrCustomerNotFound},
		{name: "storage error", repoErr: store.ErrStorageUnavailable, wantErr: store.ErrStorageUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, repo := newTestCustomerSvc(t, ctrl)
			ctx := context.Background()

			repo.EXPECT().DeleteCustomer(ctx, int64(5)).Return(tt.affected, tt.repoErr)

			err := svc.DeleteCustomer(ctx, 5)

			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
