// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter bridges local requests to the external identity provider
// (the Auth0 management API).
//
// The primary abstraction is [IdentityProvider], which decouples the service
// layer from the underlying protocol. The package ships an HTTP
// implementation ([NewHTTPIdentityProvider]) that acquires a fresh
// client-credentials token for every update and then PATCHes the user.
//
// Failures are reported as [*ProviderError] values tagged with the step that
// failed, so callers can use [errors.Is] against [ErrTokenAcquisition],
// [ErrUserPatch] and [ErrProviderTimeout] for transport-agnostic handling.
package adapter

import (
	"context"
	"encoding/json"

	"github.com/myj-nikhil/earthlings-db-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/identity_provider_mock.go -package=mock

// IdentityProvider defines communication with the identity provider.
type IdentityProvider interface {
	// FetchToken performs the client-credentials grant and returns a bearer
	// token scoped to the configured audience. Tokens are never cached.
	FetchToken(ctx context.Context) (models.ProviderAccessToken, error)

	// PatchUser sends data unchanged as the body of
	// PATCH {audience}users/{userID} and returns the provider's response body.
	PatchUser(ctx context.Context, token models.ProviderAccessToken, userID string, data json.RawMessage) (json.RawMessage, error)

	// UpdateUser runs FetchToken and then PatchUser. The patch is never
	// attempted when the token step fails.
	UpdateUser(ctx context.Context, userID string, data json.RawMessage) (json.RawMessage, error)
}
