// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// IdentityUserUpdate is the body of POST /update-auth0-user-data.
type IdentityUserUpdate struct {
	// UserID is the identity provider user id (e.g. "auth0|abc").
	UserID string `json:"userId"`

	// Data is forwarded unchanged as the PATCH body.
	Data json.RawMessage `json:"data"`
}

// ProviderAccessToken is a bearer token obtained through the client-credentials
// grant. It is used for exactly one downstream call and never cached.
type ProviderAccessToken struct {
	AccessToken string
	TokenType   string

	// Expiry is taken from the token endpoint response or, when the token is
	// a JWT, from its exp claim. Zero means unknown.
	Expiry time.Time

	// Subject is the sub claim of a JWT token, empty for opaque tokens.
	Subject string
}

// AuthorizationHeader returns the value for the Authorization header.
func (t ProviderAccessToken) AuthorizationHeader() string {
	return "Bearer " + t.AccessToken
}
