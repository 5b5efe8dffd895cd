// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the subset of registered claims read from an access token
// without verifying its signature.
type TokenClaims struct {
	Subject  string
	Issuer   string
	Audience []string
	Expiry   time.Time
}

// InspectJWT decodes the claims of tokenString without verifying the
// signature. The token was issued to this service by a trusted provider;
// the claims are used for logging only and never for authorization.
//
// Returns an error if tokenString is not a JWT (for example an opaque
// access token).
func InspectJWT(tokenString string) (TokenClaims, error) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return TokenClaims{}, fmt.Errorf("error parsing token claims: %w", err)
	}

	result := TokenClaims{
		Subject:  claims.Subject,
		Issuer:   claims.Issuer,
		Audience: claims.Audience,
	}
	if claims.ExpiresAt != nil {
		result.Expiry = claims.ExpiresAt.Time
	}

	return result, nil
}
