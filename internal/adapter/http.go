// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/myj-nikhil/earthlings-db-api/internal/config"
	"github.com/myj-nikhil/earthlings-db-api/internal/logger"
	"github.com/myj-nikhil/earthlings-db-api/internal/utils"
	"github.com/myj-nikhil/earthlings-db-api/models"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

type httpIdentityProvider struct {
	client *utils.HTTPClient
	oauth  clientcredentials.Config

	// baseURL is the audience with a guaranteed trailing slash.
	baseURL string

	logger *logger.Logger
}

// NewHTTPIdentityProvider constructs the HTTP implementation of
// [IdentityProvider]. The token request and the PATCH share one resty
// client whose timeout is cfg.RequestTimeout.
//
// Returns an error if cfg.Audience or cfg.TokenURL is not an absolute URL.
func NewHTTPIdentityProvider(cfg config.Adapter, logger *logger.Logger) (IdentityProvider, error) {
	baseURL, err := normalizeBaseURL(cfg.Audience)
	if err != nil {
		return nil, fmt.Errorf("%w: audience: %w", ErrInvalidAdapterConfig, err)
	}
	if _, err = normalizeBaseURL(cfg.TokenURL); err != nil {
		return nil, fmt.Errorf("%w: token url: %w", ErrInvalidAdapterConfig, err)
	}

	client := utils.NewHTTPClient()
	client.SetTimeout(cfg.RequestTimeout)

	return &httpIdentityProvider{
		client: client,
		oauth: clientcredentials.Config{
			ClientID:       cfg.ClientID,
			ClientSecret:   cfg.ClientSecret,
			TokenURL:       cfg.TokenURL,
			EndpointParams: url.Values{"audience": []string{cfg.Audience}},
			AuthStyle:      oauth2.AuthStyleInParams,
		},
		baseURL: baseURL,
		logger:  logger,
	}, nil
}

// normalizeBaseURL requires an absolute http(s) URL and returns it with a
// trailing slash.
func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("address must include host and http(s) scheme")
	}

	return strings.TrimRight(u.String(), "/") + "/", nil
}

// FetchToken implements [IdentityProvider].
func (p *httpIdentityProvider) FetchToken(ctx context.Context) (models.ProviderAccessToken, error) {
	log := logger.FromContext(ctx)

	tok, err := p.oauth.Token(p.client.OAuth2Context(ctx))
	if err != nil {
		mapped := mapTokenError(err)
		log.Err(mapped).Str("func", "httpIdentityProvider.FetchToken").Msg("failed to acquire provider token")
		return models.ProviderAccessToken{}, mapped
	}

	token := models.ProviderAccessToken{
		AccessToken: tok.AccessToken,
		TokenType:   tok.TokenType,
		Expiry:      tok.Expiry,
	}

	claims, err := utils.InspectJWT(tok.AccessToken)
	if err != nil {
		log.Debug().Str("func", "httpIdentityProvider.FetchToken").Msg("provider token is opaque")
	} else {
		token.Subject = claims.Subject
		if token.Expiry.IsZero() {
			token.Expiry = claims.Expiry
		}
	}

	log.Info().Str("func", "httpIdentityProvider.FetchToken").
		Str("subject", token.Subject).
		Time("expiry", token.Expiry).
		Msg("acquired provider token")

	return token, nil
}

// PatchUser implements [IdentityProvider]. An empty or null data payload is
// sent as an empty JSON object.
func (p *httpIdentityProvider) PatchUser(ctx context.Context, token models.ProviderAccessToken, userID string, data json.RawMessage) (json.RawMessage, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(userID) == "" {
		return nil, ErrInvalidUserID
	}
	if isEmptyPayload(data) {
		data = json.RawMessage("{}")
	}

	start := time.Now()
	resp, err := p.client.R().
		SetContext(ctx).
		SetHeader("Authorization", token.AuthorizationHeader()).
		SetHeader("Content-Type", "application/json").
		SetHeader("Cache-Control", "no-cache").
		SetBody([]byte(data)).
		Patch(p.userURL(userID))
	if err != nil {
		mapped := mapTransportError(StepPatch, err)
		log.Err(mapped).Str("func", "httpIdentityProvider.PatchUser").Str("user_id", userID).Msg("provider patch request failed")
		return nil, mapped
	}
	if err = mapHTTPError(StepPatch, resp); err != nil {
		log.Err(err).Str("func", "httpIdentityProvider.PatchUser").
			Str("user_id", userID).
			Int("status", resp.StatusCode()).
			Msg("provider rejected user patch")
		return nil, err
	}

	log.Info().Str("func", "httpIdentityProvider.PatchUser").
		Str("user_id", userID).
		Int("status", resp.StatusCode()).
		Dur("duration", time.Since(start)).
		Msg("provider user patched")

	body := resp.Body()
	if len(body) == 0 {
		return nil, nil
	}
	return json.RawMessage(body), nil
}

func isEmptyPayload(data json.RawMessage) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// UpdateUser implements [IdentityProvider].
func (p *httpIdentityProvider) UpdateUser(ctx context.Context, userID string, data json.RawMessage) (json.RawMessage, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrInvalidUserID
	}

	token, err := p.FetchToken(ctx)
	if err != nil {
		return nil, err
	}

	return p.PatchUser(ctx, token, userID, data)
}

func (p *httpIdentityProvider) userURL(userID string) string {
	return p.baseURL + "users/" + url.PathEscape(userID)
}
