// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/myj-nikhil/earthlings-db-api/internal/adapter"
	"github.com/myj-nikhil/earthlings-db-api/internal/logger"
	"github.com/myj-nikhil/earthlings-db-api/models"
)

type identityService struct {
	provider adapter.IdentityProvider

	logger *logger.Logger
}

func NewIdentityService(provider adapter.IdentityProvider, logger *logger.Logger) IdentityService {
	return &identityService{
		provider: provider,
		logger:   logger,
	}
}

// UpdateUser rejects an empty user id before any outbound call and
// otherwise forwards update.Data unchanged.
func (s *identityService) UpdateUser(ctx context.Context, update models.IdentityUserUpdate) (json.RawMessage, error) {
	if strings.TrimSpace(update.UserID) == "" {
		return nil, fmt.Errorf("%w: userId is required", ErrInvalidDataProvided)
	}

	result, err := s.provider.UpdateUser(ctx, update.UserID, update.Data)
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info().Str("func", "identityService.UpdateUser").Str("user_id", update.UserID).Msg("identity user updated")
	return result, nil
}
