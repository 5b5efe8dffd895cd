// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strconv"
	"time"

	"github.com/myj-nikhil/earthlings-db-api/internal/config"
	"github.com/myj-nikhil/earthlings-db-api/internal/logger"
	"github.com/myj-nikhil/earthlings-db-api/internal/utils"
	"github.com/myj-nikhil/earthlings-db-api/models"
)

const defaultUploadExpire = 30 * time.Minute

type mediaAuthService struct {
	signer *utils.Signer
	tokens TokenGenerator
	expire time.Duration
	now    func() time.Time

	logger *logger.Logger
}

// NewMediaAuthService returns a MediaAuthService signing with
// cfg.PrivateKey. Parameters stay valid for cfg.Expire, 30 minutes when
// unset.
func NewMediaAuthService(cfg config.Media, logger *logger.Logger) (MediaAuthService, error) {
	if cfg.PrivateKey == "" {
		return nil, ErrMediaKeyIsNotSpecified
	}

	return newMediaAuthService(cfg, utils.NewUUIDGenerator(), time.Now, logger), nil
}

func newMediaAuthService(cfg config.Media, tokens TokenGenerator, now func() time.Time, logger *logger.Logger) *mediaAuthService {
	expire := cfg.Expire
	if expire <= 0 {
		expire = defaultUploadExpire
	}

	return &mediaAuthService{
		signer: utils.NewSigner(cfg.PrivateKey),
		tokens: tokens,
		expire: expire,
		now:    now,
		logger: logger,
	}
}

// GetUploadAuthParams returns a fresh random token, its expiry as unix
// seconds and the hex HMAC-SHA1 of token followed by expire.
func (s *mediaAuthService) GetUploadAuthParams(ctx context.Context) (models.UploadAuthParams, error) {
	token := s.tokens.Generate()
	expire := s.now().Add(s.expire).Unix()

	params := models.UploadAuthParams{
		Token:     token,
		Expire:    expire,
		Signature: s.signer.Sign(token + strconv.FormatInt(expire, 10)),
	}

	logger.FromContext(ctx).Debug().Str("func", "mediaAuthService.GetUploadAuthParams").Int64("expire", expire).Msg("issued upload auth params")
	return params, nil
}
