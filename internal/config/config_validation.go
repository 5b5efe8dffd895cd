// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	db := cfg.Storage.DB
	if db.DSN == "" && (db.Host == "" || db.Database == "") {
		return fmt.Errorf("%w: PG_DSN or PG_HOST and PG_DATABASE are required", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	a := cfg.Adapter
	if a.ClientID == "" || a.ClientSecret == "" {
		return fmt.Errorf("%w: client id and secret are required", ErrInvalidAdapterConfigs)
	}
	for name, raw := range map[string]string{"token url": a.TokenURL, "audience": a.Audience} {
		if err := validateAbsoluteURL(raw); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidAdapterConfigs, name, err)
		}
	}

	if cfg.Media.PrivateKey == "" {
		return fmt.Errorf("%w: private key is required", ErrInvalidMediaConfigs)
	}

	return nil
}

func validateAbsoluteURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("empty url")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("url must include scheme and host")
	}

	return nil
}
