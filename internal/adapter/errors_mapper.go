// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"golang.org/x/oauth2"
)

// mapHTTPError returns nil for 2xx responses and a *ProviderError carrying
// the status and trimmed body otherwise.
func mapHTTPError(step ProviderStep, resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	return &ProviderError{
		Step:       step,
		StatusCode: resp.StatusCode(),
		Body:       body,
	}
}

// mapTransportError wraps an error returned before any response was read.
func mapTransportError(step ProviderStep, err error) error {
	var pErr *ProviderError
	if errors.As(err, &pErr) {
		return pErr
	}

	return &ProviderError{
		Step:    step,
		Timeout: isTimeout(err),
		Err:     err,
	}
}

// mapTokenError converts an oauth2 token endpoint failure.
func mapTokenError(err error) error {
	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) {
		pErr := &ProviderError{
			Step: StepToken,
			Body: strings.TrimSpace(string(retrieveErr.Body)),
			Err:  err,
		}
		if retrieveErr.Response != nil {
			pErr.StatusCode = retrieveErr.Response.StatusCode
		}
		return pErr
	}

	return mapTransportError(StepToken, err)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
