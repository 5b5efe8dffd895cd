// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

var (
	// ErrTokenAcquisition marks a failure of the client-credentials step.
	ErrTokenAcquisition = errors.New("identity provider token acquisition failed")

	// ErrUserPatch marks a failure of the user PATCH step.
	ErrUserPatch = errors.New("identity provider user patch failed")

	// ErrProviderTimeout is matched in addition to the step sentinel when the
	// provider did not answer in time.
	ErrProviderTimeout = errors.New("identity provider timed out")

	// ErrInvalidUserID is returned before any outbound call when the user id
	// is empty.
	ErrInvalidUserID = errors.New("identity provider user id is empty")

	// ErrInvalidAdapterConfig is returned by the constructor for unusable
	// provider settings.
	ErrInvalidAdapterConfig = errors.New("invalid identity provider configuration")
)

// ProviderStep names the outbound call that failed.
type ProviderStep string

const (
	StepToken ProviderStep = "token"
	StepPatch ProviderStep = "patch"
)

func (s ProviderStep) sentinel() error {
	if s == StepToken {
		return ErrTokenAcquisition
	}
	return ErrUserPatch
}

// ProviderError describes a failed call to the identity provider.
//
// StatusCode and Body are set when the provider answered with a non-2xx
// status. Err holds the transport or decoding error otherwise.
type ProviderError struct {
	Step       ProviderStep
	StatusCode int
	Body       string
	Timeout    bool
	Err        error
}

func (e *ProviderError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Body != "":
		return fmt.Sprintf("%s: http %d: %s", e.Step.sentinel(), e.StatusCode, e.Body)
	case e.StatusCode != 0:
		return fmt.Sprintf("%s: http %d", e.Step.sentinel(), e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Step.sentinel(), e.Err)
	}
	return e.Step.sentinel().Error()
}

// Unwrap exposes the step sentinel, ErrProviderTimeout when applicable and
// the underlying cause.
func (e *ProviderError) Unwrap() []error {
	errs := []error{e.Step.sentinel()}
	if e.Timeout {
		errs = append(errs, ErrProviderTimeout)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// Detail returns the upstream detail worth showing to the caller: the
// provider's response body when there is one, otherwise the cause.
func (e *ProviderError) Detail() string {
	if e.Body != "" {
		return e.Body
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return ""
}
