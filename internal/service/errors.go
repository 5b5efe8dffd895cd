// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when a request is rejected before
	// reaching storage or the identity provider.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrCustomerNotFound is returned when a lookup matched no record or an
	// update or delete affected zero rows.
	ErrCustomerNotFound = errors.New("customer not found")

	ErrInfoIsNotSpecified      = errors.New("app info is not specified")
	ErrMediaKeyIsNotSpecified  = errors.New("media private key is not specified")
	ErrStorageIsNotInitialized = errors.New("storage is not initialized")
)
