// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities used across
// different parts of the application: HTTP response writing, the shared
// resty HTTP client, HMAC signing, bearer/JWT token inspection and random
// token generation.
package utils
