// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
	"hash"
	"sync"
)

// Signer computes keyed HMAC-SHA1 signatures. Hash instances are pooled
// per signer so concurrent requests do not allocate a new HMAC each time.
type Signer struct {
	pool sync.Pool
}

// NewSigner returns a Signer that signs with key.
//
// Example usage:
//
//	signer := utils.NewSigner("private_key")
//	signature := signer.Sign(token + expire)
func NewSigner(key string) *Signer {
	keyBytes := []byte(key)
	return &Signer{
		pool: sync.Pool{
			New: func() any {
				return hmac.New(sha1.New, keyBytes)
			},
		},
	}
}

// Sum returns the raw HMAC-SHA1 digest of data.
func (s *Signer) Sum(data []byte) []byte {
	h := s.pool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	s.pool.Put(h)

	return sum
}

// Sign returns the lowercase hex HMAC-SHA1 digest of data.
func (s *Signer) Sign(data string) string {
	return hex.EncodeToString(s.Sum([]byte(data)))
}
