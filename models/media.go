// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// UploadAuthParams are the signed parameters a browser needs to upload a file
// directly to the media provider.
type UploadAuthParams struct {
	Token     string `json:"token"`
	Expire    int64  `json:"expire"`
	Signature string `json:"signature"`
}
