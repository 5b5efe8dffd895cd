// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponseWriter_WriteHeaderOnce(t *testing.T) {
	tests := []struct {
		name        string
		statusCodes []int
		want        int
	}{
		{name: "single", statusCodes: []int{http.StatusCreated}, want: http.StatusCreated},
		{name: "second ignored", statusCodes: []int{http.StatusOK, http.StatusGatewayTimeout}, want: http.StatusOK},
		{name: "error then timeout", statusCodes: []int{http.StatusBadGateway, http.StatusGatewayTimeout}, want: http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			w := &responseWriter{ResponseWriter: rr}

			for _, code := range tt.statusCodes {
				w.WriteHeader(code)
			}

			assert.True(t, w.wroteHeader)
			assert.Equal(t, tt.want, w.status)
			assert.Equal(t, tt.want, rr.Code)
		})
	}
}

func TestResponseWriter_WriteImpliesOK(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	n, err := w.Write([]byte("first"))
	assert.NoError(t, err)
	assert.Equal(t, 5, n)
	_, _ = w.Write([]byte("second"))

	assert.Equal(t, http.StatusOK, w.status)
	assert.Equal(t, 11, w.size)
	assert.Equal(t, "firstsecond", rr.Body.String())
}

func TestResponseWriter_Unwrap(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	assert.Same(t, rr, w.Unwrap())
}
