// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-site-gateway/internal/config"
	"github.com/MKhiriev/go-site-gateway/internal/logger"
	"github.com/MKhiriev/go-site-gateway/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter builds an httpGatewayAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *httpGatewayAdapter {
	t.Helper()
	adapterCfg := config.Adapter{HTTPAddress: serverURL, RequestTimeout: time.Second}

	a, err := NewHTTPGatewayAdapter(adapterCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpGatewayAdapter)
}

var taxonomyDataset = models.Dataset{
	Name:        models.DatasetBlogTags,
	Path:        "/api/blog/taxonomies",
	QueryParams: map[string]string{"tax": "tags"},
	Subject:     "taxonomies-sub",
}

// ── Fetch ───────────────────────────────────────────────────────────────────

func TestFetch_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/blog/taxonomies", r.URL.Path)
		assert.Equal(t, "tags", r.URL.Query().Get("tax"))
		assert.Equal(t, "Bearer signed-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"_id":"t1"},{"_id":"t2"}]`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	items, err := a.Fetch(context.Background(), taxonomyDataset, "signed-token")

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.JSONEq(t, `{"_id":"t1"}`, string(items[0]))
}

func TestFetch_EmptyAndNullBodies(t *testing.T) {
	for _, body := range []string{`[]`, `null`} {
		t.Run(body, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(body))
			}))
			defer srv.Close()

			items, err := newTestAdapter(t, srv.URL).Fetch(context.Background(), taxonomyDataset, "token")

			require.NoError(t, err)
			assert.NotNil(t, items)
			assert.Empty(t, items)
		})
	}
}

func TestFetch_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
		wantMsg string
	}{
		{"invalid token", http.StatusBadRequest, `{"error":"Unauthorized: Invalid token."}`, ErrUnauthorized, "Unauthorized: Invalid token."},
		{"missing header", http.StatusBadRequest, `{"error":"Unauthorized: missing Authorization header"}`, ErrUnauthorized, "missing Authorization header"},
		{"bad selector", http.StatusBadRequest, `{"error":"Invalid taxonomy name."}`, ErrGatewayRejected, "Invalid taxonomy name."},
		{"downstream failure", http.StatusBadRequest, `{"error":"failed to retrieve blog tags"}`, ErrGatewayRejected, "failed to retrieve blog tags"},
		{"401", http.StatusUnauthorized, `nope`, ErrUnauthorized, "nope"},
		{"404", http.StatusNotFound, ``, ErrNotFound, ""},
		{"500 plain body", http.StatusInternalServerError, `boom`, ErrUnexpectedStatus, "http 500: boom"},
		{"502 empty body", http.StatusBadGateway, ``, ErrUnexpectedStatus, "Bad Gateway"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := newTestAdapter(t, srv.URL).Fetch(context.Background(), taxonomyDataset, "token")

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestFetch_NotAnArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"items":[]}`))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Fetch(context.Background(), taxonomyDataset, "token")

	assert.ErrorIs(t, err, ErrDecodingResponse)
}

func TestFetch_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestAdapter(t, url).Fetch(context.Background(), taxonomyDataset, "token")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "blog_tags request")
}

// ── NewHTTPGatewayAdapter ───────────────────────────────────────────────────

func TestNewHTTPGatewayAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPGatewayAdapter(config.Adapter{HTTPAddress: "   "}, logger.Nop())
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "localhost:8080", want: "http://localhost:8080"},
		{raw: "https://gateway.example.com/", want: "https://gateway.example.com"},
		{raw: " http://127.0.0.1:9000 ", want: "http://127.0.0.1:9000"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
