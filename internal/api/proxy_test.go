package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBackendProxy_PassesPathQueryAndToken(t *testing.T) {
	var got *http.Request
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(r.Context())
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer backend.Close()

	target, err := url.Parse(backend.URL + "/api")
	require.NoError(t, err)
	proxy := NewBackendProxy(target, "secret-token")

	req := httptest.NewRequest(http.MethodGet, "/bookings?status=confirmed&room_id=101", nil)
	rr := httptest.NewRecorder()
	proxy.ServeHTTP(rr, req)

	require.NotNil(t, got)
	require.Equal(t, "/api/bookings", got.URL.Path)
	require.Equal(t, "confirmed", got.URL.Query().Get("status"))
	require.Equal(t, "101", got.URL.Query().Get("room_id"))
	require.Equal(t, "Bearer secret-token", got.Header.Get("Authorization"))

	// status and body relayed untouched
	require.Equal(t, http.StatusTeapot, rr.Code)
	body, _ := io.ReadAll(rr.Body)
	require.JSONEq(t, `{"ok":true}`, string(body))
}

func TestBackendProxy_NoTokenNoHeader(t *testing.T) {
	var auth string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
	}))
	defer backend.Close()

	target, err := url.Parse(backend.URL)
	require.NoError(t, err)
	proxy := NewBackendProxy(target, "")

	rr := httptest.NewRecorder()
	proxy.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/guests", nil))

	require.Empty(t, auth)
}

func TestBackendProxy_UnreachableBackend(t *testing.T) {
	target, err := url.Parse("http://127.0.0.1:1")
	require.NoError(t, err)
	proxy := NewBackendProxy(target, "")

	rr := httptest.NewRecorder()
	proxy.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/bookings", nil))

	require.Equal(t, http.StatusBadGateway, rr.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Equal(t, "backend unreachable", body["error"])
}
