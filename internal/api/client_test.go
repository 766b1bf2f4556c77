package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrsuite/portal-go/internal/config"
)

func newClient(t *testing.T, baseURL string, auth config.AuthConfig) *Client {
	t.Helper()
	client, err := NewClient(config.PortalConfig{BaseURL: baseURL, Timeout: 5 * time.Second}, auth)
	require.NoError(t, err)
	return client
}

func signToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok, err := jwt.NewBuilder().
		Subject("1001").
		Expiration(exp).
		Build()
	require.NoError(t, err)
	signed, err := jwt.Sign(tok, jwt.WithKey(jwa.HS256, []byte("test-secret")))
	require.NoError(t, err)
	return string(signed)
}

func TestNewClient_RejectsExpiredBearerToken(t *testing.T) {
	_, err := NewClient(
		config.PortalConfig{BaseURL: "http://localhost", Timeout: time.Second},
		config.AuthConfig{BearerToken: signToken(t, time.Now().Add(-time.Hour))},
	)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestNewClient_AcceptsLiveAndOpaqueTokens(t *testing.T) {
	_, err := NewClient(
		config.PortalConfig{BaseURL: "http://localhost", Timeout: time.Second},
		config.AuthConfig{BearerToken: signToken(t, time.Now().Add(time.Hour))},
	)
	require.NoError(t, err)

	_, err = NewClient(
		config.PortalConfig{BaseURL: "http://localhost", Timeout: time.Second},
		config.AuthConfig{BearerToken: "opaque-session-token"},
	)
	require.NoError(t, err)
}

func TestDo_SendsCSRFOnMutatingRequestsOnly(t *testing.T) {
	var gotHeader string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Get("X-CSRFToken")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": true}`))
	}))
	defer ts.Close()

	client := newClient(t, ts.URL, config.AuthConfig{CSRFToken: "abc123"})
	ctx := context.Background()

	require.NoError(t, client.Get(ctx, "/leave/api/check-approver/", nil, nil))
	assert.Empty(t, gotHeader)

	require.NoError(t, client.PostJSON(ctx, "/leave/apply/", map[string]string{"reason": "x"}, nil))
	assert.Equal(t, "abc123", gotHeader)
}

func TestDo_FallsBackToCSRFCookie(t *testing.T) {
	var gotHeader string
	mux := http.NewServeMux()
	mux.HandleFunc("/login/", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "csrftoken", Value: "from-cookie", Path: "/"})
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": true}`))
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Get("X-CSRFToken")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": true}`))
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	client := newClient(t, ts.URL, config.AuthConfig{})
	ctx := context.Background()

	require.NoError(t, client.Get(ctx, "/login/", nil, nil))
	require.NoError(t, client.PostForm(ctx, "/leave/apply/", url.Values{"reason": {"x"}}, nil))
	assert.Equal(t, "from-cookie", gotHeader)
}

func TestDecode_NonOKStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"success": false, "error": "CSRF token missing or incorrect"}`))
	}))
	defer ts.Close()

	client := newClient(t, ts.URL, config.AuthConfig{})
	err := client.PostJSON(context.Background(), "/leave/apply/", nil, nil)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	assert.Equal(t, "CSRF token missing or incorrect", apiErr.Message)
}

func TestDecode_SuccessFalseEnvelope(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": false, "message": "duplicate entry"}`))
	}))
	defer ts.Close()

	client := newClient(t, ts.URL, config.AuthConfig{})
	err := client.PostJSON(context.Background(), "/calendar/timelogs/add/", nil, nil)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusOK, apiErr.StatusCode)
	assert.Equal(t, "duplicate entry", apiErr.Message)
}

func TestDecode_NonJSONErrorBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer ts.Close()

	client := newClient(t, ts.URL, config.AuthConfig{})
	err := client.Get(context.Background(), "/finance/employees/", nil, nil)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, "Bad Gateway", apiErr.Message)
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(&Error{StatusCode: 404, Message: "not found"}))
	assert.False(t, IsNotFound(&Error{StatusCode: 403}))
	assert.False(t, IsNotFound(errors.New("not found")))
}

func TestGet_DecodesBodyIntoOut(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "2024", r.URL.Query().Get("year"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": true, "is_approver": true}`))
	}))
	defer ts.Close()

	client := newClient(t, ts.URL, config.AuthConfig{})

	var out struct {
		IsApprover bool `json:"is_approver"`
	}
	query := url.Values{"year": {"2024"}}
	require.NoError(t, client.Get(context.Background(), "/leave/api/check-approver/", query, &out))
	assert.True(t, out.IsApprover)
}

func TestDo_SendsBearerToken(t *testing.T) {
	token := signToken(t, time.Now().Add(time.Hour))
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer "+token, r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": true}`))
	}))
	defer ts.Close()

	client := newClient(t, ts.URL, config.AuthConfig{BearerToken: token})
	require.NoError(t, client.Get(context.Background(), "/finance/employees/", nil, nil))
}
