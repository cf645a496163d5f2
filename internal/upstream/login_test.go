package upstream_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/controldoc/web/internal/domain"
	"github.com/controldoc/web/internal/upstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	t.Run("posts JSON credentials and returns the access token", func(t *testing.T) {
		var (
			sent        domain.Credentials
			method      string
			path        string
			contentType string
		)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			method, path, contentType = r.Method, r.URL.Path, r.Header.Get("Content-Type")
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&sent))
			_, _ = w.Write([]byte(`{"access_token": "tok123", "token_type": "bearer"}`))
		}))
		defer srv.Close()

		token, err := upstream.New(srv.URL, 0).Login(context.Background(), "a@b.com", "x")

		require.NoError(t, err)
		assert.Equal(t, "tok123", token)
		assert.Equal(t, http.MethodPost, method)
		assert.Equal(t, "/auth/login", path)
		assert.Equal(t, "application/json", contentType)
		assert.Equal(t, domain.Credentials{Email: "a@b.com", Password: "x"}, sent)
	})

	t.Run("rejection carries the detail message", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail": "Credenciales inválidas"}`))
		}))
		defer srv.Close()

		_, err := upstream.New(srv.URL, 0).Login(context.Background(), "a@b.com", "bad")

		assert.ErrorIs(t, err, upstream.ErrUpstreamUnavailable)
		detail, ok := upstream.Detail(err)
		assert.True(t, ok)
		assert.Equal(t, "Credenciales inválidas", detail)
	})

	t.Run("rejection without detail", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error": "nope"}`))
		}))
		defer srv.Close()

		_, err := upstream.New(srv.URL, 0).Login(context.Background(), "a@b.com", "bad")

		assert.ErrorIs(t, err, upstream.ErrUpstreamUnavailable)
		_, ok := upstream.Detail(err)
		assert.False(t, ok)
	})

	t.Run("validation detail lists are not shown as text", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"detail": [{"loc": ["body", "email"], "msg": "value is not a valid email address"}]}`))
		}))
		defer srv.Close()

		_, err := upstream.New(srv.URL, 0).Login(context.Background(), "nope", "x")

		assert.ErrorIs(t, err, upstream.ErrUpstreamUnavailable)
		_, ok := upstream.Detail(err)
		assert.False(t, ok)
	})

	t.Run("success without token is malformed", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"token_type": "bearer"}`))
		}))
		defer srv.Close()

		_, err := upstream.New(srv.URL, 0).Login(context.Background(), "a@b.com", "x")
		assert.ErrorIs(t, err, upstream.ErrMalformedResponse)
	})

	t.Run("relative base resolves against the request origin", func(t *testing.T) {
		var path string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path = r.URL.Path
			_, _ = w.Write([]byte(`{"access_token": "tok"}`))
		}))
		defer srv.Close()

		origin, err := url.Parse(srv.URL)
		require.NoError(t, err)
		ctx := upstream.WithOrigin(context.Background(), origin)

		token, err := upstream.New("/api", 0).Login(ctx, "a@b.com", "x")
		require.NoError(t, err)
		assert.Equal(t, "tok", token)
		assert.Equal(t, "/api/auth/login", path)
	})

	t.Run("empty base without origin is a network failure", func(t *testing.T) {
		_, err := upstream.New("", 0).Login(context.Background(), "a@b.com", "x")
		assert.ErrorIs(t, err, upstream.ErrNetworkFailure)
	})
}

func TestHealth(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/health", r.URL.Path)
			_, _ = w.Write([]byte(`{"status": "ok"}`))
		}))
		defer srv.Close()

		assert.NoError(t, upstream.New(srv.URL+"/", 0).Health(context.Background()))
	})

	t.Run("unexpected status value", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"status": "degraded"}`))
		}))
		defer srv.Close()

		assert.ErrorIs(t, upstream.New(srv.URL, 0).Health(context.Background()), upstream.ErrMalformedResponse)
	})
}

func TestError(t *testing.T) {
	err := &upstream.Error{Kind: upstream.KindUpstreamUnavailable, Op: "login", Status: 401, Detail: "Credenciales inválidas"}

	assert.Equal(t, "upstream login: upstream_unavailable (status 401): Credenciales inválidas", err.Error())
	assert.ErrorIs(t, err, upstream.ErrUpstreamUnavailable)
	assert.NotErrorIs(t, err, upstream.ErrNetworkFailure)
}
