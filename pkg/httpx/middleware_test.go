package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/restbook/pkg/httpx"
	"github.com/aussiebroadwan/restbook/pkg/jwtx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestChainOrder(t *testing.T) {
	var order []string
	mark := func(name string) httpx.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := httpx.Chain(okHandler, mark("outer"), nil, mark("inner"))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, []string{"outer", "inner"}, order)
}

func TestAuthnMiddleware(t *testing.T) {
	signer, err := jwtx.NewHMACSigner(jwtx.HMACConfig{Secret: []byte("test-secret-test-secret-test-sec")})
	require.NoError(t, err)

	var gotUser string
	h := httpx.AuthnMiddleware(signer)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser = httpx.UsernameFromContext(r.Context())
		claims, ok := httpx.ClaimsFromContext(r.Context())
		require.True(t, ok)
		require.Equal(t, gotUser, claims.Subject)
		w.WriteHeader(http.StatusNoContent)
	}))

	serve := func(authz string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if authz != "" {
			req.Header.Set("Authorization", authz)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	t.Run("valid token", func(t *testing.T) {
		token, err := signer.IssueAccessToken(jwtx.NewClaims("alice"), time.Minute)
		require.NoError(t, err)

		rec := serve("Bearer " + token)
		require.Equal(t, http.StatusNoContent, rec.Code)
		require.Equal(t, "alice", gotUser)
	})

	t.Run("missing header", func(t *testing.T) {
		rec := serve("")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Header().Get("WWW-Authenticate"), `error="invalid_token"`)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		require.Equal(t, http.StatusUnauthorized, serve("Basic YWxpY2U6cHc=").Code)
	})

	t.Run("expired token", func(t *testing.T) {
		past, err := jwtx.NewHMACSigner(jwtx.HMACConfig{
			Secret: []byte("test-secret-test-secret-test-sec"),
			Now:    func() time.Time { return time.Now().Add(-time.Hour) },
		})
		require.NoError(t, err)
		token, err := past.IssueAccessToken(jwtx.NewClaims("alice"), time.Minute)
		require.NoError(t, err)

		rec := serve("Bearer " + token)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Header().Get("WWW-Authenticate"), "token expired")
	})
}

type loginBody struct {
	UserName string `json:"userName" validate:"notblank"`
	Password string `json:"password" validate:"required"`
}

func TestDecodeAndValidate(t *testing.T) {
	decode := func(body string) error {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		var dst loginBody
		return httpx.DecodeAndValidate(req, &dst)
	}

	t.Run("valid", func(t *testing.T) {
		require.NoError(t, decode(`{"userName":"alice","password":"pw"}`))
	})

	t.Run("empty body", func(t *testing.T) {
		require.ErrorIs(t, decode(""), httpx.ErrEmptyBody)
		require.ErrorIs(t, decode("null"), httpx.ErrEmptyBody)
	})

	t.Run("malformed", func(t *testing.T) {
		err := decode(`{"userName":`)
		require.Error(t, err)
		require.NotErrorIs(t, err, httpx.ErrEmptyBody)
	})

	t.Run("blank fields", func(t *testing.T) {
		err := decode(`{"userName":"   "}`)
		var ve *httpx.ValidationError
		require.ErrorAs(t, err, &ve)
		require.Equal(t, map[string]string{
			"userName": "is required",
			"password": "is required",
		}, ve.Fields())
	})

	t.Run("error response", func(t *testing.T) {
		rec := httptest.NewRecorder()
		httpx.WriteDecodeError(rec, decode(`{}`))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), `"fields"`)
	})
}

func TestMetricsMiddleware(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := httpx.NewMetrics("restbook-test", reg)

	mux := http.NewServeMux()
	mux.Handle("GET /items/{id}", okHandler)
	h := httpx.Chain(mux, m.Middleware())

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/items/1", nil))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rec.Body.String()

	require.Contains(t, body, `http_requests_total{method="GET",route="GET /items/{id}",service="restbook-test",status="200"} 1`)
	require.Contains(t, body, `route="unmatched"`)
}

func TestCORS(t *testing.T) {
	require.Nil(t, httpx.CORS(nil))

	h := httpx.Chain(okHandler, httpx.CORS([]string{"http://localhost:3000"}))

	req := httptest.NewRequest(http.MethodOptions, "/api/auth/v1/signin", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}
