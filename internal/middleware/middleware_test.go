package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

const (
	testSecret = "test-secret"
	testIssuer = "seat-reserve"

	userOne  = "0b6f5a0e-4c1d-4a7e-9a53-1f2d3c4b5a61"
	adminOne = "6a1e2b3c-4d5e-4f60-8172-93a4b5c6d7e8"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func signToken(t *testing.T, secret string, claims jwt.RegisteredClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func validClaims(sub string) jwt.RegisteredClaims {
	return jwt.RegisteredClaims{
		Subject:   sub,
		Issuer:    testIssuer,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
}

type fakeChecker struct {
	admins map[string]bool
	err    error
}

func (f fakeChecker) IsAdmin(_ context.Context, userID string) (bool, error) {
	return f.admins[userID], f.err
}

func newRouter(t *testing.T, mw ...ginext.HandlerFunc) http.Handler {
	t.Helper()
	r := ginext.New("test")
	r.Use(mw...)
	r.GET("/whoami", func(c *ginext.Context) {
		c.String(http.StatusOK, UserID(c))
	})
	return r
}

func do(r http.Handler, authHeader string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestAuth_ValidToken(t *testing.T) {
	r := newRouter(t, Auth(testSecret, testIssuer, newTestLogger(t)))

	w := do(r, "Bearer "+signToken(t, testSecret, validClaims(userOne)))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, userOne, w.Body.String())
}

func TestAuth_Rejects(t *testing.T) {
	expired := validClaims(userOne)
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	wrongIssuer := validClaims(userOne)
	wrongIssuer.Issuer = "someone-else"

	tests := []struct {
		name   string
		header string
	}{
		{name: "no header", header: ""},
		{name: "wrong scheme", header: "Basic abc"},
		{name: "empty token", header: "Bearer  "},
		{name: "garbage", header: "Bearer not.a.jwt"},
		{name: "wrong secret", header: "Bearer " + signToken(t, "other", validClaims(userOne))},
		{name: "expired", header: "Bearer " + signToken(t, testSecret, expired)},
		{name: "wrong issuer", header: "Bearer " + signToken(t, testSecret, wrongIssuer)},
		{name: "no subject", header: "Bearer " + signToken(t, testSecret, validClaims(""))},
		{name: "subject not a uuid", header: "Bearer " + signToken(t, testSecret, validClaims("alice"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRouter(t, Auth(testSecret, testIssuer, newTestLogger(t)))

			w := do(r, tt.header)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestAuth_RejectsOtherAlgorithms(t *testing.T) {
	r := newRouter(t, Auth(testSecret, testIssuer, newTestLogger(t)))

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, validClaims(userOne)).SignedString([]byte(testSecret))
	require.NoError(t, err)

	w := do(r, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdmin(t *testing.T) {
	log := newTestLogger(t)
	checker := fakeChecker{admins: map[string]bool{adminOne: true}}

	tests := []struct {
		name    string
		checker AdminChecker
		sub     string
		want    int
	}{
		{name: "admin", checker: checker, sub: adminOne, want: http.StatusOK},
		{name: "regular user", checker: checker, sub: userOne, want: http.StatusForbidden},
		{name: "check fails", checker: fakeChecker{err: errors.New("db down")}, sub: adminOne, want: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRouter(t, Auth(testSecret, testIssuer, log), RequireAdmin(tt.checker, log))

			w := do(r, "Bearer "+signToken(t, testSecret, validClaims(tt.sub)))

			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestRequireAdmin_WithoutAuth(t *testing.T) {
	r := newRouter(t, RequireAdmin(fakeChecker{}, newTestLogger(t)))

	w := do(r, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequestID(t *testing.T) {
	r := newRouter(t, RequestID(), RequestLogger(newTestLogger(t)))

	w := do(r, "")
	generated := w.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(generated)
	assert.NoError(t, err)

	incoming := uuid.NewString()
	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(RequestIDHeader, incoming)
	r.ServeHTTP(w, req)
	assert.Equal(t, incoming, w.Header().Get(RequestIDHeader))
}

func TestRecovery(t *testing.T) {
	r := ginext.New("test")
	r.Use(Recovery(newTestLogger(t)))
	r.GET("/panic", func(*ginext.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
