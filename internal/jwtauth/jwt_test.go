package jwtauth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func signToken(t *testing.T, role string, method jwt.SigningMethod) string {
	t.Helper()
	token := jwt.NewWithClaims(method, jwt.MapClaims{
		"sub":  "user-1",
		"role": role,
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString(testSecret)
	require.NoError(t, err)
	return signed
}

func callProtected(t *testing.T, configure func(*http.Request)) error {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/products", nil)
	configure(req)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	m := &Middleware{JWTSecret: testSecret}
	handler := m.RequireAdmin(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return handler(c)
}

func requireHTTPError(t *testing.T, err error, code int) {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected HTTPError, got %v", err)
	require.Equal(t, code, he.Code)
}

func TestRequireAdminAcceptsBearerToken(t *testing.T) {
	token := signToken(t, "admin", jwt.SigningMethodHS256)
	err := callProtected(t, func(req *http.Request) {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	})
	require.NoError(t, err)
}

func TestRequireAdminAcceptsCookie(t *testing.T) {
	token := signToken(t, "admin", jwt.SigningMethodHS256)
	err := callProtected(t, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: "accessToken", Value: token})
	})
	require.NoError(t, err)
}

func TestRequireAdminMissingToken(t *testing.T) {
	err := callProtected(t, func(req *http.Request) {})
	requireHTTPError(t, err, http.StatusUnauthorized)
}

func TestRequireAdminRejectsNonAdminRole(t *testing.T) {
	token := signToken(t, "customer", jwt.SigningMethodHS256)
	err := callProtected(t, func(req *http.Request) {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	})
	requireHTTPError(t, err, http.StatusForbidden)
}

func TestRequireAdminRejectsWrongSecret(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user-1", "role": "admin", "exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("other-secret"))
	require.NoError(t, err)

	err = callProtected(t, func(req *http.Request) {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+signed)
	})
	requireHTTPError(t, err, http.StatusUnauthorized)
}

func TestRequireAdminRejectsExpiredToken(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user-1", "role": "admin", "exp": time.Now().Add(-time.Hour).Unix(),
	})
	signed, err := token.SignedString(testSecret)
	require.NoError(t, err)

	err = callProtected(t, func(req *http.Request) {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+signed)
	})
	requireHTTPError(t, err, http.StatusUnauthorized)
}
