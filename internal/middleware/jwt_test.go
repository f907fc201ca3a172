package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jnanasetu/auth-service/internal/utils"
)

const secret = "middleware-test-secret"

func callProtected(t *testing.T, authHeader string) (*httptest.ResponseRecorder, string) {
	t.Helper()
	e := echo.New()
	var gotEmail string
	h := JWTAuth(secret)(func(c echo.Context) error {
		gotEmail, _ = c.Get("email").(string)
		return c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	return rec, gotEmail
}

func TestJWTAuthAcceptsValidToken(t *testing.T) {
	tok, err := utils.IssueToken(secret, jwt.MapClaims{"sub": "alice@example.com"}, time.Hour)
	require.NoError(t, err)

	rec, email := callProtected(t, "Bearer "+tok)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice@example.com", email)
}

func TestJWTAuthRejections(t *testing.T) {
	expired, err := utils.IssueToken(secret, jwt.MapClaims{"sub": "alice@example.com"}, -time.Minute)
	require.NoError(t, err)
	foreign, err := utils.IssueToken("other-secret", jwt.MapClaims{"sub": "alice@example.com"}, time.Hour)
	require.NoError(t, err)
	reset, err := utils.IssueToken(secret, jwt.MapClaims{"sub": "alice@example.com", "purpose": "reset"}, time.Hour)
	require.NoError(t, err)
	noSubject, err := utils.IssueToken(secret, jwt.MapClaims{}, time.Hour)
	require.NoError(t, err)

	cases := map[string]string{
		"missing header": "",
		"not bearer":     "Basic abc",
		"garbage":        "Bearer not.a.jwt",
		"expired":        "Bearer " + expired,
		"wrong secret":   "Bearer " + foreign,
		"reset purpose":  "Bearer " + reset,
		"no subject":     "Bearer " + noSubject,
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			rec, _ := callProtected(t, header)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}
