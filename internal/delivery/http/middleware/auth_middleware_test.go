package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pulse/config"
	"pulse/internal/domain/constants"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-access-secret"

func newAuthTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = testSecret

	return cfg
}

func signedToken(t *testing.T, userID uuid.UUID, roles []string, secret string) string {
	t.Helper()

	claims := jwt.MapClaims{
		"sub": userID.String(),
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	if roles != nil {
		rolesClaim := make([]any, len(roles))
		for i, r := range roles {
			rolesClaim[i] = r
		}
		claims["roles"] = rolesClaim
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	return token
}

func runAuthenticated(t *testing.T, m *AuthMiddleware, authHeader string) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/resource", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}
	require.NoError(t, m.Authenticate(next)(c))

	return rec, c
}

func TestAuthMiddleware_Authenticate_SetsUserAndRoles(t *testing.T) {
	t.Parallel()

	m := NewAuthMiddleware(newAuthTestConfig())
	userID := uuid.New()

	rec, c := runAuthenticated(t, m, "Bearer "+signedToken(t, userID, []string{constants.RoleOperator}, testSecret))

	assert.Equal(t, http.StatusOK, rec.Code)

	gotID, ok := GetUserID(c)
	require.True(t, ok)
	assert.Equal(t, userID, gotID)

	roles, ok := GetRoles(c)
	require.True(t, ok)
	assert.Equal(t, []string{constants.RoleOperator}, roles)
}

func TestAuthMiddleware_Authenticate_RejectsMissingHeader(t *testing.T) {
	t.Parallel()

	m := NewAuthMiddleware(newAuthTestConfig())

	rec, _ := runAuthenticated(t, m, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_RejectsWrongSecret(t *testing.T) {
	t.Parallel()

	m := NewAuthMiddleware(newAuthTestConfig())

	rec, _ := runAuthenticated(t, m, "Bearer "+signedToken(t, uuid.New(), nil, "other-secret"))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_RequireRole_EnforcesRole(t *testing.T) {
	t.Parallel()

	m := NewAuthMiddleware(newAuthTestConfig())

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/admin/resource", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("roles", []string{constants.RoleViewer})

	next := func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}
	require.NoError(t, m.RequireRole(constants.RoleOperator)(next)(c))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuthMiddleware_RequireRole_AllowsMatchingRole(t *testing.T) {
	t.Parallel()

	m := NewAuthMiddleware(newAuthTestConfig())

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/admin/resource", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("roles", []string{constants.RoleViewer, constants.RoleOperator})

	next := func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}
	require.NoError(t, m.RequireRole(constants.RoleOperator)(next)(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}
