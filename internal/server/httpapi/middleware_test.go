package httpapi

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/anmol0706/GPC-Itarsi-sub002/internal/common"
	"github.com/anmol0706/GPC-Itarsi-sub002/internal/server/auth"
)

const (
	testSecret = "secretKey"
	testIssuer = "portal-test"
)

func testRouter(t *testing.T, required common.Role) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	group := r.Group("", bearerAuth([]byte(testSecret), testIssuer))
	group.GET("/protected", requireRole(required), func(c *gin.Context) {
		claims := mustClaims(c)
		c.JSON(http.StatusOK, gin.H{"uid": claims.UserID})
	})
	return r
}

func mintToken(t *testing.T, role common.Role) string {
	t.Helper()
	token, err := auth.GenerateToken("u-1", role, testIssuer, []byte(testSecret), time.Hour)
	require.NoError(t, err)
	return token
}

func TestBearerAuthMissingToken(t *testing.T) {
	r := testRouter(t, common.RoleTeacher)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestBearerAuthMalformedHeader(t *testing.T) {
	r := testRouter(t, common.RoleTeacher)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestBearerAuthBadSignature(t *testing.T) {
	r := testRouter(t, common.RoleTeacher)

	other, err := auth.GenerateToken("u-1", common.RoleTeacher, testIssuer, []byte("otherKey"), time.Hour)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+other)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRoleAllowsMatching(t *testing.T) {
	r := testRouter(t, common.RoleTeacher)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+mintToken(t, common.RoleTeacher))
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "u-1")
}

func TestRequireRoleRejectsOthers(t *testing.T) {
	for _, role := range []common.Role{common.RoleAdmin, common.RoleStudent, common.RoleDeveloper} {
		t.Run(string(role), func(t *testing.T) {
			r := testRouter(t, common.RoleTeacher)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", "Bearer "+mintToken(t, role))
			r.ServeHTTP(w, req)

			require.Equal(t, http.StatusForbidden, w.Code)
		})
	}
}

func TestFailStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("%w: bad input", common.ErrValidation), http.StatusBadRequest},
		{common.ErrUnauthorized, http.StatusUnauthorized},
		{common.ErrTokenExpired, http.StatusUnauthorized},
		{common.ErrForbidden, http.StatusForbidden},
		{common.ErrNotFound, http.StatusNotFound},
		{common.ErrAlreadyExists, http.StatusConflict},
		{fmt.Errorf("something else"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		fail(c, tt.err)
		require.Equal(t, tt.want, w.Code, "err=%v", tt.err)
	}
}
