package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/mine", RequireAuth(), RequireRole(RolePatient), func(c *gin.Context) {
		claims := CurrentClaims(c)
		c.JSON(http.StatusOK, gin.H{"id": claims.ID, "role": claims.Role})
	})
	r.GET("/admin", RequireAuth(), RequireRole(RoleAdmin), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func doRequest(r *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/mine", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestMissingTokenIsUnauthorized(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := testRouter()

	w := doRequest(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Access denied")
}

func TestBearerWithoutTokenIsUnauthorized(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := testRouter()

	w := doRequest(r, "Bearer")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGarbageTokenIsForbidden(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := testRouter()

	w := doRequest(r, "Bearer garbage")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid token")
}

func TestRoleMismatchIsForbidden(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := testRouter()

	tokenString, err := GenerateToken("42", "ana@example.com", RolePatient)
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+tokenString)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Unauthorized access")
}

func TestValidTokenPassesClaimsThrough(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := testRouter()

	tokenString, err := GenerateToken("42", "ana@example.com", RolePatient)
	assert.NoError(t, err)

	w := doRequest(r, "Bearer "+tokenString)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"42"`)
	assert.Contains(t, w.Body.String(), `"role":"patient"`)
}
