package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidkuria/brewpos-api/pkg/utils"
)

// adminGatedRouter guards POST /menu behind the admin role. The
// handler increments created so tests can assert whether a rejected
// request reached it.
func adminGatedRouter(created *int) (*gin.Engine, *utils.JWTManager) {
	gin.SetMode(gin.TestMode)
	jwtManager := utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)

	router := gin.New()
	protected := router.Group("/api/v1")
	protected.Use(AuthMiddleware(jwtManager))
	protected.POST("/menu", RequireRole("admin"), func(c *gin.Context) {
		*created++
		c.JSON(http.StatusCreated, gin.H{"success": true})
	})
	return router, jwtManager
}

func bearerToken(t *testing.T, jwtManager *utils.JWTManager, role string) string {
	t.Helper()
	token, err := jwtManager.GenerateAccessToken(uuid.New(), role+"@example.com", role)
	require.NoError(t, err)
	return "Bearer " + token
}

func TestRequireRole_RejectsNonAdminWithoutMutating(t *testing.T) {
	created := 0
	router, jwtManager := adminGatedRouter(&created)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/menu", nil)
	req.Header.Set("Authorization", bearerToken(t, jwtManager, "user"))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Zero(t, created)
}

func TestRequireRole_AllowsAdmin(t *testing.T) {
	created := 0
	router, jwtManager := adminGatedRouter(&created)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/menu", nil)
	req.Header.Set("Authorization", bearerToken(t, jwtManager, "admin"))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, created)
}

func TestAuthMiddleware_RejectsMissingToken(t *testing.T) {
	created := 0
	router, _ := adminGatedRouter(&created)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/menu", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Zero(t, created)
}

func TestAuthMiddleware_RejectsMalformedHeader(t *testing.T) {
	created := 0
	router, _ := adminGatedRouter(&created)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/menu", nil)
	req.Header.Set("Authorization", "Token abc123")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Zero(t, created)
}
