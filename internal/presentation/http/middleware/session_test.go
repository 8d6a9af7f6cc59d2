package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(SessionMiddleware())
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"session": c.GetString("session_id")})
	})
	return router
}

func TestSessionMiddleware_IssuesSessionWhenAbsent(t *testing.T) {
	router := sessionTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	router.ServeHTTP(w, req)

	issued := w.Header().Get(SessionHeader)
	require.NotEmpty(t, issued)
	_, err := uuid.Parse(issued)
	assert.NoError(t, err)
}

func TestSessionMiddleware_EchoesProvidedSession(t *testing.T) {
	router := sessionTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(SessionHeader, "till-1")
	router.ServeHTTP(w, req)

	assert.Equal(t, "till-1", w.Header().Get(SessionHeader))
}

func TestSessionMiddleware_RejectsOversizedSessionID(t *testing.T) {
	router := sessionTestRouter()

	long := make([]byte, 80)
	for i := range long {
		long[i] = 'a'
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(SessionHeader, string(long))
	router.ServeHTTP(w, req)

	issued := w.Header().Get(SessionHeader)
	require.NotEmpty(t, issued)
	assert.NotEqual(t, string(long), issued)
}
