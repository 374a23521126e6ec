package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func strictLimiterRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/login", NewStrictRateLimiter(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func doFrom(r *gin.Engine, remoteAddr string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("POST", "/login", nil)
	req.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// Limit login dihitung per IP: klien yang menghabiskan jatahnya tidak
// mengunci klien lain.
func TestStrictRateLimiterIsPerIP(t *testing.T) {
	r := strictLimiterRouter()

	for i := 0; i < 5; i++ {
		w := doFrom(r, "203.0.113.7:1000")
		assert.Equal(t, http.StatusOK, w.Code)
	}
	w := doFrom(r, "203.0.113.7:1000")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	// IP lain masih boleh masuk
	w = doFrom(r, "203.0.113.8:1000")
	assert.Equal(t, http.StatusOK, w.Code)

	// IP yang kena limit tetap tertahan
	w = doFrom(r, "203.0.113.7:1000")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}
