package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func corsRouter(allowOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(CORS(allowOrigins))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func corsRequest(r *gin.Engine, method, origin string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/ping", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCORSWildcardAllowsAnyOrigin(t *testing.T) {
	// The shipped default allow-list.
	r := corsRouter([]string{"*"})

	w := corsRequest(r, http.MethodGet, "http://example.com")
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, "*")
	}
	if w.Code != http.StatusOK {
		t.Errorf("status = %d", w.Code)
	}
}

func TestCORSExplicitOrigin(t *testing.T) {
	r := corsRouter([]string{"http://localhost:5173/"})

	w := corsRequest(r, http.MethodGet, "http://localhost:5173")
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("allowed origin not echoed, got %q", got)
	}

	w = corsRequest(r, http.MethodGet, "http://evil.example")
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("unlisted origin must get no CORS header, got %q", got)
	}
}

func TestCORSNoOriginHeader(t *testing.T) {
	r := corsRouter([]string{"*"})

	// Same-origin and non-browser requests carry no Origin header and need
	// no CORS response headers.
	w := corsRequest(r, http.MethodGet, "")
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("expected no CORS header without an Origin, got %q", got)
	}
}

func TestCORSPreflight(t *testing.T) {
	r := corsRouter([]string{"*"})

	w := corsRequest(r, http.MethodOptions, "http://example.com")
	if w.Code != http.StatusNoContent {
		t.Errorf("preflight status = %d, want 204", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Methods"); got == "" {
		t.Error("preflight must advertise the allowed methods")
	}
}
