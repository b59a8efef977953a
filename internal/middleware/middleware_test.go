package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(200, "ok") })
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != 200 {
		t.Fatalf("code=%d", w.Code)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("missing request id header")
	}
}

type assertErr struct{}

func (assertErr) Error() string { return "boom" }

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler)
	r.GET("/", func(c *gin.Context) { _ = c.Error(assertErr{}) })
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != 500 {
		t.Fatalf("code=%d", w.Code)
	}
}

func TestRecoveryMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RecoveryMiddleware())
	r.GET("/panic", func(c *gin.Context) { panic("boom") })
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	if w.Code != 500 {
		t.Fatalf("code=%d", w.Code)
	}
}

func TestRateLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// Use a private window so other tests don't interfere
	oldLimit, oldWindow := limit, window
	limit, window = 3, time.Minute
	t.Cleanup(func() {
		limit, window = oldLimit, oldWindow
		rateLimiterLock.Lock()
		clients = make(map[string]*client)
		rateLimiterLock.Unlock()
	})
	rateLimiterLock.Lock()
	clients = make(map[string]*client)
	rateLimiterLock.Unlock()

	r := gin.New()
	r.Use(RateLimiter())
	r.GET("/", func(c *gin.Context) { c.String(200, "ok") })

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		if w.Code != 200 {
			t.Fatalf("request %d: code=%d", i+1, w.Code)
		}
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 over the limit, got %d", w.Code)
	}
}

func TestTokenAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(tokens ...string) *gin.Engine {
		r := gin.New()
		r.Use(TokenAuth(tokens...))
		r.GET("/", func(c *gin.Context) { c.String(200, "ok") })
		return r
	}

	cases := []struct {
		name   string
		tokens []string
		header string
		want   int
	}{
		{name: "valid token", tokens: []string{"secret"}, header: "Token secret", want: 200},
		{name: "second token accepted", tokens: []string{"a", "b"}, header: "Token b", want: 200},
		{name: "wrong token", tokens: []string{"secret"}, header: "Token other", want: 403},
		{name: "missing header", tokens: []string{"secret"}, header: "", want: 403},
		{name: "wrong scheme", tokens: []string{"secret"}, header: "Bearer secret", want: 403},
		{name: "unconfigured", tokens: nil, header: "Token anything", want: 403},
		{name: "empty configured token ignored", tokens: []string{""}, header: "Token ", want: 403},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newRouter(tc.tokens...)
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, w.Code)
			}
		})
	}
}
