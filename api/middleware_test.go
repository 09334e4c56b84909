package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestRequestLoggerEvents(t *testing.T) {
	var buf bytes.Buffer
	orig := log.Logger
	log.Logger = zerolog.New(&buf)
	defer func() { log.Logger = orig }()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestLogger())
	r.GET("/healthz", Health)

	req, _ := http.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Header().Get("X-Request-ID") == "" {
		t.Error("Expected an X-Request-ID header")
	}

	out := buf.String()
	if !strings.Contains(out, "request started") {
		t.Errorf("Expected a start event, got logs: %s", out)
	}
	if !strings.Contains(out, "request completed") {
		t.Errorf("Expected a completion event, got logs: %s", out)
	}
	if !strings.Contains(out, `"path":"/healthz"`) {
		t.Errorf("Expected the request path in the logs, got: %s", out)
	}
}
