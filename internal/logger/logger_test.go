package logger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/mind-engage/globoquiz/internal/config"
)

func TestRequestsLogsStatus(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	h := middleware.RequestID(Requests(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusTeapot)
	})))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/quiz/1", nil))

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("got %d log entries", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["path"] != "/quiz/1" || fields["status"] != int64(http.StatusTeapot) {
		t.Fatalf("fields = %v", fields)
	}
	if fields["request_id"] == "" {
		t.Fatalf("missing request id")
	}
}

func TestNewPicksByEnv(t *testing.T) {
	for _, env := range []string{"local", "production"} {
		l, err := New(config.Config{Env: env})
		if err != nil || l == nil {
			t.Fatalf("%s: %v", env, err)
		}
	}
}
