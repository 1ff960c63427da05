package httpserver

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"completion-planner/internal/progress"
	"completion-planner/pkg/log"
)

// stubUseCase satisfies progress.UseCase; system routes never call it.
type stubUseCase struct {
	progress.UseCase
}

func newTestHTTPServer(t *testing.T, ready func() error) *HTTPServer {
	t.Helper()
	srv, err := New(log.NewNop(), Config{
		Logger:          log.NewNop(),
		Port:            8080,
		Mode:            gin.TestMode,
		Environment:     "test",
		ProgressUseCase: stubUseCase{},
		Ready:           ready,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return srv
}

func TestNewValidates(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
	}{
		{"No Mode", Config{Port: 8080, ProgressUseCase: stubUseCase{}}},
		{"No Port", Config{Mode: gin.TestMode, ProgressUseCase: stubUseCase{}}},
		{"No UseCase", Config{Mode: gin.TestMode, Port: 8080}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := New(log.NewNop(), tc.cfg); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestSystemRoutes(t *testing.T) {
	srv := newTestHTTPServer(t, nil)

	for _, path := range []string{"/health", "/ready", "/live"} {
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", path, w.Code)
		}
	}
}

func TestReadyReportsStorage(t *testing.T) {
	srv := newTestHTTPServer(t, func() error { return errors.New("database is locked") })

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", w.Code)
	}
}

func TestDomainRoutesRegistered(t *testing.T) {
	srv := newTestHTTPServer(t, nil)

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, apiPrefix+"/profiles/p1/games/celeste", nil))
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for an unknown game, got %d", w.Code)
	}
}
