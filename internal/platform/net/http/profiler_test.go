package http

import (
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
)

func TestMountProfiler(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		enabled bool
		status  int
	}{
		{"enabled", true, stdhttp.StatusOK},
		{"disabled", false, stdhttp.StatusNotFound},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m := chi.NewRouter()
			jsonFallbacks(m)
			MountProfiler(AdaptChi(m), "debug/", c.enabled)

			rr := httptest.NewRecorder()
			m.ServeHTTP(rr, httptest.NewRequest(stdhttp.MethodGet, "/debug/pprof/", nil))
			if rr.Code != c.status {
				t.Fatalf("status = %d, want %d", rr.Code, c.status)
			}
		})
	}
}
