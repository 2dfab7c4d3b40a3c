package metrics

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func serve(h http.Handler, path string) {
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
}

func counterValue(method, mount, code string) float64 {
	return testutil.ToFloat64(requestsTotal.WithLabelValues(method, mount, code))
}

func TestInstrument_FoldsUnknownMounts(t *testing.T) {
	h := Instrument(http.NotFoundHandler(), "/api")

	before := counterValue(http.MethodGet, otherMount, "404")
	for i := range 50 {
		serve(h, fmt.Sprintf("/scan%d", i))
	}
	after := counterValue(http.MethodGet, otherMount, "404")

	if got := after - before; got != 50 {
		t.Errorf("sentinel series grew by %v, want 50", got)
	}

	for i := range 50 {
		if v := counterValue(http.MethodGet, fmt.Sprintf("/scan%d", i), "404"); v != 0 {
			t.Fatalf("scan path %d was counted under its own mount label", i)
		}
	}
}

func TestInstrument_KnownMountKeepsOwnSeries(t *testing.T) {
	h := Instrument(http.NotFoundHandler(), "/api")

	before := counterValue(http.MethodGet, "/api", "404")
	serve(h, "/api/info")
	after := counterValue(http.MethodGet, "/api", "404")

	if got := after - before; got != 1 {
		t.Errorf("/api series grew by %v, want 1", got)
	}
}

func TestInstrument_RootMountClaimsUnmatched(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	h := Instrument(ok, "/api", "/")

	before := counterValue(http.MethodGet, "/", "200")
	serve(h, "/manager")
	serve(h, "/login")
	after := counterValue(http.MethodGet, "/", "200")

	if got := after - before; got != 2 {
		t.Errorf("root series grew by %v, want 2", got)
	}
}
