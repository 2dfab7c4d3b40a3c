// Package metrics exposes Prometheus instrumentation for the HTTP surface.
package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "list_manager",
		Name:      "http_requests_total",
		Help:      "Count of HTTP requests by method, mount segment, and status code.",
	}, []string{"method", "mount", "code"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "list_manager",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by method and mount segment.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "mount"})
)

// Handler serves the Prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// otherMount labels requests whose first path segment matches no known
// mount. Folding them into one series keeps unauthenticated path scans
// from minting unbounded label values.
const otherMount = "other"

// Instrument records request counts and latency. Requests are labeled by
// the mount that serves them: a first path segment matching one of the
// given mounts, the root mount "/" when it is registered (a root module
// claims every path no other mount does), or the sentinel otherwise.
func Instrument(next http.Handler, mounts ...string) http.Handler {
	known := make(map[string]struct{}, len(mounts))
	for _, m := range mounts {
		known[m] = struct{}{}
	}
	_, hasRoot := known["/"]

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		mount := firstSegment(r.URL.Path)
		if _, ok := known[mount]; !ok {
			if hasRoot {
				mount = "/"
			} else {
				mount = otherMount
			}
		}
		requestsTotal.WithLabelValues(r.Method, mount, strconv.Itoa(rec.status)).Inc()
		requestDuration.WithLabelValues(r.Method, mount).Observe(time.Since(start).Seconds())
	})
}

func firstSegment(p string) string {
	p = strings.TrimPrefix(p, "/")
	if i := strings.IndexByte(p, '/'); i >= 0 {
		p = p[:i]
	}
	if p == "" {
		return "/"
	}
	return "/" + p
}
