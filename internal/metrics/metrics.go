// Package metrics exposes run counters in Prometheus exposition format.
//
// The scraper is a batch job, so the embedded listener is optional and only
// started when an address is configured; scheduled (cron) runs keep it alive
// between scrapes.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RecordsScraped counts records emitted per source, before filtering.
	RecordsScraped = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dizajnradar_records_scraped_total",
		Help: "Competition records emitted by each source adapter.",
	}, []string{"source"})

	// SourceFailures counts adapter-level failures per source.
	SourceFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dizajnradar_source_failures_total",
		Help: "Source adapter failures, including panics.",
	}, []string{"source"})

	// LastRunRecords is the size of the final batch handed to the sink.
	LastRunRecords = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "dizajnradar_last_run_records",
		Help: "Records written by the most recent run.",
	})
)

// Serve starts the /metrics listener on addr. Blocks; run in a goroutine.
func Serve(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return http.ListenAndServe(addr, mux)
}
