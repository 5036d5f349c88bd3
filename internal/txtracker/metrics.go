package txtracker

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
)

// metricsCollector exposes Tracker's peer-aggregated counters to Prometheus
// the way metamorph's prometheusCollector exposes its processor's queue
// stats: on every scrape, not on every mutation, so the core stays free of
// metrics bookkeeping on its hot path.
type metricsCollector struct {
	tracker *Tracker

	candidates *prometheus.Desc
	inFlight   *prometheus.Desc
	tracked    *prometheus.Desc
	dropped    *prometheus.Desc
}

var collectorLoaded = atomic.Bool{}

// newMetricsCollector registers a Collector reporting Tracker-wide
// aggregates. It is idempotent the way newPrometheusCollector is: only the
// first caller in a process actually registers, so tests constructing
// multiple Trackers never hit a duplicate-registration panic.
func newMetricsCollector(t *Tracker) *metricsCollector {
	if !collectorLoaded.CompareAndSwap(false, true) {
		return nil
	}

	c := &metricsCollector{
		tracker: t,
		candidates: prometheus.NewDesc("trackerd_txtracker_candidates",
			"Number of announcements in a CANDIDATE_* state, summed across all peers",
			nil, nil,
		),
		inFlight: prometheus.NewDesc("trackerd_txtracker_in_flight",
			"Number of announcements in state REQUESTED, summed across all peers",
			nil, nil,
		),
		tracked: prometheus.NewDesc("trackerd_txtracker_tracked_peers",
			"Number of peers with at least one tracked announcement",
			nil, nil,
		),
		dropped: prometheus.NewDesc("trackerd_txtracker_announcements_dropped_total",
			"Announcements rejected by ReceivedInv because the peer's announce limit was reached",
			nil, nil,
		),
	}

	prometheus.MustRegister(c)

	return c
}

func (c *metricsCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.candidates
	ch <- c.inFlight
	ch <- c.tracked
	ch <- c.dropped
}

func (c *metricsCollector) Collect(ch chan<- prometheus.Metric) {
	var candidates, inFlight int
	for peer := range c.tracker.byPeer {
		candidates += c.tracker.CountCandidates(peer)
		inFlight += c.tracker.CountInFlight(peer)
	}

	ch <- prometheus.MustNewConstMetric(c.candidates, prometheus.GaugeValue, float64(candidates))
	ch <- prometheus.MustNewConstMetric(c.inFlight, prometheus.GaugeValue, float64(inFlight))
	ch <- prometheus.MustNewConstMetric(c.tracked, prometheus.GaugeValue, float64(len(c.tracker.byPeer)))
	ch <- prometheus.MustNewConstMetric(c.dropped, prometheus.CounterValue, float64(c.tracker.droppedAnnouncements.Load()))
}
