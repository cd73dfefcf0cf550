package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCounters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveFetch("itf", "ok", 200*time.Millisecond)
	m.ObserveFetch("itf", "ok", time.Second)
	m.ObserveFetch("tennisrecruiting", "not_available", time.Second)
	m.SyncItem("sync-rankings", "updated")
	m.ProspectsUpserted("itf", 12)
	m.ProspectsUpserted("itf", 0)
	m.MatchesInserted("tennisrecruiting", 3)
	m.ParseMiss("player-page")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.fetches.WithLabelValues("itf", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.fetches.WithLabelValues("tennisrecruiting", "not_available")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.syncItems.WithLabelValues("sync-rankings", "updated")))
	assert.Equal(t, 12.0, testutil.ToFloat64(m.prospectsUpsert.WithLabelValues("itf")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.matchesInserted.WithLabelValues("tennisrecruiting")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.parseMisses.WithLabelValues("player-page")))
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveFetch("itf", "ok", time.Second)
		m.SyncItem("sync-itf", "failed")
		m.ProspectsUpserted("itf", 1)
		m.MatchesInserted("itf", 1)
		m.ParseMiss("list")
	})
}
