package services

import (
	"log/slog"
	"time"

	"courtiq-api/packages/core/fetch"
	"courtiq-api/packages/core/metrics"
)

// Phase is the step a sync run is in. Runs go Idle, Authenticating,
// Fetching, Parsing, Reconciling, Persisting and back to Idle.
type Phase string

const (
	PhaseIdle           Phase = "idle"
	PhaseAuthenticating Phase = "authenticating"
	PhaseFetching       Phase = "fetching"
	PhaseParsing        Phase = "parsing"
	PhaseReconciling    Phase = "reconciling"
	PhasePersisting     Phase = "persisting"
)

const (
	JobSyncRankings = "sync-rankings"
	JobSyncITF      = "sync-itf"
	JobImportITF    = "import-itf"
)

// DefaultFetchDelay is the pause after every outbound request of a run.
const DefaultFetchDelay = 500 * time.Millisecond

// SyncOptions is shared by the sync jobs.
type SyncOptions struct {
	URLs    fetch.URLs
	Delay   time.Duration
	Sleep   func(time.Duration)
	Now     func() time.Time
	Metrics *metrics.Metrics
}

func (o SyncOptions) withDefaults() SyncOptions {
	if o.Delay < 0 {
		o.Delay = 0
	}
	if o.Sleep == nil {
		o.Sleep = time.Sleep
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

func (o SyncOptions) pause() {
	if o.Delay > 0 {
		o.Sleep(o.Delay)
	}
}

func enterPhase(job string, phase Phase, args ...any) {
	slog.Debug("sync phase", append([]any{"job", job, "phase", phase}, args...)...)
}

// snippet returns html[from:to] clipped to the page length.
func snippet(html string, from, to int) string {
	if from >= len(html) {
		return ""
	}
	if to > len(html) {
		to = len(html)
	}
	return html[from:to]
}
