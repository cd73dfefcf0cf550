// Package reconcile merges freshly scraped ranking records with the stored
// prospect snapshot of the same source.
package reconcile

import (
	"time"

	"courtiq-api/packages/core/extract"
	"courtiq-api/packages/core/models"
)

// RisingThreshold is the number of places a prospect must climb between two
// syncs to be flagged as rising.
const RisingThreshold = 10

// Prior is the stored rank state of one prospect.
type Prior struct {
	Current  int
	Previous int
}

// Snapshot maps an external id to its stored rank state.
type Snapshot map[string]Prior

// SnapshotOf builds a snapshot from stored prospects of one source.
func SnapshotOf(prospects []models.Prospect) Snapshot {
	snap := make(Snapshot, len(prospects))
	for _, p := range prospects {
		snap[p.ExternalID] = Prior{Current: p.CurrentRank, Previous: p.PreviousRank}
	}
	return snap
}

// Batch holds everything a reconciliation run needs.
type Batch struct {
	Source models.Source
	Fresh  []extract.PlayerRecord
	Prior  Snapshot
	// Tracked holds the external ids already followed as recruits.
	Tracked map[string]bool
	Now     time.Time
}

// Reconcile returns one upsert row per fresh record, keyed by
// (source, external_id).
//
// Movement is previous minus fresh, so climbing from 40 to 25 is +15. A
// record seen for the first time uses its own rank as previous. When the
// stored current rank already equals the fresh one the stored previous rank
// is carried forward, which makes reconciling a run's own output a no-op.
// Tracked ids and repeated ids within the batch are skipped; the first
// occurrence wins.
func Reconcile(b Batch) []models.Prospect {
	out := make([]models.Prospect, 0, len(b.Fresh))
	seen := make(map[string]bool, len(b.Fresh))

	for _, rec := range b.Fresh {
		if rec.ExternalID == "" || b.Tracked[rec.ExternalID] || seen[rec.ExternalID] {
			continue
		}
		seen[rec.ExternalID] = true

		previous := rec.Rank
		if prior, ok := b.Prior[rec.ExternalID]; ok {
			previous = prior.Current
			if prior.Current == rec.Rank {
				previous = prior.Previous
			}
		}
		movement := Movement(previous, rec.Rank)

		out = append(out, models.Prospect{
			Source:             b.Source,
			ExternalID:         rec.ExternalID,
			Name:               rec.Name,
			CurrentRank:        rec.Rank,
			PreviousRank:       previous,
			RankMovement:       movement,
			IsRising:           IsRising(movement),
			SourceRankMovement: rec.RankMovement,
			Nationality:        rec.Nationality,
			BirthYear:          rec.BirthYear,
			ClassYear:          rec.ClassYear,
			Location:           rec.Location,
			LastSyncedAt:       b.Now,
		})
	}
	return out
}

// Movement is the signed rank change, positive when the player improved.
func Movement(previous, fresh int) int {
	return previous - fresh
}

func IsRising(movement int) bool {
	return movement >= RisingThreshold
}
