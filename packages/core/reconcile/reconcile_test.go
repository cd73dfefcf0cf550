package reconcile

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courtiq-api/packages/core/extract"
	"courtiq-api/packages/core/models"
)

var syncTime = time.Date(2026, time.March, 2, 6, 0, 0, 0, time.UTC)

func TestMovementAndRising(t *testing.T) {
	cases := []struct {
		previous, fresh int
		movement        int
		rising          bool
	}{
		{previous: 40, fresh: 25, movement: 15, rising: true},
		{previous: 35, fresh: 25, movement: 10, rising: true},
		{previous: 34, fresh: 25, movement: 9, rising: false},
		{previous: 25, fresh: 40, movement: -15, rising: false},
		{previous: 50, fresh: 50, movement: 0, rising: false},
	}
	for _, tc := range cases {
		m := Movement(tc.previous, tc.fresh)
		assert.Equal(t, tc.movement, m, "movement %d -> %d", tc.previous, tc.fresh)
		assert.Equal(t, tc.rising, IsRising(m), "rising %d -> %d", tc.previous, tc.fresh)
	}
}

func TestReconcile(t *testing.T) {
	batch := Batch{
		Source: models.SourceTennisRecruiting,
		Fresh: []extract.PlayerRecord{
			{ExternalID: "1", Name: "New Player", Rank: 30},
			{ExternalID: "2", Name: "Climber", Rank: 25},
			{ExternalID: "3", Name: "Faller", Rank: 60},
			{ExternalID: "4", Name: "Already Recruited", Rank: 5},
			{ExternalID: "2", Name: "Climber Again", Rank: 1},
		},
		Prior: Snapshot{
			"2": {Current: 40, Previous: 45},
			"3": {Current: 50, Previous: 50},
		},
		Tracked: map[string]bool{"4": true},
		Now:     syncTime,
	}

	got := Reconcile(batch)

	want := []models.Prospect{
		{Source: models.SourceTennisRecruiting, ExternalID: "1", Name: "New Player", CurrentRank: 30, PreviousRank: 30, LastSyncedAt: syncTime},
		{Source: models.SourceTennisRecruiting, ExternalID: "2", Name: "Climber", CurrentRank: 25, PreviousRank: 40, RankMovement: 15, IsRising: true, LastSyncedAt: syncTime},
		{Source: models.SourceTennisRecruiting, ExternalID: "3", Name: "Faller", CurrentRank: 60, PreviousRank: 50, RankMovement: -10, LastSyncedAt: syncTime},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("upsert batch mismatch (-want +got):\n%s", diff)
	}
}

func TestReconcileIsAFixedPoint(t *testing.T) {
	fresh := []extract.PlayerRecord{
		{ExternalID: "10", Name: "A", Rank: 12},
		{ExternalID: "11", Name: "B", Rank: 80},
		{ExternalID: "12", Name: "C", Rank: 3},
	}
	first := Reconcile(Batch{
		Source: models.SourceITF,
		Fresh:  fresh,
		Prior:  Snapshot{"10": {Current: 30, Previous: 30}, "11": {Current: 70, Previous: 90}},
		Now:    syncTime,
	})

	later := syncTime.Add(24 * time.Hour)
	second := Reconcile(Batch{
		Source: models.SourceITF,
		Fresh:  fresh,
		Prior:  SnapshotOf(first),
		Now:    later,
	})

	require.Len(t, second, len(first))
	if diff := cmp.Diff(first, second, cmpopts.IgnoreFields(models.Prospect{}, "LastSyncedAt")); diff != "" {
		t.Fatalf("second run changed values (-first +second):\n%s", diff)
	}
	for _, p := range second {
		assert.Equal(t, later, p.LastSyncedAt)
	}
	assert.True(t, second[0].IsRising)
	assert.Equal(t, 18, second[0].RankMovement)
}

func TestReconcileKeepsSourceMovementSeparate(t *testing.T) {
	reported := -25
	got := Reconcile(Batch{
		Source: models.SourceITF,
		Fresh:  []extract.PlayerRecord{{ExternalID: "7", Name: "X Y", Rank: 20, RankMovement: &reported}},
		Prior:  Snapshot{"7": {Current: 22, Previous: 22}},
		Now:    syncTime,
	})
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].RankMovement)
	assert.False(t, got[0].IsRising)
	assert.Equal(t, &reported, got[0].SourceRankMovement)
}

func TestReconcileEmpty(t *testing.T) {
	assert.Empty(t, Reconcile(Batch{Source: models.SourceITF, Now: syncTime}))
}
