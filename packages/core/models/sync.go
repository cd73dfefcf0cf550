package models

import "time"

const (
	SyncStatusUpdated   = "updated"
	SyncStatusUnchanged = "unchanged"
	SyncStatusFailed    = "failed"
)

type SyncDetail struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Status     string `json:"status"`
	OldRanking *int   `json:"old_ranking,omitempty"`
	NewRanking *int   `json:"new_ranking,omitempty"`
	Error      string `json:"error,omitempty"`
}

type SyncSummary struct {
	Processed int `json:"processed"`
	Updated   int `json:"updated"`
	Unchanged int `json:"unchanged"`
	Failed    int `json:"failed"`
}

type ProspectScan struct {
	Fetched  int `json:"fetched"`
	Filtered int `json:"filtered"`
	Upserted int `json:"upserted"`
}

type RankingSyncResponse struct {
	Success bool         `json:"success"`
	RunAt   time.Time    `json:"run_at"`
	Summary SyncSummary  `json:"summary"`
	Details []SyncDetail `json:"details"`
	Scan    ProspectScan `json:"scan"`
}
