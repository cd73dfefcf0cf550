package services

import (
	"context"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"courtiq-api/packages/core/extract"
	"courtiq-api/packages/core/fetch"
	"courtiq-api/packages/core/models"
	"courtiq-api/packages/core/reconcile"
)

// ITFSyncService reconciles the ITF junior ranking into ITF prospects,
// either fetching the ranking itself or taking players posted by a browser.
type ITFSyncService struct {
	api       fetch.Fetcher
	prospects *ProspectService
	opts      SyncOptions
}

func NewITFSyncService(db *gorm.DB, api fetch.Fetcher, opts SyncOptions) *ITFSyncService {
	return &ITFSyncService{
		api:       api,
		prospects: NewProspectService(db),
		opts:      opts.withDefaults(),
	}
}

// Run fetches the ranking API server-side. A fetch failure or an unreadable
// body fails the whole run since there is nothing to reconcile.
func (s *ITFSyncService) Run(ctx context.Context) (*models.ProspectImportResponse, error) {
	enterPhase(JobSyncITF, PhaseFetching)
	body, err := s.api.Fetch(ctx, s.opts.URLs.ITFRankings(), fetch.ITFBase+"/")
	if err != nil {
		return nil, err
	}

	enterPhase(JobSyncITF, PhaseParsing, "bytes", len(body))
	players, err := extract.DecodeITFRankings([]byte(body))
	if err != nil {
		slog.Error("itf rankings unreadable", "err", err, "head", snippet(body, 0, 500))
		return nil, fmt.Errorf("%w: %v", ErrBadRankingsResponse, err)
	}

	return s.reconcile(JobSyncITF, players)
}

// Import reconciles players captured in a browser. The nationality filter
// is applied again here regardless of what the caller did.
func (s *ITFSyncService) Import(players []models.ITFPlayer) (*models.ProspectImportResponse, error) {
	return s.reconcile(JobImportITF, players)
}

func (s *ITFSyncService) reconcile(job string, players []models.ITFPlayer) (*models.ProspectImportResponse, error) {
	fresh := extract.ITFRecords(players)

	enterPhase(job, PhaseReconciling, "records", len(fresh))
	prior, tracked, err := s.prospects.reconcileInputs(models.SourceITF)
	if err != nil {
		return nil, err
	}
	now := s.opts.Now().UTC()
	batch := reconcile.Reconcile(reconcile.Batch{
		Source:  models.SourceITF,
		Fresh:   fresh,
		Prior:   prior,
		Tracked: tracked,
		Now:     now,
	})

	enterPhase(job, PhasePersisting, "rows", len(batch))
	upserted, err := s.prospects.upsert(batch)
	if err != nil {
		return nil, fmt.Errorf("upsert itf prospects: %w", err)
	}
	s.opts.Metrics.ProspectsUpserted(string(models.SourceITF), upserted)
	enterPhase(job, PhaseIdle)

	slog.Info("itf prospects reconciled", "job", job, "fetched", len(players), "eligible", len(fresh), "upserted", upserted)
	return &models.ProspectImportResponse{
		Success:      true,
		RunAt:        now,
		TotalFetched: len(players),
		AfterFilter:  len(fresh),
		Upserted:     upserted,
	}, nil
}
