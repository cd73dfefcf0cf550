package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"courtiq-api/packages/core/extract"
	"courtiq-api/packages/core/fetch"
	"courtiq-api/packages/core/models"
	"courtiq-api/packages/core/reconcile"
)

// rankingList is one tennisrecruiting class list scanned for prospects.
type rankingList struct {
	ID        int
	ClassYear int
}

var tennisRecruitingLists = []rankingList{
	{ID: 1275, ClassYear: 2027},
	{ID: 1285, ClassYear: 2028},
	{ID: 1295, ClassYear: 2029},
}

const (
	maxListPages     = 10
	minPlayersOnPage = 3
	maxPerList       = 200
	maxProspectRank  = 200
)

var (
	errFetchFailed = errors.New("fetch failed")
	errParseFailed = errors.New("parse failed")
)

// RankingSyncService refreshes tracked recruits' national rankings from
// their tennisrecruiting profiles, then scans the class lists for prospects.
type RankingSyncService struct {
	db        *gorm.DB
	pages     fetch.Fetcher
	prospects *ProspectService
	opts      SyncOptions
}

func NewRankingSyncService(db *gorm.DB, pages fetch.Fetcher, opts SyncOptions) *RankingSyncService {
	return &RankingSyncService{
		db:        db,
		pages:     pages,
		prospects: NewProspectService(db),
		opts:      opts.withDefaults(),
	}
}

// Run processes every recruit with a tennisrecruiting id one at a time.
// Per-recruit failures are reported in the details and never stop the run;
// only failing to load the recruits does.
func (s *RankingSyncService) Run(ctx context.Context) (*models.RankingSyncResponse, error) {
	var recruits []models.Recruit
	err := s.db.Where("tennisrecruiting_id IS NOT NULL AND tennisrecruiting_id <> ''").
		Order("name ASC").
		Find(&recruits).Error
	if err != nil {
		return nil, fmt.Errorf("load recruits: %w", err)
	}

	resp := &models.RankingSyncResponse{
		Success: true,
		Details: make([]models.SyncDetail, 0, len(recruits)),
	}

	for _, recruit := range recruits {
		detail := s.syncRecruit(ctx, recruit)

		resp.Summary.Processed++
		switch detail.Status {
		case models.SyncStatusUpdated:
			resp.Summary.Updated++
		case models.SyncStatusUnchanged:
			resp.Summary.Unchanged++
		default:
			resp.Summary.Failed++
		}
		s.opts.Metrics.SyncItem(JobSyncRankings, detail.Status)
		resp.Details = append(resp.Details, detail)

		s.opts.pause()
	}

	resp.Scan = s.scanLists(ctx)
	resp.RunAt = s.opts.Now().UTC()
	enterPhase(JobSyncRankings, PhaseIdle)

	slog.Info("ranking sync finished",
		"processed", resp.Summary.Processed,
		"updated", resp.Summary.Updated,
		"unchanged", resp.Summary.Unchanged,
		"failed", resp.Summary.Failed,
		"scan_fetched", resp.Scan.Fetched,
		"scan_upserted", resp.Scan.Upserted,
	)
	return resp, nil
}

func (s *RankingSyncService) syncRecruit(ctx context.Context, recruit models.Recruit) models.SyncDetail {
	detail := models.SyncDetail{ID: recruit.ID, Name: recruit.Name}
	sourceID := *recruit.TennisRecruitingID

	enterPhase(JobSyncRankings, PhaseFetching, "recruit", recruit.ID)
	html, err := s.pages.Fetch(ctx, s.opts.URLs.PlayerPage(sourceID), s.opts.URLs.Home())
	if err != nil {
		slog.Warn("player page fetch failed", "recruit", recruit.ID, "tennisrecruiting_id", sourceID, "err", err)
		return failed(detail, errFetchFailed)
	}

	enterPhase(JobSyncRankings, PhaseParsing, "recruit", recruit.ID)
	ranking, rule, ok := extract.ExtractRankingWithRule(html)
	if !ok {
		s.opts.Metrics.ParseMiss("player-page")
		slog.Error("ranking parse miss",
			"recruit", recruit.ID,
			"name", recruit.Name,
			"tennisrecruiting_id", sourceID,
			"html_length", len(html),
			"head", snippet(html, 0, 1000),
			"body_3000", snippet(html, 3000, 5000),
			"body_5000", snippet(html, 5000, 8000),
		)
		return failed(detail, errParseFailed)
	}
	slog.Debug("ranking parsed", "recruit", recruit.ID, "ranking", ranking, "rule", rule)

	detail.OldRanking = recruit.NationalRanking
	detail.NewRanking = &ranking
	if recruit.NationalRanking != nil && *recruit.NationalRanking == ranking {
		detail.Status = models.SyncStatusUnchanged
		return detail
	}

	enterPhase(JobSyncRankings, PhasePersisting, "recruit", recruit.ID)
	err = s.db.Transaction(func(tx *gorm.DB) error {
		point := models.RankingHistory{
			RecruitID:       recruit.ID,
			NationalRanking: ranking,
			RecordedDate:    models.RecordedDay(s.opts.Now()),
			Source:          models.HistorySourceCron,
		}
		if err := insertIgnoringDuplicate(tx, &point); err != nil {
			return err
		}
		return tx.Model(&models.Recruit{}).Where("id = ?", recruit.ID).
			Update("national_ranking", ranking).Error
	})
	if err != nil {
		slog.Error("ranking persist failed", "recruit", recruit.ID, "err", err)
		return failed(detail, err)
	}

	detail.Status = models.SyncStatusUpdated
	return detail
}

func failed(detail models.SyncDetail, err error) models.SyncDetail {
	detail.Status = models.SyncStatusFailed
	detail.Error = err.Error()
	return detail
}

// scanLists pages through the class lists and upserts every untracked
// player ranked within the top 200 as a tennisrecruiting prospect.
func (s *RankingSyncService) scanLists(ctx context.Context) models.ProspectScan {
	var scan models.ProspectScan

	prior, tracked, err := s.prospects.reconcileInputs(models.SourceTennisRecruiting)
	if err != nil {
		slog.Error("prospect scan skipped", "err", err)
		return scan
	}

	var fresh []extract.PlayerRecord
	for _, list := range tennisRecruitingLists {
		kept := 0
		for page := 1; page <= maxListPages && kept < maxPerList; page++ {
			enterPhase(JobSyncRankings, PhaseFetching, "list", list.ID, "page", page)
			html, err := s.pages.Fetch(ctx, s.opts.URLs.RankingList(list.ID, page), s.opts.URLs.Home())
			if err != nil {
				slog.Warn("list page fetch failed", "list", list.ID, "page", page, "err", err)
				s.opts.pause()
				break
			}

			enterPhase(JobSyncRankings, PhaseParsing, "list", list.ID, "page", page)
			players := extract.TennisRecruitingList.ExtractPlayers(html)
			if len(players) < minPlayersOnPage {
				s.opts.pause()
				break
			}
			scan.Fetched += len(players)

			for _, p := range players {
				if tracked[p.ExternalID] || p.Rank > maxProspectRank {
					continue
				}
				classYear := list.ClassYear
				p.ClassYear = &classYear
				p.Nationality = "USA"
				fresh = append(fresh, p)
				kept++
			}

			s.opts.pause()
		}
	}
	scan.Filtered = len(fresh)

	enterPhase(JobSyncRankings, PhaseReconciling, "records", len(fresh))
	batch := reconcile.Reconcile(reconcile.Batch{
		Source:  models.SourceTennisRecruiting,
		Fresh:   fresh,
		Prior:   prior,
		Tracked: tracked,
		Now:     s.opts.Now().UTC(),
	})

	enterPhase(JobSyncRankings, PhasePersisting, "rows", len(batch))
	upserted, err := s.prospects.upsert(batch)
	if err != nil {
		slog.Error("prospect upsert failed", "source", models.SourceTennisRecruiting, "err", err)
		return scan
	}
	scan.Upserted = upserted
	s.opts.Metrics.ProspectsUpserted(string(models.SourceTennisRecruiting), upserted)

	return scan
}
