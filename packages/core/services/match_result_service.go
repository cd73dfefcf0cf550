package services

import (
	"context"
	"log/slog"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"courtiq-api/packages/core/extract"
	"courtiq-api/packages/core/fetch"
	"courtiq-api/packages/core/models"
)

// MatchFetchers are the page sources used for activity pages. ITF may be
// nil when no fetcher can reach it server-side.
type MatchFetchers struct {
	TennisRecruiting fetch.Fetcher
	ITF              fetch.Fetcher
}

type MatchResultService struct {
	db       *gorm.DB
	fetchers MatchFetchers
	opts     SyncOptions
}

func NewMatchResultService(db *gorm.DB, fetchers MatchFetchers, opts SyncOptions) *MatchResultService {
	return &MatchResultService{
		db:       db,
		fetchers: fetchers,
		opts:     opts.withDefaults(),
	}
}

func (s *MatchResultService) GetMatchResults(recruitID string) ([]models.MatchResult, error) {
	var results []models.MatchResult

	result := s.db.Where("recruit_id = ?", recruitID).
		Order("match_date IS NULL, match_date DESC").
		Order("created_at DESC").
		Find(&results)
	if result.Error != nil {
		return nil, result.Error
	}

	return results, nil
}

// Ingest parses supplied markup when the request carries some, otherwise it
// fetches the recruit's activity pages on every source it has an id for.
func (s *MatchResultService) Ingest(ctx context.Context, req models.IngestMatchResultsRequest) (*models.IngestMatchResultsResponse, error) {
	var recruit models.Recruit
	if err := findOrNotFound(s.db, &recruit, req.RecruitID, ErrRecruitNotFound); err != nil {
		return nil, err
	}

	var rows []models.MatchResult
	if strings.TrimSpace(req.HTML) != "" {
		extractor := extract.ActivityExtractorFor(req.Source)
		if extractor == nil {
			return nil, ErrUnsupportedSource
		}
		rows = matchRows(recruit.ID, req.Source, extractor.ExtractMatches(req.HTML))
	} else {
		fetched, err := s.fetchAll(ctx, recruit)
		if err != nil {
			return nil, err
		}
		rows = fetched
	}

	inserted, err := s.insert(rows)
	if err != nil {
		return nil, err
	}

	return &models.IngestMatchResultsResponse{
		Success:  true,
		Parsed:   len(rows),
		Inserted: inserted,
	}, nil
}

func (s *MatchResultService) fetchAll(ctx context.Context, recruit models.Recruit) ([]models.MatchResult, error) {
	hasTR := recruit.TennisRecruitingID != nil && *recruit.TennisRecruitingID != ""
	hasITF := recruit.ITFPlayerID != nil && *recruit.ITFPlayerID != ""
	if !hasTR && !hasITF {
		return nil, ErrNoExternalIDs
	}

	var rows []models.MatchResult
	if hasTR && s.fetchers.TennisRecruiting != nil {
		url := s.opts.URLs.TennisRecruitingActivity(*recruit.TennisRecruitingID)
		html, err := s.fetchers.TennisRecruiting.Fetch(ctx, url, s.opts.URLs.Home())
		if err != nil {
			slog.Warn("activity fetch failed", "source", models.SourceTennisRecruiting, "recruit", recruit.ID, "err", err)
		} else {
			rows = append(rows, matchRows(recruit.ID, models.SourceTennisRecruiting, extract.TennisRecruitingActivity.ExtractMatches(html))...)
		}
		s.opts.pause()
	}
	if hasITF && s.fetchers.ITF != nil {
		url := s.opts.URLs.ITFActivity(recruit.Name, *recruit.ITFPlayerID, recruit.Nationality)
		html, err := s.fetchers.ITF.Fetch(ctx, url, fetch.ITFBase+"/en/players/")
		if err != nil {
			slog.Warn("activity fetch failed", "source", models.SourceITF, "recruit", recruit.ID, "err", err)
		} else {
			rows = append(rows, matchRows(recruit.ID, models.SourceITF, extract.ITFActivity.ExtractMatches(html))...)
		}
	}
	return rows, nil
}

func matchRows(recruitID string, source models.Source, matches []extract.MatchRecord) []models.MatchResult {
	rows := make([]models.MatchResult, 0, len(matches))
	for _, m := range matches {
		rows = append(rows, models.MatchResult{
			RecruitID:           recruitID,
			TournamentName:      m.TournamentName,
			TournamentGrade:     m.TournamentGrade,
			Surface:             m.Surface,
			Round:               m.Round,
			OpponentName:        m.OpponentName,
			OpponentRanking:     m.OpponentRanking,
			OpponentNationality: m.OpponentNationality,
			OpponentITFID:       m.OpponentITFID,
			Score:               m.Score,
			Result:              m.Result,
			Source:              source,
		})
	}
	return rows
}

// insert drops rows already stored for the same recruit, tournament, round
// and opponent and returns how many were new.
func (s *MatchResultService) insert(rows []models.MatchResult) (int, error) {
	inserted := 0
	for i := range rows {
		result := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows[i])
		if result.Error != nil {
			if isUniqueViolation(result.Error) {
				continue
			}
			return inserted, result.Error
		}
		if result.RowsAffected > 0 {
			inserted++
			s.opts.Metrics.MatchesInserted(string(rows[i].Source), 1)
		}
	}
	return inserted, nil
}
