package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MatchResult is one scraped match. (recruit, tournament, round, opponent)
// is unique; re-ingesting the same match is dropped.
type MatchResult struct {
	ID                  string     `gorm:"type:uuid;primaryKey" json:"id"`
	RecruitID           string     `gorm:"type:uuid;not null;uniqueIndex:idx_match_results_dedupe" json:"recruit_id"`
	TournamentName      string     `gorm:"size:255;not null;uniqueIndex:idx_match_results_dedupe" json:"tournament_name"`
	TournamentGrade     string     `gorm:"size:50" json:"tournament_grade,omitempty"`
	Surface             string     `gorm:"size:50" json:"surface,omitempty"`
	Round               string     `gorm:"size:20;not null;uniqueIndex:idx_match_results_dedupe" json:"round"`
	OpponentName        string     `gorm:"size:255;not null;uniqueIndex:idx_match_results_dedupe" json:"opponent_name"`
	OpponentRanking     *int       `json:"opponent_ranking,omitempty"`
	OpponentNationality string     `gorm:"size:3" json:"opponent_nationality,omitempty"`
	OpponentITFID       string     `gorm:"column:opponent_itf_id;size:32" json:"opponent_itf_id,omitempty"`
	Score               string     `gorm:"size:100" json:"score"`
	Result              string     `gorm:"size:1;not null" json:"result"` // W or L
	Source              Source     `gorm:"size:20;not null" json:"source"`
	MatchDate           *time.Time `gorm:"type:date" json:"match_date,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`

	Recruit *Recruit `gorm:"foreignKey:RecruitID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

func (MatchResult) TableName() string {
	return "match_results"
}

func (m *MatchResult) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// IngestMatchResultsRequest either names a recruit to fetch for, or carries
// markup already captured in the browser for one source.
type IngestMatchResultsRequest struct {
	RecruitID string `json:"recruit_id" binding:"required"`
	Source    Source `json:"source,omitempty"`
	HTML      string `json:"html,omitempty"`
}

type IngestMatchResultsResponse struct {
	Success  bool `json:"success"`
	Parsed   int  `json:"parsed"`
	Inserted int  `json:"inserted"`
}
