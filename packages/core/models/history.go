package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	HistorySourceCron   = "cron"
	HistorySourceManual = "manual"
)

// UTRHistory is one point of a recruit's rating series. At most one row per
// recruit per recorded date.
type UTRHistory struct {
	ID           string    `gorm:"type:uuid;primaryKey" json:"id"`
	RecruitID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_utr_history_recruit_date" json:"recruit_id"`
	UTRRating    float64   `gorm:"column:utr_rating;not null" json:"utr_rating"`
	RecordedDate time.Time `gorm:"type:date;not null;uniqueIndex:idx_utr_history_recruit_date" json:"recorded_date"`
	Source       string    `gorm:"size:20;default:manual" json:"source"`
	CreatedAt    time.Time `json:"created_at"`
}

func (UTRHistory) TableName() string {
	return "utr_history"
}

func (h *UTRHistory) BeforeCreate(tx *gorm.DB) error {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	return nil
}

// RankingHistory is one point of a recruit's national ranking series.
type RankingHistory struct {
	ID              string    `gorm:"type:uuid;primaryKey" json:"id"`
	RecruitID       string    `gorm:"type:uuid;not null;uniqueIndex:idx_ranking_history_recruit_date" json:"recruit_id"`
	NationalRanking int       `gorm:"not null" json:"national_ranking"`
	RecordedDate    time.Time `gorm:"type:date;not null;uniqueIndex:idx_ranking_history_recruit_date" json:"recorded_date"`
	Source          string    `gorm:"size:20;default:manual" json:"source"`
	CreatedAt       time.Time `json:"created_at"`
}

func (RankingHistory) TableName() string {
	return "ranking_history"
}

func (h *RankingHistory) BeforeCreate(tx *gorm.DB) error {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	return nil
}

// RecordedDay truncates t to a UTC calendar date, the granularity of both
// history series.
func RecordedDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DTOs

type CreateUTRHistoryRequest struct {
	RecruitID    string  `json:"recruit_id" binding:"required"`
	UTRRating    float64 `json:"utr_rating" binding:"required,gt=0"`
	RecordedDate string  `json:"recorded_date,omitempty"` // YYYY-MM-DD, defaults to today
	Source       string  `json:"source,omitempty"`
}

type CreateRankingHistoryRequest struct {
	RecruitID       string `json:"recruit_id" binding:"required"`
	NationalRanking int    `json:"national_ranking" binding:"required,gt=0"`
	RecordedDate    string `json:"recorded_date,omitempty"`
	Source          string `json:"source,omitempty"`
}
