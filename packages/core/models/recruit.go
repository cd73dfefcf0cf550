package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityWatch  = "Watch"
)

type Recruit struct {
	ID                 string                  `gorm:"type:uuid;primaryKey" json:"id"`
	Name               string                  `gorm:"size:255;not null" json:"name"`
	TennisRecruitingID *string                 `gorm:"column:tennisrecruiting_id;size:32;index" json:"tennisrecruiting_id"`
	ITFPlayerID        *string                 `gorm:"column:itf_player_id;size:32;index" json:"itf_player_id"`
	NationalRanking    *int                    `json:"national_ranking"`
	ITFRanking         *int                    `gorm:"column:itf_ranking" json:"itf_ranking"`
	UTRRating          *float64                `gorm:"column:utr_rating" json:"utr_rating"`
	FitScore           int                     `json:"fit_score"`
	FitScoreBreakdown  map[string]FitBreakdown `gorm:"serializer:json;type:jsonb" json:"fit_score_breakdown,omitempty"`
	Priority           string                  `gorm:"size:20;default:Watch" json:"priority"` // High, Medium, Watch
	ClassYear          *int                    `json:"class_year"`
	Nationality        string                  `gorm:"size:3" json:"nationality"`
	Location           string                  `gorm:"size:255" json:"location"`
	Plays              string                  `gorm:"size:10" json:"plays"`
	Notes              string                  `gorm:"type:text" json:"notes"`
	AIBrief            string                  `gorm:"column:ai_brief;type:text" json:"ai_brief,omitempty"`
	LastContacted      *time.Time              `json:"last_contacted"`
	CreatedAt          time.Time               `json:"created_at"`
	UpdatedAt          time.Time               `json:"updated_at"`

	// Relationships
	UTRHistory     []UTRHistory     `gorm:"foreignKey:RecruitID;constraint:OnDelete:CASCADE" json:"utr_history,omitempty"`
	RankingHistory []RankingHistory `gorm:"foreignKey:RecruitID;constraint:OnDelete:CASCADE" json:"ranking_history,omitempty"`
}

func (Recruit) TableName() string {
	return "recruits"
}

func (r *Recruit) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// FitBreakdown is the per-criterion contribution to a fit score.
type FitBreakdown struct {
	Label    string  `json:"label"`
	Score    float64 `json:"score"`
	Weight   float64 `json:"weight"`
	Weighted float64 `json:"weighted"`
}

// DTOs

type CreateRecruitRequest struct {
	Name               string   `json:"name" binding:"required"`
	TennisRecruitingID *string  `json:"tennisrecruiting_id,omitempty"`
	ITFPlayerID        *string  `json:"itf_player_id,omitempty"`
	NationalRanking    *int     `json:"national_ranking,omitempty"`
	ITFRanking         *int     `json:"itf_ranking,omitempty"`
	UTRRating          *float64 `json:"utr_rating,omitempty"`
	FitScore           *int     `json:"fit_score,omitempty" binding:"omitempty,min=0,max=100"`
	Priority           string   `json:"priority,omitempty" binding:"omitempty,oneof=High Medium Watch"`
	ClassYear          *int     `json:"class_year,omitempty"`
	Nationality        string   `json:"nationality,omitempty"`
	Location           string   `json:"location,omitempty"`
	Plays              string   `json:"plays,omitempty"`
	Notes              string   `json:"notes,omitempty"`
}

type UpdateRecruitRequest struct {
	Name               *string  `json:"name,omitempty"`
	TennisRecruitingID *string  `json:"tennisrecruiting_id,omitempty"`
	ITFPlayerID        *string  `json:"itf_player_id,omitempty"`
	NationalRanking    *int     `json:"national_ranking,omitempty"`
	ITFRanking         *int     `json:"itf_ranking,omitempty"`
	UTRRating          *float64 `json:"utr_rating,omitempty"`
	Priority           *string  `json:"priority,omitempty" binding:"omitempty,oneof=High Medium Watch"`
	ClassYear          *int     `json:"class_year,omitempty"`
	Nationality        *string  `json:"nationality,omitempty"`
	Location           *string  `json:"location,omitempty"`
	Plays              *string  `json:"plays,omitempty"`
	Notes              *string  `json:"notes,omitempty"`
}
