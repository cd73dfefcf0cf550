package models

import "time"

// Criterion is one weighted dimension of the fit score.
type Criterion struct {
	Label       string  `json:"label"`
	Weight      float64 `json:"weight"`
	Description string  `json:"description"`
}

// ProgramProfile holds the single coaching program's targeting criteria.
type ProgramProfile struct {
	ID               uint                 `gorm:"primaryKey;autoIncrement" json:"id"`
	Name             string               `gorm:"size:255" json:"name"`
	TargetRankingMin int                  `gorm:"default:1" json:"target_ranking_min"`
	TargetRankingMax int                  `gorm:"default:200" json:"target_ranking_max"`
	Criteria         map[string]Criterion `gorm:"serializer:json;type:jsonb" json:"criteria"`
	CreatedAt        time.Time            `json:"created_at"`
	UpdatedAt        time.Time            `json:"updated_at"`
}

func (ProgramProfile) TableName() string {
	return "program_profiles"
}

type UpdateProgramProfileRequest struct {
	Name             *string              `json:"name,omitempty"`
	TargetRankingMin *int                 `json:"target_ranking_min,omitempty" binding:"omitempty,min=1"`
	TargetRankingMax *int                 `json:"target_ranking_max,omitempty" binding:"omitempty,min=1"`
	Criteria         map[string]Criterion `json:"criteria,omitempty"`
}

type CalculateFitRequest struct {
	RecruitID string             `json:"recruit_id" binding:"required"`
	Scores    map[string]float64 `json:"scores" binding:"required"`
}

type CalculateFitResponse struct {
	Success   bool                    `json:"success"`
	FitScore  int                     `json:"fitScore"`
	Breakdown map[string]FitBreakdown `json:"breakdown"`
}
