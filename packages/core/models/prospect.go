package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Prospect is an externally ranked player not yet in the coaching pipeline.
// (source, external_id) is unique.
type Prospect struct {
	ID                 string    `gorm:"type:uuid;primaryKey" json:"id"`
	Source             Source    `gorm:"size:20;not null;uniqueIndex:idx_prospects_source_external" json:"source"`
	ExternalID         string    `gorm:"size:32;not null;uniqueIndex:idx_prospects_source_external" json:"external_id"`
	Name               string    `gorm:"size:255;not null" json:"name"`
	CurrentRank        int       `gorm:"not null" json:"current_rank"`
	PreviousRank       int       `gorm:"not null" json:"previous_rank"`
	RankMovement       int       `gorm:"default:0" json:"rank_movement"`
	IsRising           bool      `gorm:"default:false;index" json:"is_rising"`
	SourceRankMovement *int      `json:"source_rank_movement,omitempty"`
	Nationality        string    `gorm:"size:3" json:"nationality"`
	BirthYear          *int      `json:"birth_year,omitempty"`
	ClassYear          *int      `json:"class_year,omitempty"`
	Location           string    `gorm:"size:255" json:"location,omitempty"`
	LastSyncedAt       time.Time `gorm:"not null" json:"last_synced_at"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func (Prospect) TableName() string {
	return "scouting_prospects"
}

func (p *Prospect) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// ITFPlayer mirrors one entry of the ITF junior ranking API. The browser
// import path posts these objects unchanged.
type ITFPlayer struct {
	PlayerID              PlayerID `json:"playerId"`
	PlayerFamilyName      string   `json:"playerFamilyName"`
	PlayerGivenName       string   `json:"playerGivenName"`
	PlayerNationalityCode string   `json:"playerNationalityCode"`
	PlayerNationality     string   `json:"playerNationality"`
	BirthYear             int      `json:"birthYear"`
	Rank                  int      `json:"rank"`
	RankMovement          int      `json:"rankMovement"`
	TournamentsPlayed     int      `json:"tournamentsPlayed"`
	Points                float64  `json:"points"`
	ProfileLink           string   `json:"profileLink"`
}

// PlayerID accepts the ITF player id as either a JSON string or a number.
type PlayerID string

func (id *PlayerID) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = PlayerID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = PlayerID(n.String())
	return nil
}

type ImportProspectsRequest struct {
	Players []ITFPlayer `json:"players" binding:"required"`
}

type ProspectImportResponse struct {
	Success      bool      `json:"success"`
	RunAt        time.Time `json:"run_at"`
	TotalFetched int       `json:"total_fetched"`
	AfterFilter  int       `json:"after_filter"`
	Upserted     int       `json:"upserted"`
}
