package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Interaction struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	RecruitID string    `gorm:"type:uuid;not null;index" json:"recruit_id"`
	Type      string    `gorm:"size:50;not null" json:"type"` // call, email, visit, text ...
	Date      time.Time `gorm:"not null" json:"date"`
	Notes     string    `gorm:"type:text" json:"notes"`
	Author    string    `gorm:"size:255" json:"author"`
	CreatedAt time.Time `json:"created_at"`

	Recruit *Recruit `gorm:"foreignKey:RecruitID;references:ID;constraint:OnDelete:CASCADE" json:"recruit,omitempty"`
}

func (Interaction) TableName() string {
	return "interactions"
}

func (i *Interaction) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}

type CreateInteractionRequest struct {
	RecruitID string    `json:"recruit_id" binding:"required"`
	Type      string    `json:"type" binding:"required"`
	Date      time.Time `json:"date" binding:"required"`
	Notes     string    `json:"notes,omitempty"`
	Author    string    `json:"author,omitempty"`
}
