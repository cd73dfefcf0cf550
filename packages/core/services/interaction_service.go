package services

import (
	"gorm.io/gorm"

	"courtiq-api/packages/core/models"
)

type InteractionService struct {
	db *gorm.DB
}

func NewInteractionService(db *gorm.DB) *InteractionService {
	return &InteractionService{
		db: db,
	}
}

// LogInteraction stores a contact and stamps the recruit's last_contacted.
func (s *InteractionService) LogInteraction(req models.CreateInteractionRequest) (*models.Interaction, error) {
	interaction := &models.Interaction{
		RecruitID: req.RecruitID,
		Type:      req.Type,
		Date:      req.Date,
		Notes:     req.Notes,
		Author:    req.Author,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := requireRecruit(tx, req.RecruitID); err != nil {
			return err
		}
		if err := tx.Create(interaction).Error; err != nil {
			return err
		}
		return tx.Model(&models.Recruit{}).Where("id = ?", req.RecruitID).
			Update("last_contacted", req.Date).Error
	})
	if err != nil {
		return nil, err
	}

	return interaction, nil
}

func (s *InteractionService) GetInteractionsByRecruit(recruitID string) ([]models.Interaction, error) {
	var interactions []models.Interaction

	result := s.db.Where("recruit_id = ?", recruitID).
		Order("date DESC").
		Find(&interactions)
	if result.Error != nil {
		return nil, result.Error
	}

	return interactions, nil
}
