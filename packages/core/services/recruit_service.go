package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"courtiq-api/packages/core/models"
)

const defaultFitScore = 50

type RecruitService struct {
	db *gorm.DB
}

func NewRecruitService(db *gorm.DB) *RecruitService {
	return &RecruitService{
		db: db,
	}
}

func (s *RecruitService) GetRecruits() ([]models.Recruit, error) {
	var recruits []models.Recruit

	result := s.db.Order("national_ranking IS NULL, national_ranking ASC").
		Order("name ASC").
		Find(&recruits)
	if result.Error != nil {
		return nil, result.Error
	}

	return recruits, nil
}

func (s *RecruitService) GetRecruitByID(id string) (*models.Recruit, error) {
	var recruit models.Recruit

	result := s.db.Preload("UTRHistory", func(db *gorm.DB) *gorm.DB {
		return db.Order("recorded_date ASC")
	}).Preload("RankingHistory", func(db *gorm.DB) *gorm.DB {
		return db.Order("recorded_date ASC")
	}).First(&recruit, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrRecruitNotFound
		}
		return nil, result.Error
	}

	return &recruit, nil
}

func (s *RecruitService) CreateRecruit(req models.CreateRecruitRequest) (*models.Recruit, error) {
	recruit := &models.Recruit{
		Name:               strings.TrimSpace(req.Name),
		TennisRecruitingID: blankToNil(req.TennisRecruitingID),
		ITFPlayerID:        blankToNil(req.ITFPlayerID),
		NationalRanking:    req.NationalRanking,
		ITFRanking:         req.ITFRanking,
		UTRRating:          req.UTRRating,
		FitScore:           defaultFitScore,
		Priority:           models.PriorityWatch,
		ClassYear:          req.ClassYear,
		Nationality:        strings.ToUpper(req.Nationality),
		Location:           req.Location,
		Plays:              req.Plays,
		Notes:              req.Notes,
	}
	if req.FitScore != nil {
		recruit.FitScore = *req.FitScore
	}
	if req.Priority != "" {
		recruit.Priority = req.Priority
	}

	if err := s.db.Create(recruit).Error; err != nil {
		return nil, err
	}

	return recruit, nil
}

func (s *RecruitService) UpdateRecruit(id string, req models.UpdateRecruitRequest) (*models.Recruit, error) {
	var recruit models.Recruit
	if err := s.db.First(&recruit, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecruitNotFound
		}
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = strings.TrimSpace(*req.Name)
	}
	if req.TennisRecruitingID != nil {
		updates["tennisrecruiting_id"] = blankToNil(req.TennisRecruitingID)
	}
	if req.ITFPlayerID != nil {
		updates["itf_player_id"] = blankToNil(req.ITFPlayerID)
	}
	if req.NationalRanking != nil {
		updates["national_ranking"] = *req.NationalRanking
	}
	if req.ITFRanking != nil {
		updates["itf_ranking"] = *req.ITFRanking
	}
	if req.UTRRating != nil {
		updates["utr_rating"] = *req.UTRRating
	}
	if req.Priority != nil {
		updates["priority"] = *req.Priority
	}
	if req.ClassYear != nil {
		updates["class_year"] = *req.ClassYear
	}
	if req.Nationality != nil {
		updates["nationality"] = strings.ToUpper(*req.Nationality)
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.Plays != nil {
		updates["plays"] = *req.Plays
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}

	if len(updates) > 0 {
		if err := s.db.Model(&recruit).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return s.GetRecruitByID(id)
}

// DeleteRecruit removes a recruit. History, interactions and match results
// go with it through the foreign keys.
func (s *RecruitService) DeleteRecruit(id string) error {
	result := s.db.Delete(&models.Recruit{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRecruitNotFound
	}
	return nil
}

func blankToNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
