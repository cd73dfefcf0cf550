package services

import (
	"errors"

	"gorm.io/gorm"

	"courtiq-api/packages/core/models"
	"courtiq-api/packages/core/utils"
)

const (
	defaultTargetRankingMin = 1
	defaultTargetRankingMax = 200
)

type ProgramProfileService struct {
	db *gorm.DB
}

func NewProgramProfileService(db *gorm.DB) *ProgramProfileService {
	return &ProgramProfileService{
		db: db,
	}
}

// GetProfile returns the program's single profile.
func (s *ProgramProfileService) GetProfile() (*models.ProgramProfile, error) {
	var profile models.ProgramProfile

	result := s.db.Order("id ASC").First(&profile)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, result.Error
	}

	return &profile, nil
}

func (s *ProgramProfileService) UpdateProfile(req models.UpdateProgramProfileRequest) (*models.ProgramProfile, error) {
	profile, err := s.GetProfile()
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		profile.Name = *req.Name
	}
	if req.TargetRankingMin != nil {
		profile.TargetRankingMin = *req.TargetRankingMin
	}
	if req.TargetRankingMax != nil {
		profile.TargetRankingMax = *req.TargetRankingMax
	}
	if req.Criteria != nil {
		profile.Criteria = req.Criteria
	}

	if err := s.db.Save(profile).Error; err != nil {
		return nil, err
	}

	return profile, nil
}

// TargetRange returns the profile's ranking range, or 1..200 without one.
func (s *ProgramProfileService) TargetRange() (int, int, error) {
	profile, err := s.GetProfile()
	if errors.Is(err, ErrProfileNotFound) {
		return defaultTargetRankingMin, defaultTargetRankingMax, nil
	}
	if err != nil {
		return 0, 0, err
	}

	lo, hi := profile.TargetRankingMin, profile.TargetRankingMax
	if lo <= 0 {
		lo = defaultTargetRankingMin
	}
	if hi <= 0 {
		hi = defaultTargetRankingMax
	}
	return lo, hi, nil
}

// CalculateFit scores a recruit against the profile criteria and stores the
// result on the recruit.
func (s *ProgramProfileService) CalculateFit(req models.CalculateFitRequest) (*models.CalculateFitResponse, error) {
	profile, err := s.GetProfile()
	if err != nil {
		return nil, err
	}

	fitScore, breakdown := utils.CalculateFitScore(profile.Criteria, req.Scores)

	var recruit models.Recruit
	if err := findOrNotFound(s.db, &recruit, req.RecruitID, ErrRecruitNotFound); err != nil {
		return nil, err
	}

	recruit.FitScore = fitScore
	recruit.FitScoreBreakdown = breakdown
	if err := s.db.Model(&recruit).Select("fit_score", "fit_score_breakdown").Updates(&recruit).Error; err != nil {
		return nil, err
	}

	return &models.CalculateFitResponse{
		Success:   true,
		FitScore:  fitScore,
		Breakdown: breakdown,
	}, nil
}
