package services

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"courtiq-api/packages/core/models"
)

type HistoryService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewHistoryService(db *gorm.DB) *HistoryService {
	return &HistoryService{
		db:  db,
		now: time.Now,
	}
}

// AddUTR appends a rating point and makes it the recruit's current UTR. A
// second point for the same day is ignored and the stored one is returned.
func (s *HistoryService) AddUTR(req models.CreateUTRHistoryRequest) (*models.UTRHistory, error) {
	day, err := s.recordedDay(req.RecordedDate)
	if err != nil {
		return nil, err
	}

	point := models.UTRHistory{
		RecruitID:    req.RecruitID,
		UTRRating:    req.UTRRating,
		RecordedDate: day,
		Source:       sourceOrManual(req.Source),
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := requireRecruit(tx, req.RecruitID); err != nil {
			return err
		}
		if err := insertIgnoringDuplicate(tx, &point); err != nil {
			return err
		}
		var stored models.UTRHistory
		if err := tx.Where("recruit_id = ? AND recorded_date = ?", req.RecruitID, day).First(&stored).Error; err != nil {
			return err
		}
		point = stored
		return tx.Model(&models.Recruit{}).Where("id = ?", req.RecruitID).
			Update("utr_rating", point.UTRRating).Error
	})
	if err != nil {
		return nil, err
	}

	return &point, nil
}

func (s *HistoryService) DeleteUTR(id string) error {
	result := s.db.Delete(&models.UTRHistory{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrHistoryNotFound
	}
	return nil
}

// AddRanking appends a national ranking point and makes it current.
func (s *HistoryService) AddRanking(req models.CreateRankingHistoryRequest) (*models.RankingHistory, error) {
	day, err := s.recordedDay(req.RecordedDate)
	if err != nil {
		return nil, err
	}

	point := models.RankingHistory{
		RecruitID:       req.RecruitID,
		NationalRanking: req.NationalRanking,
		RecordedDate:    day,
		Source:          sourceOrManual(req.Source),
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := requireRecruit(tx, req.RecruitID); err != nil {
			return err
		}
		if err := insertIgnoringDuplicate(tx, &point); err != nil {
			return err
		}
		var stored models.RankingHistory
		if err := tx.Where("recruit_id = ? AND recorded_date = ?", req.RecruitID, day).First(&stored).Error; err != nil {
			return err
		}
		point = stored
		return tx.Model(&models.Recruit{}).Where("id = ?", req.RecruitID).
			Update("national_ranking", point.NationalRanking).Error
	})
	if err != nil {
		return nil, err
	}

	return &point, nil
}

func (s *HistoryService) DeleteRanking(id string) error {
	result := s.db.Delete(&models.RankingHistory{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrHistoryNotFound
	}
	return nil
}

func (s *HistoryService) recordedDay(raw string) (time.Time, error) {
	if raw == "" {
		return models.RecordedDay(s.now()), nil
	}
	day, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return day, nil
}

func sourceOrManual(source string) string {
	if source == "" {
		return models.HistorySourceManual
	}
	return source
}

func requireRecruit(db *gorm.DB, id string) error {
	var count int64
	if err := db.Model(&models.Recruit{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrRecruitNotFound
	}
	return nil
}

// insertIgnoringDuplicate writes an append-only row. A row already present
// for the same unique key is not an error.
func insertIgnoringDuplicate(db *gorm.DB, value interface{}) error {
	err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(value).Error
	if err != nil && !isUniqueViolation(err) {
		return err
	}
	return nil
}

func findOrNotFound(db *gorm.DB, dest interface{}, id string, notFound error) error {
	err := db.First(dest, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return err
}
