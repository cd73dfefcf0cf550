package services

import (
	"time"

	"gorm.io/gorm"

	"courtiq-api/packages/core/models"
	"courtiq-api/packages/core/trend"
)

const (
	highFitScore        = 70
	risingUTRValue      = 0.5
	undercontactedAfter = 14 // whole days
)

type DiscoveryService struct {
	db       *gorm.DB
	profiles *ProgramProfileService
	now      func() time.Time
}

func NewDiscoveryService(db *gorm.DB) *DiscoveryService {
	return &DiscoveryService{
		db:       db,
		profiles: NewProgramProfileService(db),
		now:      time.Now,
	}
}

// GetDiscovery annotates every recruit with its UTR and ranking trends and
// derives the four discovery views from the annotated set.
func (s *DiscoveryService) GetDiscovery() (*models.DiscoveryData, error) {
	var recruits []models.Recruit

	result := s.db.Preload("UTRHistory", func(db *gorm.DB) *gorm.DB {
		return db.Order("recorded_date ASC")
	}).Preload("RankingHistory", func(db *gorm.DB) *gorm.DB {
		return db.Order("recorded_date ASC")
	}).Order("national_ranking IS NULL, national_ranking ASC").
		Order("name ASC").
		Find(&recruits)
	if result.Error != nil {
		return nil, result.Error
	}

	rankMin, rankMax, err := s.profiles.TargetRange()
	if err != nil {
		return nil, err
	}

	now := s.now()
	data := &models.DiscoveryData{
		All:            make([]models.DiscoveryRecruit, 0, len(recruits)),
		Undervalued:    []models.DiscoveryRecruit{},
		RisingStars:    []models.DiscoveryRecruit{},
		RisingRankings: []models.DiscoveryRecruit{},
		Undercontacted: []models.DiscoveryRecruit{},
	}

	for _, recruit := range recruits {
		r := annotate(recruit)
		data.All = append(data.All, r)

		if isUndervalued(r, rankMin, rankMax) {
			data.Undervalued = append(data.Undervalued, r)
		}
		if r.UTRTrendValue >= risingUTRValue {
			data.RisingStars = append(data.RisingStars, r)
		}
		if r.RankingTrend == string(trend.Rising) {
			data.RisingRankings = append(data.RisingRankings, r)
		}
		if isUndercontacted(r, now) {
			data.Undercontacted = append(data.Undercontacted, r)
		}
	}

	return data, nil
}

func annotate(recruit models.Recruit) models.DiscoveryRecruit {
	utrPoints := make([]trend.Point, 0, len(recruit.UTRHistory))
	for _, h := range recruit.UTRHistory {
		utrPoints = append(utrPoints, trend.Point{Date: h.RecordedDate, Value: h.UTRRating})
	}
	rankPoints := make([]trend.Point, 0, len(recruit.RankingHistory))
	for _, h := range recruit.RankingHistory {
		rankPoints = append(rankPoints, trend.Point{Date: h.RecordedDate, Value: float64(h.NationalRanking)})
	}

	utrLabel, utrValue := trend.Classify(trend.Rating, utrPoints)
	rankLabel, rankValue := trend.Classify(trend.Ranking, rankPoints)

	return models.DiscoveryRecruit{
		Recruit:           recruit,
		UTRTrend:          string(utrLabel),
		UTRTrendValue:     utrValue,
		RankingTrend:      string(rankLabel),
		RankingTrendValue: rankValue,
	}
}

func isUndervalued(r models.DiscoveryRecruit, rankMin, rankMax int) bool {
	if r.NationalRanking == nil {
		return false
	}
	inRange := *r.NationalRanking >= rankMin && *r.NationalRanking <= rankMax
	rising := r.UTRTrend == string(trend.Rising)
	return inRange && (rising || r.FitScore >= highFitScore) && r.Priority != models.PriorityHigh
}

func isUndercontacted(r models.DiscoveryRecruit, now time.Time) bool {
	if r.FitScore < highFitScore {
		return false
	}
	if r.LastContacted == nil {
		return true
	}
	days := int(now.Sub(*r.LastContacted) / (24 * time.Hour))
	return days > undercontactedAfter
}
