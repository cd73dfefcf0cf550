package services

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"courtiq-api/packages/core/models"
	"courtiq-api/packages/core/reconcile"
)

// prospectUpsertColumns are rewritten when a (source, external_id) row exists.
var prospectUpsertColumns = []string{
	"name", "current_rank", "previous_rank", "rank_movement", "is_rising",
	"source_rank_movement", "nationality", "birth_year", "class_year",
	"location", "last_synced_at", "updated_at",
}

type ProspectFilter struct {
	Source models.Source
	Rising *bool
}

type ProspectService struct {
	db *gorm.DB
}

func NewProspectService(db *gorm.DB) *ProspectService {
	return &ProspectService{
		db: db,
	}
}

func (s *ProspectService) GetProspects(filter ProspectFilter) ([]models.Prospect, error) {
	var prospects []models.Prospect

	query := s.db.Order("current_rank ASC").Order("name ASC")
	if filter.Source != "" {
		query = query.Where("source = ?", filter.Source)
	}
	if filter.Rising != nil {
		query = query.Where("is_rising = ?", *filter.Rising)
	}
	if err := query.Find(&prospects).Error; err != nil {
		return nil, err
	}

	return prospects, nil
}

func (s *ProspectService) DeleteProspect(id string) error {
	result := s.db.Delete(&models.Prospect{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProspectNotFound
	}
	return nil
}

// PromoteProspect moves a prospect into the coaching pipeline as a Watch
// priority recruit and removes the prospect row.
func (s *ProspectService) PromoteProspect(id string) (*models.Recruit, error) {
	var recruit *models.Recruit

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var prospect models.Prospect
		if err := findOrNotFound(tx, &prospect, id, ErrProspectNotFound); err != nil {
			return err
		}

		recruit = recruitFromProspect(prospect)
		if err := tx.Create(recruit).Error; err != nil {
			return err
		}
		return tx.Delete(&prospect).Error
	})
	if err != nil {
		return nil, err
	}

	return recruit, nil
}

func recruitFromProspect(p models.Prospect) *models.Recruit {
	externalID := p.ExternalID
	rank := p.CurrentRank

	recruit := &models.Recruit{
		Name:        p.Name,
		Nationality: p.Nationality,
		Location:    p.Location,
		ClassYear:   p.ClassYear,
		FitScore:    defaultFitScore,
		Priority:    models.PriorityWatch,
	}
	switch p.Source {
	case models.SourceITF:
		recruit.ITFPlayerID = &externalID
		recruit.ITFRanking = &rank
	default:
		recruit.TennisRecruitingID = &externalID
		recruit.NationalRanking = &rank
	}
	return recruit
}

// snapshot loads the stored prospects of one source.
func (s *ProspectService) snapshot(source models.Source) (reconcile.Snapshot, error) {
	var stored []models.Prospect
	if err := s.db.Where("source = ?", source).Find(&stored).Error; err != nil {
		return nil, err
	}
	return reconcile.SnapshotOf(stored), nil
}

// trackedIDs returns the external ids of one source already held by recruits.
func (s *ProspectService) trackedIDs(source models.Source) (map[string]bool, error) {
	column := "tennisrecruiting_id"
	if source == models.SourceITF {
		column = "itf_player_id"
	}

	var ids []string
	err := s.db.Model(&models.Recruit{}).
		Where(column+" IS NOT NULL AND "+column+" <> ''").
		Pluck(column, &ids).Error
	if err != nil {
		return nil, err
	}

	tracked := make(map[string]bool, len(ids))
	for _, id := range ids {
		tracked[id] = true
	}
	return tracked, nil
}

// upsert writes a reconciled batch keyed by (source, external_id).
func (s *ProspectService) upsert(batch []models.Prospect) (int, error) {
	if len(batch) == 0 {
		return 0, nil
	}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "source"}, {Name: "external_id"}},
		DoUpdates: clause.AssignmentColumns(prospectUpsertColumns),
	}).CreateInBatches(&batch, 200).Error
	if err != nil {
		return 0, err
	}
	return len(batch), nil
}

// reconcileInputs loads the stored snapshot and the tracked ids of a source.
func (s *ProspectService) reconcileInputs(source models.Source) (reconcile.Snapshot, map[string]bool, error) {
	prior, err := s.snapshot(source)
	if err != nil {
		return nil, nil, err
	}
	tracked, err := s.trackedIDs(source)
	if err != nil {
		return nil, nil, err
	}
	return prior, tracked, nil
}
