package services

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"gorm.io/gorm"

	"courtiq-api/packages/core/models"
)

var armsHeader = []string{"recruit_name", "recruit_ranking", "class_year", "contact_date", "contact_type", "notes", "coach_name"}

type ExportService struct {
	db *gorm.DB
}

func NewExportService(db *gorm.DB) *ExportService {
	return &ExportService{
		db: db,
	}
}

// WriteARMS writes the contact log as the CSV layout expected by the ARMS
// compliance import, newest contact first. An empty recruitID or "all"
// exports every recruit.
func (s *ExportService) WriteARMS(w io.Writer, recruitID string) error {
	var interactions []models.Interaction

	query := s.db.Preload("Recruit").Order("date DESC")
	if recruitID != "" && recruitID != "all" {
		query = query.Where("recruit_id = ?", recruitID)
	}
	if err := query.Find(&interactions).Error; err != nil {
		return err
	}

	out := csv.NewWriter(w)
	if err := out.Write(armsHeader); err != nil {
		return err
	}
	for _, i := range interactions {
		var name, ranking, classYear string
		if i.Recruit != nil {
			name = i.Recruit.Name
			ranking = optionalInt(i.Recruit.NationalRanking)
			classYear = optionalInt(i.Recruit.ClassYear)
		}
		record := []string{name, ranking, classYear, i.Date.UTC().Format(time.DateOnly), i.Type, i.Notes, i.Author}
		if err := out.Write(record); err != nil {
			return err
		}
	}
	out.Flush()
	return out.Error()
}

func optionalInt(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}
