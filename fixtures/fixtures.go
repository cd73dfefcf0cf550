package fixtures

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"strconv"
	"time"

	"gorm.io/gorm"

	"courtiq-api/packages/core/extract"
	"courtiq-api/packages/core/models"
	"courtiq-api/packages/core/reconcile"
	"courtiq-api/packages/core/utils"
)

var firstNames = []string{"Alex", "Ben", "Carlos", "Daniel", "Eli", "Finn", "Gabe", "Hugo", "Isaac", "Jonah", "Kai", "Leo", "Mateo", "Noah", "Owen", "Rafa"}
var lastNames = []string{"Carter", "Ortiz", "Nguyen", "Fischer", "Rossi", "Kim", "Walsh", "Moreau", "Patel", "Silva", "Brooks", "Jensen"}
var nationalities = []string{"USA", "USA", "USA", "GBR", "CAN", "AUS", "GER", "ESP"}
var interactionTypes = []string{"call", "email", "text", "visit"}

var defaultCriteria = map[string]models.Criterion{
	"level":      {Label: "Playing level", Weight: 35, Description: "UTR and results against ranked opponents"},
	"academics":  {Label: "Academics", Weight: 25, Description: "GPA and test scores"},
	"doubles":    {Label: "Doubles", Weight: 15, Description: "Net play and doubles record"},
	"coachable":  {Label: "Coachability", Weight: 15, Description: "Attitude observed at events"},
	"roster_fit": {Label: "Roster fit", Weight: 10, Description: "Graduation gaps by class year"},
}

type Fixtures struct {
	db  *gorm.DB
	rnd *rand.Rand
	now time.Time
}

func NewFixtures(db *gorm.DB) *Fixtures {
	return &Fixtures{
		db:  db,
		rnd: rand.New(rand.NewSource(42)),
		now: time.Now().UTC(),
	}
}

// GenerateTestData creates a program profile, 12 recruits with eight weeks
// of UTR and ranking history, contact logs, and prospects from both sources.
func (f *Fixtures) GenerateTestData() error {
	if err := f.db.Create(&models.ProgramProfile{
		Name:             "Men's Tennis",
		TargetRankingMin: 1,
		TargetRankingMax: 200,
		Criteria:         defaultCriteria,
	}).Error; err != nil {
		return fmt.Errorf("failed to create program profile: %w", err)
	}

	recruits, err := f.generateRecruits(12)
	if err != nil {
		return fmt.Errorf("failed to generate recruits: %w", err)
	}
	if err := f.generateInteractions(recruits); err != nil {
		return fmt.Errorf("failed to generate interactions: %w", err)
	}

	prospects, err := f.generateProspects(30)
	if err != nil {
		return fmt.Errorf("failed to generate prospects: %w", err)
	}

	slog.Info("fixtures generated", "recruits", len(recruits), "prospects", prospects)
	return nil
}

func (f *Fixtures) generateRecruits(n int) ([]models.Recruit, error) {
	recruits := make([]models.Recruit, 0, n)
	priorities := []string{models.PriorityHigh, models.PriorityMedium, models.PriorityWatch}

	for i := 0; i < n; i++ {
		ranking := 20 + f.rnd.Intn(230)
		utr := 10 + math.Round(f.rnd.Float64()*300)/100
		classYear := 2027 + i%3
		trID := strconv.Itoa(200000 + i*137)

		scores := map[string]float64{}
		for key := range defaultCriteria {
			scores[key] = float64(4 + f.rnd.Intn(7))
		}
		fit, breakdown := utils.CalculateFitScore(defaultCriteria, scores)

		recruit := models.Recruit{
			Name:               f.name(i),
			TennisRecruitingID: &trID,
			NationalRanking:    &ranking,
			UTRRating:          &utr,
			FitScore:           fit,
			FitScoreBreakdown:  breakdown,
			Priority:           priorities[i%len(priorities)],
			ClassYear:          &classYear,
			Nationality:        "USA",
			Plays:              []string{"R", "L"}[i%2],
		}
		if err := f.db.Create(&recruit).Error; err != nil {
			return nil, err
		}
		if err := f.generateHistory(&recruit); err != nil {
			return nil, err
		}
		recruits = append(recruits, recruit)
	}
	return recruits, nil
}

// generateHistory walks weekly points back from the current values so the
// latest point matches the recruit.
func (f *Fixtures) generateHistory(r *models.Recruit) error {
	utr := *r.UTRRating
	ranking := *r.NationalRanking
	utrDrift := (f.rnd.Float64() - 0.4) * 0.15
	rankDrift := f.rnd.Intn(7) - 4

	for week := 0; week < 8; week++ {
		day := models.RecordedDay(f.now.AddDate(0, 0, -7*week))
		if err := f.db.Create(&models.UTRHistory{
			RecruitID:    r.ID,
			UTRRating:    math.Round(utr*100) / 100,
			RecordedDate: day,
			Source:       models.HistorySourceManual,
		}).Error; err != nil {
			return err
		}
		if err := f.db.Create(&models.RankingHistory{
			RecruitID:       r.ID,
			NationalRanking: ranking,
			RecordedDate:    day,
			Source:          models.HistorySourceCron,
		}).Error; err != nil {
			return err
		}
		utr -= utrDrift
		if ranking-rankDrift > 0 {
			ranking -= rankDrift
		}
	}
	return nil
}

func (f *Fixtures) generateInteractions(recruits []models.Recruit) error {
	for i, r := range recruits {
		// every third recruit has never been contacted
		if i%3 == 2 {
			continue
		}
		var last time.Time
		contacts := 1 + f.rnd.Intn(4)
		for j := 0; j < contacts; j++ {
			date := f.now.AddDate(0, 0, -f.rnd.Intn(40)).Truncate(time.Hour)
			if err := f.db.Create(&models.Interaction{
				RecruitID: r.ID,
				Type:      interactionTypes[f.rnd.Intn(len(interactionTypes))],
				Date:      date,
				Notes:     "Fixture contact",
				Author:    "Coach Reyes",
			}).Error; err != nil {
				return err
			}
			if date.After(last) {
				last = date
			}
		}
		if err := f.db.Model(&models.Recruit{}).Where("id = ?", r.ID).Update("last_contacted", last).Error; err != nil {
			return err
		}
	}
	return nil
}

// generateProspects builds prospect rows through the reconciliation engine
// from a synthetic previous ranking, so movement and rising are consistent.
func (f *Fixtures) generateProspects(n int) (int, error) {
	total := 0
	for _, source := range []models.Source{models.SourceITF, models.SourceTennisRecruiting} {
		prior := reconcile.Snapshot{}
		fresh := make([]extract.PlayerRecord, 0, n)
		for i := 0; i < n; i++ {
			id := strconv.Itoa(700000 + i)
			if source == models.SourceTennisRecruiting {
				id = strconv.Itoa(300000 + i)
			}
			rank := 1 + i*6 + f.rnd.Intn(6)
			previous := rank + f.rnd.Intn(25) - 8
			if previous < 1 {
				previous = 1
			}
			prior[id] = reconcile.Prior{Current: previous, Previous: previous}
			fresh = append(fresh, extract.PlayerRecord{
				ExternalID:  id,
				Name:        f.name(i + 3),
				Rank:        rank,
				Nationality: nationalities[i%len(nationalities)],
			})
		}

		batch := reconcile.Reconcile(reconcile.Batch{
			Source: source,
			Fresh:  fresh,
			Prior:  prior,
			Now:    f.now,
		})
		if err := f.db.CreateInBatches(&batch, 100).Error; err != nil {
			return total, err
		}
		total += len(batch)
	}
	return total, nil
}

func (f *Fixtures) name(i int) string {
	return firstNames[i%len(firstNames)] + " " + lastNames[(i*7)%len(lastNames)]
}

// ClearAllData deletes every row the fixtures can create.
func (f *Fixtures) ClearAllData() error {
	tables := []interface{}{
		&models.MatchResult{},
		&models.Interaction{},
		&models.UTRHistory{},
		&models.RankingHistory{},
		&models.Recruit{},
		&models.Prospect{},
		&models.ProgramProfile{},
	}
	for _, table := range tables {
		if err := f.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(table).Error; err != nil {
			return err
		}
	}
	slog.Info("fixture data cleared")
	return nil
}
