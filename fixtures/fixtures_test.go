package fixtures

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"courtiq-api/packages/core/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(
		&models.Recruit{}, &models.UTRHistory{}, &models.RankingHistory{},
		&models.Prospect{}, &models.MatchResult{}, &models.Interaction{}, &models.ProgramProfile{},
	))
	return db
}

func count(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func TestGenerateAndClear(t *testing.T) {
	db := newTestDB(t)
	f := NewFixtures(db)

	require.NoError(t, f.GenerateTestData())
	assert.EqualValues(t, 1, count(t, db, &models.ProgramProfile{}))
	assert.EqualValues(t, 12, count(t, db, &models.Recruit{}))
	assert.EqualValues(t, 96, count(t, db, &models.UTRHistory{}))
	assert.EqualValues(t, 96, count(t, db, &models.RankingHistory{}))
	assert.EqualValues(t, 60, count(t, db, &models.Prospect{}))
	assert.Positive(t, count(t, db, &models.Interaction{}))

	var prospects []models.Prospect
	require.NoError(t, db.Find(&prospects).Error)
	for _, p := range prospects {
		assert.Equal(t, p.PreviousRank-p.CurrentRank, p.RankMovement, p.ExternalID)
		assert.Equal(t, p.RankMovement >= 10, p.IsRising, p.ExternalID)
	}

	var recruit models.Recruit
	require.NoError(t, db.Preload("RankingHistory", func(db *gorm.DB) *gorm.DB {
		return db.Order("recorded_date DESC")
	}).First(&recruit).Error)
	require.NotEmpty(t, recruit.RankingHistory)
	assert.Equal(t, *recruit.NationalRanking, recruit.RankingHistory[0].NationalRanking)

	require.NoError(t, f.ClearAllData())
	assert.Zero(t, count(t, db, &models.Recruit{}))
	assert.Zero(t, count(t, db, &models.Prospect{}))
	assert.Zero(t, count(t, db, &models.UTRHistory{}))
}
