package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courtiq-api/packages/core/models"
)

func TestHistoryAddUTR(t *testing.T) {
	db := newTestDB(t)
	recruit := seedRecruit(t, db, models.Recruit{Name: "Alex Carter"})
	svc := NewHistoryService(db)
	svc.now = func() time.Time { return testNow }

	point, err := svc.AddUTR(models.CreateUTRHistoryRequest{RecruitID: recruit.ID, UTRRating: 10.2})
	require.NoError(t, err)
	assert.Equal(t, models.HistorySourceManual, point.Source)
	assert.True(t, point.RecordedDate.Equal(models.RecordedDay(testNow)))

	// Same day again is ignored.
	again, err := svc.AddUTR(models.CreateUTRHistoryRequest{RecruitID: recruit.ID, UTRRating: 11.0})
	require.NoError(t, err)
	assert.Equal(t, point.ID, again.ID)
	assert.Equal(t, 10.2, again.UTRRating)

	_, err = svc.AddUTR(models.CreateUTRHistoryRequest{RecruitID: recruit.ID, UTRRating: 10.9, RecordedDate: "2026-03-09"})
	require.NoError(t, err)

	var stored models.Recruit
	require.NoError(t, db.First(&stored, "id = ?", recruit.ID).Error)
	require.NotNil(t, stored.UTRRating)
	assert.Equal(t, 10.9, *stored.UTRRating)

	var count int64
	require.NoError(t, db.Model(&models.UTRHistory{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)

	require.NoError(t, svc.DeleteUTR(point.ID))
	require.ErrorIs(t, svc.DeleteUTR(point.ID), ErrHistoryNotFound)
}

func TestHistoryAddRanking(t *testing.T) {
	db := newTestDB(t)
	recruit := seedRecruit(t, db, models.Recruit{Name: "Alex Carter", NationalRanking: intPtr(50)})
	svc := NewHistoryService(db)

	point, err := svc.AddRanking(models.CreateRankingHistoryRequest{RecruitID: recruit.ID, NationalRanking: 44, RecordedDate: "2026-02-01", Source: models.HistorySourceCron})
	require.NoError(t, err)
	assert.Equal(t, models.HistorySourceCron, point.Source)

	var stored models.Recruit
	require.NoError(t, db.First(&stored, "id = ?", recruit.ID).Error)
	assert.Equal(t, intPtr(44), stored.NationalRanking)

	require.NoError(t, svc.DeleteRanking(point.ID))
}

func TestHistoryRejects(t *testing.T) {
	db := newTestDB(t)
	svc := NewHistoryService(db)

	_, err := svc.AddUTR(models.CreateUTRHistoryRequest{RecruitID: "missing", UTRRating: 9})
	require.ErrorIs(t, err, ErrRecruitNotFound)

	_, err = svc.AddRanking(models.CreateRankingHistoryRequest{RecruitID: "missing", NationalRanking: 9, RecordedDate: "03/01/2026"})
	require.ErrorIs(t, err, ErrInvalidDate)
}
