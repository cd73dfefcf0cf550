package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courtiq-api/packages/core/models"
)

func TestRecruitCRUD(t *testing.T) {
	db := newTestDB(t)
	svc := NewRecruitService(db)

	created, err := svc.CreateRecruit(models.CreateRecruitRequest{
		Name:               " Alex Carter ",
		TennisRecruitingID: strPtr("40123"),
		ITFPlayerID:        strPtr("  "),
		NationalRanking:    intPtr(40),
		Nationality:        "usa",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Alex Carter", created.Name)
	assert.Equal(t, 50, created.FitScore)
	assert.Equal(t, models.PriorityWatch, created.Priority)
	assert.Equal(t, "USA", created.Nationality)
	assert.Nil(t, created.ITFPlayerID)

	zero, err := svc.CreateRecruit(models.CreateRecruitRequest{Name: "Zero Fit", FitScore: intPtr(0), Priority: models.PriorityHigh})
	require.NoError(t, err)
	assert.Equal(t, 0, zero.FitScore)
	assert.Equal(t, models.PriorityHigh, zero.Priority)

	all, err := svc.GetRecruits()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Alex Carter", all[0].Name, "ranked recruits sort first")

	updated, err := svc.UpdateRecruit(created.ID, models.UpdateRecruitRequest{
		Priority: strPtr(models.PriorityMedium),
		Notes:    strPtr("strong lefty serve"),
	})
	require.NoError(t, err)
	assert.Equal(t, models.PriorityMedium, updated.Priority)
	assert.Equal(t, "strong lefty serve", updated.Notes)
	assert.Equal(t, intPtr(40), updated.NationalRanking)

	_, err = svc.UpdateRecruit("missing", models.UpdateRecruitRequest{})
	require.ErrorIs(t, err, ErrRecruitNotFound)

	_, err = svc.GetRecruitByID("missing")
	require.ErrorIs(t, err, ErrRecruitNotFound)
}

func TestDeleteRecruitCascades(t *testing.T) {
	db := newTestDB(t)
	recruit := seedRecruit(t, db, models.Recruit{Name: "Gone Soon"})

	history := NewHistoryService(db)
	history.now = func() time.Time { return testNow }
	_, err := history.AddUTR(models.CreateUTRHistoryRequest{RecruitID: recruit.ID, UTRRating: 10.5})
	require.NoError(t, err)
	_, err = NewInteractionService(db).LogInteraction(models.CreateInteractionRequest{RecruitID: recruit.ID, Type: "call", Date: testNow})
	require.NoError(t, err)

	svc := NewRecruitService(db)
	require.NoError(t, svc.DeleteRecruit(recruit.ID))
	require.ErrorIs(t, svc.DeleteRecruit(recruit.ID), ErrRecruitNotFound)

	var utr, interactions int64
	require.NoError(t, db.Model(&models.UTRHistory{}).Count(&utr).Error)
	require.NoError(t, db.Model(&models.Interaction{}).Count(&interactions).Error)
	assert.Zero(t, utr)
	assert.Zero(t, interactions)
}
