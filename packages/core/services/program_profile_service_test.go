package services

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courtiq-api/packages/core/models"
)

func TestProgramProfile(t *testing.T) {
	db := newTestDB(t)
	svc := NewProgramProfileService(db)

	_, err := svc.GetProfile()
	require.ErrorIs(t, err, ErrProfileNotFound)
	lo, hi, err := svc.TargetRange()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 200}, []int{lo, hi})

	require.NoError(t, db.Create(&models.ProgramProfile{
		Name:             "Men's Tennis",
		TargetRankingMin: 1,
		TargetRankingMax: 200,
		Criteria: map[string]models.Criterion{
			"level":     {Label: "Playing level", Weight: 60},
			"academics": {Label: "Academics", Weight: 40},
		},
	}).Error)

	updated, err := svc.UpdateProfile(models.UpdateProgramProfileRequest{TargetRankingMax: intPtr(120)})
	require.NoError(t, err)
	assert.Equal(t, 120, updated.TargetRankingMax)
	assert.Len(t, updated.Criteria, 2)

	recruit := seedRecruit(t, db, models.Recruit{Name: "Alex Carter", FitScore: 50})
	resp, err := svc.CalculateFit(models.CalculateFitRequest{
		RecruitID: recruit.ID,
		Scores:    map[string]float64{"level": 9, "academics": 6},
	})
	require.NoError(t, err)
	// (0.9*60 + 0.6*40) / 100 = 78
	assert.Equal(t, 78, resp.FitScore)
	assert.Equal(t, 54.0, resp.Breakdown["level"].Weighted)

	var stored models.Recruit
	require.NoError(t, db.First(&stored, "id = ?", recruit.ID).Error)
	assert.Equal(t, 78, stored.FitScore)
	assert.Equal(t, 24.0, stored.FitScoreBreakdown["academics"].Weighted)

	_, err = svc.CalculateFit(models.CalculateFitRequest{RecruitID: "missing", Scores: map[string]float64{}})
	require.ErrorIs(t, err, ErrRecruitNotFound)
}

func TestInteractionsAndARMSExport(t *testing.T) {
	db := newTestDB(t)
	alex := seedRecruit(t, db, models.Recruit{Name: "Alex Carter", NationalRanking: intPtr(40), ClassYear: intPtr(2027)})
	ben := seedRecruit(t, db, models.Recruit{Name: "Ben Ortiz"})

	interactions := NewInteractionService(db)
	_, err := interactions.LogInteraction(models.CreateInteractionRequest{RecruitID: alex.ID, Type: "call", Date: testNow.AddDate(0, 0, -2), Notes: "Talked schedule, visits", Author: "Coach Reyes"})
	require.NoError(t, err)
	_, err = interactions.LogInteraction(models.CreateInteractionRequest{RecruitID: alex.ID, Type: "email", Date: testNow, Author: "Coach Reyes"})
	require.NoError(t, err)
	_, err = interactions.LogInteraction(models.CreateInteractionRequest{RecruitID: ben.ID, Type: "text", Date: testNow.AddDate(0, 0, -1)})
	require.NoError(t, err)
	_, err = interactions.LogInteraction(models.CreateInteractionRequest{RecruitID: "missing", Type: "text", Date: testNow})
	require.ErrorIs(t, err, ErrRecruitNotFound)

	var stored models.Recruit
	require.NoError(t, db.First(&stored, "id = ?", alex.ID).Error)
	require.NotNil(t, stored.LastContacted)
	assert.True(t, stored.LastContacted.Equal(testNow))

	logged, err := interactions.GetInteractionsByRecruit(alex.ID)
	require.NoError(t, err)
	assert.Len(t, logged, 2)
	assert.Equal(t, "email", logged[0].Type)

	var buf bytes.Buffer
	require.NoError(t, NewExportService(db).WriteARMS(&buf, alex.ID))
	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, armsHeader, rows[0])
	assert.Equal(t, []string{"Alex Carter", "40", "2027", "2026-03-02", "email", "", "Coach Reyes"}, rows[1])
	assert.Equal(t, "Talked schedule, visits", rows[2][5])

	buf.Reset()
	require.NoError(t, NewExportService(db).WriteARMS(&buf, "all"))
	rows, err = csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 4)
	assert.Equal(t, []string{"Ben Ortiz", "", ""}, rows[2][:3])
}
