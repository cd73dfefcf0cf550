package core

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"courtiq-api/packages/auth"
	"courtiq-api/packages/auth/middleware"
	"courtiq-api/packages/core/fetch"
	"courtiq-api/packages/core/models"
	"courtiq-api/packages/core/services"
)

const (
	testJWTSecret  = "jwt-secret"
	testCronSecret = "cron-secret"
)

// stubFetcher serves pages by URL; anything else is unavailable.
type stubFetcher map[string]string

func (f stubFetcher) Fetch(_ context.Context, url, _ string) (string, error) {
	body, ok := f[url]
	if !ok {
		return "", fetch.ErrNotAvailable
	}
	return body, nil
}

type testServer struct {
	t      *testing.T
	router *gin.Engine
	db     *gorm.DB
	module *Module
	token  string
}

func newTestServer(t *testing.T, rankingsAPI fetch.Fetcher) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(
		&models.Recruit{}, &models.UTRHistory{}, &models.RankingHistory{},
		&models.Prospect{}, &models.MatchResult{}, &models.Interaction{}, &models.ProgramProfile{},
	))

	guards := auth.NewModule(testJWTSecret, testCronSecret)
	module := NewModule(db, Options{
		Pages:       stubFetcher{},
		RankingsAPI: rankingsAPI,
		Sync:        services.SyncOptions{Delay: 0},
		Coach:       guards.Coach(),
		Cron:        guards.Cron(),
	})

	r := gin.New()
	module.SetupRoutes(r)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, middleware.Claims{
		Email: "coach@example.edu",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "coach-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte(testJWTSecret))
	require.NoError(t, err)

	return &testServer{t: t, router: r, db: db, module: module, token: "Bearer " + token}
}

func (s *testServer) do(method, path, authorization string, body interface{}) *httptest.ResponseRecorder {
	s.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(s.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v))
}

func TestCronRoutesRequireSecret(t *testing.T) {
	s := newTestServer(t, stubFetcher{})

	for _, path := range []string{"/api/cron/sync-rankings", "/api/cron/sync-itf"} {
		w := s.do(http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
		assert.JSONEq(t, `{"error":"Unauthorized"}`, w.Body.String())

		w = s.do(http.MethodGet, path, s.token, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "coach token is not a cron secret")
	}
}

func TestSyncITF(t *testing.T) {
	var urls fetch.URLs

	t.Run("unreachable ranking api", func(t *testing.T) {
		s := newTestServer(t, stubFetcher{})
		w := s.do(http.MethodGet, "/api/cron/sync-itf", "Bearer "+testCronSecret, nil)
		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Contains(t, w.Body.String(), "error")
	})

	t.Run("unreadable body", func(t *testing.T) {
		s := newTestServer(t, stubFetcher{urls.ITFRankings(): "<html>blocked</html>"})
		w := s.do(http.MethodGet, "/api/cron/sync-itf", "Bearer "+testCronSecret, nil)
		assert.Equal(t, http.StatusBadGateway, w.Code)
	})

	t.Run("success", func(t *testing.T) {
		body := `[{"playerId":"900100","playerGivenName":"Ana","playerFamilyName":"Lopez","playerNationalityCode":"ESP","rank":8},
			{"playerId":900200,"playerGivenName":"Jo","playerFamilyName":"Kim","playerNationalityCode":"KOR","rank":9}]`
		s := newTestServer(t, stubFetcher{urls.ITFRankings(): body})

		w := s.do(http.MethodGet, "/api/cron/sync-itf", "Bearer "+testCronSecret, nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resp models.ProspectImportResponse
		decode(t, w, &resp)
		assert.True(t, resp.Success)
		assert.Equal(t, 2, resp.TotalFetched)
		assert.Equal(t, 1, resp.AfterFilter)
		assert.Equal(t, 1, resp.Upserted)

		w = s.do(http.MethodGet, "/api/prospects?source=itf", s.token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		var list struct {
			Success bool              `json:"success"`
			Data    []models.Prospect `json:"data"`
		}
		decode(t, w, &list)
		require.Len(t, list.Data, 1)
		assert.Equal(t, "Ana Lopez", list.Data[0].Name)
	})
}

func TestRunJob(t *testing.T) {
	var urls fetch.URLs
	body := `[{"playerId":"900100","playerGivenName":"Ana","playerFamilyName":"Lopez","playerNationalityCode":"ESP","rank":8}]`
	s := newTestServer(t, stubFetcher{urls.ITFRankings(): body})

	require.NoError(t, s.module.RunJob(services.JobSyncITF))

	var count int64
	require.NoError(t, s.db.Model(&models.Prospect{}).Where("source = ?", models.SourceITF).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	assert.Error(t, s.module.RunJob("nightly-backup"))
}

func TestSyncRankingsReturnsSummary(t *testing.T) {
	s := newTestServer(t, stubFetcher{})
	require.NoError(t, s.db.Create(&models.Recruit{Name: "Sam Hill", TennisRecruitingID: ptr("12345"), Priority: models.PriorityWatch}).Error)

	w := s.do(http.MethodGet, "/api/cron/sync-rankings", "Bearer "+testCronSecret, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.RankingSyncResponse
	decode(t, w, &resp)
	assert.True(t, resp.Success)
	assert.Equal(t, models.SyncSummary{Processed: 1, Failed: 1}, resp.Summary)
	require.Len(t, resp.Details, 1)
	assert.Equal(t, models.SyncStatusFailed, resp.Details[0].Status)
}

func TestCoachRoutesRequireToken(t *testing.T) {
	s := newTestServer(t, stubFetcher{})

	w := s.do(http.MethodGet, "/api/recruits", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(http.MethodGet, "/api/recruits", "Bearer "+testCronSecret, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRecruitLifecycle(t *testing.T) {
	s := newTestServer(t, stubFetcher{})

	w := s.do(http.MethodPost, "/api/recruits", s.token, gin.H{"national_ranking": 40})
	assert.Equal(t, http.StatusBadRequest, w.Code, "name is required")

	w = s.do(http.MethodPost, "/api/recruits", s.token, gin.H{"name": "Alex Carter", "national_ranking": 40, "priority": "Medium"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created struct {
		Data models.Recruit `json:"data"`
	}
	decode(t, w, &created)
	id := created.Data.ID
	require.NotEmpty(t, id)
	assert.Equal(t, 50, created.Data.FitScore)

	w = s.do(http.MethodPatch, "/api/recruits/"+id, s.token, gin.H{"notes": "Strong serve"})
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(http.MethodPost, "/api/utr-history", s.token, gin.H{"recruit_id": id, "utr_rating": 11.2, "recorded_date": "2026-03-01"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	w = s.do(http.MethodPost, "/api/utr-history", s.token, gin.H{"recruit_id": id, "utr_rating": 11.2, "recorded_date": "03/01/2026"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPost, "/api/interactions", s.token, gin.H{"recruit_id": id, "type": "call", "date": "2026-03-02T15:00:00Z", "author": "Coach Reyes"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = s.do(http.MethodGet, "/api/recruits/"+id, s.token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var fetched struct {
		Data models.Recruit `json:"data"`
	}
	decode(t, w, &fetched)
	assert.Equal(t, "Strong serve", fetched.Data.Notes)
	require.NotNil(t, fetched.Data.UTRRating)
	assert.Equal(t, 11.2, *fetched.Data.UTRRating)
	assert.NotNil(t, fetched.Data.LastContacted)

	w = s.do(http.MethodGet, "/api/exports/arms?recruit_id="+id, s.token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "arms-export.csv")
	assert.Contains(t, w.Body.String(), "Alex Carter,40,,2026-03-02,call,,Coach Reyes")

	w = s.do(http.MethodDelete, "/api/recruits/"+id, s.token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = s.do(http.MethodGet, "/api/recruits/"+id, s.token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"recruit not found"}`, w.Body.String())
}

func TestIngestMatchResultsFromMarkup(t *testing.T) {
	s := newTestServer(t, stubFetcher{})
	recruit := models.Recruit{Name: "Alex Carter", Priority: models.PriorityWatch}
	require.NoError(t, s.db.Create(&recruit).Error)

	html, err := os.ReadFile("extract/testdata/activity_tennisrecruiting.html")
	require.NoError(t, err)

	req := gin.H{"recruit_id": recruit.ID, "source": "tennisrecruiting", "html": string(html)}

	w := s.do(http.MethodPost, "/api/match-results", s.token, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var first models.IngestMatchResultsResponse
	decode(t, w, &first)
	require.Positive(t, first.Inserted)
	assert.Equal(t, first.Parsed, first.Inserted)

	w = s.do(http.MethodPost, "/api/match-results", s.token, req)
	require.Equal(t, http.StatusOK, w.Code)
	var second models.IngestMatchResultsResponse
	decode(t, w, &second)
	assert.Equal(t, first.Parsed, second.Parsed)
	assert.Zero(t, second.Inserted)

	w = s.do(http.MethodGet, "/api/match-results?recruit_id="+recruit.ID, s.token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Data []models.MatchResult `json:"data"`
	}
	decode(t, w, &list)
	assert.Len(t, list.Data, first.Inserted)

	w = s.do(http.MethodPost, "/api/match-results", s.token, gin.H{"recruit_id": recruit.ID, "source": "utr", "html": "<table></table>"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPost, "/api/match-results", s.token, gin.H{"recruit_id": recruit.ID})
	assert.Equal(t, http.StatusBadRequest, w.Code, "recruit without external ids")

	w = s.do(http.MethodGet, "/api/match-results", s.token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProspectQueryValidation(t *testing.T) {
	s := newTestServer(t, stubFetcher{})

	w := s.do(http.MethodGet, "/api/prospects?source=utr", s.token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(http.MethodGet, "/api/prospects?rising=perhaps", s.token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPost, "/api/prospects/missing/promote", s.token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProfileAndDiscovery(t *testing.T) {
	s := newTestServer(t, stubFetcher{})

	w := s.do(http.MethodGet, "/api/program-profile", s.token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"no program profile found"}`, w.Body.String())

	w = s.do(http.MethodPost, "/api/calculate-fit", s.token, gin.H{"recruit_id": "r1", "scores": gin.H{"level": 11}})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(http.MethodGet, "/api/discovery", s.token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp models.DiscoveryResponse
	decode(t, w, &resp)
	assert.True(t, resp.Success)
	assert.Empty(t, resp.Data.All)
	assert.NotNil(t, resp.Data.Undervalued)
}

func ptr(s string) *string { return &s }
