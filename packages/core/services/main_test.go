package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"courtiq-api/packages/core/fetch"
	"courtiq-api/packages/core/models"
)

var testNow = time.Date(2026, time.March, 2, 6, 0, 0, 0, time.UTC)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

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
		&models.Recruit{},
		&models.UTRHistory{},
		&models.RankingHistory{},
		&models.Prospect{},
		&models.MatchResult{},
		&models.Interaction{},
		&models.ProgramProfile{},
	))
	return db
}

func strPtr(s string) *string { return &s }

func intPtr(n int) *int { return &n }

func seedRecruit(t *testing.T, db *gorm.DB, r models.Recruit) models.Recruit {
	t.Helper()
	if r.Priority == "" {
		r.Priority = models.PriorityWatch
	}
	require.NoError(t, db.Create(&r).Error)
	return r
}

// pageFetcher serves canned pages by URL; anything else is unavailable.
type pageFetcher struct {
	mu       sync.Mutex
	pages    map[string]string
	requests []string
}

func (f *pageFetcher) Fetch(_ context.Context, url, _ string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, url)
	body, ok := f.pages[url]
	if !ok {
		return "", fetch.ErrNotAvailable
	}
	return body, nil
}

// testSyncOptions records pauses instead of sleeping.
func testSyncOptions(pauses *int) SyncOptions {
	return SyncOptions{
		Delay: DefaultFetchDelay,
		Sleep: func(d time.Duration) {
			if d == DefaultFetchDelay {
				*pauses++
			}
		},
		Now: func() time.Time { return testNow },
	}
}
