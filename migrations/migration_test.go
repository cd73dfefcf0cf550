package migrations

import (
	"sort"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func table(name string) MigrationDefinition {
	return MigrationDefinition{
		Name: "create_" + name,
		Up: func(db *gorm.DB) error {
			return db.Exec("CREATE TABLE " + name + " (id INTEGER PRIMARY KEY)").Error
		},
		Down: func(db *gorm.DB) error {
			return db.Exec("DROP TABLE " + name).Error
		},
	}
}

func TestMigrateAndRollback(t *testing.T) {
	db := newTestDB(t)
	m, err := NewMigrator(db)
	require.NoError(t, err)

	m.AddMigration(table("alpha"))
	m.AddMigration(table("beta"))
	require.NoError(t, m.Migrate())

	m.AddMigration(table("gamma"))
	require.NoError(t, m.Migrate())
	require.NoError(t, m.Migrate(), "second run is a no-op")

	applied, err := m.Status()
	require.NoError(t, err)
	require.Len(t, applied, 3)
	assert.Equal(t, []int{1, 1, 2}, []int{applied[0].Batch, applied[1].Batch, applied[2].Batch})

	require.NoError(t, m.Rollback(1))
	assert.False(t, db.Migrator().HasTable("gamma"))
	assert.True(t, db.Migrator().HasTable("beta"))

	applied, err = m.Status()
	require.NoError(t, err)
	assert.Len(t, applied, 2)
}

func TestMigrateStopsOnFailure(t *testing.T) {
	db := newTestDB(t)
	m, err := NewMigrator(db)
	require.NoError(t, err)

	m.AddMigration(MigrationDefinition{
		Name: "broken",
		Up:   func(db *gorm.DB) error { return db.Exec("CREATE TABLE (").Error },
	})
	require.ErrorContains(t, m.Migrate(), "migration broken failed")

	applied, err := m.Status()
	require.NoError(t, err)
	assert.Empty(t, applied)
}

func TestCoreMigrationsAreOrdered(t *testing.T) {
	var names []string
	seen := map[string]bool{}
	for _, def := range GetAllMigrations() {
		assert.False(t, seen[def.Name], "duplicate %s", def.Name)
		seen[def.Name] = true
		assert.NotNil(t, def.Down, def.Name)
		names = append(names, def.Name)
	}
	assert.True(t, sort.StringsAreSorted(names))
}
