package migrations

import "gorm.io/gorm"

// GetAllMigrations returns every migration in apply order.
func GetAllMigrations() []MigrationDefinition {
	return GetCoreMigrations()
}

func GetCoreMigrations() []MigrationDefinition {
	return []MigrationDefinition{
		{
			Name: "2026_01_05_000000_create_recruits_table",
			Up: func(db *gorm.DB) error {
				return db.Exec(`
					CREATE TABLE IF NOT EXISTS recruits (
						id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
						name VARCHAR(255) NOT NULL,
						tennisrecruiting_id VARCHAR(32),
						itf_player_id VARCHAR(32),
						national_ranking INT,
						itf_ranking INT,
						utr_rating DOUBLE PRECISION,
						fit_score INT DEFAULT 0,
						fit_score_breakdown JSONB,
						priority VARCHAR(20) DEFAULT 'Watch',
						class_year INT,
						nationality VARCHAR(3),
						location VARCHAR(255),
						plays VARCHAR(10),
						notes TEXT,
						ai_brief TEXT,
						last_contacted TIMESTAMPTZ NULL,
						created_at TIMESTAMPTZ DEFAULT NOW(),
						updated_at TIMESTAMPTZ DEFAULT NOW()
					);
					CREATE INDEX IF NOT EXISTS idx_recruits_tennisrecruiting_id ON recruits(tennisrecruiting_id);
					CREATE INDEX IF NOT EXISTS idx_recruits_itf_player_id ON recruits(itf_player_id);
					CREATE INDEX IF NOT EXISTS idx_recruits_national_ranking ON recruits(national_ranking);
				`).Error
			},
			Down: func(db *gorm.DB) error {
				return db.Exec("DROP TABLE IF EXISTS recruits CASCADE").Error
			},
		},
		{
			Name: "2026_01_05_000100_create_history_tables",
			Up: func(db *gorm.DB) error {
				// One point per recruit per day; same-day writes are ignored
				// by ON CONFLICT DO NOTHING in the services.
				return db.Exec(`
					CREATE TABLE IF NOT EXISTS utr_history (
						id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
						recruit_id UUID NOT NULL REFERENCES recruits(id) ON DELETE CASCADE,
						utr_rating DOUBLE PRECISION NOT NULL,
						recorded_date DATE NOT NULL,
						source VARCHAR(20) DEFAULT 'manual',
						created_at TIMESTAMPTZ DEFAULT NOW(),
						CONSTRAINT idx_utr_history_recruit_date UNIQUE (recruit_id, recorded_date)
					);
					CREATE TABLE IF NOT EXISTS ranking_history (
						id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
						recruit_id UUID NOT NULL REFERENCES recruits(id) ON DELETE CASCADE,
						national_ranking INT NOT NULL,
						recorded_date DATE NOT NULL,
						source VARCHAR(20) DEFAULT 'manual',
						created_at TIMESTAMPTZ DEFAULT NOW(),
						CONSTRAINT idx_ranking_history_recruit_date UNIQUE (recruit_id, recorded_date)
					);
				`).Error
			},
			Down: func(db *gorm.DB) error {
				return db.Exec("DROP TABLE IF EXISTS utr_history, ranking_history CASCADE").Error
			},
		},
		{
			Name: "2026_01_05_000200_create_interactions_table",
			Up: func(db *gorm.DB) error {
				return db.Exec(`
					CREATE TABLE IF NOT EXISTS interactions (
						id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
						recruit_id UUID NOT NULL REFERENCES recruits(id) ON DELETE CASCADE,
						type VARCHAR(50) NOT NULL,
						date TIMESTAMPTZ NOT NULL,
						notes TEXT,
						author VARCHAR(255),
						created_at TIMESTAMPTZ DEFAULT NOW()
					);
					CREATE INDEX IF NOT EXISTS idx_interactions_recruit_id ON interactions(recruit_id);
					CREATE INDEX IF NOT EXISTS idx_interactions_date ON interactions(date);
				`).Error
			},
			Down: func(db *gorm.DB) error {
				return db.Exec("DROP TABLE IF EXISTS interactions CASCADE").Error
			},
		},
		{
			Name: "2026_01_05_000300_create_scouting_prospects_table",
			Up: func(db *gorm.DB) error {
				return db.Exec(`
					CREATE TABLE IF NOT EXISTS scouting_prospects (
						id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
						source VARCHAR(20) NOT NULL,
						external_id VARCHAR(32) NOT NULL,
						name VARCHAR(255) NOT NULL,
						current_rank INT NOT NULL,
						previous_rank INT NOT NULL,
						rank_movement INT DEFAULT 0,
						is_rising BOOLEAN DEFAULT false,
						source_rank_movement INT,
						nationality VARCHAR(3),
						birth_year INT,
						class_year INT,
						location VARCHAR(255),
						last_synced_at TIMESTAMPTZ NOT NULL,
						created_at TIMESTAMPTZ DEFAULT NOW(),
						updated_at TIMESTAMPTZ DEFAULT NOW(),
						CONSTRAINT idx_prospects_source_external UNIQUE (source, external_id)
					);
					CREATE INDEX IF NOT EXISTS idx_scouting_prospects_is_rising ON scouting_prospects(is_rising);
					CREATE INDEX IF NOT EXISTS idx_scouting_prospects_current_rank ON scouting_prospects(current_rank);
				`).Error
			},
			Down: func(db *gorm.DB) error {
				return db.Exec("DROP TABLE IF EXISTS scouting_prospects CASCADE").Error
			},
		},
		{
			Name: "2026_01_05_000400_create_match_results_table",
			Up: func(db *gorm.DB) error {
				return db.Exec(`
					CREATE TABLE IF NOT EXISTS match_results (
						id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
						recruit_id UUID NOT NULL REFERENCES recruits(id) ON DELETE CASCADE,
						tournament_name VARCHAR(255) NOT NULL,
						tournament_grade VARCHAR(50),
						surface VARCHAR(50),
						round VARCHAR(20) NOT NULL,
						opponent_name VARCHAR(255) NOT NULL,
						opponent_ranking INT,
						opponent_nationality VARCHAR(3),
						opponent_itf_id VARCHAR(32),
						score VARCHAR(100),
						result VARCHAR(1) NOT NULL,
						source VARCHAR(20) NOT NULL,
						match_date DATE NULL,
						created_at TIMESTAMPTZ DEFAULT NOW(),
						CONSTRAINT idx_match_results_dedupe UNIQUE (recruit_id, tournament_name, round, opponent_name)
					);
				`).Error
			},
			Down: func(db *gorm.DB) error {
				return db.Exec("DROP TABLE IF EXISTS match_results CASCADE").Error
			},
		},
		{
			Name: "2026_01_05_000500_create_program_profiles_table",
			Up: func(db *gorm.DB) error {
				return db.Exec(`
					CREATE TABLE IF NOT EXISTS program_profiles (
						id SERIAL PRIMARY KEY,
						name VARCHAR(255),
						target_ranking_min INT DEFAULT 1,
						target_ranking_max INT DEFAULT 200,
						criteria JSONB DEFAULT '{}'::jsonb,
						created_at TIMESTAMPTZ DEFAULT NOW(),
						updated_at TIMESTAMPTZ DEFAULT NOW()
					);
				`).Error
			},
			Down: func(db *gorm.DB) error {
				return db.Exec("DROP TABLE IF EXISTS program_profiles CASCADE").Error
			},
		},
	}
}
