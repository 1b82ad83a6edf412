package migrations

import "gorm.io/gorm"

func GetClubMigrations() []MigrationDefinition {
	return []MigrationDefinition{
		{
			Name: "2026_08_20_000000_create_club_tables",
			Up: func(db *gorm.DB) error {
				// player_ids / team_ids hold ordered reference arrays as JSON.
				// Order and duplicates matter, so no join table.
				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS players (
						id BIGSERIAL PRIMARY KEY,
						name VARCHAR(255) NOT NULL,
						position VARCHAR(100) NOT NULL,
						age INT NOT NULL,
						nationality VARCHAR(100) NOT NULL,
						jersey_number INT NOT NULL,
						is_available BOOLEAN DEFAULT TRUE,
						created_at TIMESTAMP DEFAULT NOW()
					);
					CREATE UNIQUE INDEX IF NOT EXISTS idx_players_jersey_number ON players(jersey_number);
				`).Error; err != nil {
					return err
				}

				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS teams (
						id BIGSERIAL PRIMARY KEY,
						name VARCHAR(255) NOT NULL,
						formation VARCHAR(20) NOT NULL,
						player_ids TEXT NOT NULL DEFAULT '[]',
						created_at TIMESTAMP DEFAULT NOW()
					);
				`).Error; err != nil {
					return err
				}

				return db.Exec(`
					CREATE TABLE IF NOT EXISTS tournaments (
						id BIGSERIAL PRIMARY KEY,
						name VARCHAR(255) NOT NULL,
						start_date TIMESTAMP NOT NULL,
						end_date TIMESTAMP NOT NULL,
						location VARCHAR(255) NOT NULL,
						team_ids TEXT NOT NULL DEFAULT '[]',
						max_teams INT DEFAULT 16,
						status VARCHAR(20) NOT NULL DEFAULT 'upcoming',
						created_at TIMESTAMP DEFAULT NOW()
					);
					CREATE INDEX IF NOT EXISTS idx_tournaments_status ON tournaments(status);
				`).Error
			},
			Down: func(db *gorm.DB) error {
				return db.Exec(`
					DROP TABLE IF EXISTS tournaments;
					DROP TABLE IF EXISTS teams;
					DROP TABLE IF EXISTS players;
				`).Error
			},
		},
	}
}
