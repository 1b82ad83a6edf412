package services_test

import (
	"testing"
	"time"

	"github.com/Damouche-Billel/4FSC0WE004-Live-Api/club/models"
	"github.com/Damouche-Billel/4FSC0WE004-Live-Api/club/services"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&models.Player{}, &models.Team{}, &models.Tournament{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func boolPtr(v bool) *bool { return &v }

func idsPtr(v []uint) *[]uint { return &v }

func datePtr(v time.Time) *time.Time { return &v }

func mustCreatePlayer(t *testing.T, s *services.PlayerService, name string, jersey int) *models.Player {
	t.Helper()

	player, err := s.CreatePlayer(models.CreatePlayerRequest{
		Name:         name,
		Position:     "Midfielder",
		Age:          intPtr(25),
		Nationality:  "France",
		JerseyNumber: intPtr(jersey),
	})
	if err != nil {
		t.Fatalf("failed to create player %s: %v", name, err)
	}

	return player
}

func mustCreateTeam(t *testing.T, s *services.TeamService, name string, playerIDs []uint) *models.TeamResponse {
	t.Helper()

	team, err := s.CreateTeam(models.CreateTeamRequest{
		Name:      name,
		Formation: "4-4-2",
		Players:   playerIDs,
	})
	if err != nil {
		t.Fatalf("failed to create team %s: %v", name, err)
	}

	return team
}

func mustCreateTournament(t *testing.T, s *services.TournamentService, name string, teamIDs []uint) *models.TournamentResponse {
	t.Helper()

	tournament, err := s.CreateTournament(models.CreateTournamentRequest{
		Name:      name,
		StartDate: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 5, 15, 0, 0, 0, 0, time.UTC),
		Location:  "Municipal Stadium",
		Teams:     teamIDs,
	})
	if err != nil {
		t.Fatalf("failed to create tournament %s: %v", name, err)
	}

	return tournament
}
