package services_test

import (
	"errors"
	"testing"
	"time"

	"github.com/Damouche-Billel/4FSC0WE004-Live-Api/club/models"
	"github.com/Damouche-Billel/4FSC0WE004-Live-Api/club/services"
)

func TestCreateTournamentDefaults(t *testing.T) {
	db := newTestDB(t)
	teamService := services.NewTeamService(db)
	tournamentService := services.NewTournamentService(db, teamService)

	tournament := mustCreateTournament(t, tournamentService, "Spring Invitational", nil)

	if tournament.Status != models.TournamentStatusUpcoming {
		t.Errorf("expected default status upcoming, got %q", tournament.Status)
	}
	if tournament.MaxTeams != models.DefaultMaxTeams {
		t.Errorf("expected default maxTeams %d, got %d", models.DefaultMaxTeams, tournament.MaxTeams)
	}
	if tournament.Teams == nil || len(tournament.Teams) != 0 {
		t.Errorf("expected empty teams list, got %+v", tournament.Teams)
	}
}

func TestCreateTournamentUnknownTeamRef(t *testing.T) {
	db := newTestDB(t)
	teamService := services.NewTeamService(db)
	tournamentService := services.NewTournamentService(db, teamService)

	_, err := tournamentService.CreateTournament(models.CreateTournamentRequest{
		Name:      "Phantom Cup",
		StartDate: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		Location:  "Nowhere",
		Teams:     []uint{123},
	})
	if !errors.Is(err, services.ErrInvalidReference) {
		t.Fatalf("expected ErrInvalidReference, got %v", err)
	}

	tournaments, err := tournamentService.GetAllTournaments()
	if err != nil {
		t.Fatalf("GetAllTournaments returned error: %v", err)
	}
	if len(tournaments) != 0 {
		t.Errorf("expected no tournaments after failed create, got %d", len(tournaments))
	}
}

func TestTournamentNestedExpansion(t *testing.T) {
	db := newTestDB(t)
	playerService := services.NewPlayerService(db)
	teamService := services.NewTeamService(db)
	tournamentService := services.NewTournamentService(db, teamService)

	p1 := mustCreatePlayer(t, playerService, "Enzo Ricci", 10)
	p2 := mustCreatePlayer(t, playerService, "Jonas Berg", 11)
	team := mustCreateTeam(t, teamService, "First Team", []uint{p1.ID, p2.ID})

	created := mustCreateTournament(t, tournamentService, "Winter Cup", []uint{team.ID})

	tournament, err := tournamentService.GetTournamentByID(created.ID)
	if err != nil {
		t.Fatalf("GetTournamentByID returned error: %v", err)
	}

	if len(tournament.Teams) != 1 {
		t.Fatalf("expected 1 expanded team, got %d", len(tournament.Teams))
	}
	expandedTeam := tournament.Teams[0]
	if expandedTeam.Name != "First Team" {
		t.Errorf("expected expanded team name, got %q", expandedTeam.Name)
	}
	if len(expandedTeam.Players) != 2 {
		t.Fatalf("expected 2 expanded players inside the team, got %d", len(expandedTeam.Players))
	}
	if expandedTeam.Players[0].Name != "Enzo Ricci" || expandedTeam.Players[1].Name != "Jonas Berg" {
		t.Errorf("players not expanded in stored order: %+v", expandedTeam.Players)
	}
}

func TestTournamentStatusJumpToCompleted(t *testing.T) {
	db := newTestDB(t)
	teamService := services.NewTeamService(db)
	tournamentService := services.NewTournamentService(db, teamService)

	created := mustCreateTournament(t, tournamentService, "League Finals", nil)

	// No enforced ordering: upcoming may go straight to completed.
	updated, err := tournamentService.UpdateTournament(created.ID, models.UpdateTournamentRequest{
		Status: strPtr(models.TournamentStatusCompleted),
	})
	if err != nil {
		t.Fatalf("UpdateTournament returned error: %v", err)
	}
	if updated.Status != models.TournamentStatusCompleted {
		t.Errorf("expected status completed, got %q", updated.Status)
	}

	// And back again: completed is not terminal.
	reverted, err := tournamentService.UpdateTournament(created.ID, models.UpdateTournamentRequest{
		Status: strPtr(models.TournamentStatusUpcoming),
	})
	if err != nil {
		t.Fatalf("UpdateTournament returned error: %v", err)
	}
	if reverted.Status != models.TournamentStatusUpcoming {
		t.Errorf("expected status upcoming, got %q", reverted.Status)
	}
}

func TestUpdateTournamentRejectsInvalidFields(t *testing.T) {
	db := newTestDB(t)
	teamService := services.NewTeamService(db)
	tournamentService := services.NewTournamentService(db, teamService)

	created := mustCreateTournament(t, tournamentService, "League Finals", nil)

	// An empty string is not an omitted status; it must not slip past the
	// enum, and neither must any other out-of-enum value.
	for _, req := range []models.UpdateTournamentRequest{
		{Status: strPtr("")},
		{Status: strPtr("cancelled")},
		{Name: strPtr("")},
		{Location: strPtr("")},
	} {
		if _, err := tournamentService.UpdateTournament(created.ID, req); !errors.Is(err, services.ErrValidation) {
			t.Errorf("expected ErrValidation for %+v, got %v", req, err)
		}
	}

	reloaded, err := tournamentService.GetTournamentByID(created.ID)
	if err != nil {
		t.Fatalf("GetTournamentByID returned error: %v", err)
	}
	if reloaded.Status != models.TournamentStatusUpcoming {
		t.Errorf("status mutated by rejected update: %q", reloaded.Status)
	}
	if reloaded.Name != "League Finals" || reloaded.Location != "Municipal Stadium" {
		t.Errorf("tournament mutated by rejected update: %+v", reloaded)
	}
}

func TestTournamentDanglingTeamRef(t *testing.T) {
	db := newTestDB(t)
	teamService := services.NewTeamService(db)
	tournamentService := services.NewTournamentService(db, teamService)

	team := mustCreateTeam(t, teamService, "Doomed", nil)
	created := mustCreateTournament(t, tournamentService, "Survivors Cup", []uint{team.ID})

	if err := teamService.DeleteTeam(team.ID); err != nil {
		t.Fatalf("DeleteTeam returned error: %v", err)
	}

	tournament, err := tournamentService.GetTournamentByID(created.ID)
	if err != nil {
		t.Fatalf("fetching tournament after referenced delete returned error: %v", err)
	}
	if len(tournament.Teams) != 0 {
		t.Errorf("expected the deleted team to drop out of expansion, got %+v", tournament.Teams)
	}
}

func TestUpdateTournamentFields(t *testing.T) {
	db := newTestDB(t)
	teamService := services.NewTeamService(db)
	tournamentService := services.NewTournamentService(db, teamService)

	created := mustCreateTournament(t, tournamentService, "Autumn Open", nil)

	newStart := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	updated, err := tournamentService.UpdateTournament(created.ID, models.UpdateTournamentRequest{
		Location:  strPtr("Indoor Arena"),
		StartDate: datePtr(newStart),
		MaxTeams:  intPtr(4),
	})
	if err != nil {
		t.Fatalf("UpdateTournament returned error: %v", err)
	}

	if updated.Location != "Indoor Arena" {
		t.Errorf("expected location updated, got %q", updated.Location)
	}
	if !updated.StartDate.Equal(newStart) {
		t.Errorf("expected startDate updated, got %v", updated.StartDate)
	}
	if updated.MaxTeams != 4 {
		t.Errorf("expected maxTeams 4, got %d", updated.MaxTeams)
	}
	if updated.Name != "Autumn Open" {
		t.Errorf("name should be unchanged, got %q", updated.Name)
	}
}
