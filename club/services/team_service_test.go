package services_test

import (
	"errors"
	"testing"

	"github.com/Damouche-Billel/4FSC0WE004-Live-Api/club/models"
	"github.com/Damouche-Billel/4FSC0WE004-Live-Api/club/services"
)

func TestCreateTeamUnknownPlayerRef(t *testing.T) {
	db := newTestDB(t)
	playerService := services.NewPlayerService(db)
	teamService := services.NewTeamService(db)

	p1 := mustCreatePlayer(t, playerService, "Lucas Moreau", 3)

	_, err := teamService.CreateTeam(models.CreateTeamRequest{
		Name:      "First Team",
		Formation: "4-3-3",
		Players:   []uint{p1.ID, 9999},
	})
	if !errors.Is(err, services.ErrInvalidReference) {
		t.Fatalf("expected ErrInvalidReference, got %v", err)
	}

	// Nothing must have been persisted.
	teams, err := teamService.GetAllTeams()
	if err != nil {
		t.Fatalf("GetAllTeams returned error: %v", err)
	}
	if len(teams) != 0 {
		t.Errorf("expected no teams after failed create, got %d", len(teams))
	}
}

func TestCreateTeamDefaultsEmptyPlayers(t *testing.T) {
	db := newTestDB(t)
	teamService := services.NewTeamService(db)

	team, err := teamService.CreateTeam(models.CreateTeamRequest{
		Name:      "Youth Squad",
		Formation: "4-4-2",
	})
	if err != nil {
		t.Fatalf("CreateTeam returned error: %v", err)
	}

	if team.Players == nil {
		t.Fatal("expected players to be an empty list, not null")
	}
	if len(team.Players) != 0 {
		t.Errorf("expected 0 players, got %d", len(team.Players))
	}
}

func TestTeamExpansionPreservesOrderAndDuplicates(t *testing.T) {
	db := newTestDB(t)
	playerService := services.NewPlayerService(db)
	teamService := services.NewTeamService(db)

	p1 := mustCreatePlayer(t, playerService, "Karim Benali", 5)
	p2 := mustCreatePlayer(t, playerService, "Diego Herrera", 4)
	p3 := mustCreatePlayer(t, playerService, "Thomas Laurent", 2)

	created := mustCreateTeam(t, teamService, "Back Line", []uint{p3.ID, p1.ID, p2.ID, p1.ID})

	team, err := teamService.GetTeamByID(created.ID)
	if err != nil {
		t.Fatalf("GetTeamByID returned error: %v", err)
	}

	wantNames := []string{"Thomas Laurent", "Karim Benali", "Diego Herrera", "Karim Benali"}
	if len(team.Players) != len(wantNames) {
		t.Fatalf("expected %d players, got %d", len(wantNames), len(team.Players))
	}
	for i, name := range wantNames {
		if team.Players[i].Name != name {
			t.Errorf("position %d: expected %q, got %q", i, name, team.Players[i].Name)
		}
	}
}

func TestDeleteReferencedPlayerLeavesDanglingRef(t *testing.T) {
	db := newTestDB(t)
	playerService := services.NewPlayerService(db)
	teamService := services.NewTeamService(db)

	p1 := mustCreatePlayer(t, playerService, "Sofiane Cherki", 7)
	p2 := mustCreatePlayer(t, playerService, "Victor Eze", 9)

	created := mustCreateTeam(t, teamService, "Attack", []uint{p1.ID, p2.ID})

	// Deleting a referenced player succeeds and does not cascade.
	if err := playerService.DeletePlayer(p1.ID); err != nil {
		t.Fatalf("DeletePlayer returned error: %v", err)
	}

	team, err := teamService.GetTeamByID(created.ID)
	if err != nil {
		t.Fatalf("fetching team after referenced delete returned error: %v", err)
	}
	if len(team.Players) != 1 {
		t.Fatalf("expected 1 resolvable player, got %d", len(team.Players))
	}
	if team.Players[0].ID != p2.ID {
		t.Errorf("expected remaining player %d, got %d", p2.ID, team.Players[0].ID)
	}
}

func TestUpdateTeamReplacesPlayers(t *testing.T) {
	db := newTestDB(t)
	playerService := services.NewPlayerService(db)
	teamService := services.NewTeamService(db)

	p1 := mustCreatePlayer(t, playerService, "Mateus Oliveira", 6)
	p2 := mustCreatePlayer(t, playerService, "Ousmane Diallo", 14)

	created := mustCreateTeam(t, teamService, "Midfield", []uint{p1.ID})

	// A bad reference rejects the whole update.
	_, err := teamService.UpdateTeam(created.ID, models.UpdateTeamRequest{
		Players: idsPtr([]uint{p2.ID, 9999}),
	})
	if !errors.Is(err, services.ErrInvalidReference) {
		t.Fatalf("expected ErrInvalidReference, got %v", err)
	}

	unchanged, err := teamService.GetTeamByID(created.ID)
	if err != nil {
		t.Fatalf("GetTeamByID returned error: %v", err)
	}
	if len(unchanged.Players) != 1 || unchanged.Players[0].ID != p1.ID {
		t.Errorf("team players changed by failed update: %+v", unchanged.Players)
	}

	// A valid list replaces the old one wholesale.
	updated, err := teamService.UpdateTeam(created.ID, models.UpdateTeamRequest{
		Formation: strPtr("3-5-2"),
		Players:   idsPtr([]uint{p2.ID}),
	})
	if err != nil {
		t.Fatalf("UpdateTeam returned error: %v", err)
	}
	if updated.Formation != "3-5-2" {
		t.Errorf("expected formation 3-5-2, got %q", updated.Formation)
	}
	if len(updated.Players) != 1 || updated.Players[0].ID != p2.ID {
		t.Errorf("expected players replaced with %d, got %+v", p2.ID, updated.Players)
	}
}

func TestUpdateTeamRejectsEmptyFields(t *testing.T) {
	db := newTestDB(t)
	teamService := services.NewTeamService(db)

	team := mustCreateTeam(t, teamService, "First Team", nil)

	for _, req := range []models.UpdateTeamRequest{
		{Name: strPtr("")},
		{Formation: strPtr("")},
	} {
		if _, err := teamService.UpdateTeam(team.ID, req); !errors.Is(err, services.ErrValidation) {
			t.Errorf("expected ErrValidation for %+v, got %v", req, err)
		}
	}

	reloaded, err := teamService.GetTeamByID(team.ID)
	if err != nil {
		t.Fatalf("GetTeamByID returned error: %v", err)
	}
	if reloaded.Name != "First Team" || reloaded.Formation != "4-4-2" {
		t.Errorf("team mutated by rejected update: %+v", reloaded)
	}
}

func TestDeleteTeamNotFound(t *testing.T) {
	db := newTestDB(t)
	teamService := services.NewTeamService(db)

	if err := teamService.DeleteTeam(42); !errors.Is(err, services.ErrTeamNotFound) {
		t.Fatalf("expected ErrTeamNotFound, got %v", err)
	}
}
