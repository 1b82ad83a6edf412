package services_test

import (
	"errors"
	"testing"

	"github.com/Damouche-Billel/4FSC0WE004-Live-Api/club/models"
	"github.com/Damouche-Billel/4FSC0WE004-Live-Api/club/services"
)

func TestCreatePlayerSetsDefaults(t *testing.T) {
	db := newTestDB(t)
	s := services.NewPlayerService(db)

	player, err := s.CreatePlayer(models.CreatePlayerRequest{
		Name:         "Enzo Ricci",
		Position:     "Attacking Midfielder",
		Age:          intPtr(23),
		Nationality:  "Italy",
		JerseyNumber: intPtr(10),
	})
	if err != nil {
		t.Fatalf("CreatePlayer returned error: %v", err)
	}

	if player.ID == 0 {
		t.Error("expected a generated id")
	}
	if player.CreatedAt.IsZero() {
		t.Error("expected createdAt to be set")
	}
	if !player.IsAvailable {
		t.Error("expected isAvailable to default to true")
	}
}

func TestCreatePlayerDuplicateJersey(t *testing.T) {
	db := newTestDB(t)
	s := services.NewPlayerService(db)

	original := mustCreatePlayer(t, s, "Victor Eze", 9)

	_, err := s.CreatePlayer(models.CreatePlayerRequest{
		Name:         "Marco Silva",
		Position:     "Striker",
		Age:          intPtr(19),
		Nationality:  "Portugal",
		JerseyNumber: intPtr(9),
	})
	if !errors.Is(err, services.ErrDuplicateJersey) {
		t.Fatalf("expected ErrDuplicateJersey, got %v", err)
	}

	// The existing record must be untouched.
	reloaded, err := s.GetPlayerByID(original.ID)
	if err != nil {
		t.Fatalf("GetPlayerByID returned error: %v", err)
	}
	if reloaded.Name != "Victor Eze" || reloaded.JerseyNumber != 9 {
		t.Errorf("existing player mutated: %+v", reloaded)
	}

	players, err := s.GetAllPlayers()
	if err != nil {
		t.Fatalf("GetAllPlayers returned error: %v", err)
	}
	if len(players) != 1 {
		t.Errorf("expected 1 player after failed create, got %d", len(players))
	}
}

func TestGetAllPlayersOrderedByJersey(t *testing.T) {
	db := newTestDB(t)
	s := services.NewPlayerService(db)

	mustCreatePlayer(t, s, "Nine", 9)
	mustCreatePlayer(t, s, "Three", 3)
	mustCreatePlayer(t, s, "Seven", 7)

	players, err := s.GetAllPlayers()
	if err != nil {
		t.Fatalf("GetAllPlayers returned error: %v", err)
	}

	want := []int{3, 7, 9}
	if len(players) != len(want) {
		t.Fatalf("expected %d players, got %d", len(want), len(players))
	}
	for i, jersey := range want {
		if players[i].JerseyNumber != jersey {
			t.Errorf("position %d: expected jersey %d, got %d", i, jersey, players[i].JerseyNumber)
		}
	}
}

func TestUpdatePlayer(t *testing.T) {
	db := newTestDB(t)
	s := services.NewPlayerService(db)

	p1 := mustCreatePlayer(t, s, "Adam Kowalski", 8)
	mustCreatePlayer(t, s, "Jonas Berg", 11)

	// Taking another player's jersey fails.
	_, err := s.UpdatePlayer(p1.ID, models.UpdatePlayerRequest{JerseyNumber: intPtr(11)})
	if !errors.Is(err, services.ErrDuplicateJersey) {
		t.Fatalf("expected ErrDuplicateJersey, got %v", err)
	}

	// Re-submitting the player's own jersey is fine.
	if _, err := s.UpdatePlayer(p1.ID, models.UpdatePlayerRequest{JerseyNumber: intPtr(8)}); err != nil {
		t.Fatalf("updating to own jersey returned error: %v", err)
	}

	// Partial updates only touch the supplied fields.
	updated, err := s.UpdatePlayer(p1.ID, models.UpdatePlayerRequest{
		Position:    strPtr("Central Midfielder"),
		IsAvailable: boolPtr(false),
	})
	if err != nil {
		t.Fatalf("UpdatePlayer returned error: %v", err)
	}
	if updated.Position != "Central Midfielder" {
		t.Errorf("expected position updated, got %q", updated.Position)
	}
	if updated.IsAvailable {
		t.Error("expected isAvailable false")
	}
	if updated.Name != "Adam Kowalski" {
		t.Errorf("name should be unchanged, got %q", updated.Name)
	}
	if !updated.CreatedAt.Equal(p1.CreatedAt) {
		t.Error("createdAt must be immutable")
	}
}

func TestCreatePlayerZeroAge(t *testing.T) {
	db := newTestDB(t)
	s := services.NewPlayerService(db)

	player, err := s.CreatePlayer(models.CreatePlayerRequest{
		Name:         "Unborn Prodigy",
		Position:     "Striker",
		Age:          intPtr(0),
		Nationality:  "France",
		JerseyNumber: intPtr(99),
	})
	if err != nil {
		t.Fatalf("CreatePlayer with age 0 returned error: %v", err)
	}
	if player.Age != 0 {
		t.Errorf("expected age 0 persisted, got %d", player.Age)
	}
}

func TestUpdatePlayerRejectsEmptyFields(t *testing.T) {
	db := newTestDB(t)
	s := services.NewPlayerService(db)

	player := mustCreatePlayer(t, s, "Enzo Ricci", 10)

	for _, req := range []models.UpdatePlayerRequest{
		{Name: strPtr("")},
		{Position: strPtr("")},
		{Nationality: strPtr("")},
	} {
		if _, err := s.UpdatePlayer(player.ID, req); !errors.Is(err, services.ErrValidation) {
			t.Errorf("expected ErrValidation for %+v, got %v", req, err)
		}
	}

	// The record must be untouched by the rejected updates.
	reloaded, err := s.GetPlayerByID(player.ID)
	if err != nil {
		t.Fatalf("GetPlayerByID returned error: %v", err)
	}
	if reloaded.Name != "Enzo Ricci" || reloaded.Position != "Midfielder" || reloaded.Nationality != "France" {
		t.Errorf("player mutated by rejected update: %+v", reloaded)
	}
}

func TestUpdatePlayerNotFound(t *testing.T) {
	db := newTestDB(t)
	s := services.NewPlayerService(db)

	_, err := s.UpdatePlayer(42, models.UpdatePlayerRequest{Name: strPtr("Ghost")})
	if !errors.Is(err, services.ErrPlayerNotFound) {
		t.Fatalf("expected ErrPlayerNotFound, got %v", err)
	}
}

func TestDeletePlayer(t *testing.T) {
	db := newTestDB(t)
	s := services.NewPlayerService(db)

	player := mustCreatePlayer(t, s, "Paul Girard", 16)

	if err := s.DeletePlayer(player.ID); err != nil {
		t.Fatalf("DeletePlayer returned error: %v", err)
	}

	if _, err := s.GetPlayerByID(player.ID); !errors.Is(err, services.ErrPlayerNotFound) {
		t.Fatalf("expected ErrPlayerNotFound after delete, got %v", err)
	}

	if err := s.DeletePlayer(player.ID); !errors.Is(err, services.ErrPlayerNotFound) {
		t.Fatalf("expected ErrPlayerNotFound on second delete, got %v", err)
	}
}
