package fixtures

import (
	"fmt"
	"log"
	"time"

	"github.com/Damouche-Billel/4FSC0WE004-Live-Api/club/models"
	"gorm.io/gorm"
)

type Fixtures struct {
	db *gorm.DB
}

func NewFixtures(db *gorm.DB) *Fixtures {
	return &Fixtures{db: db}
}

// GenerateTestData creates a small squad, two teams drawn from it and two
// tournaments referencing those teams.
func (f *Fixtures) GenerateTestData() error {
	log.Println("Starting fixtures generation...")

	players, err := f.generatePlayers()
	if err != nil {
		return fmt.Errorf("failed to generate players: %w", err)
	}

	teams, err := f.generateTeams(players)
	if err != nil {
		return fmt.Errorf("failed to generate teams: %w", err)
	}

	if err := f.generateTournaments(teams); err != nil {
		return fmt.Errorf("failed to generate tournaments: %w", err)
	}

	log.Println("Fixtures generation completed")
	return nil
}

// ClearAllData removes every record from the three collections.
func (f *Fixtures) ClearAllData() error {
	log.Println("Clearing all fixture data...")

	for _, model := range []interface{}{
		&models.Tournament{},
		&models.Team{},
		&models.Player{},
	} {
		if err := f.db.Where("1 = 1").Delete(model).Error; err != nil {
			return err
		}
	}

	return nil
}

func (f *Fixtures) generatePlayers() ([]models.Player, error) {
	players := []models.Player{
		{Name: "Yanis Meziane", Position: "Goalkeeper", Age: 27, Nationality: "France", JerseyNumber: 1, IsAvailable: true},
		{Name: "Thomas Laurent", Position: "Right Back", Age: 24, Nationality: "France", JerseyNumber: 2, IsAvailable: true},
		{Name: "Diego Herrera", Position: "Centre Back", Age: 29, Nationality: "Spain", JerseyNumber: 4, IsAvailable: true},
		{Name: "Karim Benali", Position: "Centre Back", Age: 26, Nationality: "Algeria", JerseyNumber: 5, IsAvailable: true},
		{Name: "Lucas Moreau", Position: "Left Back", Age: 22, Nationality: "France", JerseyNumber: 3, IsAvailable: true},
		{Name: "Mateus Oliveira", Position: "Defensive Midfielder", Age: 28, Nationality: "Brazil", JerseyNumber: 6, IsAvailable: true},
		{Name: "Adam Kowalski", Position: "Central Midfielder", Age: 25, Nationality: "Poland", JerseyNumber: 8, IsAvailable: true},
		{Name: "Enzo Ricci", Position: "Attacking Midfielder", Age: 23, Nationality: "Italy", JerseyNumber: 10, IsAvailable: true},
		{Name: "Sofiane Cherki", Position: "Right Winger", Age: 21, Nationality: "Morocco", JerseyNumber: 7, IsAvailable: true},
		{Name: "Jonas Berg", Position: "Left Winger", Age: 24, Nationality: "Norway", JerseyNumber: 11, IsAvailable: true},
		{Name: "Victor Eze", Position: "Striker", Age: 26, Nationality: "Nigeria", JerseyNumber: 9, IsAvailable: true},
		{Name: "Paul Girard", Position: "Goalkeeper", Age: 31, Nationality: "France", JerseyNumber: 16, IsAvailable: false},
		{Name: "Marco Silva", Position: "Striker", Age: 19, Nationality: "Portugal", JerseyNumber: 19, IsAvailable: true},
		{Name: "Ousmane Diallo", Position: "Central Midfielder", Age: 20, Nationality: "Senegal", JerseyNumber: 14, IsAvailable: true},
	}

	for i := range players {
		if err := f.db.Create(&players[i]).Error; err != nil {
			return nil, err
		}
	}

	log.Printf("Created %d players", len(players))
	return players, nil
}

func (f *Fixtures) generateTeams(players []models.Player) ([]models.Team, error) {
	firstXI := make([]uint, 0, 11)
	for _, p := range players[:11] {
		firstXI = append(firstXI, p.ID)
	}

	reserves := []uint{players[11].ID, players[12].ID, players[13].ID}

	teams := []models.Team{
		{Name: "First Team", Formation: "4-3-3", PlayerIDs: firstXI},
		{Name: "Reserves", Formation: "4-4-2", PlayerIDs: reserves},
	}

	for i := range teams {
		if err := f.db.Create(&teams[i]).Error; err != nil {
			return nil, err
		}
	}

	log.Printf("Created %d teams", len(teams))
	return teams, nil
}

func (f *Fixtures) generateTournaments(teams []models.Team) error {
	teamIDs := make([]uint, 0, len(teams))
	for _, t := range teams {
		teamIDs = append(teamIDs, t.ID)
	}

	now := time.Now()
	tournaments := []models.Tournament{
		{
			Name:      "Spring Invitational",
			StartDate: now.AddDate(0, 1, 0),
			EndDate:   now.AddDate(0, 1, 14),
			Location:  "Municipal Stadium",
			TeamIDs:   teamIDs,
			MaxTeams:  8,
			Status:    models.TournamentStatusUpcoming,
		},
		{
			Name:      "Winter Cup",
			StartDate: now.AddDate(0, -3, 0),
			EndDate:   now.AddDate(0, -2, -14),
			Location:  "Indoor Arena",
			TeamIDs:   []uint{teams[0].ID},
			MaxTeams:  16,
			Status:    models.TournamentStatusCompleted,
		},
	}

	for i := range tournaments {
		if err := f.db.Create(&tournaments[i]).Error; err != nil {
			return err
		}
	}

	log.Printf("Created %d tournaments", len(tournaments))
	return nil
}
