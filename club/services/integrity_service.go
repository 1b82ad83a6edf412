package services

import (
	"github.com/Damouche-Billel/4FSC0WE004-Live-Api/club/models"
	"gorm.io/gorm"
)

// IntegrityService reports on dangling references left behind by deletes.
// References are weak and only validated at write time, so deleting a player
// or team leaves stale ids in whatever referenced them. This service only
// observes that drift; it never repairs it.
type IntegrityService struct {
	db *gorm.DB
}

func NewIntegrityService(db *gorm.DB) *IntegrityService {
	return &IntegrityService{
		db: db,
	}
}

type IntegrityReport struct {
	DanglingPlayerRefs  int `json:"danglingPlayerRefs"`
	TeamsAffected       int `json:"teamsAffected"`
	DanglingTeamRefs    int `json:"danglingTeamRefs"`
	TournamentsAffected int `json:"tournamentsAffected"`
}

func (s *IntegrityService) Report() (*IntegrityReport, error) {
	report := &IntegrityReport{}

	var teams []models.Team
	if err := s.db.Find(&teams).Error; err != nil {
		return nil, err
	}

	playerRefs := make([]uint, 0)
	for _, team := range teams {
		playerRefs = append(playerRefs, team.PlayerIDs...)
	}

	existingPlayers, err := s.existingIDs(&models.Player{}, playerRefs)
	if err != nil {
		return nil, err
	}

	for _, team := range teams {
		dangling := 0
		for _, id := range team.PlayerIDs {
			if _, ok := existingPlayers[id]; !ok {
				dangling++
			}
		}
		if dangling > 0 {
			report.DanglingPlayerRefs += dangling
			report.TeamsAffected++
		}
	}

	var tournaments []models.Tournament
	if err := s.db.Find(&tournaments).Error; err != nil {
		return nil, err
	}

	teamRefs := make([]uint, 0)
	for _, tournament := range tournaments {
		teamRefs = append(teamRefs, tournament.TeamIDs...)
	}

	existingTeams, err := s.existingIDs(&models.Team{}, teamRefs)
	if err != nil {
		return nil, err
	}

	for _, tournament := range tournaments {
		dangling := 0
		for _, id := range tournament.TeamIDs {
			if _, ok := existingTeams[id]; !ok {
				dangling++
			}
		}
		if dangling > 0 {
			report.DanglingTeamRefs += dangling
			report.TournamentsAffected++
		}
	}

	return report, nil
}

func (s *IntegrityService) existingIDs(model interface{}, refs []uint) (map[uint]struct{}, error) {
	existing := make(map[uint]struct{})
	if len(refs) == 0 {
		return existing, nil
	}

	var ids []uint
	if err := s.db.Model(model).Where("id IN ?", uniqueIDs(refs)).Pluck("id", &ids).Error; err != nil {
		return nil, err
	}

	for _, id := range ids {
		existing[id] = struct{}{}
	}

	return existing, nil
}
