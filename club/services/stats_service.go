package services

import (
	"github.com/Damouche-Billel/4FSC0WE004-Live-Api/club/models"
	"gorm.io/gorm"
)

type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{
		db: db,
	}
}

func (s *StatsService) GetStats() (*models.Stats, error) {
	var totalPlayers int64
	var totalTeams int64
	var totalTournaments int64

	if err := s.db.Model(&models.Player{}).Count(&totalPlayers).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.Team{}).Count(&totalTeams).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.Tournament{}).Count(&totalTournaments).Error; err != nil {
		return nil, err
	}

	byStatus := make(map[string]int64)
	for _, status := range []string{
		models.TournamentStatusUpcoming,
		models.TournamentStatusOngoing,
		models.TournamentStatusCompleted,
	} {
		var count int64
		if err := s.db.Model(&models.Tournament{}).Where("status = ?", status).Count(&count).Error; err != nil {
			return nil, err
		}
		byStatus[status] = count
	}

	return &models.Stats{
		TotalPlayers:        totalPlayers,
		TotalTeams:          totalTeams,
		TotalTournaments:    totalTournaments,
		TournamentsByStatus: byStatus,
	}, nil
}
