package services

import (
	"errors"
	"fmt"

	"github.com/Damouche-Billel/4FSC0WE004-Live-Api/club/models"
	"gorm.io/gorm"
)

type TournamentService struct {
	db          *gorm.DB
	teamService *TeamService
}

// NewTournamentService takes the team service so tournament expansion can
// reuse the same team-to-players join instead of duplicating it.
func NewTournamentService(db *gorm.DB, teamService *TeamService) *TournamentService {
	return &TournamentService{
		db:          db,
		teamService: teamService,
	}
}

func (s *TournamentService) GetAllTournaments() ([]models.TournamentResponse, error) {
	var tournaments []models.Tournament

	result := s.db.Order("created_at DESC").Find(&tournaments)
	if result.Error != nil {
		return nil, result.Error
	}

	responses := make([]models.TournamentResponse, 0, len(tournaments))
	for i := range tournaments {
		expanded, err := s.Expand(&tournaments[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, *expanded)
	}

	return responses, nil
}

func (s *TournamentService) GetTournamentByID(id uint) (*models.TournamentResponse, error) {
	tournament, err := s.getTournament(id)
	if err != nil {
		return nil, err
	}

	return s.Expand(tournament)
}

func (s *TournamentService) CreateTournament(req models.CreateTournamentRequest) (*models.TournamentResponse, error) {
	teamIDs := req.Teams
	if teamIDs == nil {
		teamIDs = []uint{}
	}

	if err := s.checkTeamRefs(teamIDs); err != nil {
		return nil, err
	}

	maxTeams := models.DefaultMaxTeams
	if req.MaxTeams != nil {
		maxTeams = *req.MaxTeams
	}

	status := req.Status
	if status == "" {
		status = models.TournamentStatusUpcoming
	}

	tournament := &models.Tournament{
		Name:      req.Name,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Location:  req.Location,
		TeamIDs:   teamIDs,
		MaxTeams:  maxTeams,
		Status:    status,
	}

	if err := s.db.Create(tournament).Error; err != nil {
		return nil, err
	}

	return s.Expand(tournament)
}

func (s *TournamentService) UpdateTournament(id uint, req models.UpdateTournamentRequest) (*models.TournamentResponse, error) {
	tournament, err := s.getTournament(id)
	if err != nil {
		return nil, err
	}

	for field, value := range map[string]*string{
		"name":     req.Name,
		"location": req.Location,
	} {
		if value != nil && *value == "" {
			return nil, fmt.Errorf("%w: %s cannot be empty", ErrValidation, field)
		}
	}
	if req.Status != nil && !isValidStatus(*req.Status) {
		return nil, fmt.Errorf("%w: status must be one of upcoming, ongoing, completed", ErrValidation)
	}

	if req.Teams != nil {
		teamIDs := *req.Teams
		if teamIDs == nil {
			teamIDs = []uint{}
		}
		if err := s.checkTeamRefs(teamIDs); err != nil {
			return nil, err
		}
		tournament.TeamIDs = teamIDs
	}
	if req.Name != nil {
		tournament.Name = *req.Name
	}
	if req.StartDate != nil {
		tournament.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		tournament.EndDate = *req.EndDate
	}
	if req.Location != nil {
		tournament.Location = *req.Location
	}
	if req.MaxTeams != nil {
		tournament.MaxTeams = *req.MaxTeams
	}
	// Status transitions are externally driven; any of the three values may
	// replace any other.
	if req.Status != nil {
		tournament.Status = *req.Status
	}

	if err := s.db.Save(tournament).Error; err != nil {
		return nil, err
	}

	return s.Expand(tournament)
}

func (s *TournamentService) DeleteTournament(id uint) error {
	result := s.db.Delete(&models.Tournament{}, id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrTournamentNotFound
	}

	return nil
}

// Expand resolves team references into full teams and, through the team
// service, each team's players. Dangling team ids are dropped the same way
// dangling player ids are.
func (s *TournamentService) Expand(tournament *models.Tournament) (*models.TournamentResponse, error) {
	teams := make([]models.TeamResponse, 0, len(tournament.TeamIDs))

	if len(tournament.TeamIDs) > 0 {
		var found []models.Team
		if err := s.db.Where("id IN ?", uniqueIDs(tournament.TeamIDs)).Find(&found).Error; err != nil {
			return nil, err
		}

		byID := make(map[uint]*models.Team, len(found))
		for i := range found {
			byID[found[i].ID] = &found[i]
		}

		for _, id := range tournament.TeamIDs {
			team, ok := byID[id]
			if !ok {
				continue
			}
			expanded, err := s.teamService.Expand(team)
			if err != nil {
				return nil, err
			}
			teams = append(teams, *expanded)
		}
	}

	return &models.TournamentResponse{
		ID:        tournament.ID,
		Name:      tournament.Name,
		StartDate: tournament.StartDate,
		EndDate:   tournament.EndDate,
		Location:  tournament.Location,
		Teams:     teams,
		MaxTeams:  tournament.MaxTeams,
		Status:    tournament.Status,
		CreatedAt: tournament.CreatedAt,
	}, nil
}

func (s *TournamentService) getTournament(id uint) (*models.Tournament, error) {
	var tournament models.Tournament

	result := s.db.First(&tournament, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, result.Error
	}

	return &tournament, nil
}

// isValidStatus backstops the binding-level enum check, which skips the
// empty string on partial updates.
func isValidStatus(status string) bool {
	switch status {
	case models.TournamentStatusUpcoming, models.TournamentStatusOngoing, models.TournamentStatusCompleted:
		return true
	}
	return false
}

func (s *TournamentService) checkTeamRefs(ids []uint) error {
	if len(ids) == 0 {
		return nil
	}

	unique := uniqueIDs(ids)

	var count int64
	if err := s.db.Model(&models.Team{}).Where("id IN ?", unique).Count(&count).Error; err != nil {
		return err
	}

	if count != int64(len(unique)) {
		return ErrInvalidReference
	}

	return nil
}
