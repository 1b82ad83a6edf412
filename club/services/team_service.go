package services

import (
	"errors"
	"fmt"

	"github.com/Damouche-Billel/4FSC0WE004-Live-Api/club/models"
	"gorm.io/gorm"
)

type TeamService struct {
	db *gorm.DB
}

func NewTeamService(db *gorm.DB) *TeamService {
	return &TeamService{
		db: db,
	}
}

func (s *TeamService) GetAllTeams() ([]models.TeamResponse, error) {
	var teams []models.Team

	result := s.db.Order("created_at DESC").Find(&teams)
	if result.Error != nil {
		return nil, result.Error
	}

	responses := make([]models.TeamResponse, 0, len(teams))
	for i := range teams {
		expanded, err := s.Expand(&teams[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, *expanded)
	}

	return responses, nil
}

func (s *TeamService) GetTeamByID(id uint) (*models.TeamResponse, error) {
	team, err := s.getTeam(id)
	if err != nil {
		return nil, err
	}

	return s.Expand(team)
}

func (s *TeamService) CreateTeam(req models.CreateTeamRequest) (*models.TeamResponse, error) {
	playerIDs := req.Players
	if playerIDs == nil {
		playerIDs = []uint{}
	}

	if err := s.checkPlayerRefs(playerIDs); err != nil {
		return nil, err
	}

	team := &models.Team{
		Name:      req.Name,
		Formation: req.Formation,
		PlayerIDs: playerIDs,
	}

	if err := s.db.Create(team).Error; err != nil {
		return nil, err
	}

	return s.Expand(team)
}

func (s *TeamService) UpdateTeam(id uint, req models.UpdateTeamRequest) (*models.TeamResponse, error) {
	team, err := s.getTeam(id)
	if err != nil {
		return nil, err
	}

	for field, value := range map[string]*string{
		"name":      req.Name,
		"formation": req.Formation,
	} {
		if value != nil && *value == "" {
			return nil, fmt.Errorf("%w: %s cannot be empty", ErrValidation, field)
		}
	}

	if req.Players != nil {
		playerIDs := *req.Players
		if playerIDs == nil {
			playerIDs = []uint{}
		}
		if err := s.checkPlayerRefs(playerIDs); err != nil {
			return nil, err
		}
		team.PlayerIDs = playerIDs
	}
	if req.Name != nil {
		team.Name = *req.Name
	}
	if req.Formation != nil {
		team.Formation = *req.Formation
	}

	if err := s.db.Save(team).Error; err != nil {
		return nil, err
	}

	return s.Expand(team)
}

func (s *TeamService) DeleteTeam(id uint) error {
	result := s.db.Delete(&models.Team{}, id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrTeamNotFound
	}

	return nil
}

// Expand resolves a team's stored player ids into full player records with a
// single batched fetch, preserving stored order and duplicates. Ids that no
// longer resolve are dropped silently; references are only validated at write
// time.
func (s *TeamService) Expand(team *models.Team) (*models.TeamResponse, error) {
	players := make([]models.Player, 0, len(team.PlayerIDs))

	if len(team.PlayerIDs) > 0 {
		var found []models.Player
		if err := s.db.Where("id IN ?", uniqueIDs(team.PlayerIDs)).Find(&found).Error; err != nil {
			return nil, err
		}

		byID := make(map[uint]models.Player, len(found))
		for _, p := range found {
			byID[p.ID] = p
		}

		for _, id := range team.PlayerIDs {
			if p, ok := byID[id]; ok {
				players = append(players, p)
			}
		}
	}

	return &models.TeamResponse{
		ID:        team.ID,
		Name:      team.Name,
		Formation: team.Formation,
		Players:   players,
		CreatedAt: team.CreatedAt,
	}, nil
}

func (s *TeamService) getTeam(id uint) (*models.Team, error) {
	var team models.Team

	result := s.db.First(&team, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, result.Error
	}

	return &team, nil
}

// checkPlayerRefs verifies every referenced player exists using one batched
// count. The list may legally contain duplicates, so the count is compared
// against the deduplicated ids.
func (s *TeamService) checkPlayerRefs(ids []uint) error {
	if len(ids) == 0 {
		return nil
	}

	unique := uniqueIDs(ids)

	var count int64
	if err := s.db.Model(&models.Player{}).Where("id IN ?", unique).Count(&count).Error; err != nil {
		return err
	}

	if count != int64(len(unique)) {
		return ErrInvalidReference
	}

	return nil
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	unique := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}
