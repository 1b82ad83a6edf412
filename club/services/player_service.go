package services

import (
	"errors"
	"fmt"

	"github.com/Damouche-Billel/4FSC0WE004-Live-Api/club/models"
	"gorm.io/gorm"
)

type PlayerService struct {
	db *gorm.DB
}

func NewPlayerService(db *gorm.DB) *PlayerService {
	return &PlayerService{
		db: db,
	}
}

func (s *PlayerService) GetAllPlayers() ([]models.Player, error) {
	// Non-nil so an empty store lists as [] rather than null.
	players := make([]models.Player, 0)

	result := s.db.Order("jersey_number ASC").Find(&players)
	if result.Error != nil {
		return nil, result.Error
	}

	return players, nil
}

func (s *PlayerService) GetPlayerByID(id uint) (*models.Player, error) {
	var player models.Player

	result := s.db.First(&player, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, result.Error
	}

	return &player, nil
}

func (s *PlayerService) CreatePlayer(req models.CreatePlayerRequest) (*models.Player, error) {
	if err := s.checkJerseyAvailable(*req.JerseyNumber, 0); err != nil {
		return nil, err
	}

	isAvailable := true
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}

	player := &models.Player{
		Name:         req.Name,
		Position:     req.Position,
		Age:          *req.Age,
		Nationality:  req.Nationality,
		JerseyNumber: *req.JerseyNumber,
		IsAvailable:  isAvailable,
	}

	if err := s.db.Create(player).Error; err != nil {
		return nil, err
	}

	return player, nil
}

func (s *PlayerService) UpdatePlayer(id uint, req models.UpdatePlayerRequest) (*models.Player, error) {
	player, err := s.GetPlayerByID(id)
	if err != nil {
		return nil, err
	}

	for field, value := range map[string]*string{
		"name":        req.Name,
		"position":    req.Position,
		"nationality": req.Nationality,
	} {
		if value != nil && *value == "" {
			return nil, fmt.Errorf("%w: %s cannot be empty", ErrValidation, field)
		}
	}

	if req.JerseyNumber != nil && *req.JerseyNumber != player.JerseyNumber {
		if err := s.checkJerseyAvailable(*req.JerseyNumber, id); err != nil {
			return nil, err
		}
		player.JerseyNumber = *req.JerseyNumber
	}
	if req.Name != nil {
		player.Name = *req.Name
	}
	if req.Position != nil {
		player.Position = *req.Position
	}
	if req.Age != nil {
		player.Age = *req.Age
	}
	if req.Nationality != nil {
		player.Nationality = *req.Nationality
	}
	if req.IsAvailable != nil {
		player.IsAvailable = *req.IsAvailable
	}

	if err := s.db.Save(player).Error; err != nil {
		return nil, err
	}

	return player, nil
}

func (s *PlayerService) DeletePlayer(id uint) error {
	result := s.db.Delete(&models.Player{}, id)
	if result.Error != nil {
		return result.Error
	}

	// Teams referencing this player keep their stored id; the reference just
	// stops resolving on read.
	if result.RowsAffected == 0 {
		return ErrPlayerNotFound
	}

	return nil
}

// checkJerseyAvailable verifies no other player holds the given jersey number.
// excludeID skips the record being updated; pass 0 on create.
func (s *PlayerService) checkJerseyAvailable(jerseyNumber int, excludeID uint) error {
	var count int64

	query := s.db.Model(&models.Player{}).Where("jersey_number = ?", jerseyNumber)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	if err := query.Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return ErrDuplicateJersey
	}

	return nil
}
