package models

import "time"

// Team stores its squad as an ordered list of player ids (duplicates allowed).
// The list is serialized into a single column; references are weak, so a
// deleted player simply stops resolving on read.
type Team struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Formation string    `gorm:"size:20;not null" json:"formation"`
	PlayerIDs []uint    `gorm:"serializer:json;type:text" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Team) TableName() string {
	return "teams"
}

// TeamResponse is a Team with its player references expanded into full
// records, in stored order.
type TeamResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Formation string    `json:"formation"`
	Players   []Player  `json:"players"`
	CreatedAt time.Time `json:"createdAt"`
}

// DTOs

type CreateTeamRequest struct {
	Name      string `json:"name" binding:"required"`
	Formation string `json:"formation" binding:"required"`
	Players   []uint `json:"players,omitempty"`
}

type UpdateTeamRequest struct {
	Name      *string `json:"name,omitempty"`
	Formation *string `json:"formation,omitempty"`
	Players   *[]uint `json:"players,omitempty"`
}
