package models

import "time"

const (
	TournamentStatusUpcoming  = "upcoming"
	TournamentStatusOngoing   = "ongoing"
	TournamentStatusCompleted = "completed"
)

const DefaultMaxTeams = 16

type Tournament struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	StartDate time.Time `gorm:"not null" json:"startDate"`
	EndDate   time.Time `gorm:"not null" json:"endDate"`
	Location  string    `gorm:"size:255;not null" json:"location"`
	TeamIDs   []uint    `gorm:"serializer:json;type:text" json:"-"`
	MaxTeams  int       `gorm:"not null" json:"maxTeams"`
	Status    string    `gorm:"size:20;not null" json:"status"` // upcoming, ongoing, completed
	CreatedAt time.Time `json:"createdAt"`
}

func (Tournament) TableName() string {
	return "tournaments"
}

// TournamentResponse carries the two-level expansion: teams resolved into
// full records, each with its own players resolved.
type TournamentResponse struct {
	ID        uint           `json:"id"`
	Name      string         `json:"name"`
	StartDate time.Time      `json:"startDate"`
	EndDate   time.Time      `json:"endDate"`
	Location  string         `json:"location"`
	Teams     []TeamResponse `json:"teams"`
	MaxTeams  int            `json:"maxTeams"`
	Status    string         `json:"status"`
	CreatedAt time.Time      `json:"createdAt"`
}

// DTOs

type CreateTournamentRequest struct {
	Name      string    `json:"name" binding:"required"`
	StartDate time.Time `json:"startDate" binding:"required"`
	EndDate   time.Time `json:"endDate" binding:"required"`
	Location  string    `json:"location" binding:"required"`
	Teams     []uint    `json:"teams,omitempty"`
	MaxTeams  *int      `json:"maxTeams,omitempty"`
	Status    string    `json:"status,omitempty" binding:"omitempty,oneof=upcoming ongoing completed"`
}

type UpdateTournamentRequest struct {
	Name      *string    `json:"name,omitempty"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
	Location  *string    `json:"location,omitempty"`
	Teams     *[]uint    `json:"teams,omitempty"`
	MaxTeams  *int       `json:"maxTeams,omitempty"`
	Status    *string    `json:"status,omitempty" binding:"omitempty,oneof=upcoming ongoing completed"`
}
