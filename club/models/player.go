package models

import "time"

type Player struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	Position     string    `gorm:"size:100;not null" json:"position"`
	Age          int       `gorm:"not null" json:"age"`
	Nationality  string    `gorm:"size:100;not null" json:"nationality"`
	JerseyNumber int       `gorm:"uniqueIndex;not null" json:"jerseyNumber"`
	IsAvailable  bool      `gorm:"not null" json:"isAvailable"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (Player) TableName() string {
	return "players"
}

// DTOs

type CreatePlayerRequest struct {
	Name         string `json:"name" binding:"required"`
	Position     string `json:"position" binding:"required"`
	Age          *int   `json:"age" binding:"required"`
	Nationality  string `json:"nationality" binding:"required"`
	JerseyNumber *int   `json:"jerseyNumber" binding:"required"`
	IsAvailable  *bool  `json:"isAvailable,omitempty"`
}

type UpdatePlayerRequest struct {
	Name         *string `json:"name,omitempty"`
	Position     *string `json:"position,omitempty"`
	Age          *int    `json:"age,omitempty"`
	Nationality  *string `json:"nationality,omitempty"`
	JerseyNumber *int    `json:"jerseyNumber,omitempty"`
	IsAvailable  *bool   `json:"isAvailable,omitempty"`
}
