package player

import (
	"gorm.io/gorm"

	"github.com/sanchitsave/cricket-app/internal/team"
)

// Player represents a registered player. Every player belongs to exactly one team.
type Player struct {
	gorm.Model
	TeamID uint      `json:"team_id" gorm:"index;not null"`
	Team   team.Team `json:"-" gorm:"foreignKey:TeamID"`
	Name   string    `json:"player_name" gorm:"not null"`
	Role   string    `json:"role"` // free-form, e.g. "Batsman", "Bowler", "All-rounder"
}
