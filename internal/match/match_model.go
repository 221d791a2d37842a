package match

import (
	"gorm.io/gorm"

	"github.com/sanchitsave/cricket-app/internal/team"
)

type MatchStatus string

const (
	StatusOngoing   MatchStatus = "ongoing"
	StatusCompleted MatchStatus = "completed"
)

// Match represents a game between two distinct teams. A match is created in
// "ongoing" state and transitions exactly once to "completed"; there is no
// reopening. Only ongoing matches accept new ball records.
type Match struct {
	gorm.Model
	Team1ID uint        `json:"team1_id" gorm:"index;not null"`
	Team1   team.Team   `json:"-" gorm:"foreignKey:Team1ID"`
	Team2ID uint        `json:"team2_id" gorm:"index;not null"`
	Team2   team.Team   `json:"-" gorm:"foreignKey:Team2ID"`
	Status  MatchStatus `json:"status" gorm:"index;default:'ongoing'"`
}
