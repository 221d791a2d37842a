package team

import (
	"gorm.io/gorm"
)

// Team represents a registered cricket team. Teams are immutable once created;
// only the roster (players) grows around them.
type Team struct {
	gorm.Model
	Name string `json:"team_name" gorm:"uniqueIndex;not null"`
}
