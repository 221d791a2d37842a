package player

import (
	"errors"

	"gorm.io/gorm"
)

// PlayerRepository defines the interface for player data operations
type PlayerRepository interface {
	CreatePlayer(player *Player) error
	GetPlayerByID(id uint) (*Player, error)
	GetPlayersByTeamID(teamID uint) ([]Player, error)
	DeletePlayer(id uint) error
}

type playerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository creates a new instance of PlayerRepository
func NewPlayerRepository(db *gorm.DB) PlayerRepository {
	return &playerRepository{db: db}
}

func (r *playerRepository) CreatePlayer(player *Player) error {
	return r.db.Create(player).Error
}

func (r *playerRepository) GetPlayerByID(id uint) (*Player, error) {
	var player Player
	if err := r.db.First(&player, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &player, nil
}

func (r *playerRepository) GetPlayersByTeamID(teamID uint) ([]Player, error) {
	var players []Player
	err := r.db.Where("team_id = ?", teamID).Order("created_at asc").Find(&players).Error
	return players, err
}

func (r *playerRepository) DeletePlayer(id uint) error {
	return r.db.Delete(&Player{}, id).Error
}
