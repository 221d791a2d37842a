package match

import (
	"errors"

	"gorm.io/gorm"
)

// MatchRepository defines methods to interact with match data
type MatchRepository interface {
	CreateMatch(match *Match) error
	GetMatchByID(id uint) (*Match, error)
	GetMatchesByStatus(status MatchStatus) ([]Match, error)
	GetAllMatches(page, pageSize int) ([]Match, int64, error)
	UpdateMatchStatus(matchID uint, status MatchStatus) error
}

type matchRepository struct {
	db *gorm.DB
}

// NewMatchRepository creates a new instance of MatchRepository
func NewMatchRepository(db *gorm.DB) MatchRepository {
	return &matchRepository{db: db}
}

func (r *matchRepository) CreateMatch(match *Match) error {
	return r.db.Create(match).Error
}

func (r *matchRepository) GetMatchByID(id uint) (*Match, error) {
	var match Match
	if err := r.db.First(&match, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &match, nil
}

func (r *matchRepository) GetMatchesByStatus(status MatchStatus) ([]Match, error) {
	var matches []Match
	err := r.db.Where("status = ?", status).Order("created_at desc").Find(&matches).Error
	return matches, err
}

func (r *matchRepository) GetAllMatches(page, pageSize int) ([]Match, int64, error) {
	var matches []Match
	var total int64

	query := r.db.Model(&Match{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := query.Order("created_at desc").Offset(offset).Limit(pageSize).Find(&matches).Error; err != nil {
		return nil, 0, err
	}
	return matches, total, nil
}

func (r *matchRepository) UpdateMatchStatus(matchID uint, status MatchStatus) error {
	return r.db.Model(&Match{}).Where("id = ?", matchID).Update("status", status).Error
}
