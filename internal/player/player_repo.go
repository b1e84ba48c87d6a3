package player

import (
	"errors"

	"gorm.io/gorm"
)

// PlayerRepository defines the interface for player data operations
type PlayerRepository interface {
	Create(p *Player) error
	GetByID(id uint) (*Player, error)
	GetByIDs(ids []uint) ([]Player, error)
	GetAll() ([]Player, error)
	GetByTeam(teamID uint) ([]Player, error)
	GetByTeamAndPosition(teamID uint, position Position) ([]Player, error)
	Update(p *Player) error
	Delete(id uint) error
}

type playerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository creates a new instance of PlayerRepository
func NewPlayerRepository(db *gorm.DB) PlayerRepository {
	return &playerRepository{db: db}
}

func (r *playerRepository) Create(p *Player) error {
	return r.db.Create(p).Error
}

func (r *playerRepository) GetByID(id uint) (*Player, error) {
	var p Player
	if err := r.db.Preload("Team").First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *playerRepository) GetByIDs(ids []uint) ([]Player, error) {
	var players []Player
	if err := r.db.Where("id IN ?", ids).Find(&players).Error; err != nil {
		return nil, err
	}
	return players, nil
}

func (r *playerRepository) GetAll() ([]Player, error) {
	var players []Player
	if err := r.db.Preload("Team").Order("name asc").Find(&players).Error; err != nil {
		return nil, err
	}
	return players, nil
}

func (r *playerRepository) GetByTeam(teamID uint) ([]Player, error) {
	var players []Player
	if err := r.db.Where("team_id = ?", teamID).Order("name asc").Find(&players).Error; err != nil {
		return nil, err
	}
	return players, nil
}

func (r *playerRepository) GetByTeamAndPosition(teamID uint, position Position) ([]Player, error) {
	var players []Player
	if err := r.db.Where("team_id = ? AND position = ?", teamID, position).Order("name asc").Find(&players).Error; err != nil {
		return nil, err
	}
	return players, nil
}

func (r *playerRepository) Update(p *Player) error {
	return r.db.Save(p).Error
}

func (r *playerRepository) Delete(id uint) error {
	return r.db.Delete(&Player{}, id).Error
}
