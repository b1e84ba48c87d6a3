package team

import (
	"errors"

	"gorm.io/gorm"
)

// TeamRepository defines the interface for team data operations
type TeamRepository interface {
	Create(t *Team) error
	GetByID(id uint) (*Team, error)
	GetByName(name string) (*Team, error)
	GetAll() ([]Team, error)
	Update(t *Team) error
	Delete(id uint) error
}

type teamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new instance of TeamRepository
func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &teamRepository{db: db}
}

func (r *teamRepository) Create(t *Team) error {
	return r.db.Create(t).Error
}

func (r *teamRepository) GetByID(id uint) (*Team, error) {
	var t Team
	if err := r.db.First(&t, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *teamRepository) GetByName(name string) (*Team, error) {
	var t Team
	if err := r.db.Where("name = ?", name).First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *teamRepository) GetAll() ([]Team, error) {
	var teams []Team
	if err := r.db.Order("name asc").Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

func (r *teamRepository) Update(t *Team) error {
	return r.db.Save(t).Error
}

func (r *teamRepository) Delete(id uint) error {
	return r.db.Delete(&Team{}, id).Error
}
