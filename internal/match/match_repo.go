package match

import (
	"errors"

	"gorm.io/gorm"
)

// MatchRepository defines the interface for match data operations
type MatchRepository interface {
	Create(m *Match) error
	GetByID(id uint) (*Match, error)
	GetAll() ([]Match, error)
	GetByLap(lap int) ([]Match, error)
	GetByTeam(teamID uint) ([]Match, error)
	GetPlayed() ([]Match, error)
	Laps() ([]int, error)
	Update(m *Match) error
	Delete(id uint) error
}

type matchRepository struct {
	db *gorm.DB
}

// NewMatchRepository creates a new instance of MatchRepository
func NewMatchRepository(db *gorm.DB) MatchRepository {
	return &matchRepository{db: db}
}

func (r *matchRepository) Create(m *Match) error {
	return r.db.Create(m).Error
}

func (r *matchRepository) GetByID(id uint) (*Match, error) {
	var m Match
	if err := r.db.Preload("HomeTeam").Preload("AwayTeam").First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *matchRepository) GetAll() ([]Match, error) {
	var matches []Match
	if err := r.db.Preload("HomeTeam").Preload("AwayTeam").Order("lap asc, date asc").Find(&matches).Error; err != nil {
		return nil, err
	}
	return matches, nil
}

func (r *matchRepository) GetByLap(lap int) ([]Match, error) {
	var matches []Match
	if err := r.db.Preload("HomeTeam").Preload("AwayTeam").Where("lap = ?", lap).Order("date asc").Find(&matches).Error; err != nil {
		return nil, err
	}
	return matches, nil
}

func (r *matchRepository) GetByTeam(teamID uint) ([]Match, error) {
	var matches []Match
	if err := r.db.Preload("HomeTeam").Preload("AwayTeam").
		Where("home_team_id = ? OR away_team_id = ?", teamID, teamID).
		Order("lap asc").Find(&matches).Error; err != nil {
		return nil, err
	}
	return matches, nil
}

func (r *matchRepository) GetPlayed() ([]Match, error) {
	var matches []Match
	if err := r.db.Where("home_score IS NOT NULL AND away_score IS NOT NULL").Find(&matches).Error; err != nil {
		return nil, err
	}
	return matches, nil
}

func (r *matchRepository) Laps() ([]int, error) {
	var laps []int
	if err := r.db.Model(&Match{}).Distinct("lap").Order("lap asc").Pluck("lap", &laps).Error; err != nil {
		return nil, err
	}
	return laps, nil
}

func (r *matchRepository) Update(m *Match) error {
	return r.db.Save(m).Error
}

func (r *matchRepository) Delete(id uint) error {
	return r.db.Delete(&Match{}, id).Error
}
