package lineup

import (
	"errors"

	"gorm.io/gorm"
)

// LineupRepository defines the interface for lineup data operations.
type LineupRepository interface {
	Create(l *Lineup) error
	CreateBatch(entries []Lineup) error
	GetByMatchAndTeam(matchID, teamID uint) ([]Lineup, error)
	GetActiveByMatchAndPlayer(matchID, playerID uint) (*Lineup, error)
	PlayerIDs(matchID, teamID uint) ([]uint, error)
	ActivePlayerIDs(matchID, teamID uint) ([]uint, error)
	DeleteByPlayers(matchID, teamID uint, playerIDs []uint) error
	SetOnBench(matchID, playerID uint) error
	WithTransaction(txFunc func(LineupRepository) error) error
}

type lineupRepository struct {
	db *gorm.DB
}

// NewLineupRepository creates a new instance of LineupRepository.
func NewLineupRepository(db *gorm.DB) LineupRepository {
	return &lineupRepository{db: db}
}

func (r *lineupRepository) Create(l *Lineup) error {
	return r.db.Create(l).Error
}

func (r *lineupRepository) CreateBatch(entries []Lineup) error {
	return r.db.Create(&entries).Error
}

func (r *lineupRepository) GetByMatchAndTeam(matchID, teamID uint) ([]Lineup, error) {
	var entries []Lineup
	if err := r.db.Preload("Player").
		Where("match_id = ? AND team_id = ?", matchID, teamID).
		Order("id asc").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *lineupRepository) GetActiveByMatchAndPlayer(matchID, playerID uint) (*Lineup, error) {
	var entry Lineup
	if err := r.db.Where("match_id = ? AND player_id = ? AND on_bench = ?", matchID, playerID, false).
		First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

func (r *lineupRepository) PlayerIDs(matchID, teamID uint) ([]uint, error) {
	var ids []uint
	if err := r.db.Model(&Lineup{}).
		Where("match_id = ? AND team_id = ?", matchID, teamID).
		Pluck("player_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *lineupRepository) ActivePlayerIDs(matchID, teamID uint) ([]uint, error) {
	var ids []uint
	if err := r.db.Model(&Lineup{}).
		Where("match_id = ? AND team_id = ? AND on_bench = ?", matchID, teamID, false).
		Pluck("player_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *lineupRepository) DeleteByPlayers(matchID, teamID uint, playerIDs []uint) error {
	if len(playerIDs) == 0 {
		return nil
	}
	return r.db.Where("match_id = ? AND team_id = ? AND player_id IN ?", matchID, teamID, playerIDs).
		Delete(&Lineup{}).Error
}

// SetOnBench flips every entry of the player in the match to on_bench.
// Updating an already-benched entry is a harmless no-op, which makes the
// bench operation idempotent.
func (r *lineupRepository) SetOnBench(matchID, playerID uint) error {
	return r.db.Model(&Lineup{}).
		Where("match_id = ? AND player_id = ?", matchID, playerID).
		Update("on_bench", true).Error
}

func (r *lineupRepository) WithTransaction(txFunc func(LineupRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return txFunc(&lineupRepository{db: tx})
	})
}
