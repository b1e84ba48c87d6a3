package event

import (
	"errors"

	"gorm.io/gorm"

	"github.com/pwiech/footliga/internal/lineup"
)

// EventRepository defines the interface for event data operations.
// WithTransaction hands the callback tx-bound event and lineup repositories
// so a substitution's four writes commit or roll back together.
type EventRepository interface {
	Create(e *Event) error
	GetByID(id uint) (*Event, error)
	GetByMatch(matchID uint) ([]Event, error)
	SetPlayer(eventID, playerID uint) error
	CreateSubstitution(s *Substitution) error
	GetSubstitutionByEvent(eventID uint) (*Substitution, error)
	RedCardedPlayerIDs(matchID uint) ([]uint, error)
	Delete(id uint) error
	WithTransaction(txFunc func(EventRepository, lineup.LineupRepository) error) error
}

type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new instance of EventRepository.
func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(e *Event) error {
	return r.db.Create(e).Error
}

func (r *eventRepository) GetByID(id uint) (*Event, error) {
	var e Event
	if err := r.db.Preload("Team").Preload("Player").First(&e, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *eventRepository) GetByMatch(matchID uint) ([]Event, error) {
	var events []Event
	if err := r.db.Preload("Team").Preload("Player").
		Where("match_id = ?", matchID).
		Order("minute asc, id asc").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) SetPlayer(eventID, playerID uint) error {
	return r.db.Model(&Event{}).Where("id = ?", eventID).Update("player_id", playerID).Error
}

func (r *eventRepository) CreateSubstitution(s *Substitution) error {
	return r.db.Create(s).Error
}

func (r *eventRepository) GetSubstitutionByEvent(eventID uint) (*Substitution, error) {
	var s Substitution
	if err := r.db.Preload("PlayerIn").Where("event_id = ?", eventID).First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *eventRepository) RedCardedPlayerIDs(matchID uint) ([]uint, error) {
	var ids []uint
	if err := r.db.Model(&Event{}).
		Where("match_id = ? AND event_type = ? AND player_id IS NOT NULL", matchID, EventRedCard).
		Pluck("player_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *eventRepository) Delete(id uint) error {
	return r.db.Delete(&Event{}, id).Error
}

func (r *eventRepository) WithTransaction(txFunc func(EventRepository, lineup.LineupRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return txFunc(&eventRepository{db: tx}, lineup.NewLineupRepository(tx))
	})
}
