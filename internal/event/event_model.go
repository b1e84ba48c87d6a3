package event

import (
	"gorm.io/gorm"

	"github.com/pwiech/footliga/internal/match"
	"github.com/pwiech/footliga/internal/player"
	"github.com/pwiech/footliga/internal/team"
)

// EventType is the closed set of in-match occurrences the league records.
type EventType string

const (
	EventGoal         EventType = "goal"
	EventOwnGoal      EventType = "own_goal"
	EventYellowCard   EventType = "yellow_card"
	EventRedCard      EventType = "red_card"
	EventSubstitution EventType = "substitution"
)

var eventTypeLabels = map[EventType]string{
	EventGoal:         "Goal",
	EventOwnGoal:      "Own goal",
	EventYellowCard:   "Yellow card",
	EventRedCard:      "Red card",
	EventSubstitution: "Substitution",
}

// Label returns the human-readable name for the event type.
func (t EventType) Label() string {
	return eventTypeLabels[t]
}

// Valid reports whether t is one of the known event types.
func (t EventType) Valid() bool {
	_, ok := eventTypeLabels[t]
	return ok
}

// Event is an in-match occurrence. The player reference is attached in a
// second step after the event itself is created, mirroring the two-step
// entry flow. Team and player are nullable so removing a player keeps the
// event on record.
type Event struct {
	gorm.Model
	MatchID     uint           `json:"match_id" gorm:"not null;index"`
	Match       match.Match    `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	TeamID      *uint          `json:"team_id" gorm:"index"`
	Team        *team.Team     `json:"team,omitempty" gorm:"constraint:OnDelete:SET NULL"`
	PlayerID    *uint          `json:"player_id" gorm:"index"`
	Player      *player.Player `json:"player,omitempty" gorm:"constraint:OnDelete:SET NULL"`
	EventType   EventType      `json:"event_type" gorm:"type:VARCHAR(20);not null"`
	Minute      uint           `json:"minute" gorm:"not null"`
	Description string         `json:"description"`
}

// Substitution extends a substitution-type event with the incoming player.
// It exists only once the substitution has been assigned its players.
type Substitution struct {
	gorm.Model
	EventID    uint          `json:"event_id" gorm:"uniqueIndex;not null"`
	Event      Event         `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	PlayerInID uint          `json:"player_in_id" gorm:"not null"`
	PlayerIn   player.Player `json:"player_in" gorm:"constraint:OnDelete:CASCADE"`
}
