package player

import (
	"time"

	"gorm.io/gorm"

	"github.com/pwiech/footliga/internal/team"
)

// Position is the closed set of pitch positions a player can occupy.
type Position string

const (
	PositionGoalkeeper Position = "gk"
	PositionDefender   Position = "df"
	PositionMidfielder Position = "mf"
	PositionStriker    Position = "st"
)

var positionLabels = map[Position]string{
	PositionGoalkeeper: "Goalkeeper",
	PositionDefender:   "Defender",
	PositionMidfielder: "Midfielder",
	PositionStriker:    "Striker",
}

// Label returns the human-readable name for the position code.
func (p Position) Label() string {
	return positionLabels[p]
}

// Valid reports whether p is one of the four known positions.
func (p Position) Valid() bool {
	_, ok := positionLabels[p]
	return ok
}

// Player belongs to at most one team at a time. TeamID is nullable: a
// released player keeps existing with no team. Transfers only rewrite
// TeamID; lineup entries keep the team the player appeared for.
type Player struct {
	gorm.Model
	TeamID      *uint      `json:"team_id" gorm:"index"`
	Team        *team.Team `json:"team,omitempty" gorm:"constraint:OnDelete:SET NULL"`
	Name        string     `json:"name" gorm:"not null"`
	BirthDay    time.Time  `json:"birth_day" gorm:"not null"`
	Position    Position   `json:"position" gorm:"type:VARCHAR(2);not null"`
	Nationality string     `json:"nationality" gorm:"not null"`
}
