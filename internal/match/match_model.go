package match

import (
	"time"

	"gorm.io/gorm"

	"github.com/pwiech/footliga/internal/team"
	"github.com/pwiech/footliga/pkg/apperr"
)

// Match is a fixture between two different teams in a given lap (round).
// Scores stay nil until the result is recorded; a match with both scores
// set counts as played.
type Match struct {
	gorm.Model
	HomeTeamID uint      `json:"home_team_id" gorm:"not null;index"`
	HomeTeam   team.Team `json:"home_team" gorm:"foreignKey:HomeTeamID;constraint:OnDelete:CASCADE"`
	AwayTeamID uint      `json:"away_team_id" gorm:"not null;index"`
	AwayTeam   team.Team `json:"away_team" gorm:"foreignKey:AwayTeamID;constraint:OnDelete:CASCADE"`
	Date       time.Time `json:"date" gorm:"not null"`
	HomeScore  *int      `json:"home_score"`
	AwayScore  *int      `json:"away_score"`
	Lap        int       `json:"lap" gorm:"not null;index"`
}

// Played reports whether the final result has been recorded.
func (m *Match) Played() bool {
	return m.HomeScore != nil && m.AwayScore != nil
}

// Validate enforces the fixture invariants: distinct teams, non-negative
// scores when set, lap at least 1.
func (m *Match) Validate() error {
	if m.HomeTeamID == m.AwayTeamID {
		return apperr.Validation("away_team", "away team cannot be the same as the home team")
	}
	if m.HomeScore != nil && *m.HomeScore < 0 {
		return apperr.Validation("home_score", "score cannot be negative")
	}
	if m.AwayScore != nil && *m.AwayScore < 0 {
		return apperr.Validation("away_score", "score cannot be negative")
	}
	if m.Lap < 1 {
		return apperr.Validation("lap", "lap must be at least 1")
	}
	return nil
}
