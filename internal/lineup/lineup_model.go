package lineup

import (
	"gorm.io/gorm"

	"github.com/pwiech/footliga/internal/match"
	"github.com/pwiech/footliga/internal/player"
	"github.com/pwiech/footliga/internal/team"
)

// Lineup is a player's participation record for one team in one match.
// IsStarting marks the first eleven; OnBench means withdrawn from active
// play (substituted off or sent off). Entries are never deleted once the
// match is under way; the pre-match roster editor is the only hard-delete
// path.
type Lineup struct {
	gorm.Model
	MatchID    uint          `json:"match_id" gorm:"not null;index"`
	Match      match.Match   `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	TeamID     uint          `json:"team_id" gorm:"not null;index"`
	Team       team.Team     `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	PlayerID   uint          `json:"player_id" gorm:"not null;index"`
	Player     player.Player `json:"player" gorm:"constraint:OnDelete:CASCADE"`
	IsStarting bool          `json:"is_starting" gorm:"default:true"`
	OnBench    bool          `json:"on_bench" gorm:"default:false"`
}

// Active reports whether the player is currently on the pitch.
func (l *Lineup) Active() bool {
	return !l.OnBench
}
