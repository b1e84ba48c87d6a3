package match

import (
	"errors"
	"testing"
	"time"

	"github.com/pwiech/footliga/pkg/apperr"
)

func validMatch() Match {
	return Match{
		HomeTeamID: 1,
		AwayTeamID: 2,
		Date:       time.Date(2025, 3, 15, 18, 0, 0, 0, time.UTC),
		Lap:        1,
	}
}

func fieldOf(t *testing.T, err error) string {
	t.Helper()
	var verr *apperr.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	return verr.Field
}

func TestValidateAcceptsFixture(t *testing.T) {
	m := validMatch()
	if err := m.Validate(); err != nil {
		t.Fatalf("valid match rejected: %v", err)
	}
}

func TestValidateRejectsSameTeams(t *testing.T) {
	m := validMatch()
	m.AwayTeamID = m.HomeTeamID
	if got := fieldOf(t, m.Validate()); got != "away_team" {
		t.Fatalf("field: got %q, want away_team", got)
	}
}

func TestValidateRejectsNegativeScores(t *testing.T) {
	neg := -1
	m := validMatch()
	m.HomeScore = &neg
	if got := fieldOf(t, m.Validate()); got != "home_score" {
		t.Fatalf("field: got %q, want home_score", got)
	}

	m = validMatch()
	m.AwayScore = &neg
	if got := fieldOf(t, m.Validate()); got != "away_score" {
		t.Fatalf("field: got %q, want away_score", got)
	}
}

func TestValidateRejectsLapBelowOne(t *testing.T) {
	m := validMatch()
	m.Lap = 0
	if got := fieldOf(t, m.Validate()); got != "lap" {
		t.Fatalf("field: got %q, want lap", got)
	}
}

func TestPlayed(t *testing.T) {
	m := validMatch()
	if m.Played() {
		t.Fatal("fixture without scores must not count as played")
	}
	hs := 2
	m.HomeScore = &hs
	if m.Played() {
		t.Fatal("one score is not a result")
	}
	as := 0
	m.AwayScore = &as
	if !m.Played() {
		t.Fatal("both scores set means played")
	}
}
