package standings

import (
	"testing"
	"time"

	"github.com/pwiech/footliga/internal/match"
	"github.com/pwiech/footliga/internal/team"
)

func newTeam(id uint, name string) team.Team {
	t := team.Team{Name: name}
	t.ID = id
	return t
}

func playedMatch(home, away uint, hs, as int) match.Match {
	return match.Match{
		HomeTeamID: home,
		AwayTeamID: away,
		Date:       time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		HomeScore:  &hs,
		AwayScore:  &as,
		Lap:        1,
	}
}

func TestComputeTableAggregates(t *testing.T) {
	teams := []team.Team{newTeam(1, "Reds"), newTeam(2, "Blues"), newTeam(3, "Greens")}
	matches := []match.Match{
		playedMatch(1, 2, 3, 1), // Reds win at home
		playedMatch(3, 1, 2, 0), // Reds lose away
	}

	rows := ComputeTable(teams, matches)

	var reds *Row
	for i := range rows {
		if rows[i].TeamID == 1 {
			reds = &rows[i]
		}
	}
	if reds == nil {
		t.Fatal("Reds missing from table")
	}
	if reds.Matches != 2 || reds.Wins != 1 || reds.Losses != 1 || reds.Draws != 0 {
		t.Fatalf("Reds record: got %d played, %d-%d-%d", reds.Matches, reds.Wins, reds.Draws, reds.Losses)
	}
	if reds.Points != 3 {
		t.Fatalf("Reds points: got %d, want 3", reds.Points)
	}
	if reds.GoalsScored != 3 || reds.GoalsConceded != 3 || reds.GoalsDifference != 0 {
		t.Fatalf("Reds goals: got %d/%d/%d, want 3/3/0", reds.GoalsScored, reds.GoalsConceded, reds.GoalsDifference)
	}
}

func TestComputeTableOrdersByPointsFirst(t *testing.T) {
	teams := []team.Team{newTeam(1, "Reds"), newTeam(2, "Blues"), newTeam(3, "Greens")}
	// Blues: two wins, 6 points, GD +2. Reds: a big win and a draw,
	// 4 points, GD +5. Points outrank goal difference.
	matches := []match.Match{
		playedMatch(2, 3, 1, 0),
		playedMatch(3, 2, 0, 1),
		playedMatch(1, 3, 5, 0),
		playedMatch(1, 2, 1, 1),
	}

	rows := ComputeTable(teams, matches)

	if rows[0].TeamID != 2 {
		t.Fatalf("expected Blues on top with 6 points, got team %d", rows[0].TeamID)
	}
	if rows[1].TeamID != 1 {
		t.Fatalf("expected Reds second with 4 points, got team %d", rows[1].TeamID)
	}
}

func TestComputeTableBreaksTiesOnGoalDifference(t *testing.T) {
	teams := []team.Team{newTeam(1, "Reds"), newTeam(2, "Blues"), newTeam(3, "Greens")}
	// Reds and Blues both beat Greens once: 3 points each, but Blues
	// win by the wider margin.
	matches := []match.Match{
		playedMatch(1, 3, 1, 0),
		playedMatch(2, 3, 4, 0),
	}

	rows := ComputeTable(teams, matches)

	if rows[0].TeamID != 2 || rows[1].TeamID != 1 {
		t.Fatalf("expected Blues before Reds on goal difference, got %d then %d", rows[0].TeamID, rows[1].TeamID)
	}
}

func TestComputeTableBreaksTiesOnGoalsScored(t *testing.T) {
	teams := []team.Team{newTeam(1, "Reds"), newTeam(2, "Blues"), newTeam(3, "Greens"), newTeam(4, "Golds")}
	// Reds and Blues both on 3 points and GD +1; Blues scored more.
	matches := []match.Match{
		playedMatch(1, 3, 1, 0),
		playedMatch(2, 4, 3, 2),
	}

	rows := ComputeTable(teams, matches)

	if rows[0].TeamID != 2 || rows[1].TeamID != 1 {
		t.Fatalf("expected Blues before Reds on goals scored, got %d then %d", rows[0].TeamID, rows[1].TeamID)
	}
}

func TestComputeTableSkipsUnplayedMatches(t *testing.T) {
	teams := []team.Team{newTeam(1, "Reds"), newTeam(2, "Blues")}
	hs := 2
	fixture := match.Match{HomeTeamID: 1, AwayTeamID: 2, Lap: 3}
	halfSet := match.Match{HomeTeamID: 1, AwayTeamID: 2, HomeScore: &hs, Lap: 4}

	rows := ComputeTable(teams, []match.Match{fixture, halfSet})

	for _, r := range rows {
		if r.Matches != 0 || r.Points != 0 || r.GoalsScored != 0 {
			t.Fatalf("unplayed fixtures must not count: %+v", r)
		}
	}
}

func TestComputeTableDistinguishesUnplayedFromGoalless(t *testing.T) {
	teams := []team.Team{newTeam(1, "Reds"), newTeam(2, "Blues")}
	// A real 0-0 is a played draw, unlike a fixture with no result.
	rows := ComputeTable(teams, []match.Match{playedMatch(1, 2, 0, 0)})

	for _, r := range rows {
		if r.Matches != 1 || r.Draws != 1 || r.Points != 1 {
			t.Fatalf("0-0 should count as a played draw: %+v", r)
		}
	}
}

func TestComputeTableIncludesTeamsWithoutMatches(t *testing.T) {
	teams := []team.Team{newTeam(1, "Reds"), newTeam(2, "Blues"), newTeam(3, "Idle")}
	rows := ComputeTable(teams, []match.Match{playedMatch(1, 2, 2, 1)})

	if len(rows) != 3 {
		t.Fatalf("every team gets a row, got %d", len(rows))
	}
	if rows[len(rows)-1].TeamID != 3 && rows[len(rows)-2].TeamID != 3 {
		// Idle has 0 points, GD 0; Blues have 0 points, GD -1, so Idle
		// sits above Blues.
		t.Fatal("idle team missing from the bottom of the table")
	}
	var idle Row
	for _, r := range rows {
		if r.TeamID == 3 {
			idle = r
		}
	}
	if idle.Matches != 0 || idle.Points != 0 {
		t.Fatalf("idle team should have an empty record: %+v", idle)
	}
}
