package standings

import (
	"sort"

	"github.com/pwiech/footliga/internal/match"
	"github.com/pwiech/footliga/internal/team"
)

// Row is one team's aggregate over all played matches.
type Row struct {
	TeamID          uint   `json:"team_id"`
	TeamName        string `json:"team_name"`
	Matches         int    `json:"matches"`
	Wins            int    `json:"wins"`
	Draws           int    `json:"draws"`
	Losses          int    `json:"losses"`
	GoalsScored     int    `json:"goals_scored"`
	GoalsConceded   int    `json:"goals_conceded"`
	GoalsDifference int    `json:"goals_difference"`
	Points          int    `json:"points"`
}

// ComputeTable derives the league table from played matches. Fixtures with
// either score unset have not been played and contribute nothing. Rows are
// ordered by points, then goal difference, then goals scored, all
// descending; teams still level after that keep their input order.
func ComputeTable(teams []team.Team, matches []match.Match) []Row {
	rows := make([]Row, len(teams))
	index := make(map[uint]*Row, len(teams))
	for i, t := range teams {
		rows[i] = Row{TeamID: t.ID, TeamName: t.Name}
		index[t.ID] = &rows[i]
	}

	for _, m := range matches {
		if !m.Played() {
			continue
		}
		home, away := index[m.HomeTeamID], index[m.AwayTeamID]
		hs, as := *m.HomeScore, *m.AwayScore

		if home != nil {
			home.GoalsScored += hs
			home.GoalsConceded += as
			switch {
			case hs > as:
				home.Wins++
			case hs == as:
				home.Draws++
			default:
				home.Losses++
			}
		}
		if away != nil {
			away.GoalsScored += as
			away.GoalsConceded += hs
			switch {
			case as > hs:
				away.Wins++
			case as == hs:
				away.Draws++
			default:
				away.Losses++
			}
		}
	}

	for i := range rows {
		r := &rows[i]
		r.GoalsDifference = r.GoalsScored - r.GoalsConceded
		r.Points = r.Wins*3 + r.Draws
		r.Matches = r.Wins + r.Draws + r.Losses
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Points != rows[j].Points {
			return rows[i].Points > rows[j].Points
		}
		if rows[i].GoalsDifference != rows[j].GoalsDifference {
			return rows[i].GoalsDifference > rows[j].GoalsDifference
		}
		return rows[i].GoalsScored > rows[j].GoalsScored
	})

	return rows
}

// TableService reads teams and matches and computes the standings table.
type TableService struct {
	teams   team.TeamRepository
	matches match.MatchRepository
}

// NewTableService creates a new TableService.
func NewTableService(teams team.TeamRepository, matches match.MatchRepository) *TableService {
	return &TableService{teams: teams, matches: matches}
}

// Table returns the current league table.
func (s *TableService) Table() ([]Row, error) {
	teams, err := s.teams.GetAll()
	if err != nil {
		return nil, err
	}
	matches, err := s.matches.GetPlayed()
	if err != nil {
		return nil, err
	}
	return ComputeTable(teams, matches), nil
}
