package lineup

import (
	"github.com/pwiech/footliga/internal/match"
	"github.com/pwiech/footliga/internal/player"
	"github.com/pwiech/footliga/pkg/apperr"
)

// StartingPlayers is the size of a valid starting roster.
const StartingPlayers = 11

// Side selects which of a match's two teams a roster belongs to.
type Side string

const (
	SideHome Side = "home"
	SideAway Side = "away"
)

// RosterService builds and mutates match rosters. All multi-entry writes go
// through a single transaction so a failed validation never leaves a
// partial roster behind.
type RosterService struct {
	repo    LineupRepository
	matches match.MatchRepository
	players player.PlayerRepository
}

// NewRosterService creates a new RosterService.
func NewRosterService(repo LineupRepository, matches match.MatchRepository, players player.PlayerRepository) *RosterService {
	return &RosterService{repo: repo, matches: matches, players: players}
}

func (s *RosterService) resolveSide(matchID uint, side Side) (*match.Match, uint, error) {
	m, err := s.matches.GetByID(matchID)
	if err != nil {
		return nil, 0, err
	}
	if m == nil {
		return nil, 0, apperr.NotFound("match", matchID)
	}
	switch side {
	case SideHome:
		return m, m.HomeTeamID, nil
	case SideAway:
		return m, m.AwayTeamID, nil
	default:
		return nil, 0, apperr.Validationf("side", "unknown side %q, want home or away", side)
	}
}

// checkMembership verifies every id refers to a player currently signed to
// the team, naming the first offender.
func (s *RosterService) checkMembership(teamID uint, playerIDs []uint) error {
	if len(playerIDs) == 0 {
		return nil
	}
	found, err := s.players.GetByIDs(playerIDs)
	if err != nil {
		return err
	}
	byID := make(map[uint]player.Player, len(found))
	for _, p := range found {
		byID[p.ID] = p
	}
	for _, id := range playerIDs {
		p, ok := byID[id]
		if !ok {
			return apperr.NotFound("player", id)
		}
		if p.TeamID == nil || *p.TeamID != teamID {
			return apperr.Validationf("players", "player %s does not play for the selected team", p.Name)
		}
	}
	return nil
}

func distinct(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// CreateRoster creates the starting eleven for one side of a match. The
// candidate set must hold exactly 11 distinct players, all signed to that
// side's team. Nothing is persisted when validation fails.
func (s *RosterService) CreateRoster(matchID uint, side Side, playerIDs []uint) ([]Lineup, error) {
	m, teamID, err := s.resolveSide(matchID, side)
	if err != nil {
		return nil, err
	}

	ids := distinct(playerIDs)
	if len(ids) != StartingPlayers {
		return nil, apperr.Validationf("players", "select exactly %d distinct players, got %d", StartingPlayers, len(ids))
	}
	if err := s.checkMembership(teamID, ids); err != nil {
		return nil, err
	}

	existing, err := s.repo.PlayerIDs(matchID, teamID)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, apperr.Validation("players", "a roster already exists for this side, edit it instead")
	}

	entries := make([]Lineup, 0, StartingPlayers)
	for _, id := range ids {
		entries = append(entries, Lineup{
			MatchID:    m.ID,
			TeamID:     teamID,
			PlayerID:   id,
			IsStarting: true,
			OnBench:    false,
		})
	}

	err = s.repo.WithTransaction(func(txRepo LineupRepository) error {
		return txRepo.CreateBatch(entries)
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// UpdateRoster edits a pre-match roster by symmetric difference: players
// missing from the new set are hard-deleted, new players are added as
// starters. It deliberately does not re-check the count of 11, matching
// how the roster editor has always behaved; CreateRoster is the only gate
// for the starting-eleven invariant.
func (s *RosterService) UpdateRoster(matchID uint, side Side, playerIDs []uint) error {
	_, teamID, err := s.resolveSide(matchID, side)
	if err != nil {
		return err
	}

	requested := distinct(playerIDs)
	current, err := s.repo.PlayerIDs(matchID, teamID)
	if err != nil {
		return err
	}

	currentSet := make(map[uint]struct{}, len(current))
	for _, id := range current {
		currentSet[id] = struct{}{}
	}
	requestedSet := make(map[uint]struct{}, len(requested))
	for _, id := range requested {
		requestedSet[id] = struct{}{}
	}

	var toRemove, toAdd []uint
	for _, id := range current {
		if _, ok := requestedSet[id]; !ok {
			toRemove = append(toRemove, id)
		}
	}
	for _, id := range requested {
		if _, ok := currentSet[id]; !ok {
			toAdd = append(toAdd, id)
		}
	}

	if err := s.checkMembership(teamID, toAdd); err != nil {
		return err
	}

	return s.repo.WithTransaction(func(txRepo LineupRepository) error {
		if err := txRepo.DeleteByPlayers(matchID, teamID, toRemove); err != nil {
			return err
		}
		for _, id := range toAdd {
			entry := Lineup{
				MatchID:    matchID,
				TeamID:     teamID,
				PlayerID:   id,
				IsStarting: true,
				OnBench:    false,
			}
			if err := txRepo.Create(&entry); err != nil {
				return err
			}
		}
		return nil
	})
}

// GetRoster returns the lineup entries for one side of a match.
func (s *RosterService) GetRoster(matchID uint, side Side) ([]Lineup, error) {
	_, teamID, err := s.resolveSide(matchID, side)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByMatchAndTeam(matchID, teamID)
}

// Bench withdraws the player from active play in the match. Benching an
// already-benched player is a no-op.
func Bench(repo LineupRepository, matchID, playerID uint) error {
	return repo.SetOnBench(matchID, playerID)
}

// BringOn puts a substitute on the pitch with a fresh non-starting entry.
// A player who already has an active entry cannot come on again; that can
// only happen through a bug or a racing edit, so it aborts the transaction.
func BringOn(repo LineupRepository, matchID, teamID, playerID uint) error {
	active, err := repo.GetActiveByMatchAndPlayer(matchID, playerID)
	if err != nil {
		return err
	}
	if active != nil {
		return apperr.Consistencyf("player %d already has an active lineup entry in match %d", playerID, matchID)
	}
	return repo.Create(&Lineup{
		MatchID:    matchID,
		TeamID:     teamID,
		PlayerID:   playerID,
		IsStarting: false,
		OnBench:    false,
	})
}
