package event

import (
	"github.com/pwiech/footliga/internal/lineup"
	"github.com/pwiech/footliga/internal/match"
	"github.com/pwiech/footliga/internal/player"
	"github.com/pwiech/footliga/pkg/apperr"
)

// RecorderService appends match events and drives the roster transitions
// they imply (substitutions and red cards).
type RecorderService struct {
	repo    EventRepository
	lineups lineup.LineupRepository
	matches match.MatchRepository
	players player.PlayerRepository
}

// NewRecorderService creates a new RecorderService.
func NewRecorderService(repo EventRepository, lineups lineup.LineupRepository, matches match.MatchRepository, players player.PlayerRepository) *RecorderService {
	return &RecorderService{repo: repo, lineups: lineups, matches: matches, players: players}
}

// Record creates an event with no player attached yet. The team must be one
// of the two playing the match; the player is picked in a second step via
// AssignPlayer.
func (s *RecorderService) Record(matchID uint, eventType EventType, teamID uint, minute uint, description string) (*Event, error) {
	if !eventType.Valid() {
		return nil, apperr.Validationf("event_type", "unknown event type %q", eventType)
	}

	m, err := s.matches.GetByID(matchID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, apperr.NotFound("match", matchID)
	}
	if teamID != m.HomeTeamID && teamID != m.AwayTeamID {
		return nil, apperr.Validation("team", "team is not playing in this match")
	}

	e := &Event{
		MatchID:     matchID,
		TeamID:      &teamID,
		EventType:   eventType,
		Minute:      minute,
		Description: description,
	}
	if err := s.repo.Create(e); err != nil {
		return nil, err
	}
	return e, nil
}

// AssignPlayer attaches the acting player to an event and applies the
// roster side effects for its type. For substitutions playerInID selects
// the incoming player from the bench pool; for every other type it must be
// zero. All writes happen in one transaction.
func (s *RecorderService) AssignPlayer(eventID, playerID, playerInID uint) (*Event, error) {
	e, err := s.repo.GetByID(eventID)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, apperr.NotFound("event", eventID)
	}
	if e.TeamID == nil {
		return nil, apperr.Validation("team", "event has no team to pick a player from")
	}
	teamID := *e.TeamID

	active, err := s.lineups.GetActiveByMatchAndPlayer(e.MatchID, playerID)
	if err != nil {
		return nil, err
	}
	if active == nil || active.TeamID != teamID {
		return nil, apperr.Validation("player", "player is not in this team's active lineup for the match")
	}

	switch e.EventType {
	case EventSubstitution:
		if playerInID == 0 {
			return nil, apperr.Validation("player_in", "substitution requires an incoming player")
		}
		// The pool is recomputed here rather than trusted from the form, so
		// a stale client cannot bring on an ineligible player.
		pool, err := s.BenchPool(e.MatchID, teamID)
		if err != nil {
			return nil, err
		}
		eligible := false
		for _, p := range pool {
			if p.ID == playerInID {
				eligible = true
				break
			}
		}
		if !eligible {
			return nil, apperr.Validation("player_in", "incoming player is not in the eligible bench pool")
		}

		err = s.repo.WithTransaction(func(txEvents EventRepository, txLineups lineup.LineupRepository) error {
			if err := txEvents.SetPlayer(eventID, playerID); err != nil {
				return err
			}
			if err := txEvents.CreateSubstitution(&Substitution{EventID: eventID, PlayerInID: playerInID}); err != nil {
				return err
			}
			if err := lineup.Bench(txLineups, e.MatchID, playerID); err != nil {
				return err
			}
			return lineup.BringOn(txLineups, e.MatchID, teamID, playerInID)
		})
		if err != nil {
			return nil, err
		}

	case EventRedCard:
		if playerInID != 0 {
			return nil, apperr.Validation("player_in", "only substitutions take an incoming player")
		}
		err = s.repo.WithTransaction(func(txEvents EventRepository, txLineups lineup.LineupRepository) error {
			if err := txEvents.SetPlayer(eventID, playerID); err != nil {
				return err
			}
			// Sent off: withdrawn from play with no replacement.
			return lineup.Bench(txLineups, e.MatchID, playerID)
		})
		if err != nil {
			return nil, err
		}

	default:
		if playerInID != 0 {
			return nil, apperr.Validation("player_in", "only substitutions take an incoming player")
		}
		if err := s.repo.SetPlayer(eventID, playerID); err != nil {
			return nil, err
		}
	}

	return s.repo.GetByID(eventID)
}

// BenchPool returns the team's players eligible to come on in the match:
// everyone signed to the team, minus players with any lineup entry in the
// match, minus players already sent off.
func (s *RecorderService) BenchPool(matchID, teamID uint) ([]player.Player, error) {
	teamPlayers, err := s.players.GetByTeam(teamID)
	if err != nil {
		return nil, err
	}
	appeared, err := s.lineups.PlayerIDs(matchID, teamID)
	if err != nil {
		return nil, err
	}
	sentOff, err := s.repo.RedCardedPlayerIDs(matchID)
	if err != nil {
		return nil, err
	}

	excluded := make(map[uint]struct{}, len(appeared)+len(sentOff))
	for _, id := range appeared {
		excluded[id] = struct{}{}
	}
	for _, id := range sentOff {
		excluded[id] = struct{}{}
	}

	pool := make([]player.Player, 0, len(teamPlayers))
	for _, p := range teamPlayers {
		if _, ok := excluded[p.ID]; ok {
			continue
		}
		pool = append(pool, p)
	}
	return pool, nil
}

// PlayerTimeline pairs a lineup entry with the player's events in the
// match, in minute order.
type PlayerTimeline struct {
	Entry  lineup.Lineup `json:"entry"`
	Name   string        `json:"name"`
	Events []Event       `json:"events"`
}

// MatchTimeline is the match-details projection: both lineups with each
// player's events, plus the full event list.
type MatchTimeline struct {
	Match  match.Match      `json:"match"`
	Home   []PlayerTimeline `json:"home"`
	Away   []PlayerTimeline `json:"away"`
	Events []Event          `json:"events"`
}

// Timeline builds the match-details projection.
func (s *RecorderService) Timeline(matchID uint) (*MatchTimeline, error) {
	m, err := s.matches.GetByID(matchID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, apperr.NotFound("match", matchID)
	}

	events, err := s.repo.GetByMatch(matchID)
	if err != nil {
		return nil, err
	}
	byPlayer := make(map[uint][]Event)
	for _, e := range events {
		if e.PlayerID == nil {
			continue
		}
		byPlayer[*e.PlayerID] = append(byPlayer[*e.PlayerID], e)
	}

	buildSide := func(teamID uint) ([]PlayerTimeline, error) {
		entries, err := s.lineups.GetByMatchAndTeam(matchID, teamID)
		if err != nil {
			return nil, err
		}
		side := make([]PlayerTimeline, 0, len(entries))
		for _, entry := range entries {
			side = append(side, PlayerTimeline{
				Entry:  entry,
				Name:   entry.Player.Name,
				Events: byPlayer[entry.PlayerID],
			})
		}
		return side, nil
	}

	home, err := buildSide(m.HomeTeamID)
	if err != nil {
		return nil, err
	}
	away, err := buildSide(m.AwayTeamID)
	if err != nil {
		return nil, err
	}

	return &MatchTimeline{Match: *m, Home: home, Away: away, Events: events}, nil
}
