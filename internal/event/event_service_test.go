package event

import (
	"testing"
	"time"

	"github.com/pwiech/footliga/internal/lineup"
	"github.com/pwiech/footliga/internal/match"
	"github.com/pwiech/footliga/internal/player"
	"github.com/pwiech/footliga/pkg/apperr"
)

type fakeLineupRepo struct {
	entries []lineup.Lineup
	nextID  uint
}

func (f *fakeLineupRepo) Create(l *lineup.Lineup) error {
	f.nextID++
	l.ID = f.nextID
	f.entries = append(f.entries, *l)
	return nil
}

func (f *fakeLineupRepo) CreateBatch(entries []lineup.Lineup) error {
	for i := range entries {
		f.nextID++
		entries[i].ID = f.nextID
		f.entries = append(f.entries, entries[i])
	}
	return nil
}

func (f *fakeLineupRepo) GetByMatchAndTeam(matchID, teamID uint) ([]lineup.Lineup, error) {
	var out []lineup.Lineup
	for _, e := range f.entries {
		if e.MatchID == matchID && e.TeamID == teamID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeLineupRepo) GetActiveByMatchAndPlayer(matchID, playerID uint) (*lineup.Lineup, error) {
	for i := range f.entries {
		e := f.entries[i]
		if e.MatchID == matchID && e.PlayerID == playerID && !e.OnBench {
			return &e, nil
		}
	}
	return nil, nil
}

func (f *fakeLineupRepo) PlayerIDs(matchID, teamID uint) ([]uint, error) {
	var ids []uint
	for _, e := range f.entries {
		if e.MatchID == matchID && e.TeamID == teamID {
			ids = append(ids, e.PlayerID)
		}
	}
	return ids, nil
}

func (f *fakeLineupRepo) ActivePlayerIDs(matchID, teamID uint) ([]uint, error) {
	var ids []uint
	for _, e := range f.entries {
		if e.MatchID == matchID && e.TeamID == teamID && !e.OnBench {
			ids = append(ids, e.PlayerID)
		}
	}
	return ids, nil
}

func (f *fakeLineupRepo) DeleteByPlayers(matchID, teamID uint, playerIDs []uint) error {
	drop := make(map[uint]struct{}, len(playerIDs))
	for _, id := range playerIDs {
		drop[id] = struct{}{}
	}
	kept := f.entries[:0]
	for _, e := range f.entries {
		if _, ok := drop[e.PlayerID]; ok && e.MatchID == matchID && e.TeamID == teamID {
			continue
		}
		kept = append(kept, e)
	}
	f.entries = kept
	return nil
}

func (f *fakeLineupRepo) SetOnBench(matchID, playerID uint) error {
	for i := range f.entries {
		if f.entries[i].MatchID == matchID && f.entries[i].PlayerID == playerID {
			f.entries[i].OnBench = true
		}
	}
	return nil
}

func (f *fakeLineupRepo) WithTransaction(txFunc func(lineup.LineupRepository) error) error {
	return txFunc(f)
}

type fakeEventRepo struct {
	events        map[uint]Event
	substitutions []Substitution
	lineups       *fakeLineupRepo
	nextID        uint
}

func (f *fakeEventRepo) Create(e *Event) error {
	f.nextID++
	e.ID = f.nextID
	f.events[e.ID] = *e
	return nil
}

func (f *fakeEventRepo) GetByID(id uint) (*Event, error) {
	e, ok := f.events[id]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (f *fakeEventRepo) GetByMatch(matchID uint) ([]Event, error) {
	var out []Event
	for _, e := range f.events {
		if e.MatchID == matchID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEventRepo) SetPlayer(eventID, playerID uint) error {
	e := f.events[eventID]
	pid := playerID
	e.PlayerID = &pid
	f.events[eventID] = e
	return nil
}

func (f *fakeEventRepo) CreateSubstitution(s *Substitution) error {
	f.substitutions = append(f.substitutions, *s)
	return nil
}

func (f *fakeEventRepo) GetSubstitutionByEvent(eventID uint) (*Substitution, error) {
	for i := range f.substitutions {
		if f.substitutions[i].EventID == eventID {
			return &f.substitutions[i], nil
		}
	}
	return nil, nil
}

func (f *fakeEventRepo) RedCardedPlayerIDs(matchID uint) ([]uint, error) {
	var ids []uint
	for _, e := range f.events {
		if e.MatchID == matchID && e.EventType == EventRedCard && e.PlayerID != nil {
			ids = append(ids, *e.PlayerID)
		}
	}
	return ids, nil
}

func (f *fakeEventRepo) Delete(id uint) error {
	delete(f.events, id)
	return nil
}

func (f *fakeEventRepo) WithTransaction(txFunc func(EventRepository, lineup.LineupRepository) error) error {
	return txFunc(f, f.lineups)
}

type fakeMatchRepo struct {
	matches map[uint]match.Match
}

func (f *fakeMatchRepo) Create(m *match.Match) error { f.matches[m.ID] = *m; return nil }
func (f *fakeMatchRepo) GetByID(id uint) (*match.Match, error) {
	m, ok := f.matches[id]
	if !ok {
		return nil, nil
	}
	return &m, nil
}
func (f *fakeMatchRepo) GetAll() ([]match.Match, error)               { return nil, nil }
func (f *fakeMatchRepo) GetByLap(lap int) ([]match.Match, error)      { return nil, nil }
func (f *fakeMatchRepo) GetByTeam(teamID uint) ([]match.Match, error) { return nil, nil }
func (f *fakeMatchRepo) GetPlayed() ([]match.Match, error)            { return nil, nil }
func (f *fakeMatchRepo) Laps() ([]int, error)                         { return nil, nil }
func (f *fakeMatchRepo) Update(m *match.Match) error                  { f.matches[m.ID] = *m; return nil }
func (f *fakeMatchRepo) Delete(id uint) error                         { delete(f.matches, id); return nil }

type fakePlayerRepo struct {
	players map[uint]player.Player
}

func (f *fakePlayerRepo) Create(p *player.Player) error { f.players[p.ID] = *p; return nil }
func (f *fakePlayerRepo) GetByID(id uint) (*player.Player, error) {
	p, ok := f.players[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}
func (f *fakePlayerRepo) GetByIDs(ids []uint) ([]player.Player, error) {
	var out []player.Player
	for _, id := range ids {
		if p, ok := f.players[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}
func (f *fakePlayerRepo) GetAll() ([]player.Player, error) { return nil, nil }
func (f *fakePlayerRepo) GetByTeam(teamID uint) ([]player.Player, error) {
	var out []player.Player
	for id := uint(0); id < 1000; id++ {
		if p, ok := f.players[id]; ok && p.TeamID != nil && *p.TeamID == teamID {
			out = append(out, p)
		}
	}
	return out, nil
}
func (f *fakePlayerRepo) GetByTeamAndPosition(teamID uint, position player.Position) ([]player.Player, error) {
	return nil, nil
}
func (f *fakePlayerRepo) Update(p *player.Player) error { f.players[p.ID] = *p; return nil }
func (f *fakePlayerRepo) Delete(id uint) error          { delete(f.players, id); return nil }

const (
	homeTeamID = uint(10)
	awayTeamID = uint(20)
	matchID    = uint(1)
)

// newFixture sets up a match with a full home starting eleven (players
// 101-111) and two home players on the books but not in the lineup
// (112, 113).
func newFixture() (*RecorderService, *fakeEventRepo, *fakeLineupRepo) {
	lineups := &fakeLineupRepo{}
	events := &fakeEventRepo{events: map[uint]Event{}, lineups: lineups}
	matches := &fakeMatchRepo{matches: map[uint]match.Match{}}
	players := &fakePlayerRepo{players: map[uint]player.Player{}}

	m := match.Match{
		HomeTeamID: homeTeamID,
		AwayTeamID: awayTeamID,
		Date:       time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		Lap:        1,
	}
	m.ID = matchID
	matches.matches[matchID] = m

	addPlayer := func(id, teamID uint, name string) {
		tid := teamID
		p := player.Player{TeamID: &tid, Name: name, Position: player.PositionMidfielder}
		p.ID = id
		players.players[id] = p
	}
	for id := uint(101); id <= 113; id++ {
		addPlayer(id, homeTeamID, "Home")
	}
	for id := uint(201); id <= 211; id++ {
		addPlayer(id, awayTeamID, "Away")
	}

	for id := uint(101); id <= 111; id++ {
		lineups.entries = append(lineups.entries, lineup.Lineup{
			MatchID:    matchID,
			TeamID:     homeTeamID,
			PlayerID:   id,
			IsStarting: true,
		})
	}

	return NewRecorderService(events, lineups, matches, players), events, lineups
}

func TestRecordRestrictsTeamToMatch(t *testing.T) {
	service, _, _ := newFixture()

	if _, err := service.Record(matchID, EventGoal, 30, 12, ""); !apperr.IsValidation(err) {
		t.Fatalf("expected validation error for foreign team, got %v", err)
	}
	e, err := service.Record(matchID, EventGoal, homeTeamID, 12, "header")
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if e.PlayerID != nil {
		t.Fatal("freshly recorded event should have no player yet")
	}
}

func TestRecordRejectsUnknownType(t *testing.T) {
	service, _, _ := newFixture()

	if _, err := service.Record(matchID, EventType("throw_in"), homeTeamID, 3, ""); !apperr.IsValidation(err) {
		t.Fatalf("expected validation error for unknown type, got %v", err)
	}
}

func TestRecordUnknownMatch(t *testing.T) {
	service, _, _ := newFixture()

	if _, err := service.Record(42, EventGoal, homeTeamID, 3, ""); !apperr.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestAssignGoalHasNoRosterEffect(t *testing.T) {
	service, _, lineups := newFixture()

	e, err := service.Record(matchID, EventGoal, homeTeamID, 23, "")
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	got, err := service.AssignPlayer(e.ID, 104, 0)
	if err != nil {
		t.Fatalf("assign player: %v", err)
	}
	if got.PlayerID == nil || *got.PlayerID != 104 {
		t.Fatalf("expected player 104 attached, got %v", got.PlayerID)
	}
	entry, _ := lineups.GetActiveByMatchAndPlayer(matchID, 104)
	if entry == nil {
		t.Fatal("scorer should still be active")
	}
	if len(lineups.entries) != 11 {
		t.Fatalf("goal must not change the lineup, got %d entries", len(lineups.entries))
	}
}

func TestAssignRejectsInactivePlayer(t *testing.T) {
	service, _, _ := newFixture()

	e, err := service.Record(matchID, EventGoal, homeTeamID, 23, "")
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	// 112 is on the books but not in the lineup.
	if _, err := service.AssignPlayer(e.ID, 112, 0); !apperr.IsValidation(err) {
		t.Fatalf("expected validation error for inactive player, got %v", err)
	}
	// 201 plays for the other side.
	if _, err := service.AssignPlayer(e.ID, 201, 0); !apperr.IsValidation(err) {
		t.Fatalf("expected validation error for opposing player, got %v", err)
	}
}

func TestAssignSubstitutionFlipsRoster(t *testing.T) {
	service, events, lineups := newFixture()

	e, err := service.Record(matchID, EventSubstitution, homeTeamID, 60, "")
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if _, err := service.AssignPlayer(e.ID, 101, 112); err != nil {
		t.Fatalf("assign substitution: %v", err)
	}

	if entry, _ := lineups.GetActiveByMatchAndPlayer(matchID, 101); entry != nil {
		t.Fatal("outgoing player should be benched")
	}
	in, _ := lineups.GetActiveByMatchAndPlayer(matchID, 112)
	if in == nil {
		t.Fatal("incoming player should have an active entry")
	}
	if in.IsStarting || in.OnBench {
		t.Fatal("incoming entry should be non-starting and not benched")
	}

	sub, _ := events.GetSubstitutionByEvent(e.ID)
	if sub == nil {
		t.Fatal("substitution record should exist")
	}
	if sub.PlayerInID != 112 {
		t.Fatalf("substitution should link incoming player 112, got %d", sub.PlayerInID)
	}
}

func TestAssignSubstitutionRequiresIncoming(t *testing.T) {
	service, _, _ := newFixture()

	e, err := service.Record(matchID, EventSubstitution, homeTeamID, 60, "")
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if _, err := service.AssignPlayer(e.ID, 101, 0); !apperr.IsValidation(err) {
		t.Fatalf("expected validation error for missing incoming player, got %v", err)
	}
}

func TestAssignSubstitutionRejectsActiveIncoming(t *testing.T) {
	service, _, _ := newFixture()

	e, err := service.Record(matchID, EventSubstitution, homeTeamID, 60, "")
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	// 102 is already on the pitch, so it is not in the bench pool.
	if _, err := service.AssignPlayer(e.ID, 101, 102); !apperr.IsValidation(err) {
		t.Fatalf("expected validation error for active incoming player, got %v", err)
	}
}

func TestAssignRedCardBenchesWithoutReplacement(t *testing.T) {
	service, events, lineups := newFixture()

	e, err := service.Record(matchID, EventRedCard, homeTeamID, 71, "second booking")
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if _, err := service.AssignPlayer(e.ID, 107, 0); err != nil {
		t.Fatalf("assign red card: %v", err)
	}

	if entry, _ := lineups.GetActiveByMatchAndPlayer(matchID, 107); entry != nil {
		t.Fatal("carded player should be benched")
	}
	if len(lineups.entries) != 11 {
		t.Fatalf("red card must not add entries, got %d", len(lineups.entries))
	}
	if len(events.substitutions) != 0 {
		t.Fatal("red card must not create a substitution record")
	}
}

func TestBenchPoolExcludesRedCarded(t *testing.T) {
	service, _, _ := newFixture()

	// Send off 113 before it ever enters the lineup (e.g. from the bench).
	e, err := service.Record(matchID, EventRedCard, homeTeamID, 50, "")
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	// Force-attach without eligibility: simulate the card having been given
	// by recording against an active player first, then checking the pool
	// with a raw red-card event for 113.
	pid := uint(113)
	raw := Event{MatchID: matchID, TeamID: e.TeamID, EventType: EventRedCard, Minute: 50, PlayerID: &pid}
	if err := service.repo.Create(&raw); err != nil {
		t.Fatalf("create raw event: %v", err)
	}

	pool, err := service.BenchPool(matchID, homeTeamID)
	if err != nil {
		t.Fatalf("bench pool: %v", err)
	}
	for _, p := range pool {
		if p.ID == 113 {
			t.Fatal("red-carded player must not be in the bench pool")
		}
	}
	// 112 has no entry and no card, so it stays eligible.
	found := false
	for _, p := range pool {
		if p.ID == 112 {
			found = true
		}
	}
	if !found {
		t.Fatal("player 112 should be in the bench pool")
	}
}

func TestBenchPoolRecomputedAfterSubstitution(t *testing.T) {
	service, _, _ := newFixture()

	e, err := service.Record(matchID, EventSubstitution, homeTeamID, 60, "")
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if _, err := service.AssignPlayer(e.ID, 101, 112); err != nil {
		t.Fatalf("assign substitution: %v", err)
	}

	pool, err := service.BenchPool(matchID, homeTeamID)
	if err != nil {
		t.Fatalf("bench pool: %v", err)
	}
	for _, p := range pool {
		if p.ID == 112 {
			t.Fatal("player who already came on must leave the bench pool")
		}
		if p.ID == 101 {
			t.Fatal("substituted-off player must not re-enter the bench pool")
		}
	}
}

func TestTimelinePairsPlayersWithEvents(t *testing.T) {
	service, _, _ := newFixture()

	e, err := service.Record(matchID, EventGoal, homeTeamID, 23, "")
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if _, err := service.AssignPlayer(e.ID, 104, 0); err != nil {
		t.Fatalf("assign player: %v", err)
	}

	timeline, err := service.Timeline(matchID)
	if err != nil {
		t.Fatalf("timeline: %v", err)
	}
	if len(timeline.Home) != 11 {
		t.Fatalf("expected 11 home timeline rows, got %d", len(timeline.Home))
	}
	for _, row := range timeline.Home {
		if row.Entry.PlayerID == 104 {
			if len(row.Events) != 1 || row.Events[0].EventType != EventGoal {
				t.Fatalf("player 104 should carry the goal event, got %v", row.Events)
			}
			return
		}
	}
	t.Fatal("player 104 missing from home timeline")
}

func TestEventTypeLabels(t *testing.T) {
	cases := map[EventType]string{
		EventGoal:         "Goal",
		EventOwnGoal:      "Own goal",
		EventYellowCard:   "Yellow card",
		EventRedCard:      "Red card",
		EventSubstitution: "Substitution",
	}
	for et, want := range cases {
		if got := et.Label(); got != want {
			t.Fatalf("label for %s: got %q, want %q", et, got, want)
		}
	}
	if EventType("corner").Valid() {
		t.Fatal("unknown event type must not validate")
	}
}
