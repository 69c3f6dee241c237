package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/anujyadav2244/cricriser/internal/domain/entity"
)

type fakeLeagueRepo struct {
	leagues map[string]*entity.League
}

func newFakeLeagueRepo() *fakeLeagueRepo {
	return &fakeLeagueRepo{leagues: map[string]*entity.League{}}
}

func (f *fakeLeagueRepo) Create(l *entity.League) error {
	if l.ID == "" {
		l.ID = "league-" + l.Name
	}
	f.leagues[l.ID] = l
	return nil
}

func (f *fakeLeagueRepo) GetByID(id string) (*entity.League, error) {
	l, ok := f.leagues[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return l, nil
}

func (f *fakeLeagueRepo) GetByName(name string) (*entity.League, error) {
	for _, l := range f.leagues {
		if l.Name == name {
			return l, nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeLeagueRepo) ExistsByName(name string) (bool, error) {
	_, err := f.GetByName(name)
	return err == nil, nil
}

func (f *fakeLeagueRepo) List() ([]*entity.League, error) {
	out := make([]*entity.League, 0, len(f.leagues))
	for _, l := range f.leagues {
		out = append(out, l)
	}
	return out, nil
}

func (f *fakeLeagueRepo) ListByAdmin(adminID string) ([]*entity.League, error) {
	var out []*entity.League
	for _, l := range f.leagues {
		if l.AdminID == adminID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeLeagueRepo) Update(l *entity.League) error { f.leagues[l.ID] = l; return nil }
func (f *fakeLeagueRepo) Delete(id string) error        { delete(f.leagues, id); return nil }

type fakeTeamRepo struct {
	teams map[string]*entity.Team
}

func newFakeTeamRepo() *fakeTeamRepo {
	return &fakeTeamRepo{teams: map[string]*entity.Team{}}
}

func (f *fakeTeamRepo) Create(t *entity.Team) error {
	if t.ID == "" {
		t.ID = "team-" + t.Name
	}
	f.teams[t.ID] = t
	return nil
}

func (f *fakeTeamRepo) GetByID(id string) (*entity.Team, error) {
	t, ok := f.teams[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return t, nil
}

func (f *fakeTeamRepo) GetByName(name string) (*entity.Team, error) {
	for _, t := range f.teams {
		if t.Name == name {
			return t, nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeTeamRepo) ExistsInLeague(leagueID, name string) (bool, error) {
	for _, t := range f.teams {
		if t.LeagueID == leagueID && t.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeTeamRepo) List() ([]*entity.Team, error) {
	out := make([]*entity.Team, 0, len(f.teams))
	for _, t := range f.teams {
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeTeamRepo) ListByLeague(leagueID string) ([]*entity.Team, error) {
	var out []*entity.Team
	for _, t := range f.teams {
		if t.LeagueID == leagueID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTeamRepo) Update(t *entity.Team) error { f.teams[t.ID] = t; return nil }
func (f *fakeTeamRepo) Delete(id string) error      { delete(f.teams, id); return nil }

type fakeMatchRepo struct {
	matches map[string][]*entity.Match
}

func newFakeMatchRepo() *fakeMatchRepo {
	return &fakeMatchRepo{matches: map[string][]*entity.Match{}}
}

func (f *fakeMatchRepo) CreateBatch(ms []*entity.Match) error {
	for _, m := range ms {
		f.matches[m.LeagueID] = append(f.matches[m.LeagueID], m)
	}
	return nil
}

func (f *fakeMatchRepo) ListByLeague(leagueID string) ([]*entity.Match, error) {
	return f.matches[leagueID], nil
}

func (f *fakeMatchRepo) DeleteByLeague(leagueID string) error {
	delete(f.matches, leagueID)
	return nil
}

type fakePointsRepo struct {
	rows map[string][]*entity.PointsRow
}

func newFakePointsRepo() *fakePointsRepo {
	return &fakePointsRepo{rows: map[string][]*entity.PointsRow{}}
}

func (f *fakePointsRepo) InitForLeague(leagueID string, teamNames []string) error {
	for _, name := range teamNames {
		f.rows[leagueID] = append(f.rows[leagueID], &entity.PointsRow{LeagueID: leagueID, TeamName: name})
	}
	return nil
}

func (f *fakePointsRepo) TableForLeague(leagueID string) ([]*entity.PointsRow, error) {
	return f.rows[leagueID], nil
}

func (f *fakePointsRepo) DeleteByLeague(leagueID string) error {
	delete(f.rows, leagueID)
	return nil
}

func newLeagueFixture() (*LeagueService, *fakeLeagueRepo, *fakeTeamRepo, *fakeMatchRepo, *fakePointsRepo, *fakePlayerRepo) {
	leagues := newFakeLeagueRepo()
	teams := newFakeTeamRepo()
	matches := newFakeMatchRepo()
	points := newFakePointsRepo()
	players := &fakePlayerRepo{players: map[string]*entity.Player{}}
	svc := &LeagueService{
		Leagues: leagues,
		Teams:   teams,
		Matches: matches,
		Points:  points,
		Players: players,
		Logger:  logrus.New(),
	}
	return svc, leagues, teams, matches, points, players
}

func TestDeleteAllWithoutLeagues(t *testing.T) {
	svc, _, _, _, _, _ := newLeagueFixture()

	err := svc.DeleteAll(context.Background(), "admin-1")
	if !errors.Is(err, ErrNoLeaguesToDelete) {
		t.Errorf("got %v, want ErrNoLeaguesToDelete", err)
	}
}

func TestDeleteLeagueCascadesAndReleasesSquad(t *testing.T) {
	svc, leagues, teams, matches, points, players := newLeagueFixture()

	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	l := &entity.League{ID: "league-1", AdminID: "admin-1", Name: "Premier Cup", StartDate: start, EndDate: end}
	leagues.leagues[l.ID] = l

	squad := []string{"p1", "p2", "p3"}
	for _, pid := range squad {
		players.players[pid] = &entity.Player{
			ID: pid, Name: "Player " + pid,
			CurrentTeamID: "team-1", ActiveLeagueID: l.ID,
			LeagueStartDate: &start, LeagueEndDate: &end,
		}
	}
	teams.teams["team-1"] = &entity.Team{ID: "team-1", LeagueID: l.ID, Name: "Strikers", SquadPlayerIDs: squad}
	_ = matches.CreateBatch([]*entity.Match{{LeagueID: l.ID, Team1: "A", Team2: "B"}})
	_ = points.InitForLeague(l.ID, []string{"Strikers"})

	if err := svc.Delete(context.Background(), "admin-1", l.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, ok := leagues.leagues[l.ID]; ok {
		t.Error("league should be removed")
	}
	if _, ok := teams.teams["team-1"]; ok {
		t.Error("team should be removed")
	}
	if got := matches.matches[l.ID]; len(got) != 0 {
		t.Errorf("fixtures should be removed, %d left", len(got))
	}
	if got := points.rows[l.ID]; len(got) != 0 {
		t.Errorf("points rows should be removed, %d left", len(got))
	}
	for _, pid := range squad {
		p := players.players[pid]
		if p.ActiveLeagueID != "" || p.CurrentTeamID != "" {
			t.Errorf("player %s still bound to league=%q team=%q", pid, p.ActiveLeagueID, p.CurrentTeamID)
		}
		if p.LeagueStartDate != nil || p.LeagueEndDate != nil {
			t.Errorf("player %s keeps a league window after delete", pid)
		}
	}
}

func TestDeleteRejectsForeignLeague(t *testing.T) {
	svc, leagues, _, _, _, _ := newLeagueFixture()
	leagues.leagues["league-1"] = &entity.League{ID: "league-1", AdminID: "admin-1", Name: "Premier Cup"}

	err := svc.Delete(context.Background(), "admin-2", "league-1")
	if !errors.Is(err, ErrNotLeagueOwner) {
		t.Errorf("got %v, want ErrNotLeagueOwner", err)
	}
}

func TestTeamDetailsByName(t *testing.T) {
	leagues := newFakeLeagueRepo()
	teams := newFakeTeamRepo()
	players := &fakePlayerRepo{players: map[string]*entity.Player{}}
	svc := &TeamService{Teams: teams, Leagues: leagues, Players: players, Logger: logrus.New()}

	leagues.leagues["league-1"] = &entity.League{ID: "league-1", Name: "Premier Cup"}
	for _, pid := range []string{"p1", "p2", "p3"} {
		players.players[pid] = &entity.Player{ID: pid, Name: "Player " + pid, Role: "BATTER"}
	}
	teams.teams["team-1"] = &entity.Team{
		ID: "team-1", LeagueID: "league-1", Name: "Strikers",
		Captain: "p1", ViceCaptain: "p2",
		SquadPlayerIDs: []string{"p1", "p2", "p3"},
	}

	d, err := svc.DetailsByName(context.Background(), "Strikers")
	if err != nil {
		t.Fatalf("details: %v", err)
	}
	if d.LeagueName != "Premier Cup" {
		t.Errorf("league name = %q, want Premier Cup", d.LeagueName)
	}
	if d.CaptainName != "Player p1" || d.ViceCaptainName != "Player p2" {
		t.Errorf("captain = %q vice = %q", d.CaptainName, d.ViceCaptainName)
	}
	if len(d.Squad) != 3 {
		t.Fatalf("squad has %d cards, want 3", len(d.Squad))
	}

	if _, err := svc.DetailsByName(context.Background(), "Nobody FC"); err == nil {
		t.Error("unknown team name should fail")
	}
}
