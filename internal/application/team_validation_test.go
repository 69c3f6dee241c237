package application

import (
	"fmt"
	"testing"
	"time"

	"github.com/anujyadav2244/cricriser/internal/domain/entity"
)

type fakePlayerRepo struct {
	players map[string]*entity.Player
}

func (f *fakePlayerRepo) Create(p *entity.Player) error { f.players[p.ID] = p; return nil }

func (f *fakePlayerRepo) GetByID(id string) (*entity.Player, error) {
	p, ok := f.players[id]
	if !ok {
		return nil, fmt.Errorf("not found")
	}
	return p, nil
}

func (f *fakePlayerRepo) List() ([]*entity.Player, error) {
	out := make([]*entity.Player, 0, len(f.players))
	for _, p := range f.players {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakePlayerRepo) SetPhotoURL(id, url string) error { return nil }

func (f *fakePlayerRepo) AssignTeam(playerID, teamID, leagueID string, start, end time.Time) error {
	p := f.players[playerID]
	p.CurrentTeamID = teamID
	p.ActiveLeagueID = leagueID
	p.LeagueStartDate = &start
	p.LeagueEndDate = &end
	return nil
}

func (f *fakePlayerRepo) ReleaseTeam(playerID string) error {
	p := f.players[playerID]
	p.CurrentTeamID = ""
	p.ActiveLeagueID = ""
	p.LeagueStartDate = nil
	p.LeagueEndDate = nil
	return nil
}

func squad(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("p%d", i+1)
	}
	return ids
}

func newTeamFixture(squadSize int) (*TeamService, *entity.Team, *entity.League) {
	repo := &fakePlayerRepo{players: map[string]*entity.Player{}}
	for _, id := range squad(20) {
		repo.players[id] = &entity.Player{ID: id, Name: "Player " + id}
	}
	svc := &TeamService{Players: repo}
	team := &entity.Team{
		Name:           "Strikers",
		Coach:          "Coach K",
		Captain:        "p1",
		ViceCaptain:    "p2",
		SquadPlayerIDs: squad(squadSize),
	}
	league := &entity.League{
		ID:        "league-1",
		StartDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
	}
	return svc, team, league
}

func TestValidateTeamSquadBounds(t *testing.T) {
	for _, n := range []int{15, 16, 18} {
		svc, team, league := newTeamFixture(n)
		if err := svc.validateTeam(team, league); err != nil {
			t.Errorf("squad of %d should pass: %v", n, err)
		}
	}
	for _, n := range []int{1, 14, 19} {
		svc, team, league := newTeamFixture(n)
		err := svc.validateTeam(team, league)
		if err == nil {
			t.Errorf("squad of %d should fail", n)
			continue
		}
		if err.Error() != "Squad must have 15–18 players" {
			t.Errorf("squad of %d: got %q", n, err.Error())
		}
	}
}

func TestValidateTeamMissingSquad(t *testing.T) {
	svc, team, league := newTeamFixture(15)
	team.SquadPlayerIDs = nil
	if err := svc.validateTeam(team, league); err == nil || err.Error() != "Squad is required" {
		t.Errorf("got %v", err)
	}
}

func TestValidateTeamCaptainRules(t *testing.T) {
	svc, team, league := newTeamFixture(15)
	team.Coach = " "
	if err := svc.validateTeam(team, league); err == nil || err.Error() != "Coach required" {
		t.Errorf("coach: got %v", err)
	}

	svc, team, league = newTeamFixture(15)
	team.ViceCaptain = ""
	if err := svc.validateTeam(team, league); err == nil || err.Error() != "Captain & Vice Captain required" {
		t.Errorf("missing vice: got %v", err)
	}

	svc, team, league = newTeamFixture(15)
	team.ViceCaptain = team.Captain
	if err := svc.validateTeam(team, league); err == nil || err.Error() != "Captain and Vice Captain cannot be same" {
		t.Errorf("same captain: got %v", err)
	}

	// captain outside the squad: p1..p15 in squad, captain p20
	svc, team, league = newTeamFixture(15)
	team.Captain = "p20"
	if err := svc.validateTeam(team, league); err == nil || err.Error() != "Captain & Vice Captain must be in squad" {
		t.Errorf("captain outside squad: got %v", err)
	}
}

func TestValidateTeamDuplicatePlayers(t *testing.T) {
	svc, team, league := newTeamFixture(15)
	team.SquadPlayerIDs[14] = team.SquadPlayerIDs[0]
	if err := svc.validateTeam(team, league); err == nil || err.Error() != "Duplicate players in squad" {
		t.Errorf("got %v", err)
	}
}

func TestValidateTeamUnknownPlayer(t *testing.T) {
	svc, team, league := newTeamFixture(15)
	team.SquadPlayerIDs[5] = "ghost"
	if err := svc.validateTeam(team, league); err == nil || err.Error() != "Invalid player ID: ghost" {
		t.Errorf("got %v", err)
	}
}

func TestValidateTeamRejectsOverlappingLeagueWindow(t *testing.T) {
	svc, team, league := newTeamFixture(15)
	repo := svc.Players.(*fakePlayerRepo)

	otherStart := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	otherEnd := time.Date(2026, 5, 15, 0, 0, 0, 0, time.UTC)
	p := repo.players["p3"]
	p.ActiveLeagueID = "other-league"
	p.CurrentTeamID = "other-team"
	p.LeagueStartDate = &otherStart
	p.LeagueEndDate = &otherEnd

	err := svc.validateTeam(team, league)
	if err == nil || err.Error() != "Player p3 already plays in another league during this time" {
		t.Errorf("got %v", err)
	}
}

func TestValidateTeamAllowsDisjointLeagueWindow(t *testing.T) {
	svc, team, league := newTeamFixture(15)
	repo := svc.Players.(*fakePlayerRepo)

	otherStart := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	otherEnd := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	p := repo.players["p3"]
	p.ActiveLeagueID = "other-league"
	p.CurrentTeamID = "other-team"
	p.LeagueStartDate = &otherStart
	p.LeagueEndDate = &otherEnd

	if err := svc.validateTeam(team, league); err != nil {
		t.Errorf("disjoint window should pass: %v", err)
	}
}
