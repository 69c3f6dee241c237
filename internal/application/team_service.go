package application

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/sirupsen/logrus"

	"github.com/anujyadav2244/cricriser/internal/domain/entity"
	repo "github.com/anujyadav2244/cricriser/internal/domain/repository"
	"github.com/anujyadav2244/cricriser/internal/infrastructure/postgres"
	"github.com/anujyadav2244/cricriser/pkg/helpers"
)

var (
	ErrTeamNotFound = errors.New("Team not found")
	ErrTeamExists   = errors.New("Team already exists in this league")
)

type TeamService struct {
	Teams     repo.TeamRepository
	Leagues   repo.LeagueRepository
	Players   repo.PlayerRepository
	GCS       *storage.Client
	GCSBucket string
	Logger    *logrus.Logger
}

func NewTeamService(teams repo.TeamRepository, leagues repo.LeagueRepository, players repo.PlayerRepository, gcs *storage.Client, gcsBucket string, logger *logrus.Logger) *TeamService {
	return &TeamService{Teams: teams, Leagues: leagues, Players: players, GCS: gcs, GCSBucket: gcsBucket, Logger: logger}
}

// validateTeam runs the team form rules in order, first failure wins. The
// player-existence and league-window checks need repository access, so the
// whole chain lives on the service.
func (s *TeamService) validateTeam(t *entity.Team, league *entity.League) error {
	if t.SquadPlayerIDs == nil {
		return errors.New("Squad is required")
	}
	if n := len(t.SquadPlayerIDs); n < entity.SquadMin || n > entity.SquadMax {
		return errors.New("Squad must have 15–18 players")
	}
	if strings.TrimSpace(t.Coach) == "" {
		return errors.New("Coach required")
	}
	if t.Captain == "" || t.ViceCaptain == "" {
		return errors.New("Captain & Vice Captain required")
	}
	if t.Captain == t.ViceCaptain {
		return errors.New("Captain and Vice Captain cannot be same")
	}
	seen := make(map[string]bool, len(t.SquadPlayerIDs))
	for _, pid := range t.SquadPlayerIDs {
		if seen[pid] {
			return errors.New("Duplicate players in squad")
		}
		seen[pid] = true
	}

	for _, pid := range t.SquadPlayerIDs {
		p, err := s.Players.GetByID(pid)
		if err != nil || p == nil {
			return fmt.Errorf("Invalid player ID: %s", pid)
		}
		if p.ActiveLeagueID != "" && p.CurrentTeamID != t.ID &&
			p.LeagueStartDate != nil && p.LeagueEndDate != nil {
			overlap := !(league.EndDate.Before(*p.LeagueStartDate) || league.StartDate.After(*p.LeagueEndDate))
			if overlap {
				return fmt.Errorf("%s already plays in another league during this time", p.Name)
			}
		}
	}

	if !seen[t.Captain] || !seen[t.ViceCaptain] {
		return errors.New("Captain & Vice Captain must be in squad")
	}
	return nil
}

// Create adds a team to an owned league and signs its squad players up for
// the league window.
func (s *TeamService) Create(ctx context.Context, adminID, leagueID string, t *entity.Team, logo *LogoUpload) (*entity.Team, error) {
	league, err := s.ownedLeague(adminID, leagueID)
	if err != nil {
		return nil, err
	}
	t.LeagueID = leagueID

	exists, err := s.Teams.ExistsInLeague(leagueID, t.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrTeamExists
	}
	if err := s.validateTeam(t, league); err != nil {
		return nil, err
	}

	if err := s.Teams.Create(t); err != nil {
		return nil, err
	}

	if logo != nil {
		url, upErr := s.uploadLogo(ctx, t.ID, logo)
		if upErr != nil {
			return nil, upErr
		}
		t.LogoURL = url
		if err := s.Teams.Update(t); err != nil {
			return nil, err
		}
	}

	if err := s.assignPlayers(t, league); err != nil {
		return nil, err
	}
	return t, nil
}

type UpdateTeamInput struct {
	Name           string   `json:"name"`
	Coach          string   `json:"coach"`
	Captain        string   `json:"captain"`
	ViceCaptain    string   `json:"viceCaptain"`
	SquadPlayerIDs []string `json:"squadPlayerIds"`
}

// Update replaces the team's roster fields after re-running validation
// against the same league.
func (s *TeamService) Update(ctx context.Context, adminID, teamID string, in UpdateTeamInput, logo *LogoUpload) (*entity.Team, error) {
	t, league, err := s.ownedTeam(adminID, teamID)
	if err != nil {
		return nil, err
	}

	next := &entity.Team{
		ID:             t.ID,
		LeagueID:       t.LeagueID,
		Name:           in.Name,
		Coach:          in.Coach,
		Captain:        in.Captain,
		ViceCaptain:    in.ViceCaptain,
		SquadPlayerIDs: in.SquadPlayerIDs,
	}
	if err := s.validateTeam(next, league); err != nil {
		return nil, err
	}

	t.Name = in.Name
	t.Coach = in.Coach
	t.Captain = in.Captain
	t.ViceCaptain = in.ViceCaptain
	t.SquadPlayerIDs = in.SquadPlayerIDs

	if logo != nil {
		if t.LogoURL != "" {
			s.deleteLogo(ctx, t.ID)
		}
		url, upErr := s.uploadLogo(ctx, t.ID, logo)
		if upErr != nil {
			return nil, upErr
		}
		t.LogoURL = url
	}

	if err := s.Teams.Update(t); err != nil {
		return nil, err
	}
	if err := s.assignPlayers(t, league); err != nil {
		return nil, err
	}
	return t, nil
}

// Delete releases the squad, removes the stored logo, and drops the team.
func (s *TeamService) Delete(ctx context.Context, adminID, teamID string) error {
	t, _, err := s.ownedTeam(adminID, teamID)
	if err != nil {
		return err
	}
	s.releasePlayers(t)
	if t.LogoURL != "" {
		s.deleteLogo(ctx, t.ID)
	}
	return s.Teams.Delete(t.ID)
}

// DeleteAllByAdmin removes every team in every league the admin owns.
func (s *TeamService) DeleteAllByAdmin(ctx context.Context, adminID string) error {
	leagues, err := s.Leagues.ListByAdmin(adminID)
	if err != nil {
		return err
	}
	for _, league := range leagues {
		teams, tErr := s.Teams.ListByLeague(league.ID)
		if tErr != nil {
			return tErr
		}
		for _, t := range teams {
			s.releasePlayers(t)
			if t.LogoURL != "" {
				s.deleteLogo(ctx, t.ID)
			}
			if err := s.Teams.Delete(t.ID); err != nil {
				return err
			}
		}
	}
	return nil
}

// PlayerCard is the roster entry shown on the team details page.
type PlayerCard struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role,omitempty"`
	PhotoURL string `json:"photoUrl,omitempty"`
}

// TeamDetails is a team joined with its league name and the resolved captain,
// vice captain, and squad.
type TeamDetails struct {
	Team            *entity.Team `json:"team"`
	LeagueName      string       `json:"leagueName,omitempty"`
	CaptainName     string       `json:"captainName,omitempty"`
	ViceCaptainName string       `json:"viceCaptainName,omitempty"`
	Squad           []PlayerCard `json:"squad"`
}

// DetailsByName looks a team up by name and resolves its squad into player
// cards. Players that no longer exist are skipped rather than failing the
// whole page.
func (s *TeamService) DetailsByName(ctx context.Context, name string) (*TeamDetails, error) {
	t, err := s.Teams.GetByName(name)
	if err != nil {
		if postgres.ErrNotFound(err) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}

	d := &TeamDetails{Team: t, Squad: make([]PlayerCard, 0, len(t.SquadPlayerIDs))}
	if league, lErr := s.Leagues.GetByID(t.LeagueID); lErr == nil && league != nil {
		d.LeagueName = league.Name
	}
	for _, pid := range t.SquadPlayerIDs {
		p, pErr := s.Players.GetByID(pid)
		if pErr != nil || p == nil {
			continue
		}
		d.Squad = append(d.Squad, PlayerCard{ID: p.ID, Name: p.Name, Role: p.Role, PhotoURL: p.PhotoURL})
		if p.ID == t.Captain {
			d.CaptainName = p.Name
		}
		if p.ID == t.ViceCaptain {
			d.ViceCaptainName = p.Name
		}
	}
	return d, nil
}

func (s *TeamService) Get(ctx context.Context, teamID string) (*entity.Team, error) {
	t, err := s.Teams.GetByID(teamID)
	if err != nil {
		if postgres.ErrNotFound(err) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}
	return t, nil
}

func (s *TeamService) List(ctx context.Context) ([]*entity.Team, error) {
	return s.Teams.List()
}

func (s *TeamService) ListByLeague(ctx context.Context, leagueID string) ([]*entity.Team, error) {
	return s.Teams.ListByLeague(leagueID)
}

func (s *TeamService) ownedLeague(adminID, leagueID string) (*entity.League, error) {
	league, err := s.Leagues.GetByID(leagueID)
	if err != nil {
		if postgres.ErrNotFound(err) {
			return nil, ErrLeagueNotFound
		}
		return nil, err
	}
	if !strings.EqualFold(league.AdminID, adminID) {
		return nil, ErrNotLeagueOwner
	}
	return league, nil
}

func (s *TeamService) ownedTeam(adminID, teamID string) (*entity.Team, *entity.League, error) {
	t, err := s.Teams.GetByID(teamID)
	if err != nil {
		if postgres.ErrNotFound(err) {
			return nil, nil, ErrTeamNotFound
		}
		return nil, nil, err
	}
	league, err := s.ownedLeague(adminID, t.LeagueID)
	if err != nil {
		return nil, nil, err
	}
	return t, league, nil
}

func (s *TeamService) assignPlayers(t *entity.Team, league *entity.League) error {
	for _, pid := range t.SquadPlayerIDs {
		if err := s.Players.AssignTeam(pid, t.ID, league.ID, league.StartDate, league.EndDate); err != nil {
			return err
		}
	}
	return nil
}

func (s *TeamService) releasePlayers(t *entity.Team) {
	for _, pid := range t.SquadPlayerIDs {
		if err := s.Players.ReleaseTeam(pid); err != nil {
			s.Logger.WithError(err).WithField("player_id", pid).Warn("release player failed")
		}
	}
}

func (s *TeamService) uploadLogo(ctx context.Context, teamID string, logo *LogoUpload) (string, error) {
	if s.GCS == nil || s.GCSBucket == "" {
		return "", errors.New("object storage not configured")
	}
	ext := strings.ToLower(filepath.Ext(logo.Filename))
	return helpers.UploadObject(ctx, s.GCS, s.GCSBucket, "team_logos/"+teamID+ext, logo.ContentType, logo.Reader)
}

func (s *TeamService) deleteLogo(ctx context.Context, teamID string) {
	if s.GCS == nil || s.GCSBucket == "" {
		return
	}
	for _, ext := range []string{".png", ".jpg", ".jpeg", ".webp"} {
		if err := helpers.DeleteObject(ctx, s.GCS, s.GCSBucket, "team_logos/"+teamID+ext); err == nil {
			return
		}
	}
}
