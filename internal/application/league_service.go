package application

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/anujyadav2244/cricriser/internal/domain/entity"
	repo "github.com/anujyadav2244/cricriser/internal/domain/repository"
	"github.com/anujyadav2244/cricriser/internal/infrastructure/postgres"
	"github.com/anujyadav2244/cricriser/pkg/helpers"
)

var (
	ErrLeagueNameExists  = errors.New("League name already exists!")
	ErrLeagueNotFound    = errors.New("League not found")
	ErrNotLeagueOwner    = errors.New("This league does not belong to you!")
	ErrNoLeaguesToDelete = errors.New("No leagues found to delete!")
	ErrBadFormatType     = errors.New("Invalid leagueFormatType! Choose SINGLE ROUND ROBIN, DOUBLE ROUND ROBIN, or GROUP.")
)

type LeagueService struct {
	Leagues   repo.LeagueRepository
	Teams     repo.TeamRepository
	Matches   repo.MatchRepository
	Points    repo.PointsRepository
	Players   repo.PlayerRepository
	GCS       *storage.Client
	GCSBucket string
	ES        *elasticsearch.Client
	ESIndex   string
	Logger    *logrus.Logger
}

func NewLeagueService(leagues repo.LeagueRepository, teams repo.TeamRepository, matches repo.MatchRepository, points repo.PointsRepository, players repo.PlayerRepository, gcs *storage.Client, gcsBucket string, es *elasticsearch.Client, esIndex string, logger *logrus.Logger) *LeagueService {
	return &LeagueService{
		Leagues:   leagues,
		Teams:     teams,
		Matches:   matches,
		Points:    points,
		Players:   players,
		GCS:       gcs,
		GCSBucket: gcsBucket,
		ES:        es,
		ESIndex:   esIndex,
		Logger:    logger,
	}
}

// ValidateLeague runs the create-form rules in order and returns the first
// failure. The rules are cross-field and ordered, so they live here rather
// than in binding tags.
func ValidateLeague(l *entity.League) error {
	if strings.TrimSpace(l.Name) == "" {
		return errors.New("League / Series name is required")
	}
	if l.LeagueType == "" {
		return errors.New("League type is required")
	}
	if l.LeagueFormat == "" {
		return errors.New("Match type is required")
	}
	if l.LeagueType == entity.LeagueTypeBilateral && len(l.Teams) != 2 {
		return errors.New("Bilateral series must have exactly 2 teams")
	}
	if l.LeagueType == entity.LeagueTypeTournament && len(l.Teams) < 3 {
		return errors.New("Tournament requires minimum 3 teams")
	}
	if l.LeagueType == entity.LeagueTypeBilateral && l.NoOfMatches == 0 {
		return errors.New("Number of matches is required")
	}
	if l.LeagueType == entity.LeagueTypeTournament && l.LeagueFormatType == "" {
		return errors.New("Tournament format is required")
	}
	if l.LeagueFormatType != "" {
		switch l.LeagueFormatType {
		case entity.FormatTypeSingleRoundRobin, entity.FormatTypeDoubleRoundRobin, entity.FormatTypeGroup:
		default:
			return ErrBadFormatType
		}
	}
	if l.LeagueFormat == entity.LeagueFormatLimited && l.OversPerInnings == 0 {
		return errors.New("Overs per innings is required")
	}
	if l.LeagueFormat == entity.LeagueFormatTest && l.TestDays == 0 {
		return errors.New("Test match days (4 or 5) required")
	}
	if l.StartDate.IsZero() || l.EndDate.IsZero() {
		return errors.New("Start and end dates are required")
	}
	return nil
}

type LogoUpload struct {
	Reader      io.Reader
	Filename    string
	ContentType string
}

// Create validates, stores the league, uploads the logo, generates fixtures,
// and seeds a zeroed points table row per team.
func (s *LeagueService) Create(ctx context.Context, adminID string, l *entity.League, logo *LogoUpload, opts ScheduleOptions) ([]*entity.Match, error) {
	if err := ValidateLeague(l); err != nil {
		return nil, err
	}
	exists, err := s.Leagues.ExistsByName(l.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrLeagueNameExists
	}

	l.AdminID = adminID
	l.NoOfTeams = len(l.Teams)
	if err := s.Leagues.Create(l); err != nil {
		return nil, err
	}

	if logo != nil {
		url, upErr := s.uploadLogo(ctx, l.ID, logo)
		if upErr != nil {
			return nil, upErr
		}
		l.LogoURL = url
		if err := s.Leagues.Update(l); err != nil {
			return nil, err
		}
	}

	matches := GenerateFixtures(l, opts)
	if err := s.Matches.CreateBatch(matches); err != nil {
		return nil, err
	}
	l.NoOfMatches = len(matches)
	if err := s.Leagues.Update(l); err != nil {
		return nil, err
	}

	if err := s.Points.InitForLeague(l.ID, l.Teams); err != nil {
		return nil, err
	}

	_ = s.indexLeague(ctx, l)
	return matches, nil
}

type UpdateLeagueInput struct {
	Name         string     `json:"name"`
	NoOfTeams    int        `json:"noOfTeams"`
	Teams        []string   `json:"teams"`
	NoOfMatches  int        `json:"noOfMatches"`
	StartDate    *time.Time `json:"startDate"`
	EndDate      *time.Time `json:"endDate"`
	Venue        string     `json:"venue"`
	Tour         string     `json:"tour"`
	LeagueFormat string     `json:"leagueFormat"`
	Umpires      []string   `json:"umpires"`
}

// Update applies the non-empty fields of in to an owned league.
func (s *LeagueService) Update(ctx context.Context, adminID, leagueID string, in UpdateLeagueInput, logo *LogoUpload) (*entity.League, error) {
	l, err := s.owned(adminID, leagueID)
	if err != nil {
		return nil, err
	}

	if in.Name != "" && !strings.EqualFold(in.Name, l.Name) {
		exists, exErr := s.Leagues.ExistsByName(in.Name)
		if exErr != nil {
			return nil, exErr
		}
		if exists {
			return nil, errors.New("Another league with this name already exists!")
		}
		l.Name = in.Name
	}
	if in.NoOfTeams > 0 {
		l.NoOfTeams = in.NoOfTeams
	}
	if len(in.Teams) > 0 {
		l.Teams = in.Teams
	}
	if in.NoOfMatches > 0 {
		l.NoOfMatches = in.NoOfMatches
	}
	if in.StartDate != nil {
		l.StartDate = *in.StartDate
	}
	if in.EndDate != nil {
		l.EndDate = *in.EndDate
	}
	if in.Venue != "" {
		l.Venue = in.Venue
	}
	if in.Tour != "" {
		l.Tour = in.Tour
	}
	if in.LeagueFormat != "" {
		l.LeagueFormat = in.LeagueFormat
	}
	if len(in.Umpires) > 0 {
		l.Umpires = in.Umpires
	}

	if logo != nil {
		if l.LogoURL != "" {
			s.deleteLogo(ctx, l.ID)
		}
		url, upErr := s.uploadLogo(ctx, l.ID, logo)
		if upErr != nil {
			return nil, upErr
		}
		l.LogoURL = url
	}

	if err := s.Leagues.Update(l); err != nil {
		return nil, err
	}
	_ = s.indexLeague(ctx, l)
	return l, nil
}

func (s *LeagueService) Get(ctx context.Context, leagueID string) (*entity.League, error) {
	l, err := s.Leagues.GetByID(leagueID)
	if err != nil {
		if postgres.ErrNotFound(err) {
			return nil, ErrLeagueNotFound
		}
		return nil, err
	}
	return l, nil
}

func (s *LeagueService) GetByName(ctx context.Context, name string) (*entity.League, error) {
	l, err := s.Leagues.GetByName(name)
	if err != nil {
		if postgres.ErrNotFound(err) {
			return nil, ErrLeagueNotFound
		}
		return nil, err
	}
	return l, nil
}

func (s *LeagueService) List(ctx context.Context) ([]*entity.League, error) {
	return s.Leagues.List()
}

func (s *LeagueService) ListByAdmin(ctx context.Context, adminID string) ([]*entity.League, error) {
	return s.Leagues.ListByAdmin(adminID)
}

func (s *LeagueService) Fixtures(ctx context.Context, leagueID string) ([]*entity.Match, error) {
	if _, err := s.Get(ctx, leagueID); err != nil {
		return nil, err
	}
	return s.Matches.ListByLeague(leagueID)
}

func (s *LeagueService) PointsTable(ctx context.Context, leagueID string) ([]*entity.PointsRow, error) {
	if _, err := s.Get(ctx, leagueID); err != nil {
		return nil, err
	}
	return s.Points.TableForLeague(leagueID)
}

// Delete removes an owned league and everything hanging off it: teams,
// fixtures, points rows, the stored logo, and the search document.
func (s *LeagueService) Delete(ctx context.Context, adminID, leagueID string) error {
	l, err := s.owned(adminID, leagueID)
	if err != nil {
		return err
	}

	teams, err := s.Teams.ListByLeague(l.ID)
	if err != nil {
		return err
	}
	for _, t := range teams {
		s.releaseSquad(t)
		if err := s.Teams.Delete(t.ID); err != nil {
			return err
		}
	}
	if err := s.Matches.DeleteByLeague(l.ID); err != nil {
		return err
	}
	if err := s.Points.DeleteByLeague(l.ID); err != nil {
		return err
	}
	if l.LogoURL != "" {
		s.deleteLogo(ctx, l.ID)
	}
	if err := s.Leagues.Delete(l.ID); err != nil {
		return err
	}
	s.deindexLeague(ctx, l.ID)
	return nil
}

// DeleteAll removes every league owned by the admin.
func (s *LeagueService) DeleteAll(ctx context.Context, adminID string) error {
	leagues, err := s.Leagues.ListByAdmin(adminID)
	if err != nil {
		return err
	}
	if len(leagues) == 0 {
		return ErrNoLeaguesToDelete
	}
	for _, l := range leagues {
		if err := s.Delete(ctx, adminID, l.ID); err != nil {
			return err
		}
	}
	return nil
}

// releaseSquad frees the team's players so a deleted league no longer blocks
// them from joining overlapping ones.
func (s *LeagueService) releaseSquad(t *entity.Team) {
	for _, pid := range t.SquadPlayerIDs {
		if err := s.Players.ReleaseTeam(pid); err != nil {
			s.Logger.WithError(err).WithField("player_id", pid).Warn("release player failed")
		}
	}
}

func (s *LeagueService) owned(adminID, leagueID string) (*entity.League, error) {
	l, err := s.Leagues.GetByID(leagueID)
	if err != nil {
		if postgres.ErrNotFound(err) {
			return nil, ErrLeagueNotFound
		}
		return nil, err
	}
	if !strings.EqualFold(l.AdminID, adminID) {
		return nil, ErrNotLeagueOwner
	}
	return l, nil
}

func (s *LeagueService) uploadLogo(ctx context.Context, leagueID string, logo *LogoUpload) (string, error) {
	if s.GCS == nil || s.GCSBucket == "" {
		return "", errors.New("object storage not configured")
	}
	ext := strings.ToLower(filepath.Ext(logo.Filename))
	objectPath := "leagues/" + leagueID + ext
	return helpers.UploadObject(ctx, s.GCS, s.GCSBucket, objectPath, logo.ContentType, logo.Reader)
}

func (s *LeagueService) deleteLogo(ctx context.Context, leagueID string) {
	if s.GCS == nil || s.GCSBucket == "" {
		return
	}
	for _, ext := range []string{".png", ".jpg", ".jpeg", ".webp"} {
		if err := helpers.DeleteObject(ctx, s.GCS, s.GCSBucket, "leagues/"+leagueID+ext); err == nil {
			return
		}
	}
}

func (s *LeagueService) indexLeague(ctx context.Context, l *entity.League) error {
	if s.ES == nil || s.ESIndex == "" {
		return nil
	}
	doc := map[string]any{
		"id":          l.ID,
		"name":        l.Name,
		"league_type": l.LeagueType,
		"tour":        l.Tour,
		"venue":       l.Venue,
		"teams":       l.Teams,
		"start_date":  l.StartDate.Format(time.RFC3339),
		"end_date":    l.EndDate.Format(time.RFC3339),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESIndex, DocumentID: l.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		s.Logger.WithError(err).WithField("league_id", l.ID).Warn("es index failed")
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		s.Logger.WithField("status", res.Status()).WithField("league_id", l.ID).Warn("es index response error")
	}
	return nil
}

func (s *LeagueService) deindexLeague(ctx context.Context, leagueID string) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	req := esapi.DeleteRequest{Index: s.ESIndex, DocumentID: leagueID}
	if res, err := req.Do(c, s.ES); err == nil {
		_ = res.Body.Close()
	}
}

// Search runs a multi_match query over the league index.
func (s *LeagueService) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"name^2", "tour", "venue", "teams"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := s.ES.Search(
		s.ES.Search.WithContext(c),
		s.ES.Search.WithIndex(s.ESIndex),
		s.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}
	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
