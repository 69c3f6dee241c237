package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/anujyadav2244/cricriser/internal/domain/entity"
	"github.com/anujyadav2244/cricriser/internal/domain/repository"
)

const leagueColumns = `id, admin_id, name, league_type, no_of_teams, no_of_matches,
	teams, start_date, end_date, tour, venue, league_format, umpires,
	league_format_type, overs_per_innings, test_days, logo_url, created_at, updated_at`

type LeagueRepository struct {
	pool *pgxpool.Pool
}

func NewLeagueRepository(pool *pgxpool.Pool) *LeagueRepository {
	return &LeagueRepository{pool: pool}
}

func (r *LeagueRepository) Create(l *entity.League) error {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO leagues (admin_id, name, league_type, no_of_teams, no_of_matches,
			teams, start_date, end_date, tour, venue, league_format, umpires,
			league_format_type, overs_per_innings, test_days, logo_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id, created_at, updated_at
	`, l.AdminID, l.Name, l.LeagueType, l.NoOfTeams, l.NoOfMatches,
		l.Teams, l.StartDate, l.EndDate, l.Tour, l.Venue, l.LeagueFormat, l.Umpires,
		l.LeagueFormatType, l.OversPerInnings, l.TestDays, l.LogoURL)

	return row.Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)
}

func scanLeague(row pgx.Row) (*entity.League, error) {
	l := &entity.League{}
	if err := row.Scan(&l.ID, &l.AdminID, &l.Name, &l.LeagueType, &l.NoOfTeams,
		&l.NoOfMatches, &l.Teams, &l.StartDate, &l.EndDate, &l.Tour, &l.Venue,
		&l.LeagueFormat, &l.Umpires, &l.LeagueFormatType, &l.OversPerInnings,
		&l.TestDays, &l.LogoURL, &l.CreatedAt, &l.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errNotFound
		}
		return nil, err
	}
	return l, nil
}

func (r *LeagueRepository) GetByID(id string) (*entity.League, error) {
	ctx := context.Background()
	return scanLeague(r.pool.QueryRow(ctx, `SELECT `+leagueColumns+` FROM leagues WHERE id = $1`, id))
}

func (r *LeagueRepository) GetByName(name string) (*entity.League, error) {
	ctx := context.Background()
	return scanLeague(r.pool.QueryRow(ctx, `SELECT `+leagueColumns+` FROM leagues WHERE lower(name) = lower($1)`, name))
}

func (r *LeagueRepository) ExistsByName(name string) (bool, error) {
	ctx := context.Background()
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM leagues WHERE lower(name) = lower($1))`, name).Scan(&exists)
	return exists, err
}

func (r *LeagueRepository) List() ([]*entity.League, error) {
	return r.list(`SELECT `+leagueColumns+` FROM leagues ORDER BY created_at DESC`, nil)
}

func (r *LeagueRepository) ListByAdmin(adminID string) ([]*entity.League, error) {
	return r.list(`SELECT `+leagueColumns+` FROM leagues WHERE admin_id = $1 ORDER BY created_at DESC`, []any{adminID})
}

func (r *LeagueRepository) list(query string, args []any) ([]*entity.League, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.League
	for rows.Next() {
		l, err := scanLeague(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *LeagueRepository) Update(l *entity.League) error {
	ctx := context.Background()
	l.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE leagues
		SET name = $1, no_of_teams = $2, no_of_matches = $3, teams = $4,
			start_date = $5, end_date = $6, tour = $7, venue = $8,
			league_format = $9, umpires = $10, league_format_type = $11,
			overs_per_innings = $12, test_days = $13, logo_url = $14, updated_at = $15
		WHERE id = $16
	`, l.Name, l.NoOfTeams, l.NoOfMatches, l.Teams,
		l.StartDate, l.EndDate, l.Tour, l.Venue,
		l.LeagueFormat, l.Umpires, l.LeagueFormatType,
		l.OversPerInnings, l.TestDays, l.LogoURL, l.UpdatedAt, l.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return errNotFound
	}
	return nil
}

func (r *LeagueRepository) Delete(id string) error {
	ctx := context.Background()
	res, err := r.pool.Exec(ctx, `DELETE FROM leagues WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return errNotFound
	}
	return nil
}

var _ repository.LeagueRepository = (*LeagueRepository)(nil)
