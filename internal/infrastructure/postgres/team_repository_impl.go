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

const teamColumns = `id, league_id, name, coach, captain, vice_captain,
	squad_player_ids, logo_url, created_at, updated_at`

type TeamRepository struct {
	pool *pgxpool.Pool
}

func NewTeamRepository(pool *pgxpool.Pool) *TeamRepository {
	return &TeamRepository{pool: pool}
}

func (r *TeamRepository) Create(t *entity.Team) error {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO teams (league_id, name, coach, captain, vice_captain, squad_player_ids, logo_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`, t.LeagueID, t.Name, t.Coach, t.Captain, t.ViceCaptain, t.SquadPlayerIDs, t.LogoURL)

	return row.Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

func scanTeam(row pgx.Row) (*entity.Team, error) {
	t := &entity.Team{}
	if err := row.Scan(&t.ID, &t.LeagueID, &t.Name, &t.Coach, &t.Captain,
		&t.ViceCaptain, &t.SquadPlayerIDs, &t.LogoURL, &t.CreatedAt, &t.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errNotFound
		}
		return nil, err
	}
	return t, nil
}

func (r *TeamRepository) GetByID(id string) (*entity.Team, error) {
	ctx := context.Background()
	return scanTeam(r.pool.QueryRow(ctx, `SELECT `+teamColumns+` FROM teams WHERE id = $1`, id))
}

// GetByName returns the oldest team with the name. Names are only unique per
// league, so lookups by bare name favor the earliest registration.
func (r *TeamRepository) GetByName(name string) (*entity.Team, error) {
	ctx := context.Background()
	return scanTeam(r.pool.QueryRow(ctx,
		`SELECT `+teamColumns+` FROM teams WHERE lower(name) = lower($1) ORDER BY created_at LIMIT 1`, name))
}

func (r *TeamRepository) ExistsInLeague(leagueID, name string) (bool, error) {
	ctx := context.Background()
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM teams WHERE league_id = $1 AND lower(name) = lower($2))
	`, leagueID, name).Scan(&exists)
	return exists, err
}

func (r *TeamRepository) List() ([]*entity.Team, error) {
	return r.list(`SELECT `+teamColumns+` FROM teams ORDER BY created_at DESC`, nil)
}

func (r *TeamRepository) ListByLeague(leagueID string) ([]*entity.Team, error) {
	return r.list(`SELECT `+teamColumns+` FROM teams WHERE league_id = $1 ORDER BY created_at`, []any{leagueID})
}

func (r *TeamRepository) list(query string, args []any) ([]*entity.Team, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.Team
	for rows.Next() {
		t, err := scanTeam(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *TeamRepository) Update(t *entity.Team) error {
	ctx := context.Background()
	t.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE teams
		SET name = $1, coach = $2, captain = $3, vice_captain = $4,
			squad_player_ids = $5, logo_url = $6, updated_at = $7
		WHERE id = $8
	`, t.Name, t.Coach, t.Captain, t.ViceCaptain, t.SquadPlayerIDs, t.LogoURL, t.UpdatedAt, t.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return errNotFound
	}
	return nil
}

func (r *TeamRepository) Delete(id string) error {
	ctx := context.Background()
	res, err := r.pool.Exec(ctx, `DELETE FROM teams WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return errNotFound
	}
	return nil
}

var _ repository.TeamRepository = (*TeamRepository)(nil)
