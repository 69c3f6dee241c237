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

const playerColumns = `id, name, email, role, batting_style, bowling_style, photo_url,
	COALESCE(current_team_id::text, ''), COALESCE(active_league_id::text, ''),
	league_start_date, league_end_date, created_at, updated_at`

type PlayerRepository struct {
	pool *pgxpool.Pool
}

func NewPlayerRepository(pool *pgxpool.Pool) *PlayerRepository {
	return &PlayerRepository{pool: pool}
}

func (r *PlayerRepository) Create(p *entity.Player) error {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO players (name, email, role, batting_style, bowling_style, photo_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, p.Name, p.Email, p.Role, p.BattingStyle, p.BowlingStyle, p.PhotoURL)

	return row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func scanPlayer(row pgx.Row) (*entity.Player, error) {
	p := &entity.Player{}
	if err := row.Scan(&p.ID, &p.Name, &p.Email, &p.Role, &p.BattingStyle,
		&p.BowlingStyle, &p.PhotoURL, &p.CurrentTeamID, &p.ActiveLeagueID,
		&p.LeagueStartDate, &p.LeagueEndDate, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *PlayerRepository) GetByID(id string) (*entity.Player, error) {
	ctx := context.Background()
	return scanPlayer(r.pool.QueryRow(ctx, `SELECT `+playerColumns+` FROM players WHERE id = $1`, id))
}

func (r *PlayerRepository) List() ([]*entity.Player, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, `SELECT `+playerColumns+` FROM players ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.Player
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PlayerRepository) SetPhotoURL(id, url string) error {
	ctx := context.Background()
	res, err := r.pool.Exec(ctx, `
		UPDATE players SET photo_url = $1, updated_at = now() WHERE id = $2
	`, url, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return errNotFound
	}
	return nil
}

func (r *PlayerRepository) AssignTeam(playerID, teamID, leagueID string, start, end time.Time) error {
	ctx := context.Background()
	res, err := r.pool.Exec(ctx, `
		UPDATE players
		SET current_team_id = $1, active_league_id = $2,
			league_start_date = $3, league_end_date = $4, updated_at = now()
		WHERE id = $5
	`, teamID, leagueID, start, end, playerID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return errNotFound
	}
	return nil
}

func (r *PlayerRepository) ReleaseTeam(playerID string) error {
	ctx := context.Background()
	_, err := r.pool.Exec(ctx, `
		UPDATE players
		SET current_team_id = NULL, active_league_id = NULL,
			league_start_date = NULL, league_end_date = NULL, updated_at = now()
		WHERE id = $1
	`, playerID)
	return err
}

var _ repository.PlayerRepository = (*PlayerRepository)(nil)
