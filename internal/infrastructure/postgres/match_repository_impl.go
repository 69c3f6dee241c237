package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/anujyadav2244/cricriser/internal/domain/entity"
	"github.com/anujyadav2244/cricriser/internal/domain/repository"
)

type MatchRepository struct {
	pool *pgxpool.Pool
}

func NewMatchRepository(pool *pgxpool.Pool) *MatchRepository {
	return &MatchRepository{pool: pool}
}

func (r *MatchRepository) CreateBatch(matches []*entity.Match) error {
	ctx := context.Background()
	batch := &pgx.Batch{}
	for _, m := range matches {
		batch.Queue(`
			INSERT INTO matches (league_id, match_no, team1, team2, match_type, status, venue, scheduled_date)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id
		`, m.LeagueID, m.MatchNo, m.Team1, m.Team2, m.MatchType, m.Status, m.Venue, m.ScheduledDate)
	}
	br := r.pool.SendBatch(ctx, batch)
	defer func() { _ = br.Close() }()
	for _, m := range matches {
		if err := br.QueryRow().Scan(&m.ID); err != nil {
			return err
		}
	}
	return nil
}

func (r *MatchRepository) ListByLeague(leagueID string) ([]*entity.Match, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, `
		SELECT id, league_id, match_no, team1, team2, match_type, status, venue, scheduled_date
		FROM matches
		WHERE league_id = $1
		ORDER BY match_no
	`, leagueID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.Match
	for rows.Next() {
		m := &entity.Match{}
		if err := rows.Scan(&m.ID, &m.LeagueID, &m.MatchNo, &m.Team1, &m.Team2,
			&m.MatchType, &m.Status, &m.Venue, &m.ScheduledDate); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *MatchRepository) DeleteByLeague(leagueID string) error {
	ctx := context.Background()
	_, err := r.pool.Exec(ctx, `DELETE FROM matches WHERE league_id = $1`, leagueID)
	return err
}

var _ repository.MatchRepository = (*MatchRepository)(nil)
