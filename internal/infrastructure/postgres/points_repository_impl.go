package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/anujyadav2244/cricriser/internal/domain/entity"
	"github.com/anujyadav2244/cricriser/internal/domain/repository"
)

type PointsRepository struct {
	pool *pgxpool.Pool
}

func NewPointsRepository(pool *pgxpool.Pool) *PointsRepository {
	return &PointsRepository{pool: pool}
}

func (r *PointsRepository) InitForLeague(leagueID string, teamNames []string) error {
	ctx := context.Background()
	batch := &pgx.Batch{}
	for _, name := range teamNames {
		batch.Queue(`
			INSERT INTO points_table (league_id, team_name)
			VALUES ($1, $2)
			ON CONFLICT (league_id, team_name) DO NOTHING
		`, leagueID, name)
	}
	br := r.pool.SendBatch(ctx, batch)
	return br.Close()
}

func (r *PointsRepository) TableForLeague(leagueID string) ([]*entity.PointsRow, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, `
		SELECT id, league_id, team_name, played, won, lost, tied, no_result, points, net_run_rate
		FROM points_table
		WHERE league_id = $1
		ORDER BY points DESC, net_run_rate DESC, team_name
	`, leagueID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.PointsRow
	for rows.Next() {
		p := &entity.PointsRow{}
		if err := rows.Scan(&p.ID, &p.LeagueID, &p.TeamName, &p.Played, &p.Won,
			&p.Lost, &p.Tied, &p.NoResult, &p.Points, &p.NetRunRate); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PointsRepository) DeleteByLeague(leagueID string) error {
	ctx := context.Background()
	_, err := r.pool.Exec(ctx, `DELETE FROM points_table WHERE league_id = $1`, leagueID)
	return err
}

var _ repository.PointsRepository = (*PointsRepository)(nil)
