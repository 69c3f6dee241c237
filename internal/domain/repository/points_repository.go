package repository

import "github.com/anujyadav2244/cricriser/internal/domain/entity"

// PointsRepository defines the interface for points-table persistence.
type PointsRepository interface {
	InitForLeague(leagueID string, teamNames []string) error
	TableForLeague(leagueID string) ([]*entity.PointsRow, error)
	DeleteByLeague(leagueID string) error
}
