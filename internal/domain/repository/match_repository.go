package repository

import "github.com/anujyadav2244/cricriser/internal/domain/entity"

// MatchRepository defines the interface for fixture persistence.
type MatchRepository interface {
	CreateBatch(matches []*entity.Match) error
	ListByLeague(leagueID string) ([]*entity.Match, error)
	DeleteByLeague(leagueID string) error
}
