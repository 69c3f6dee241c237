package repository

import "github.com/anujyadav2244/cricriser/internal/domain/entity"

// TeamRepository defines the interface for team persistence.
type TeamRepository interface {
	Create(t *entity.Team) error
	GetByID(id string) (*entity.Team, error)
	GetByName(name string) (*entity.Team, error)
	ExistsInLeague(leagueID, name string) (bool, error)
	List() ([]*entity.Team, error)
	ListByLeague(leagueID string) ([]*entity.Team, error)
	Update(t *entity.Team) error
	Delete(id string) error
}
