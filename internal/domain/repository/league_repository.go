package repository

import "github.com/anujyadav2244/cricriser/internal/domain/entity"

// LeagueRepository defines the interface for league persistence.
type LeagueRepository interface {
	Create(l *entity.League) error
	GetByID(id string) (*entity.League, error)
	GetByName(name string) (*entity.League, error)
	ExistsByName(name string) (bool, error)
	List() ([]*entity.League, error)
	ListByAdmin(adminID string) ([]*entity.League, error)
	Update(l *entity.League) error
	Delete(id string) error
}
