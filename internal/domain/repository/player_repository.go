package repository

import (
	"time"

	"github.com/anujyadav2244/cricriser/internal/domain/entity"
)

// PlayerRepository defines the interface for player persistence and
// team-assignment bookkeeping.
type PlayerRepository interface {
	Create(p *entity.Player) error
	GetByID(id string) (*entity.Player, error)
	List() ([]*entity.Player, error)
	SetPhotoURL(id, url string) error
	AssignTeam(playerID, teamID, leagueID string, start, end time.Time) error
	ReleaseTeam(playerID string) error
}
