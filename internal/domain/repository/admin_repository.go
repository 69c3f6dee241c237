package repository

import "github.com/anujyadav2244/cricriser/internal/domain/entity"

// AdminRepository defines the interface for admin account persistence.
type AdminRepository interface {
	Create(a *entity.Admin) error
	GetByID(id string) (*entity.Admin, error)
	GetByEmail(email string) (*entity.Admin, error)
	Update(a *entity.Admin) error
	UpdatePassword(id, passwordHash string) error
	SetVerified(id string) error
	Delete(id string) error
}
