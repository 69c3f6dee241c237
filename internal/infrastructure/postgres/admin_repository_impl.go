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

var errNotFound = errors.New("not found")

// ErrNotFound reports whether err is the repository's missing-row error.
func ErrNotFound(err error) bool { return errors.Is(err, errNotFound) }

type AdminRepository struct {
	pool *pgxpool.Pool
}

func NewAdminRepository(pool *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{pool: pool}
}

func (r *AdminRepository) Create(a *entity.Admin) error {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO admins (name, email, password_hash, is_verified)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`, a.Name, a.Email, a.Password, a.IsVerified)

	return row.Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

func (r *AdminRepository) GetByID(id string) (*entity.Admin, error) {
	return r.get(`WHERE id = $1`, id)
}

func (r *AdminRepository) GetByEmail(email string) (*entity.Admin, error) {
	return r.get(`WHERE email = $1`, email)
}

func (r *AdminRepository) get(where string, arg any) (*entity.Admin, error) {
	ctx := context.Background()
	a := &entity.Admin{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, name, email, password_hash, is_verified, created_at, updated_at
		FROM admins
	`+where, arg)

	if err := row.Scan(&a.ID, &a.Name, &a.Email, &a.Password, &a.IsVerified,
		&a.CreatedAt, &a.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errNotFound
		}
		return nil, err
	}
	return a, nil
}

func (r *AdminRepository) Update(a *entity.Admin) error {
	ctx := context.Background()
	a.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE admins
		SET name = $1, email = $2, password_hash = $3, updated_at = $4
		WHERE id = $5
	`, a.Name, a.Email, a.Password, a.UpdatedAt, a.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return errNotFound
	}
	return nil
}

func (r *AdminRepository) UpdatePassword(id, passwordHash string) error {
	ctx := context.Background()
	res, err := r.pool.Exec(ctx, `
		UPDATE admins SET password_hash = $1, updated_at = now() WHERE id = $2
	`, passwordHash, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return errNotFound
	}
	return nil
}

func (r *AdminRepository) SetVerified(id string) error {
	ctx := context.Background()
	res, err := r.pool.Exec(ctx, `
		UPDATE admins SET is_verified = true, updated_at = now() WHERE id = $1
	`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return errNotFound
	}
	return nil
}

func (r *AdminRepository) Delete(id string) error {
	ctx := context.Background()
	res, err := r.pool.Exec(ctx, `DELETE FROM admins WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return errNotFound
	}
	return nil
}

var _ repository.AdminRepository = (*AdminRepository)(nil)
