package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"github.com/swcatalog/film-manager/internal/core/domain"
	"github.com/swcatalog/film-manager/internal/core/ports"
)

// UserRepository implements ports.UserRepository on Postgres.
type UserRepository struct {
	db *bun.DB
}

func NewUserRepository(db *bun.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	if _, err := r.db.NewInsert().Model(user).Returning("*").Exec(ctx); err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrEmailInUse
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return user, nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := r.db.NewSelect().Model(&users).Order("id ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}
	return users, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	user := new(domain.User)
	if err := r.db.NewSelect().Model(user).Where("usr.id = ?", id).Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return user, nil
}

// FindByEmail matches exactly and case-sensitively.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	user := new(domain.User)
	if err := r.db.NewSelect().Model(user).Where("usr.email = ?", email).Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return user, nil
}

func (r *UserRepository) Update(ctx context.Context, id int64, patch ports.UserPatch) (int64, *domain.User, error) {
	updated := new(domain.User)
	q := r.db.NewUpdate().Model(updated).
		Set("updated_at = ?", time.Now().UTC()).
		Where("usr.id = ?", id).
		Where("usr.deleted_at IS NULL").
		Returning("*")

	if patch.Email != nil {
		q = q.Set("email = ?", *patch.Email)
	}
	if patch.PasswordHash != nil {
		q = q.Set("password = ?", *patch.PasswordHash)
	}
	if patch.FirstName != nil {
		q = q.Set("first_name = ?", *patch.FirstName)
	}
	if patch.LastName != nil {
		q = q.Set("last_name = ?", *patch.LastName)
	}
	if patch.Role != nil {
		q = q.Set("role = ?", *patch.Role)
	}

	res, err := q.Exec(ctx)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, nil, domain.ErrEmailInUse
		}
		return 0, nil, fmt.Errorf("update user: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, nil, fmt.Errorf("update user: %w", err)
	}
	if affected == 0 {
		return 0, nil, nil
	}
	return affected, updated, nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := r.db.NewDelete().Model((*domain.User)(nil)).Where("usr.id = ?", id).Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete user: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete user: %w", err)
	}
	return affected, nil
}
