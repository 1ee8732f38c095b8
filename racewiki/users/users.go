package users

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// persistence for signed-in accounts
type Store interface {
	FindOrCreateByProvider(ctx context.Context, identity ProviderIdentity, isAdmin bool) (*User, error)
	FindByID(ctx context.Context, userID string) (*User, error)
	IsAdmin(ctx context.Context, userID string) (bool, error)
}

var _ Store = (*Repository)(nil)

// creates a new user repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// finds a user by OAuth provider or creates a new one.
// admin status is refreshed on every sign in.
func (r *Repository) FindOrCreateByProvider(ctx context.Context, identity ProviderIdentity, isAdmin bool) (*User, error) {
	return scanUser(r.db.QueryRow(
		ctx,
		queryFindOrCreateByProvider,
		identity.Provider,
		identity.ProviderID,
		identity.Email,
		identity.Name,
		identity.AvatarURL,
		isAdmin,
	))
}

// finds a user by their ID
func (r *Repository) FindByID(ctx context.Context, userID string) (*User, error) {
	return scanUser(r.db.QueryRow(ctx, queryFindByID, userID))
}

// reports whether the user still holds admin rights
func (r *Repository) IsAdmin(ctx context.Context, userID string) (bool, error) {
	user, err := r.FindByID(ctx, userID)
	if err != nil {
		return false, err
	}

	return user.IsAdmin, nil
}

func scanUser(row pgx.Row) (*User, error) {
	var user User

	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.Provider,
		&user.ProviderID,
		&user.Name,
		&user.AvatarURL,
		&user.IsAdmin,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}

	if err != nil {
		return nil, err
	}

	return &user, nil
}
