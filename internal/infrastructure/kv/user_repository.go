package kv

import (
	"context"
	"time"

	"github.com/abizer007/EcoThreads/internal/domain/entity"
	"github.com/abizer007/EcoThreads/internal/domain/repository"
)

// UserRepository persists user records at user:{id} with a user:email:{email}
// lookup index for login.
type UserRepository struct {
	store *Store
}

func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	var existing string
	if found, err := GetJSON(ctx, r.store, userEmailKey(u.Email), &existing); err != nil {
		return err
	} else if found {
		return repository.ErrAlreadyExists
	}

	now := time.Now().UTC()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	u.UpdatedAt = now

	if err := r.store.Set(ctx, userKey(u.ID), u); err != nil {
		return err
	}
	return r.store.Set(ctx, userEmailKey(u.Email), u.ID)
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	u := &entity.User{}
	found, err := GetJSON(ctx, r.store, userKey(id), u)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, repository.ErrNotFound
	}
	return u, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var id string
	found, err := GetJSON(ctx, r.store, userEmailKey(email), &id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, repository.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *UserRepository) Update(ctx context.Context, u *entity.User) error {
	existing := &entity.User{}
	found, err := GetJSON(ctx, r.store, userKey(u.ID), existing)
	if err != nil {
		return err
	}
	if !found {
		return repository.ErrNotFound
	}
	u.UpdatedAt = time.Now().UTC()
	return r.store.Set(ctx, userKey(u.ID), u)
}

var _ repository.UserRepository = (*UserRepository)(nil)
