package repository

import (
	"context"

	"github.com/abizer007/EcoThreads/internal/domain/entity"
)

// UserRepository defines the interface for user record persistence.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, u *entity.User) error
}
