package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/avatar-service/internal/domain/entity"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/repository_mocks.go -package=mocks

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type AvatarRepository interface {
	Upsert(ctx context.Context, avatar *entity.Avatar) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.Avatar, error)
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}
