package handler

import (
	"context"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/avatar-service/internal/domain/entity"
	"github.com/marcos-nsantos/avatar-service/internal/domain/valueobject"
	"github.com/marcos-nsantos/avatar-service/internal/usecase/auth"
	"github.com/marcos-nsantos/avatar-service/internal/usecase/avatar"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/handler_mocks.go -package=mocks

type AuthService interface {
	Register(ctx context.Context, input auth.RegisterInput) (*entity.User, error)
	Login(ctx context.Context, input auth.LoginInput) (*auth.Token, *entity.User, error)
}

type AvatarService interface {
	Upload(ctx context.Context, ownerID uuid.UUID, file valueobject.SourceFile) (*avatar.UploadResult, error)
	Reconcile(ctx context.Context, ownerID uuid.UUID) avatar.ReconcileResult
	Current(ctx context.Context, ownerID uuid.UUID) (*entity.Avatar, error)
}
