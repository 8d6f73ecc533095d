package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/avatar-service/internal/domain"
)

type contextKey int

const (
	sessionContextKey contextKey = iota
	principalContextKey
)

// WithSession marks ctx as carrying a verified session. The auth
// middleware calls this after token validation.
func WithSession(ctx context.Context) context.Context {
	return context.WithValue(ctx, sessionContextKey, true)
}

// WithPrincipal attaches the authenticated principal id to ctx.
func WithPrincipal(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, principalContextKey, userID)
}

// ContextSessionProvider resolves the session and principal placed on
// the request context by the auth middleware.
type ContextSessionProvider struct{}

func NewContextSessionProvider() *ContextSessionProvider {
	return &ContextSessionProvider{}
}

func (p *ContextSessionProvider) GetSession(ctx context.Context) error {
	if ok, _ := ctx.Value(sessionContextKey).(bool); !ok {
		return errors.New("no active session")
	}
	return nil
}

func (p *ContextSessionProvider) GetCurrentUser(ctx context.Context) (uuid.UUID, error) {
	userID, ok := ctx.Value(principalContextKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, domain.ErrNotAuthenticated
	}
	return userID, nil
}
