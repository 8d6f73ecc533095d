package auth

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/auth_mocks.go -package=mocks

// SessionProvider resolves the authenticated principal for a request.
// GetSession is the liveness check for the session itself; GetCurrentUser
// resolves the principal id, which may fail even when a session exists.
type SessionProvider interface {
	GetSession(ctx context.Context) error
	GetCurrentUser(ctx context.Context) (uuid.UUID, error)
}
