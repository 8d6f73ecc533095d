package domain

import "errors"

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrUserAlreadyExists    = errors.New("user already exists")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrAvatarNotFound       = errors.New("avatar not found")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrNotAuthenticated     = errors.New("user not authenticated")
	ErrPublicURLUnavailable = errors.New("failed to get public url")
	ErrTokenInvalid         = errors.New("token invalid")
	ErrForbidden            = errors.New("forbidden")
)
