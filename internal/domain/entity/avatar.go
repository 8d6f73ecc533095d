package entity

import (
	"time"

	"github.com/google/uuid"
)

// Avatar is the record of a user's current profile picture. The stored
// object itself lives in the backing store under Key; URL is the public
// address resolved for that exact key.
type Avatar struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	URL       string
	Key       string
	MimeType  string
	Size      int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewAvatar(userID uuid.UUID, url, key, mimeType string, size int64) *Avatar {
	now := time.Now().UTC()
	return &Avatar{
		ID:        uuid.New(),
		UserID:    userID,
		URL:       url,
		Key:       key,
		MimeType:  mimeType,
		Size:      size,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
