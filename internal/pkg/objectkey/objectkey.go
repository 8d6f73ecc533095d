// Package objectkey derives storage keys for avatar objects. The key
// shape {folder}/{ownerID}/{ownerID}_{unixMillis}.{ext} is load-bearing:
// the store's access policy authorizes writes only under
// {folder}/{ownerID}/..., and the retention reconciler matches object
// names on the {ownerID}_ prefix.
package objectkey

import (
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

const defaultExtension = "jpg"

type Builder struct {
	folder string
	now    func() time.Time
}

type Option func(*Builder)

// WithClock replaces the wall clock, making key generation and the
// millisecond collision window deterministic in tests.
func WithClock(now func() time.Time) Option {
	return func(b *Builder) {
		b.now = now
	}
}

func NewBuilder(folder string, opts ...Option) *Builder {
	b := &Builder{
		folder: folder,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build returns the full storage key for an upload. The extension is
// taken from the original filename, defaulting to jpg when absent. Two
// keys for the same owner are equal only when generated within the same
// millisecond with the same extension.
func (b *Builder) Build(ownerID uuid.UUID, originalFilename string) string {
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(originalFilename), "."))
	if ext == "" {
		ext = defaultExtension
	}
	name := fmt.Sprintf("%s_%d.%s", ownerID, b.now().UnixMilli(), ext)
	return fmt.Sprintf("%s/%s/%s", b.folder, ownerID, name)
}

// OwnerPrefix returns the key prefix under which all of an owner's
// objects live.
func (b *Builder) OwnerPrefix(ownerID uuid.UUID) string {
	return fmt.Sprintf("%s/%s", b.folder, ownerID)
}
