package storage

import (
	"context"
	"io"

	"github.com/marcos-nsantos/avatar-service/internal/domain/valueobject"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/storage_mocks.go -package=mocks

// ObjectInfo describes one stored object returned by List.
type ObjectInfo struct {
	Key  string
	Size int64
}

// ObjectStore is the backing object store. Upload with overwrite set
// has upsert semantics: writing to an existing key replaces its content
// instead of failing.
type ObjectStore interface {
	Upload(ctx context.Context, key string, reader io.Reader, contentType string, size int64, overwrite bool) error
	PublicURL(key string) (string, error)
	List(ctx context.Context, prefix string, limit int32) ([]ObjectInfo, error)
	Remove(ctx context.Context, keys []string) error
}

// ImageProcessor normalizes and compresses an upload. It never fails:
// a payload that cannot be decoded or re-encoded passes through with
// only the content-type correction applied.
type ImageProcessor interface {
	Process(file valueobject.SourceFile) valueobject.ProcessedFile
}
