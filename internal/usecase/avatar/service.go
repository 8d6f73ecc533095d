package avatar

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/avatar-service/internal/adapter/auth"
	"github.com/marcos-nsantos/avatar-service/internal/adapter/repository"
	"github.com/marcos-nsantos/avatar-service/internal/adapter/storage"
	"github.com/marcos-nsantos/avatar-service/internal/domain"
	"github.com/marcos-nsantos/avatar-service/internal/domain/entity"
	"github.com/marcos-nsantos/avatar-service/internal/domain/valueobject"
	"github.com/marcos-nsantos/avatar-service/internal/pkg/imagemime"
	"github.com/marcos-nsantos/avatar-service/internal/pkg/objectkey"
)

// reconcileBatchSize bounds one listing page. Owners with more stale
// objects converge over repeated reconcile calls.
const reconcileBatchSize = 100

type Service struct {
	sessions   auth.SessionProvider
	store      storage.ObjectStore
	processor  storage.ImageProcessor
	avatarRepo repository.AvatarRepository
	keys       *objectkey.Builder
}

func NewService(
	sessions auth.SessionProvider,
	store storage.ObjectStore,
	processor storage.ImageProcessor,
	avatarRepo repository.AvatarRepository,
	keys *objectkey.Builder,
) *Service {
	return &Service{
		sessions:   sessions,
		store:      store,
		processor:  processor,
		avatarRepo: avatarRepo,
		keys:       keys,
	}
}

type UploadResult struct {
	Avatar *entity.Avatar
	URL    string
}

// Upload runs the full ingestion pipeline: auth gate, MIME correction,
// compression, key derivation, upsert write and public URL resolution.
// It is the single error boundary of the pipeline; nothing escapes as a
// panic. A stored object whose URL cannot be resolved is reported as a
// failure even though the byte write succeeded.
func (s *Service) Upload(ctx context.Context, ownerID uuid.UUID, file valueobject.SourceFile) (result *UploadResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("upload pipeline: %v", r)
		}
	}()

	if sessErr := s.sessions.GetSession(ctx); sessErr != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrAuthenticationFailed, sessErr)
	}

	principal, err := s.sessions.GetCurrentUser(ctx)
	if err != nil || principal == uuid.Nil {
		return nil, domain.ErrNotAuthenticated
	}
	if principal != ownerID {
		return nil, domain.ErrForbidden
	}

	normalized := file.WithContentType(imagemime.Resolve(file.ContentType, file.Name))
	processed := s.processor.Process(normalized)

	key := s.keys.Build(ownerID, file.Name)

	if err := s.store.Upload(ctx, key, bytes.NewReader(processed.Data), processed.ContentType, processed.Size(), true); err != nil {
		return nil, fmt.Errorf("uploading avatar: %w", err)
	}

	url, err := s.store.PublicURL(key)
	if err != nil || url == "" {
		return nil, domain.ErrPublicURLUnavailable
	}

	avatar := entity.NewAvatar(ownerID, url, key, processed.ContentType, processed.Size())
	if err := s.avatarRepo.Upsert(ctx, avatar); err != nil {
		// No compensating delete: the object is already live at its
		// key and the next upload supersedes it.
		return nil, fmt.Errorf("recording avatar: %w", err)
	}

	return &UploadResult{Avatar: avatar, URL: url}, nil
}

// ReconcileResult reports a best-effort cleanup. Err being set means
// the pass failed softly; it is never propagated as an error return so
// reconciliation cannot break the owning workflow.
type ReconcileResult struct {
	Success bool
	Removed int
	Err     error
}

// Reconcile prunes stored objects belonging to ownerID. It lists one
// bounded page under the owner's prefix, keeps entries whose object
// name starts with the owner id, and removes them in bulk. Uploads
// never invoke this; it is an explicit, separate operation.
func (s *Service) Reconcile(ctx context.Context, ownerID uuid.UUID) ReconcileResult {
	prefix := s.keys.OwnerPrefix(ownerID)

	entries, err := s.store.List(ctx, prefix, reconcileBatchSize)
	if err != nil {
		return ReconcileResult{Err: fmt.Errorf("listing avatars: %w", err)}
	}

	var keys []string
	for _, entry := range entries {
		if strings.HasPrefix(path.Base(entry.Key), ownerID.String()) {
			keys = append(keys, entry.Key)
		}
	}

	if len(keys) == 0 {
		return ReconcileResult{Success: true}
	}

	if err := s.store.Remove(ctx, keys); err != nil {
		return ReconcileResult{Err: fmt.Errorf("removing avatars: %w", err)}
	}

	return ReconcileResult{Success: true, Removed: len(keys)}
}

// Current returns the recorded avatar for ownerID.
func (s *Service) Current(ctx context.Context, ownerID uuid.UUID) (*entity.Avatar, error) {
	return s.avatarRepo.GetByUserID(ctx, ownerID)
}
