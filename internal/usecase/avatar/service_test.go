package avatar_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/marcos-nsantos/avatar-service/internal/adapter/storage"
	"github.com/marcos-nsantos/avatar-service/internal/domain"
	"github.com/marcos-nsantos/avatar-service/internal/domain/valueobject"
	"github.com/marcos-nsantos/avatar-service/internal/mocks"
	"github.com/marcos-nsantos/avatar-service/internal/pkg/objectkey"
	"github.com/marcos-nsantos/avatar-service/internal/usecase/avatar"
)

const testFolder = "profile-pictures"

type fixture struct {
	sessions   *mocks.MockSessionProvider
	store      *mocks.MockObjectStore
	processor  *mocks.MockImageProcessor
	avatarRepo *mocks.MockAvatarRepository
	svc        *avatar.Service
}

func newFixture(t *testing.T, clock func() time.Time) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		sessions:   mocks.NewMockSessionProvider(ctrl),
		store:      mocks.NewMockObjectStore(ctrl),
		processor:  mocks.NewMockImageProcessor(ctrl),
		avatarRepo: mocks.NewMockAvatarRepository(ctrl),
	}
	f.svc = avatar.NewService(
		f.sessions,
		f.store,
		f.processor,
		f.avatarRepo,
		objectkey.NewBuilder(testFolder, objectkey.WithClock(clock)),
	)
	return f
}

func authenticated(f *fixture, ownerID uuid.UUID) {
	f.sessions.EXPECT().GetSession(gomock.Any()).Return(nil).AnyTimes()
	f.sessions.EXPECT().GetCurrentUser(gomock.Any()).Return(ownerID, nil).AnyTimes()
}

func sourceFile(name, contentType string) valueobject.SourceFile {
	return valueobject.SourceFile{
		Name:        name,
		ContentType: contentType,
		Data:        []byte("image bytes"),
	}
}

func TestService_Upload(t *testing.T) {
	at := time.UnixMilli(1700000000123)
	ctx := context.Background()

	t.Run("uploads avatar and resolves public url", func(t *testing.T) {
		ownerID := uuid.New()
		f := newFixture(t, func() time.Time { return at })
		authenticated(f, ownerID)

		file := sourceFile("photo.jpg", "image/jpeg")
		processed := valueobject.ProcessedFile{ContentType: "image/jpeg", Data: []byte("processed")}
		wantKey := fmt.Sprintf("%s/%s/%s_1700000000123.jpg", testFolder, ownerID, ownerID)

		f.processor.EXPECT().Process(file).Return(processed)
		f.store.EXPECT().Upload(ctx, wantKey, gomock.Any(), "image/jpeg", int64(9), true).Return(nil)
		f.store.EXPECT().PublicURL(wantKey).Return("https://cdn.example.com/"+wantKey, nil)
		f.avatarRepo.EXPECT().Upsert(ctx, gomock.Any()).Return(nil)

		result, err := f.svc.Upload(ctx, ownerID, file)

		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/"+wantKey, result.URL)
		assert.Equal(t, wantKey, result.Avatar.Key)
		assert.Equal(t, ownerID, result.Avatar.UserID)
	})

	t.Run("key always carries the owner path segment", func(t *testing.T) {
		ownerID := uuid.New()
		f := newFixture(t, func() time.Time { return at })
		authenticated(f, ownerID)

		f.processor.EXPECT().Process(gomock.Any()).Return(valueobject.ProcessedFile{ContentType: "image/jpeg", Data: []byte("x")})

		var gotKey string
		f.store.EXPECT().Upload(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), true).
			DoAndReturn(func(_ context.Context, key string, _ any, _ string, _ int64, _ bool) error {
				gotKey = key
				return nil
			})
		f.store.EXPECT().PublicURL(gomock.Any()).Return("https://cdn.example.com/x", nil)
		f.avatarRepo.EXPECT().Upsert(ctx, gomock.Any()).Return(nil)

		_, err := f.svc.Upload(ctx, ownerID, sourceFile("photo.jpg", "image/jpeg"))

		require.NoError(t, err)
		assert.Regexp(t, fmt.Sprintf("^%s/%s/", testFolder, ownerID), gotKey)
	})

	t.Run("corrects claimed content type before processing", func(t *testing.T) {
		ownerID := uuid.New()
		f := newFixture(t, func() time.Time { return at })
		authenticated(f, ownerID)

		var processedInput valueobject.SourceFile
		f.processor.EXPECT().Process(gomock.Any()).
			DoAndReturn(func(in valueobject.SourceFile) valueobject.ProcessedFile {
				processedInput = in
				return valueobject.ProcessedFile{ContentType: in.ContentType, Data: in.Data}
			})
		f.store.EXPECT().Upload(ctx, gomock.Any(), gomock.Any(), "image/png", gomock.Any(), true).Return(nil)
		f.store.EXPECT().PublicURL(gomock.Any()).Return("https://cdn.example.com/x", nil)
		f.avatarRepo.EXPECT().Upsert(ctx, gomock.Any()).Return(nil)

		_, err := f.svc.Upload(ctx, ownerID, sourceFile("photo.png", "application/json"))

		require.NoError(t, err)
		assert.Equal(t, "image/png", processedInput.ContentType)
	})

	t.Run("same millisecond upload reuses the same key", func(t *testing.T) {
		ownerID := uuid.New()
		f := newFixture(t, func() time.Time { return at })
		authenticated(f, ownerID)

		f.processor.EXPECT().Process(gomock.Any()).Return(valueobject.ProcessedFile{ContentType: "image/jpeg", Data: []byte("x")}).Times(2)
		f.avatarRepo.EXPECT().Upsert(ctx, gomock.Any()).Return(nil).Times(2)
		f.store.EXPECT().PublicURL(gomock.Any()).Return("https://cdn.example.com/x", nil).Times(2)

		var keys []string
		f.store.EXPECT().Upload(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), true).
			DoAndReturn(func(_ context.Context, key string, _ any, _ string, _ int64, _ bool) error {
				keys = append(keys, key)
				return nil
			}).Times(2)

		_, err := f.svc.Upload(ctx, ownerID, sourceFile("a.jpg", "image/jpeg"))
		require.NoError(t, err)
		_, err = f.svc.Upload(ctx, ownerID, sourceFile("b.jpg", "image/jpeg"))
		require.NoError(t, err)

		require.Len(t, keys, 2)
		assert.Equal(t, keys[0], keys[1], "second upsert overwrites the first object")
	})

	t.Run("different milliseconds produce distinct keys", func(t *testing.T) {
		ownerID := uuid.New()
		tick := at
		f := newFixture(t, func() time.Time {
			now := tick
			tick = tick.Add(time.Millisecond)
			return now
		})
		authenticated(f, ownerID)

		f.processor.EXPECT().Process(gomock.Any()).Return(valueobject.ProcessedFile{ContentType: "image/jpeg", Data: []byte("x")}).Times(2)
		f.avatarRepo.EXPECT().Upsert(ctx, gomock.Any()).Return(nil).Times(2)
		f.store.EXPECT().PublicURL(gomock.Any()).Return("https://cdn.example.com/x", nil).Times(2)

		var keys []string
		f.store.EXPECT().Upload(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), true).
			DoAndReturn(func(_ context.Context, key string, _ any, _ string, _ int64, _ bool) error {
				keys = append(keys, key)
				return nil
			}).Times(2)

		_, err := f.svc.Upload(ctx, ownerID, sourceFile("a.jpg", "image/jpeg"))
		require.NoError(t, err)
		_, err = f.svc.Upload(ctx, ownerID, sourceFile("a.jpg", "image/jpeg"))
		require.NoError(t, err)

		require.Len(t, keys, 2)
		assert.NotEqual(t, keys[0], keys[1])
	})

	t.Run("rejects upload without a session and touches no storage", func(t *testing.T) {
		ownerID := uuid.New()
		f := newFixture(t, func() time.Time { return at })

		f.sessions.EXPECT().GetSession(gomock.Any()).Return(errors.New("session expired"))

		result, err := f.svc.Upload(ctx, ownerID, sourceFile("photo.jpg", "image/jpeg"))

		assert.Nil(t, result)
		assert.ErrorIs(t, err, domain.ErrAuthenticationFailed)
		assert.ErrorContains(t, err, "session expired")
	})

	t.Run("rejects upload when no principal resolves", func(t *testing.T) {
		ownerID := uuid.New()
		f := newFixture(t, func() time.Time { return at })

		f.sessions.EXPECT().GetSession(gomock.Any()).Return(nil)
		f.sessions.EXPECT().GetCurrentUser(gomock.Any()).Return(uuid.Nil, domain.ErrNotAuthenticated)

		result, err := f.svc.Upload(ctx, ownerID, sourceFile("photo.jpg", "image/jpeg"))

		assert.Nil(t, result)
		assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
	})

	t.Run("rejects upload for a different owner", func(t *testing.T) {
		f := newFixture(t, func() time.Time { return at })

		f.sessions.EXPECT().GetSession(gomock.Any()).Return(nil)
		f.sessions.EXPECT().GetCurrentUser(gomock.Any()).Return(uuid.New(), nil)

		result, err := f.svc.Upload(ctx, uuid.New(), sourceFile("photo.jpg", "image/jpeg"))

		assert.Nil(t, result)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("surfaces store rejection", func(t *testing.T) {
		ownerID := uuid.New()
		f := newFixture(t, func() time.Time { return at })
		authenticated(f, ownerID)

		f.processor.EXPECT().Process(gomock.Any()).Return(valueobject.ProcessedFile{ContentType: "image/jpeg", Data: []byte("x")})
		f.store.EXPECT().Upload(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), true).Return(errors.New("quota exceeded"))

		result, err := f.svc.Upload(ctx, ownerID, sourceFile("photo.jpg", "image/jpeg"))

		assert.Nil(t, result)
		assert.ErrorContains(t, err, "quota exceeded")
	})

	t.Run("url resolution failure fails the upload despite the stored object", func(t *testing.T) {
		ownerID := uuid.New()
		f := newFixture(t, func() time.Time { return at })
		authenticated(f, ownerID)

		f.processor.EXPECT().Process(gomock.Any()).Return(valueobject.ProcessedFile{ContentType: "image/jpeg", Data: []byte("x")})
		f.store.EXPECT().Upload(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), true).Return(nil)
		f.store.EXPECT().PublicURL(gomock.Any()).Return("", errors.New("no public access"))

		result, err := f.svc.Upload(ctx, ownerID, sourceFile("photo.jpg", "image/jpeg"))

		assert.Nil(t, result)
		assert.ErrorIs(t, err, domain.ErrPublicURLUnavailable)
	})

	t.Run("surfaces record upsert failure", func(t *testing.T) {
		ownerID := uuid.New()
		f := newFixture(t, func() time.Time { return at })
		authenticated(f, ownerID)

		f.processor.EXPECT().Process(gomock.Any()).Return(valueobject.ProcessedFile{ContentType: "image/jpeg", Data: []byte("x")})
		f.store.EXPECT().Upload(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), true).Return(nil)
		f.store.EXPECT().PublicURL(gomock.Any()).Return("https://cdn.example.com/x", nil)
		f.avatarRepo.EXPECT().Upsert(ctx, gomock.Any()).Return(errors.New("connection reset"))

		result, err := f.svc.Upload(ctx, ownerID, sourceFile("photo.jpg", "image/jpeg"))

		assert.Nil(t, result)
		assert.ErrorContains(t, err, "recording avatar")
	})

	t.Run("converts panics into an error return", func(t *testing.T) {
		ownerID := uuid.New()
		f := newFixture(t, func() time.Time { return at })
		authenticated(f, ownerID)

		f.processor.EXPECT().Process(gomock.Any()).
			DoAndReturn(func(valueobject.SourceFile) valueobject.ProcessedFile {
				panic("decoder blew up")
			})

		result, err := f.svc.Upload(ctx, ownerID, sourceFile("photo.jpg", "image/jpeg"))

		assert.Nil(t, result)
		require.Error(t, err)
		assert.ErrorContains(t, err, "decoder blew up")
	})
}

func TestService_Reconcile(t *testing.T) {
	ctx := context.Background()

	t.Run("removes only the owner's objects", func(t *testing.T) {
		ownerID := uuid.New()
		otherID := uuid.New()
		f := newFixture(t, time.Now)

		prefix := fmt.Sprintf("%s/%s", testFolder, ownerID)
		entries := []storage.ObjectInfo{
			{Key: fmt.Sprintf("%s/%s_1.jpg", prefix, ownerID), Size: 100},
			{Key: fmt.Sprintf("%s/%s_2.jpg", prefix, ownerID), Size: 200},
			{Key: fmt.Sprintf("%s/%s_1.jpg", prefix, otherID), Size: 300},
		}

		f.store.EXPECT().List(ctx, prefix, int32(100)).Return(entries, nil)
		f.store.EXPECT().Remove(ctx, []string{entries[0].Key, entries[1].Key}).Return(nil)

		result := f.svc.Reconcile(ctx, ownerID)

		assert.True(t, result.Success)
		assert.Equal(t, 2, result.Removed)
		assert.NoError(t, result.Err)
	})

	t.Run("succeeds with nothing to remove", func(t *testing.T) {
		ownerID := uuid.New()
		f := newFixture(t, time.Now)

		f.store.EXPECT().List(ctx, gomock.Any(), int32(100)).Return(nil, nil)

		result := f.svc.Reconcile(ctx, ownerID)

		assert.True(t, result.Success)
		assert.Zero(t, result.Removed)
	})

	t.Run("listing failure is reported softly", func(t *testing.T) {
		ownerID := uuid.New()
		f := newFixture(t, time.Now)

		f.store.EXPECT().List(ctx, gomock.Any(), int32(100)).Return(nil, errors.New("timeout"))

		result := f.svc.Reconcile(ctx, ownerID)

		assert.False(t, result.Success)
		assert.ErrorContains(t, result.Err, "timeout")
	})

	t.Run("removal failure is reported softly", func(t *testing.T) {
		ownerID := uuid.New()
		f := newFixture(t, time.Now)

		prefix := fmt.Sprintf("%s/%s", testFolder, ownerID)
		entries := []storage.ObjectInfo{
			{Key: fmt.Sprintf("%s/%s_1.jpg", prefix, ownerID), Size: 100},
		}

		f.store.EXPECT().List(ctx, prefix, int32(100)).Return(entries, nil)
		f.store.EXPECT().Remove(ctx, gomock.Any()).Return(errors.New("access denied"))

		result := f.svc.Reconcile(ctx, ownerID)

		assert.False(t, result.Success)
		assert.ErrorContains(t, result.Err, "access denied")
	})
}

func TestService_Current(t *testing.T) {
	ctx := context.Background()

	t.Run("returns not found for user without avatar", func(t *testing.T) {
		ownerID := uuid.New()
		f := newFixture(t, time.Now)

		f.avatarRepo.EXPECT().GetByUserID(ctx, ownerID).Return(nil, domain.ErrAvatarNotFound)

		found, err := f.svc.Current(ctx, ownerID)

		assert.Nil(t, found)
		assert.ErrorIs(t, err, domain.ErrAvatarNotFound)
	})
}
