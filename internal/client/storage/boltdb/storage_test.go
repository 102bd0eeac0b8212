package boltdb

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orbitmsg/orbit/internal/client/session"
	"github.com/orbitmsg/orbit/internal/client/storage"
	"github.com/orbitmsg/orbit/internal/models"
)

// newTestStorage создает хранилище во временной директории теста
func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "orbit-test.db")
	s, err := New(context.Background(), dbPath)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = s.Close()
	})

	return s
}

func TestStorage_SessionLifecycle(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	// До сохранения сессии нет
	_, err := s.GetSession(ctx)
	require.ErrorIs(t, err, storage.ErrSessionNotFound)

	sess := &session.Session{
		AccessToken: "token-123",
		SpaceUserID: "u1",
		SpaceID:     "s1",
		ExpiresAt:   time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	require.NoError(t, s.SaveSession(ctx, sess))

	got, err := s.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, sess.AccessToken, got.AccessToken)
	assert.Equal(t, sess.SpaceUserID, got.SpaceUserID)
	assert.True(t, sess.ExpiresAt.Equal(got.ExpiresAt))

	// Повторное сохранение заменяет сессию
	sess2 := &session.Session{AccessToken: "token-456", SpaceUserID: "u1", SpaceID: "s1"}
	require.NoError(t, s.SaveSession(ctx, sess2))

	got, err = s.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "token-456", got.AccessToken)

	// Выход удаляет сессию
	require.NoError(t, s.DeleteSession(ctx))
	_, err = s.GetSession(ctx)
	require.ErrorIs(t, err, storage.ErrSessionNotFound)

	// Повторное удаление различимо
	err = s.DeleteSession(ctx)
	require.ErrorIs(t, err, storage.ErrSessionNotFound)
}

func TestStorage_EntitiesRoundTrip(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	postedAt := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)
	saved := []models.Entity{
		models.Post{ID: "p1", SpaceID: "s1", AuthorID: "u1", Body: "hello", State: models.PostStateOpen, PostedAt: postedAt},
		models.Reply{ID: "r1", PostID: "p1", AuthorID: "u2", Body: "hi", PostedAt: postedAt},
		models.SpaceUser{ID: "u1", SpaceID: "s1", Handle: "alice", DisplayName: "Alice"},
		models.Group{ID: "g1", SpaceID: "s1", Name: "general"},
		models.Space{ID: "s1", Name: "Acme", Slug: "acme"},
	}
	require.NoError(t, s.SaveEntities(ctx, saved))

	loaded, err := s.LoadEntities(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, len(saved))

	byKey := make(map[string]models.Entity, len(loaded))
	for _, e := range loaded {
		byKey[string(e.Kind())+"/"+e.EntityID()] = e
	}

	post, ok := byKey["post/p1"].(models.Post)
	require.True(t, ok, "post should round-trip as models.Post")
	assert.Equal(t, "hello", post.Body)
	assert.True(t, postedAt.Equal(post.PostedAt))

	reply, ok := byKey["reply/r1"].(models.Reply)
	require.True(t, ok)
	assert.Equal(t, "p1", reply.PostID)

	user, ok := byKey["space_user/u1"].(models.SpaceUser)
	require.True(t, ok)
	assert.Equal(t, "alice", user.Handle)
}

func TestStorage_SaveEntities_Overwrites(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveEntities(ctx, []models.Entity{
		models.Post{ID: "p1", Body: "old"},
	}))
	require.NoError(t, s.SaveEntities(ctx, []models.Entity{
		models.Post{ID: "p1", Body: "new"},
	}))

	loaded, err := s.LoadEntities(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)

	post, ok := loaded[0].(models.Post)
	require.True(t, ok)
	assert.Equal(t, "new", post.Body)
}

func TestStorage_Clear(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveEntities(ctx, []models.Entity{
		models.Post{ID: "p1", Body: "hello"},
		models.Group{ID: "g1", Name: "general"},
	}))
	require.NoError(t, s.Clear(ctx))

	loaded, err := s.LoadEntities(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded)

	// Хранилище остается рабочим после очистки
	require.NoError(t, s.SaveEntities(ctx, []models.Entity{
		models.Space{ID: "s1", Name: "Acme"},
	}))
	loaded, err = s.LoadEntities(ctx)
	require.NoError(t, err)
	assert.Len(t, loaded, 1)
}

func TestStorage_LoadEntities_Empty(t *testing.T) {
	s := newTestStorage(t)

	loaded, err := s.LoadEntities(context.Background())
	require.NoError(t, err)
	assert.Empty(t, loaded)
}
