package repo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orbitmsg/orbit/internal/models"
)

func testPost(id, authorID, body string) models.Post {
	return models.Post{ID: id, AuthorID: authorID, Body: body, State: models.PostStateOpen}
}

func testUser(id, name string) models.SpaceUser {
	return models.SpaceUser{ID: id, DisplayName: name}
}

func TestInsert_LastWriteWins(t *testing.T) {
	r := New()

	r.Insert(testPost("p1", "u1", "first"))
	r.Insert(testPost("p1", "u1", "second"))

	post, ok := r.Post("p1")
	require.True(t, ok)
	assert.Equal(t, "second", post.Body, "later snapshot fully replaces the earlier one")
	assert.Equal(t, 1, r.Len())
}

func TestGet_AbsenceIsNotAnError(t *testing.T) {
	r := New()

	_, ok := r.Get(models.EntityTypePost, "missing")
	assert.False(t, ok)

	_, ok = r.Post("missing")
	assert.False(t, ok)
}

func TestGetMany_SkipsUnresolved(t *testing.T) {
	r := New()
	r.InsertMany([]models.Entity{
		models.Group{ID: "g1", Name: "eng"},
		models.Group{ID: "g3", Name: "ops"},
	})

	groups := r.Groups([]string{"g1", "g2", "g3", "g4"})

	require.Len(t, groups, 2, "unknown ids are silently dropped")
	assert.Equal(t, "g1", groups[0].ID)
	assert.Equal(t, "g3", groups[1].ID)
}

func TestUnion_IncomingWins(t *testing.T) {
	base := New()
	base.Insert(testPost("p1", "u1", "base"))
	base.Insert(testUser("u1", "Alice"))

	incoming := New()
	incoming.Insert(testPost("p1", "u1", "incoming"))
	incoming.Insert(testUser("u2", "Bob"))

	merged := Union(incoming, base)

	post, ok := merged.Post("p1")
	require.True(t, ok)
	assert.Equal(t, "incoming", post.Body, "incoming value wins on key collision")

	// Объединение ключей
	_, ok = merged.SpaceUser("u1")
	assert.True(t, ok)
	_, ok = merged.SpaceUser("u2")
	assert.True(t, ok)
	assert.Equal(t, 3, merged.Len())
}

func TestUnion_DoesNotMutateInputs(t *testing.T) {
	base := New()
	base.Insert(testPost("p1", "u1", "base"))

	incoming := New()
	incoming.Insert(testPost("p1", "u1", "incoming"))
	incoming.Insert(testUser("u2", "Bob"))

	_ = Union(incoming, base)

	basePost, ok := base.Post("p1")
	require.True(t, ok)
	assert.Equal(t, "base", basePost.Body)
	assert.Equal(t, 1, base.Len())
	assert.Equal(t, 2, incoming.Len())
}

func TestUnion_NilInputs(t *testing.T) {
	r := New()
	r.Insert(testUser("u1", "Alice"))

	merged := Union(nil, r)
	assert.Equal(t, 1, merged.Len())

	merged = Union(r, nil)
	assert.Equal(t, 1, merged.Len())
}

func TestTypedAccessor_KindMismatch(t *testing.T) {
	r := New()
	r.Insert(testUser("x1", "Alice"))

	// Тот же id под другим типом не разрешается
	_, ok := r.Post("x1")
	assert.False(t, ok)
}

func TestAll_RoundTrip(t *testing.T) {
	r := New()
	r.InsertMany([]models.Entity{
		testPost("p1", "u1", "body"),
		testUser("u1", "Alice"),
		models.Group{ID: "g1", Name: "eng"},
	})

	restored := New()
	restored.InsertMany(r.All())

	assert.Equal(t, r.Len(), restored.Len())
	post, ok := restored.Post("p1")
	require.True(t, ok)
	assert.Equal(t, "body", post.Body)
}
