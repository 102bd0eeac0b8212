package repo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orbitmsg/orbit/pkg/api"
)

func TestIngestPost(t *testing.T) {
	postedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	dto := api.Post{
		ID:       "p1",
		Body:     "hello",
		State:    "open",
		PostedAt: postedAt,
		Author:   api.SpaceUser{ID: "u1", DisplayName: "Alice", Handle: "alice"},
		Space:    api.Space{ID: "s1", Name: "Acme", Slug: "acme"},
		Groups: []api.Group{
			{ID: "g1", SpaceID: "s1", Name: "eng"},
			{ID: "g2", SpaceID: "s1", Name: "ops", IsPrivate: true},
		},
	}

	r := FromEntities(IngestPost(dto))

	post, ok := r.Post("p1")
	require.True(t, ok)
	assert.Equal(t, "u1", post.AuthorID)
	assert.Equal(t, "s1", post.SpaceID)
	assert.Equal(t, []string{"g1", "g2"}, post.GroupIDs)
	assert.Equal(t, postedAt, post.PostedAt)

	author, ok := r.SpaceUser("u1")
	require.True(t, ok)
	assert.Equal(t, "Alice", author.DisplayName)

	space, ok := r.Space("s1")
	require.True(t, ok)
	assert.Equal(t, "acme", space.Slug)

	groups := r.Groups([]string{"g1", "g2"})
	require.Len(t, groups, 2)
	assert.True(t, groups[1].IsPrivate)
}

func TestIngestReplyPage(t *testing.T) {
	page := api.ReplyPage{
		Edges: []api.ReplyEdge{
			{Node: api.Reply{ID: "r1", PostID: "p1", Body: "one", Author: api.SpaceUser{ID: "u1"}}},
			{Node: api.Reply{ID: "r2", PostID: "p1", Body: "two", Author: api.SpaceUser{ID: "u2"}}},
		},
	}

	r := FromEntities(IngestReplyPage(page))

	replies := r.Replies([]string{"r1", "r2"})
	require.Len(t, replies, 2)
	assert.Equal(t, "u1", replies[0].AuthorID)

	_, ok := r.SpaceUser("u2")
	assert.True(t, ok, "reply authors are normalized alongside replies")
}
