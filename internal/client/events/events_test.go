package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_ReplyCreated(t *testing.T) {
	frame := []byte(`{
		"type": "reply_created",
		"payload": {
			"post_id": "p1",
			"reply": {"id": "r1", "post_id": "p1", "body": "hi", "author": {"id": "u1"}}
		}
	}`)

	ev, err := Decode(frame)
	require.NoError(t, err)

	created, ok := ev.(ReplyCreated)
	require.True(t, ok)
	assert.Equal(t, "p1", created.PostID)
	assert.Equal(t, "r1", created.Reply.ID)
	assert.Equal(t, "u1", created.Reply.Author.ID)
}

func TestDecode_GroupBookmarked(t *testing.T) {
	frame := []byte(`{"type": "group_bookmarked", "payload": {"group": {"id": "g1", "name": "eng"}}}`)

	ev, err := Decode(frame)
	require.NoError(t, err)

	bookmarked, ok := ev.(GroupBookmarked)
	require.True(t, ok)
	assert.Equal(t, "g1", bookmarked.Group.ID)
}

func TestDecode_GroupUnbookmarked(t *testing.T) {
	frame := []byte(`{"type": "group_unbookmarked", "payload": {"group_id": "g1"}}`)

	ev, err := Decode(frame)
	require.NoError(t, err)

	unbookmarked, ok := ev.(GroupUnbookmarked)
	require.True(t, ok)
	assert.Equal(t, "g1", unbookmarked.GroupID)
}

func TestDecode_PostClosed(t *testing.T) {
	frame := []byte(`{"type": "post_closed", "payload": {"post": {"id": "p1", "state": "closed"}}}`)

	ev, err := Decode(frame)
	require.NoError(t, err)

	closed, ok := ev.(PostClosed)
	require.True(t, ok)
	assert.Equal(t, "closed", closed.Post.State)
}

func TestDecode_UnknownType(t *testing.T) {
	frame := []byte(`{"type": "space_renamed", "payload": {}}`)

	_, err := Decode(frame)
	require.ErrorIs(t, err, ErrUnknownEvent)
}

func TestDecode_MalformedFrame(t *testing.T) {
	tests := []struct {
		name  string
		frame string
	}{
		{name: "not json", frame: `??`},
		{name: "bad payload", frame: `{"type": "reply_created", "payload": [1, 2]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.frame))
			assert.Error(t, err)
		})
	}
}
