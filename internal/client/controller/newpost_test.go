package controller

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apiclient "github.com/orbitmsg/orbit/internal/client/api"
	"github.com/orbitmsg/orbit/internal/client/events"
	"github.com/orbitmsg/orbit/internal/client/repo"
	"github.com/orbitmsg/orbit/internal/client/ui"
	"github.com/orbitmsg/orbit/internal/models"
	"github.com/orbitmsg/orbit/pkg/api"
)

func TestNewNewPostController(t *testing.T) {
	ctrl := NewNewPostController("s1", []string{"g1", "g2"}, &ui.UploaderMock{})

	assert.Equal(t, "new-post:s1", ctrl.ComponentID())
	assert.Equal(t, []string{"g1", "g2"}, ctrl.BookmarkedGroupIDs())
	assert.Empty(t, ctrl.Body())
	assert.Empty(t, ctrl.Uploads())
}

func TestNewPostController_Submit(t *testing.T) {
	apiMock := &apiclient.ClientAPIMock{
		CreatePostFunc: func(ctx context.Context, accessToken string, req api.CreatePostRequest) (*api.CreatePostResponse, error) {
			return &api.CreatePostResponse{
				Post: api.Post{ID: "p9", Body: req.Body, Author: api.SpaceUser{ID: "u1"}},
			}, nil
		},
	}
	g := testGlobals(t, apiMock)
	ctrl := NewNewPostController("s1", nil, &ui.UploaderMock{})

	ctrl.BodyChanged(g, "weekly update")
	ctrl.ToggleGroup(g, "g1")
	ctrl.ToggleGroup(g, "g2")
	ctrl.ToggleGroup(g, "g1") // повторный клик снимает выбор

	tasks, _ := ctrl.Submit(g)
	require.Len(t, tasks, 1)
	assert.True(t, ctrl.Submitting())

	// Дубль отправки подавляется
	tasks2, _ := ctrl.Submit(g)
	assert.Empty(t, tasks2)

	comps := runTaskList(t, tasks)
	require.Len(t, comps, 1)

	calls := apiMock.CreatePostCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "s1", calls[0].Req.SpaceID)
	assert.Equal(t, []string{"g2"}, calls[0].Req.GroupIDs)
	assert.Equal(t, "weekly update", calls[0].Req.Body)
	assert.NotEmpty(t, calls[0].Req.ClientID)

	_, directives, err := ctrl.HandleCompletion(g, comps[0])
	require.NoError(t, err)

	// Успех очищает черновик целиком
	assert.Empty(t, directives)
	assert.False(t, ctrl.Submitting())
	assert.Empty(t, ctrl.Body())
	assert.Empty(t, ctrl.Uploads())
}

func TestNewPostController_Submit_EmptyBodyRejected(t *testing.T) {
	g := testGlobals(t, &apiclient.ClientAPIMock{})
	ctrl := NewNewPostController("s1", nil, &ui.UploaderMock{})

	tasks, _ := ctrl.Submit(g)
	assert.Empty(t, tasks)
	assert.False(t, ctrl.Submitting())
}

func TestNewPostController_Submit_FailureKeepsDraft(t *testing.T) {
	apiMock := &apiclient.ClientAPIMock{
		CreatePostFunc: func(ctx context.Context, accessToken string, req api.CreatePostRequest) (*api.CreatePostResponse, error) {
			return nil, errors.New("server unavailable")
		},
	}
	g := testGlobals(t, apiMock)
	ctrl := NewNewPostController("s1", nil, &ui.UploaderMock{})

	ctrl.BodyChanged(g, "do not lose me")
	ctrl.ToggleGroup(g, "g1")

	tasks, _ := ctrl.Submit(g)
	comps := runTaskList(t, tasks)

	_, directives, err := ctrl.HandleCompletion(g, comps[0])
	require.NoError(t, err)

	assert.Empty(t, directives)
	assert.False(t, ctrl.Submitting())
	assert.Equal(t, "do not lose me", ctrl.Body())
}

func TestNewPostController_Submit_SessionExpired(t *testing.T) {
	apiMock := &apiclient.ClientAPIMock{
		CreatePostFunc: func(ctx context.Context, accessToken string, req api.CreatePostRequest) (*api.CreatePostResponse, error) {
			return nil, apiclient.ErrSessionExpired
		},
	}
	g := testGlobals(t, apiMock)
	ctrl := NewNewPostController("s1", nil, &ui.UploaderMock{})

	ctrl.BodyChanged(g, "too late")
	tasks, _ := ctrl.Submit(g)
	comps := runTaskList(t, tasks)

	_, directives, err := ctrl.HandleCompletion(g, comps[0])
	require.NoError(t, err)
	require.Len(t, directives, 1)
	assert.IsType(t, ui.RedirectToLogin{}, directives[0])
}

func TestNewPostController_AttachFile(t *testing.T) {
	uploader := &ui.UploaderMock{
		UploadFunc: func(ctx context.Context, uploadID string, filename string, contents []byte, progress func(percent int)) (string, error) {
			progress(40)
			progress(90)
			return "https://files.example.com/report.pdf", nil
		},
	}
	g := testGlobals(t, &apiclient.ClientAPIMock{})
	ctrl := NewNewPostController("s1", nil, uploader)

	tasks, _ := ctrl.AttachFile(g, "report.pdf", []byte("pdf-bytes"))
	require.Len(t, tasks, 1)

	uploads := ctrl.Uploads()
	require.Len(t, uploads, 1)
	assert.Equal(t, UploadStatePending, uploads[0].State)
	assert.Equal(t, "report.pdf", uploads[0].Filename)

	comps := runTaskList(t, tasks)
	require.Len(t, comps, 3, "two progress ticks and a final result")

	// Прогресс переводит загрузку в uploading
	_, _, err := ctrl.HandleCompletion(g, comps[0])
	require.NoError(t, err)
	uploads = ctrl.Uploads()
	assert.Equal(t, UploadStateUploading, uploads[0].State)
	assert.Equal(t, 40, uploads[0].Percent)

	_, _, err = ctrl.HandleCompletion(g, comps[1])
	require.NoError(t, err)
	assert.Equal(t, 90, ctrl.Uploads()[0].Percent)

	// Финальный результат фиксирует URL
	_, _, err = ctrl.HandleCompletion(g, comps[2])
	require.NoError(t, err)
	uploads = ctrl.Uploads()
	assert.Equal(t, UploadStateUploaded, uploads[0].State)
	assert.Equal(t, "https://files.example.com/report.pdf", uploads[0].URL)
	assert.Equal(t, 100, uploads[0].Percent)
}

func TestNewPostController_AttachFile_Failure(t *testing.T) {
	uploader := &ui.UploaderMock{
		UploadFunc: func(ctx context.Context, uploadID string, filename string, contents []byte, progress func(percent int)) (string, error) {
			return "", errors.New("disk full")
		},
	}
	g := testGlobals(t, &apiclient.ClientAPIMock{})
	ctrl := NewNewPostController("s1", nil, uploader)

	tasks, _ := ctrl.AttachFile(g, "huge.bin", []byte("x"))
	comps := runTaskList(t, tasks)
	require.Len(t, comps, 1)

	_, _, err := ctrl.HandleCompletion(g, comps[0])
	require.NoError(t, err)
	assert.Equal(t, UploadStateFailed, ctrl.Uploads()[0].State)
}

func TestNewPostController_Submit_OnlyUploadedFilesAttached(t *testing.T) {
	uploader := &ui.UploaderMock{
		UploadFunc: func(ctx context.Context, uploadID string, filename string, contents []byte, progress func(percent int)) (string, error) {
			if filename == "bad.bin" {
				return "", errors.New("rejected")
			}
			return "https://files.example.com/" + filename, nil
		},
	}
	apiMock := &apiclient.ClientAPIMock{
		CreatePostFunc: func(ctx context.Context, accessToken string, req api.CreatePostRequest) (*api.CreatePostResponse, error) {
			return &api.CreatePostResponse{Post: api.Post{ID: "p9"}}, nil
		},
	}
	g := testGlobals(t, apiMock)
	ctrl := NewNewPostController("s1", nil, uploader)

	tasks, _ := ctrl.AttachFile(g, "good.txt", []byte("ok"))
	for _, comp := range runTaskList(t, tasks) {
		_, _, err := ctrl.HandleCompletion(g, comp)
		require.NoError(t, err)
	}

	tasks, _ = ctrl.AttachFile(g, "bad.bin", []byte("nope"))
	for _, comp := range runTaskList(t, tasks) {
		_, _, err := ctrl.HandleCompletion(g, comp)
		require.NoError(t, err)
	}

	ctrl.BodyChanged(g, "see attachment")
	tasks, _ = ctrl.Submit(g)
	runTaskList(t, tasks)

	calls := apiMock.CreatePostCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, []string{"https://files.example.com/good.txt"}, calls[0].Req.FileURLs,
		"failed upload must not be attached")
}

func TestNewPostController_HandleEvent_Bookmarks(t *testing.T) {
	g := testGlobals(t, &apiclient.ClientAPIMock{})
	ctrl := NewNewPostController("s1", []string{"g1"}, &ui.UploaderMock{})

	ctrl.HandleEvent(g, events.GroupBookmarked{
		Group: api.Group{ID: "g2", SpaceID: "s1", Name: "design"},
	})
	assert.Equal(t, []string{"g1", "g2"}, ctrl.BookmarkedGroupIDs())

	// Дубликат события не создает второй записи
	ctrl.HandleEvent(g, events.GroupBookmarked{
		Group: api.Group{ID: "g2", SpaceID: "s1", Name: "design"},
	})
	assert.Equal(t, []string{"g1", "g2"}, ctrl.BookmarkedGroupIDs())

	ctrl.HandleEvent(g, events.GroupUnbookmarked{GroupID: "g1"})
	assert.Equal(t, []string{"g2"}, ctrl.BookmarkedGroupIDs())

	// Снятие закладки с неизвестной группы — no-op
	ctrl.HandleEvent(g, events.GroupUnbookmarked{GroupID: "g404"})
	assert.Equal(t, []string{"g2"}, ctrl.BookmarkedGroupIDs())
}

func TestNewPostController_Resolve(t *testing.T) {
	g := testGlobals(t, &apiclient.ClientAPIMock{})
	g.Repo = repo.Union(repo.FromEntities([]models.Entity{
		models.Group{ID: "g1", SpaceID: "s1", Name: "general"},
	}), g.Repo)

	ctrl := NewNewPostController("s1", []string{"g1", "g404"}, &ui.UploaderMock{})
	ctrl.BodyChanged(g, "draft")

	data := ctrl.Resolve(g)
	assert.Equal(t, "draft", data.Body)

	// Неразрешенный id закладки молча пропускается
	require.Len(t, data.BookmarkedGroups, 1)
	assert.Equal(t, "general", data.BookmarkedGroups[0].Name)
}
