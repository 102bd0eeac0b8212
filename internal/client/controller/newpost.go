package controller

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/google/uuid"

	apiclient "github.com/orbitmsg/orbit/internal/client/api"
	"github.com/orbitmsg/orbit/internal/client/events"
	"github.com/orbitmsg/orbit/internal/client/ui"
	"github.com/orbitmsg/orbit/internal/models"
	"github.com/orbitmsg/orbit/internal/validation"
	"github.com/orbitmsg/orbit/pkg/api"
)

// Статусы загрузки вложения: pending → uploading(progress) →
// uploaded(url) | failed
const (
	UploadStatePending   = "pending"
	UploadStateUploading = "uploading"
	UploadStateUploaded  = "uploaded"
	UploadStateFailed    = "failed"
)

// Upload — отслеживаемое состояние одной загрузки вложения.
// Сама механика загрузки делегирована внешнему ui.Uploader; контроллер
// хранит только переходы статуса по uploadID.
type Upload struct {
	ID       string
	Filename string
	State    string
	URL      string
	Percent  int
}

// NewPostController — view-model страницы создания поста.
// Держит черновик композера и локально разрешаемый список id групп
// в закладках; события bookmark/unbookmark меняют только список id,
// репозиторий не мутируется.
type NewPostController struct {
	id                 string
	spaceID            string
	body               string
	submitting         bool
	bookmarkedGroupIDs []string
	selectedGroupIDs   []string
	uploadOrder        []string
	uploads            map[string]*Upload
	uploader           ui.Uploader
}

// NewNewPostController создает контроллер страницы нового поста.
// bookmarkedGroupIDs — начальный список закладок из загрузки страницы.
func NewNewPostController(spaceID string, bookmarkedGroupIDs []string, uploader ui.Uploader) *NewPostController {
	return &NewPostController{
		id:                 "new-post:" + spaceID,
		spaceID:            spaceID,
		bookmarkedGroupIDs: slices.Clone(bookmarkedGroupIDs),
		uploads:            make(map[string]*Upload),
		uploader:           uploader,
	}
}

// ComponentID возвращает идентификатор компонента
func (c *NewPostController) ComponentID() string { return c.id }

// Body возвращает текущий черновик
func (c *NewPostController) Body() string { return c.body }

// Submitting сообщает, идёт ли отправка
func (c *NewPostController) Submitting() bool { return c.submitting }

// BookmarkedGroupIDs возвращает текущий список id групп в закладках
func (c *NewPostController) BookmarkedGroupIDs() []string {
	return slices.Clone(c.bookmarkedGroupIDs)
}

// Uploads возвращает состояния загрузок в порядке добавления
func (c *NewPostController) Uploads() []Upload {
	result := make([]Upload, 0, len(c.uploadOrder))
	for _, id := range c.uploadOrder {
		if u, ok := c.uploads[id]; ok {
			result = append(result, *u)
		}
	}
	return result
}

// BodyChanged обновляет черновик поста
func (c *NewPostController) BodyChanged(g *Globals, body string) ([]Task, []ui.Directive) {
	c.body = body
	return nil, nil
}

// ToggleGroup переключает выбор группы-адресата
func (c *NewPostController) ToggleGroup(g *Globals, groupID string) ([]Task, []ui.Directive) {
	if i := slices.Index(c.selectedGroupIDs, groupID); i >= 0 {
		c.selectedGroupIDs = slices.Delete(c.selectedGroupIDs, i, i+1)
	} else {
		c.selectedGroupIDs = append(c.selectedGroupIDs, groupID)
	}
	return nil, nil
}

// AttachFile регистрирует вложение и выдает задачу его загрузки
func (c *NewPostController) AttachFile(g *Globals, filename string, contents []byte) ([]Task, []ui.Directive) {
	uploadID := uuid.NewString()
	c.uploads[uploadID] = &Upload{ID: uploadID, Filename: filename, State: UploadStatePending}
	c.uploadOrder = append(c.uploadOrder, uploadID)

	uploader := c.uploader
	componentID := c.id

	task := func(ctx context.Context, emit func(Completion)) {
		url, err := uploader.Upload(ctx, uploadID, filename, contents, func(percent int) {
			emit(uploadProgressed{componentID: componentID, uploadID: uploadID, percent: percent})
		})
		emit(uploadFinished{componentID: componentID, uploadID: uploadID, url: url, err: err})
	}
	return []Task{task}, nil
}

// Submit отправляет черновик как новый пост.
// Вложения, не завершившие загрузку, не прикладываются.
func (c *NewPostController) Submit(g *Globals) ([]Task, []ui.Directive) {
	if c.submitting {
		return nil, nil
	}
	if err := validation.ValidateBody(c.body); err != nil {
		g.Logger.Debug("post draft rejected", "space_id", c.spaceID, "error", err)
		return nil, nil
	}

	c.submitting = true

	var fileURLs []string
	for _, id := range c.uploadOrder {
		if u := c.uploads[id]; u != nil && u.State == UploadStateUploaded {
			fileURLs = append(fileURLs, u.URL)
		}
	}

	req := api.CreatePostRequest{
		SpaceID:  c.spaceID,
		GroupIDs: slices.Clone(c.selectedGroupIDs),
		Body:     c.body,
		FileURLs: fileURLs,
		ClientID: uuid.NewString(),
	}
	accessToken := g.Session.AccessToken
	apiClient := g.API
	componentID := c.id

	task := func(ctx context.Context, emit func(Completion)) {
		resp, err := apiClient.CreatePost(ctx, accessToken, req)
		emit(postCreated{componentID: componentID, resp: resp, err: err})
	}
	return []Task{task}, nil
}

// postCreated — результат создания поста
type postCreated struct {
	resp        *api.CreatePostResponse
	err         error
	componentID string
}

func (p postCreated) ComponentID() string { return p.componentID }

// uploadProgressed — прогресс загрузки вложения
type uploadProgressed struct {
	componentID string
	uploadID    string
	percent     int
}

func (u uploadProgressed) ComponentID() string { return u.componentID }

// uploadFinished — финальный результат загрузки вложения
type uploadFinished struct {
	err         error
	componentID string
	uploadID    string
	url         string
}

func (u uploadFinished) ComponentID() string { return u.componentID }

// HandleCompletion обрабатывает результаты фоновых задач
func (c *NewPostController) HandleCompletion(g *Globals, comp Completion) ([]Task, []ui.Directive, error) {
	switch comp := comp.(type) {
	case postCreated:
		c.submitting = false
		if comp.err != nil {
			if errors.Is(comp.err, apiclient.ErrSessionExpired) {
				return nil, []ui.Directive{ui.RedirectToLogin{}}, nil
			}
			// Черновик сохранён, можно отправить повторно
			g.Logger.Warn("post submission failed", "space_id", c.spaceID, "error", comp.err)
			return nil, nil, nil
		}
		c.body = ""
		c.selectedGroupIDs = nil
		c.uploadOrder = nil
		c.uploads = make(map[string]*Upload)
		return nil, nil, nil

	case uploadProgressed:
		if u, ok := c.uploads[comp.uploadID]; ok {
			u.State = UploadStateUploading
			u.Percent = comp.percent
		}
		return nil, nil, nil

	case uploadFinished:
		u, ok := c.uploads[comp.uploadID]
		if !ok {
			return nil, nil, nil
		}
		if comp.err != nil {
			u.State = UploadStateFailed
			g.Logger.Warn("file upload failed", "upload_id", comp.uploadID, "error", comp.err)
			return nil, nil, nil
		}
		u.State = UploadStateUploaded
		u.URL = comp.url
		u.Percent = 100
		return nil, nil, nil

	default:
		return nil, nil, nil
	}
}

// HandleEvent поддерживает список закладок по push-событиям.
// Членство отслеживается только списком id; мутаций репозитория нет.
func (c *NewPostController) HandleEvent(g *Globals, ev events.Event) []ui.Directive {
	switch ev := ev.(type) {
	case events.GroupBookmarked:
		if !slices.Contains(c.bookmarkedGroupIDs, ev.Group.ID) {
			c.bookmarkedGroupIDs = append(c.bookmarkedGroupIDs, ev.Group.ID)
		}
		return nil

	case events.GroupUnbookmarked:
		if i := slices.Index(c.bookmarkedGroupIDs, ev.GroupID); i >= 0 {
			c.bookmarkedGroupIDs = slices.Delete(c.bookmarkedGroupIDs, i, i+1)
		}
		return nil

	default:
		return nil
	}
}

// NewPostData — разрешённый вид страницы нового поста
type NewPostData struct {
	Body             string
	Submitting       bool
	BookmarkedGroups []models.Group
	Uploads          []Upload
}

// Resolve собирает вид страницы нового поста. Закладки разрешаются
// против репозитория с молчаливым пропуском неразрешённых id;
// корневой сущности у этой страницы нет, поэтому вид производится всегда.
func (c *NewPostController) Resolve(g *Globals) NewPostData {
	return NewPostData{
		Body:             c.body,
		Submitting:       c.submitting,
		BookmarkedGroups: g.Repo.Groups(c.bookmarkedGroupIDs),
		Uploads:          c.Uploads(),
	}
}

// NewPostRenderer — внешний коллаборатор рендера страницы нового поста
type NewPostRenderer interface {
	RenderNewPost(data NewPostData, now time.Time)
}
