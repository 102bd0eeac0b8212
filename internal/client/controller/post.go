package controller

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	apiclient "github.com/orbitmsg/orbit/internal/client/api"
	"github.com/orbitmsg/orbit/internal/client/connection"
	"github.com/orbitmsg/orbit/internal/client/events"
	"github.com/orbitmsg/orbit/internal/client/repo"
	"github.com/orbitmsg/orbit/internal/client/ui"
	"github.com/orbitmsg/orbit/internal/validation"
	"github.com/orbitmsg/orbit/pkg/api"
)

const (
	// ReplyPageSize размер страницы при подгрузке ответов назад
	ReplyPageSize = 10

	// scrollAnchorOffsetPx отступ якоря при автоскролле после подгрузки
	scrollAnchorOffsetPx = 64
)

// Composer — состояние композера ответа.
// Машина состояний: Collapsed → (expand) → Expanded{body, submitting:false}
// → (submit) → Expanded{body, submitting:true} → (успех) → Expanded{"",
// false}; (не-auth сбой) → Expanded{body, false}. Сворачивание — только
// по escape при пустом body либо при смене страницы.
type Composer struct {
	Body       string
	Expanded   bool
	Submitting bool
}

// PostController — view-model одного поста с лентой ответов.
// Владеет только идентификаторами; сущности разрешаются через
// репозиторий на каждом проходе рендера, поэтому push-обновление
// сущности не требует адресного оповещения держателей её id.
type PostController struct {
	id             string
	postID         string
	replies        connection.Connection[string]
	composer       Composer
	selected       bool
	pagingInFlight bool
}

// DecodeReplyConnection разбирает страницу ответов в Connection
// идентификаторов ответов
func DecodeReplyConnection(page api.ReplyPage) (connection.Connection[string], error) {
	return connection.Decode(page.Edges, connection.PageMeta{
		StartCursor:     page.PageInfo.StartCursor,
		EndCursor:       page.PageInfo.EndCursor,
		HasPreviousPage: page.PageInfo.HasPreviousPage,
		HasNextPage:     page.PageInfo.HasNextPage,
	}, func(edge api.ReplyEdge) (string, error) {
		if edge.Node.ID == "" {
			return "", fmt.Errorf("reply edge has empty id")
		}
		return edge.Node.ID, nil
	})
}

// LoadPostController собирает контроллер из ответа начальной загрузки
// страницы и вливает принесённые сущности в репозиторий
func LoadPostController(g *Globals, resp *api.PostResponse) (*PostController, error) {
	replies, err := DecodeReplyConnection(resp.Replies)
	if err != nil {
		return nil, err
	}

	incoming := repo.FromEntities(append(repo.IngestPost(resp.Post), repo.IngestReplyPage(resp.Replies)...))
	g.Repo = repo.Union(incoming, g.Repo)

	return &PostController{
		id:      "post:" + resp.Post.ID,
		postID:  resp.Post.ID,
		replies: replies,
	}, nil
}

// ComponentID возвращает идентификатор компонента
func (c *PostController) ComponentID() string { return c.id }

// PostID возвращает идентификатор поста
func (c *PostController) PostID() string { return c.postID }

// Replies возвращает текущее состояние ленты ответов
func (c *PostController) Replies() connection.Connection[string] { return c.replies }

// Composer возвращает текущее состояние композера
func (c *PostController) Composer() Composer { return c.composer }

// Selected возвращает состояние чекбокса выбора
func (c *PostController) Selected() bool { return c.selected }

// ReplyElementID возвращает DOM-идентификатор элемента ответа
func ReplyElementID(replyID string) string { return "reply-" + replyID }

// composerElementID возвращает DOM-идентификатор поля композера
func (c *PostController) composerElementID() string { return "post-composer-" + c.postID }

// ExpandComposer разворачивает композер ответа
func (c *PostController) ExpandComposer(g *Globals) ([]Task, []ui.Directive) {
	if c.composer.Expanded {
		return nil, nil
	}
	c.composer.Expanded = true
	return nil, []ui.Directive{ui.SetFocus{ElementID: c.composerElementID()}}
}

// BodyChanged обновляет черновик композера
func (c *PostController) BodyChanged(g *Globals, body string) ([]Task, []ui.Directive) {
	if !c.composer.Expanded {
		return nil, nil
	}
	c.composer.Body = body
	return nil, nil
}

// EscapePressed сворачивает композер. Допустимо только при пустом
// черновике и не во время отправки.
func (c *PostController) EscapePressed(g *Globals) ([]Task, []ui.Directive) {
	if !c.composer.Expanded || c.composer.Body != "" || c.composer.Submitting {
		return nil, nil
	}
	c.composer.Expanded = false
	return nil, nil
}

// ToggleSelected переключает чекбокс выбора поста
func (c *PostController) ToggleSelected(g *Globals) ([]Task, []ui.Directive) {
	c.selected = !c.selected
	return nil, nil
}

// SubmitReply отправляет черновик композера как новый ответ
func (c *PostController) SubmitReply(g *Globals) ([]Task, []ui.Directive) {
	if !c.composer.Expanded || c.composer.Submitting {
		return nil, nil
	}
	if err := validation.ValidateBody(c.composer.Body); err != nil {
		g.Logger.Debug("reply draft rejected", "post_id", c.postID, "error", err)
		return nil, nil
	}

	c.composer.Submitting = true

	req := api.CreateReplyRequest{
		PostID:   c.postID,
		Body:     c.composer.Body,
		ClientID: uuid.NewString(),
	}
	accessToken := g.Session.AccessToken
	apiClient := g.API
	componentID := c.id

	task := func(ctx context.Context, emit func(Completion)) {
		resp, err := apiClient.CreateReply(ctx, accessToken, req)
		emit(replySubmitted{componentID: componentID, resp: resp, err: err})
	}
	return []Task{task}, nil
}

// RequestPreviousReplies запрашивает страницу более старых ответов.
// Команда валидна, только когда есть курсор назад и нет уже выданного
// запроса (подавление дублей); дедупликация при Prepend страхует от
// гонок, которые guard не видит.
func (c *PostController) RequestPreviousReplies(g *Globals) ([]Task, []ui.Directive) {
	if c.pagingInFlight {
		return nil, nil
	}
	cursor, ok := c.replies.StartCursor()
	if !ok {
		return nil, nil
	}

	c.pagingInFlight = true

	// Прежде верхний ответ станет якорем автоскролла, чтобы вливание
	// страницы сверху не дёргало viewport
	anchorID := ""
	if head, ok := c.replies.Head(); ok {
		anchorID = head
	}

	q := api.ReplyPageQuery{Before: cursor, Last: ReplyPageSize}
	accessToken := g.Session.AccessToken
	apiClient := g.API
	postID := c.postID
	componentID := c.id

	task := func(ctx context.Context, emit func(Completion)) {
		resp, err := apiClient.ListReplies(ctx, accessToken, postID, q)
		emit(previousRepliesLoaded{componentID: componentID, anchorID: anchorID, resp: resp, err: err})
	}
	return []Task{task}, nil
}

// replySubmitted — результат отправки ответа
type replySubmitted struct {
	resp        *api.CreateReplyResponse
	err         error
	componentID string
}

func (r replySubmitted) ComponentID() string { return r.componentID }

// previousRepliesLoaded — результат подгрузки страницы ответов назад
type previousRepliesLoaded struct {
	resp        *api.ReplyPageResponse
	err         error
	componentID string
	anchorID    string
}

func (r previousRepliesLoaded) ComponentID() string { return r.componentID }

// HandleCompletion обрабатывает результаты фоновых задач поста
func (c *PostController) HandleCompletion(g *Globals, comp Completion) ([]Task, []ui.Directive, error) {
	switch comp := comp.(type) {
	case replySubmitted:
		return c.handleReplySubmitted(g, comp)
	case previousRepliesLoaded:
		return c.handlePreviousRepliesLoaded(g, comp)
	default:
		return nil, nil, nil
	}
}

func (c *PostController) handleReplySubmitted(g *Globals, comp replySubmitted) ([]Task, []ui.Directive, error) {
	c.composer.Submitting = false

	if comp.err != nil {
		if errors.Is(comp.err, apiclient.ErrSessionExpired) {
			return nil, []ui.Directive{ui.RedirectToLogin{}}, nil
		}
		// Прочие сбои поглощаются: черновик сохранён, можно отправить повторно
		g.Logger.Warn("reply submission failed", "post_id", c.postID, "error", comp.err)
		return nil, nil, nil
	}

	c.composer.Body = ""

	g.Repo = repo.Union(repo.FromEntities(repo.IngestReply(comp.resp.Reply)), g.Repo)
	c.replies = c.replies.Append(comp.resp.Reply.ID)

	return nil, []ui.Directive{ui.ScrollToBottom{}}, nil
}

func (c *PostController) handlePreviousRepliesLoaded(g *Globals, comp previousRepliesLoaded) ([]Task, []ui.Directive, error) {
	c.pagingInFlight = false

	if comp.err != nil {
		if errors.Is(comp.err, apiclient.ErrSessionExpired) {
			return nil, []ui.Directive{ui.RedirectToLogin{}}, nil
		}
		// Прочие сбои поглощаются без ретрая
		g.Logger.Debug("reply page fetch failed", "post_id", c.postID, "error", comp.err)
		return nil, nil, nil
	}

	page, err := DecodeReplyConnection(comp.resp.Replies)
	if err != nil {
		return nil, nil, err
	}

	g.Repo = repo.Union(repo.FromEntities(repo.IngestReplyPage(comp.resp.Replies)), g.Repo)
	c.replies = c.replies.Prepend(page)

	var directives []ui.Directive
	if comp.anchorID != "" {
		directives = append(directives, ui.ScrollToAnchor{
			ElementID: ReplyElementID(comp.anchorID),
			OffsetPx:  scrollAnchorOffsetPx,
		})
	}
	return nil, directives, nil
}

// HandleEvent обрабатывает push-события.
// Событие о чужом посте игнорируется; дедупликация Append гарантирует,
// что то же событие, продублированное ответом на запрос, не создаст
// второй записи.
func (c *PostController) HandleEvent(g *Globals, ev events.Event) []ui.Directive {
	switch ev := ev.(type) {
	case events.ReplyCreated:
		if ev.PostID != c.postID {
			return nil
		}
		g.Repo = repo.Union(repo.FromEntities(repo.IngestReply(ev.Reply)), g.Repo)
		c.replies = c.replies.Append(ev.Reply.ID)
		return nil

	case events.PostClosed:
		if ev.Post.ID != c.postID {
			return nil
		}
		g.Repo = repo.Union(repo.FromEntities(repo.IngestPost(ev.Post)), g.Repo)
		return nil

	default:
		return nil
	}
}
