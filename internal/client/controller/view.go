package controller

import (
	"time"

	"github.com/orbitmsg/orbit/internal/models"
)

// FallbackMessage — фиксированная строка, которую рендерит поверхность,
// когда корневая сущность вида не разрешилась
const FallbackMessage = "Something went wrong."

// ReplyData — полностью разрешённый ответ для рендера
type ReplyData struct {
	Reply  models.Reply
	Author models.SpaceUser
}

// PostData — полностью разрешённый вид поста.
// Собирается на каждом проходе рендера заново: join удерживаемых
// идентификаторов с репозиторием. Устаревание разрешается лениво.
type PostData struct {
	Post               models.Post
	Author             models.SpaceUser
	Space              models.Space
	Groups             []models.Group
	Replies            []ReplyData
	Composer           Composer
	Selected           bool
	HasPreviousReplies bool
}

// Resolve собирает полностью связанный вид поста из репозитория.
// Если корневая сущность (пост) или её автор не разрешаются, вид не
// производится вовсе: частичный рендер с отсутствующим корнем запрещён,
// поверхность показывает FallbackMessage. Неразрешённые ответы и группы
// молча пропускаются.
func (c *PostController) Resolve(g *Globals) (PostData, bool) {
	post, ok := g.Repo.Post(c.postID)
	if !ok {
		return PostData{}, false
	}
	author, ok := g.Repo.SpaceUser(post.AuthorID)
	if !ok {
		return PostData{}, false
	}

	data := PostData{
		Post:               post,
		Author:             author,
		Groups:             g.Repo.Groups(post.GroupIDs),
		Composer:           c.composer,
		Selected:           c.selected,
		HasPreviousReplies: c.replies.HasPreviousPage(),
	}

	// Пространство не обязательно для рендера поста
	if space, ok := g.Repo.Space(post.SpaceID); ok {
		data.Space = space
	}

	ids := c.replies.ToList()
	data.Replies = make([]ReplyData, 0, len(ids))
	for _, reply := range g.Repo.Replies(ids) {
		replyAuthor, ok := g.Repo.SpaceUser(reply.AuthorID)
		if !ok {
			continue
		}
		data.Replies = append(data.Replies, ReplyData{Reply: reply, Author: replyAuthor})
	}

	return data, true
}

// PostRenderer — внешний коллаборатор рендера вида поста.
// Чистая функция от (вид, текущее время) к презентации; состояние
// ядра не мутирует.
type PostRenderer interface {
	RenderPost(data PostData, now time.Time)
	RenderError(message string)
}

// Render разрешает вид и передаёт его рендереру; при неразрешённом
// корне рендерит FallbackMessage
func (c *PostController) Render(g *Globals, r PostRenderer) {
	data, ok := c.Resolve(g)
	if !ok {
		r.RenderError(FallbackMessage)
		return
	}
	r.RenderPost(data, g.Now())
}
