package api

import "time"

// Post представляет пост в ответе сервера.
// Связанные сущности (автор, группы, пространство) вложены, чтобы клиент
// мог нормализовать их в кеш одним проходом.
type Post struct {
	PostedAt time.Time `json:"posted_at"`
	ID       string    `json:"id"`
	Body     string    `json:"body"`
	State    string    `json:"state"` // "open" | "closed"
	Author   SpaceUser `json:"author"`
	Space    Space     `json:"space"`
	Groups   []Group   `json:"groups"`
}

// Reply представляет ответ на пост в ответе сервера
type Reply struct {
	PostedAt time.Time `json:"posted_at"`
	ID       string    `json:"id"`
	PostID   string    `json:"post_id"`
	Body     string    `json:"body"`
	Author   SpaceUser `json:"author"`
}

// SpaceUser представляет участника пространства в ответе сервера
type SpaceUser struct {
	ID          string `json:"id"`
	SpaceID     string `json:"space_id"`
	Handle      string `json:"handle"`
	DisplayName string `json:"display_name"`
	AvatarURL   string `json:"avatar_url,omitempty"`
	Role        string `json:"role"`
}

// Group представляет группу в ответе сервера
type Group struct {
	ID        string `json:"id"`
	SpaceID   string `json:"space_id"`
	Name      string `json:"name"`
	IsPrivate bool   `json:"is_private"`
}

// Space представляет пространство в ответе сервера
type Space struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// PageInfo содержит метаданные курсорной пагинации.
// Курсоры непрозрачны: клиент никогда не разбирает и не сравнивает их.
type PageInfo struct {
	StartCursor     *string `json:"start_cursor"` // курсор для запроса страницы назад (null, если её нет)
	EndCursor       *string `json:"end_cursor"`   // курсор для запроса страницы вперёд (null, если её нет)
	HasPreviousPage bool    `json:"has_previous_page"`
	HasNextPage     bool    `json:"has_next_page"`
}

// ReplyEdge представляет один элемент страницы ответов
type ReplyEdge struct {
	Node   Reply  `json:"node"`
	Cursor string `json:"cursor"`
}

// ReplyPage представляет одну страницу ответов с метаданными пагинации
type ReplyPage struct {
	Edges    []ReplyEdge `json:"edges"`
	PageInfo PageInfo    `json:"page_info"`
}

// PostResponse представляет ответ на запрос поста (начальная загрузка страницы)
type PostResponse struct {
	Post    Post      `json:"post"`
	Replies ReplyPage `json:"replies"` // последняя страница ответов
}

// ReplyPageQuery описывает запрос страницы ответов назад от курсора
type ReplyPageQuery struct {
	Before string `json:"before"` // startCursor текущей загруженной последовательности
	Last   int    `json:"last"`   // размер страницы
}

// ReplyPageResponse представляет ответ на запрос страницы ответов
type ReplyPageResponse struct {
	Replies ReplyPage `json:"replies"`
}

// CreateReplyRequest представляет запрос на создание ответа
type CreateReplyRequest struct {
	PostID   string `json:"post_id"`
	Body     string `json:"body"`
	ClientID string `json:"client_id"` // клиентский UUID для идемпотентности
}

// CreateReplyResponse представляет ответ на создание ответа
type CreateReplyResponse struct {
	Reply Reply `json:"reply"`
}

// CreatePostRequest представляет запрос на создание поста
type CreatePostRequest struct {
	SpaceID  string   `json:"space_id"`
	GroupIDs []string `json:"group_ids"`
	Body     string   `json:"body"`
	FileURLs []string `json:"file_urls,omitempty"` // URL загруженных вложений
	ClientID string   `json:"client_id"`           // клиентский UUID для идемпотентности
}

// CreatePostResponse представляет ответ на создание поста
type CreatePostResponse struct {
	Post Post `json:"post"`
}
