package models

import "time"

// Состояния поста
const (
	PostStateOpen   = "open"
	PostStateClosed = "closed"
)

// Post представляет пост в группе.
type Post struct {
	PostedAt time.Time `json:"posted_at"` // время публикации (серверное)
	ID       string    `json:"id"`        // уникальный идентификатор поста
	SpaceID  string    `json:"space_id"`  // идентификатор пространства
	AuthorID string    `json:"author_id"` // идентификатор автора (SpaceUser)
	Body     string    `json:"body"`      // текст поста
	State    string    `json:"state"`     // состояние: "open" или "closed"
	GroupIDs []string  `json:"group_ids"` // группы, в которые опубликован пост
}

func (p Post) EntityID() string { return p.ID }
func (p Post) Kind() EntityType { return EntityTypePost }

// Reply представляет ответ на пост.
type Reply struct {
	PostedAt time.Time `json:"posted_at"` // время публикации (серверное)
	ID       string    `json:"id"`        // уникальный идентификатор ответа
	PostID   string    `json:"post_id"`   // пост, к которому относится ответ
	AuthorID string    `json:"author_id"` // идентификатор автора (SpaceUser)
	Body     string    `json:"body"`      // текст ответа
}

func (r Reply) EntityID() string { return r.ID }
func (r Reply) Kind() EntityType { return EntityTypeReply }

// SpaceUser представляет участника пространства.
type SpaceUser struct {
	ID          string `json:"id"`           // уникальный идентификатор участника
	SpaceID     string `json:"space_id"`     // пространство, к которому привязан участник
	Handle      string `json:"handle"`       // короткое имя (@handle)
	DisplayName string `json:"display_name"` // отображаемое имя
	AvatarURL   string `json:"avatar_url"`   // URL аватара (может быть пустым)
	Role        string `json:"role"`         // роль: "owner", "admin", "member"
}

func (u SpaceUser) EntityID() string { return u.ID }
func (u SpaceUser) Kind() EntityType { return EntityTypeSpaceUser }

// Group представляет группу (канал) внутри пространства.
type Group struct {
	ID        string `json:"id"`         // уникальный идентификатор группы
	SpaceID   string `json:"space_id"`   // пространство, которому принадлежит группа
	Name      string `json:"name"`       // название группы
	IsPrivate bool   `json:"is_private"` // приватная ли группа
}

func (g Group) EntityID() string { return g.ID }
func (g Group) Kind() EntityType { return EntityTypeGroup }

// Space представляет пространство (workspace).
type Space struct {
	ID   string `json:"id"`   // уникальный идентификатор пространства
	Name string `json:"name"` // название пространства
	Slug string `json:"slug"` // URL-идентификатор пространства
}

func (s Space) EntityID() string { return s.ID }
func (s Space) Kind() EntityType { return EntityTypeSpace }
