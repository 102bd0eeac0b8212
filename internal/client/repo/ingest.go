package repo

import (
	"github.com/orbitmsg/orbit/internal/models"
	"github.com/orbitmsg/orbit/pkg/api"
)

// Ingest-функции разворачивают вложенные DTO ответа сервера в плоский
// набор снимков сущностей. Результат объединяется с базовым репозиторием
// через Union (incoming выигрывает).

// IngestSpaceUser нормализует участника пространства
func IngestSpaceUser(u api.SpaceUser) models.SpaceUser {
	return models.SpaceUser{
		ID:          u.ID,
		SpaceID:     u.SpaceID,
		Handle:      u.Handle,
		DisplayName: u.DisplayName,
		AvatarURL:   u.AvatarURL,
		Role:        u.Role,
	}
}

// IngestReply нормализует ответ вместе с его автором
func IngestReply(r api.Reply) []models.Entity {
	return []models.Entity{
		models.Reply{
			ID:       r.ID,
			PostID:   r.PostID,
			AuthorID: r.Author.ID,
			Body:     r.Body,
			PostedAt: r.PostedAt,
		},
		IngestSpaceUser(r.Author),
	}
}

// IngestPost нормализует пост вместе с автором, группами и пространством
func IngestPost(p api.Post) []models.Entity {
	groupIDs := make([]string, 0, len(p.Groups))
	entities := make([]models.Entity, 0, len(p.Groups)+3)

	for _, g := range p.Groups {
		groupIDs = append(groupIDs, g.ID)
		entities = append(entities, models.Group{
			ID:        g.ID,
			SpaceID:   g.SpaceID,
			Name:      g.Name,
			IsPrivate: g.IsPrivate,
		})
	}

	entities = append(entities,
		models.Post{
			ID:       p.ID,
			SpaceID:  p.Space.ID,
			AuthorID: p.Author.ID,
			Body:     p.Body,
			State:    p.State,
			PostedAt: p.PostedAt,
			GroupIDs: groupIDs,
		},
		IngestSpaceUser(p.Author),
		models.Space{
			ID:   p.Space.ID,
			Name: p.Space.Name,
			Slug: p.Space.Slug,
		},
	)

	return entities
}

// IngestReplyPage нормализует страницу ответов (узлы и их авторов)
func IngestReplyPage(page api.ReplyPage) []models.Entity {
	entities := make([]models.Entity, 0, len(page.Edges)*2)
	for _, edge := range page.Edges {
		entities = append(entities, IngestReply(edge.Node)...)
	}
	return entities
}

// FromEntities создает репозиторий из набора снимков
func FromEntities(es []models.Entity) *Repo {
	r := New()
	r.InsertMany(es)
	return r
}
