package repo

import "github.com/orbitmsg/orbit/internal/models"

// Типизированные аксессоры поверх Get/GetMany.
// Снимок с несовпадающим динамическим типом трактуется как отсутствующий.

// Post возвращает снимок поста по id
func (r *Repo) Post(id string) (models.Post, bool) {
	e, ok := r.Get(models.EntityTypePost, id)
	if !ok {
		return models.Post{}, false
	}
	p, ok := e.(models.Post)
	return p, ok
}

// Reply возвращает снимок ответа по id
func (r *Repo) Reply(id string) (models.Reply, bool) {
	e, ok := r.Get(models.EntityTypeReply, id)
	if !ok {
		return models.Reply{}, false
	}
	rp, ok := e.(models.Reply)
	return rp, ok
}

// SpaceUser возвращает снимок участника по id
func (r *Repo) SpaceUser(id string) (models.SpaceUser, bool) {
	e, ok := r.Get(models.EntityTypeSpaceUser, id)
	if !ok {
		return models.SpaceUser{}, false
	}
	u, ok := e.(models.SpaceUser)
	return u, ok
}

// Group возвращает снимок группы по id
func (r *Repo) Group(id string) (models.Group, bool) {
	e, ok := r.Get(models.EntityTypeGroup, id)
	if !ok {
		return models.Group{}, false
	}
	g, ok := e.(models.Group)
	return g, ok
}

// Space возвращает снимок пространства по id
func (r *Repo) Space(id string) (models.Space, bool) {
	e, ok := r.Get(models.EntityTypeSpace, id)
	if !ok {
		return models.Space{}, false
	}
	s, ok := e.(models.Space)
	return s, ok
}

// Replies возвращает снимки ответов для найденных id, пропуская неразрешённые
func (r *Repo) Replies(ids []string) []models.Reply {
	result := make([]models.Reply, 0, len(ids))
	for _, e := range r.GetMany(models.EntityTypeReply, ids) {
		if rp, ok := e.(models.Reply); ok {
			result = append(result, rp)
		}
	}
	return result
}

// Groups возвращает снимки групп для найденных id, пропуская неразрешённые.
// Используется для "безопасного" массового разрешения членства в группах.
func (r *Repo) Groups(ids []string) []models.Group {
	result := make([]models.Group, 0, len(ids))
	for _, e := range r.GetMany(models.EntityTypeGroup, ids) {
		if g, ok := e.(models.Group); ok {
			result = append(result, g)
		}
	}
	return result
}

// SpaceUsers возвращает снимки участников для найденных id, пропуская неразрешённые
func (r *Repo) SpaceUsers(ids []string) []models.SpaceUser {
	result := make([]models.SpaceUser, 0, len(ids))
	for _, e := range r.GetMany(models.EntityTypeSpaceUser, ids) {
		if u, ok := e.(models.SpaceUser); ok {
			result = append(result, u)
		}
	}
	return result
}
