package repo

import "github.com/orbitmsg/orbit/internal/models"

// Repo — нормализованный клиентский кеш сущностей.
// Хранит последний известный снимок каждой сущности по ключу (тип, id).
// Повторная вставка по существующему ключу полностью заменяет снимок
// (last-write-wins, без слияния полей).
//
// Repo мутируется только единственным обработчиком событий (см. controller.Dispatcher),
// читается — кем угодно; поэтому внутренних блокировок нет.
type Repo struct {
	entities map[models.EntityType]map[string]models.Entity
}

// New создает пустой репозиторий
func New() *Repo {
	return &Repo{
		entities: make(map[models.EntityType]map[string]models.Entity),
	}
}

// Insert добавляет или заменяет снимок сущности по её (тип, id)
func (r *Repo) Insert(e models.Entity) {
	if e == nil {
		return
	}
	byID, ok := r.entities[e.Kind()]
	if !ok {
		byID = make(map[string]models.Entity)
		r.entities[e.Kind()] = byID
	}
	byID[e.EntityID()] = e
}

// InsertMany добавляет или заменяет снимки нескольких сущностей
func (r *Repo) InsertMany(es []models.Entity) {
	for _, e := range es {
		r.Insert(e)
	}
}

// Get возвращает снимок сущности по типу и id.
// Отсутствие сущности — валидное, ожидаемое состояние (ещё не загружена),
// поэтому второй результат — признак присутствия, а не ошибка.
func (r *Repo) Get(t models.EntityType, id string) (models.Entity, bool) {
	byID, ok := r.entities[t]
	if !ok {
		return nil, false
	}
	e, ok := byID[id]
	return e, ok
}

// GetMany возвращает снимки для всех найденных id, молча пропуская
// неразрешённые. Никогда не возвращает ошибку.
func (r *Repo) GetMany(t models.EntityType, ids []string) []models.Entity {
	result := make([]models.Entity, 0, len(ids))
	for _, id := range ids {
		if e, ok := r.Get(t, id); ok {
			result = append(result, e)
		}
	}
	return result
}

// Len возвращает общее число снимков в репозитории
func (r *Repo) Len() int {
	n := 0
	for _, byID := range r.entities {
		n += len(byID)
	}
	return n
}

// All возвращает все снимки репозитория (порядок не определён).
// Используется для сохранения кеша между запусками.
func (r *Repo) All() []models.Entity {
	result := make([]models.Entity, 0, r.Len())
	for _, byID := range r.entities {
		for _, e := range byID {
			result = append(result, e)
		}
	}
	return result
}

// Union возвращает новый репозиторий, содержащий объединение ключей
// incoming и base. При коллизии ключа выигрывает значение из incoming
// (приоритет задаётся вызывающей стороной порядком аргументов).
// Ни один из аргументов не мутируется.
func Union(incoming, base *Repo) *Repo {
	result := New()
	if base != nil {
		for _, byID := range base.entities {
			for _, e := range byID {
				result.Insert(e)
			}
		}
	}
	if incoming != nil {
		for _, byID := range incoming.entities {
			for _, e := range byID {
				result.Insert(e)
			}
		}
	}
	return result
}
