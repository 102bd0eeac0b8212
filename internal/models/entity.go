package models

// EntityType определяет тип сущности в нормализованном кеше
type EntityType string

// Типы сущностей, известные клиенту
const (
	EntityTypePost      EntityType = "post"
	EntityTypeReply     EntityType = "reply"
	EntityTypeSpaceUser EntityType = "space_user"
	EntityTypeGroup     EntityType = "group"
	EntityTypeSpace     EntityType = "space"
)

// Entity представляет снимок серверной сущности.
// Снимки иммутабельны: более поздний снимок с тем же ID полностью
// заменяет предыдущий (last-write-wins, без слияния полей).
type Entity interface {
	// EntityID возвращает стабильный идентификатор сущности (уникален в рамках типа)
	EntityID() string

	// Kind возвращает тип сущности
	Kind() EntityType
}
