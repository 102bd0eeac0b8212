// Package connection реализует клиентское представление удалённой
// упорядоченной последовательности, частично загруженной курсорной
// пагинацией. Connection хранит только идентификаторы; сами сущности
// разрешаются через репозиторий в момент рендера.
package connection

import "fmt"

// DecodeError означает структурно некорректную страницу ответа сервера.
// Никогда не проглатывается молча: пробрасывается вызывающей стороне Decode.
type DecodeError struct {
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("connection decode: %s", e.Reason)
}

// Connection представляет упорядоченный, дедуплицированный список
// идентификаторов с метаданными курсорной пагинации.
//
// Инварианты:
//   - порядок, заданный сервером, никогда не меняется локально;
//   - каждый идентификатор встречается не более одного раза;
//   - курсоры непрозрачны и не интерпретируются клиентом.
//
// Методы-мутаторы возвращают новое значение; входные Connection
// не изменяются.
type Connection[T comparable] struct {
	ids             []T
	startCursor     string
	endCursor       string
	hasPreviousPage bool
	hasNextPage     bool
}

// PageMeta содержит метаданные пагинации для создания Connection
type PageMeta struct {
	StartCursor     *string
	EndCursor       *string
	HasPreviousPage bool
	HasNextPage     bool
}

// Decode собирает Connection из сырых элементов страницы.
// extract извлекает идентификатор из элемента; ошибка извлечения
// трактуется как структурно некорректная страница.
func Decode[N any, T comparable](nodes []N, meta PageMeta, extract func(N) (T, error)) (Connection[T], error) {
	if meta.HasPreviousPage && meta.StartCursor == nil {
		return Connection[T]{}, &DecodeError{Reason: "has_previous_page is set but start_cursor is null"}
	}
	if meta.HasNextPage && meta.EndCursor == nil {
		return Connection[T]{}, &DecodeError{Reason: "has_next_page is set but end_cursor is null"}
	}

	c := Connection[T]{
		ids:             make([]T, 0, len(nodes)),
		hasPreviousPage: meta.HasPreviousPage,
		hasNextPage:     meta.HasNextPage,
	}
	if meta.StartCursor != nil {
		c.startCursor = *meta.StartCursor
	}
	if meta.EndCursor != nil {
		c.endCursor = *meta.EndCursor
	}

	seen := make(map[T]struct{}, len(nodes))
	for i, node := range nodes {
		id, err := extract(node)
		if err != nil {
			return Connection[T]{}, &DecodeError{Reason: fmt.Sprintf("node %d: %v", i, err)}
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		c.ids = append(c.ids, id)
	}

	return c, nil
}

// ToList возвращает полную загруженную последовательность идентификаторов
func (c Connection[T]) ToList() []T {
	result := make([]T, len(c.ids))
	copy(result, c.ids)
	return result
}

// Last возвращает последние n идентификаторов (в исходном порядке) и
// признак того, существуют ли элементы перед ними: либо загруженные
// локально (n < числа загруженных), либо на сервере (hasPreviousPage).
func (c Connection[T]) Last(n int) ([]T, bool) {
	if n < 0 {
		n = 0
	}
	if n >= len(c.ids) {
		return c.ToList(), c.hasPreviousPage
	}
	result := make([]T, n)
	copy(result, c.ids[len(c.ids)-n:])
	return result, true
}

// Head возвращает первый загруженный идентификатор
func (c Connection[T]) Head() (T, bool) {
	var zero T
	if len(c.ids) == 0 {
		return zero, false
	}
	return c.ids[0], true
}

// StartCursor возвращает курсор для запроса страницы назад.
// Отсутствует, если предыдущей страницы нет.
func (c Connection[T]) StartCursor() (string, bool) {
	if !c.hasPreviousPage || c.startCursor == "" {
		return "", false
	}
	return c.startCursor, true
}

// EndCursor возвращает курсор для запроса страницы вперёд.
// Отсутствует, если следующей страницы нет.
func (c Connection[T]) EndCursor() (string, bool) {
	if !c.hasNextPage || c.endCursor == "" {
		return "", false
	}
	return c.endCursor, true
}

// HasPreviousPage сообщает, можно ли листать назад
func (c Connection[T]) HasPreviousPage() bool { return c.hasPreviousPage }

// HasNextPage сообщает, можно ли листать вперёд
func (c Connection[T]) HasNextPage() bool { return c.hasNextPage }

// IsEmpty возвращает true, если не загружено ни одного идентификатора
func (c Connection[T]) IsEmpty() bool { return len(c.ids) == 0 }

// IsEmptyAndExpanded возвращает true, если не загружено ни одного
// идентификатора и предыдущих страниц нет: последовательность полностью
// загружена и действительно пуста. Отличает "ничего не существует"
// от "ещё не загружено".
func (c Connection[T]) IsEmptyAndExpanded() bool {
	return len(c.ids) == 0 && !c.hasPreviousPage
}

// Prepend вливает более старую страницу, полученную запросом назад.
// Идентификаторы other помещаются перед текущими; уже присутствующие
// в приёмнике отбрасываются. hasPreviousPage и startCursor приёмника
// заменяются значениями other (other — новая "старейшая" граница);
// hasNextPage и endCursor не меняются.
func (c Connection[T]) Prepend(other Connection[T]) Connection[T] {
	existing := make(map[T]struct{}, len(c.ids))
	for _, id := range c.ids {
		existing[id] = struct{}{}
	}

	merged := make([]T, 0, len(other.ids)+len(c.ids))
	for _, id := range other.ids {
		if _, dup := existing[id]; dup {
			continue
		}
		merged = append(merged, id)
	}
	merged = append(merged, c.ids...)

	return Connection[T]{
		ids:             merged,
		startCursor:     other.startCursor,
		endCursor:       c.endCursor,
		hasPreviousPage: other.hasPreviousPage,
		hasNextPage:     c.hasNextPage,
	}
}

// Append добавляет один новый идентификатор в конец (например, только
// что созданный ответ). No-op, если идентификатор уже присутствует.
func (c Connection[T]) Append(id T) Connection[T] {
	for _, existing := range c.ids {
		if existing == id {
			return c
		}
	}
	ids := make([]T, 0, len(c.ids)+1)
	ids = append(ids, c.ids...)
	ids = append(ids, id)

	result := c
	result.ids = ids
	return result
}

// Map возвращает новый Connection с идентификаторами, преобразованными f;
// метаданные пагинации сохраняются. Используется для адаптации типа
// идентификатора.
func Map[T, U comparable](c Connection[T], f func(T) U) Connection[U] {
	ids := make([]U, 0, len(c.ids))
	seen := make(map[U]struct{}, len(c.ids))
	for _, id := range c.ids {
		mapped := f(id)
		if _, dup := seen[mapped]; dup {
			continue
		}
		seen[mapped] = struct{}{}
		ids = append(ids, mapped)
	}
	return Connection[U]{
		ids:             ids,
		startCursor:     c.startCursor,
		endCursor:       c.endCursor,
		hasPreviousPage: c.hasPreviousPage,
		hasNextPage:     c.hasNextPage,
	}
}
