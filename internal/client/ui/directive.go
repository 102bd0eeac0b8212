// Package ui определяет узкие контракты внешних коллабораторов
// презентационного слоя. Ядро не рендерит и не скроллит само — оно
// выдаёт директивы, которые хостинговая поверхность применяет
// fire-and-forget, без наблюдаемого ядром результата.
package ui

// Directive представляет побочный эффект для хостинговой поверхности
type Directive interface {
	isDirective()
}

// ScrollToAnchor просит удержать элемент в видимой области
// (например, прежде верхний ответ после подгрузки страницы назад)
type ScrollToAnchor struct {
	ElementID string
	OffsetPx  int
}

func (ScrollToAnchor) isDirective() {}

// ScrollToBottom просит прокрутить поверхность к низу
type ScrollToBottom struct{}

func (ScrollToBottom) isDirective() {}

// SetFocus просит перевести фокус на элемент
type SetFocus struct {
	ElementID string
}

func (SetFocus) isDirective() {}

// RedirectToLogin просит увести пользователя на страницу входа.
// Выдаётся только при истёкшей сессии; компонент после этого
// демонтируется вызывающей стороной.
type RedirectToLogin struct{}

func (RedirectToLogin) isDirective() {}

//go:generate moq -out surface_mock.go . Surface

// Surface применяет директивы ядра к хостинговой поверхности
type Surface interface {
	ApplyDirective(d Directive)
}
