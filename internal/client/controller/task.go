package controller

import (
	"context"

	"github.com/orbitmsg/orbit/internal/client/events"
	"github.com/orbitmsg/orbit/internal/client/ui"
)

// Task — неблокирующая фоновая работа (сетевой запрос, загрузка файла).
// Выполняется диспетчером в отдельной горутине; результаты возвращаются
// в конвейер обработчиков через emit. Задача может выдать несколько
// Completion (например, прогресс загрузки и финальный результат).
type Task func(ctx context.Context, emit func(Completion))

// Completion — результат завершённой (или продвинувшейся) задачи,
// адресованный конкретному компоненту. Диспетчер отбрасывает Completion,
// чей компонент уже демонтирован.
type Completion interface {
	// ComponentID возвращает идентификатор компонента-адресата
	ComponentID() string
}

// Command — команда пользователя, исполняемая в цикле диспетчера
type Command func(g *Globals) ([]Task, []ui.Directive)

// Component — зарегистрированный в диспетчере компонент
type Component interface {
	// ComponentID возвращает стабильный идентификатор компонента
	ComponentID() string

	// HandleEvent обрабатывает доставленное push-событие.
	// События чужих компонентов игнорируются самим обработчиком.
	HandleEvent(g *Globals, ev events.Event) []ui.Directive

	// HandleCompletion обрабатывает результат фоновой задачи.
	// Ошибка декодирования пробрасывается диспетчеру (никогда не
	// проглатывается молча); прочие сбои обработчик поглощает сам.
	HandleCompletion(g *Globals, comp Completion) ([]Task, []ui.Directive, error)
}
