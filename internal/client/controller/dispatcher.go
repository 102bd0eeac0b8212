package controller

import (
	"context"

	"github.com/orbitmsg/orbit/internal/client/events"
	"github.com/orbitmsg/orbit/internal/client/ui"
)

// Dispatcher сериализует все обработчики: команды пользователя,
// результаты фоновых задач и push-события исполняются строго по одному
// в единственной горутине цикла Run. Сами задачи выполняются в
// отдельных горутинах, но их результаты возвращаются в цикл.
//
// Два выданных запроса могут завершиться не в порядке выдачи; дедуп-
// инварианты Connection ограничивают ущерб до безвредного no-op.
// Completion демонтированного компонента отбрасывается: обработчик
// никогда не мутирует состояние несуществующего компонента.
type Dispatcher struct {
	globals     *Globals
	surface     ui.Surface
	onUpdate    func(g *Globals)
	components  map[string]Component
	commands    chan Command
	completions chan Completion
}

// NewDispatcher создает диспетчер над бандлом globals
func NewDispatcher(g *Globals, surface ui.Surface) *Dispatcher {
	return &Dispatcher{
		globals:     g,
		surface:     surface,
		components:  make(map[string]Component),
		commands:    make(chan Command, 64),
		completions: make(chan Completion, 64),
	}
}

// Register регистрирует компонент (исполняется в цикле диспетчера)
func (d *Dispatcher) Register(c Component) {
	d.Do(func(g *Globals) ([]Task, []ui.Directive) {
		d.components[c.ComponentID()] = c
		return nil, nil
	})
}

// Unregister демонтирует компонент. Явной отмены выданных им задач
// нет: их поздние результаты будут отброшены проверкой живости.
func (d *Dispatcher) Unregister(componentID string) {
	d.Do(func(g *Globals) ([]Task, []ui.Directive) {
		delete(d.components, componentID)
		return nil, nil
	})
}

// Do ставит команду в очередь цикла диспетчера
func (d *Dispatcher) Do(cmd Command) {
	d.commands <- cmd
}

// OnUpdate регистрирует колбэк, вызываемый из цикла после каждого
// обработчика (команда, завершение задачи, событие). Поверхность
// перерисовывается по факту изменения состояния, а не по следующему
// вводу пользователя. Вызывать до Run.
func (d *Dispatcher) OnUpdate(fn func(g *Globals)) {
	d.onUpdate = fn
}

// notify сообщает поверхности, что состояние могло измениться
func (d *Dispatcher) notify() {
	if d.onUpdate != nil {
		d.onUpdate(d.globals)
	}
}

// Run крутит цикл обработчиков до отмены контекста.
// pushEvents — поток типизированных событий от realtime-транспорта;
// закрытие потока не останавливает цикл.
func (d *Dispatcher) Run(ctx context.Context, pushEvents <-chan events.Event) {
	for {
		select {
		case <-ctx.Done():
			return

		case cmd := <-d.commands:
			tasks, directives := cmd(d.globals)
			d.issue(ctx, tasks)
			d.apply(directives)
			d.notify()

		case comp := <-d.completions:
			component, ok := d.components[comp.ComponentID()]
			if !ok {
				// Компонент демонтирован, пока задача была в полёте
				d.globals.Logger.Debug("dropping completion for torn-down component",
					"component_id", comp.ComponentID())
				continue
			}
			tasks, directives, err := component.HandleCompletion(d.globals, comp)
			if err != nil {
				d.globals.Logger.Error("completion handler failed",
					"component_id", comp.ComponentID(), "error", err)
			}
			d.issue(ctx, tasks)
			d.apply(directives)
			d.notify()

		case ev, ok := <-pushEvents:
			if !ok {
				pushEvents = nil
				continue
			}
			for _, component := range d.components {
				d.apply(component.HandleEvent(d.globals, ev))
			}
			d.notify()
		}
	}
}

// issue запускает задачи; каждая возвращает результаты в цикл
func (d *Dispatcher) issue(ctx context.Context, tasks []Task) {
	for _, task := range tasks {
		go task(ctx, func(comp Completion) {
			select {
			case d.completions <- comp:
			case <-ctx.Done():
			}
		})
	}
}

// apply передает директивы хостинговой поверхности (fire-and-forget)
func (d *Dispatcher) apply(directives []ui.Directive) {
	if d.surface == nil {
		return
	}
	for _, directive := range directives {
		d.surface.ApplyDirective(directive)
	}
}
