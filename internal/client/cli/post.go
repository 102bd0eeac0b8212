package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/orbitmsg/orbit/internal/client/controller"
)

// RunPost публикует новый пост через NewPostController.
// Задачи контроллера исполняются здесь же, кооперативно: результат
// каждой возвращается в обработчик до следующего шага.
func (c *Cli) RunPost(ctx context.Context, args []string) error {
	sess, err := c.requireSession(ctx)
	if err != nil {
		return err
	}

	fmt.Println("=== New post ===")

	body, err := readInput("Body: ")
	if err != nil {
		return fmt.Errorf("failed to read body: %w", err)
	}

	groupsLine, err := readInput("Group ids (comma-separated): ")
	if err != nil {
		return fmt.Errorf("failed to read groups: %w", err)
	}

	g := controller.NewGlobals(c.apiClient, sess, c.logger)
	ctrl := controller.NewNewPostController(sess.SpaceID, nil, nil)

	ctrl.BodyChanged(g, body)
	for _, groupID := range strings.Split(groupsLine, ",") {
		if groupID = strings.TrimSpace(groupID); groupID != "" {
			ctrl.ToggleGroup(g, groupID)
		}
	}

	tasks, _ := ctrl.Submit(g)
	if len(tasks) == 0 {
		return fmt.Errorf("nothing to submit: empty body")
	}

	if err := c.runTasks(ctx, g, ctrl, tasks); err != nil {
		return err
	}

	if ctrl.Body() != "" {
		// Обработчик поглотил сбой отправки: черновик сохранён
		return fmt.Errorf("post submission failed, draft preserved")
	}

	fmt.Println("✓ Post published.")
	return nil
}

// RunBookmark добавляет или убирает закладку группы
func (c *Cli) RunBookmark(ctx context.Context, groupID string, bookmarked bool) error {
	sess, err := c.requireSession(ctx)
	if err != nil {
		return err
	}
	if groupID == "" {
		return fmt.Errorf("group id is required")
	}

	if bookmarked {
		if err := c.apiClient.BookmarkGroup(ctx, sess.AccessToken, groupID); err != nil {
			return fmt.Errorf("failed to bookmark group: %w", err)
		}
		fmt.Println("✓ Group bookmarked.")
		return nil
	}

	if err := c.apiClient.UnbookmarkGroup(ctx, sess.AccessToken, groupID); err != nil {
		return fmt.Errorf("failed to unbookmark group: %w", err)
	}
	fmt.Println("✓ Bookmark removed.")
	return nil
}

// runTasks исполняет задачи контроллера кооперативно, в одном потоке:
// каждый Completion сразу возвращается обработчику компонента.
// Порождённые обработчиком задачи исполняются следом.
func (c *Cli) runTasks(ctx context.Context, g *controller.Globals, component controller.Component, tasks []controller.Task) error {
	queue := tasks
	for len(queue) > 0 {
		task := queue[0]
		queue = queue[1:]

		var handlerErr error
		task(ctx, func(comp controller.Completion) {
			followUps, directives, err := component.HandleCompletion(g, comp)
			if err != nil {
				handlerErr = err
			}
			queue = append(queue, followUps...)
			for _, d := range directives {
				c.applyDirective(d)
			}
		})
		if handlerErr != nil {
			return handlerErr
		}
	}
	return nil
}
