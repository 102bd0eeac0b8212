package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/orbitmsg/orbit/internal/client/controller"
	"github.com/orbitmsg/orbit/internal/client/realtime"
	"github.com/orbitmsg/orbit/internal/client/ui"
)

// RunWatch открывает пост, подписывается на его live-события и
// обслуживает интерактивные команды терминала через диспетчер.
//
// Команды: prev — подгрузить более старые ответы; reply <text> —
// ответить; q — выйти.
func (c *Cli) RunWatch(ctx context.Context, args []string) error {
	if len(args) < 1 || args[0] == "" {
		return fmt.Errorf("usage: orbit watch <post-id>")
	}
	postID := args[0]

	sess, err := c.requireSession(ctx)
	if err != nil {
		return err
	}

	g := controller.NewGlobals(c.apiClient, sess, c.logger)

	// Тёплый старт: репозиторий восстанавливается из локального кеша
	// до первого запроса к серверу
	if cached, err := c.storage.LoadEntities(ctx); err == nil && len(cached) > 0 {
		g.Repo.InsertMany(cached)
		c.logger.Debug("warmed repository from local cache", "entities", len(cached))
	}

	// Начальная загрузка страницы
	resp, err := c.apiClient.GetPost(ctx, sess.AccessToken, postID)
	if err != nil {
		return fmt.Errorf("failed to load post: %w", err)
	}

	post, err := controller.LoadPostController(g, resp)
	if err != nil {
		return fmt.Errorf("failed to decode post page: %w", err)
	}

	// Снимки следующего запуска
	if err := c.storage.SaveEntities(ctx, g.Repo.All()); err != nil {
		c.logger.Warn("failed to persist entity cache", "error", err)
	}

	// Push-подписка
	socket, err := realtime.Dial(ctx, c.wsURL, sess.AccessToken, c.logger)
	if err != nil {
		return fmt.Errorf("failed to connect to realtime channel: %w", err)
	}
	defer func() {
		_ = socket.UnsubscribePost(postID)
		_ = socket.Close()
	}()

	if err := socket.SubscribePost(postID); err != nil {
		return fmt.Errorf("failed to subscribe to post: %w", err)
	}

	renderer := &stdioRenderer{}
	dispatcher := controller.NewDispatcher(g, renderer)

	// Перерисовка после каждого обработчика: подгруженная страница и
	// live-ответы появляются сразу, не дожидаясь следующего ввода
	dispatcher.OnUpdate(func(g *controller.Globals) {
		post.Render(g, renderer)
	})
	dispatcher.Register(post)

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	go dispatcher.Run(watchCtx, socket.Events())

	// Интерактивный цикл терминала
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Println("Commands: prev | reply <text> | q")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "q":
			dispatcher.Unregister(post.ComponentID())
			return nil

		case line == "prev":
			dispatcher.Do(post.RequestPreviousReplies)

		case strings.HasPrefix(line, "reply "):
			body := strings.TrimSpace(strings.TrimPrefix(line, "reply "))
			dispatcher.Do(post.ExpandComposer)
			dispatcher.Do(func(g *controller.Globals) ([]controller.Task, []ui.Directive) {
				return post.BodyChanged(g, body)
			})
			dispatcher.Do(post.SubmitReply)

		default:
			dispatcher.Do(func(g *controller.Globals) ([]controller.Task, []ui.Directive) {
				return nil, nil
			})
		}
	}

	return scanner.Err()
}
