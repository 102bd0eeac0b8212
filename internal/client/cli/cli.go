package cli

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"

	apiclient "github.com/orbitmsg/orbit/internal/client/api"
	"github.com/orbitmsg/orbit/internal/client/session"
	"github.com/orbitmsg/orbit/internal/client/storage"
)

// Storage объединяет клиентские хранилища, которые CLI использует
// (boltdb.Storage реализует оба интерфейса)
type Storage interface {
	storage.SessionStorage
	storage.EntityStorage
}

// Cli связывает команды терминала с контроллерами и транспортом
type Cli struct {
	apiClient apiclient.ClientAPI
	storage   Storage
	logger    *slog.Logger
	wsURL     string
}

// New создает CLI поверх транспорта и локального хранилища
func New(apiClient apiclient.ClientAPI, st Storage, wsURL string, logger *slog.Logger) *Cli {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cli{
		apiClient: apiClient,
		storage:   st,
		logger:    logger,
		wsURL:     wsURL,
	}
}

// PrintUsage печатает справку по командам
func PrintUsage() {
	fmt.Println("Usage: orbit [flags] <command> [args]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  login                 Authenticate and store the session")
	fmt.Println("  logout                Remove the stored session")
	fmt.Println("  status                Show session and cache status")
	fmt.Println("  post                  Compose and publish a new post")
	fmt.Println("  watch <post-id>       Follow a post and its replies live")
	fmt.Println("  bookmark <group-id>   Bookmark a group")
	fmt.Println("  unbookmark <group-id> Remove a group bookmark")
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  -server <url>  Server URL")
	fmt.Println("  -ws <url>      Websocket URL")
	fmt.Println("  -db <path>     Path to local database")
}

// readInput читает строку со стандартного ввода
func readInput(prompt string) (string, error) {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

// readPassword читает пароль без эха
func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	fd := int(os.Stdin.Fd())
	pwBytes, err := term.ReadPassword(fd)
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(pwBytes), nil
}

// requireSession возвращает сохранённую живую сессию.
// Истёкшая или отсутствующая сессия — ошибка с подсказкой про login.
func (c *Cli) requireSession(ctx context.Context) (session.Session, error) {
	sess, err := c.storage.GetSession(ctx)
	if err != nil {
		if err == storage.ErrSessionNotFound {
			return session.Session{}, fmt.Errorf("not authenticated. Please run 'orbit login' first")
		}
		return session.Session{}, fmt.Errorf("failed to load session: %w", err)
	}

	if sess.Expired(nowFunc()) {
		return session.Session{}, fmt.Errorf("session has expired. Please login again")
	}

	return *sess, nil
}
