package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	apiclient "github.com/orbitmsg/orbit/internal/client/api"
	"github.com/orbitmsg/orbit/internal/client/session"
	"github.com/orbitmsg/orbit/internal/client/storage"
	"github.com/orbitmsg/orbit/pkg/api"
)

// nowFunc подменяется в тестах
var nowFunc = time.Now

// RunLogin выполняет вход и сохраняет сессию в локальном хранилище
func (c *Cli) RunLogin(ctx context.Context) error {
	fmt.Println("=== Login ===")

	email, err := readInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}
	if email == "" {
		return fmt.Errorf("email cannot be empty")
	}

	password, err := readPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	resp, err := c.apiClient.Login(ctx, api.LoginRequest{Email: email, Password: password})
	if err != nil {
		if errors.Is(err, apiclient.ErrSessionExpired) {
			return fmt.Errorf("invalid credentials")
		}
		return fmt.Errorf("login failed: %w", err)
	}

	sess, err := session.FromTokenResponse(*resp, nowFunc())
	if err != nil {
		return fmt.Errorf("failed to build session: %w", err)
	}

	if err := c.storage.SaveSession(ctx, &sess); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	fmt.Println()
	fmt.Println("✓ Logged in successfully!")
	fmt.Printf("Session valid until: %s\n", sess.ExpiresAt.Format(time.RFC3339))
	return nil
}

// RunLogout удаляет сохранённую сессию и кеш сущностей
func (c *Cli) RunLogout(ctx context.Context) error {
	if err := c.storage.DeleteSession(ctx); err != nil {
		if err == storage.ErrSessionNotFound {
			fmt.Println("Not logged in.")
			return nil
		}
		return fmt.Errorf("failed to delete session: %w", err)
	}

	// Кеш сущностей принадлежит сессии
	if err := c.storage.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear entity cache: %w", err)
	}

	fmt.Println("✓ Logged out.")
	return nil
}

// RunStatus печатает состояние сессии и локального кеша
func (c *Cli) RunStatus(ctx context.Context) error {
	fmt.Println("=== Status ===")

	sess, err := c.storage.GetSession(ctx)
	if err != nil {
		if err == storage.ErrSessionNotFound {
			fmt.Println("Session:  not authenticated")
			return nil
		}
		return fmt.Errorf("failed to load session: %w", err)
	}

	if sess.Expired(nowFunc()) {
		fmt.Println("Session:  expired")
	} else {
		fmt.Printf("Session:  valid until %s\n", sess.ExpiresAt.Format(time.RFC3339))
	}
	fmt.Printf("Space:    %s\n", sess.SpaceID)
	fmt.Printf("Member:   %s\n", sess.SpaceUserID)

	entities, err := c.storage.LoadEntities(ctx)
	if err != nil {
		return fmt.Errorf("failed to load entity cache: %w", err)
	}
	fmt.Printf("Cache:    %d entity snapshots\n", len(entities))

	return nil
}
