package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/orbitmsg/orbit/pkg/api"
)

//go:generate moq -out client_mock.go . ClientAPI

// ClientAPI определяет интерфейс транспорта к серверу Orbit
type ClientAPI interface {
	// Login выполняет аутентификацию пользователя
	Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error)

	// GetPost загружает пост вместе с последней страницей ответов
	// и связанными сущностями (начальная загрузка страницы)
	GetPost(ctx context.Context, accessToken, postID string) (*api.PostResponse, error)

	// ListReplies запрашивает страницу ответов назад от курсора
	ListReplies(ctx context.Context, accessToken, postID string, q api.ReplyPageQuery) (*api.ReplyPageResponse, error)

	// CreateReply создает новый ответ на пост
	CreateReply(ctx context.Context, accessToken string, req api.CreateReplyRequest) (*api.CreateReplyResponse, error)

	// CreatePost создает новый пост
	CreatePost(ctx context.Context, accessToken string, req api.CreatePostRequest) (*api.CreatePostResponse, error)

	// BookmarkGroup добавляет группу в закладки текущего участника
	BookmarkGroup(ctx context.Context, accessToken, groupID string) error

	// UnbookmarkGroup убирает группу из закладок текущего участника
	UnbookmarkGroup(ctx context.Context, accessToken, groupID string) error
}

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient создает новый API клиент
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовки Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// Login выполняет аутентификацию пользователя
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	err := c.doRequest(ctx, "POST", "/api/v1/auth/login", "", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// GetPost загружает пост вместе с последней страницей ответов
func (c *Client) GetPost(ctx context.Context, accessToken, postID string) (*api.PostResponse, error) {
	var resp api.PostResponse
	path := fmt.Sprintf("/api/v1/posts/%s", url.PathEscape(postID))
	err := c.doRequest(ctx, "GET", path, accessToken, nil, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListReplies запрашивает страницу ответов назад от курсора
func (c *Client) ListReplies(ctx context.Context, accessToken, postID string, q api.ReplyPageQuery) (*api.ReplyPageResponse, error) {
	var resp api.ReplyPageResponse

	query := url.Values{}
	if q.Before != "" {
		query.Set("before", q.Before)
	}
	if q.Last > 0 {
		query.Set("last", strconv.Itoa(q.Last))
	}

	path := fmt.Sprintf("/api/v1/posts/%s/replies?%s", url.PathEscape(postID), query.Encode())
	err := c.doRequest(ctx, "GET", path, accessToken, nil, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreateReply создает новый ответ на пост
func (c *Client) CreateReply(ctx context.Context, accessToken string, req api.CreateReplyRequest) (*api.CreateReplyResponse, error) {
	var resp api.CreateReplyResponse
	path := fmt.Sprintf("/api/v1/posts/%s/replies", url.PathEscape(req.PostID))
	err := c.doRequest(ctx, "POST", path, accessToken, req, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreatePost создает новый пост
func (c *Client) CreatePost(ctx context.Context, accessToken string, req api.CreatePostRequest) (*api.CreatePostResponse, error) {
	var resp api.CreatePostResponse
	err := c.doRequest(ctx, "POST", "/api/v1/posts", accessToken, req, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// BookmarkGroup добавляет группу в закладки текущего участника
func (c *Client) BookmarkGroup(ctx context.Context, accessToken, groupID string) error {
	path := fmt.Sprintf("/api/v1/groups/%s/bookmark", url.PathEscape(groupID))
	return c.doRequest(ctx, "POST", path, accessToken, nil, nil)
}

// UnbookmarkGroup убирает группу из закладок текущего участника
func (c *Client) UnbookmarkGroup(ctx context.Context, accessToken, groupID string) error {
	path := fmt.Sprintf("/api/v1/groups/%s/bookmark", url.PathEscape(groupID))
	return c.doRequest(ctx, "DELETE", path, accessToken, nil, nil)
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path, accessToken string, body, result interface{}) error {
	requestURL := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Истёкшая сессия всегда различима для вызывающей стороны
	if resp.StatusCode == http.StatusUnauthorized {
		return ErrSessionExpired
	}

	// Прочие не-2xx статусы
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != "" {
			return &RequestError{StatusCode: resp.StatusCode, Message: errResp.Error}
		}
		return &RequestError{StatusCode: resp.StatusCode, Message: string(respBody)}
	}

	// Декодируем успешный ответ
	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return &DecodeError{Err: err}
		}
	}

	return nil
}
