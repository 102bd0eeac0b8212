package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orbitmsg/orbit/pkg/api"
)

// TestNewClient проверяет создание нового клиента
func TestNewClient(t *testing.T) {
	baseURL := "http://localhost:8080"
	client := NewClient(baseURL)

	assert.NotNil(t, client)
	assert.Equal(t, baseURL, client.baseURL)
	assert.NotNil(t, client.httpClient)
	assert.Equal(t, 30*time.Second, client.httpClient.Timeout)
}

// TestClient_Login проверяет успешный вход
func TestClient_Login(t *testing.T) {
	// Создаем mock сервер
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Проверяем метод и путь
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/api/v1/auth/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		// Декодируем запрос
		var req api.LoginRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", req.Email)

		resp := api.TokenResponse{
			AccessToken: "token-123",
			SpaceUserID: "u1",
			SpaceID:     "s1",
			ExpiresIn:   3600,
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	ctx := context.Background()
	resp, err := client.Login(ctx, api.LoginRequest{Email: "alice@example.com", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "token-123", resp.AccessToken)
	assert.Equal(t, "u1", resp.SpaceUserID)
}

// TestClient_GetPost проверяет начальную загрузку поста
func TestClient_GetPost(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/api/v1/posts/p1", r.URL.Path)
		assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))

		resp := api.PostResponse{
			Post: api.Post{ID: "p1", Body: "hello", Author: api.SpaceUser{ID: "u1"}},
			Replies: api.ReplyPage{
				Edges: []api.ReplyEdge{
					{Node: api.Reply{ID: "r1", PostID: "p1", Body: "hi"}, Cursor: "c1"},
				},
				PageInfo: api.PageInfo{HasPreviousPage: false},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	resp, err := client.GetPost(context.Background(), "token-123", "p1")
	require.NoError(t, err)
	assert.Equal(t, "p1", resp.Post.ID)
	require.Len(t, resp.Replies.Edges, 1)
	assert.Equal(t, "r1", resp.Replies.Edges[0].Node.ID)
}

// TestClient_ListReplies проверяет параметры запроса страницы назад
func TestClient_ListReplies(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/api/v1/posts/p1/replies", r.URL.Path)
		assert.Equal(t, "cursor-1", r.URL.Query().Get("before"))
		assert.Equal(t, "10", r.URL.Query().Get("last"))

		_ = json.NewEncoder(w).Encode(api.ReplyPageResponse{})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	_, err := client.ListReplies(context.Background(), "token-123", "p1",
		api.ReplyPageQuery{Before: "cursor-1", Last: 10})
	require.NoError(t, err)
}

// TestClient_SessionExpired проверяет, что 401 различим для вызывающей стороны
func TestClient_SessionExpired(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	_, err := client.GetPost(context.Background(), "stale-token", "p1")
	require.ErrorIs(t, err, ErrSessionExpired)
}

// TestClient_RequestError проверяет типизацию прочих серверных ошибок
func TestClient_RequestError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_ = json.NewEncoder(w).Encode(api.ErrorResponse{Error: "upstream unavailable"})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	err := client.BookmarkGroup(context.Background(), "token-123", "g1")

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusBadGateway, reqErr.StatusCode)
	assert.Equal(t, "upstream unavailable", reqErr.Message)
}

// TestClient_DecodeError проверяет типизацию некорректного тела ответа
func TestClient_DecodeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{broken`))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	_, err := client.GetPost(context.Background(), "token-123", "p1")

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
}

// TestClient_CreateReply проверяет путь и тело запроса создания ответа
func TestClient_CreateReply(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/api/v1/posts/p1/replies", r.URL.Path)

		var req api.CreateReplyRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "hello", req.Body)
		assert.NotEmpty(t, req.ClientID)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(api.CreateReplyResponse{
			Reply: api.Reply{ID: "r9", PostID: "p1", Body: req.Body},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	resp, err := client.CreateReply(context.Background(), "token-123", api.CreateReplyRequest{
		PostID:   "p1",
		Body:     "hello",
		ClientID: "client-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "r9", resp.Reply.ID)
}

// TestClient_UnbookmarkGroup проверяет метод DELETE
func TestClient_UnbookmarkGroup(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "DELETE", r.Method)
		assert.Equal(t, "/api/v1/groups/g1/bookmark", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	err := client.UnbookmarkGroup(context.Background(), "token-123", "g1")
	require.NoError(t, err)
}
