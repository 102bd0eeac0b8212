// Package realtime реализует транспорт push-подписок поверх websocket.
// Сырые кадры декодируются в типизированные события на границе;
// кадры неизвестного типа логируются и отбрасываются.
package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/orbitmsg/orbit/internal/client/events"
	"github.com/orbitmsg/orbit/pkg/api"
)

const (
	// writeWait время на запись кадра
	writeWait = 10 * time.Second
	// pongWait время ожидания pong от сервера
	pongWait = 60 * time.Second
	// pingPeriod период отправки ping; должен быть меньше pongWait
	pingPeriod = (pongWait * 9) / 10
	// maxMessageSize максимальный размер входящего кадра
	maxMessageSize = 1 << 20
)

// Socket представляет подключение к push-каналу сервера
type Socket struct {
	conn    *websocket.Conn
	logger  *slog.Logger
	events  chan events.Event
	done    chan struct{}
	writeMu sync.Mutex // сериализует записи: кадры подписки и ping
	closed  sync.Once
}

// Dial открывает websocket-подключение и запускает насосы чтения и ping
func Dial(ctx context.Context, wsURL, accessToken string, logger *slog.Logger) (*Socket, error) {
	if logger == nil {
		logger = slog.Default()
	}

	header := http.Header{}
	header.Set("Authorization", "Bearer "+accessToken)

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, wsURL, header)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusUnauthorized {
			return nil, fmt.Errorf("websocket dial: unauthorized")
		}
		return nil, fmt.Errorf("websocket dial failed: %w", err)
	}

	s := &Socket{
		conn:   conn,
		logger: logger,
		events: make(chan events.Event, 64),
		done:   make(chan struct{}),
	}

	go s.readPump()
	go s.pingPump()

	return s, nil
}

// Events возвращает поток доставленных типизированных событий.
// Канал закрывается при разрыве подключения.
func (s *Socket) Events() <-chan events.Event {
	return s.events
}

// SubscribePost подписывает подключение на события поста
func (s *Socket) SubscribePost(postID string) error {
	return s.writeFrame(api.SubscribeFrame{Action: api.SubscribeActionSubscribe, PostID: postID})
}

// UnsubscribePost снимает подписку на события поста
func (s *Socket) UnsubscribePost(postID string) error {
	return s.writeFrame(api.SubscribeFrame{Action: api.SubscribeActionUnsubscribe, PostID: postID})
}

// Close закрывает подключение
func (s *Socket) Close() error {
	var err error
	s.closed.Do(func() {
		close(s.done)
		err = s.conn.Close()
	})
	return err
}

// writeFrame сериализует и отправляет исходящий кадр
func (s *Socket) writeFrame(frame api.SubscribeFrame) error {
	data, err := json.Marshal(frame)
	if err != nil {
		return fmt.Errorf("failed to marshal subscribe frame: %w", err)
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := s.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return fmt.Errorf("failed to set write deadline: %w", err)
	}
	if err := s.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		return fmt.Errorf("failed to write subscribe frame: %w", err)
	}
	return nil
}

// readPump читает кадры, декодирует их в события и доставляет подписчику
func (s *Socket) readPump() {
	defer func() {
		close(s.events)
		_ = s.Close()
	}()

	s.conn.SetReadLimit(maxMessageSize)
	_ = s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, frame, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Warn("websocket read failed", "error", err)
			}
			return
		}

		ev, err := events.Decode(frame)
		if err != nil {
			// Кадр новой версии сервера не роняет клиент
			s.logger.Debug("dropping undecodable push frame", "error", err)
			continue
		}

		select {
		case s.events <- ev:
		case <-s.done:
			return
		}
	}
}

// pingPump поддерживает подключение живым периодическими ping
func (s *Socket) pingPump() {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.writeMu.Lock()
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			err := s.conn.WriteMessage(websocket.PingMessage, nil)
			s.writeMu.Unlock()
			if err != nil {
				return
			}
		case <-s.done:
			return
		}
	}
}
