// Package events определяет закрытое множество типизированных доменных
// событий. Сырые push-кадры декодируются в варианты один раз на границе
// (Decode); дальше диспетчеризация идёт исчерпывающим switch по типу,
// без инспекции динамических структур.
package events

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/orbitmsg/orbit/pkg/api"
)

// ErrUnknownEvent означает push-кадр с неизвестным типом события.
// Транспортный слой логирует и отбрасывает такие кадры.
var ErrUnknownEvent = errors.New("unknown event type")

// Event представляет одно доставленное доменное событие
type Event interface {
	isEvent()
}

// ReplyCreated — создан новый ответ на пост
type ReplyCreated struct {
	PostID string
	Reply  api.Reply
}

func (ReplyCreated) isEvent() {}

// GroupBookmarked — текущий участник добавил группу в закладки
type GroupBookmarked struct {
	Group api.Group
}

func (GroupBookmarked) isEvent() {}

// GroupUnbookmarked — текущий участник убрал группу из закладок
type GroupUnbookmarked struct {
	GroupID string
}

func (GroupUnbookmarked) isEvent() {}

// PostClosed — пост переведён в состояние "closed"
type PostClosed struct {
	Post api.Post
}

func (PostClosed) isEvent() {}

// Decode разбирает сырой push-кадр в типизированное событие.
// Неизвестный тип кадра возвращает ErrUnknownEvent; некорректная
// полезная нагрузка — ошибку декодирования.
func Decode(frame []byte) (Event, error) {
	var envelope api.PushEnvelope
	if err := json.Unmarshal(frame, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode push envelope: %w", err)
	}

	switch envelope.Type {
	case api.EventTypeReplyCreated:
		var payload api.ReplyCreatedPayload
		if err := json.Unmarshal(envelope.Payload, &payload); err != nil {
			return nil, fmt.Errorf("failed to decode %s payload: %w", envelope.Type, err)
		}
		return ReplyCreated{PostID: payload.PostID, Reply: payload.Reply}, nil

	case api.EventTypeGroupBookmarked:
		var payload api.GroupBookmarkedPayload
		if err := json.Unmarshal(envelope.Payload, &payload); err != nil {
			return nil, fmt.Errorf("failed to decode %s payload: %w", envelope.Type, err)
		}
		return GroupBookmarked{Group: payload.Group}, nil

	case api.EventTypeGroupUnbookmarked:
		var payload api.GroupUnbookmarkedPayload
		if err := json.Unmarshal(envelope.Payload, &payload); err != nil {
			return nil, fmt.Errorf("failed to decode %s payload: %w", envelope.Type, err)
		}
		return GroupUnbookmarked{GroupID: payload.GroupID}, nil

	case api.EventTypePostClosed:
		var payload api.PostClosedPayload
		if err := json.Unmarshal(envelope.Payload, &payload); err != nil {
			return nil, fmt.Errorf("failed to decode %s payload: %w", envelope.Type, err)
		}
		return PostClosed{Post: payload.Post}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEvent, envelope.Type)
	}
}
