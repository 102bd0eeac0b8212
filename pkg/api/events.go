package api

import "encoding/json"

// Типы push-событий, доставляемых по websocket
const (
	EventTypeReplyCreated      = "reply_created"
	EventTypeGroupBookmarked   = "group_bookmarked"
	EventTypeGroupUnbookmarked = "group_unbookmarked"
	EventTypePostClosed        = "post_closed"
)

// PushEnvelope представляет кадр push-события с сервера.
// Payload декодируется в типизированное событие на границе (internal/client/events).
type PushEnvelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// ReplyCreatedPayload — полезная нагрузка события "reply_created"
type ReplyCreatedPayload struct {
	PostID string `json:"post_id"`
	Reply  Reply  `json:"reply"`
}

// GroupBookmarkedPayload — полезная нагрузка события "group_bookmarked"
type GroupBookmarkedPayload struct {
	Group Group `json:"group"`
}

// GroupUnbookmarkedPayload — полезная нагрузка события "group_unbookmarked"
type GroupUnbookmarkedPayload struct {
	GroupID string `json:"group_id"`
}

// PostClosedPayload — полезная нагрузка события "post_closed"
type PostClosedPayload struct {
	Post Post `json:"post"`
}

// Действия исходящих кадров подписки
const (
	SubscribeActionSubscribe   = "subscribe"
	SubscribeActionUnsubscribe = "unsubscribe"
)

// SubscribeFrame представляет исходящий кадр управления подпиской на пост
type SubscribeFrame struct {
	Action string `json:"action"` // "subscribe" | "unsubscribe"
	PostID string `json:"post_id"`
}
