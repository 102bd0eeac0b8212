package api

import (
	"errors"
	"fmt"
)

// ErrSessionExpired означает, что сервер отверг токен доступа (HTTP 401).
// Всегда всплывает до редиректа на логин; никогда не поглощается
// обработчиком по умолчанию.
var ErrSessionExpired = errors.New("session expired")

// RequestError означает прочую ошибку сети или сервера (не 2xx и не 401).
// Компоненты поглощают её молча: состояние откатывается к виду до запроса.
type RequestError struct {
	Message    string
	StatusCode int
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request failed with status %d: %s", e.StatusCode, e.Message)
}

// DecodeError означает некорректное тело ответа сервера
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
