package validation

import "fmt"

const (
	// MaxBodyLen максимальная длина текста поста или ответа
	MaxBodyLen = 10000
)

// ValidateBody проверяет текст поста или ответа перед отправкой.
// Пустой текст не отправляется; ограничение длины совпадает с серверным.
func ValidateBody(body string) error {
	if body == "" {
		return fmt.Errorf("body cannot be empty")
	}

	if len(body) > MaxBodyLen {
		return fmt.Errorf("body must not exceed %d characters", MaxBodyLen)
	}

	return nil
}
