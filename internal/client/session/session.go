// Package session управляет состоянием сессии клиента: токеном доступа
// и временем его истечения. Токен не верифицируется на клиенте (подпись
// проверяет сервер) — из него извлекается только claim exp.
package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/orbitmsg/orbit/pkg/api"
)

// Session представляет активную сессию пользователя
type Session struct {
	ExpiresAt   time.Time `json:"expires_at"`    // время истечения access token
	AccessToken string    `json:"access_token"`  // JWT access token
	SpaceUserID string    `json:"space_user_id"` // участник текущего пространства
	SpaceID     string    `json:"space_id"`      // текущее пространство
}

// FromTokenResponse собирает сессию из ответа сервера на логин.
// Время истечения берётся из claim exp токена; при его отсутствии —
// из поля expires_in ответа.
func FromTokenResponse(resp api.TokenResponse, now time.Time) (Session, error) {
	s := Session{
		AccessToken: resp.AccessToken,
		SpaceUserID: resp.SpaceUserID,
		SpaceID:     resp.SpaceID,
		ExpiresAt:   now.Add(time.Duration(resp.ExpiresIn) * time.Second),
	}

	// Разбираем токен без проверки подписи — нужен только exp
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(resp.AccessToken, claims); err != nil {
		return Session{}, fmt.Errorf("failed to parse access token: %w", err)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return Session{}, fmt.Errorf("failed to read token expiration: %w", err)
	}
	if exp != nil {
		s.ExpiresAt = exp.Time
	}

	return s, nil
}

// Expired сообщает, истекла ли сессия к моменту now
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
