// Package controller содержит view-model'и компонентов (пост, композер
// нового поста) и диспетчер, сериализующий их обработчики.
//
// Модель исполнения однопоточная и кооперативная: все мутации состояния
// происходят в атомарных обработчиках, вызываемых диспетчером строго по
// одному. Долгая работа (сетевые запросы) выдаётся как неблокирующая
// Task, результат которой возвращается в тот же конвейер обработчиков
// как Completion. Разделяемой памяти и блокировок нет.
package controller

import (
	"log/slog"
	"time"

	apiclient "github.com/orbitmsg/orbit/internal/client/api"
	"github.com/orbitmsg/orbit/internal/client/repo"
	"github.com/orbitmsg/orbit/internal/client/session"
)

// Globals — явный бандл сессии и общих зависимостей, протаскиваемый
// параметром через каждый обработчик. Глобальных синглтонов нет:
// обработчик получает *Globals и может обновить его на месте
// (репозиторий разделяется компонентами только на чтение; мутирует
// его только однопоточный цикл диспетчера).
type Globals struct {
	Repo    *repo.Repo
	Session session.Session
	API     apiclient.ClientAPI
	Logger  *slog.Logger
	Now     func() time.Time
}

// NewGlobals создает бандл с заполненными значениями по умолчанию
func NewGlobals(api apiclient.ClientAPI, sess session.Session, logger *slog.Logger) *Globals {
	if logger == nil {
		logger = slog.Default()
	}
	return &Globals{
		Repo:    repo.New(),
		Session: sess,
		API:     api,
		Logger:  logger,
		Now:     time.Now,
	}
}
