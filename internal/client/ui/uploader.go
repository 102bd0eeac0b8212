package ui

import "context"

//go:generate moq -out uploader_mock.go . Uploader

// Uploader загружает файлы-вложения. Вся механика загрузки внешняя:
// ядро отслеживает только переходы статуса по uploadID.
// Upload блокирует до завершения; вызывается из фоновой задачи.
// progress (0-100) может вызываться из горутины загрузчика.
type Uploader interface {
	Upload(ctx context.Context, uploadID, filename string, contents []byte, progress func(percent int)) (url string, err error)
}
