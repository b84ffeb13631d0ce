package store

import (
	"context"

	"taskpad/internal/model"
)

// TaskStore определяет контракт мок-хранилища. Каждая операция возвращает
// конверт, а не ошибку Go: сбои нормализуются внутри операции. Задержка —
// реальное ожидание по стенным часам; отмена ctx начатую операцию не
// прерывает, состояние все равно изменится.
type TaskStore interface {
	List(ctx context.Context) model.Envelope
	Create(ctx context.Context, title, description string) model.Envelope
	Update(ctx context.Context, id string, patch model.TaskPatch) model.Envelope
	Delete(ctx context.Context, id string) model.Envelope
}
