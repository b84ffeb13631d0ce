package service

import (
	"context"
	"errors"
	"strings"

	"taskpad/internal/model"
	"taskpad/internal/store"
)

var (
	ErrValidation = errors.New("validation error")
	ErrNoFields   = errors.New("no fields to update")
)

// Stats — сводка по коллекции, вычисляется из полного списка.
type Stats struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Active    int `json:"active"`
}

// TaskService валидирует ввод до обращения к хранилищу. Ошибка (error)
// означает отклонённый ввод; конверт передаётся от хранилища как есть.
type TaskService struct {
	store store.TaskStore
}

func NewTaskService(store store.TaskStore) *TaskService {
	return &TaskService{store: store}
}

func (s *TaskService) List(ctx context.Context) (model.Envelope, error) {
	return s.store.List(ctx), nil
}

func (s *TaskService) Create(ctx context.Context, title, description string) (model.Envelope, error) {
	// Валидация до сетевой задержки: пустой ввод не доходит до хранилища
	if strings.TrimSpace(title) == "" || strings.TrimSpace(description) == "" {
		return model.Envelope{}, ErrValidation
	}
	return s.store.Create(ctx, title, description), nil
}

func (s *TaskService) Get(ctx context.Context, id string) (model.Envelope, error) {
	if strings.TrimSpace(id) == "" {
		return model.Envelope{}, ErrValidation
	}

	env := s.store.List(ctx)
	if !env.Success {
		return env, nil
	}
	for _, t := range env.Data.([]model.Task) {
		if t.ID == id {
			return model.OK(t), nil
		}
	}
	return model.Fail("task not found"), nil
}

func (s *TaskService) Update(ctx context.Context, id string, patch model.TaskPatch) (model.Envelope, error) {
	if strings.TrimSpace(id) == "" {
		return model.Envelope{}, ErrValidation
	}
	if patch.Title == nil && patch.Description == nil && patch.Completed == nil {
		return model.Envelope{}, ErrNoFields
	}

	// Переданные текстовые поля нормализуются; пустые после обрезки отклоняются
	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return model.Envelope{}, ErrValidation
		}
		patch.Title = &title
	}
	if patch.Description != nil {
		description := strings.TrimSpace(*patch.Description)
		if description == "" {
			return model.Envelope{}, ErrValidation
		}
		patch.Description = &description
	}

	return s.store.Update(ctx, id, patch), nil
}

func (s *TaskService) Delete(ctx context.Context, id string) (model.Envelope, error) {
	if strings.TrimSpace(id) == "" {
		return model.Envelope{}, ErrValidation
	}
	return s.store.Delete(ctx, id), nil
}

func (s *TaskService) GetStats(ctx context.Context) (model.Envelope, error) {
	env := s.store.List(ctx)
	if !env.Success {
		return env, nil
	}

	stats := Stats{}
	for _, t := range env.Data.([]model.Task) {
		stats.Total++
		if t.Completed {
			stats.Completed++
		}
	}
	stats.Active = stats.Total - stats.Completed
	return model.OK(stats), nil
}
