package store

import (
	"context"
	"strings"
	"sync"
	"time"

	"taskpad/internal/ids"
	"taskpad/internal/model"
)

// Задержки и вероятность сбоя по умолчанию — контракт мок-API.
// list никогда не падает, сбой применяется только к мутациям.
const (
	DefaultListDelay   = 800 * time.Millisecond
	DefaultCreateDelay = 600 * time.Millisecond
	DefaultUpdateDelay = 500 * time.Millisecond
	DefaultDeleteDelay = 400 * time.Millisecond
	DefaultFailureRate = 0.05
)

// Options задает жизненный цикл хранилища: стартовые записи, задержки
// операций и политику сбоев. Нулевые значения означают "без задержек,
// без сбоев, пустая коллекция" — удобно для тестов.
type Options struct {
	ListDelay   time.Duration
	CreateDelay time.Duration
	UpdateDelay time.Duration
	DeleteDelay time.Duration
	Failures    FailurePolicy
	Seed        []model.Task
}

func DefaultOptions() Options {
	return Options{
		ListDelay:   DefaultListDelay,
		CreateDelay: DefaultCreateDelay,
		UpdateDelay: DefaultUpdateDelay,
		DeleteDelay: DefaultDeleteDelay,
		Failures:    RandomFailure{Rate: DefaultFailureRate},
		Seed:        DefaultSeed(),
	}
}

// DefaultSeed — три фиксированные записи, с которых стартует приложение.
func DefaultSeed() []model.Task {
	now := time.Now().UTC()
	return []model.Task{
		{
			ID:          "task-1",
			Title:       "Buy groceries",
			Description: "Milk, bread and oat flakes",
			CreatedAt:   now.Add(-48 * time.Hour),
			UpdatedAt:   now.Add(-48 * time.Hour),
		},
		{
			ID:          "task-2",
			Title:       "Book a dentist appointment",
			Description: "Ask for a morning slot",
			CreatedAt:   now.Add(-24 * time.Hour),
			UpdatedAt:   now.Add(-24 * time.Hour),
		},
		{
			ID:          "task-3",
			Title:       "Water the plants",
			Description: "Kitchen windowsill and balcony",
			Completed:   true,
			CreatedAt:   now.Add(-72 * time.Hour),
			UpdatedAt:   now.Add(-2 * time.Hour),
		},
	}
}

type MockStore struct { // Хранилище вместо настоящей БД: срез в памяти
	mu    sync.Mutex
	tasks []model.Task
	opts  Options
}

func NewMockStore(opts Options) *MockStore { // Конструктор
	return &MockStore{
		opts:  opts,
		tasks: append([]model.Task(nil), opts.Seed...),
	}
}

// List возвращает копию всей коллекции в порядке вставки.
// Единственная операция без инъекции сбоев: всегда success=true.
func (s *MockStore) List(ctx context.Context) model.Envelope {
	time.Sleep(s.opts.ListDelay)

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Task, len(s.tasks))
	copy(out, s.tasks)
	return model.OK(out)
}

// Create обрезает оба поля и дописывает запись в конец. Валидации нет —
// это обязанность вызывающей стороны, пустой после обрезки ввод принимается.
func (s *MockStore) Create(ctx context.Context, title, description string) model.Envelope {
	time.Sleep(s.opts.CreateDelay)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.shouldFail() {
		return model.Fail("failed to create task")
	}

	now := time.Now().UTC()
	t := model.Task{
		ID:          ids.New(),
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		Completed:   false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.tasks = append(s.tasks, t)
	return model.OK(t)
}

// Update накладывает переданные поля поверх существующей записи.
// Несуществующий id всегда дает "task not found" — бросок сбоя происходит
// только после успешного поиска. Поиск и запись атомарны после задержки.
func (s *MockStore) Update(ctx context.Context, id string, patch model.TaskPatch) model.Envelope {
	time.Sleep(s.opts.UpdateDelay)

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return model.Fail("task not found")
	}
	if s.shouldFail() {
		return model.Fail("failed to update task")
	}

	t := s.tasks[i]
	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.Completed != nil {
		t.Completed = *patch.Completed
	}
	t.UpdatedAt = time.Now().UTC()
	s.tasks[i] = t
	return model.OK(t)
}

// Delete убирает запись из коллекции. Имитированный сбой здесь отличается
// дополнительным полем message; коллекция при любом сбое не меняется.
func (s *MockStore) Delete(ctx context.Context, id string) model.Envelope {
	time.Sleep(s.opts.DeleteDelay)

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return model.Fail("task not found")
	}
	if s.shouldFail() {
		return model.Envelope{
			Success: false,
			Error:   "failed to delete task",
			Message: "simulated server error, please retry",
		}
	}

	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	return model.OK(nil)
}

// Reset перезагружает коллекцию заданными записями (для тестов).
func (s *MockStore) Reset(seed []model.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks = append([]model.Task(nil), seed...)
}

func (s *MockStore) index(id string) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (s *MockStore) shouldFail() bool {
	return s.opts.Failures != nil && s.opts.Failures.ShouldFail()
}
