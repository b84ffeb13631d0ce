package tests

import (
	"context"
	"fmt"
	"testing"
	"time"

	"taskpad/internal/model"
	"taskpad/internal/store"
)

// FastStore создает хранилище с сидовыми данными, но без задержек и сбоев
func FastStore(t *testing.T) *store.MockStore {
	t.Helper()
	return store.NewMockStore(store.Options{Seed: store.DefaultSeed()})
}

// FailingStore создает хранилище, в котором каждая мутация падает
func FailingStore(t *testing.T) *store.MockStore {
	t.Helper()
	return store.NewMockStore(store.Options{
		Seed:     store.DefaultSeed(),
		Failures: store.FailureFunc(func() bool { return true }),
	})
}

// SeedTasks создает тестовые задачи через обычный Create
func SeedTasks(t *testing.T, st *store.MockStore, count int) []string {
	t.Helper()
	ctx := context.Background()

	ids := make([]string, 0, count)
	for i := 0; i < count; i++ {
		env := st.Create(ctx, fmt.Sprintf("Task %d", i+1), fmt.Sprintf("seeded task #%d", i+1))
		if !env.Success {
			t.Fatalf("Failed to seed task: %s", env.Error)
		}
		ids = append(ids, env.Data.(model.Task).ID)
	}

	return ids
}

// WaitForCondition ждет выполнения условия с таймаутом
func WaitForCondition(t *testing.T, timeout time.Duration, condition func() bool) bool {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return true
		}
		time.Sleep(100 * time.Millisecond)
	}
	return false
}
