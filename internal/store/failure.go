package store

import "math/rand"

// FailurePolicy решает, завершить ли мутацию имитированным сбоем.
// Политика подставляется через Options, чтобы тесты могли форсировать
// оба исхода детерминированно.
type FailurePolicy interface {
	ShouldFail() bool
}

// RandomFailure — равномерный бросок против фиксированного порога.
// Не сидируется, не воспроизводится, каждый вызов независим.
type RandomFailure struct {
	Rate float64
}

func (f RandomFailure) ShouldFail() bool {
	return rand.Float64() < f.Rate
}

// FailureFunc адаптирует обычную функцию к FailurePolicy.
type FailureFunc func() bool

func (f FailureFunc) ShouldFail() bool { return f() }
