package ids

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// New возвращает идентификатор задачи: UUIDv7, то есть миллисекундная метка
// времени плюс случайный хвост. Уникальность по коллекции не проверяется —
// коллизия молча затенит существующую запись.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		return strconv.FormatInt(time.Now().UnixNano(), 10)
	}
	return id.String()
}
