package model

// Envelope — единый формат результата каждой операции хранилища.
// Вызывающий код ветвится по Success; любой внутренний сбой превращается
// в конверт с текстом ошибки и не пробрасывается дальше.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

func OK(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

func Fail(err string) Envelope {
	return Envelope{Success: false, Error: err}
}
