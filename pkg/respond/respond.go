package respond

import (
	"encoding/json"
	"net/http"

	"taskpad/internal/model"
)

func JSON(w http.ResponseWriter, r *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(data)
}

// Error отвечает конвертом {"success":false,"error":...} — тем же, что
// отдаёт хранилище, чтобы клиент разбирал один формат.
func Error(w http.ResponseWriter, r *http.Request, code int, message string) {
	JSON(w, r, code, model.Fail(message))
}
