package catalog

import (
	"encoding/json"
	"net/http"
	"time"
)

// ErrorBody é o corpo JSON de respostas de erro.
// A mensagem é fixa por rota; a causa real só vai para o log.
type ErrorBody struct {
	Message string `json:"message"`
	Date    string `json:"date"`
}

func NewErrorBody(message string, now time.Time) ErrorBody {
	return ErrorBody{
		Message: message,
		Date:    now.UTC().Format(time.RFC3339),
	}
}

// WriteError escreve status + ErrorBody.
func WriteError(w http.ResponseWriter, status int, message string, now time.Time) {
	writeJSON(w, status, NewErrorBody(message, now))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
