package handlers

import (
	"encoding/json"
	"net/http"

	"myblog/internal/apperrors"
)

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Message   string `json:"message"`
	ErrorCode string `json:"error_code"`
}

// WriteError переводит ошибку в {message, error_code} с нужным HTTP-статусом
func WriteError(w http.ResponseWriter, err error) {
	appErr := apperrors.From(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.Status)
	json.NewEncoder(w).Encode(ErrorResponse{
		Message:   appErr.Message,
		ErrorCode: appErr.Code,
	})
}

// writeSuccess - функция для успешных ответов
func writeSuccess(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}
