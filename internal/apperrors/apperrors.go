package apperrors

import (
	"errors"
	"net/http"
)

// AppError - ошибка с HTTP статусом и стабильным кодом для клиента
type AppError struct {
	Message string
	Code    string
	Status  int
}

func (e *AppError) Error() string {
	return e.Message
}

func JWTDecodeError(message string) *AppError {
	return &AppError{Message: message, Code: "jwt_decode_error", Status: http.StatusInternalServerError}
}

func ItemNotFound(message string) *AppError {
	return &AppError{Message: message, Code: "item_not_found_error", Status: http.StatusNotFound}
}

func UserNotFound(message string) *AppError {
	return &AppError{Message: message, Code: "user_not_found_error", Status: http.StatusNotFound}
}

func InvalidCredentials(message string) *AppError {
	return &AppError{Message: message, Code: "credential_error", Status: http.StatusUnauthorized}
}

func UserNotActive(message string) *AppError {
	return &AppError{Message: message, Code: "credential_error", Status: http.StatusUnauthorized}
}

func AccountDeactivated(message string) *AppError {
	return &AppError{Message: message, Code: "account_deactivated_error", Status: http.StatusUnauthorized}
}

func DataCreation(message string) *AppError {
	return &AppError{Message: message, Code: "data_posting_error", Status: http.StatusUnprocessableEntity}
}

func ImageFormatNotSupported(message string) *AppError {
	return &AppError{Message: message, Code: "image_format_error", Status: http.StatusUnprocessableEntity}
}

func UsernameExists(message string) *AppError {
	return &AppError{Message: message, Code: "username_exist_error", Status: http.StatusUnprocessableEntity}
}

func EmailExists(message string) *AppError {
	return &AppError{Message: message, Code: "email_exist_error", Status: http.StatusUnprocessableEntity}
}

func InvalidEmailToken(message string) *AppError {
	return &AppError{Message: message, Code: "invalid_token_error", Status: http.StatusBadRequest}
}

func OperationForbidden(message string) *AppError {
	return &AppError{Message: message, Code: "operation_forbidden_error", Status: http.StatusForbidden}
}

func AdminOnly(message string) *AppError {
	return &AppError{Message: message, Code: "endpoint_forbidden_error", Status: http.StatusForbidden}
}

func NotAuthenticated(message string) *AppError {
	return &AppError{Message: message, Code: "not_authenticated_error", Status: http.StatusUnauthorized}
}

// From - приводит любую ошибку к AppError; неизвестные ошибки отдаём как 500
func From(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{
		Message: err.Error(),
		Code:    "internal_error",
		Status:  http.StatusInternalServerError,
	}
}
