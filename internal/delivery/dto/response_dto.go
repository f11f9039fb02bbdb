package dto

import (
	"net/http"

	"github.com/google/uuid"
)

// Status codes carried by every command response.
const (
	CodeOK               = http.StatusOK
	CodeValidationFailed = http.StatusBadRequest
	CodeNotFound         = http.StatusNotFound
	CodeConflict         = http.StatusConflict
	CodeInternalError    = http.StatusInternalServerError
)

const internalErrorMessage = "An error occurred while processing your request"

// BaseResponse is the outcome of a command.
type BaseResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func OK() BaseResponse {
	return BaseResponse{Code: CodeOK, Message: "OK"}
}

func NotFound(message string) BaseResponse {
	return BaseResponse{Code: CodeNotFound, Message: message}
}

func Conflict(message string) BaseResponse {
	return BaseResponse{Code: CodeConflict, Message: message}
}

func ValidationFailed(message string) BaseResponse {
	return BaseResponse{Code: CodeValidationFailed, Message: message}
}

// InternalError never carries details about the underlying failure.
func InternalError() BaseResponse {
	return BaseResponse{Code: CodeInternalError, Message: internalErrorMessage}
}

// Request DTOs shared by all entity kinds

type ByIDRequest struct {
	ID uuid.UUID `json:"id" validate:"required"`
}

type EmptyRequest struct{}
