package handlers

import (
	"net/http"
)

type Handler func(http.ResponseWriter, *http.Request) Result

type Result struct {
	Code int
	Body interface{}
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func BadRequest(message string) Result {
	return Result{
		Code: http.StatusBadRequest,
		Body: ErrorResponse{message},
	}
}

func TooLarge(message string) Result {
	return Result{
		Code: http.StatusRequestEntityTooLarge,
		Body: ErrorResponse{message},
	}
}

func Ok(body interface{}) Result {
	return Result{
		Code: http.StatusOK,
		Body: body,
	}
}
