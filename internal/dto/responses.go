package dto

import "bookshelf-api/internal/models"

const (
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusError   = "error"
)

// Response is the envelope every endpoint answers with.
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

type BookIDData struct {
	BookID string `json:"bookId"`
}

type BooksData struct {
	Books []models.BookSummary `json:"books"`
}

type BookData struct {
	Book models.Book `json:"book"`
}

func Success(message string, data any) Response {
	return Response{Status: StatusSuccess, Message: message, Data: data}
}

func Fail(message string) Response {
	return Response{Status: StatusFail, Message: message}
}

func Error(message string) Response {
	return Response{Status: StatusError, Message: message}
}
