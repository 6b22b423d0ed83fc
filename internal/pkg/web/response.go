package web

import (
	"log/slog"
	"net/http"

	"github.com/ferdiebergado/gopherkit/http/response"
)

// ErrorResponse represents the structure of a JSON-encoded error response.
//
// It includes a general error message and, optionally, a map of field-level
// validation errors. The Errors field is omitted from the response if empty.
type ErrorResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// JSON writes data as the JSON body of a response with the given status.
//
// Unlike an enveloped response, data is encoded as is, so a handler can
// answer with a bare resource or a bare array.
func JSON[T any](w http.ResponseWriter, status int, data T) {
	response.JSON(w, status, data)
}

// Fail writes a JSON-encoded error response to w with the provided HTTP status code.
//
// The reason is logged using slog at Error level with the key "reason"; it is
// never sent to the client. The JSON response has the form:
//
//	{
//	  "message": "Invalid input.",
//	  "errors": {
//	    "created_at": "created_at must be a date in dd/mm/yyyy format"
//	  }
//	}
func Fail(w http.ResponseWriter, status int, reason error, msg string, errs map[string]string) {
	slog.Error("request failed", "reason", reason, "status", status)
	payload := &ErrorResponse{
		Message: msg,
		Errors:  errs,
	}
	response.JSON(w, status, payload)
}
