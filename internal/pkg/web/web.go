package web

import (
	"net/http"

	"github.com/ferdiebergado/gopherkit/http/response"
)

func RespondOK[T any](w http.ResponseWriter, data T) {
	JSON(w, http.StatusOK, data)
}

func RespondCreated[T any](w http.ResponseWriter, data T) {
	JSON(w, http.StatusCreated, data)
}

// RespondNoContent answers with 204 and an empty body.
func RespondNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func RespondBadRequest(w http.ResponseWriter, err error, msg string, errs map[string]string) {
	Fail(w, http.StatusBadRequest, err, msg, errs)
}

func RespondNotFound(w http.ResponseWriter, err error, msg string, errs map[string]string) {
	Fail(w, http.StatusNotFound, err, msg, errs)
}

func RespondRequestEntityTooLarge(w http.ResponseWriter, err error, msg string, errs map[string]string) {
	Fail(w, http.StatusRequestEntityTooLarge, err, msg, errs)
}

func RespondTooManyRequests(w http.ResponseWriter, err error, msg string) {
	Fail(w, http.StatusTooManyRequests, err, msg, nil)
}

// RespondInternalServerError hides err from the client behind a generic server error.
func RespondInternalServerError(w http.ResponseWriter, err error) {
	response.ServerError(w, err)
}

func RespondRequestTimeout(w http.ResponseWriter, err error, msg string, errs map[string]string) {
	Fail(w, http.StatusRequestTimeout, err, msg, errs)
}
