package memo

import (
	"errors"
	"net/http"

	"github.com/ferdiebergado/memoboard/internal/pkg/message"
	"github.com/ferdiebergado/memoboard/internal/pkg/web"
)

var (
	errTitleMissing  = errors.New("title is missing")
	errTitleEmpty    = errors.New("title is empty")
	errStatusMissing = errors.New("status is missing")
	errStatusEmpty   = errors.New("status is empty")
)

type titled interface {
	TitleField() *string
}

type statused interface {
	StatusField() *string
}

// RequireTitle rejects payloads whose title is missing or empty. Both cases
// answer with the same message. It must be mounted after DecodePayload[T].
func RequireTitle[T titled](next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req, err := web.PayloadFromContext[T](r.Context())
		if err != nil {
			web.RespondBadRequest(w, err, message.InvalidInput, nil)
			return
		}

		title := req.TitleField()
		if title == nil {
			web.RespondBadRequest(w, errTitleMissing, MsgTitleEmpty, nil)
			return
		}

		if *title == "" {
			web.RespondBadRequest(w, errTitleEmpty, MsgTitleEmpty, nil)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireStatus rejects payloads whose status is missing or empty, with a
// distinct message for each. Any non-empty value is accepted.
func RequireStatus[T statused](next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req, err := web.PayloadFromContext[T](r.Context())
		if err != nil {
			web.RespondBadRequest(w, err, message.InvalidInput, nil)
			return
		}

		status := req.StatusField()
		if status == nil {
			web.RespondBadRequest(w, errStatusMissing, MsgStatusMandatory, nil)
			return
		}

		if *status == "" {
			web.RespondBadRequest(w, errStatusEmpty, MsgStatusEmpty, nil)
			return
		}

		next.ServeHTTP(w, r)
	})
}
