package memo

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	errorx "github.com/ferdiebergado/memoboard/internal/pkg/error"
	"github.com/ferdiebergado/memoboard/internal/pkg/message"
	"github.com/ferdiebergado/memoboard/internal/pkg/web"
)

const pathID = "id"

type Service interface {
	Create(ctx context.Context, params CreateParams) (Memo, error)
	List(ctx context.Context) ([]Memo, error)
	Find(ctx context.Context, memoID int) (Memo, error)
	Update(ctx context.Context, memoID int, params UpdateParams) (Memo, error)
	Delete(ctx context.Context, memoID int) error
}

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	req, err := web.PayloadFromContext[CreateRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	slog.Debug("creating memo", "request", req)
	params := CreateParams{
		Title:     deref(req.Title),
		CreatedAt: deref(req.CreatedAt),
		UpdatedAt: deref(req.UpdatedAt),
	}
	m, err := h.svc.Create(r.Context(), params)
	if err != nil {
		serverError(w, err)
		return
	}

	web.RespondCreated(w, m)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	memos, err := h.svc.List(r.Context())
	if err != nil {
		serverError(w, err)
		return
	}

	if memos == nil {
		memos = []Memo{}
	}

	web.RespondOK(w, memos)
}

func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	memoID, ok := ParseID(r.PathValue(pathID))
	if !ok {
		web.RespondNotFound(w, errInvalidID(r), MsgNotFound, nil)
		return
	}

	m, err := h.svc.Find(r.Context(), memoID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			web.RespondNotFound(w, err, MsgNotFound, nil)
			return
		}
		serverError(w, err)
		return
	}

	web.RespondOK(w, m)
}

// Update answers 400, not 404, for an unknown id. Existing clients depend on it.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	req, err := web.PayloadFromContext[UpdateRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	memoID, ok := ParseID(r.PathValue(pathID))
	if !ok {
		web.RespondBadRequest(w, errInvalidID(r), MsgNotFound, nil)
		return
	}

	params := UpdateParams(req)
	m, err := h.svc.Update(r.Context(), memoID, params)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			web.RespondBadRequest(w, err, MsgNotFound, nil)
			return
		}
		serverError(w, err)
		return
	}

	web.RespondOK(w, m)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	memoID, ok := ParseID(r.PathValue(pathID))
	if !ok {
		web.RespondNotFound(w, errInvalidID(r), MsgNotFound, nil)
		return
	}

	if err := h.svc.Delete(r.Context(), memoID); err != nil {
		if errors.Is(err, ErrNotFound) {
			web.RespondNotFound(w, err, MsgNotFound, nil)
			return
		}
		serverError(w, err)
		return
	}

	web.RespondNoContent(w)
}

// ParseID reads the leading base-10 integer of s, ignoring leading spaces and
// whatever follows the digits, so "7" and "7abc" both yield 7.
func ParseID(s string) (int, bool) {
	s = strings.TrimLeft(s, " \t\n\r")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}

	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}

	if end == digitsStart {
		return 0, false
	}

	id, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return id, true
}

func errInvalidID(r *http.Request) error {
	return errors.New("invalid memo id: " + strconv.Quote(r.PathValue(pathID)))
}

func serverError(w http.ResponseWriter, err error) {
	if errorx.IsContextError(err) {
		return
	}
	web.RespondInternalServerError(w, err)
}
