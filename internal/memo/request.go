package memo

import "log/slog"

// CreateRequest is the body of POST /api/memos. Pointer fields tell a
// missing field apart from an empty one.
type CreateRequest struct {
	Title     *string `json:"title"`
	CreatedAt *string `json:"created_at" validate:"omitempty,ddmmyyyy"`
	UpdatedAt *string `json:"updated_at" validate:"omitempty,ddmmyyyy"`
}

func (r CreateRequest) TitleField() *string { return r.Title }

func (r CreateRequest) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("title", deref(r.Title)),
		slog.String("created_at", deref(r.CreatedAt)),
		slog.String("updated_at", deref(r.UpdatedAt)),
	)
}

// UpdateRequest is the body of PUT /api/memos/{id}.
type UpdateRequest struct {
	Title  *string `json:"title"`
	Status *string `json:"status"`
}

func (r UpdateRequest) TitleField() *string  { return r.Title }
func (r UpdateRequest) StatusField() *string { return r.Status }

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
