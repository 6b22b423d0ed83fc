// Package memo implements the reminder resource: its in-memory store, the
// service in front of it, the field checks that guard its payloads and the
// HTTP handlers that expose it.
package memo

const (
	StatusPending = "pendente"
	StatusDone    = "completado"
)

// Memo is a reminder. Dates are dd/mm/yyyy strings.
type Memo struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// CreateParams are the caller supplied fields of a new memo. Empty dates
// are filled in by the store.
type CreateParams struct {
	Title     string
	CreatedAt string
	UpdatedAt string
}

// UpdateParams lists the fields to replace. Nil fields are left untouched.
type UpdateParams struct {
	Title  *string
	Status *string
}
