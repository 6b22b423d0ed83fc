package memo

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	timex "github.com/ferdiebergado/memoboard/internal/pkg/time"
)

var ErrNotFound = errors.New("memo repository: memo not found")

// Repository is the storage of memos.
type Repository interface {
	Create(ctx context.Context, params CreateParams) (Memo, error)
	List(ctx context.Context) ([]Memo, error)
	Find(ctx context.Context, memoID int) (Memo, error)
	Update(ctx context.Context, memoID int, params UpdateParams) (Memo, error)
	Delete(ctx context.Context, memoID int) error
}

// MemoryRepository keeps memos in process memory. It is safe for concurrent use.
//
// Ids come from a counter that only moves forward, so an id is never handed
// out twice even after the memo that held it is deleted.
type MemoryRepository struct {
	mu     sync.RWMutex
	memos  map[int]Memo
	order  []int
	lastID int

	now func() time.Time
	loc *time.Location
}

var _ Repository = (*MemoryRepository)(nil)

type Option func(*MemoryRepository)

// WithClock sets the source of the current date.
func WithClock(now func() time.Time) Option {
	return func(r *MemoryRepository) {
		r.now = now
	}
}

// WithLocation sets the time zone the current date is taken in.
func WithLocation(loc *time.Location) Option {
	return func(r *MemoryRepository) {
		r.loc = loc
	}
}

func NewMemoryRepository(opts ...Option) *MemoryRepository {
	r := &MemoryRepository{
		memos: make(map[int]Memo),
		now:   time.Now,
		loc:   time.Local,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

func (r *MemoryRepository) today() string {
	return timex.FormatDate(r.now(), r.loc)
}

func (r *MemoryRepository) Create(_ context.Context, params CreateParams) (Memo, error) {
	createdAt := params.CreatedAt
	if createdAt == "" {
		createdAt = r.today()
	}

	updatedAt := params.UpdatedAt
	if updatedAt == "" {
		updatedAt = createdAt
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	m := Memo{
		ID:        r.lastID,
		Title:     params.Title,
		Status:    StatusPending,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
	r.memos[m.ID] = m
	r.order = append(r.order, m.ID)

	return m, nil
}

// List returns the memos in the order they were created.
func (r *MemoryRepository) List(_ context.Context) ([]Memo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	memos := make([]Memo, 0, len(r.order))
	for _, id := range r.order {
		memos = append(memos, r.memos[id])
	}

	return memos, nil
}

func (r *MemoryRepository) Find(_ context.Context, memoID int) (Memo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.memos[memoID]
	if !ok {
		return Memo{}, ErrNotFound
	}

	return m, nil
}

func (r *MemoryRepository) Update(_ context.Context, memoID int, params UpdateParams) (Memo, error) {
	today := r.today()

	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.memos[memoID]
	if !ok {
		return Memo{}, ErrNotFound
	}

	if params.Title != nil {
		m.Title = *params.Title
	}

	if params.Status != nil {
		m.Status = *params.Status
	}

	m.UpdatedAt = today
	r.memos[memoID] = m

	return m, nil
}

func (r *MemoryRepository) Delete(_ context.Context, memoID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.memos[memoID]; !ok {
		return ErrNotFound
	}

	delete(r.memos, memoID)
	r.order = slices.DeleteFunc(r.order, func(id int) bool {
		return id == memoID
	})

	return nil
}
