package memo

import "context"

type StubService struct {
	CreateFunc func(ctx context.Context, params CreateParams) (Memo, error)
	ListFunc   func(ctx context.Context) ([]Memo, error)
	FindFunc   func(ctx context.Context, memoID int) (Memo, error)
	UpdateFunc func(ctx context.Context, memoID int, params UpdateParams) (Memo, error)
	DeleteFunc func(ctx context.Context, memoID int) error
}

var _ Service = &StubService{}

func (s *StubService) Create(ctx context.Context, params CreateParams) (Memo, error) {
	if s.CreateFunc == nil {
		panic("Create not implemented by stub")
	}
	return s.CreateFunc(ctx, params)
}

func (s *StubService) List(ctx context.Context) ([]Memo, error) {
	if s.ListFunc == nil {
		panic("List not implemented by stub")
	}
	return s.ListFunc(ctx)
}

func (s *StubService) Find(ctx context.Context, memoID int) (Memo, error) {
	if s.FindFunc == nil {
		panic("Find not implemented by stub")
	}
	return s.FindFunc(ctx, memoID)
}

func (s *StubService) Update(ctx context.Context, memoID int, params UpdateParams) (Memo, error) {
	if s.UpdateFunc == nil {
		panic("Update not implemented by stub")
	}
	return s.UpdateFunc(ctx, memoID, params)
}

func (s *StubService) Delete(ctx context.Context, memoID int) error {
	if s.DeleteFunc == nil {
		panic("Delete not implemented by stub")
	}
	return s.DeleteFunc(ctx, memoID)
}

type StubRepo struct {
	CreateFunc func(ctx context.Context, params CreateParams) (Memo, error)
	ListFunc   func(ctx context.Context) ([]Memo, error)
	FindFunc   func(ctx context.Context, memoID int) (Memo, error)
	UpdateFunc func(ctx context.Context, memoID int, params UpdateParams) (Memo, error)
	DeleteFunc func(ctx context.Context, memoID int) error
}

var _ Repository = &StubRepo{}

func (r *StubRepo) Create(ctx context.Context, params CreateParams) (Memo, error) {
	if r.CreateFunc == nil {
		panic("Create not implemented by stub")
	}
	return r.CreateFunc(ctx, params)
}

func (r *StubRepo) List(ctx context.Context) ([]Memo, error) {
	if r.ListFunc == nil {
		panic("List not implemented by stub")
	}
	return r.ListFunc(ctx)
}

func (r *StubRepo) Find(ctx context.Context, memoID int) (Memo, error) {
	if r.FindFunc == nil {
		panic("Find not implemented by stub")
	}
	return r.FindFunc(ctx, memoID)
}

func (r *StubRepo) Update(ctx context.Context, memoID int, params UpdateParams) (Memo, error) {
	if r.UpdateFunc == nil {
		panic("Update not implemented by stub")
	}
	return r.UpdateFunc(ctx, memoID, params)
}

func (r *StubRepo) Delete(ctx context.Context, memoID int) error {
	if r.DeleteFunc == nil {
		panic("Delete not implemented by stub")
	}
	return r.DeleteFunc(ctx, memoID)
}
