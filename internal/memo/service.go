package memo

import (
	"context"
	"fmt"
)

type service struct {
	repo Repository
}

var _ Service = (*service)(nil)

func (s *service) Create(ctx context.Context, params CreateParams) (Memo, error) {
	if err := ctx.Err(); err != nil {
		return Memo{}, err
	}

	m, err := s.repo.Create(ctx, params)
	if err != nil {
		return Memo{}, fmt.Errorf("create memo: %w", err)
	}
	return m, nil
}

func (s *service) List(ctx context.Context) ([]Memo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	memos, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list memos: %w", err)
	}
	return memos, nil
}

func (s *service) Find(ctx context.Context, memoID int) (Memo, error) {
	if err := ctx.Err(); err != nil {
		return Memo{}, err
	}

	m, err := s.repo.Find(ctx, memoID)
	if err != nil {
		return Memo{}, fmt.Errorf("find memo %d: %w", memoID, err)
	}
	return m, nil
}

func (s *service) Update(ctx context.Context, memoID int, params UpdateParams) (Memo, error) {
	if err := ctx.Err(); err != nil {
		return Memo{}, err
	}

	m, err := s.repo.Update(ctx, memoID, params)
	if err != nil {
		return Memo{}, fmt.Errorf("update memo %d: %w", memoID, err)
	}
	return m, nil
}

func (s *service) Delete(ctx context.Context, memoID int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, memoID); err != nil {
		return fmt.Errorf("delete memo %d: %w", memoID, err)
	}
	return nil
}

func NewService(repo Repository) Service {
	return &service{
		repo: repo,
	}
}
