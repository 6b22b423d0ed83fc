package memo_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ferdiebergado/memoboard/internal/memo"
)

func TestService_WrapsRepositoryErrors(t *testing.T) {
	t.Parallel()

	repo := &memo.StubRepo{
		FindFunc: func(_ context.Context, _ int) (memo.Memo, error) {
			return memo.Memo{}, memo.ErrNotFound
		},
		UpdateFunc: func(_ context.Context, _ int, _ memo.UpdateParams) (memo.Memo, error) {
			return memo.Memo{}, memo.ErrNotFound
		},
		DeleteFunc: func(_ context.Context, _ int) error {
			return memo.ErrNotFound
		},
	}
	svc := memo.NewService(repo)
	ctx := context.Background()

	if _, err := svc.Find(ctx, 1); !errors.Is(err, memo.ErrNotFound) {
		t.Errorf("svc.Find() = %v, want: %v", err, memo.ErrNotFound)
	}

	if _, err := svc.Update(ctx, 1, memo.UpdateParams{}); !errors.Is(err, memo.ErrNotFound) {
		t.Errorf("svc.Update() = %v, want: %v", err, memo.ErrNotFound)
	}

	if err := svc.Delete(ctx, 1); !errors.Is(err, memo.ErrNotFound) {
		t.Errorf("svc.Delete() = %v, want: %v", err, memo.ErrNotFound)
	}
}

func TestService_Create(t *testing.T) {
	t.Parallel()

	want := memo.Memo{ID: 1, Title: "Pay rent", Status: memo.StatusPending, CreatedAt: "15/10/2026", UpdatedAt: "15/10/2026"}
	var gotParams memo.CreateParams
	repo := &memo.StubRepo{
		CreateFunc: func(_ context.Context, params memo.CreateParams) (memo.Memo, error) {
			gotParams = params
			return want, nil
		},
	}

	svc := memo.NewService(repo)
	params := memo.CreateParams{Title: "Pay rent"}
	got, err := svc.Create(context.Background(), params)
	if err != nil {
		t.Fatalf("svc.Create() = %v, want: %v", err, nil)
	}

	if got != want {
		t.Errorf("svc.Create() = %+v, want: %+v", got, want)
	}

	if gotParams != params {
		t.Errorf("repo received %+v, want: %+v", gotParams, params)
	}
}

func TestService_CanceledContext(t *testing.T) {
	t.Parallel()

	svc := memo.NewService(&memo.StubRepo{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := svc.List(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("svc.List() = %v, want: %v", err, context.Canceled)
	}

	if _, err := svc.Create(ctx, memo.CreateParams{Title: "x"}); !errors.Is(err, context.Canceled) {
		t.Errorf("svc.Create() = %v, want: %v", err, context.Canceled)
	}
}
