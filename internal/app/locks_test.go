package app

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestCategoryLockTimeout(t *testing.T) {
	locks := newCategoryLocks()
	ctx := context.Background()

	if err := locks.acquire(ctx, "cat-1", 10*time.Millisecond); err != nil {
		t.Fatalf("first acquire failed: %v", err)
	}

	// Held lock: a second acquire must fail with the retryable sentinel.
	err := locks.acquire(ctx, "cat-1", 20*time.Millisecond)
	if !errors.Is(err, ErrCategoryBusy) {
		t.Fatalf("expected ErrCategoryBusy, got %v", err)
	}

	// Other categories are independent.
	if err := locks.acquire(ctx, "cat-2", 10*time.Millisecond); err != nil {
		t.Fatalf("independent category blocked: %v", err)
	}
	locks.release("cat-2")

	locks.release("cat-1")
	if err := locks.acquire(ctx, "cat-1", 10*time.Millisecond); err != nil {
		t.Fatalf("acquire after release failed: %v", err)
	}
	locks.release("cat-1")
}

func TestCategoryLockContextCancel(t *testing.T) {
	locks := newCategoryLocks()
	ctx, cancel := context.WithCancel(context.Background())

	if err := locks.acquire(ctx, "cat-1", time.Second); err != nil {
		t.Fatalf("first acquire failed: %v", err)
	}
	defer locks.release("cat-1")

	cancel()
	if err := locks.acquire(ctx, "cat-1", time.Minute); !errors.Is(err, ErrCategoryBusy) {
		t.Fatalf("expected ErrCategoryBusy on cancelled context, got %v", err)
	}
}
