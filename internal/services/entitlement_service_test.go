package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tbourn/go-moviebot-backend/internal/repo"
)

func TestIsEntitled_UnknownUser(t *testing.T) {
	svc := NewEntitlementService(newTestDB(t))

	ok, err := svc.IsEntitled(context.Background(), 42)
	if err != nil {
		t.Fatalf("IsEntitled: %v", err)
	}
	if ok {
		t.Fatalf("unknown user must not be entitled")
	}
}

func TestIsEntitled_FreeUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewEntitlementService(db)
	ctx := context.Background()

	if err := repo.EnsureUser(ctx, db, 42, "free"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	ok, err := svc.IsEntitled(ctx, 42)
	if err != nil {
		t.Fatalf("IsEntitled: %v", err)
	}
	if ok {
		t.Fatalf("user without a grant must not be entitled")
	}
}

func TestIsEntitled_FlagWithoutExpiryIsInert(t *testing.T) {
	db := newTestDB(t)
	svc := NewEntitlementService(db)
	ctx := context.Background()

	if err := repo.EnsureUser(ctx, db, 42, "odd"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := db.Exec("UPDATE users SET is_premium = ? WHERE id = ?", true, 42).Error; err != nil {
		t.Fatalf("seed flag: %v", err)
	}

	ok, err := svc.IsEntitled(ctx, 42)
	if err != nil {
		t.Fatalf("IsEntitled: %v", err)
	}
	if ok {
		t.Fatalf("premium flag without an expiry must not entitle")
	}
}

func TestGrant_OpensWindow(t *testing.T) {
	db := newTestDB(t)
	svc := NewEntitlementService(db)
	ctx := context.Background()

	base := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	svc.Now = func() time.Time { return base }

	expiry, err := svc.Grant(ctx, 42, 7)
	if err != nil {
		t.Fatalf("Grant: %v", err)
	}
	if want := base.Add(7 * 24 * time.Hour); !expiry.Equal(want) {
		t.Fatalf("expiry = %v, want %v", expiry, want)
	}

	ok, err := svc.IsEntitled(ctx, 42)
	if err != nil {
		t.Fatalf("IsEntitled: %v", err)
	}
	if !ok {
		t.Fatalf("user must be entitled inside the window")
	}
}

func TestGrant_WindowLapsesLazily(t *testing.T) {
	db := newTestDB(t)
	svc := NewEntitlementService(db)
	ctx := context.Background()

	base := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	svc.Now = func() time.Time { return base }
	if _, err := svc.Grant(ctx, 42, 7); err != nil {
		t.Fatalf("Grant: %v", err)
	}

	// Move the clock past the window; no sweeper runs, the read decides.
	svc.Now = func() time.Time { return base.Add(8 * 24 * time.Hour) }
	ok, err := svc.IsEntitled(ctx, 42)
	if err != nil {
		t.Fatalf("IsEntitled: %v", err)
	}
	if ok {
		t.Fatalf("expired window must not entitle")
	}
}

func TestGrant_RepeatResetsFromNow(t *testing.T) {
	db := newTestDB(t)
	svc := NewEntitlementService(db)
	ctx := context.Background()

	base := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	svc.Now = func() time.Time { return base }
	if _, err := svc.Grant(ctx, 42, 30); err != nil {
		t.Fatalf("first Grant: %v", err)
	}

	// Re-grant five days in: the new window replaces the old one outright.
	later := base.Add(5 * 24 * time.Hour)
	svc.Now = func() time.Time { return later }
	expiry, err := svc.Grant(ctx, 42, 7)
	if err != nil {
		t.Fatalf("second Grant: %v", err)
	}
	if want := later.Add(7 * 24 * time.Hour); !expiry.Equal(want) {
		t.Fatalf("expiry = %v, want %v (measured from the second grant)", expiry, want)
	}

	u, err := repo.GetUser(ctx, db, 42)
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if u.PremiumExpiresAt == nil || !u.PremiumExpiresAt.Equal(later.Add(7*24*time.Hour)) {
		t.Fatalf("stored expiry = %v, windows must not stack", u.PremiumExpiresAt)
	}
}

func TestGrant_RejectsNonPositiveDays(t *testing.T) {
	db := newTestDB(t)
	svc := NewEntitlementService(db)
	ctx := context.Background()

	for _, days := range []int{0, -3} {
		if _, err := svc.Grant(ctx, 42, days); !errors.Is(err, ErrInvalidGrant) {
			t.Fatalf("Grant(%d): want ErrInvalidGrant, got %v", days, err)
		}
	}

	// Nothing was written.
	if _, err := repo.GetUser(ctx, db, 42); !errors.Is(err, repo.ErrNotFound) {
		t.Fatalf("rejected grant must not create the user, got %v", err)
	}
}
