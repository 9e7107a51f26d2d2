package repo

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestEnsureUser_IdempotentInsert(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	if err := EnsureUser(ctx, db, 42, "Alice"); err != nil {
		t.Fatalf("EnsureUser: %v", err)
	}
	// Second sight is a no-op, not an error, and the original row survives.
	if err := EnsureUser(ctx, db, 42, "Someone Else"); err != nil {
		t.Fatalf("EnsureUser repeat: %v", err)
	}

	u, err := GetUser(ctx, db, 42)
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if u.DisplayName != "Alice" {
		t.Fatalf("display name overwritten: %q", u.DisplayName)
	}

	total, err := CountUsers(ctx, db)
	if err != nil {
		t.Fatalf("CountUsers: %v", err)
	}
	if total != 1 {
		t.Fatalf("users = %d, want 1", total)
	}
}

func TestGetUser_Missing(t *testing.T) {
	db := newTestDB(t)

	if _, err := GetUser(context.Background(), db, 999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestUpsertPremium_CreatesAndReplaces(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	first := time.Now().UTC().Add(7 * 24 * time.Hour).Truncate(time.Second)
	if err := UpsertPremium(ctx, db, 7, first); err != nil {
		t.Fatalf("UpsertPremium (insert): %v", err)
	}

	u, err := GetUser(ctx, db, 7)
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if !u.IsPremium || u.PremiumExpiresAt == nil || !u.PremiumExpiresAt.Equal(first) {
		t.Fatalf("premium window not recorded: %+v", u)
	}

	// A later grant replaces the expiry outright; windows never stack.
	second := time.Now().UTC().Add(30 * 24 * time.Hour).Truncate(time.Second)
	if err := UpsertPremium(ctx, db, 7, second); err != nil {
		t.Fatalf("UpsertPremium (update): %v", err)
	}
	u, err = GetUser(ctx, db, 7)
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if u.PremiumExpiresAt == nil || !u.PremiumExpiresAt.Equal(second) {
		t.Fatalf("expiry not replaced: %v", u.PremiumExpiresAt)
	}
}

func TestCountPremiumUsers_LazyExpiry(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	now := time.Now().UTC()

	if err := UpsertPremium(ctx, db, 1, now.Add(24*time.Hour)); err != nil {
		t.Fatalf("seed active: %v", err)
	}
	if err := UpsertPremium(ctx, db, 2, now.Add(-time.Minute)); err != nil {
		t.Fatalf("seed expired: %v", err)
	}
	if err := EnsureUser(ctx, db, 3, "free"); err != nil {
		t.Fatalf("seed free: %v", err)
	}

	active, err := CountPremiumUsers(ctx, db, now)
	if err != nil {
		t.Fatalf("CountPremiumUsers: %v", err)
	}
	if active != 1 {
		t.Fatalf("active premium = %d, want 1 (expired rows excluded without sweeping)", active)
	}
}

func TestCatalogStats(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	now := time.Now().UTC()

	if err := EnsureUser(ctx, db, 1, "a"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := UpsertPremium(ctx, db, 2, now.Add(time.Hour)); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := CreateMovie(ctx, db, "Inception", "2010", "English", "x"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	s, err := CatalogStats(ctx, db, now)
	if err != nil {
		t.Fatalf("CatalogStats: %v", err)
	}
	if s.Users != 2 || s.PremiumUsers != 1 || s.Movies != 1 {
		t.Fatalf("stats = %+v", s)
	}
}
