package repo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/tbourn/go-moviebot-backend/internal/domain"
)

func TestCreateAndGetFeedback(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	fb, err := CreateFeedback(ctx, db, 42, "unobtainium movie")
	if err != nil {
		t.Fatalf("CreateFeedback: %v", err)
	}
	if _, err := uuid.Parse(fb.ID); err != nil {
		t.Fatalf("ID is not a UUID: %q", fb.ID)
	}
	if fb.Status != domain.FeedbackPending {
		t.Fatalf("status = %q, want pending", fb.Status)
	}

	got, err := GetFeedback(ctx, db, fb.ID)
	if err != nil {
		t.Fatalf("GetFeedback: %v", err)
	}
	if got.RequesterID != 42 || got.Query != "unobtainium movie" {
		t.Fatalf("round-trip mismatch: %+v", got)
	}
}

func TestGetFeedback_Missing(t *testing.T) {
	db := newTestDB(t)

	if _, err := GetFeedback(context.Background(), db, uuid.NewString()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestResolveFeedback(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	fb, err := CreateFeedback(ctx, db, 42, "q")
	if err != nil {
		t.Fatalf("CreateFeedback: %v", err)
	}

	if err := ResolveFeedback(ctx, db, fb.ID, "notyet", now); err != nil {
		t.Fatalf("ResolveFeedback: %v", err)
	}

	got, err := GetFeedback(ctx, db, fb.ID)
	if err != nil {
		t.Fatalf("GetFeedback: %v", err)
	}
	if got.Status != domain.FeedbackResolved || got.Choice != "notyet" {
		t.Fatalf("not resolved: %+v", got)
	}
	if got.ResolvedAt == nil {
		t.Fatalf("resolved_at not recorded")
	}
}

func TestResolveFeedback_OnlyOnce(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	now := time.Now().UTC()

	fb, err := CreateFeedback(ctx, db, 42, "q")
	if err != nil {
		t.Fatalf("CreateFeedback: %v", err)
	}
	if err := ResolveFeedback(ctx, db, fb.ID, "exists", now); err != nil {
		t.Fatalf("first resolve: %v", err)
	}

	// The status predicate rejects a second transition.
	if err := ResolveFeedback(ctx, db, fb.ID, "wrong", now); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second resolve: want ErrNotFound, got %v", err)
	}

	got, err := GetFeedback(ctx, db, fb.ID)
	if err != nil {
		t.Fatalf("GetFeedback: %v", err)
	}
	if got.Choice != "exists" {
		t.Fatalf("winning choice overwritten: %q", got.Choice)
	}
}

func TestResolveFeedback_MissingRow(t *testing.T) {
	db := newTestDB(t)

	err := ResolveFeedback(context.Background(), db, uuid.NewString(), "soon", time.Now().UTC())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}
