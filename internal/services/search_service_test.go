package services

import (
	"context"
	"fmt"
	"testing"

	"gorm.io/gorm"

	"github.com/tbourn/go-moviebot-backend/internal/repo"
)

func seedMovies(t *testing.T, db *gorm.DB, titles ...string) {
	t.Helper()
	for i, title := range titles {
		year := fmt.Sprintf("%04d", 2000+i)
		if _, err := repo.CreateMovie(context.Background(), db, title, year, "English", title); err != nil {
			t.Fatalf("seed %q: %v", title, err)
		}
	}
}

func TestSearch_EmptyQueryHasNoSideEffect(t *testing.T) {
	db := newTestDB(t)
	svc := NewSearchService(db, stubEntitlements{})

	for _, q := range []string{"", "   ", "\t"} {
		set, noneFound, err := svc.Search(context.Background(), 42, q)
		if err != nil {
			t.Fatalf("Search(%q): %v", q, err)
		}
		if len(set.Items) != 0 || set.Truncated {
			t.Fatalf("Search(%q) = %+v, want empty set", q, set)
		}
		if noneFound {
			t.Fatalf("Search(%q): empty query is absence of intent, not a miss", q)
		}
	}
}

func TestSearch_CaseInsensitiveSubstring(t *testing.T) {
	db := newTestDB(t)
	seedMovies(t, db, "Inception", "The Matrix")
	svc := NewSearchService(db, stubEntitlements{entitled: true})

	set, noneFound, err := svc.Search(context.Background(), 42, "iNCEp")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if noneFound {
		t.Fatalf("match reported as miss")
	}
	if len(set.Items) != 1 || set.Items[0].Title != "Inception" {
		t.Fatalf("items = %+v", set.Items)
	}
	if set.Truncated {
		t.Fatalf("nothing was withheld")
	}
}

func TestSearch_InsertionOrder(t *testing.T) {
	db := newTestDB(t)
	seedMovies(t, db, "Matrix Reloaded", "Another Film", "Matrix Revolutions", "The Matrix")
	svc := NewSearchService(db, stubEntitlements{entitled: true})

	set, _, err := svc.Search(context.Background(), 42, "matrix")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	want := []string{"Matrix Reloaded", "Matrix Revolutions", "The Matrix"}
	if len(set.Items) != len(want) {
		t.Fatalf("got %d items, want %d", len(set.Items), len(want))
	}
	for i, title := range want {
		if set.Items[i].Title != title {
			t.Fatalf("items[%d] = %q, want %q (oldest catalogued first)", i, set.Items[i].Title, title)
		}
	}
}

func TestSearch_FreeRequesterIsGated(t *testing.T) {
	db := newTestDB(t)
	seedMovies(t, db, "Matrix 1", "Matrix 2", "Matrix 3", "Matrix 4")
	svc := NewSearchService(db, stubEntitlements{entitled: false})

	set, noneFound, err := svc.Search(context.Background(), 42, "matrix")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if noneFound {
		t.Fatalf("gating must never manufacture a miss")
	}
	if len(set.Items) != DefaultFreeResultCap {
		t.Fatalf("got %d items, want the free cap of %d", len(set.Items), DefaultFreeResultCap)
	}
	if set.Items[0].Title != "Matrix 1" || set.Items[1].Title != "Matrix 2" {
		t.Fatalf("gating must keep the head of the list: %+v", set.Items)
	}
	if !set.Truncated {
		t.Fatalf("withheld matches must set Truncated")
	}
}

func TestSearch_EntitledRequesterSeesFullCap(t *testing.T) {
	db := newTestDB(t)
	titles := make([]string, 0, 25)
	for i := 0; i < 25; i++ {
		titles = append(titles, fmt.Sprintf("Matrix %02d", i))
	}
	seedMovies(t, db, titles...)
	svc := NewSearchService(db, stubEntitlements{entitled: true})

	set, _, err := svc.Search(context.Background(), 42, "matrix")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(set.Items) != DefaultResultCap {
		t.Fatalf("got %d items, want the hard cap of %d", len(set.Items), DefaultResultCap)
	}
	if !set.Truncated {
		t.Fatalf("the cap withheld 5 matches; Truncated must be set")
	}
}

func TestSearch_ExactlyAtCapIsNotTruncated(t *testing.T) {
	db := newTestDB(t)
	titles := make([]string, 0, DefaultResultCap)
	for i := 0; i < DefaultResultCap; i++ {
		titles = append(titles, fmt.Sprintf("Matrix %02d", i))
	}
	seedMovies(t, db, titles...)
	svc := NewSearchService(db, stubEntitlements{entitled: true})

	set, _, err := svc.Search(context.Background(), 42, "matrix")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(set.Items) != DefaultResultCap {
		t.Fatalf("got %d items, want %d", len(set.Items), DefaultResultCap)
	}
	if set.Truncated {
		t.Fatalf("nothing was withheld at an exact-cap match")
	}
}

func TestSearch_MissTriggersFeedbackSignal(t *testing.T) {
	db := newTestDB(t)
	seedMovies(t, db, "Inception")
	svc := NewSearchService(db, stubEntitlements{entitled: false})

	set, noneFound, err := svc.Search(context.Background(), 42, "does not exist")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if !noneFound {
		t.Fatalf("zero matches must signal the feedback workflow")
	}
	if len(set.Items) != 0 {
		t.Fatalf("items = %+v, want none", set.Items)
	}
}

func TestSearch_CustomCaps(t *testing.T) {
	db := newTestDB(t)
	seedMovies(t, db, "Matrix 1", "Matrix 2", "Matrix 3", "Matrix 4", "Matrix 5")
	svc := NewSearchService(db, stubEntitlements{entitled: false})
	svc.ResultCap = 4
	svc.FreeResultCap = 3

	set, _, err := svc.Search(context.Background(), 42, "matrix")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(set.Items) != 3 {
		t.Fatalf("got %d items, want the configured free cap of 3", len(set.Items))
	}
	if !set.Truncated {
		t.Fatalf("withheld matches must set Truncated")
	}
}
