package services

import (
	"context"
	"fmt"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tbourn/go-moviebot-backend/internal/events"
	"github.com/tbourn/go-moviebot-backend/internal/repo"
)

// newTestDB opens an isolated in-memory SQLite database with the catalog
// schema applied.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:svctest_%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := repo.AutoMigrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

// stubNotifier records outbound intents and can be told to fail either leg.
type stubNotifier struct {
	notifies  []events.NotifyRequest
	prompts   []events.FeedbackPrompt
	notifyErr error
	promptErr error
}

func (s *stubNotifier) Notify(_ context.Context, req events.NotifyRequest) error {
	s.notifies = append(s.notifies, req)
	return s.notifyErr
}

func (s *stubNotifier) PromptOperator(_ context.Context, p events.FeedbackPrompt) error {
	s.prompts = append(s.prompts, p)
	return s.promptErr
}

// stubEntitlements answers entitlement checks with a fixed verdict.
type stubEntitlements struct {
	entitled bool
	err      error
}

func (s stubEntitlements) IsEntitled(context.Context, int64) (bool, error) {
	return s.entitled, s.err
}
