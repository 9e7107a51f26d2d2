// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Feedback
// model, which records "nothing matched" incidents awaiting an operator
// choice.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tbourn/go-moviebot-backend/internal/domain"
)

// CreateFeedback inserts a pending feedback row bound to the requester whose
// search came up empty. The generated UUID is carried through the operator
// prompt and back in the resolution callback.
func CreateFeedback(ctx context.Context, db *gorm.DB, requesterID int64, query string) (*domain.Feedback, error) {
	fb := &domain.Feedback{
		ID:          uuid.NewString(),
		RequesterID: requesterID,
		Query:       query,
		Status:      domain.FeedbackPending,
		CreatedAt:   time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(fb).Error; err != nil {
		return nil, err
	}
	return fb, nil
}

// GetFeedback fetches a feedback row by ID, or ErrNotFound if missing.
func GetFeedback(ctx context.Context, db *gorm.DB, id string) (*domain.Feedback, error) {
	var fb domain.Feedback
	if err := db.WithContext(ctx).First(&fb, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &fb, nil
}

// ResolveFeedback transitions a pending feedback row to resolved, recording
// the operator's choice token. The status predicate makes the transition
// atomic: only one resolver can win, and a second attempt (or an attempt on
// a missing row) returns ErrNotFound via the zero rows-affected guard.
func ResolveFeedback(ctx context.Context, db *gorm.DB, id, choice string, now time.Time) error {
	res := db.WithContext(ctx).
		Model(&domain.Feedback{}).
		Where("id = ? AND status = ?", id, domain.FeedbackPending).
		Updates(map[string]any{
			"status":      domain.FeedbackResolved,
			"choice":      choice,
			"resolved_at": now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
