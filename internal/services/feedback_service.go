// Package services – FeedbackService
//
// This file implements the FeedbackService, the two-state workflow behind
// failed searches. A miss opens a pending incident and prompts the single
// designated operator with four fixed choice tokens; the operator's pick
// maps to one canned message that is delivered to the original requester,
// after which the incident is resolved. Resolution is one-shot and
// operator-only: any other actor is rejected without a state change and
// without learning the canned-message mapping.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/tbourn/go-moviebot-backend/internal/domain"
	"github.com/tbourn/go-moviebot-backend/internal/events"
	"github.com/tbourn/go-moviebot-backend/internal/repo"
)

// Choice tokens the operator can answer a miss with.
const (
	ChoiceWrong  = "wrong"  // requester likely mistyped
	ChoiceNotYet = "notyet" // title not yet catalogued
	ChoiceExists = "exists" // catalogued; the search was imprecise
	ChoiceSoon   = "soon"   // catalogued to arrive shortly
)

// FeedbackChoices is the fixed token list presented in every prompt.
var FeedbackChoices = []string{ChoiceWrong, ChoiceNotYet, ChoiceExists, ChoiceSoon}

// cannedReplies maps a choice token to the message sent to the requester.
// The texts are kept in the catalog owner's language, as broadcast.
var cannedReplies = map[string]string{
	ChoiceWrong:  "আপনি ভুল নাম লিখেছেন। দয়া করে আবার চেষ্টা করুন।",
	ChoiceNotYet: "এই মুভিটি এখনো আমাদের ডাটাবেসে নেই।",
	ChoiceExists: "মুভিটি আপলোড আছে, একটু ভালোভাবে সার্চ করুন।",
	ChoiceSoon:   "এই মুভিটি শিগগিরই আপলোড করা হবে।",
}

// fallbackReply acknowledges an unrecognized choice token.
const fallbackReply = "ধন্যবাদ"

// Notifier is the outbound delivery contract the workflow depends on. Both
// methods are request/result exchanges: the transport reports failure so
// the workflow can surface it rather than fire and forget.
type Notifier interface {
	// Notify delivers text to one user.
	Notify(ctx context.Context, req events.NotifyRequest) error
	// PromptOperator presents the operator with a feedback prompt.
	PromptOperator(ctx context.Context, p events.FeedbackPrompt) error
}

// FeedbackService implements the miss-feedback workflow.
type FeedbackService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// OperatorID is the only identity allowed to resolve incidents.
	OperatorID int64
	// Notifier delivers prompts and canned replies.
	Notifier Notifier

	// Now returns the current time; tests override it.
	Now func() time.Time
}

// NewFeedbackService constructs a FeedbackService on the real clock.
func NewFeedbackService(db *gorm.DB, operatorID int64, n Notifier) *FeedbackService {
	return &FeedbackService{DB: db, OperatorID: operatorID, Notifier: n, Now: time.Now}
}

// Open records a pending incident for a search that matched nothing and
// prompts the operator with the fixed choice tokens. The stored incident
// binds the requester so the eventual canned reply reaches them.
func (s *FeedbackService) Open(ctx context.Context, requesterID int64, query string) (*domain.Feedback, error) {
	fb, err := repo.CreateFeedback(ctx, s.DB, requesterID, query)
	if err != nil {
		return nil, err
	}

	prompt := events.FeedbackPrompt{
		TargetOperatorID: s.OperatorID,
		FeedbackID:       fb.ID,
		RequesterID:      requesterID,
		Query:            query,
		Choices:          FeedbackChoices,
	}
	if err := s.Notifier.PromptOperator(ctx, prompt); err != nil {
		// The incident stays pending; the operator can still be prompted
		// again through a redelivered miss or manual inspection.
		log.Warn().Err(err).Str("feedback_id", fb.ID).Msg("operator prompt delivery failed")
		return fb, fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}
	return fb, nil
}

// Resolve transitions a pending incident to resolved on behalf of the
// operator and delivers the canned reply for the chosen token to the
// original requester.
//
// Semantics:
//   - Only the designated operator may resolve; anyone else gets
//     ErrNotOperator and the incident is untouched.
//   - A missing incident yields ErrFeedbackNotFound; an already resolved
//     one yields ErrFeedbackResolved.
//   - An unrecognized token still resolves, delivering a generic
//     acknowledgment.
//   - If delivery to the requester fails the incident is still resolved,
//     but ErrDeliveryFailed is returned so the operator sees the failure
//     distinctly from a success acknowledgment.
func (s *FeedbackService) Resolve(ctx context.Context, operatorID int64, feedbackID, choice string) error {
	if operatorID != s.OperatorID {
		return ErrNotOperator
	}

	fb, err := repo.GetFeedback(ctx, s.DB, feedbackID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrFeedbackNotFound
		}
		return err
	}
	if fb.Status == domain.FeedbackResolved {
		return ErrFeedbackResolved
	}

	if err := repo.ResolveFeedback(ctx, s.DB, feedbackID, choice, s.Now().UTC()); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			// Lost the race to a concurrent resolution.
			return ErrFeedbackResolved
		}
		return err
	}

	reply, ok := cannedReplies[choice]
	if !ok {
		reply = fallbackReply
	}
	if err := s.Notifier.Notify(ctx, events.NotifyRequest{TargetUserID: fb.RequesterID, Text: reply}); err != nil {
		log.Warn().Err(err).Int64("requester_id", fb.RequesterID).Msg("canned reply delivery failed")
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}
	return nil
}
