// Package bot – outbound delivery stand-in.
//
// The real chat transport implements services.Notifier outside this
// repository. LogNotifier is the default wired in when no transport is
// attached: it records every outbound intent in the structured log so the
// core stays fully exercisable (and debuggable) in isolation.
package bot

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/tbourn/go-moviebot-backend/internal/events"
)

// LogNotifier logs outbound intents instead of delivering them.
type LogNotifier struct{}

// Notify records a user notification intent.
func (LogNotifier) Notify(_ context.Context, req events.NotifyRequest) error {
	log.Info().
		Int64("target_user_id", req.TargetUserID).
		Str("text", req.Text).
		Msg("notify intent")
	return nil
}

// PromptOperator records a feedback prompt intent.
func (LogNotifier) PromptOperator(_ context.Context, p events.FeedbackPrompt) error {
	log.Info().
		Int64("target_operator_id", p.TargetOperatorID).
		Str("feedback_id", p.FeedbackID).
		Int64("requester_id", p.RequesterID).
		Str("query", p.Query).
		Strs("choices", p.Choices).
		Msg("feedback prompt intent")
	return nil
}
