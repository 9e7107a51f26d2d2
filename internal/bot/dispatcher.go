// Package bot maps inbound transport events onto the application services
// and emits outbound intents through the services.Notifier contract. It is
// the only layer that knows about all four inbound event shapes; everything
// below it works on plain arguments and domain types. The chat transport
// itself (long polling, webhooks, etc.) lives outside this repository and
// calls the Handle* methods with already-mapped events.
package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/tbourn/go-moviebot-backend/internal/events"
	"github.com/tbourn/go-moviebot-backend/internal/repo"
	"github.com/tbourn/go-moviebot-backend/internal/services"
)

// Plan is one purchasable premium window shown by the buy listing. Payment
// itself happens out of band; an operator applies the grant manually.
type Plan struct {
	Days  int
	Price string
}

// DefaultPlans mirrors the windows the operator actually sells.
var DefaultPlans = []Plan{
	{Days: 7, Price: "50৳"},
	{Days: 15, Price: "80৳"},
	{Days: 30, Price: "120৳"},
}

// Dispatcher routes inbound events to services. Every handler first makes
// sure the interacting user has an account row: accounts are created on
// first observed interaction and never deleted.
type Dispatcher struct {
	DB           *gorm.DB
	Catalog      *services.CatalogService
	Search       *services.SearchService
	Entitlements *services.EntitlementService
	Feedback     *services.FeedbackService
	Notifier     services.Notifier

	// OperatorID guards the admin-only commands (grant, stats).
	OperatorID int64
	// Plans is the buy listing; defaults to DefaultPlans when empty.
	Plans []Plan
	// PaymentAddress is shown alongside the plans.
	PaymentAddress string
}

// HandleChannelMessage ingests one broadcast post. Skips are logged and
// swallowed; only store failures come back as errors.
func (d *Dispatcher) HandleChannelMessage(ctx context.Context, msg events.ChannelMessage) error {
	res, err := d.Catalog.Ingest(ctx, msg)
	if err != nil {
		return err
	}
	if !res.Inserted && res.Skipped != services.SkipParseFailed {
		log.Debug().Str("reason", string(res.Skipped)).Msg("channel message skipped")
	}
	return nil
}

// HandleInlineQuery answers a user's search. On a genuine miss it opens the
// feedback workflow; the (possibly empty) result set is always returned so
// the transport can answer the query either way.
func (d *Dispatcher) HandleInlineQuery(ctx context.Context, q events.InlineQuery) (events.SearchResultSet, error) {
	if err := repo.EnsureUser(ctx, d.DB, q.RequesterID, q.RequesterName); err != nil {
		return events.SearchResultSet{}, err
	}

	result, noneFound, err := d.Search.Search(ctx, q.RequesterID, q.Query)
	if err != nil {
		return events.SearchResultSet{}, err
	}
	if noneFound {
		if _, err := d.Feedback.Open(ctx, q.RequesterID, strings.TrimSpace(q.Query)); err != nil {
			// The requester already has their empty answer; a prompt
			// delivery failure is an operator-side concern.
			log.Warn().Err(err).Int64("requester_id", q.RequesterID).Msg("could not open feedback")
		}
	}
	return result, nil
}

// HandleOperatorChoice applies the operator's answer to a pending feedback
// incident. The error (including a delivery failure after resolution) is
// returned so the transport can acknowledge the operator accordingly.
// The stored incident decides who receives the canned reply; an echoed
// RequesterID that disagrees with it is logged and ignored.
func (d *Dispatcher) HandleOperatorChoice(ctx context.Context, ev events.OperatorChoice) error {
	if ev.RequesterID != 0 {
		if fb, err := repo.GetFeedback(ctx, d.DB, ev.FeedbackID); err == nil && fb.RequesterID != ev.RequesterID {
			log.Warn().
				Str("feedback_id", ev.FeedbackID).
				Int64("echoed_requester_id", ev.RequesterID).
				Int64("stored_requester_id", fb.RequesterID).
				Msg("operator choice echoed a different requester")
		}
	}
	return d.Feedback.Resolve(ctx, ev.OperatorID, ev.FeedbackID, ev.Choice)
}

// HandleGrant applies an out-of-band premium grant. Only the operator may
// issue grants; usage errors are reported back to the issuer as a
// notification, not as a silent drop.
func (d *Dispatcher) HandleGrant(ctx context.Context, cmd events.GrantCommand) (time.Time, error) {
	if cmd.IssuerID != d.OperatorID {
		return time.Time{}, services.ErrNotOperator
	}
	expiry, err := d.Entitlements.Grant(ctx, cmd.TargetUserID, cmd.Days)
	if err != nil {
		if errors.Is(err, services.ErrInvalidGrant) {
			d.tryNotify(ctx, cmd.IssuerID, "Usage: /grant user_id days")
		}
		return time.Time{}, err
	}
	d.tryNotify(ctx, cmd.IssuerID, fmt.Sprintf("Granted until %s", expiry.Format(time.RFC3339)))
	return expiry, nil
}

// HandleBuy sends the asking user the current plan listing. Payment is out
// of band; nothing is persisted beyond the user row.
func (d *Dispatcher) HandleBuy(ctx context.Context, userID int64, displayName string) error {
	if err := repo.EnsureUser(ctx, d.DB, userID, displayName); err != nil {
		return err
	}

	plans := d.Plans
	if len(plans) == 0 {
		plans = DefaultPlans
	}
	var b strings.Builder
	b.WriteString("Premium plans:\n")
	for _, p := range plans {
		fmt.Fprintf(&b, "  %d days - %s\n", p.Days, p.Price)
	}
	if d.PaymentAddress != "" {
		fmt.Fprintf(&b, "Pay to %s and contact the operator.", d.PaymentAddress)
	}
	return d.Notifier.Notify(ctx, events.NotifyRequest{TargetUserID: userID, Text: b.String()})
}

// DeleteMovie removes every catalogued year of one title (normalized
// case-insensitively) and returns the number of rows removed.
func (d *Dispatcher) DeleteMovie(ctx context.Context, title string) (int64, error) {
	n, err := repo.DeleteMovieByTitle(ctx, d.DB, title)
	if err != nil {
		return 0, err
	}
	log.Info().Str("title", title).Int64("deleted", n).Msg("movie deleted")
	return n, nil
}

// DeleteAllMovies wipes the catalog and returns the number of rows removed.
func (d *Dispatcher) DeleteAllMovies(ctx context.Context) (int64, error) {
	n, err := repo.DeleteAllMovies(ctx, d.DB)
	if err != nil {
		return 0, err
	}
	log.Info().Int64("deleted", n).Msg("catalog wiped")
	return n, nil
}

// HandleStats reports catalog counts to the operator.
func (d *Dispatcher) HandleStats(ctx context.Context, issuerID int64) (repo.Stats, error) {
	if issuerID != d.OperatorID {
		return repo.Stats{}, services.ErrNotOperator
	}
	return repo.CatalogStats(ctx, d.DB, time.Now().UTC())
}

// tryNotify delivers best-effort operator acknowledgments; failures are
// logged since the issuer is a human who may simply retry.
func (d *Dispatcher) tryNotify(ctx context.Context, userID int64, text string) {
	if err := d.Notifier.Notify(ctx, events.NotifyRequest{TargetUserID: userID, Text: text}); err != nil {
		log.Warn().Err(err).Int64("user_id", userID).Msg("acknowledgment delivery failed")
	}
}
