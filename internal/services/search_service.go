// Package services – SearchService
//
// This file implements the SearchService, the application-level component
// behind inline queries. It validates the query, retrieves substring
// matches from the catalog in insertion order, caps the candidate list,
// applies entitlement gating, and reports whether the miss-feedback
// workflow should fire.
//
// The gating order matters: the "nothing matched" signal is decided before
// gating truncation, so a non-entitled user whose matches were cut down is
// never mistaken for a miss. The feedback workflow fires only when zero
// records matched the substring test at all.
//
// Observability: Search is OpenTelemetry-instrumented; spans carry the
// requester and result counts.
package services

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/tbourn/go-moviebot-backend/internal/events"
	"github.com/tbourn/go-moviebot-backend/internal/repo"
)

// Default result bounds. ResultCap protects downstream transport limits;
// FreeResultCap is what a non-entitled requester sees.
const (
	DefaultResultCap     = 20
	DefaultFreeResultCap = 2
)

// Entitlements is the contract SearchService needs from the entitlement
// engine: a point-in-time answer for one user.
type Entitlements interface {
	IsEntitled(ctx context.Context, userID int64) (bool, error)
}

// SearchService retrieves catalog matches and gates result volume by the
// requester's entitlement.
type SearchService struct {
	// DB is the GORM handle used for catalog reads.
	DB *gorm.DB
	// Entitlements decides how many results the requester may see.
	Entitlements Entitlements

	// ResultCap bounds every response; FreeResultCap bounds non-entitled
	// requesters. Zero values fall back to the defaults above.
	ResultCap     int
	FreeResultCap int
}

// NewSearchService constructs a SearchService with the default caps.
func NewSearchService(db *gorm.DB, ent Entitlements) *SearchService {
	return &SearchService{
		DB:            db,
		Entitlements:  ent,
		ResultCap:     DefaultResultCap,
		FreeResultCap: DefaultFreeResultCap,
	}
}

// Search answers an inline query for requesterID.
//
// Behavior:
//   - An empty or whitespace-only query returns an empty set with no side
//     effect: absence of intent, not a miss.
//   - Matching is case-insensitive substring over titles; ordering is
//     insertion order (oldest catalogued first), with no relevance ranking.
//   - At most ResultCap items are returned; a non-entitled requester sees
//     at most FreeResultCap of them. Truncated is set when either bound
//     withheld matches.
//   - noneFound is true only when zero records matched before gating, and
//     signals the caller to open the feedback workflow.
func (s *SearchService) Search(ctx context.Context, requesterID int64, query string) (result events.SearchResultSet, noneFound bool, err error) {
	tr := otel.Tracer("services/SearchService")
	ctx, span := tr.Start(ctx, "Search",
		trace.WithAttributes(attribute.Int64("user.id", requesterID)),
	)
	defer span.End()

	query = strings.TrimSpace(query)
	if query == "" {
		return events.SearchResultSet{Items: []events.SearchItem{}}, false, nil
	}

	ceiling := s.ResultCap
	if ceiling <= 0 {
		ceiling = DefaultResultCap
	}
	freeCeiling := s.FreeResultCap
	if freeCeiling <= 0 {
		freeCeiling = DefaultFreeResultCap
	}

	// Fetch one row beyond the ceiling so cap withholding is observable:
	// Truncated must be set whether it was gating or the hard cap that
	// cut the list.
	matches, err := repo.SearchMovies(ctx, s.DB, query, ceiling+1)
	if err != nil {
		return events.SearchResultSet{}, false, err
	}
	span.SetAttributes(attribute.Int("search.matches", len(matches)))

	// Miss detection happens before gating: truncation below must never
	// turn a non-empty match into a feedback trigger.
	if len(matches) == 0 {
		return events.SearchResultSet{Items: []events.SearchItem{}}, true, nil
	}

	limit := ceiling
	entitled, err := s.Entitlements.IsEntitled(ctx, requesterID)
	if err != nil {
		return events.SearchResultSet{}, false, err
	}
	if !entitled {
		limit = freeCeiling
	}

	kept := matches
	if len(kept) > limit {
		kept = kept[:limit]
	}

	items := make([]events.SearchItem, 0, len(kept))
	for _, m := range kept {
		items = append(items, events.SearchItem{
			Title:      m.Title,
			Year:       m.Year,
			Language:   m.Language,
			SourceText: m.SourceText,
		})
	}
	span.SetAttributes(attribute.Int("search.returned", len(items)))

	return events.SearchResultSet{
		Items:     items,
		Truncated: len(items) < len(matches),
	}, false, nil
}
