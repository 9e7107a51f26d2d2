// Package services – CatalogService
//
// This file implements the CatalogService, which turns channel broadcasts
// into catalog rows. It enforces the ingestion preconditions (message must
// come from the designated channel and must not be forwarded), runs the
// announcement parser, and performs the atomic insert-if-absent write.
// Parse failures and duplicates are resolved locally as skips, never
// surfaced as errors; only store failures propagate.
package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/tbourn/go-moviebot-backend/internal/domain"
	"github.com/tbourn/go-moviebot-backend/internal/events"
	"github.com/tbourn/go-moviebot-backend/internal/parse"
	"github.com/tbourn/go-moviebot-backend/internal/repo"
)

// SkipReason explains why an ingested message produced no catalog row.
type SkipReason string

// Skip reasons reported by Ingest.
const (
	SkipNone        SkipReason = ""
	SkipNotChannel  SkipReason = "not-from-channel"
	SkipForwarded   SkipReason = "is-forwarded"
	SkipParseFailed SkipReason = "parse-failed"
	SkipDuplicate   SkipReason = "duplicate-key"
)

// IngestResult reports the outcome of one channel message. Inserted and
// Skipped are mutually exclusive; Movie is set only when Inserted.
type IngestResult struct {
	Inserted bool
	Skipped  SkipReason
	Movie    *domain.Movie
}

// CatalogService ingests channel announcements into the movie catalog.
type CatalogService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// ChannelID is the only broadcast source whose messages are ingested.
	ChannelID int64
}

// Ingest processes one channel message. At most one row is inserted; any
// precondition or parse miss yields a skip with its reason. Redelivery of
// the same announcement is safe: the store's unique (title, year) index
// makes the insert idempotent, and a losing concurrent writer observes a
// duplicate skip rather than an error.
func (s *CatalogService) Ingest(ctx context.Context, msg events.ChannelMessage) (IngestResult, error) {
	if msg.FromChannelID != s.ChannelID {
		return IngestResult{Skipped: SkipNotChannel}, nil
	}
	if msg.IsForwarded {
		// Forwarded content did not originate from the catalog owner.
		return IngestResult{Skipped: SkipForwarded}, nil
	}

	ann, ok := parse.Parse(msg.Text)
	if !ok {
		log.Debug().Str("text", msg.Text).Msg("announcement did not parse")
		return IngestResult{Skipped: SkipParseFailed}, nil
	}

	m, err := repo.CreateMovie(ctx, s.DB, ann.Title, ann.Year, ann.Language, msg.Text)
	if err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return IngestResult{Skipped: SkipDuplicate}, nil
		}
		return IngestResult{}, err
	}

	log.Info().Str("title", m.Title).Str("year", m.Year).Msg("movie catalogued")
	return IngestResult{Inserted: true, Movie: m}, nil
}
