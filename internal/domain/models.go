// Package domain defines the persistence models for the movie catalog,
// user accounts, and pending "not found" feedback. These types are mapped
// with GORM and form the core data layer of the bot backend.
package domain

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
)

// Movie represents one catalogued announcement. A movie is identified by
// the (title_key, year) pair: the first announcement seen for a given title
// and year wins, and later duplicates are ignored rather than merged.
//
// Fields:
//   - ID: monotonic primary key; search results are returned in ID order,
//     which is insertion order.
//   - Title: trimmed title exactly as first seen (case preserved).
//   - TitleKey: case-folded form of Title, part of the unique key and the
//     column substring searches run against.
//   - Year: the 4-digit year token, kept as text (never parsed).
//   - Language: the single token following the year in the announcement.
//   - SourceText: the full original announcement, delivered verbatim when a
//     user selects the result.
//   - CreatedAt: ingestion timestamp.
type Movie struct {
	ID         uint      `json:"id"          gorm:"primaryKey;autoIncrement"`
	Title      string    `json:"title"       gorm:"type:varchar(255);not null"`
	TitleKey   string    `json:"-"           gorm:"type:varchar(255);not null;uniqueIndex:ux_movies_title_year,priority:1"`
	Year       string    `json:"year"        gorm:"type:char(4);not null;uniqueIndex:ux_movies_title_year,priority:2"`
	Language   string    `json:"language"    gorm:"type:varchar(64);not null"`
	SourceText string    `json:"source_text" gorm:"type:text;not null"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName returns the database table name for Movie.
func (Movie) TableName() string { return "movies" }

// User represents an end user observed by the bot. Rows are created on the
// first interaction (any command or query) and never deleted.
//
// Premium state is mutated only by an explicit grant: IsPremium together
// with PremiumExpiresAt describe the premium window, and expiry is evaluated
// lazily at read time rather than swept by a background job. IsPremium set
// with a nil PremiumExpiresAt is a valid but inert state: such a user is not
// currently entitled.
//
// Fields:
//   - ID: external chat identity, immutable primary key.
//   - DisplayName: best-effort name captured at first sight; may be empty.
//   - JoinedAt: when the user was first observed.
//   - IsPremium / PremiumExpiresAt: the premium window, see above.
type User struct {
	ID               int64      `json:"id"                 gorm:"primaryKey"`
	DisplayName      string     `json:"display_name"       gorm:"type:varchar(128)"`
	JoinedAt         time.Time  `json:"joined_at"`
	IsPremium        bool       `json:"is_premium"         gorm:"not null;default:false"`
	PremiumExpiresAt *time.Time `json:"premium_expires_at"`
}

// TableName returns the database table name for User.
func (User) TableName() string { return "users" }

// Feedback lifecycle states.
const (
	FeedbackPending  = "pending"
	FeedbackResolved = "resolved"
)

// Feedback is one pending "nothing matched" incident awaiting an operator
// choice. It binds the original requester so the canned response reaches
// them and not the operator, and it is persisted so operator callbacks
// survive a restart.
//
// Fields:
//   - ID: UUID primary key, echoed in the operator prompt and callback.
//   - RequesterID: the user whose search came up empty.
//   - Query: the query text that matched nothing.
//   - Status: "pending" until the designated operator resolves it.
//   - Choice: the operator's choice token, set on resolution.
//   - CreatedAt / ResolvedAt: lifecycle timestamps.
type Feedback struct {
	ID          string     `json:"id"           gorm:"type:char(36);primaryKey"`
	RequesterID int64      `json:"requester_id" gorm:"not null;index"`
	Query       string     `json:"query"        gorm:"type:varchar(512);not null"`
	Status      string     `json:"status"       gorm:"type:varchar(16);not null;default:'pending';check:status IN ('pending','resolved')"`
	Choice      string     `json:"choice"       gorm:"type:varchar(16)"`
	CreatedAt   time.Time  `json:"created_at"`
	ResolvedAt  *time.Time `json:"resolved_at"`
}

// TableName returns the database table name for Feedback.
func (Feedback) TableName() string { return "feedback" }

// TitleKey normalizes a title for identity comparison: whitespace trimmed,
// Unicode case-folded. Every place that compares titles (ingest dedupe,
// search, delete-by-title) must go through this one function.
// A fresh Caser per call: cases.Caser is stateful and not safe to share
// across goroutines.
func TitleKey(title string) string {
	return cases.Fold().String(strings.TrimSpace(title))
}
