// Package events defines the inbound and outbound contracts between the
// core and the chat transport. The transport binding lives outside this
// repository; it maps its own update types into these tagged variants at
// the boundary and delivers the outbound intents the core emits. Keeping
// the contracts explicit here means no package below the dispatcher ever
// sees a transport-specific message object.
package events

// ChannelMessage is one broadcast post from the catalog channel.
type ChannelMessage struct {
	FromChannelID int64  `json:"from_channel_id"`
	IsForwarded   bool   `json:"is_forwarded"`
	Text          string `json:"text"`
}

// InlineQuery is a user's inline search request.
type InlineQuery struct {
	RequesterID   int64  `json:"requester_id"`
	RequesterName string `json:"requester_name,omitempty"`
	Query         string `json:"query"`
}

// OperatorChoice is the operator's answer to a feedback prompt. FeedbackID
// selects the pending incident. RequesterID echoes the prompt for transports
// that carry it; the stored incident's binding is authoritative.
type OperatorChoice struct {
	OperatorID  int64  `json:"operator_id"`
	RequesterID int64  `json:"requester_id,omitempty"`
	FeedbackID  string `json:"feedback_id"`
	Choice      string `json:"choice"`
}

// GrantCommand is an out-of-band admin action that opens (or re-opens) a
// premium window for a user.
type GrantCommand struct {
	IssuerID     int64 `json:"issuer_id"`
	TargetUserID int64 `json:"target_user_id"`
	Days         int   `json:"days"`
}

// SearchItem is one result row: the display tuple plus the verbatim
// announcement delivered when the user selects it.
type SearchItem struct {
	Title      string `json:"title"`
	Year       string `json:"year"`
	Language   string `json:"language"`
	SourceText string `json:"source_text"`
}

// SearchResultSet is the ordered, bounded answer to an inline query.
// Truncated reports that gating or the result cap withheld matches.
type SearchResultSet struct {
	Items     []SearchItem `json:"items"`
	Truncated bool         `json:"truncated"`
}

// NotifyRequest asks the transport to deliver text to one user. Delivery is
// a request/result exchange: the transport returns an error on failure so
// callers can surface it instead of firing and forgetting.
type NotifyRequest struct {
	TargetUserID int64  `json:"target_user_id"`
	Text         string `json:"text"`
}

// FeedbackPrompt asks the transport to present the operator with the fixed
// choice tokens for one pending feedback incident.
type FeedbackPrompt struct {
	TargetOperatorID int64    `json:"target_operator_id"`
	FeedbackID       string   `json:"feedback_id"`
	RequesterID      int64    `json:"requester_id"`
	Query            string   `json:"query"`
	Choices          []string `json:"choices"`
}
