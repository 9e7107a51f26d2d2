// Package handlers provides HTTP handler implementations for the admin and
// keep-alive API. Handlers are transport-thin: they validate input,
// delegate to the dispatcher, and translate service errors into HTTP
// results. The inline-query and channel transports do not pass through
// here; this surface exists for operators and for keeping the process
// reachable.
package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-moviebot-backend/internal/bot"
)

// Handlers bundles the HTTP endpoints with their dependencies.
type Handlers struct {
	disp *bot.Dispatcher
	// operatorID guards the admin endpoints.
	operatorID int64
	// channelID is stamped on manually backfilled announcements so they
	// pass the same ingestion preconditions as live broadcasts.
	channelID int64
}

// New constructs the handler set.
func New(disp *bot.Dispatcher, operatorID, channelID int64) *Handlers {
	return &Handlers{disp: disp, operatorID: operatorID, channelID: channelID}
}

// callerID resolves the acting user from the X-User-ID header. Zero means
// no identity was supplied.
func callerID(c *gin.Context) int64 {
	h := strings.TrimSpace(c.GetHeader("X-User-ID"))
	if h == "" {
		return 0
	}
	id, err := strconv.ParseInt(h, 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// isOperator reports whether the caller identified itself as the
// designated operator.
func (h *Handlers) isOperator(c *gin.Context) bool {
	return callerID(c) == h.operatorID
}
