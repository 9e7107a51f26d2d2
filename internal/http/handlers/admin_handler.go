// Admin HTTP handlers.
//
// This file exposes the operator-only maintenance endpoints:
//   - POST   /admin/announcements   (backfill an announcement into the catalog)
//   - POST   /admin/grants          (open a premium window for a user)
//   - POST   /admin/feedback/{id}   (resolve a pending feedback incident)
//   - GET    /admin/stats           (user / premium / movie counts)
//   - DELETE /admin/movies/{title}  (remove a title, any year)
//   - DELETE /admin/movies          (wipe the catalog)
//
// Every endpoint requires the caller to identify as the designated
// operator via X-User-ID; anything else is rejected with 403 before any
// state is touched.
package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-moviebot-backend/internal/events"
	"github.com/tbourn/go-moviebot-backend/internal/services"
)

// IngestRequest is the JSON payload for backfilling one announcement.
type IngestRequest struct {
	// Text is the raw announcement line, e.g. "Inception 2010 English https://…".
	Text string `json:"text" binding:"required" example:"Inception 2010 English https://t.me/x"`
}

// IngestResponse reports the ingestion outcome for a backfilled announcement.
type IngestResponse struct {
	Inserted bool   `json:"inserted"`
	Skipped  string `json:"skipped,omitempty" example:"duplicate-key"`
}

// IngestAnnouncement godoc
// @ID          ingestAnnouncement
// @Summary     Backfill one announcement
// @Description Runs the raw text through the same parser and dedupe as a live channel broadcast.
// @Tags        Admin
// @Accept      json
// @Produce     json
//
// @Param       X-User-ID  header  string  true "Operator ID (numeric)" example(987654321)
// @Param       body       body    handlers.IngestRequest true "Announcement text"
//
// @Success     200  {object} handlers.IngestResponse
// @Failure     400  {object} handlers.ErrorResponse "Invalid payload"
// @Failure     403  {object} handlers.ErrorResponse "Not the operator"
// @Failure     500  {object} handlers.ErrorResponse "Store failure"
// @Router      /admin/announcements [post]
func (h *Handlers) IngestAnnouncement(c *gin.Context) {
	if !h.isOperator(c) {
		fail(c, http.StatusForbidden, ErrCodeForbidden, "operator only")
		return
	}
	var req IngestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "text is required")
		return
	}

	res, err := h.disp.Catalog.Ingest(c.Request.Context(), events.ChannelMessage{
		FromChannelID: h.channelID,
		Text:          req.Text,
	})
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeIngestFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, IngestResponse{Inserted: res.Inserted, Skipped: string(res.Skipped)})
}

// GrantRequest is the JSON payload for opening a premium window.
type GrantRequest struct {
	UserID int64 `json:"user_id" binding:"required" example:"123456789"`
	Days   int   `json:"days" binding:"required" example:"7"`
}

// GrantResponse reports the expiry of the freshly opened window.
type GrantResponse struct {
	UserID    int64     `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// GrantPremium godoc
// @ID          grantPremium
// @Summary     Grant a premium window
// @Description Opens (or re-opens, measured from now) a premium window for the user.
// @Tags        Admin
// @Accept      json
// @Produce     json
//
// @Param       X-User-ID  header  string  true "Operator ID (numeric)" example(987654321)
// @Param       body       body    handlers.GrantRequest true "Grant payload"
//
// @Success     200  {object} handlers.GrantResponse
// @Failure     400  {object} handlers.ErrorResponse "Invalid payload or duration"
// @Failure     403  {object} handlers.ErrorResponse "Not the operator"
// @Failure     500  {object} handlers.ErrorResponse "Store failure"
// @Router      /admin/grants [post]
func (h *Handlers) GrantPremium(c *gin.Context) {
	var req GrantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "user_id and days are required")
		return
	}

	expiry, err := h.disp.HandleGrant(c.Request.Context(), events.GrantCommand{
		IssuerID:     callerID(c),
		TargetUserID: req.UserID,
		Days:         req.Days,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotOperator):
			fail(c, http.StatusForbidden, ErrCodeForbidden, "operator only")
		case errors.Is(err, services.ErrInvalidGrant):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		default:
			fail(c, http.StatusInternalServerError, ErrCodeGrantFailed, err.Error())
		}
		return
	}
	ok(c, http.StatusOK, GrantResponse{UserID: req.UserID, ExpiresAt: expiry})
}

// ResolveFeedbackRequest is the JSON payload carrying the operator's choice.
type ResolveFeedbackRequest struct {
	// Choice is one of: wrong, notyet, exists, soon. Unknown tokens still
	// resolve the incident with a generic acknowledgment to the requester.
	Choice string `json:"choice" binding:"required" example:"notyet"`
}

// ResolveFeedback godoc
// @ID          resolveFeedback
// @Summary     Resolve a pending feedback incident
// @Description Maps the choice token to its canned reply and delivers it to the original requester.
// @Tags        Admin
// @Accept      json
// @Produce     json
//
// @Param       X-User-ID  header  string  true "Operator ID (numeric)" example(987654321)
// @Param       id         path    string  true "Feedback ID (UUID)"    format(uuid)
// @Param       body       body    handlers.ResolveFeedbackRequest true "Choice payload"
//
// @Success     204  {string} string "No Content"
// @Failure     400  {object} handlers.ErrorResponse "Invalid payload"
// @Failure     403  {object} handlers.ErrorResponse "Not the operator"
// @Failure     404  {object} handlers.ErrorResponse "Feedback not found"
// @Failure     409  {object} handlers.ErrorResponse "Already resolved"
// @Failure     502  {object} handlers.ErrorResponse "Resolved but reply undeliverable"
// @Router      /admin/feedback/{id} [post]
func (h *Handlers) ResolveFeedback(c *gin.Context) {
	var req ResolveFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "choice is required")
		return
	}

	err := h.disp.HandleOperatorChoice(c.Request.Context(), events.OperatorChoice{
		OperatorID: callerID(c),
		FeedbackID: c.Param("id"),
		Choice:     req.Choice,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotOperator):
			fail(c, http.StatusForbidden, ErrCodeForbidden, "operator only")
		case errors.Is(err, services.ErrFeedbackNotFound):
			fail(c, http.StatusNotFound, ErrCodeNotFound, "feedback not found")
		case errors.Is(err, services.ErrFeedbackResolved):
			fail(c, http.StatusConflict, ErrCodeConflict, "feedback already resolved")
		case errors.Is(err, services.ErrDeliveryFailed):
			// The incident is resolved; the operator must still see that
			// the requester never got the reply.
			fail(c, http.StatusBadGateway, ErrCodeDeliveryFailed, err.Error())
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}
	noContent(c)
}

// Stats godoc
// @ID          catalogStats
// @Summary     Catalog statistics
// @Description Current user, active-premium, and movie counts.
// @Tags        Admin
// @Produce     json
//
// @Param       X-User-ID  header  string  true "Operator ID (numeric)" example(987654321)
//
// @Success     200  {object} repo.Stats
// @Failure     403  {object} handlers.ErrorResponse "Not the operator"
// @Failure     500  {object} handlers.ErrorResponse "Store failure"
// @Router      /admin/stats [get]
func (h *Handlers) Stats(c *gin.Context) {
	stats, err := h.disp.HandleStats(c.Request.Context(), callerID(c))
	if err != nil {
		if errors.Is(err, services.ErrNotOperator) {
			fail(c, http.StatusForbidden, ErrCodeForbidden, "operator only")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, stats)
}

// DeleteResponse reports how many rows a delete removed.
type DeleteResponse struct {
	Deleted int64 `json:"deleted"`
}

// DeleteMovie godoc
// @ID          deleteMovie
// @Summary     Delete a movie by title
// @Description Removes every catalogued year of the exact (case-insensitive) title.
// @Tags        Admin
// @Produce     json
//
// @Param       X-User-ID  header  string  true "Operator ID (numeric)" example(987654321)
// @Param       title      path    string  true "Exact title"           example(Inception)
//
// @Success     200  {object} handlers.DeleteResponse
// @Failure     403  {object} handlers.ErrorResponse "Not the operator"
// @Failure     500  {object} handlers.ErrorResponse "Store failure"
// @Router      /admin/movies/{title} [delete]
func (h *Handlers) DeleteMovie(c *gin.Context) {
	if !h.isOperator(c) {
		fail(c, http.StatusForbidden, ErrCodeForbidden, "operator only")
		return
	}
	n, err := h.disp.DeleteMovie(c.Request.Context(), c.Param("title"))
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, DeleteResponse{Deleted: n})
}

// DeleteAllMovies godoc
// @ID          deleteAllMovies
// @Summary     Wipe the catalog
// @Description Removes every movie row.
// @Tags        Admin
// @Produce     json
//
// @Param       X-User-ID  header  string  true "Operator ID (numeric)" example(987654321)
//
// @Success     200  {object} handlers.DeleteResponse
// @Failure     403  {object} handlers.ErrorResponse "Not the operator"
// @Failure     500  {object} handlers.ErrorResponse "Store failure"
// @Router      /admin/movies [delete]
func (h *Handlers) DeleteAllMovies(c *gin.Context) {
	if !h.isOperator(c) {
		fail(c, http.StatusForbidden, ErrCodeForbidden, "operator only")
		return
	}
	n, err := h.disp.DeleteAllMovies(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, DeleteResponse{Deleted: n})
}
