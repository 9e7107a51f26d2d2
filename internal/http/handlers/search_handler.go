// Search HTTP handlers.
//
// This file exposes the catalog lookup endpoint:
//   - GET /search?q=  (entitlement-gated title search)
//
// The endpoint mirrors the inline-query path exactly, including feedback
// workflow triggering on a genuine miss, so operators can reproduce user
// searches over plain HTTP.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-moviebot-backend/internal/events"
)

// Search godoc
// @ID          searchCatalog
// @Summary     Search the movie catalog
// @Description Case-insensitive substring search over titles, capped and gated by the caller's entitlement.
// @Tags        Search
// @Produce     json
//
// @Param       X-User-ID  header  string  true  "Requester ID (numeric)" example(123456789)
// @Param       q          query   string  false "Query text"             example(incep)
//
// @Success     200  {object} events.SearchResultSet
// @Failure     400  {object} handlers.ErrorResponse "Missing requester identity"
// @Failure     500  {object} handlers.ErrorResponse "Search failed"
// @Router      /search [get]
func (h *Handlers) Search(c *gin.Context) {
	uid := callerID(c)
	if uid == 0 {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "X-User-ID header is required")
		return
	}

	result, err := h.disp.HandleInlineQuery(c.Request.Context(), events.InlineQuery{
		RequesterID: uid,
		Query:       c.Query("q"),
	})
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeSearchFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, result)
}
