// Analytics HTTP handler.
//
// This file exposes the public usage counter:
//   - GET /analytics  (all-time totals rendered on the landing page)
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Analytics godoc
// @ID          getAnalytics
// @Summary     Public usage counters
// @Description Returns all-time optimization and registered-email totals.
// @Tags        Analytics
// @Produce     json
//
// @Success     200  {object}  services.Stats
// @Failure     500  {object}  handlers.ErrorResponse  "Storage failure"
// @Router      /analytics [get]
func (h *Handlers) Analytics(c *gin.Context) {
	stats, err := h.statsSvc.Totals(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "Failed to fetch analytics")
		return
	}
	ok(c, http.StatusOK, stats)
}
