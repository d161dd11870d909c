package handlers

import (
	"net/http"

	"homestay/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// ListAuditsHandler handles GET /api/admin/audits, the activity feed.
// Reserved for admins at the route level.
func (hb *HandlerBundle) ListAuditsHandler(c *gin.Context) {
	filter := bson.M{}
	if v := c.Query("bookingId"); v != "" {
		filter["bookingId"] = v
	}
	if v := c.Query("action"); v != "" {
		filter["action"] = v
	}
	if v := c.Query("userId"); v != "" {
		filter["userId"] = v
	}

	limit, skip := pageParams(c)
	page, err := hb.AuditRecorder.ListRecent(c.Request.Context(), filter, limit, skip)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}
