package handlers

import (
	"net/http"

	"homestay/middleware"
	"homestay/utils"

	"github.com/gin-gonic/gin"
)

// AttachReviewHandler handles POST /api/reviews. The review is only legal on
// a completed, not-yet-reviewed booking owned by the caller.
func (hb *HandlerBundle) AttachReviewHandler(c *gin.Context) {
	p := middleware.GetPrincipal(c)
	if p == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "authentication required"})
		return
	}

	var req struct {
		BookingID string `json:"bookingId" binding:"required"`
		Rating    int    `json:"rating" binding:"required"`
		Comment   string `json:"comment" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	review, err := hb.Lifecycle.AttachReview(c.Request.Context(), *p, req.BookingID, req.Rating, req.Comment)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}

// RemoveReviewHandler handles DELETE /api/reviews/:id.
func (hb *HandlerBundle) RemoveReviewHandler(c *gin.Context) {
	p := middleware.GetPrincipal(c)
	if p == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "authentication required"})
		return
	}

	if err := hb.Lifecycle.RemoveReview(c.Request.Context(), *p, c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "review removed"})
}
