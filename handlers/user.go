package handlers

import (
	"net/http"

	"homestay/middleware"
	"homestay/utils"

	"github.com/gin-gonic/gin"
)

// GetUserByIDHandler handles GET /api/users/:id.
func (hb *HandlerBundle) GetUserByIDHandler(c *gin.Context) {
	usr, err := hb.UserService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, usr)
}

// ListUsersHandler handles GET /api/admin/users.
func (hb *HandlerBundle) ListUsersHandler(c *gin.Context) {
	limit, skip := pageParams(c)
	page, err := hb.UserService.List(c.Request.Context(), limit, skip)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// DeleteUserHandler handles DELETE /api/users/:id. Removing an account
// cascades through bookings, reviews, profile and favorites.
func (hb *HandlerBundle) DeleteUserHandler(c *gin.Context) {
	p := middleware.GetPrincipal(c)
	if p == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "authentication required"})
		return
	}

	if err := hb.UserService.Delete(c.Request.Context(), *p, c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

// ToggleFavoriteHandler handles POST /api/favorites/toggle.
func (hb *HandlerBundle) ToggleFavoriteHandler(c *gin.Context) {
	p := middleware.GetPrincipal(c)
	if p == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "authentication required"})
		return
	}

	var req struct {
		ListingID string `json:"listingId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	saved, err := hb.UserService.ToggleFavorite(c.Request.Context(), *p, req.ListingID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved": saved})
}
