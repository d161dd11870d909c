package handlers

import (
	"net/http"

	"homestay/middleware"
	"homestay/models"
	"homestay/utils"

	"github.com/gin-gonic/gin"
)

// GetMyProfileHandler handles GET /api/profiles/me.
func (hb *HandlerBundle) GetMyProfileHandler(c *gin.Context) {
	p := middleware.GetPrincipal(c)
	if p == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "authentication required"})
		return
	}

	profile, err := hb.Profiles.GetByUserID(c.Request.Context(), p.ID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateMyProfileHandler handles PUT /api/profiles/me. Only the editable
// fields are taken from the body; identity fields stay untouched.
func (hb *HandlerBundle) UpdateMyProfileHandler(c *gin.Context) {
	p := middleware.GetPrincipal(c)
	if p == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "authentication required"})
		return
	}

	var req struct {
		Name        string         `json:"name"`
		Image       string         `json:"image"`
		Bio         string         `json:"bio"`
		Preferences map[string]any `json:"preferences"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	profile, err := hb.Profiles.GetByUserID(c.Request.Context(), p.ID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	if req.Name != "" {
		profile.Name = req.Name
	}
	profile.Image = req.Image
	profile.Bio = req.Bio
	if req.Preferences != nil {
		profile.Preferences = req.Preferences
	}

	if err := hb.Profiles.Update(c.Request.Context(), profile); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// ListFavoritesHandler handles GET /api/favorites.
func (hb *HandlerBundle) ListFavoritesHandler(c *gin.Context) {
	p := middleware.GetPrincipal(c)
	if p == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "authentication required"})
		return
	}

	favorites, err := hb.Favorites.ListByUser(c.Request.Context(), p.ID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if favorites == nil {
		favorites = []models.Favorite{}
	}
	c.JSON(http.StatusOK, favorites)
}
