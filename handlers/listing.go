package handlers

import (
	"net/http"

	"homestay/middleware"
	"homestay/services/listing"
	"homestay/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// FindListingsHandler handles GET /api/listings. Listings are public.
func (hb *HandlerBundle) FindListingsHandler(c *gin.Context) {
	filter := bson.M{}
	if v := c.Query("category"); v != "" {
		filter["category"] = v
	}
	if v := c.Query("providerId"); v != "" {
		filter["providerId"] = v
	}
	if v := c.Query("location"); v != "" {
		filter["location"] = v
	}

	limit, skip := pageParams(c)
	page, err := hb.ListingService.Find(c.Request.Context(), filter, limit, skip)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// GetListingHandler handles GET /api/listings/:id.
func (hb *HandlerBundle) GetListingHandler(c *gin.Context) {
	l, err := hb.ListingService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, l)
}

// CreateListingHandler handles POST /api/listings.
func (hb *HandlerBundle) CreateListingHandler(c *gin.Context) {
	p := middleware.GetPrincipal(c)
	if p == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "authentication required"})
		return
	}

	var input listing.CreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	created, err := hb.ListingService.Create(c.Request.Context(), *p, input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateListingHandler handles PUT /api/listings/:id.
func (hb *HandlerBundle) UpdateListingHandler(c *gin.Context) {
	p := middleware.GetPrincipal(c)
	if p == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "authentication required"})
		return
	}

	var input listing.CreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	updated, err := hb.ListingService.Update(c.Request.Context(), *p, c.Param("id"), input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteListingHandler handles DELETE /api/listings/:id.
func (hb *HandlerBundle) DeleteListingHandler(c *gin.Context) {
	p := middleware.GetPrincipal(c)
	if p == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "authentication required"})
		return
	}

	if err := hb.ListingService.Delete(c.Request.Context(), *p, c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Listing deleted"})
}
