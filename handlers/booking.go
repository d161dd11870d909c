package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"homestay/middleware"
	"homestay/models"
	"homestay/policy"
	"homestay/services/booking"
	"homestay/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// bookingFilter builds the Mongo filter from the supported query params.
func bookingFilter(c *gin.Context) bson.M {
	filter := bson.M{}
	if v := c.Query("listingId"); v != "" {
		filter["listingId"] = v
	}
	if v := c.Query("status"); v != "" {
		filter["status"] = v
	}
	if v := c.Query("customerId"); v != "" {
		filter["customerId"] = v
	}
	if v := c.Query("providerId"); v != "" {
		filter["providerId"] = v
	}
	if v := c.Query("rating"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filter["rating"] = n
		}
	}
	return filter
}

// bookingProjection parses the $select parameter into a field projection.
func bookingProjection(c *gin.Context) bson.M {
	sel := c.Query("$select")
	if sel == "" {
		return nil
	}
	projection := bson.M{}
	for _, field := range strings.Split(sel, ",") {
		if field = strings.TrimSpace(field); field != "" {
			projection[field] = 1
		}
	}
	return projection
}

// FindBookingsHandler handles GET /api/bookings. Authenticated callers see
// their own bookings per the policy table; anonymous callers are limited to
// the two public ratings-display query shapes.
func (hb *HandlerBundle) FindBookingsHandler(c *gin.Context) {
	p := middleware.GetPrincipal(c)
	filter := bookingFilter(c)
	projection := bookingProjection(c)

	scoped, err := policy.Evaluate("bookings", p, policy.OpFind, filter, projection)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	limit, skip := pageParams(c)
	bookings, total, err := hb.Bookings.Find(c.Request.Context(), scoped, projection, limit, skip)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.Page[models.Booking]{Total: total, Limit: limit, Skip: skip, Data: bookings})
}

// GetBookingHandler handles GET /api/bookings/:id.
func (hb *HandlerBundle) GetBookingHandler(c *gin.Context) {
	p := middleware.GetPrincipal(c)
	if p == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "authentication required"})
		return
	}

	b, err := hb.Lifecycle.GetByID(c.Request.Context(), *p, c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// CreateBookingHandler handles POST /api/bookings.
func (hb *HandlerBundle) CreateBookingHandler(c *gin.Context) {
	p := middleware.GetPrincipal(c)
	if p == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "authentication required"})
		return
	}

	var input booking.CreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	created, err := hb.Lifecycle.Create(c.Request.Context(), *p, input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// AcceptBookingHandler handles PUT /api/bookings/:id/accept.
func (hb *HandlerBundle) AcceptBookingHandler(c *gin.Context) {
	p := middleware.GetPrincipal(c)
	if p == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "authentication required"})
		return
	}

	var input booking.AcceptInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	updated, err := hb.Lifecycle.Accept(c.Request.Context(), *p, c.Param("id"), input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// AdvanceBookingHandler handles PATCH /api/bookings/:id/status.
func (hb *HandlerBundle) AdvanceBookingHandler(c *gin.Context) {
	p := middleware.GetPrincipal(c)
	if p == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "authentication required"})
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	updated, err := hb.Lifecycle.Advance(c.Request.Context(), *p, c.Param("id"), req.Status)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}
