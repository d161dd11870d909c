package handlers

import (
	"strconv"

	bookingRepo "homestay/database/repository/booking"
	favoriteRepo "homestay/database/repository/favorite"
	profileRepo "homestay/database/repository/profile"
	"homestay/services/audit"
	"homestay/services/booking"
	"homestay/services/listing"
	"homestay/services/staff"
	"homestay/services/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle aggregates the services the route groups need.
type HandlerBundle struct {
	UserService    user.UserService
	ListingService listing.ListingService
	StaffService   staff.StaffService
	Lifecycle      booking.LifecycleService
	AuditRecorder  audit.Recorder

	// Direct repo access for policy-scoped list queries.
	Bookings  bookingRepo.BookingRepository
	Profiles  profileRepo.ProfileRepository
	Favorites favoriteRepo.FavoriteRepository
}

// pageParams reads the pagination envelope parameters.
func pageParams(c *gin.Context) (limit, skip int64) {
	limit = 50
	if v, err := strconv.ParseInt(c.DefaultQuery("$limit", c.Query("limit")), 10, 64); err == nil && v >= 0 {
		limit = v
	}
	if v, err := strconv.ParseInt(c.DefaultQuery("$skip", c.Query("skip")), 10, 64); err == nil && v >= 0 {
		skip = v
	}
	return limit, skip
}
