package routes

import (
	"net/http"
	"time"

	"homestay/handlers"
	"homestay/middleware"
	"homestay/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers signup, login and account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("", hb.RegisterUserHandler)
		api.POST("/login", hb.AuthenticateUserHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuth(false))
		api.GET("/:id", hb.GetUserByIDHandler)
		api.DELETE("/:id", hb.DeleteUserHandler)
		api.POST("/revoke", hb.RevokeAuthTokenHandler)
	}
}

// RegisterListingRoutes registers the listing catalog. Reads are public,
// writes require a provider account.
func RegisterListingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/listings")
	{
		api.GET("", hb.FindListingsHandler)
		api.GET("/:id", hb.GetListingHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuth(false))
		protected.POST("", hb.CreateListingHandler)
		protected.PUT("/:id", hb.UpdateListingHandler)
		protected.DELETE("/:id", hb.DeleteListingHandler)
	}
}

// RegisterBookingRoutes sets up the booking lifecycle endpoints. The list
// endpoint takes optional authentication so anonymous callers can still run
// the public ratings-display queries.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/bookings")
	{
		bookingGroup.GET("", middleware.JWTAuth(true), hb.FindBookingsHandler)

		protected := bookingGroup.Group("")
		protected.Use(middleware.JWTAuth(false))
		protected.GET("/:id", hb.GetBookingHandler)
		protected.POST("", hb.CreateBookingHandler)
		protected.PUT("/:id/accept", hb.AcceptBookingHandler)
		protected.PATCH("/:id/status", hb.AdvanceBookingHandler)
	}
}

// RegisterReviewRoutes registers review attach/remove endpoints.
func RegisterReviewRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reviews")
	{
		api.Use(middleware.JWTAuth(false))
		api.POST("", hb.AttachReviewHandler)
		api.DELETE("/:id", hb.RemoveReviewHandler)
	}
}

// RegisterStaffRoutes registers the provider roster endpoints.
func RegisterStaffRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/staffinfo")
	{
		api.Use(middleware.JWTAuth(false))
		api.GET("", hb.FindStaffHandler)
		api.POST("", hb.CreateStaffHandler)
		api.PUT("/:id", hb.UpdateStaffHandler)
		api.DELETE("/:id", hb.DeleteStaffHandler)
	}
}

// RegisterProfileRoutes registers the caller's profile and saved listings.
func RegisterProfileRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/profiles")
	{
		api.Use(middleware.JWTAuth(false))
		api.GET("/me", hb.GetMyProfileHandler)
		api.PUT("/me", hb.UpdateMyProfileHandler)
	}

	fav := r.Group("/api/favorites")
	{
		fav.Use(middleware.JWTAuth(false))
		fav.GET("", hb.ListFavoritesHandler)
		fav.POST("/toggle", hb.ToggleFavoriteHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuth(false), middleware.RequireRole(models.RoleAdmin))
		adminGroup.GET("/users", hb.ListUsersHandler)
		adminGroup.GET("/audits", hb.ListAuditsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterUserRoutes(r, hb)
	RegisterListingRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterReviewRoutes(r, hb)
	RegisterStaffRoutes(r, hb)
	RegisterProfileRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
