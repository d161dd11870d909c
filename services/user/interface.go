package user

import (
	"context"

	favoriteRepo "homestay/database/repository/favorite"
	profileRepo "homestay/database/repository/profile"
	userRepo "homestay/database/repository/user"
	"homestay/models"
	"homestay/policy"
	"homestay/services/booking"
)

// UserService manages platform accounts. Deleting a user cascades through
// the booking lifecycle service.
type UserService interface {
	Register(ctx context.Context, input RegisterInput) (*models.User, error)
	Authenticate(ctx context.Context, email, password string) (*AuthResponse, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	List(ctx context.Context, limit, skip int64) (*models.Page[models.User], error)
	Delete(ctx context.Context, actor policy.Principal, id string) error
	ToggleFavorite(ctx context.Context, actor policy.Principal, listingID string) (bool, error)
}

// RegisterInput carries a signup request.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Image    string `json:"image"`
}

// AuthResponse is returned on successful login.
type AuthResponse struct {
	ID    string `json:"id"`
	Token string `json:"token"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo      userRepo.UserRepository
	Profiles  profileRepo.ProfileRepository
	Favorites favoriteRepo.FavoriteRepository
	Lifecycle booking.LifecycleService
}
