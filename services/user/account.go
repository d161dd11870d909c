package user

import (
	"context"
	"regexp"
	"strings"

	"homestay/models"
	"homestay/policy"
	"homestay/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Register creates a new account. Email uniqueness is enforced by the
// persistence layer; a profile is auto-created when none exists yet.
func (s *DefaultUserService) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	if !emailRegex.MatchString(input.Email) {
		return nil, utils.NewValidationError("Please enter a valid email address")
	}
	if len(input.Password) < 6 {
		return nil, utils.NewValidationError("Password must be at least 6 characters long")
	}
	role := input.Role
	if role == "" {
		role = models.RoleCustomer
	}
	if role != models.RoleCustomer && role != models.RoleProvider && role != models.RoleAdmin {
		return nil, utils.NewValidationError("invalid role")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:           uuid.New().String(),
		Name:         input.Name,
		Email:        strings.ToLower(input.Email),
		PasswordHash: string(hash),
		Role:         role,
		Status:       true,
		Image:        input.Image,
	}
	if err := s.Repo.Create(ctx, user); err != nil {
		return nil, err
	}

	if _, err := s.Profiles.GetByUserID(ctx, user.ID); utils.IsCode(err, utils.CodeNotFound) {
		profile := &models.Profile{
			ID:     uuid.New().String(),
			UserID: user.ID,
			Name:   user.Name,
			Image:  user.Image,
		}
		if err := s.Profiles.Create(ctx, profile); err != nil {
			utils.GetLogger().Warn("failed to auto-create profile",
				zap.String("userId", user.ID), zap.Error(err))
		}
	}

	utils.GetLogger().Info("user registered", zap.String("userId", user.ID), zap.String("role", user.Role))
	return user, nil
}

func (s *DefaultUserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultUserService) List(ctx context.Context, limit, skip int64) (*models.Page[models.User], error) {
	users, total, err := s.Repo.Find(ctx, bson.M{}, limit, skip)
	if err != nil {
		return nil, err
	}
	return &models.Page[models.User]{Total: total, Limit: limit, Skip: skip, Data: users}, nil
}

// Delete removes the account and cascades: bookings where the user is
// customer or provider, reviews they authored, their profile and favorites.
// Steps are sequential with no rollback on partial failure.
func (s *DefaultUserService) Delete(ctx context.Context, actor policy.Principal, id string) error {
	if actor.Role != models.RoleAdmin && actor.ID != id {
		return utils.NewNotAuthorizedError("you may only delete your own account")
	}

	if err := s.Lifecycle.CascadeDeleteUser(ctx, id); err != nil {
		return err
	}
	if err := s.Profiles.DeleteByUserID(ctx, id); err != nil {
		return err
	}
	if _, err := s.Favorites.DeleteByUser(ctx, id); err != nil {
		return err
	}
	return s.Repo.Delete(ctx, id)
}

// ToggleFavorite saves a listing for the caller, or removes it when already
// saved. Returns true when the listing ended up saved.
func (s *DefaultUserService) ToggleFavorite(ctx context.Context, actor policy.Principal, listingID string) (bool, error) {
	existing, err := s.Favorites.GetByUserAndListing(ctx, actor.ID, listingID)
	if err == nil {
		if err := s.Favorites.Delete(ctx, existing.ID); err != nil {
			return false, err
		}
		return false, nil
	}
	if !utils.IsCode(err, utils.CodeNotFound) {
		return false, err
	}

	favorite := &models.Favorite{
		ID:        uuid.New().String(),
		UserID:    actor.ID,
		ListingID: listingID,
	}
	if err := s.Favorites.Create(ctx, favorite); err != nil {
		return false, err
	}
	return true, nil
}
