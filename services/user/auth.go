package user

import (
	"context"
	"time"

	"homestay/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Authenticate verifies credentials and issues a signed token. The token's
// hash is cached in Redis so sessions can be revoked before expiry. Any
// credential failure yields the same generic error.
func (s *DefaultUserService) Authenticate(ctx context.Context, email, password string) (*AuthResponse, error) {
	account, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, utils.NewInvalidLoginError()
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, utils.NewInvalidLoginError()
	}

	token, err := utils.GenerateToken(account.ID, account.Role, utils.AuthTokenTTL)
	if err != nil {
		return nil, err
	}

	cacheKey := utils.AuthCachePrefix + account.ID
	if err := utils.GetAuthCacheClient().Set(ctx, cacheKey, utils.HashToken(token), utils.AuthTokenTTL).Err(); err != nil {
		return nil, err
	}

	now := time.Now()
	if err := s.Repo.UpdateFields(ctx, account.ID, bson.M{"lastLogin": now}); err != nil {
		utils.GetLogger().Warn("failed to stamp lastLogin",
			zap.String("userId", account.ID), zap.Error(err))
	}

	return &AuthResponse{
		ID:    account.ID,
		Token: token,
		Name:  account.Name,
		Email: account.Email,
		Role:  account.Role,
	}, nil
}
