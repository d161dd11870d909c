package handlers

import (
	"net/http"

	"homestay/middleware"
	"homestay/services/user"
	"homestay/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RegisterUserHandler handles POST /api/users (signup).
func (hb *HandlerBundle) RegisterUserHandler(c *gin.Context) {
	var input user.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	created, err := hb.UserService.Register(c.Request.Context(), input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// AuthenticateUserHandler handles POST /api/users/login.
func (hb *HandlerBundle) AuthenticateUserHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	resp, err := hb.UserService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RevokeAuthTokenHandler handles POST /api/users/revoke. It drops the
// caller's cached token hash, ending the session immediately.
func (hb *HandlerBundle) RevokeAuthTokenHandler(c *gin.Context) {
	p := middleware.GetPrincipal(c)
	if p == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "authentication required"})
		return
	}

	cacheKey := utils.AuthCachePrefix + p.ID
	if err := utils.GetAuthCacheClient().Del(c.Request.Context(), cacheKey).Err(); err != nil {
		utils.GetLogger().Error("failed to revoke token", zap.String("userId", p.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to revoke token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "token revoked"})
}
