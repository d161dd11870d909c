package handlers

import (
	"net/http"

	"homestay/middleware"
	"homestay/services/staff"
	"homestay/utils"

	"github.com/gin-gonic/gin"
)

// FindStaffHandler handles GET /api/staffinfo. Providers see their own
// roster, admins see everyone's.
func (hb *HandlerBundle) FindStaffHandler(c *gin.Context) {
	p := middleware.GetPrincipal(c)
	if p == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "authentication required"})
		return
	}

	limit, skip := pageParams(c)
	page, err := hb.StaffService.Find(c.Request.Context(), *p, limit, skip)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// CreateStaffHandler handles POST /api/staffinfo.
func (hb *HandlerBundle) CreateStaffHandler(c *gin.Context) {
	p := middleware.GetPrincipal(c)
	if p == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "authentication required"})
		return
	}

	var input staff.CreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	member, err := hb.StaffService.Create(c.Request.Context(), *p, input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, member)
}

// UpdateStaffHandler handles PUT /api/staffinfo/:id.
func (hb *HandlerBundle) UpdateStaffHandler(c *gin.Context) {
	p := middleware.GetPrincipal(c)
	if p == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "authentication required"})
		return
	}

	var input staff.CreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	member, err := hb.StaffService.Update(c.Request.Context(), *p, c.Param("id"), input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

// DeleteStaffHandler handles DELETE /api/staffinfo/:id.
func (hb *HandlerBundle) DeleteStaffHandler(c *gin.Context) {
	p := middleware.GetPrincipal(c)
	if p == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "authentication required"})
		return
	}

	if err := hb.StaffService.Delete(c.Request.Context(), *p, c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Staff member deleted"})
}
