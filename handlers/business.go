package handlers

import (
	"errors"
	"net/http"

	"autodetail/models"
	"autodetail/services/business"
	"autodetail/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BusinessHandler exposes business profile, schedule and staff endpoints.
type BusinessHandler struct {
	BusinessService business.BusinessService
}

func businessErrorStatus(c *gin.Context, err error) {
	switch {
	case errors.Is(err, business.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": "Not the owner of this business"})
	case errors.Is(err, business.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
	case errors.Is(err, business.ErrStaffNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Staff member not found"})
	case errors.Is(err, business.ErrAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": "Owner already has a business"})
	case errors.Is(err, business.ErrInvalidHours):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		utils.GetLogger().Error("Business operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Operation failed"})
	}
}

// CreateBusinessHandler handles POST /api/businesses.
func (h *BusinessHandler) CreateBusinessHandler(c *gin.Context) {
	var biz models.Business
	if err := c.ShouldBindJSON(&biz); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
		return
	}

	created, err := h.BusinessService.CreateBusiness(c.GetString("userID"), biz)
	if err != nil {
		businessErrorStatus(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetBusinessHandler handles GET /api/businesses/:id. Public.
func (h *BusinessHandler) GetBusinessHandler(c *gin.Context) {
	biz, err := h.BusinessService.GetBusinessByID(c.Param("id"))
	if err != nil || biz == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
		return
	}
	c.JSON(http.StatusOK, biz)
}

// GetMyBusinessHandler handles GET /api/businesses/mine.
func (h *BusinessHandler) GetMyBusinessHandler(c *gin.Context) {
	biz, err := h.BusinessService.GetBusinessByOwner(c.GetString("userID"))
	if err != nil || biz == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No business for this account"})
		return
	}
	c.JSON(http.StatusOK, biz)
}

// ListBusinessesHandler handles GET /api/businesses?city=. Public.
func (h *BusinessHandler) ListBusinessesHandler(c *gin.Context) {
	list, err := h.BusinessService.ListBusinesses(c.Query("city"))
	if err != nil {
		utils.GetLogger().Error("Business listing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Listing failed"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// UpdateBusinessHandler handles PATCH /api/businesses/:id. Only the fields
// present in the payload change.
func (h *BusinessHandler) UpdateBusinessHandler(c *gin.Context) {
	var req models.BusinessUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
		return
	}
	req.ID = c.Param("id")

	updated, err := h.BusinessService.UpdateBusiness(c.GetString("userID"), req)
	if err != nil {
		businessErrorStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteBusinessHandler handles DELETE /api/businesses/:id.
func (h *BusinessHandler) DeleteBusinessHandler(c *gin.Context) {
	if err := h.BusinessService.DeleteBusiness(c.GetString("userID"), c.Param("id")); err != nil {
		businessErrorStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Business deleted"})
}

// SetHoursHandler handles PUT /api/businesses/:id/hours.
func (h *BusinessHandler) SetHoursHandler(c *gin.Context) {
	var hours models.BusinessHours
	if err := c.ShouldBindJSON(&hours); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
		return
	}

	if err := h.BusinessService.SetBusinessHours(c.GetString("userID"), c.Param("id"), hours); err != nil {
		businessErrorStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Hours updated"})
}

// SetOverrideHandler handles PUT /api/businesses/:id/overrides/:date.
func (h *BusinessHandler) SetOverrideHandler(c *gin.Context) {
	var req struct {
		Slots []models.Slot `json:"slots"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
		return
	}

	override, err := h.BusinessService.SetOverride(c.GetString("userID"), c.Param("id"), c.Param("date"), req.Slots)
	if err != nil {
		businessErrorStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, override)
}

// DeleteOverrideHandler handles DELETE /api/businesses/:id/overrides/:date.
func (h *BusinessHandler) DeleteOverrideHandler(c *gin.Context) {
	if err := h.BusinessService.DeleteOverride(c.GetString("userID"), c.Param("id"), c.Param("date")); err != nil {
		businessErrorStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Override removed"})
}

// ListOverridesHandler handles GET /api/businesses/:id/overrides.
func (h *BusinessHandler) ListOverridesHandler(c *gin.Context) {
	overrides, err := h.BusinessService.ListOverrides(c.GetString("userID"), c.Param("id"))
	if err != nil {
		businessErrorStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, overrides)
}

// SetSpecialDayHandler handles PUT /api/businesses/:id/special-days/:date.
func (h *BusinessHandler) SetSpecialDayHandler(c *gin.Context) {
	var day models.SpecialDay
	if err := c.ShouldBindJSON(&day); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
		return
	}
	day.Date = c.Param("date")

	saved, err := h.BusinessService.SetSpecialDay(c.GetString("userID"), c.Param("id"), day)
	if err != nil {
		businessErrorStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

// DeleteSpecialDayHandler handles DELETE /api/businesses/:id/special-days/:date.
func (h *BusinessHandler) DeleteSpecialDayHandler(c *gin.Context) {
	if err := h.BusinessService.DeleteSpecialDay(c.GetString("userID"), c.Param("id"), c.Param("date")); err != nil {
		businessErrorStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Special day removed"})
}

// ListSpecialDaysHandler handles GET /api/businesses/:id/special-days.
func (h *BusinessHandler) ListSpecialDaysHandler(c *gin.Context) {
	days, err := h.BusinessService.ListSpecialDays(c.GetString("userID"), c.Param("id"))
	if err != nil {
		businessErrorStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, days)
}

// AddStaffHandler handles POST /api/businesses/:id/staff.
func (h *BusinessHandler) AddStaffHandler(c *gin.Context) {
	var staff models.StaffMember
	if err := c.ShouldBindJSON(&staff); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
		return
	}

	added, err := h.BusinessService.AddStaff(c.GetString("userID"), c.Param("id"), staff)
	if err != nil {
		businessErrorStatus(c, err)
		return
	}
	c.JSON(http.StatusCreated, added)
}

// UpdateStaffHandler handles PUT /api/businesses/:id/staff/:staffId. Only
// the fields present in the payload change.
func (h *BusinessHandler) UpdateStaffHandler(c *gin.Context) {
	var req models.StaffUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
		return
	}
	req.ID = c.Param("staffId")

	staff, err := h.BusinessService.UpdateStaff(c.GetString("userID"), c.Param("id"), req)
	if err != nil {
		businessErrorStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, staff)
}

// RemoveStaffHandler handles DELETE /api/businesses/:id/staff/:staffId.
func (h *BusinessHandler) RemoveStaffHandler(c *gin.Context) {
	if err := h.BusinessService.RemoveStaff(c.GetString("userID"), c.Param("id"), c.Param("staffId")); err != nil {
		businessErrorStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Staff member removed"})
}
