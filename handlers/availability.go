package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"autodetail/services/availability"
	"autodetail/services/business"
	"autodetail/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler exposes resolved availability. All endpoints are public
// so customers can browse before signing in.
type AvailabilityHandler struct {
	Availability    availability.AvailabilityService
	BusinessService business.BusinessService
}

func availabilityErrorStatus(c *gin.Context, err error) {
	if errors.Is(err, availability.ErrInvalidInput) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if errors.Is(err, availability.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
		return
	}
	utils.GetLogger().Error("Availability resolution failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Availability lookup failed"})
}

// GetDayHandler handles GET /api/businesses/:id/availability?date=YYYY-MM-DD.
func (h *AvailabilityHandler) GetDayHandler(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter is required"})
		return
	}

	resolved, err := h.Availability.ResolveDate(c.Param("id"), date)
	if err != nil {
		availabilityErrorStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, resolved)
}

// GetRangeHandler handles GET /api/businesses/:id/availability/range?start=&days=.
func (h *AvailabilityHandler) GetRangeHandler(c *gin.Context) {
	start := c.Query("start")
	if start == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start query parameter is required"})
		return
	}
	days, err := strconv.Atoi(c.DefaultQuery("days", "7"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "days must be a number"})
		return
	}

	resolved, err := h.Availability.ResolveRange(c.Param("id"), start, days)
	if err != nil {
		availabilityErrorStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, resolved)
}

// GetSlotsHandler handles GET /api/businesses/:id/availability/slots?date=&serviceId=.
// The slot length comes from the requested service's duration.
func (h *AvailabilityHandler) GetSlotsHandler(c *gin.Context) {
	date := c.Query("date")
	serviceID := c.Query("serviceId")
	if date == "" || serviceID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date and serviceId query parameters are required"})
		return
	}

	biz, err := h.BusinessService.GetBusinessByID(c.Param("id"))
	if err != nil || biz == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
		return
	}
	offering := biz.ServiceByID(serviceID)
	if offering == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
		return
	}

	resolved, err := h.Availability.BookableSlots(biz.ID, date, offering.DurationMinutes)
	if err != nil {
		availabilityErrorStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, resolved)
}
