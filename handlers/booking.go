package handlers

import (
	"errors"
	"net/http"

	"autodetail/services/availability"
	"autodetail/services/booking"
	"autodetail/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the appointment lifecycle endpoints.
type BookingHandler struct {
	BookingService booking.BookingService
}

func bookingErrorStatus(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrSlotUnavailable):
		c.JSON(http.StatusConflict, gin.H{"error": "Requested time is not available"})
	case errors.Is(err, booking.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "Time conflicts with an existing appointment"})
	case errors.Is(err, booking.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrNotAllowed):
		c.JSON(http.StatusForbidden, gin.H{"error": "Not allowed to act on this appointment"})
	case errors.Is(err, booking.ErrUnknownService):
		c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
	case errors.Is(err, availability.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, availability.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
	default:
		utils.GetLogger().Error("Booking operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Operation failed"})
	}
}

// CreateAppointmentHandler handles POST /api/appointments.
func (h *BookingHandler) CreateAppointmentHandler(c *gin.Context) {
	var req booking.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
		return
	}

	appt, err := h.BookingService.CreateAppointment(c.Request.Context(), c.GetString("userID"), req)
	if err != nil {
		bookingErrorStatus(c, err)
		return
	}
	c.JSON(http.StatusCreated, appt)
}

// ConfirmAppointmentHandler handles POST /api/appointments/:id/confirm.
func (h *BookingHandler) ConfirmAppointmentHandler(c *gin.Context) {
	appt, err := h.BookingService.ConfirmAppointment(c.Request.Context(), c.GetString("userID"), c.Param("id"))
	if err != nil {
		bookingErrorStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// CancelAppointmentHandler handles POST /api/appointments/:id/cancel.
func (h *BookingHandler) CancelAppointmentHandler(c *gin.Context) {
	appt, err := h.BookingService.CancelAppointment(c.Request.Context(), c.GetString("userID"), c.Param("id"))
	if err != nil {
		bookingErrorStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// CompleteAppointmentHandler handles POST /api/appointments/:id/complete.
func (h *BookingHandler) CompleteAppointmentHandler(c *gin.Context) {
	appt, err := h.BookingService.CompleteAppointment(c.Request.Context(), c.GetString("userID"), c.Param("id"))
	if err != nil {
		bookingErrorStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// RescheduleAppointmentHandler handles POST /api/appointments/:id/reschedule.
func (h *BookingHandler) RescheduleAppointmentHandler(c *gin.Context) {
	var req struct {
		Date      string `json:"date" binding:"required"`
		StartTime string `json:"startTime" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date and startTime are required"})
		return
	}

	appt, err := h.BookingService.RescheduleAppointment(c.Request.Context(), c.GetString("userID"), c.Param("id"), req.Date, req.StartTime)
	if err != nil {
		bookingErrorStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// ListMyAppointmentsHandler handles GET /api/appointments.
func (h *BookingHandler) ListMyAppointmentsHandler(c *gin.Context) {
	appts, err := h.BookingService.ListForCustomer(c.GetString("userID"))
	if err != nil {
		bookingErrorStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, appts)
}

// ListBusinessAppointmentsHandler handles
// GET /api/businesses/:id/appointments?date=. Without a date the full list
// comes back newest first.
func (h *BookingHandler) ListBusinessAppointmentsHandler(c *gin.Context) {
	callerID := c.GetString("userID")
	businessID := c.Param("id")

	var err error
	var appts interface{}
	if date := c.Query("date"); date != "" {
		appts, err = h.BookingService.ListForBusinessDate(callerID, businessID, date)
	} else {
		appts, err = h.BookingService.ListForBusiness(callerID, businessID)
	}
	if err != nil {
		bookingErrorStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, appts)
}
