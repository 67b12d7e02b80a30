package handlers

import (
	"errors"
	"net/http"

	"autodetail/models"
	"autodetail/services/vehicle"
	"autodetail/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// VehicleHandler exposes vehicle and service-history endpoints.
type VehicleHandler struct {
	VehicleService vehicle.VehicleService
}

func vehicleErrorStatus(c *gin.Context, err error) {
	if errors.Is(err, vehicle.ErrNotOwner) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not the owner of this vehicle"})
		return
	}
	utils.GetLogger().Error("Vehicle operation failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Operation failed"})
}

// CreateVehicleHandler handles POST /api/vehicles.
func (h *VehicleHandler) CreateVehicleHandler(c *gin.Context) {
	var v models.Vehicle
	if err := c.ShouldBindJSON(&v); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
		return
	}

	created, err := h.VehicleService.CreateVehicle(c.GetString("userID"), &v)
	if err != nil {
		vehicleErrorStatus(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetVehicleHandler handles GET /api/vehicles/:id.
func (h *VehicleHandler) GetVehicleHandler(c *gin.Context) {
	v, err := h.VehicleService.GetVehicle(c.GetString("userID"), c.Param("id"))
	if err != nil {
		vehicleErrorStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// ListVehiclesHandler handles GET /api/vehicles.
func (h *VehicleHandler) ListVehiclesHandler(c *gin.Context) {
	list, err := h.VehicleService.ListVehicles(c.GetString("userID"))
	if err != nil {
		vehicleErrorStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// UpdateVehicleHandler handles PATCH /api/vehicles/:id.
func (h *VehicleHandler) UpdateVehicleHandler(c *gin.Context) {
	var v models.Vehicle
	if err := c.ShouldBindJSON(&v); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
		return
	}
	v.ID = c.Param("id")

	updated, err := h.VehicleService.UpdateVehicle(c.GetString("userID"), &v)
	if err != nil {
		vehicleErrorStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteVehicleHandler handles DELETE /api/vehicles/:id.
func (h *VehicleHandler) DeleteVehicleHandler(c *gin.Context) {
	if err := h.VehicleService.DeleteVehicle(c.GetString("userID"), c.Param("id")); err != nil {
		vehicleErrorStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Vehicle deleted"})
}

// UploadPhotoHandler handles POST /api/vehicles/:id/photo with a multipart
// "photo" field.
func (h *VehicleHandler) UploadPhotoHandler(c *gin.Context) {
	fileHeader, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo file is required"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unreadable photo file"})
		return
	}
	defer file.Close()

	v, err := h.VehicleService.UploadPhoto(c.Request.Context(), c.GetString("userID"), c.Param("id"), file)
	if err != nil {
		vehicleErrorStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// ServiceHistoryHandler handles GET /api/vehicles/:id/history.
func (h *VehicleHandler) ServiceHistoryHandler(c *gin.Context) {
	records, err := h.VehicleService.ServiceHistory(c.GetString("userID"), c.Param("id"))
	if err != nil {
		vehicleErrorStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}
