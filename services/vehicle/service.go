package vehicle

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	vehicleRepo "autodetail/database/repository/vehicle"
	"autodetail/models"
	"autodetail/services/storage"

	"github.com/google/uuid"
)

// ErrNotOwner means the vehicle belongs to a different customer.
var ErrNotOwner = errors.New("vehicle does not belong to this user")

const photoFolder = "vehicles"

// VehicleService manages a customer's vehicles and their service history.
type VehicleService interface {
	CreateVehicle(ownerID string, vehicle *models.Vehicle) (*models.Vehicle, error)
	GetVehicle(ownerID, vehicleID string) (*models.Vehicle, error)
	ListVehicles(ownerID string) ([]models.Vehicle, error)
	UpdateVehicle(ownerID string, vehicle *models.Vehicle) (*models.Vehicle, error)
	DeleteVehicle(ownerID, vehicleID string) error

	// UploadPhoto stores the image and records its URL on the vehicle.
	UploadPhoto(ctx context.Context, ownerID, vehicleID string, file io.Reader) (*models.Vehicle, error)
	// ServiceHistory returns the vehicle's completed services, newest first.
	ServiceHistory(ownerID, vehicleID string) ([]models.ServiceRecord, error)
}

// DefaultVehicleService is the production implementation. Storage is
// optional; photo uploads fail cleanly when it is absent.
type DefaultVehicleService struct {
	Repo    vehicleRepo.VehicleRepository
	Storage storage.StorageService
}

var _ VehicleService = (*DefaultVehicleService)(nil)

func (s *DefaultVehicleService) CreateVehicle(ownerID string, vehicle *models.Vehicle) (*models.Vehicle, error) {
	now := time.Now()
	vehicle.ID = uuid.New().String()
	vehicle.OwnerID = ownerID
	vehicle.CreatedAt = now
	vehicle.UpdatedAt = now
	if err := s.Repo.Create(vehicle); err != nil {
		return nil, fmt.Errorf("vehicle: failed to create: %w", err)
	}
	return vehicle, nil
}

func (s *DefaultVehicleService) GetVehicle(ownerID, vehicleID string) (*models.Vehicle, error) {
	return s.requireOwned(ownerID, vehicleID)
}

func (s *DefaultVehicleService) ListVehicles(ownerID string) ([]models.Vehicle, error) {
	return s.Repo.ListByOwner(ownerID)
}

func (s *DefaultVehicleService) UpdateVehicle(ownerID string, vehicle *models.Vehicle) (*models.Vehicle, error) {
	existing, err := s.requireOwned(ownerID, vehicle.ID)
	if err != nil {
		return nil, err
	}

	// Ownership, photo and timestamps are server-managed.
	vehicle.OwnerID = existing.OwnerID
	vehicle.PhotoURL = existing.PhotoURL
	vehicle.CreatedAt = existing.CreatedAt
	vehicle.UpdatedAt = time.Now()
	if err := s.Repo.Update(vehicle); err != nil {
		return nil, fmt.Errorf("vehicle: failed to update: %w", err)
	}
	return vehicle, nil
}

func (s *DefaultVehicleService) DeleteVehicle(ownerID, vehicleID string) error {
	if _, err := s.requireOwned(ownerID, vehicleID); err != nil {
		return err
	}
	return s.Repo.Delete(vehicleID)
}

func (s *DefaultVehicleService) UploadPhoto(ctx context.Context, ownerID, vehicleID string, file io.Reader) (*models.Vehicle, error) {
	vehicle, err := s.requireOwned(ownerID, vehicleID)
	if err != nil {
		return nil, err
	}
	if s.Storage == nil {
		return nil, fmt.Errorf("vehicle: photo storage not configured")
	}

	url, _, err := s.Storage.UploadImage(ctx, file, photoFolder, vehicle.ID)
	if err != nil {
		return nil, err
	}

	vehicle.PhotoURL = url
	vehicle.UpdatedAt = time.Now()
	if err := s.Repo.Update(vehicle); err != nil {
		return nil, fmt.Errorf("vehicle: failed to save photo URL: %w", err)
	}
	return vehicle, nil
}

func (s *DefaultVehicleService) ServiceHistory(ownerID, vehicleID string) ([]models.ServiceRecord, error) {
	if _, err := s.requireOwned(ownerID, vehicleID); err != nil {
		return nil, err
	}
	return s.Repo.ListServiceRecords(vehicleID)
}

func (s *DefaultVehicleService) requireOwned(ownerID, vehicleID string) (*models.Vehicle, error) {
	vehicle, err := s.Repo.GetByID(vehicleID)
	if err != nil {
		return nil, fmt.Errorf("vehicle: failed to fetch %s: %w", vehicleID, err)
	}
	if vehicle == nil {
		return nil, fmt.Errorf("vehicle: %s not found", vehicleID)
	}
	if vehicle.OwnerID != ownerID {
		return nil, ErrNotOwner
	}
	return vehicle, nil
}
