package vehicleRepo

import (
	"context"
	"fmt"
	"time"

	"autodetail/database"
	"autodetail/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoVehicleRepo implements VehicleRepository using MongoDB.
type MongoVehicleRepo struct {
	vehicles *mongo.Collection
	records  *mongo.Collection
}

// NewMongoVehicleRepo creates a new VehicleRepository using MongoDB.
func NewMongoVehicleRepo() VehicleRepository {
	repo := &MongoVehicleRepo{
		vehicles: database.DB().Collection("vehicles"),
		records:  database.DB().Collection("service_records"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoVehicleRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	vehicleIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "ownerId", Value: 1}}},
	}
	if _, err := r.vehicles.Indexes().CreateMany(ctx, vehicleIndexes); err != nil {
		return fmt.Errorf("failed to create vehicle indexes: %w", err)
	}

	recordIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "vehicleId", Value: 1}, {Key: "date", Value: -1}}},
	}
	if _, err := r.records.Indexes().CreateMany(ctx, recordIndexes); err != nil {
		return fmt.Errorf("failed to create service record indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a vehicle by its unique ID.
func (r *MongoVehicleRepo) GetByID(id string) (*models.Vehicle, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var vehicle models.Vehicle
	if err := r.vehicles.FindOne(ctx, bson.M{"id": id}).Decode(&vehicle); err != nil {
		return nil, fmt.Errorf("failed to fetch vehicle with id %s: %w", id, err)
	}
	return &vehicle, nil
}

// ListByOwner returns a customer's vehicles.
func (r *MongoVehicleRepo) ListByOwner(ownerID string) ([]models.Vehicle, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.vehicles.Find(ctx, bson.M{"ownerId": ownerID})
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles for %s: %w", ownerID, err)
	}
	defer cursor.Close(ctx)

	var vehicles []models.Vehicle
	for cursor.Next(ctx) {
		var v models.Vehicle
		if err := cursor.Decode(&v); err != nil {
			return nil, fmt.Errorf("failed to decode vehicle: %w", err)
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, nil
}

// Create inserts a new vehicle document.
func (r *MongoVehicleRepo) Create(vehicle *models.Vehicle) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	vehicle.CreatedAt = now
	vehicle.UpdatedAt = now

	if _, err := r.vehicles.InsertOne(ctx, vehicle); err != nil {
		return fmt.Errorf("failed to create vehicle: %w", err)
	}
	return nil
}

// Update modifies an existing vehicle document.
func (r *MongoVehicleRepo) Update(vehicle *models.Vehicle) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	vehicle.UpdatedAt = time.Now()
	result, err := r.vehicles.UpdateOne(ctx, bson.M{"id": vehicle.ID}, bson.M{"$set": vehicle})
	if err != nil {
		return fmt.Errorf("failed to update vehicle with id %s: %w", vehicle.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("vehicle with id %s not found", vehicle.ID)
	}
	return nil
}

// Delete removes a vehicle document by its ID.
func (r *MongoVehicleRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.vehicles.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete vehicle with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("vehicle with id %s not found", id)
	}
	return nil
}

// AddServiceRecord appends a completed service to the vehicle's history.
func (r *MongoVehicleRepo) AddServiceRecord(record *models.ServiceRecord) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	record.CreatedAt = time.Now()
	if _, err := r.records.InsertOne(ctx, record); err != nil {
		return fmt.Errorf("failed to add service record: %w", err)
	}
	return nil
}

// ListServiceRecords returns a vehicle's service history, newest first.
func (r *MongoVehicleRepo) ListServiceRecords(vehicleID string) ([]models.ServiceRecord, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.records.Find(ctx, bson.M{"vehicleId": vehicleID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list service records for %s: %w", vehicleID, err)
	}
	defer cursor.Close(ctx)

	var records []models.ServiceRecord
	for cursor.Next(ctx) {
		var rec models.ServiceRecord
		if err := cursor.Decode(&rec); err != nil {
			return nil, fmt.Errorf("failed to decode service record: %w", err)
		}
		records = append(records, rec)
	}
	return records, nil
}
