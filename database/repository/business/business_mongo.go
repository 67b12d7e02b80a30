package businessRepo

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

// MongoBusinessRepo implements BusinessRepository using MongoDB.
type MongoBusinessRepo struct {
	coll *mongo.Collection
}

// NewMongoBusinessRepo creates a new instance of BusinessRepository using MongoDB.
func NewMongoBusinessRepo() BusinessRepository {
	coll := database.DB().Collection("businesses")
	repo := &MongoBusinessRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoBusinessRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "ownerId", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "city", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByIDWithProjection retrieves a business by ID using a projection;
// returns nil when absent. Pass nil for projection to retrieve the full
// document.
func (r *MongoBusinessRepo) GetByIDWithProjection(id string, projection bson.M) (*models.Business, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.FindOne()
	if projection != nil {
		opts.SetProjection(projection)
	}

	var biz models.Business
	if err := r.coll.FindOne(ctx, bson.M{"id": id}, opts).Decode(&biz); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch business with id %s: %w", id, err)
	}
	return &biz, nil
}

// GetByID retrieves a business by its unique ID (full document); returns nil
// when absent.
func (r *MongoBusinessRepo) GetByID(id string) (*models.Business, error) {
	return r.GetByIDWithProjection(id, nil)
}

// GetByOwnerID retrieves the business owned by the given user; nil when absent.
func (r *MongoBusinessRepo) GetByOwnerID(ownerID string) (*models.Business, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var biz models.Business
	if err := r.coll.FindOne(ctx, bson.M{"ownerId": ownerID}).Decode(&biz); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch business for owner %s: %w", ownerID, err)
	}
	return &biz, nil
}

// List retrieves active businesses, optionally filtered by city.
func (r *MongoBusinessRepo) List(city string) ([]models.Business, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{"active": true}
	if city != "" {
		filter["city"] = city
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list businesses: %w", err)
	}
	defer cursor.Close(ctx)

	var businesses []models.Business
	for cursor.Next(ctx) {
		var b models.Business
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("failed to decode business: %w", err)
		}
		businesses = append(businesses, b)
	}
	return businesses, nil
}

// Create inserts a new business document.
func (r *MongoBusinessRepo) Create(business *models.Business) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	business.CreatedAt = now
	business.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, business); err != nil {
		return fmt.Errorf("failed to create business: %w", err)
	}
	return nil
}

// Update modifies an existing business document.
func (r *MongoBusinessRepo) Update(business *models.Business) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	business.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": business.ID}, bson.M{"$set": business})
	if err != nil {
		return fmt.Errorf("failed to update business with id %s: %w", business.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("business with id %s not found", business.ID)
	}
	return nil
}

// Delete removes a business document by its ID.
func (r *MongoBusinessRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete business with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("business with id %s not found", id)
	}
	return nil
}

// SetBusinessHours replaces the recurring weekly hours.
func (r *MongoBusinessRepo) SetBusinessHours(id string, hours models.BusinessHours) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"businessHours": hours, "updatedAt": time.Now()}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to set business hours for %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("business with id %s not found", id)
	}
	return nil
}

// AddStaff appends a staff member to the business.
func (r *MongoBusinessRepo) AddStaff(id string, staff models.StaffMember) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{
		"$push": bson.M{"staff": staff},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to add staff to business %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("business with id %s not found", id)
	}
	return nil
}

// UpdateStaff replaces the staff member with the matching ID.
func (r *MongoBusinessRepo) UpdateStaff(id string, staff models.StaffMember) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id, "staff.id": staff.ID}
	update := bson.M{
		"$set": bson.M{"staff.$": staff, "updatedAt": time.Now()},
	}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update staff %s on business %s: %w", staff.ID, id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("staff member %s not found on business %s", staff.ID, id)
	}
	return nil
}

// RemoveStaff removes the staff member with the given ID.
func (r *MongoBusinessRepo) RemoveStaff(id, staffID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{
		"$pull": bson.M{"staff": bson.M{"id": staffID}},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to remove staff %s from business %s: %w", staffID, id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("business with id %s not found", id)
	}
	return nil
}
