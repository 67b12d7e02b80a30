package availabilityRepo

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

// MongoAvailabilityRepo implements AvailabilityRepository using MongoDB.
// Overrides and special days live in separate collections, both indexed by
// the compound (businessId, date) key.
type MongoAvailabilityRepo struct {
	overrides   *mongo.Collection
	specialDays *mongo.Collection
}

// NewMongoAvailabilityRepo creates a new AvailabilityRepository using MongoDB.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	repo := &MongoAvailabilityRepo{
		overrides:   database.DB().Collection("availability_overrides"),
		specialDays: database.DB().Collection("special_days"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoAvailabilityRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	key := mongo.IndexModel{
		Keys:    bson.D{{Key: "businessId", Value: 1}, {Key: "date", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := r.overrides.Indexes().CreateOne(ctx, key); err != nil {
		return fmt.Errorf("failed to create override index: %w", err)
	}
	if _, err := r.specialDays.Indexes().CreateOne(ctx, key); err != nil {
		return fmt.Errorf("failed to create special day index: %w", err)
	}
	return nil
}

// GetOverride fetches the override for the exact (businessID, date) pair.
func (r *MongoAvailabilityRepo) GetOverride(businessID, date string) (*models.AvailabilityOverride, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var override models.AvailabilityOverride
	err := r.overrides.FindOne(ctx, bson.M{"businessId": businessID, "date": date}).Decode(&override)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch override for %s on %s: %w", businessID, date, err)
	}
	return &override, nil
}

// UpsertOverride creates or replaces the override for its (businessID, date).
func (r *MongoAvailabilityRepo) UpsertOverride(override *models.AvailabilityOverride) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"businessId": override.BusinessID, "date": override.Date}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.overrides.ReplaceOne(ctx, filter, override, opts); err != nil {
		return fmt.Errorf("failed to upsert override for %s on %s: %w", override.BusinessID, override.Date, err)
	}
	return nil
}

// DeleteOverride reverts the date to its default schedule.
func (r *MongoAvailabilityRepo) DeleteOverride(businessID, date string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.overrides.DeleteOne(ctx, bson.M{"businessId": businessID, "date": date}); err != nil {
		return fmt.Errorf("failed to delete override for %s on %s: %w", businessID, date, err)
	}
	return nil
}

// ListOverrides returns all overrides for a business.
func (r *MongoAvailabilityRepo) ListOverrides(businessID string) ([]models.AvailabilityOverride, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.overrides.Find(ctx, bson.M{"businessId": businessID})
	if err != nil {
		return nil, fmt.Errorf("failed to list overrides for %s: %w", businessID, err)
	}
	defer cursor.Close(ctx)

	var overrides []models.AvailabilityOverride
	for cursor.Next(ctx) {
		var o models.AvailabilityOverride
		if err := cursor.Decode(&o); err != nil {
			return nil, fmt.Errorf("failed to decode override: %w", err)
		}
		overrides = append(overrides, o)
	}
	return overrides, nil
}

// GetSpecialDay fetches the special day for the exact (businessID, date) pair.
func (r *MongoAvailabilityRepo) GetSpecialDay(businessID, date string) (*models.SpecialDay, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var day models.SpecialDay
	err := r.specialDays.FindOne(ctx, bson.M{"businessId": businessID, "date": date}).Decode(&day)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch special day for %s on %s: %w", businessID, date, err)
	}
	return &day, nil
}

// UpsertSpecialDay creates or replaces the special day for its (businessID, date).
func (r *MongoAvailabilityRepo) UpsertSpecialDay(day *models.SpecialDay) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"businessId": day.BusinessID, "date": day.Date}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.specialDays.ReplaceOne(ctx, filter, day, opts); err != nil {
		return fmt.Errorf("failed to upsert special day for %s on %s: %w", day.BusinessID, day.Date, err)
	}
	return nil
}

// DeleteSpecialDay removes the special-day marking.
func (r *MongoAvailabilityRepo) DeleteSpecialDay(businessID, date string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.specialDays.DeleteOne(ctx, bson.M{"businessId": businessID, "date": date}); err != nil {
		return fmt.Errorf("failed to delete special day for %s on %s: %w", businessID, date, err)
	}
	return nil
}

// ListSpecialDays returns all special days for a business.
func (r *MongoAvailabilityRepo) ListSpecialDays(businessID string) ([]models.SpecialDay, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.specialDays.Find(ctx, bson.M{"businessId": businessID})
	if err != nil {
		return nil, fmt.Errorf("failed to list special days for %s: %w", businessID, err)
	}
	defer cursor.Close(ctx)

	var days []models.SpecialDay
	for cursor.Next(ctx) {
		var d models.SpecialDay
		if err := cursor.Decode(&d); err != nil {
			return nil, fmt.Errorf("failed to decode special day: %w", err)
		}
		days = append(days, d)
	}
	return days, nil
}
