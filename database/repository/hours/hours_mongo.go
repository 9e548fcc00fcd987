package hoursRepo

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"salonpro/database"
	"salonpro/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoHoursRepo implements HoursRepository using MongoDB.
type MongoHoursRepo struct {
	coll *mongo.Collection
}

// NewMongoHoursRepo creates a new instance of HoursRepository using MongoDB.
func NewMongoHoursRepo() HoursRepository {
	repo := &MongoHoursRepo{coll: database.Collection("business_hours")}
	if err := repo.ensureIndexes(); err != nil {
		log.Printf("hours repo: failed to ensure indexes: %v", err)
	}
	return repo
}

func newContext(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}

func (r *MongoHoursRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	idx := mongo.IndexModel{
		Keys:    bson.D{{Key: "businessId", Value: 1}, {Key: "day", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := r.coll.Indexes().CreateOne(ctx, idx); err != nil {
		return fmt.Errorf("failed to create business_hours index: %w", err)
	}
	return nil
}

func (r *MongoHoursRepo) SeedWeek(hours []models.BusinessHours) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	docs := make([]interface{}, 0, len(hours))
	for _, h := range hours {
		docs = append(docs, h)
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to seed business hours: %w", err)
	}
	return nil
}

func (r *MongoHoursRepo) GetWeek(businessID string) ([]models.BusinessHours, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "day", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"businessId": businessID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve business hours: %w", err)
	}
	defer cursor.Close(ctx)

	var hours []models.BusinessHours
	if err := cursor.All(ctx, &hours); err != nil {
		return nil, fmt.Errorf("failed to decode business hours: %w", err)
	}
	return hours, nil
}

func (r *MongoHoursRepo) GetDay(businessID string, day int) (*models.BusinessHours, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var hours models.BusinessHours
	filter := bson.M{"businessId": businessID, "day": day}
	if err := r.coll.FindOne(ctx, filter).Decode(&hours); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch hours for business %s day %d: %w", businessID, day, err)
	}
	return &hours, nil
}

func (r *MongoHoursRepo) UpdateDay(hours models.BusinessHours) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"businessId": hours.BusinessID, "day": hours.Day}
	update := bson.M{"$set": bson.M{
		"openTime":  hours.OpenTime,
		"closeTime": hours.CloseTime,
		"isClosed":  hours.IsClosed,
	}}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update hours for business %s day %d: %w", hours.BusinessID, hours.Day, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("no hours configured for business %s day %d", hours.BusinessID, hours.Day)
	}
	return nil
}

func (r *MongoHoursRepo) DeleteByBusiness(businessID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.DeleteMany(ctx, bson.M{"businessId": businessID}); err != nil {
		return fmt.Errorf("failed to delete hours for business %s: %w", businessID, err)
	}
	return nil
}
