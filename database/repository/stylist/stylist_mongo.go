package stylistRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"salonpro/database"
	"salonpro/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no stylist matches the lookup.
var ErrNotFound = errors.New("stylist not found")

// MongoStylistRepo implements StylistRepository using MongoDB.
type MongoStylistRepo struct {
	coll *mongo.Collection
}

// NewMongoStylistRepo creates a new instance of StylistRepository using MongoDB.
func NewMongoStylistRepo() StylistRepository {
	return &MongoStylistRepo{coll: database.Collection("stylists")}
}

func newContext(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}

func (r *MongoStylistRepo) Create(stylist *models.Stylist) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, stylist); err != nil {
		return fmt.Errorf("failed to create stylist: %w", err)
	}
	return nil
}

func (r *MongoStylistRepo) GetByID(id string) (*models.Stylist, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var stylist models.Stylist
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&stylist); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch stylist with id %s: %w", id, err)
	}
	return &stylist, nil
}

func (r *MongoStylistRepo) ListByBusiness(businessID string, activeOnly bool) ([]models.Stylist, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{"businessId": businessID}
	sort := bson.D{{Key: "createdAt", Value: -1}}
	if activeOnly {
		filter["isActive"] = true
		sort = bson.D{{Key: "name", Value: 1}}
	}

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve stylists: %w", err)
	}
	defer cursor.Close(ctx)

	var stylists []models.Stylist
	if err := cursor.All(ctx, &stylists); err != nil {
		return nil, fmt.Errorf("failed to decode stylists: %w", err)
	}
	return stylists, nil
}

func (r *MongoStylistRepo) Update(stylist *models.Stylist) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": stylist.ID, "businessId": stylist.BusinessID}
	update := bson.M{"$set": bson.M{
		"name":        stylist.Name,
		"bio":         stylist.Bio,
		"specialties": stylist.Specialties,
		"experience":  stylist.Experience,
		"email":       stylist.Email,
		"isActive":    stylist.IsActive,
	}}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update stylist with id %s: %w", stylist.ID, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoStylistRepo) Delete(businessID, stylistID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": stylistID, "businessId": businessID})
	if err != nil {
		return fmt.Errorf("failed to delete stylist with id %s: %w", stylistID, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoStylistRepo) DeleteByBusiness(businessID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.DeleteMany(ctx, bson.M{"businessId": businessID}); err != nil {
		return fmt.Errorf("failed to delete stylists for business %s: %w", businessID, err)
	}
	return nil
}
