package appointmentRepo

import (
	"fmt"
	"time"

	"salonpro/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ensureIndexes creates indexes for frequently used queries and the unique
// slot guard.
func (r *MongoAppointmentRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	// Partial unique index on (stylist, date, start) over active statuses.
	// Two concurrent bookings of the identical slot cannot both insert; a
	// completed or cancelled appointment releases the slot for rebooking.
	// Overlapping bookings with different start times are still only caught
	// by the validation scan.
	slotGuardOpts := options.Index().
		SetUnique(true).
		SetPartialFilterExpression(bson.M{
			"status": bson.M{"$in": models.ActiveAppointmentStatuses},
		})
	slotGuardIdx := mongo.IndexModel{
		Keys: bson.D{
			{Key: "stylistId", Value: 1},
			{Key: "date", Value: 1},
			{Key: "startTime", Value: 1},
		},
		Options: slotGuardOpts,
	}

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "businessId", Value: 1}, {Key: "date", Value: 1}}},
		{Keys: bson.D{{Key: "businessId", Value: 1}, {Key: "status", Value: 1}}},
		slotGuardIdx,
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("failed to create appointment indexes: %w", err)
	}
	return nil
}
