package repositories

import (
	"context"
	"time"

	"carelink/models"
	"carelink/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type EmergencyRepository struct {
	collection *mongo.Collection
}

func NewEmergencyRepository(db *mongo.Database) *EmergencyRepository {
	return &EmergencyRepository{
		collection: db.Collection("emergencies"),
	}
}

func (er *EmergencyRepository) Create(ctx context.Context, emergency *models.Emergency) error {
	emergency.ID = primitive.NewObjectID()
	emergency.CreatedAt = time.Now()
	emergency.UpdatedAt = time.Now()

	if emergency.Status == "" {
		emergency.Status = models.EmergencyStatusActive
	}

	_, err := er.collection.InsertOne(ctx, emergency)
	if err != nil {
		return utils.WrapDatabaseError(err, "create emergency")
	}
	return nil
}

func (er *EmergencyRepository) GetByID(ctx context.Context, id string) (*models.Emergency, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, utils.NewBadRequestError("Invalid emergency ID")
	}

	var emergency models.Emergency
	err = er.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&emergency)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NewEmergencyNotFoundError()
		}
		return nil, utils.WrapDatabaseError(err, "get emergency by ID")
	}

	return &emergency, nil
}

// GetByIDForPatient scopes the lookup to a patient so one patient can never
// read another patient's case. A case outside the scope reads as not found.
func (er *EmergencyRepository) GetByIDForPatient(ctx context.Context, id string, patientID primitive.ObjectID) (*models.Emergency, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, utils.NewBadRequestError("Invalid emergency ID")
	}

	var emergency models.Emergency
	err = er.collection.FindOne(ctx, bson.M{"_id": objectID, "patientId": patientID}).Decode(&emergency)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NewEmergencyNotFoundError()
		}
		return nil, utils.WrapDatabaseError(err, "get emergency for patient")
	}

	return &emergency, nil
}

// GetHistoryByPatient returns a page of the patient's cases newest-first.
// Notes are excluded from listings.
func (er *EmergencyRepository) GetHistoryByPatient(ctx context.Context, patientID primitive.ObjectID, page, limit int) ([]models.Emergency, int64, error) {
	filter := bson.M{"patientId": patientID}

	total, err := er.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, utils.WrapDatabaseError(err, "count emergency history")
	}

	opts := options.Find().
		SetSort(bson.M{"createdAt": -1}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit)).
		SetProjection(bson.M{"notes": 0})

	cursor, err := er.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, utils.WrapDatabaseError(err, "find emergency history")
	}
	defer cursor.Close(ctx)

	var emergencies []models.Emergency
	if err := cursor.All(ctx, &emergencies); err != nil {
		return nil, 0, utils.WrapDatabaseError(err, "decode emergency history")
	}

	return emergencies, total, nil
}

func (er *EmergencyRepository) Update(ctx context.Context, emergency *models.Emergency) error {
	emergency.UpdatedAt = time.Now()

	result, err := er.collection.ReplaceOne(ctx, bson.M{"_id": emergency.ID}, emergency)
	if err != nil {
		return utils.WrapDatabaseError(err, "update emergency")
	}
	if result.MatchedCount == 0 {
		return utils.NewEmergencyNotFoundError()
	}

	return nil
}
