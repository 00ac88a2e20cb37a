package repositories

import (
	"context"
	"time"

	"carelink/models"
	"carelink/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type PatientRepository struct {
	collection *mongo.Collection
}

func NewPatientRepository(db *mongo.Database) *PatientRepository {
	return &PatientRepository{
		collection: db.Collection("patients"),
	}
}

func (pr *PatientRepository) Create(ctx context.Context, patient *models.Patient) error {
	patient.ID = primitive.NewObjectID()
	patient.CreatedAt = time.Now()
	patient.UpdatedAt = time.Now()

	_, err := pr.collection.InsertOne(ctx, patient)
	if err != nil {
		return utils.WrapDatabaseError(err, "create patient")
	}
	return nil
}

func (pr *PatientRepository) GetByUserID(ctx context.Context, userID string) (*models.Patient, error) {
	objectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, utils.NewBadRequestError("Invalid user ID")
	}

	var patient models.Patient
	err = pr.collection.FindOne(ctx, bson.M{"userId": objectID}).Decode(&patient)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NewPatientNotFoundError()
		}
		return nil, utils.WrapDatabaseError(err, "get patient by user ID")
	}

	return &patient, nil
}

func (pr *PatientRepository) Update(ctx context.Context, patient *models.Patient) error {
	patient.UpdatedAt = time.Now()

	result, err := pr.collection.ReplaceOne(ctx, bson.M{"_id": patient.ID}, patient)
	if err != nil {
		return utils.WrapDatabaseError(err, "update patient")
	}
	if result.MatchedCount == 0 {
		return utils.NewPatientNotFoundError()
	}

	return nil
}
