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

type UserRepository struct {
	collection *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{
		collection: db.Collection("users"),
	}
}

func (ur *UserRepository) Create(ctx context.Context, user *models.User) error {
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	user.IsActive = true

	_, err := ur.collection.InsertOne(ctx, user)
	if err != nil {
		return utils.WrapDatabaseError(err, "create user")
	}
	return nil
}

func (ur *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, utils.NewBadRequestError("Invalid user ID")
	}

	var user models.User
	err = ur.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NewUserNotFoundError()
		}
		return nil, utils.WrapDatabaseError(err, "get user by ID")
	}

	return &user, nil
}

func (ur *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := ur.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NewUserNotFoundError()
		}
		return nil, utils.WrapDatabaseError(err, "get user by email")
	}

	return &user, nil
}

func (ur *UserRepository) UpdateEmergencyContact(ctx context.Context, userID string, contact models.PersonalContact) error {
	objectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return utils.NewBadRequestError("Invalid user ID")
	}

	result, err := ur.collection.UpdateOne(
		ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": bson.M{
			"emergencyContact": contact,
			"updatedAt":        time.Now(),
		}},
	)
	if err != nil {
		return utils.WrapDatabaseError(err, "update emergency contact")
	}
	if result.MatchedCount == 0 {
		return utils.NewUserNotFoundError()
	}

	return nil
}

func (ur *UserRepository) UpdateLastLogin(ctx context.Context, userID string) error {
	objectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return utils.NewBadRequestError("Invalid user ID")
	}

	_, err = ur.collection.UpdateOne(
		ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": bson.M{
			"lastLoginAt": time.Now(),
			"updatedAt":   time.Now(),
		}},
	)
	if err != nil {
		return utils.WrapDatabaseError(err, "update last login")
	}
	return nil
}
