package repositories

import (
	"context"
	"sort"
	"time"

	"carelink/models"
	"carelink/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type HospitalRepository struct {
	collection *mongo.Collection
}

func NewHospitalRepository(db *mongo.Database) *HospitalRepository {
	return &HospitalRepository{
		collection: db.Collection("hospitals"),
	}
}

func (hr *HospitalRepository) Create(ctx context.Context, hospital *models.Hospital) error {
	hospital.ID = primitive.NewObjectID()
	hospital.CreatedAt = time.Now()
	hospital.UpdatedAt = time.Now()

	_, err := hr.collection.InsertOne(ctx, hospital)
	if err != nil {
		return utils.WrapDatabaseError(err, "create hospital")
	}
	return nil
}

func (hr *HospitalRepository) GetByID(ctx context.Context, id string) (*models.Hospital, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, utils.NewBadRequestError("Invalid hospital ID")
	}

	var hospital models.Hospital
	err = hr.collection.FindOne(ctx, bson.M{"_id": objectID, "isActive": true}).Decode(&hospital)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NewHospitalNotFoundError()
		}
		return nil, utils.WrapDatabaseError(err, "get hospital by ID")
	}

	return &hospital, nil
}

// FindNearby returns active hospitals ordered nearest-first within the radius,
// plus the total match count for pagination.
func (hr *HospitalRepository) FindNearby(ctx context.Context, req models.NearbyHospitalsRequest) ([]models.Hospital, int64, error) {
	filter := bson.M{"isActive": true}
	if req.Specialty != "" {
		filter["specialties"] = req.Specialty
	}
	if req.Type != "" {
		filter["type"] = req.Type
	}
	if req.EmergencyServices {
		filter["emergencyServices.ambulance"] = true
	}

	// $near is not allowed in count queries, so the total uses an equivalent
	// $geoWithin/$centerSphere filter.
	countFilter := bson.M{}
	for k, v := range filter {
		countFilter[k] = v
	}
	countFilter["address.coordinates"] = bson.M{
		"$geoWithin": bson.M{
			"$centerSphere": bson.A{
				bson.A{req.Longitude, req.Latitude},
				req.RadiusKm / utils.EarthRadiusKm,
			},
		},
	}

	total, err := hr.collection.CountDocuments(ctx, countFilter)
	if err != nil {
		return nil, 0, utils.WrapDatabaseError(err, "count nearby hospitals")
	}

	filter["address.coordinates"] = bson.M{
		"$near": bson.M{
			"$geometry": bson.M{
				"type":        "Point",
				"coordinates": bson.A{req.Longitude, req.Latitude},
			},
			"$maxDistance": req.RadiusKm * 1000,
		},
	}

	opts := options.Find().
		SetSkip(int64((req.Page - 1) * req.PageSize)).
		SetLimit(int64(req.PageSize))

	cursor, err := hr.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, utils.WrapDatabaseError(err, "find nearby hospitals")
	}
	defer cursor.Close(ctx)

	var hospitals []models.Hospital
	if err := cursor.All(ctx, &hospitals); err != nil {
		return nil, 0, utils.WrapDatabaseError(err, "decode nearby hospitals")
	}

	return hospitals, total, nil
}

// FindEmergencyNearby returns the closest hospitals able to receive an
// emergency case: active, ambulance-equipped and running a 24x7 emergency
// department.
func (hr *HospitalRepository) FindEmergencyNearby(ctx context.Context, lat, lng, radiusKm float64, limit int) ([]models.Hospital, error) {
	filter := bson.M{
		"isActive":                     true,
		"emergencyServices.ambulance":  true,
		"operatingHours.emergency24x7": true,
		"address.coordinates": bson.M{
			"$near": bson.M{
				"$geometry": bson.M{
					"type":        "Point",
					"coordinates": bson.A{lng, lat},
				},
				"$maxDistance": radiusKm * 1000,
			},
		},
	}

	cursor, err := hr.collection.Find(ctx, filter, options.Find().SetLimit(int64(limit)))
	if err != nil {
		return nil, utils.WrapDatabaseError(err, "find emergency hospitals")
	}
	defer cursor.Close(ctx)

	var hospitals []models.Hospital
	if err := cursor.All(ctx, &hospitals); err != nil {
		return nil, utils.WrapDatabaseError(err, "decode emergency hospitals")
	}

	return hospitals, nil
}

func (hr *HospitalRepository) Search(ctx context.Context, req models.SearchHospitalsRequest) ([]models.Hospital, int64, error) {
	pattern := primitive.Regex{Pattern: req.Query, Options: "i"}
	filter := bson.M{
		"isActive": true,
		"$or": bson.A{
			bson.M{"name": pattern},
			bson.M{"specialties": pattern},
			bson.M{"address.city": pattern},
		},
	}
	if req.City != "" {
		filter["address.city"] = primitive.Regex{Pattern: req.City, Options: "i"}
	}

	total, err := hr.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, utils.WrapDatabaseError(err, "count hospital search")
	}

	opts := options.Find().
		SetSort(bson.M{"rating": -1}).
		SetSkip(int64((req.Page - 1) * req.PageSize)).
		SetLimit(int64(req.PageSize))

	cursor, err := hr.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, utils.WrapDatabaseError(err, "search hospitals")
	}
	defer cursor.Close(ctx)

	var hospitals []models.Hospital
	if err := cursor.All(ctx, &hospitals); err != nil {
		return nil, 0, utils.WrapDatabaseError(err, "decode hospital search")
	}

	return hospitals, total, nil
}

func (hr *HospitalRepository) GetSpecialties(ctx context.Context) ([]string, error) {
	values, err := hr.collection.Distinct(ctx, "specialties", bson.M{"isActive": true})
	if err != nil {
		return nil, utils.WrapDatabaseError(err, "get specialties")
	}

	specialties := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			specialties = append(specialties, s)
		}
	}
	sort.Strings(specialties)

	return specialties, nil
}
