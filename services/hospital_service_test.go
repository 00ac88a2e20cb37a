package services

import (
	"context"
	"testing"

	"carelink/models"
	"carelink/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestGetNearby_DefaultsApplied(t *testing.T) {
	repo := new(MockHospitalRepository)
	service := NewHospitalService(repo)

	repo.On("FindNearby", mock.Anything, mock.MatchedBy(func(req models.NearbyHospitalsRequest) bool {
		return req.RadiusKm == 10.0 && req.Page == 1 && req.PageSize == 10
	})).Return([]models.Hospital{}, int64(0), nil)

	_, meta, err := service.GetNearby(context.Background(), models.NearbyHospitalsRequest{
		Latitude:  28.6139,
		Longitude: 77.2090,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, meta.Page)
	repo.AssertExpectations(t)
}

func TestGetNearby_InvalidCoordinates(t *testing.T) {
	repo := new(MockHospitalRepository)
	service := NewHospitalService(repo)

	_, _, err := service.GetNearby(context.Background(), models.NearbyHospitalsRequest{
		Latitude:  95,
		Longitude: 77.2090,
	})

	require.Error(t, err)
	svcErr, ok := utils.GetServiceError(err)
	require.True(t, ok)
	assert.Equal(t, 400, svcErr.StatusCode)
	repo.AssertNotCalled(t, "FindNearby", mock.Anything, mock.Anything)
}

func TestGetNearby_DistanceAnnotation(t *testing.T) {
	repo := new(MockHospitalRepository)
	service := NewHospitalService(repo)

	withCoords := models.Hospital{
		ID:   primitive.NewObjectID(),
		Name: "City General",
		Address: models.HospitalAddress{
			Coordinates: models.NewGeoJSONPoint(28.62, 77.21),
		},
	}
	withoutCoords := models.Hospital{
		ID:   primitive.NewObjectID(),
		Name: "Unmapped Clinic",
	}

	repo.On("FindNearby", mock.Anything, mock.Anything).
		Return([]models.Hospital{withCoords, withoutCoords}, int64(2), nil)

	hospitals, _, err := service.GetNearby(context.Background(), models.NearbyHospitalsRequest{
		Latitude:  28.6139,
		Longitude: 77.2090,
	})

	require.NoError(t, err)
	require.Len(t, hospitals, 2)
	assert.NotEmpty(t, hospitals[0].Distance)
	assert.Empty(t, hospitals[1].Distance)
}

func TestGetEmergencyHospitals_UsesWideRadius(t *testing.T) {
	repo := new(MockHospitalRepository)
	service := NewHospitalService(repo)

	repo.On("FindEmergencyNearby", mock.Anything, 28.6139, 77.2090, 25.0, 20).
		Return([]models.Hospital{}, nil)

	_, err := service.GetEmergencyHospitals(context.Background(), 28.6139, 77.2090)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestGetEmergencyHospitals_StoreFailurePropagates(t *testing.T) {
	repo := new(MockHospitalRepository)
	service := NewHospitalService(repo)

	repo.On("FindEmergencyNearby", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, utils.NewDatabaseError("find emergency hospitals", nil))

	hospitals, err := service.GetEmergencyHospitals(context.Background(), 28.6139, 77.2090)

	require.Error(t, err)
	assert.Nil(t, hospitals)
	svcErr, ok := utils.GetServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "DATABASE_ERROR", svcErr.Code)
}

func TestSearch_Defaults(t *testing.T) {
	repo := new(MockHospitalRepository)
	service := NewHospitalService(repo)

	repo.On("Search", mock.Anything, mock.MatchedBy(func(req models.SearchHospitalsRequest) bool {
		return req.Page == 1 && req.PageSize == 10
	})).Return([]models.Hospital{}, int64(0), nil)

	_, _, err := service.Search(context.Background(), models.SearchHospitalsRequest{Query: "cardio"})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := new(MockHospitalRepository)
	service := NewHospitalService(repo)
	id := primitive.NewObjectID().Hex()

	repo.On("GetByID", mock.Anything, id).Return(nil, utils.NewHospitalNotFoundError())

	hospital, err := service.GetByID(context.Background(), id)

	require.Error(t, err)
	assert.Nil(t, hospital)
}
