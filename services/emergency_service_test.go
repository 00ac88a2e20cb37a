package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"carelink/models"
	"carelink/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockEmergencyRepository is a mock implementation of interfaces.EmergencyRepository
type MockEmergencyRepository struct {
	mock.Mock
}

func (m *MockEmergencyRepository) Create(ctx context.Context, emergency *models.Emergency) error {
	args := m.Called(ctx, emergency)
	if args.Error(0) == nil && emergency.ID.IsZero() {
		emergency.ID = primitive.NewObjectID()
		emergency.CreatedAt = time.Now()
		emergency.UpdatedAt = time.Now()
	}
	return args.Error(0)
}

func (m *MockEmergencyRepository) GetByID(ctx context.Context, id string) (*models.Emergency, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Emergency), args.Error(1)
}

func (m *MockEmergencyRepository) GetByIDForPatient(ctx context.Context, id string, patientID primitive.ObjectID) (*models.Emergency, error) {
	args := m.Called(ctx, id, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Emergency), args.Error(1)
}

func (m *MockEmergencyRepository) GetHistoryByPatient(ctx context.Context, patientID primitive.ObjectID, page, limit int) ([]models.Emergency, int64, error) {
	args := m.Called(ctx, patientID, page, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Emergency), args.Get(1).(int64), args.Error(2)
}

func (m *MockEmergencyRepository) Update(ctx context.Context, emergency *models.Emergency) error {
	args := m.Called(ctx, emergency)
	return args.Error(0)
}

// MockPatientRepository is a mock implementation of interfaces.PatientRepository
type MockPatientRepository struct {
	mock.Mock
}

func (m *MockPatientRepository) Create(ctx context.Context, patient *models.Patient) error {
	args := m.Called(ctx, patient)
	return args.Error(0)
}

func (m *MockPatientRepository) GetByUserID(ctx context.Context, userID string) (*models.Patient, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Patient), args.Error(1)
}

func (m *MockPatientRepository) Update(ctx context.Context, patient *models.Patient) error {
	args := m.Called(ctx, patient)
	return args.Error(0)
}

// MockUserRepository is a mock implementation of interfaces.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateEmergencyContact(ctx context.Context, userID string, contact models.PersonalContact) error {
	args := m.Called(ctx, userID, contact)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateLastLogin(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockHospitalRepository is a mock implementation of interfaces.HospitalRepository
type MockHospitalRepository struct {
	mock.Mock
}

func (m *MockHospitalRepository) GetByID(ctx context.Context, id string) (*models.Hospital, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Hospital), args.Error(1)
}

func (m *MockHospitalRepository) FindNearby(ctx context.Context, req models.NearbyHospitalsRequest) ([]models.Hospital, int64, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Hospital), args.Get(1).(int64), args.Error(2)
}

func (m *MockHospitalRepository) FindEmergencyNearby(ctx context.Context, lat, lng, radiusKm float64, limit int) ([]models.Hospital, error) {
	args := m.Called(ctx, lat, lng, radiusKm, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Hospital), args.Error(1)
}

func (m *MockHospitalRepository) Search(ctx context.Context, req models.SearchHospitalsRequest) ([]models.Hospital, int64, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Hospital), args.Get(1).(int64), args.Error(2)
}

func (m *MockHospitalRepository) GetSpecialties(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockSMSSender is a mock implementation of interfaces.SMSSender
type MockSMSSender struct {
	mock.Mock
}

func (m *MockSMSSender) SendSMS(ctx context.Context, to, message string) models.SMSResult {
	args := m.Called(ctx, to, message)
	return args.Get(0).(models.SMSResult)
}

type emergencyServiceMocks struct {
	emergencyRepo *MockEmergencyRepository
	patientRepo   *MockPatientRepository
	userRepo      *MockUserRepository
	hospitalRepo  *MockHospitalRepository
	smsSender     *MockSMSSender
}

func newEmergencyService() (*EmergencyService, *emergencyServiceMocks) {
	mocks := &emergencyServiceMocks{
		emergencyRepo: new(MockEmergencyRepository),
		patientRepo:   new(MockPatientRepository),
		userRepo:      new(MockUserRepository),
		hospitalRepo:  new(MockHospitalRepository),
		smsSender:     new(MockSMSSender),
	}
	service := NewEmergencyService(
		mocks.emergencyRepo,
		mocks.patientRepo,
		mocks.userRepo,
		mocks.hospitalRepo,
		mocks.smsSender,
	)
	return service, mocks
}

func floatPtr(v float64) *float64 {
	return &v
}

func testUser(userID primitive.ObjectID) *models.User {
	return &models.User{
		ID:        userID,
		Email:     "jane@example.com",
		FirstName: "Jane",
		LastName:  "Doe",
		Phone:     "+919800000000",
		Role:      models.RolePatient,
		IsActive:  true,
		EmergencyContact: &models.PersonalContact{
			Name:  "John Doe",
			Phone: "+919811111111",
		},
	}
}

func testTriggerRequest() models.TriggerSOSRequest {
	return models.TriggerSOSRequest{
		EmergencyType: models.EmergencyTypeCardiac,
		Severity:      models.SeverityCritical,
		Description:   "Severe chest pain",
		Location: models.SOSLocationRequest{
			Latitude:  floatPtr(28.6139),
			Longitude: floatPtr(77.2090),
			Address:   "12 Park Street",
		},
	}
}

func TestTriggerSOS_MissingCoordinates(t *testing.T) {
	service, mocks := newEmergencyService()

	req := testTriggerRequest()
	req.Location.Latitude = nil

	resp, err := service.TriggerSOS(context.Background(), primitive.NewObjectID().Hex(), req)

	require.Error(t, err)
	assert.Nil(t, resp)
	svcErr, ok := utils.GetServiceError(err)
	require.True(t, ok)
	assert.Equal(t, 400, svcErr.StatusCode)
	mocks.emergencyRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestTriggerSOS_NoPatientProfile(t *testing.T) {
	service, mocks := newEmergencyService()
	userID := primitive.NewObjectID()

	mocks.userRepo.On("GetByID", mock.Anything, userID.Hex()).Return(testUser(userID), nil)
	mocks.patientRepo.On("GetByUserID", mock.Anything, userID.Hex()).Return(nil, utils.NewPatientNotFoundError())

	resp, err := service.TriggerSOS(context.Background(), userID.Hex(), testTriggerRequest())

	require.Error(t, err)
	assert.Nil(t, resp)
	svcErr, ok := utils.GetServiceError(err)
	require.True(t, ok)
	assert.Equal(t, 404, svcErr.StatusCode)
	assert.Equal(t, "Patient profile not found", svcErr.Message)
	mocks.emergencyRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestTriggerSOS_Success(t *testing.T) {
	service, mocks := newEmergencyService()
	userID := primitive.NewObjectID()
	patient := &models.Patient{ID: primitive.NewObjectID(), UserID: userID}
	hospital := models.Hospital{
		ID:   primitive.NewObjectID(),
		Name: "City General",
		Address: models.HospitalAddress{
			City:        "Delhi",
			Coordinates: models.NewGeoJSONPoint(28.62, 77.21),
		},
		Contact: models.HospitalContact{
			Phone:           "+911123456789",
			EmergencyNumber: "+911199999999",
		},
	}

	mocks.userRepo.On("GetByID", mock.Anything, userID.Hex()).Return(testUser(userID), nil)
	mocks.patientRepo.On("GetByUserID", mock.Anything, userID.Hex()).Return(patient, nil)
	mocks.emergencyRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Emergency")).Return(nil)
	mocks.hospitalRepo.On("FindEmergencyNearby", mock.Anything, 28.6139, 77.2090, 25.0, 5).Return([]models.Hospital{hospital}, nil)
	mocks.smsSender.On("SendSMS", mock.Anything, "+919811111111", mock.AnythingOfType("string")).
		Return(models.SMSResult{Success: true, MessageID: "SM123"})
	mocks.emergencyRepo.On("Update", mock.Anything, mock.AnythingOfType("*models.Emergency")).Return(nil)

	resp, err := service.TriggerSOS(context.Background(), userID.Hex(), testTriggerRequest())

	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, models.EmergencyStatusActive, resp.Emergency.Status)
	assert.Equal(t, models.EmergencyTypeCardiac, resp.Emergency.EmergencyType)

	require.Len(t, resp.NearbyHospitals, 1)
	assert.Equal(t, "City General", resp.NearbyHospitals[0].Name)
	assert.Equal(t, "+911199999999", resp.NearbyHospitals[0].Phone)
	require.NotNil(t, resp.NearbyHospitals[0].DistanceKm)
	assert.Less(t, *resp.NearbyHospitals[0].DistanceKm, 2.0)

	require.Len(t, resp.Notifications, 1)
	assert.Equal(t, models.NotificationStatusSent, resp.Notifications[0].Status)
	assert.Equal(t, "SM123", resp.Notifications[0].MessageID)

	assert.Equal(t, emergencyInstructions, resp.Instructions)

	mocks.emergencyRepo.AssertCalled(t, "Update", mock.Anything, mock.MatchedBy(func(e *models.Emergency) bool {
		return len(e.Contacts) == 1 && e.Contacts[0].Notified && e.Contacts[0].NotifiedAt != nil &&
			len(e.Responders) == 1 && e.Responders[0].Status == models.ResponderStatusNotified
	}))
}

func TestTriggerSOS_SMSFailureIsolated(t *testing.T) {
	service, mocks := newEmergencyService()
	userID := primitive.NewObjectID()
	patient := &models.Patient{ID: primitive.NewObjectID(), UserID: userID}

	mocks.userRepo.On("GetByID", mock.Anything, userID.Hex()).Return(testUser(userID), nil)
	mocks.patientRepo.On("GetByUserID", mock.Anything, userID.Hex()).Return(patient, nil)
	mocks.emergencyRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Emergency")).Return(nil)
	mocks.hospitalRepo.On("FindEmergencyNearby", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]models.Hospital{}, nil)
	mocks.smsSender.On("SendSMS", mock.Anything, "+919811111111", mock.AnythingOfType("string")).
		Return(models.SMSResult{Success: false, Error: "SMS service not configured"})
	mocks.emergencyRepo.On("Update", mock.Anything, mock.AnythingOfType("*models.Emergency")).Return(nil)

	resp, err := service.TriggerSOS(context.Background(), userID.Hex(), testTriggerRequest())

	require.NoError(t, err)
	require.Len(t, resp.Notifications, 1)
	assert.Equal(t, models.NotificationStatusFailed, resp.Notifications[0].Status)
	assert.Equal(t, "SMS service not configured", resp.Notifications[0].Error)

	mocks.emergencyRepo.AssertCalled(t, "Update", mock.Anything, mock.MatchedBy(func(e *models.Emergency) bool {
		return len(e.Contacts) == 1 && !e.Contacts[0].Notified && e.Contacts[0].NotifiedAt == nil
	}))
}

func TestTriggerSOS_LocatorFailureAbortsAfterCaseCreated(t *testing.T) {
	service, mocks := newEmergencyService()
	userID := primitive.NewObjectID()
	patient := &models.Patient{ID: primitive.NewObjectID(), UserID: userID}

	mocks.userRepo.On("GetByID", mock.Anything, userID.Hex()).Return(testUser(userID), nil)
	mocks.patientRepo.On("GetByUserID", mock.Anything, userID.Hex()).Return(patient, nil)
	mocks.emergencyRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Emergency")).Return(nil)
	mocks.hospitalRepo.On("FindEmergencyNearby", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, utils.NewDatabaseError("find emergency hospitals", nil))

	resp, err := service.TriggerSOS(context.Background(), userID.Hex(), testTriggerRequest())

	require.Error(t, err)
	assert.Nil(t, resp)
	svcErr, ok := utils.GetServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "LOCATION_SERVICE_ERROR", svcErr.Code)

	mocks.emergencyRepo.AssertCalled(t, "Create", mock.Anything, mock.Anything)
	mocks.smsSender.AssertNotCalled(t, "SendSMS", mock.Anything, mock.Anything, mock.Anything)
}

func TestTriggerSOS_NoEmergencyContact(t *testing.T) {
	service, mocks := newEmergencyService()
	userID := primitive.NewObjectID()
	patient := &models.Patient{ID: primitive.NewObjectID(), UserID: userID}

	user := testUser(userID)
	user.EmergencyContact = nil

	mocks.userRepo.On("GetByID", mock.Anything, userID.Hex()).Return(user, nil)
	mocks.patientRepo.On("GetByUserID", mock.Anything, userID.Hex()).Return(patient, nil)
	mocks.emergencyRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Emergency")).Return(nil)
	mocks.hospitalRepo.On("FindEmergencyNearby", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]models.Hospital{}, nil)
	mocks.emergencyRepo.On("Update", mock.Anything, mock.AnythingOfType("*models.Emergency")).Return(nil)

	resp, err := service.TriggerSOS(context.Background(), userID.Hex(), testTriggerRequest())

	require.NoError(t, err)
	assert.Empty(t, resp.Notifications)
	mocks.smsSender.AssertNotCalled(t, "SendSMS", mock.Anything, mock.Anything, mock.Anything)
}

func TestFormatEmergencyAlert_AddressFallback(t *testing.T) {
	user := testUser(primitive.NewObjectID())
	emergency := &models.Emergency{
		Location: models.EmergencyLocation{
			Coordinates: models.Coordinates{Latitude: 28.6139, Longitude: 77.209},
		},
	}

	message := formatEmergencyAlert(user, emergency)

	assert.Contains(t, message, "Patient: Jane Doe")
	assert.Contains(t, message, "Lat: 28.6139, Lng: 77.209")
	assert.Contains(t, message, "Emergency Contact: +919811111111")
	assert.True(t, strings.HasSuffix(message, "Please respond immediately!"))
}

func TestGetStatus_ScopedToPatient(t *testing.T) {
	service, mocks := newEmergencyService()
	userID := primitive.NewObjectID()
	patient := &models.Patient{ID: primitive.NewObjectID(), UserID: userID}
	emergencyID := primitive.NewObjectID()

	mocks.patientRepo.On("GetByUserID", mock.Anything, userID.Hex()).Return(patient, nil)
	mocks.emergencyRepo.On("GetByIDForPatient", mock.Anything, emergencyID.Hex(), patient.ID).
		Return(nil, utils.NewEmergencyNotFoundError())

	resp, err := service.GetStatus(context.Background(), userID.Hex(), emergencyID.Hex())

	require.Error(t, err)
	assert.Nil(t, resp)
	svcErr, ok := utils.GetServiceError(err)
	require.True(t, ok)
	assert.Equal(t, 404, svcErr.StatusCode)
}

func TestGetHistory_Pagination(t *testing.T) {
	service, mocks := newEmergencyService()
	userID := primitive.NewObjectID()
	patient := &models.Patient{ID: primitive.NewObjectID(), UserID: userID}

	mocks.patientRepo.On("GetByUserID", mock.Anything, userID.Hex()).Return(patient, nil)
	mocks.emergencyRepo.On("GetHistoryByPatient", mock.Anything, patient.ID, 2, 10).
		Return([]models.Emergency{{ID: primitive.NewObjectID()}}, int64(25), nil)

	emergencies, meta, err := service.GetHistory(context.Background(), userID.Hex(), 2, 10)

	require.NoError(t, err)
	assert.Len(t, emergencies, 1)
	require.NotNil(t, meta)
	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, int64(25), meta.Total)
	assert.Equal(t, 3, meta.TotalPages)
	assert.True(t, meta.HasNext)
	assert.True(t, meta.HasPrev)
}

func TestGetHistory_DefaultsPageAndLimit(t *testing.T) {
	service, mocks := newEmergencyService()
	userID := primitive.NewObjectID()
	patient := &models.Patient{ID: primitive.NewObjectID(), UserID: userID}

	mocks.patientRepo.On("GetByUserID", mock.Anything, userID.Hex()).Return(patient, nil)
	mocks.emergencyRepo.On("GetHistoryByPatient", mock.Anything, patient.ID, 1, 10).
		Return([]models.Emergency{}, int64(0), nil)

	_, meta, err := service.GetHistory(context.Background(), userID.Hex(), 0, 0)

	require.NoError(t, err)
	assert.Equal(t, 1, meta.Page)
	assert.False(t, meta.HasNext)
	assert.False(t, meta.HasPrev)
}

func TestUpdateStatus_ResolvedSetsResolvedAt(t *testing.T) {
	service, mocks := newEmergencyService()
	emergency := &models.Emergency{
		ID:     primitive.NewObjectID(),
		Status: models.EmergencyStatusActive,
	}

	mocks.emergencyRepo.On("GetByID", mock.Anything, emergency.ID.Hex()).Return(emergency, nil)
	mocks.emergencyRepo.On("Update", mock.Anything, emergency).Return(nil)

	resp, err := service.UpdateStatus(context.Background(), emergency.ID.Hex(), models.UpdateEmergencyStatusRequest{
		Status: models.EmergencyStatusResolved,
	})

	require.NoError(t, err)
	assert.Equal(t, models.EmergencyStatusResolved, resp.Status)
	require.NotNil(t, emergency.ResolvedAt)
}

func TestUpdateStatus_ResolvedAtPreservedOnReopen(t *testing.T) {
	service, mocks := newEmergencyService()
	resolvedAt := time.Now().Add(-time.Hour)
	emergency := &models.Emergency{
		ID:         primitive.NewObjectID(),
		Status:     models.EmergencyStatusResolved,
		ResolvedAt: &resolvedAt,
	}

	mocks.emergencyRepo.On("GetByID", mock.Anything, emergency.ID.Hex()).Return(emergency, nil)
	mocks.emergencyRepo.On("Update", mock.Anything, emergency).Return(nil)

	_, err := service.UpdateStatus(context.Background(), emergency.ID.Hex(), models.UpdateEmergencyStatusRequest{
		Status: models.EmergencyStatusActive,
	})

	require.NoError(t, err)
	assert.Equal(t, models.EmergencyStatusActive, emergency.Status)
	require.NotNil(t, emergency.ResolvedAt)
	assert.Equal(t, resolvedAt.Unix(), emergency.ResolvedAt.Unix())
}

func TestUpdateStatus_ResponderUpdate(t *testing.T) {
	service, mocks := newEmergencyService()
	responderID := primitive.NewObjectID()
	eta := time.Now().Add(10 * time.Minute)
	emergency := &models.Emergency{
		ID:     primitive.NewObjectID(),
		Status: models.EmergencyStatusActive,
		Responders: []models.EmergencyResponder{
			{ID: responderID, Type: models.ResponderTypeHospital, Name: "City General", Status: models.ResponderStatusNotified},
		},
	}

	mocks.emergencyRepo.On("GetByID", mock.Anything, emergency.ID.Hex()).Return(emergency, nil)
	mocks.emergencyRepo.On("Update", mock.Anything, emergency).Return(nil)

	resp, err := service.UpdateStatus(context.Background(), emergency.ID.Hex(), models.UpdateEmergencyStatusRequest{
		ResponderUpdate: &models.ResponderUpdateRequest{
			ResponderID:      responderID.Hex(),
			Status:           models.ResponderStatusDispatched,
			EstimatedArrival: &eta,
		},
	})

	require.NoError(t, err)
	require.Len(t, resp.Responders, 1)
	assert.Equal(t, models.ResponderStatusDispatched, resp.Responders[0].Status)
	require.NotNil(t, resp.Responders[0].EstimatedArrival)
}

func TestUpdateStatus_UnknownResponder(t *testing.T) {
	service, mocks := newEmergencyService()
	emergency := &models.Emergency{
		ID:     primitive.NewObjectID(),
		Status: models.EmergencyStatusActive,
	}

	mocks.emergencyRepo.On("GetByID", mock.Anything, emergency.ID.Hex()).Return(emergency, nil)

	resp, err := service.UpdateStatus(context.Background(), emergency.ID.Hex(), models.UpdateEmergencyStatusRequest{
		ResponderUpdate: &models.ResponderUpdateRequest{
			ResponderID: primitive.NewObjectID().Hex(),
			Status:      models.ResponderStatusDispatched,
		},
	})

	require.Error(t, err)
	assert.Nil(t, resp)
	svcErr, ok := utils.GetServiceError(err)
	require.True(t, ok)
	assert.Equal(t, 404, svcErr.StatusCode)
	assert.Equal(t, "Responder not found", svcErr.Message)
	mocks.emergencyRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateStatus_NotesAppend(t *testing.T) {
	service, mocks := newEmergencyService()
	emergency := &models.Emergency{
		ID:     primitive.NewObjectID(),
		Status: models.EmergencyStatusActive,
		Notes:  "2026-01-02T10:00:00Z: first responder call placed",
	}

	mocks.emergencyRepo.On("GetByID", mock.Anything, emergency.ID.Hex()).Return(emergency, nil)
	mocks.emergencyRepo.On("Update", mock.Anything, emergency).Return(nil)

	_, err := service.UpdateStatus(context.Background(), emergency.ID.Hex(), models.UpdateEmergencyStatusRequest{
		Notes: "patient stabilized",
	})

	require.NoError(t, err)
	lines := strings.Split(emergency.Notes, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "2026-01-02T10:00:00Z: first responder call placed", lines[0])
	assert.True(t, strings.HasSuffix(lines[1], ": patient stabilized"))
	assert.Equal(t, models.EmergencyStatusActive, emergency.Status)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	service, mocks := newEmergencyService()
	emergencyID := primitive.NewObjectID().Hex()

	mocks.emergencyRepo.On("GetByID", mock.Anything, emergencyID).Return(nil, utils.NewEmergencyNotFoundError())

	resp, err := service.UpdateStatus(context.Background(), emergencyID, models.UpdateEmergencyStatusRequest{
		Status: models.EmergencyStatusResolved,
	})

	require.Error(t, err)
	assert.Nil(t, resp)
	svcErr, ok := utils.GetServiceError(err)
	require.True(t, ok)
	assert.Equal(t, 404, svcErr.StatusCode)
}
