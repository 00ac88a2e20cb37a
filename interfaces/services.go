// interfaces/services.go
package interfaces

import (
	"context"

	"carelink/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Repository and transport contracts consumed by the service layer. Services
// depend on these instead of concrete implementations so tests can drive them
// with mocks.

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateEmergencyContact(ctx context.Context, userID string, contact models.PersonalContact) error
	UpdateLastLogin(ctx context.Context, userID string) error
}

type PatientRepository interface {
	Create(ctx context.Context, patient *models.Patient) error
	GetByUserID(ctx context.Context, userID string) (*models.Patient, error)
	Update(ctx context.Context, patient *models.Patient) error
}

type HospitalRepository interface {
	GetByID(ctx context.Context, id string) (*models.Hospital, error)
	FindNearby(ctx context.Context, req models.NearbyHospitalsRequest) ([]models.Hospital, int64, error)
	FindEmergencyNearby(ctx context.Context, lat, lng, radiusKm float64, limit int) ([]models.Hospital, error)
	Search(ctx context.Context, req models.SearchHospitalsRequest) ([]models.Hospital, int64, error)
	GetSpecialties(ctx context.Context) ([]string, error)
}

type EmergencyRepository interface {
	Create(ctx context.Context, emergency *models.Emergency) error
	GetByID(ctx context.Context, id string) (*models.Emergency, error)
	GetByIDForPatient(ctx context.Context, id string, patientID primitive.ObjectID) (*models.Emergency, error)
	GetHistoryByPatient(ctx context.Context, patientID primitive.ObjectID, page, limit int) ([]models.Emergency, int64, error)
	Update(ctx context.Context, emergency *models.Emergency) error
}

// SMSSender delivers one text message. Implementations report failure through
// the result, never by panicking or aborting the caller's batch.
type SMSSender interface {
	SendSMS(ctx context.Context, to, message string) models.SMSResult
}
