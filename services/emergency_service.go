// services/emergency_service.go
package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"carelink/interfaces"
	"carelink/models"
	"carelink/utils"

	"github.com/sirupsen/logrus"
)

const (
	// Dispatch searches hospitals within this radius and notifies the closest ones.
	emergencySearchRadiusKm = 25.0
	emergencyResponderLimit = 5

	defaultContactRelation = "Emergency Contact"
)

var emergencyInstructions = []string{
	"Emergency services have been notified",
	"Your emergency contacts have been alerted",
	"Stay calm and follow medical guidance",
	"If possible, stay in a safe location",
	"Emergency responders are being dispatched",
}

type EmergencyService struct {
	emergencyRepo interfaces.EmergencyRepository
	patientRepo   interfaces.PatientRepository
	userRepo      interfaces.UserRepository
	hospitalRepo  interfaces.HospitalRepository
	smsSender     interfaces.SMSSender
}

func NewEmergencyService(
	emergencyRepo interfaces.EmergencyRepository,
	patientRepo interfaces.PatientRepository,
	userRepo interfaces.UserRepository,
	hospitalRepo interfaces.HospitalRepository,
	smsSender interfaces.SMSSender,
) *EmergencyService {
	return &EmergencyService{
		emergencyRepo: emergencyRepo,
		patientRepo:   patientRepo,
		userRepo:      userRepo,
		hospitalRepo:  hospitalRepo,
		smsSender:     smsSender,
	}
}

// TriggerSOS creates an emergency case for the calling user, locates nearby
// emergency-capable hospitals and alerts the user's personal contacts over
// SMS. The case survives downstream failures: once created it is never rolled
// back, and per-contact notification failures are reported in the outcomes
// rather than failing the call.
func (es *EmergencyService) TriggerSOS(ctx context.Context, userID string, req models.TriggerSOSRequest) (*models.TriggerSOSResponse, error) {
	if req.Location.Latitude == nil || req.Location.Longitude == nil {
		return nil, utils.NewBadRequestError("Location coordinates are required")
	}
	lat := *req.Location.Latitude
	lng := *req.Location.Longitude

	user, err := es.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	patient, err := es.patientRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	emergency := &models.Emergency{
		PatientID:     patient.ID,
		EmergencyType: req.EmergencyType,
		Severity:      req.Severity,
		Status:        models.EmergencyStatusActive,
		Description:   req.Description,
		Location: models.EmergencyLocation{
			Coordinates: models.Coordinates{
				Latitude:  lat,
				Longitude: lng,
			},
			Address:  req.Location.Address,
			Landmark: req.Location.Landmark,
		},
	}

	if req.Vitals != nil {
		emergency.Vitals = &models.EmergencyVitals{
			Consciousness: req.Vitals.Consciousness,
			Breathing:     req.Vitals.Breathing,
			Pulse:         req.Vitals.Pulse,
			Bleeding:      req.Vitals.Bleeding,
		}
	}

	if user.EmergencyContact != nil && user.EmergencyContact.Phone != "" {
		relation := user.EmergencyContact.Relation
		if relation == "" {
			relation = defaultContactRelation
		}
		emergency.Contacts = append(emergency.Contacts, models.EmergencyContact{
			Name:     user.EmergencyContact.Name,
			Phone:    user.EmergencyContact.Phone,
			Relation: relation,
		})
	}

	if err := es.emergencyRepo.Create(ctx, emergency); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"emergencyId": emergency.ID.Hex(),
		"patientId":   patient.ID.Hex(),
		"type":        emergency.EmergencyType,
		"severity":    emergency.Severity,
	}).Info("Emergency case created")

	hospitals, err := es.hospitalRepo.FindEmergencyNearby(ctx, lat, lng, emergencySearchRadiusKm, emergencyResponderLimit)
	if err != nil {
		// The case is already persisted and stays retrievable through the
		// status and history endpoints.
		return nil, utils.NewLocationServiceError("Failed to locate nearby hospitals", err)
	}

	for _, hospital := range hospitals {
		emergency.Responders = append(emergency.Responders, models.EmergencyResponder{
			ID:     hospital.ID,
			Type:   models.ResponderTypeHospital,
			Name:   hospital.Name,
			Phone:  hospital.EmergencyPhone(),
			Status: models.ResponderStatusNotified,
		})
	}

	notifications := es.notifyContacts(ctx, user, emergency)

	if err := es.emergencyRepo.Update(ctx, emergency); err != nil {
		return nil, err
	}

	return &models.TriggerSOSResponse{
		Emergency: models.EmergencySummary{
			ID:            emergency.ID,
			Status:        emergency.Status,
			EmergencyType: emergency.EmergencyType,
			Severity:      emergency.Severity,
			Location:      emergency.Location,
			CreatedAt:     emergency.CreatedAt,
		},
		NearbyHospitals: es.annotateDistances(lat, lng, hospitals),
		Notifications:   notifications,
		Instructions:    emergencyInstructions,
	}, nil
}

// notifyContacts fans the alert out to every contact concurrently. Successful
// deliveries mark the contact notified; failures only show up in the returned
// outcomes.
func (es *EmergencyService) notifyContacts(ctx context.Context, user *models.User, emergency *models.Emergency) []models.NotificationOutcome {
	message := formatEmergencyAlert(user, emergency)
	outcomes := make([]models.NotificationOutcome, len(emergency.Contacts))

	var wg sync.WaitGroup
	for i := range emergency.Contacts {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			contact := &emergency.Contacts[i]
			result := es.smsSender.SendSMS(ctx, contact.Phone, message)

			outcome := models.NotificationOutcome{
				Type:      models.NotificationTypeEmergencyContact,
				Recipient: contact.Phone,
			}
			if result.Success {
				now := time.Now()
				contact.Notified = true
				contact.NotifiedAt = &now
				outcome.Status = models.NotificationStatusSent
				outcome.MessageID = result.MessageID
			} else {
				outcome.Status = models.NotificationStatusFailed
				outcome.Error = result.Error
				logrus.WithFields(logrus.Fields{
					"emergencyId": emergency.ID.Hex(),
					"recipient":   contact.Phone,
				}).Warnf("Emergency contact notification failed: %s", result.Error)
			}
			outcomes[i] = outcome
		}(i)
	}
	wg.Wait()

	return outcomes
}

func (es *EmergencyService) annotateDistances(lat, lng float64, hospitals []models.Hospital) []models.NearbyResponder {
	responders := make([]models.NearbyResponder, 0, len(hospitals))
	for _, hospital := range hospitals {
		responders = append(responders, models.NearbyResponder{
			ID:         hospital.ID,
			Name:       hospital.Name,
			Phone:      hospital.EmergencyPhone(),
			Address:    hospital.Address,
			DistanceKm: utils.DistanceKm(lat, lng, hospital.Address.Coordinates),
		})
	}
	return responders
}

// GetStatus returns one of the calling patient's cases. Cases belonging to
// other patients read as not found.
func (es *EmergencyService) GetStatus(ctx context.Context, userID, emergencyID string) (*models.Emergency, error) {
	patient, err := es.patientRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return es.emergencyRepo.GetByIDForPatient(ctx, emergencyID, patient.ID)
}

// GetHistory lists the calling patient's cases newest-first.
func (es *EmergencyService) GetHistory(ctx context.Context, userID string, page, limit int) ([]models.Emergency, *models.MetaData, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	patient, err := es.patientRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	emergencies, total, err := es.emergencyRepo.GetHistoryByPatient(ctx, patient.ID, page, limit)
	if err != nil {
		return nil, nil, err
	}

	return emergencies, utils.CreatePaginationMeta(page, limit, total), nil
}

// UpdateStatus applies an operator update to a case. Status change, responder
// sub-update and note append are each optional and applied independently.
func (es *EmergencyService) UpdateStatus(ctx context.Context, emergencyID string, req models.UpdateEmergencyStatusRequest) (*models.UpdateEmergencyStatusResponse, error) {
	emergency, err := es.emergencyRepo.GetByID(ctx, emergencyID)
	if err != nil {
		return nil, err
	}

	if req.Status != "" {
		emergency.Status = req.Status
		// resolvedAt is an audit timestamp: set on first resolution, kept
		// even if the case is later reopened.
		if req.Status == models.EmergencyStatusResolved && emergency.ResolvedAt == nil {
			now := time.Now()
			emergency.ResolvedAt = &now
		}
	}

	if req.ResponderUpdate != nil {
		if err := applyResponderUpdate(emergency, req.ResponderUpdate); err != nil {
			return nil, err
		}
	}

	if req.Notes != "" {
		entry := fmt.Sprintf("%s: %s", time.Now().Format(time.RFC3339), req.Notes)
		if emergency.Notes != "" {
			emergency.Notes = emergency.Notes + "\n" + entry
		} else {
			emergency.Notes = entry
		}
	}

	if err := es.emergencyRepo.Update(ctx, emergency); err != nil {
		return nil, err
	}

	return &models.UpdateEmergencyStatusResponse{
		ID:         emergency.ID,
		Status:     emergency.Status,
		Responders: emergency.Responders,
		UpdatedAt:  emergency.UpdatedAt,
	}, nil
}

func applyResponderUpdate(emergency *models.Emergency, update *models.ResponderUpdateRequest) error {
	for i := range emergency.Responders {
		if emergency.Responders[i].ID.Hex() == update.ResponderID {
			emergency.Responders[i].Status = update.Status
			if update.EstimatedArrival != nil {
				emergency.Responders[i].EstimatedArrival = update.EstimatedArrival
			}
			return nil
		}
	}
	return utils.NewResponderNotFoundError()
}

func formatEmergencyAlert(user *models.User, emergency *models.Emergency) string {
	location := emergency.Location.Address
	if location == "" {
		location = fmt.Sprintf("Lat: %v, Lng: %v",
			emergency.Location.Coordinates.Latitude,
			emergency.Location.Coordinates.Longitude)
	}

	contactPhone := "N/A"
	if user.EmergencyContact != nil && user.EmergencyContact.Phone != "" {
		contactPhone = user.EmergencyContact.Phone
	}

	return fmt.Sprintf("🚨 EMERGENCY ALERT\nPatient: %s\nLocation: %s\nEmergency Contact: %s\nPlease respond immediately!",
		user.FullName(), location, contactPhone)
}
