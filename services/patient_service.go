// services/patient_service.go
package services

import (
	"context"

	"carelink/interfaces"
	"carelink/models"
)

type PatientService struct {
	patientRepo interfaces.PatientRepository
	userRepo    interfaces.UserRepository
}

func NewPatientService(patientRepo interfaces.PatientRepository, userRepo interfaces.UserRepository) *PatientService {
	return &PatientService{
		patientRepo: patientRepo,
		userRepo:    userRepo,
	}
}

// GetProfile returns the calling user's combined account and medical profile.
func (ps *PatientService) GetProfile(ctx context.Context, userID string) (*models.PatientProfile, error) {
	user, err := ps.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	patient, err := ps.patientRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &models.PatientProfile{
		Patient:          *patient,
		Email:            user.Email,
		FirstName:        user.FirstName,
		LastName:         user.LastName,
		Phone:            user.Phone,
		EmergencyContact: user.EmergencyContact,
	}, nil
}

func (ps *PatientService) UpdateProfile(ctx context.Context, userID string, req models.UpdatePatientProfileRequest) (*models.Patient, error) {
	patient, err := ps.patientRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.DateOfBirth != nil {
		patient.DateOfBirth = req.DateOfBirth
	}
	if req.Gender != "" {
		patient.Gender = req.Gender
	}
	if req.BloodGroup != "" {
		patient.BloodGroup = req.BloodGroup
	}
	if req.Allergies != nil {
		patient.Allergies = req.Allergies
	}
	if req.ChronicConditions != nil {
		patient.ChronicConditions = req.ChronicConditions
	}

	if err := ps.patientRepo.Update(ctx, patient); err != nil {
		return nil, err
	}

	return patient, nil
}

// UpdateEmergencyContact replaces the contact alerted during an SOS.
func (ps *PatientService) UpdateEmergencyContact(ctx context.Context, userID string, req models.UpdateEmergencyContactRequest) error {
	contact := models.PersonalContact{
		Name:     req.Name,
		Phone:    req.Phone,
		Relation: req.Relation,
	}
	return ps.userRepo.UpdateEmergencyContact(ctx, userID, contact)
}
