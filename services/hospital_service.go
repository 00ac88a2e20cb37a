// services/hospital_service.go
package services

import (
	"context"

	"carelink/interfaces"
	"carelink/models"
	"carelink/utils"
)

const (
	defaultNearbyRadiusKm = 10.0
	emergencyListRadiusKm = 25.0
	emergencyListLimit    = 20
)

type HospitalService struct {
	hospitalRepo interfaces.HospitalRepository
}

func NewHospitalService(hospitalRepo interfaces.HospitalRepository) *HospitalService {
	return &HospitalService{
		hospitalRepo: hospitalRepo,
	}
}

// GetNearby lists active hospitals around a point, nearest first, with the
// rendered distance attached to each entry.
func (hs *HospitalService) GetNearby(ctx context.Context, req models.NearbyHospitalsRequest) ([]models.HospitalWithDistance, *models.MetaData, error) {
	if !utils.IsValidCoordinate(req.Latitude, req.Longitude) {
		return nil, nil, utils.NewBadRequestError("Invalid coordinates")
	}
	if req.RadiusKm <= 0 {
		req.RadiusKm = defaultNearbyRadiusKm
	}
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PageSize < 1 {
		req.PageSize = 10
	}

	hospitals, total, err := hs.hospitalRepo.FindNearby(ctx, req)
	if err != nil {
		return nil, nil, err
	}

	return hs.annotate(req.Latitude, req.Longitude, hospitals), utils.CreatePaginationMeta(req.Page, req.PageSize, total), nil
}

// GetEmergencyHospitals lists hospitals able to take emergency admissions
// right now: ambulance-equipped with a 24x7 emergency department.
func (hs *HospitalService) GetEmergencyHospitals(ctx context.Context, lat, lng float64) ([]models.HospitalWithDistance, error) {
	if !utils.IsValidCoordinate(lat, lng) {
		return nil, utils.NewBadRequestError("Invalid coordinates")
	}

	hospitals, err := hs.hospitalRepo.FindEmergencyNearby(ctx, lat, lng, emergencyListRadiusKm, emergencyListLimit)
	if err != nil {
		return nil, err
	}

	return hs.annotate(lat, lng, hospitals), nil
}

func (hs *HospitalService) Search(ctx context.Context, req models.SearchHospitalsRequest) ([]models.Hospital, *models.MetaData, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PageSize < 1 {
		req.PageSize = 10
	}

	hospitals, total, err := hs.hospitalRepo.Search(ctx, req)
	if err != nil {
		return nil, nil, err
	}

	return hospitals, utils.CreatePaginationMeta(req.Page, req.PageSize, total), nil
}

func (hs *HospitalService) GetSpecialties(ctx context.Context) ([]string, error) {
	return hs.hospitalRepo.GetSpecialties(ctx)
}

func (hs *HospitalService) GetByID(ctx context.Context, id string) (*models.Hospital, error) {
	return hs.hospitalRepo.GetByID(ctx, id)
}

func (hs *HospitalService) annotate(lat, lng float64, hospitals []models.Hospital) []models.HospitalWithDistance {
	annotated := make([]models.HospitalWithDistance, 0, len(hospitals))
	for _, hospital := range hospitals {
		entry := models.HospitalWithDistance{Hospital: hospital}
		if d := utils.DistanceKm(lat, lng, hospital.Address.Coordinates); d != nil {
			entry.Distance = utils.FormatDistanceKm(*d)
		}
		annotated = append(annotated, entry)
	}
	return annotated
}
