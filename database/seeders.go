package database

import (
	"context"
	"time"

	"carelink/models"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// RunSeeders populates the database with sample data for development
func RunSeeders(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := seedHospitals(ctx, db); err != nil {
		return err
	}

	return nil
}

// seedHospitals inserts sample hospitals when the collection is empty
func seedHospitals(ctx context.Context, db *mongo.Database) error {
	col := db.Collection("hospitals")

	count, err := col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		logrus.Debug("Hospitals collection already seeded, skipping")
		return nil
	}

	now := time.Now()
	hospitals := []interface{}{
		models.Hospital{
			Name:               "City General Hospital",
			RegistrationNumber: "DL-HOSP-2011-0042",
			Type:               models.HospitalTypeGovernment,
			Specialties:        []string{"cardiology", "neurology", "orthopedics", "general medicine"},
			Address: models.HospitalAddress{
				Street:      "14 Ring Road",
				City:        "New Delhi",
				State:       "Delhi",
				ZipCode:     "110002",
				Coordinates: models.NewGeoJSONPoint(28.6304, 77.2177),
			},
			Contact: models.HospitalContact{
				Phone:           "+911123456789",
				Email:           "info@citygeneral.example.com",
				EmergencyNumber: "+911123456700",
			},
			Facilities: []string{"pharmacy", "laboratory", "radiology"},
			OperatingHours: models.HospitalOperatingHours{
				Emergency24x7: true,
			},
			EmergencyServices: models.HospitalEmergencyServices{
				Ambulance:    true,
				TraumaCenter: true,
				ICU:          true,
				BloodBank:    true,
			},
			Rating:    4.2,
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		},
		models.Hospital{
			Name:               "Sunrise Multi-Specialty Hospital",
			RegistrationNumber: "DL-HOSP-2015-0318",
			Type:               models.HospitalTypeMultiSpec,
			Specialties:        []string{"cardiology", "oncology", "pediatrics", "gynecology"},
			Address: models.HospitalAddress{
				Street:      "7 Nehru Place",
				City:        "New Delhi",
				State:       "Delhi",
				ZipCode:     "110019",
				Coordinates: models.NewGeoJSONPoint(28.5494, 77.2518),
			},
			Contact: models.HospitalContact{
				Phone:           "+911126547890",
				Email:           "care@sunrisehospital.example.com",
				EmergencyNumber: "+911126547800",
				Website:         "https://sunrisehospital.example.com",
			},
			Facilities: []string{"pharmacy", "laboratory", "cafeteria", "parking"},
			OperatingHours: models.HospitalOperatingHours{
				Emergency24x7: true,
			},
			EmergencyServices: models.HospitalEmergencyServices{
				Ambulance:    true,
				TraumaCenter: false,
				ICU:          true,
				BloodBank:    true,
			},
			Rating:    4.5,
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		},
		models.Hospital{
			Name:               "Lotus Heart Institute",
			RegistrationNumber: "DL-HOSP-2018-0921",
			Type:               models.HospitalTypeSuperSpec,
			Specialties:        []string{"cardiology", "cardiac surgery"},
			Address: models.HospitalAddress{
				Street:      "22 Saket District Centre",
				City:        "New Delhi",
				State:       "Delhi",
				ZipCode:     "110017",
				Coordinates: models.NewGeoJSONPoint(28.5273, 77.2195),
			},
			Contact: models.HospitalContact{
				Phone: "+911129876543",
				Email: "contact@lotusheart.example.com",
			},
			OperatingHours: models.HospitalOperatingHours{
				Open:  "08:00",
				Close: "20:00",
			},
			EmergencyServices: models.HospitalEmergencyServices{
				Ambulance: false,
				ICU:       true,
			},
			Rating:    4.7,
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		},
		models.Hospital{
			Name:               "Green Valley Community Hospital",
			RegistrationNumber: "DL-HOSP-2009-0104",
			Type:               models.HospitalTypeTrust,
			Specialties:        []string{"general medicine", "orthopedics", "dermatology"},
			Address: models.HospitalAddress{
				Street:      "3 Rohini Sector 9",
				City:        "New Delhi",
				State:       "Delhi",
				ZipCode:     "110085",
				Coordinates: models.NewGeoJSONPoint(28.7163, 77.1170),
			},
			Contact: models.HospitalContact{
				Phone:           "+911127890123",
				EmergencyNumber: "+911127890100",
			},
			OperatingHours: models.HospitalOperatingHours{
				Emergency24x7: true,
			},
			EmergencyServices: models.HospitalEmergencyServices{
				Ambulance: true,
				ICU:       false,
				BloodBank: false,
			},
			Rating:    3.9,
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	result, err := col.InsertMany(ctx, hospitals)
	if err != nil {
		return err
	}

	logrus.Infof("Seeded %d hospitals", len(result.InsertedIDs))
	return nil
}
