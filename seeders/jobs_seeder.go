package seeders

import (
	"context"
	"fmt"
	"time"

	"workshop-system/internal/entities"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type seedJob struct {
	CustomerName       string
	ContactNumber      string
	CarBrand           string
	CarModel           string
	Year               int
	RegistrationNumber string
	AssignedMechanic   string
	WorkDescription    string
	Status             entities.JobStatus
	DaysToDelivery     int
}

var sampleJobs = []seedJob{
	{
		CustomerName:       "Arjun Menon",
		ContactNumber:      "+91 98400 12345",
		CarBrand:           "Hyundai",
		CarModel:           "Creta 1.5 CRDi",
		Year:               2021,
		RegistrationNumber: "TN-10-AB-1234",
		AssignedMechanic:   "rudhan",
		WorkDescription:    "Stage 1 ECU remap with dyno verification",
		Status:             entities.StatusInProgress,
		DaysToDelivery:     3,
	},
	{
		CustomerName:       "Vikram Singh",
		ContactNumber:      "+91 90030 67890",
		CarBrand:           "Volkswagen",
		CarModel:           "Polo GT TSI",
		Year:               2019,
		RegistrationNumber: "TN-09-XY-5678",
		AssignedMechanic:   "suresh",
		WorkDescription:    "Intercooler upgrade and DSG tune",
		Status:             entities.StatusPending,
		DaysToDelivery:     7,
	},
}

func seedJobs(ctx context.Context, db *pgxpool.Pool) error {
	var count int
	if err := db.QueryRow(ctx, "SELECT COUNT(*) FROM jobs").Scan(&count); err != nil {
		return fmt.Errorf("count jobs: %w", err)
	}
	if count > 0 {
		return nil
	}

	now := time.Now()
	for _, j := range sampleJobs {
		_, err := db.Exec(ctx,
			`INSERT INTO jobs (id, customer_name, contact_number, car_brand, car_model, year,
			     registration_number, entry_date, estimated_delivery, assigned_mechanic,
			     work_description, status, photos)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, '{}')`,
			uuid.NewString(), j.CustomerName, j.ContactNumber, j.CarBrand, j.CarModel, j.Year,
			j.RegistrationNumber, now, now.AddDate(0, 0, j.DaysToDelivery),
			j.AssignedMechanic, j.WorkDescription, string(j.Status))
		if err != nil {
			return fmt.Errorf("insert job for %s: %w", j.CustomerName, err)
		}
	}
	return nil
}
