package entities

import "time"

// JobStatus is the lifecycle position of a service job.
// Pending -> In Progress -> Done -> Delivered.
type JobStatus string

const (
	StatusPending    JobStatus = "Pending"
	StatusInProgress JobStatus = "In Progress"
	StatusDone       JobStatus = "Done"
	StatusDelivered  JobStatus = "Delivered"
)

// KnownStatuses in lifecycle order.
var KnownStatuses = []JobStatus{StatusPending, StatusInProgress, StatusDone, StatusDelivered}

func (s JobStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusDone, StatusDelivered:
		return true
	}
	return false
}

// IsActive reports whether a job still occupies the workshop floor.
// The mechanic dashboard partitions on exactly this predicate.
func (s JobStatus) IsActive() bool {
	return s == StatusPending || s == StatusInProgress
}

type Job struct {
	ID                 string
	CustomerName       string
	ContactNumber      string
	CarBrand           string
	CarModel           string
	Year               int
	RegistrationNumber string
	VIN                *string
	Kms                *int64
	EntryDate          time.Time
	EstimatedDelivery  time.Time
	CompletionDate     *time.Time
	AssignedMechanic   string
	WorkDescription    string
	Notes              *string
	Status             JobStatus
	Photos             []string
	InvoiceAmount      *float64
	ConfirmComplete    bool
	CreatedAt          time.Time
	UpdatedAt          *time.Time
}
