package dto

// CreateJobDTO is the manager's intake form. Optional numerics that the
// client leaves blank arrive as absent fields, never as zero.
type CreateJobDTO struct {
	CustomerName       string   `json:"customer_name" validate:"required,min=2"`
	ContactNumber      string   `json:"contact_number" validate:"required,phone_like"`
	CarBrand           string   `json:"car_brand" validate:"required"`
	CarModel           string   `json:"car_model" validate:"required"`
	Year               int      `json:"year" validate:"required,plausible_year"`
	RegistrationNumber string   `json:"registration_number" validate:"required"`
	VIN                *string  `json:"vin,omitempty"`
	Kms                *int64   `json:"kms,omitempty" validate:"omitempty,gte=0"`
	EntryDate          string   `json:"entry_date" validate:"required,datetime=2006-01-02"`
	AssignedMechanic   string   `json:"assigned_mechanic" validate:"required"`
	WorkDescription    string   `json:"work_description" validate:"required"`
	EstimatedDelivery  string   `json:"estimated_delivery" validate:"required,datetime=2006-01-02"`
	InvoiceAmount      *float64 `json:"invoice_amount,omitempty" validate:"omitempty,gte=0"`
}

type UpdateJobDTO struct {
	CustomerName       *string  `json:"customer_name,omitempty" validate:"omitempty,min=2"`
	ContactNumber      *string  `json:"contact_number,omitempty" validate:"omitempty,phone_like"`
	CarBrand           *string  `json:"car_brand,omitempty"`
	CarModel           *string  `json:"car_model,omitempty"`
	Year               *int     `json:"year,omitempty" validate:"omitempty,plausible_year"`
	RegistrationNumber *string  `json:"registration_number,omitempty"`
	VIN                *string  `json:"vin,omitempty"`
	Kms                *int64   `json:"kms,omitempty" validate:"omitempty,gte=0"`
	EntryDate          *string  `json:"entry_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	AssignedMechanic   *string  `json:"assigned_mechanic,omitempty"`
	WorkDescription    *string  `json:"work_description,omitempty"`
	EstimatedDelivery  *string  `json:"estimated_delivery,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Status             *string  `json:"status,omitempty" validate:"omitempty,oneof='Pending' 'In Progress' 'Done' 'Delivered'"`
	InvoiceAmount      *float64 `json:"invoice_amount,omitempty" validate:"omitempty,gte=0"`
	Notes              *string  `json:"notes,omitempty"`
	ConfirmComplete    *bool    `json:"confirm_complete,omitempty"`
}

type JobDTO struct {
	ID                 string   `json:"id"`
	CustomerName       string   `json:"customer_name"`
	ContactNumber      string   `json:"contact_number"`
	CarBrand           string   `json:"car_brand"`
	CarModel           string   `json:"car_model"`
	Year               int      `json:"year"`
	RegistrationNumber string   `json:"registration_number"`
	VIN                string   `json:"vin,omitempty"`
	Kms                *int64   `json:"kms,omitempty"`
	EntryDate          string   `json:"entry_date"`
	AssignedMechanic   string   `json:"assigned_mechanic"`
	WorkDescription    string   `json:"work_description"`
	EstimatedDelivery  string   `json:"estimated_delivery"`
	Status             string   `json:"status"`
	Photos             []string `json:"photos"`
	InvoiceAmount      *float64 `json:"invoice_amount,omitempty"`
	Notes              string   `json:"notes,omitempty"`
	CompletionDate     string   `json:"completion_date,omitempty"`
	ConfirmComplete    bool     `json:"confirm_complete"`
	CreatedAt          string   `json:"created_at"`
}

type StatsDTO struct {
	Active    int `json:"active"`
	Completed int `json:"completed"`
	Total     int `json:"total"`
}
