package dto

type CustomChargeDTO struct {
	Description string  `json:"description" validate:"required"`
	Amount      float64 `json:"amount" validate:"gte=0"`
}

// InvoiceDataDTO are the cost lines submitted for invoice generation.
// GSTRate defaults to 18 percent when omitted.
type InvoiceDataDTO struct {
	LabourCost    float64           `json:"labour_cost" validate:"gte=0"`
	PartsCost     float64           `json:"parts_cost" validate:"gte=0"`
	TuningCost    float64           `json:"tuning_cost" validate:"gte=0"`
	OtherCharges  float64           `json:"other_charges" validate:"gte=0"`
	CustomCharges []CustomChargeDTO `json:"custom_charges" validate:"omitempty,dive"`
	GSTRate       *float64          `json:"gst_rate,omitempty" validate:"omitempty,gte=0,lte=100"`
}
