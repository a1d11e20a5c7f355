package dto

type WhatsAppRequestDTO struct {
	JobID   string `json:"job_id" validate:"required,uuid4"`
	Message string `json:"message" validate:"required,min=1"`
}

type IntegrationResultDTO struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	Recipient  string `json:"recipient,omitempty"`
	JobCount   int    `json:"job_count,omitempty"`
	SheetURL   string `json:"sheet_url,omitempty"`
	SetupGuide string `json:"setup_guide,omitempty"`
}
