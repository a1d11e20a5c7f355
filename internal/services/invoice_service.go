package services

import (
	"context"
	"fmt"
	"time"

	"workshop-system/internal/dto"
	"workshop-system/internal/entities"
	"workshop-system/internal/repositories"
	"workshop-system/pkg/config"
)

type InvoiceServiceInterface interface {
	GenerateInvoicePDF(ctx context.Context, jobID string, payload dto.InvoiceDataDTO) ([]byte, string, error)
}

type InvoiceService struct {
	jobRepo  repositories.JobRepositoryInterface
	pdf      *InvoicePDFService
	workshop config.WorkshopConfig
}

func NewInvoiceService(jobRepo repositories.JobRepositoryInterface, pdf *InvoicePDFService, workshop config.WorkshopConfig) InvoiceServiceInterface {
	return &InvoiceService{jobRepo: jobRepo, pdf: pdf, workshop: workshop}
}

func (s *InvoiceService) toInput(payload dto.InvoiceDataDTO) entities.InvoiceInput {
	gstRate := s.workshop.GSTRate
	if payload.GSTRate != nil {
		gstRate = *payload.GSTRate
	}

	charges := make([]entities.CustomCharge, 0, len(payload.CustomCharges))
	for _, c := range payload.CustomCharges {
		charges = append(charges, entities.CustomCharge{Description: c.Description, Amount: c.Amount})
	}

	return entities.InvoiceInput{
		LabourCost:    payload.LabourCost,
		PartsCost:     payload.PartsCost,
		TuningCost:    payload.TuningCost,
		OtherCharges:  payload.OtherCharges,
		CustomCharges: charges,
		GSTRate:       gstRate,
	}
}

// GenerateInvoicePDF renders the invoice for a job. The invoice is derived
// on demand from the submitted cost lines; the job row is left untouched.
func (s *InvoiceService) GenerateInvoicePDF(ctx context.Context, jobID string, payload dto.InvoiceDataDTO) ([]byte, string, error) {
	job, err := s.jobRepo.FindJob(ctx, jobID)
	if err != nil {
		return nil, "", err
	}

	input := s.toInput(payload)
	totals := ComputeInvoice(input)
	now := time.Now()

	pdfBytes, err := s.pdf.Render(job, input, totals, now)
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("invoice_%s.pdf", InvoiceNumber(job.ID, now))
	return pdfBytes, filename, nil
}
