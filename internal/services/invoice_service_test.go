package services

import (
	"context"
	"strings"
	"testing"

	"workshop-system/internal/dto"
	"workshop-system/internal/entities"
	"workshop-system/pkg/config"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingJobRepo struct {
	*fakeJobRepo
	updates []map[string]interface{}
}

func (r *recordingJobRepo) UpdateJob(ctx context.Context, id string, sets map[string]interface{}) (*entities.Job, error) {
	r.updates = append(r.updates, sets)
	return r.fakeJobRepo.UpdateJob(ctx, id, sets)
}

func (r *recordingJobRepo) UpdateJobInTx(ctx context.Context, tx pgx.Tx, id string, sets map[string]interface{}) (*entities.Job, error) {
	r.updates = append(r.updates, sets)
	return r.fakeJobRepo.UpdateJobInTx(ctx, tx, id, sets)
}

func testWorkshop() config.WorkshopConfig {
	return config.WorkshopConfig{
		Name:    "ICD TUNING",
		Tagline: "Performance Tuning | ECU Remaps | Custom Builds",
		City:    "Chennai, Tamil Nadu",
		Phone:   "+91 98765 43210",
		Email:   "icdtuning@gmail.com",
		GSTRate: 18.0,
	}
}

func TestGenerateInvoicePDF_DoesNotTouchTheJob(t *testing.T) {
	job := pendingJob("9f3c21ab-77aa-4bd0-9c44-0f2d8f9de111", "rudhan")
	repo := &recordingJobRepo{fakeJobRepo: newFakeJobRepo(job)}
	svc := NewInvoiceService(repo, NewInvoicePDFService(testWorkshop()), testWorkshop())

	pdfBytes, filename, err := svc.GenerateInvoicePDF(context.Background(), job.ID, dto.InvoiceDataDTO{
		LabourCost: 1000,
		PartsCost:  500,
		TuningCost: 2000,
	})
	require.NoError(t, err)

	assert.Empty(t, repo.updates)
	assert.True(t, strings.HasPrefix(filename, "invoice_ICD-"))
	assert.True(t, strings.HasSuffix(filename, ".pdf"))
	require.NotEmpty(t, pdfBytes)
	assert.Equal(t, "%PDF", string(pdfBytes[:4]))

	stored, err := repo.FindJob(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.InvoiceAmount)
}

func TestGenerateInvoicePDF_UnknownJob(t *testing.T) {
	repo := &recordingJobRepo{fakeJobRepo: newFakeJobRepo()}
	svc := NewInvoiceService(repo, NewInvoicePDFService(testWorkshop()), testWorkshop())

	_, _, err := svc.GenerateInvoicePDF(context.Background(), "missing", dto.InvoiceDataDTO{})
	assert.Error(t, err)
}

func TestGenerateInvoicePDF_DefaultsGSTRate(t *testing.T) {
	svc := &InvoiceService{workshop: testWorkshop()}

	input := svc.toInput(dto.InvoiceDataDTO{LabourCost: 100})
	assert.Equal(t, 18.0, input.GSTRate)

	zero := 0.0
	input = svc.toInput(dto.InvoiceDataDTO{LabourCost: 100, GSTRate: &zero})
	assert.Equal(t, 0.0, input.GSTRate)
}
