package services

import (
	"bytes"
	"fmt"
	"time"

	"workshop-system/internal/entities"
	"workshop-system/pkg/config"

	"github.com/go-pdf/fpdf"
)

type InvoicePDFService struct {
	workshop config.WorkshopConfig
}

func NewInvoicePDFService(workshop config.WorkshopConfig) *InvoicePDFService {
	return &InvoicePDFService{workshop: workshop}
}

// Render produces the printable invoice for a completed job.
func (s *InvoicePDFService) Render(job *entities.Job, input entities.InvoiceInput, totals entities.InvoiceTotals, now time.Time) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	// Letterhead
	pdf.SetFont("Helvetica", "B", 22)
	pdf.SetTextColor(200, 30, 30)
	pdf.CellFormat(0, 10, s.workshop.Name, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(80, 80, 80)
	pdf.CellFormat(0, 5, s.workshop.Tagline, "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 5, s.workshop.City, "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 5, fmt.Sprintf("Phone: %s | Email: %s", s.workshop.Phone, s.workshop.Email), "", 1, "C", false, 0, "")
	pdf.Ln(4)
	pdf.SetDrawColor(200, 30, 30)
	pdf.SetLineWidth(0.6)
	pdf.Line(10, pdf.GetY(), 200, pdf.GetY())
	pdf.Ln(6)

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, "TAX INVOICE", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(95, 6, fmt.Sprintf("Invoice No: %s", InvoiceNumber(job.ID, now)), "", 0, "L", false, 0, "")
	pdf.CellFormat(95, 6, fmt.Sprintf("Date: %s", now.Format("02 Jan 2006")), "", 1, "R", false, 0, "")
	pdf.Ln(4)

	// Customer and vehicle block
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(95, 6, "Billed To", "", 0, "L", false, 0, "")
	pdf.CellFormat(95, 6, "Vehicle", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)

	vin := "-"
	if job.VIN != nil && *job.VIN != "" {
		vin = *job.VIN
	}
	left := []string{job.CustomerName, job.ContactNumber}
	right := []string{
		fmt.Sprintf("%s %s (%d)", job.CarBrand, job.CarModel, job.Year),
		fmt.Sprintf("Reg: %s", job.RegistrationNumber),
		fmt.Sprintf("VIN: %s", vin),
	}
	for i := 0; i < len(right); i++ {
		l := ""
		if i < len(left) {
			l = left[i]
		}
		pdf.CellFormat(95, 5, l, "", 0, "L", false, 0, "")
		pdf.CellFormat(95, 5, right[i], "", 1, "L", false, 0, "")
	}
	pdf.Ln(6)

	// Charges table
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(140, 7, "Description", "1", 0, "L", true, 0, "")
	pdf.CellFormat(50, 7, "Amount (Rs)", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	row := func(desc string, amount float64) {
		pdf.CellFormat(140, 7, desc, "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, 7, fmt.Sprintf("%.2f", amount), "1", 1, "R", false, 0, "")
	}
	row("Labour charges", input.LabourCost)
	row("Parts", input.PartsCost)
	row("Tuning & calibration", input.TuningCost)
	if input.OtherCharges != 0 {
		row("Other charges", input.OtherCharges)
	}
	for _, charge := range input.CustomCharges {
		row(charge.Description, charge.Amount)
	}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(140, 7, "Subtotal", "1", 0, "R", false, 0, "")
	pdf.CellFormat(50, 7, fmt.Sprintf("%.2f", totals.Subtotal), "1", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(140, 7, fmt.Sprintf("GST @ %.1f%%", input.GSTRate), "1", 0, "R", false, 0, "")
	pdf.CellFormat(50, 7, fmt.Sprintf("%.2f", totals.GSTAmount), "1", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(200, 30, 30)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(140, 8, "GRAND TOTAL", "1", 0, "R", true, 0, "")
	pdf.CellFormat(50, 8, fmt.Sprintf("%.2f", totals.GrandTotal), "1", 1, "R", true, 0, "")

	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(8)

	if job.WorkDescription != "" {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(0, 6, "Work performed", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.MultiCell(0, 5, job.WorkDescription, "", "L", false)
		pdf.Ln(4)
	}

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.CellFormat(0, 5, fmt.Sprintf("%s | %s", s.workshop.Name, s.workshop.City), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 5, "Thank you for choosing us. Drive safe.", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render invoice pdf: %w", err)
	}
	return buf.Bytes(), nil
}
