package services

import (
	"fmt"
	"math"
	"strings"
	"time"

	"workshop-system/internal/entities"
)

// Round2 rounds to two decimal places, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ComputeInvoice sums the charge lines and applies GST on the subtotal.
// All arithmetic stays at full float64 precision; each figure is rounded
// to currency precision only for presentation.
func ComputeInvoice(input entities.InvoiceInput) entities.InvoiceTotals {
	subtotal := input.LabourCost + input.PartsCost + input.TuningCost + input.OtherCharges
	for _, charge := range input.CustomCharges {
		subtotal += charge.Amount
	}
	gstAmount := subtotal * input.GSTRate / 100

	return entities.InvoiceTotals{
		Subtotal:   Round2(subtotal),
		GSTAmount:  Round2(gstAmount),
		GrandTotal: Round2(subtotal + gstAmount),
	}
}

// InvoiceNumber derives a stable human-readable number from the job id,
// e.g. ICD-2026-9F3C21AB.
func InvoiceNumber(jobID string, now time.Time) string {
	short := strings.ReplaceAll(jobID, "-", "")
	if len(short) > 8 {
		short = short[:8]
	}
	return fmt.Sprintf("ICD-%d-%s", now.Year(), strings.ToUpper(short))
}
