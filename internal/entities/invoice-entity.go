package entities

// CustomCharge is an ad-hoc invoice line beyond the fixed categories.
type CustomCharge struct {
	Description string
	Amount      float64
}

// InvoiceInput are the cost lines an invoice is derived from. The invoice
// itself is never persisted; it is recomputed from these inputs on demand.
type InvoiceInput struct {
	LabourCost    float64
	PartsCost     float64
	TuningCost    float64
	OtherCharges  float64
	CustomCharges []CustomCharge
	GSTRate       float64
}

type InvoiceTotals struct {
	Subtotal   float64
	GSTAmount  float64
	GrandTotal float64
}
