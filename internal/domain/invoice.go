package domain

import (
	"errors"
	"time"
)

type InvoiceStatus string

const (
	InvoiceStatusDraft   InvoiceStatus = "draft"
	InvoiceStatusSent    InvoiceStatus = "sent"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusOverdue InvoiceStatus = "overdue"
)

// InvoiceLineItem is an immutable snapshot of one time entry taken at
// invoice-generation time. The source entry may later be edited or deleted
// with no effect on the snapshot.
type InvoiceLineItem struct {
	ID          string  `json:"id"`
	TimeEntryID string  `json:"timeEntryId"` // weak reference to the source entry
	Description string  `json:"description"`
	Date        string  `json:"date"` // calendar date of the entry's start time
	Duration    int     `json:"duration"`
	HourlyRate  float64 `json:"hourlyRate"`
	Amount      float64 `json:"amount"`
}

type Invoice struct {
	ID            string            `json:"id"`
	InvoiceNumber string            `json:"invoiceNumber"`
	ProjectID     string            `json:"projectId"`
	ClientName    string            `json:"clientName"`  // copied at creation, not kept in sync
	ProjectName   string            `json:"projectName"` // copied at creation, not kept in sync
	Status        InvoiceStatus     `json:"status"`
	IssueDate     string            `json:"issueDate"`
	DueDate       string            `json:"dueDate"`
	LineItems     []InvoiceLineItem `json:"lineItems"`
	Subtotal      float64           `json:"subtotal"`
	TaxRate       float64           `json:"taxRate"` // percent, e.g. 10 for 10%
	TaxAmount     float64           `json:"taxAmount"`
	Total         float64           `json:"total"`
	Notes         string            `json:"notes,omitempty"`
	CreatedAt     time.Time         `json:"createdAt"`
	SentAt        *time.Time        `json:"sentAt,omitempty"`
	PaidAt        *time.Time        `json:"paidAt,omitempty"`
}

// NewInvoice creates a draft invoice for a project. The ID, invoice number
// and CreatedAt stamp are assigned by the invoice store on Add.
func NewInvoice(projectID, clientName, projectName, issueDate, dueDate string) *Invoice {
	return &Invoice{
		ProjectID:   projectID,
		ClientName:  clientName,
		ProjectName: projectName,
		Status:      InvoiceStatusDraft,
		IssueDate:   issueDate,
		DueDate:     dueDate,
		LineItems:   make([]InvoiceLineItem, 0),
	}
}

// CalculateTotals recalculates subtotal, tax amount and total from the line
// items and the tax rate: taxAmount = subtotal * taxRate/100.
func (i *Invoice) CalculateTotals() {
	i.Subtotal = 0
	for _, item := range i.LineItems {
		i.Subtotal += item.Amount
	}
	i.TaxAmount = i.Subtotal * i.TaxRate / 100
	i.Total = i.Subtotal + i.TaxAmount
}

// IsOutstanding reports whether the invoice counts toward pending value
func (i *Invoice) IsOutstanding() bool {
	return i.Status == InvoiceStatusSent || i.Status == InvoiceStatusOverdue
}

// Validate returns an error if the invoice is invalid
func (i *Invoice) Validate() error {
	if i.ProjectID == "" {
		return errors.New("project ID is required")
	}
	if i.IssueDate == "" {
		return errors.New("issue date is required")
	}
	if i.DueDate == "" {
		return errors.New("due date is required")
	}
	if i.TaxRate < 0 || i.TaxRate > 100 {
		return errors.New("tax rate must be between 0 and 100")
	}
	switch i.Status {
	case InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusPaid, InvoiceStatusOverdue:
	default:
		return errors.New("invalid invoice status")
	}
	return nil
}
