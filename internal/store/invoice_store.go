package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/andy/zentime/internal/domain"
	"github.com/andy/zentime/internal/storage"
	"github.com/google/uuid"
)

// invoiceSequence is the persisted monotonic counter behind invoice
// numbers. It lives in its own storage slot so deleting invoices can never
// produce a duplicate number.
type invoiceSequence struct {
	Next int `json:"next"`
}

// InvoiceStore owns the invoice collection and the number sequence
type InvoiceStore struct {
	mu       sync.RWMutex
	backend  *storage.Store
	invoices []*domain.Invoice
	seq      invoiceSequence
	prefix   string
}

// NewInvoiceStore loads the invoice collection and the number sequence.
// prefix is the invoice number prefix, e.g. "INV".
func NewInvoiceStore(backend *storage.Store, prefix string) (*InvoiceStore, error) {
	s := &InvoiceStore{backend: backend, prefix: prefix, seq: invoiceSequence{Next: 1}}
	if _, err := backend.Read(keyInvoices, &s.invoices); err != nil {
		return nil, fmt.Errorf("failed to load invoices: %w", err)
	}
	if _, err := backend.Read(keyInvoiceSequence, &s.seq); err != nil {
		return nil, fmt.Errorf("failed to load invoice sequence: %w", err)
	}
	return s, nil
}

// List returns the invoices in insertion order
func (s *InvoiceStore) List() []*domain.Invoice {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.Invoice, len(s.invoices))
	copy(out, s.invoices)
	return out
}

// Get returns the invoice with the given ID, or (nil, false)
func (s *InvoiceStore) Get(id string) (*domain.Invoice, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, inv := range s.invoices {
		if inv.ID == id {
			return inv, true
		}
	}
	return nil, false
}

// GetByNumber returns the invoice with the given number, or (nil, false)
func (s *InvoiceStore) GetByNumber(number string) (*domain.Invoice, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, inv := range s.invoices {
		if inv.InvoiceNumber == number {
			return inv, true
		}
	}
	return nil, false
}

// ListByProject returns the invoices referencing the given project
func (s *InvoiceStore) ListByProject(projectID string) []*domain.Invoice {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*domain.Invoice
	for _, inv := range s.invoices {
		if inv.ProjectID == projectID {
			out = append(out, inv)
		}
	}
	return out
}

// ListByStatus returns the invoices with the given status
func (s *InvoiceStore) ListByStatus(status domain.InvoiceStatus) []*domain.Invoice {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*domain.Invoice
	for _, inv := range s.invoices {
		if inv.Status == status {
			out = append(out, inv)
		}
	}
	return out
}

// Add assigns a fresh ID, the next invoice number and a creation stamp,
// appends the invoice and persists both the collection and the sequence.
func (s *InvoiceStore) Add(inv *domain.Invoice) *domain.Invoice {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	inv.ID = uuid.NewString()
	inv.InvoiceNumber = s.nextNumberLocked(now)
	inv.CreatedAt = now
	s.invoices = append(s.invoices, inv)
	s.persist()
	return inv
}

// nextNumberLocked formats PREFIX-{year}{2-digit month}-{3-digit seq} and
// advances the persisted counter.
func (s *InvoiceStore) nextNumberLocked(now time.Time) string {
	number := fmt.Sprintf("%s-%d%02d-%03d", s.prefix, now.Year(), int(now.Month()), s.seq.Next)
	s.seq.Next++
	logPersistErr(keyInvoiceSequence, s.backend.Write(keyInvoiceSequence, s.seq))
	return number
}

// InvoiceUpdate is a partial update; nil fields are left unchanged
type InvoiceUpdate struct {
	Status  *domain.InvoiceStatus
	DueDate *string
	Notes   *string
}

// Update merges the patch into the matching invoice. The first transition
// into sent stamps SentAt, the first transition into paid stamps PaidAt;
// neither stamp is ever cleared by later status changes. Unknown IDs are a
// silent no-op.
func (s *InvoiceStore) Update(id string, upd InvoiceUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, inv := range s.invoices {
		if inv.ID != id {
			continue
		}
		if upd.Status != nil {
			if *upd.Status == domain.InvoiceStatusSent && inv.Status != domain.InvoiceStatusSent && inv.SentAt == nil {
				now := time.Now()
				inv.SentAt = &now
			}
			if *upd.Status == domain.InvoiceStatusPaid && inv.Status != domain.InvoiceStatusPaid && inv.PaidAt == nil {
				now := time.Now()
				inv.PaidAt = &now
			}
			inv.Status = *upd.Status
		}
		if upd.DueDate != nil {
			inv.DueDate = *upd.DueDate
		}
		if upd.Notes != nil {
			inv.Notes = *upd.Notes
		}
		s.persist()
		return
	}
}

// Delete removes the invoice if present. The number sequence is not
// rewound.
func (s *InvoiceStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, inv := range s.invoices {
		if inv.ID == id {
			s.invoices = append(s.invoices[:i], s.invoices[i+1:]...)
			s.persist()
			return
		}
	}
}

func (s *InvoiceStore) persist() {
	logPersistErr(keyInvoices, s.backend.Write(keyInvoices, s.invoices))
}
