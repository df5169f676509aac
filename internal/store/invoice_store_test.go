package store

import (
	"fmt"
	"testing"
	"time"

	"github.com/andy/zentime/internal/domain"
)

func newTestInvoice() *domain.Invoice {
	return domain.NewInvoice("proj-1", "ACME", "Website", "2026-03-01", "2026-03-31")
}

func TestInvoiceStoreAddAssignsNumber(t *testing.T) {
	s, err := NewInvoiceStore(newTestBackend(t), "INV")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	now := time.Now()
	want := fmt.Sprintf("INV-%d%02d-001", now.Year(), int(now.Month()))

	inv := s.Add(newTestInvoice())
	if inv.InvoiceNumber != want {
		t.Fatalf("expected number %s, got %s", want, inv.InvoiceNumber)
	}
	if inv.ID == "" || inv.CreatedAt.IsZero() {
		t.Fatalf("expected ID and CreatedAt to be assigned")
	}

	inv2 := s.Add(newTestInvoice())
	want2 := fmt.Sprintf("INV-%d%02d-002", now.Year(), int(now.Month()))
	if inv2.InvoiceNumber != want2 {
		t.Fatalf("expected number %s, got %s", want2, inv2.InvoiceNumber)
	}
}

func TestInvoiceStoreSequenceNotRewoundByDelete(t *testing.T) {
	s, err := NewInvoiceStore(newTestBackend(t), "INV")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first := s.Add(newTestInvoice())
	s.Delete(first.ID)

	second := s.Add(newTestInvoice())
	if second.InvoiceNumber == first.InvoiceNumber {
		t.Fatalf("deleting an invoice must not free its number")
	}
}

func TestInvoiceStoreSequenceSurvivesReload(t *testing.T) {
	backend := newTestBackend(t)

	s1, err := NewInvoiceStore(backend, "INV")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first := s1.Add(newTestInvoice())

	s2, err := NewInvoiceStore(backend, "INV")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second := s2.Add(newTestInvoice())
	if second.InvoiceNumber == first.InvoiceNumber {
		t.Fatalf("expected the sequence to advance across reloads")
	}
}

func TestInvoiceStoreStatusStamps(t *testing.T) {
	s, err := NewInvoiceStore(newTestBackend(t), "INV")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	inv := s.Add(newTestInvoice())

	sent := domain.InvoiceStatusSent
	s.Update(inv.ID, InvoiceUpdate{Status: &sent})
	got, _ := s.Get(inv.ID)
	if got.SentAt == nil {
		t.Fatalf("expected SentAt to be stamped")
	}
	sentStamp := *got.SentAt

	paid := domain.InvoiceStatusPaid
	s.Update(inv.ID, InvoiceUpdate{Status: &paid})
	got, _ = s.Get(inv.ID)
	if got.PaidAt == nil {
		t.Fatalf("expected PaidAt to be stamped")
	}
	if !got.SentAt.Equal(sentStamp) {
		t.Fatalf("expected SentAt to be preserved through later transitions")
	}

	// Flipping back to sent must not clear or restamp either timestamp
	paidStamp := *got.PaidAt
	s.Update(inv.ID, InvoiceUpdate{Status: &sent})
	got, _ = s.Get(inv.ID)
	if !got.SentAt.Equal(sentStamp) || !got.PaidAt.Equal(paidStamp) {
		t.Fatalf("status stamps must be write-once")
	}
}

func TestInvoiceStoreGetByNumber(t *testing.T) {
	s, err := NewInvoiceStore(newTestBackend(t), "INV")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	inv := s.Add(newTestInvoice())
	got, ok := s.GetByNumber(inv.InvoiceNumber)
	if !ok || got.ID != inv.ID {
		t.Fatalf("expected to find invoice by number")
	}
	if _, ok := s.GetByNumber("INV-9999-999"); ok {
		t.Fatalf("expected miss for unknown number")
	}
}

func TestInvoiceStoreListByStatus(t *testing.T) {
	s, err := NewInvoiceStore(newTestBackend(t), "INV")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	a := s.Add(newTestInvoice())
	s.Add(newTestInvoice())

	sent := domain.InvoiceStatusSent
	s.Update(a.ID, InvoiceUpdate{Status: &sent})

	if got := s.ListByStatus(domain.InvoiceStatusSent); len(got) != 1 || got[0].ID != a.ID {
		t.Fatalf("expected exactly the sent invoice")
	}
	if got := s.ListByStatus(domain.InvoiceStatusDraft); len(got) != 1 {
		t.Fatalf("expected one draft invoice, got %d", len(got))
	}
}
