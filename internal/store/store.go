// Package store holds the four collection stores. Each store exclusively
// owns one entity collection (ordered, unique string IDs), loads it once at
// construction and re-serializes the whole collection to its storage key
// after every mutation. Reads of missing IDs return (nil, false); updates
// and deletes of missing IDs are silent no-ops. Durable writes are
// best-effort: on failure the in-memory state is authoritative until the
// next full reload.
package store

import "log"

// Storage keys, one slot per collection plus the timer slot and the
// invoice number sequence.
const (
	keyProjects        = "projects"
	keyTasks           = "tasks"
	keyTimeEntries     = "time-entries"
	keyActiveTimer     = "active-timer"
	keyInvoices        = "invoices"
	keyInvoiceSequence = "invoice-sequence"
)

// logPersistErr records a failed durable write. The mutation has already
// been applied in memory; the write is not retried.
func logPersistErr(key string, err error) {
	if err != nil {
		log.Printf("zentime: failed to persist %s: %v", key, err)
	}
}
