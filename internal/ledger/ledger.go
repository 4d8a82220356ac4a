// Package ledger owns the mutable per-store inventory state. It is the only
// stateful component of the service: every other signal is generated fresh
// per request.
package ledger

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/techflow/demandmock/internal/catalog"
)

// ErrStoreNotFound is returned for reads scoped to an unknown store.
var ErrStoreNotFound = errors.New("store not found")

// Rand supplies the random draws used to seed stock levels and to apply
// depletion drift. *signals.Source satisfies it.
type Rand interface {
	Intn(n int) int
	IntBetween(min, max int) int
}

// Record is the stock state for one (store, sku) pair.
type Record struct {
	CurrentStock int       `json:"current_stock"`
	ReorderPoint int       `json:"reorder_point"`
	LastUpdated  time.Time `json:"last_updated"`
}

// Snapshot is a point-in-time copy of the full ledger, keyed store -> sku.
type Snapshot map[string]map[string]Record

// Ledger holds one lock-guarded partition per store. Drift applies each
// (store, sku) update as a single read-modify-write under the partition
// lock; no invariant spans records, so there is no cross-partition locking.
type Ledger struct {
	stores     []string
	partitions map[string]*partition
	rng        Rand
}

type partition struct {
	mu      sync.Mutex
	records map[string]*Record
}

// New seeds a ledger for every (store, sku) pair in the catalog: stock
// uniform in [10, 100], reorder point uniform in [5, 20].
func New(cat *catalog.Catalog, rng Rand) *Ledger {
	now := time.Now().UTC()
	stores := cat.Stores()
	partitions := make(map[string]*partition, len(stores))
	for _, store := range stores {
		records := make(map[string]*Record, cat.Len())
		for _, sku := range cat.SKUs() {
			records[sku] = &Record{
				CurrentStock: rng.IntBetween(10, 100),
				ReorderPoint: rng.IntBetween(5, 20),
				LastUpdated:  now,
			}
		}
		partitions[store] = &partition{records: records}
	}
	return &Ledger{stores: stores, partitions: partitions, rng: rng}
}

// Read returns a copy of one store's records without advancing depletion.
// Unknown stores yield ErrStoreNotFound and leave the ledger untouched.
func (l *Ledger) Read(store string) (map[string]Record, error) {
	p, ok := l.partitions[store]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrStoreNotFound, store)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	return copyRecords(p.records), nil
}

// ReadAll applies the depletion drift to every record and returns the full
// snapshot. Each call advances real depletion; two calls deplete twice,
// since each poll stands for elapsed time between polls.
func (l *Ledger) ReadAll() Snapshot {
	now := time.Now().UTC()
	snap := make(Snapshot, len(l.stores))
	for _, store := range l.stores {
		p := l.partitions[store]
		p.mu.Lock()
		for _, rec := range p.records {
			// Interim sales only deplete: perturbation in [-2, 0].
			change := l.rng.Intn(3) - 2
			rec.CurrentStock = max(0, rec.CurrentStock+change)
			rec.LastUpdated = now
		}
		snap[store] = copyRecords(p.records)
		p.mu.Unlock()
	}
	return snap
}

// Stores returns the store identifiers the ledger partitions by.
func (l *Ledger) Stores() []string {
	return append([]string(nil), l.stores...)
}

func copyRecords(records map[string]*Record) map[string]Record {
	out := make(map[string]Record, len(records))
	for sku, rec := range records {
		out[sku] = *rec
	}
	return out
}
