package addressbook

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/addressbook-go/addressbook/internal/ordered"
	"github.com/addressbook-go/addressbook/internal/telemetry"
)

// Book is a directory of contact records keyed by name. Records iterate in
// name insertion order; adding a record under a name already in the book
// replaces the old record without moving it.
type Book struct {
	records *ordered.Map[Name, *Record]
	metrics *telemetry.Metrics
	now     func() time.Time
}

// New creates an empty Book.
func New() *Book {
	return &Book{
		records: ordered.New[Name, *Record](),
		now:     time.Now,
	}
}

// NewWithMetrics creates an empty Book that reports operation counts, scan
// durations and its current record count to the given Prometheus
// registerer. A nil registerer means the default one. Registering two books
// on the same registerer panics, as duplicate collector registration does.
func NewWithMetrics(registerer prometheus.Registerer) *Book {
	b := New()
	b.metrics = telemetry.NewMetrics(registerer, func() float64 { return float64(b.Len()) })

	return b
}

// AddRecord stores r under its name. Storing a second record under the same
// name is not an error: the newer record wins and keeps the position the
// name already had in iteration order.
func (b *Book) AddRecord(r *Record) {
	status := "created"
	if b.records.Set(r.Name(), r) {
		status = "replaced"
	}

	b.metrics.ObserveOp("add_record", status)
}

// Find returns the record stored under name. The returned record is the
// live one, so mutating it mutates the book's contents. The second result
// is false when the name is unknown; an unknown name is not an error.
func (b *Book) Find(name string) (*Record, bool) {
	r, ok := b.records.Get(Name(name))
	if ok {
		b.metrics.ObserveOp("find", "found")
	} else {
		b.metrics.ObserveOp("find", "missing")
	}

	return r, ok
}

// Delete removes the record stored under name. Deleting an unknown name is
// a no-op, not an error.
func (b *Book) Delete(name string) {
	if b.records.Delete(Name(name)) {
		b.metrics.ObserveOp("delete", "deleted")
	} else {
		b.metrics.ObserveOp("delete", "missing")
	}
}

// Records returns the book's records in insertion order. The slice is a
// snapshot, but the records it points to are live.
func (b *Book) Records() []*Record {
	return b.records.Values()
}

// Len returns the number of records in the book.
func (b *Book) Len() int { return b.records.Len() }
