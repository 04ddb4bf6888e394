// Package ledger implements querying, summarizing and mutating movements
// and their categories.
//
// All operations return errors of type *Error, which carry a Kind
// describing why the operation failed.
package ledger

// Ledger implements all operations on categories and movements.
//
// A Ledger holds no state apart from its Store and is cheap to create,
// so it can be created for every request.
type Ledger struct {
	store       Store
	maxPageSize int
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithMaxPageSize limits the page size for movement listings.
// A value of 0 means no limit.
func WithMaxPageSize(size int) Option {
	return func(l *Ledger) {
		l.maxPageSize = size
	}
}

// New returns a Ledger that operates on the store.
func New(store Store, opts ...Option) Ledger {
	l := Ledger{store: store}
	for _, opt := range opts {
		opt(&l)
	}

	return l
}
