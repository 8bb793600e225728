package partstock

import (
	"errors"
	"fmt"
)

// ErrNotFound reports that an operation referenced an id absent from the
// ledger. Callers usually treat it as a stale-reference no-op rather than a
// hard failure.
var ErrNotFound = errors.New("part not found")

// InvalidAmountError reports a removal amount that is not a positive integer.
type InvalidAmountError struct {
	Amount int64
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("invalid amount %d: must be a positive integer", e.Amount)
}

// InsufficientStockError reports a removal amount larger than the available
// quantity. The ledger is left untouched.
type InsufficientStockError struct {
	Name      string
	Requested int64
	Available int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("cannot remove %d of %q: only %d available", e.Requested, e.Name, e.Available)
}

// PersistenceError reports that the durable store rejected a snapshot write.
// The in-memory ledger remains authoritative and unaffected.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence %s failed: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
