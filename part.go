package partstock

import (
	"fmt"
	"strings"
)

// Part is a single stock-keeping entry in the ledger.
//
// ID and CreatedAt are assigned once by the ledger and never change; only
// Quantity is mutated afterwards, and only through Ledger.RemoveQuantity.
type Part struct {
	ID        string
	Name      string
	Quantity  int64
	Price     Money
	CreatedAt int64 // unix milliseconds
}

// TotalValue returns the derived value of this entry (quantity times unit
// price). It is always recomputed, never stored.
func (p Part) TotalValue() Money { return p.Price.MulInt(p.Quantity) }

// Equal reports field-for-field equality, the equality used by the snapshot
// round-trip guarantee.
func (p Part) Equal(o Part) bool {
	return p.ID == o.ID &&
		p.Name == o.Name &&
		p.Quantity == o.Quantity &&
		p.Price.Equal(o.Price) &&
		p.CreatedAt == o.CreatedAt
}

// MarshalJSON writes the part with a fixed, canonical key order so that
// snapshots are stable and diff-friendly.
func (p Part) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", p.ID)
	w.Append("name", p.Name)
	w.Append("quantity", p.Quantity)
	w.Append("price", p.Price.Decimal())
	w.Optional("currency", p.Price.Currency())
	w.Append("createdAt", p.CreatedAt)
	return w.MarshalJSON()
}

// Draft is the user-supplied shape of a part before the ledger mints an ID
// and a creation time for it. Catalog records are normalized through the
// same type.
type Draft struct {
	Name     string
	Quantity int64
	Price    Money
}

// Validate checks a draft for correctness before it enters the ledger.
func (d Draft) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("draft has an empty name")
	}
	if d.Quantity <= 0 {
		return fmt.Errorf("draft %q has a non-positive quantity %d", d.Name, d.Quantity)
	}
	if d.Price.IsNegative() {
		return fmt.Errorf("draft %q has a negative price %s", d.Name, d.Price)
	}
	return nil
}
