package partstock

import (
	"fmt"
	"iter"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Ledger is the authoritative, ordered collection of parts.
//
// Insertion order is the canonical order; display order is a projection
// concern (see Project). The ledger has exactly one writer context, so no
// internal locking is needed.
type Ledger struct {
	parts    []Part
	issued   map[string]bool // every id handed out this session, even if since removed
	currency string
	clock    func() time.Time
}

// NewLedger creates an empty ledger pricing parts in the given currency.
func NewLedger(currency string) *Ledger {
	return &Ledger{
		issued:   make(map[string]bool),
		currency: currency,
		clock:    time.Now,
	}
}

// Currency returns the currency new parts are priced in.
func (l *Ledger) Currency() string { return l.currency }

// Len returns the number of parts in the ledger.
func (l *Ledger) Len() int { return len(l.parts) }

// Parts iterates over the parts in canonical (insertion) order.
func (l *Ledger) Parts() iter.Seq[Part] {
	return func(yield func(Part) bool) {
		for _, p := range l.parts {
			if !yield(p) {
				return
			}
		}
	}
}

// Get returns the part with the given id.
func (l *Ledger) Get(id string) (Part, bool) {
	for _, p := range l.parts {
		if p.ID == id {
			return p, true
		}
	}
	return Part{}, false
}

// Find returns the part whose id matches idOrPrefix, either exactly or as
// an unambiguous prefix. Display layers truncate ids; this lets commands
// accept the truncated form.
func (l *Ledger) Find(idOrPrefix string) (Part, bool) {
	if p, ok := l.Get(idOrPrefix); ok {
		return p, true
	}
	var match Part
	found := false
	for _, p := range l.parts {
		if strings.HasPrefix(p.ID, idOrPrefix) {
			if found {
				return Part{}, false // ambiguous
			}
			match, found = p, true
		}
	}
	return match, found
}

// Append adds an already-formed part, typically while decoding a snapshot.
// It enforces id uniqueness but trusts the part's CreatedAt.
func (l *Ledger) Append(p Part) error {
	if p.ID == "" {
		return fmt.Errorf("part %q has no id", p.Name)
	}
	if l.issued[p.ID] {
		return fmt.Errorf("duplicate part id %q", p.ID)
	}
	if p.Quantity <= 0 {
		return fmt.Errorf("part %q has a non-positive quantity %d", p.Name, p.Quantity)
	}
	l.issued[p.ID] = true
	l.parts = append(l.parts, p)
	return nil
}

// Add validates the draft, mints a fresh unique id, stamps the creation
// time, and appends the new part to the ledger. The returned part is the
// stored value.
func (l *Ledger) Add(d Draft) (Part, error) {
	if err := d.Validate(); err != nil {
		return Part{}, err
	}
	price := d.Price
	if price.Currency() == "" {
		price = M(price.Decimal(), l.currency)
	}
	id := uuid.NewString()
	for l.issued[id] {
		id = uuid.NewString()
	}
	p := Part{
		ID:        id,
		Name:      d.Name,
		Quantity:  d.Quantity,
		Price:     price,
		CreatedAt: l.clock().UnixMilli(),
	}
	l.issued[id] = true
	l.parts = append(l.parts, p)
	return p, nil
}

// Removal describes the outcome of a successful RemoveQuantity call.
type Removal struct {
	Part      Part  // the part as it was before the removal
	Full      bool  // true when the part was deleted entirely
	Remaining int64 // quantity left in the ledger (0 on a full removal)
}

// RemoveQuantity removes amount units of the part with the given id.
//
// When amount equals the current quantity the part is deleted entirely;
// a zero-quantity part never persists in the ledger. When amount is lower,
// the quantity is decremented in place and every other field is unchanged.
// On any error the ledger is left exactly as it was.
func (l *Ledger) RemoveQuantity(id string, amount int64) (Removal, error) {
	idx := -1
	for i, p := range l.parts {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Removal{}, fmt.Errorf("remove from %q: %w", id, ErrNotFound)
	}
	if amount <= 0 {
		return Removal{}, &InvalidAmountError{Amount: amount}
	}
	p := l.parts[idx]
	if amount > p.Quantity {
		return Removal{}, &InsufficientStockError{Name: p.Name, Requested: amount, Available: p.Quantity}
	}
	if amount == p.Quantity {
		l.parts = append(l.parts[:idx], l.parts[idx+1:]...)
		return Removal{Part: p, Full: true}, nil
	}
	l.parts[idx].Quantity -= amount
	return Removal{Part: p, Remaining: l.parts[idx].Quantity}, nil
}
