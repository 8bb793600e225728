package partstock

import (
	"errors"
	"testing"
)

func TestLedger_Add(t *testing.T) {
	l := testLedger()

	names := []string{"Bolt", "Nut", "Washer", "Bearing", "Belt"}
	for i, name := range names {
		p, err := l.Add(Draft{Name: name, Quantity: int64(i + 1), Price: USD(1.5)})
		if err != nil {
			t.Fatalf("Add(%q) failed: %v", name, err)
		}
		if p.ID == "" {
			t.Errorf("Add(%q) minted an empty id", name)
		}
		if p.CreatedAt == 0 {
			t.Errorf("Add(%q) did not stamp createdAt", name)
		}
	}

	if got, want := l.Len(), len(names); got != want {
		t.Fatalf("ledger size = %d, want %d", got, want)
	}

	seen := map[string]bool{}
	for p := range l.Parts() {
		if seen[p.ID] {
			t.Errorf("duplicate id %q", p.ID)
		}
		seen[p.ID] = true
	}
}

func TestLedger_Add_defaultsCurrency(t *testing.T) {
	l := testLedger()
	p, err := l.Add(Draft{Name: "Bolt", Quantity: 1, Price: M(2.5, "")})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if got := p.Price.Currency(); got != "USD" {
		t.Errorf("price currency = %q, want USD", got)
	}
}

func TestLedger_Add_rejectsInvalidDrafts(t *testing.T) {
	testCases := []struct {
		name  string
		draft Draft
	}{
		{"empty name", Draft{Name: "  ", Quantity: 1, Price: USD(1)}},
		{"zero quantity", Draft{Name: "Bolt", Quantity: 0, Price: USD(1)}},
		{"negative quantity", Draft{Name: "Bolt", Quantity: -3, Price: USD(1)}},
		{"negative price", Draft{Name: "Bolt", Quantity: 1, Price: USD(-0.5)}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l := testLedger()
			if _, err := l.Add(tc.draft); err == nil {
				t.Errorf("Add(%+v) succeeded, want error", tc.draft)
			}
			if l.Len() != 0 {
				t.Errorf("ledger size = %d after rejected add, want 0", l.Len())
			}
		})
	}
}

// snapshot captures the ledger content for byte-for-byte comparisons.
func snapshot(l *Ledger) []Part {
	var parts []Part
	for p := range l.Parts() {
		parts = append(parts, p)
	}
	return parts
}

func equalParts(a, b []Part) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

func TestLedger_RemoveQuantity_full(t *testing.T) {
	l := testLedger()
	mustAdd(l, "Bolt", 10, 0.08)
	p := mustAdd(l, "Nut", 4, 0.12)

	removal, err := l.RemoveQuantity(p.ID, 4)
	if err != nil {
		t.Fatalf("RemoveQuantity failed: %v", err)
	}
	if !removal.Full {
		t.Error("removal.Full = false, want true")
	}
	if removal.Remaining != 0 {
		t.Errorf("removal.Remaining = %d, want 0", removal.Remaining)
	}
	if _, ok := l.Get(p.ID); ok {
		t.Errorf("part %q still present after full removal", p.ID)
	}
	if l.Len() != 1 {
		t.Errorf("ledger size = %d, want 1", l.Len())
	}
}

func TestLedger_RemoveQuantity_partial(t *testing.T) {
	l := testLedger()
	p := mustAdd(l, "Bolt", 10, 0.08)

	removal, err := l.RemoveQuantity(p.ID, 3)
	if err != nil {
		t.Fatalf("RemoveQuantity failed: %v", err)
	}
	if removal.Full {
		t.Error("removal.Full = true, want false")
	}
	if removal.Remaining != 7 {
		t.Errorf("removal.Remaining = %d, want 7", removal.Remaining)
	}

	got, ok := l.Get(p.ID)
	if !ok {
		t.Fatalf("part %q missing after partial removal", p.ID)
	}
	want := p
	want.Quantity = 7
	if !got.Equal(want) {
		t.Errorf("part after partial removal = %+v, want %+v", got, want)
	}
}

func TestLedger_RemoveQuantity_errors(t *testing.T) {
	l := testLedger()
	p := mustAdd(l, "Bolt", 10, 0.08)
	before := snapshot(l)

	testCases := []struct {
		name   string
		id     string
		amount int64
		check  func(error) bool
	}{
		{"not found", "no-such-id", 1, func(err error) bool { return errors.Is(err, ErrNotFound) }},
		{"zero amount", p.ID, 0, func(err error) bool {
			var e *InvalidAmountError
			return errors.As(err, &e)
		}},
		{"negative amount", p.ID, -2, func(err error) bool {
			var e *InvalidAmountError
			return errors.As(err, &e)
		}},
		{"insufficient stock", p.ID, 11, func(err error) bool {
			var e *InsufficientStockError
			return errors.As(err, &e) && e.Available == 10 && e.Requested == 11
		}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := l.RemoveQuantity(tc.id, tc.amount)
			if err == nil {
				t.Fatal("RemoveQuantity succeeded, want error")
			}
			if !tc.check(err) {
				t.Errorf("unexpected error: %v", err)
			}
			if !equalParts(snapshot(l), before) {
				t.Error("ledger changed by a failed removal")
			}
		})
	}
}

func TestLedger_Find(t *testing.T) {
	l := testLedger()
	if err := l.Append(Part{ID: "abcdef", Name: "Bolt", Quantity: 1, Price: USD(1), CreatedAt: 1}); err != nil {
		t.Fatal(err)
	}
	if err := l.Append(Part{ID: "abxyz", Name: "Nut", Quantity: 1, Price: USD(1), CreatedAt: 2}); err != nil {
		t.Fatal(err)
	}

	if p, ok := l.Find("abcdef"); !ok || p.Name != "Bolt" {
		t.Errorf("Find(exact) = %+v, %v", p, ok)
	}
	if p, ok := l.Find("abc"); !ok || p.Name != "Bolt" {
		t.Errorf("Find(prefix) = %+v, %v", p, ok)
	}
	if _, ok := l.Find("ab"); ok {
		t.Error("Find(ambiguous prefix) succeeded, want miss")
	}
	if _, ok := l.Find("zz"); ok {
		t.Error("Find(unknown) succeeded, want miss")
	}
}

func TestLedger_Append_rejectsDuplicates(t *testing.T) {
	l := testLedger()
	p := Part{ID: "id-1", Name: "Bolt", Quantity: 1, Price: USD(1), CreatedAt: 1}
	if err := l.Append(p); err != nil {
		t.Fatal(err)
	}
	if err := l.Append(p); err == nil {
		t.Error("Append accepted a duplicate id")
	}
	// An id stays burnt even after its part is removed.
	if _, err := l.RemoveQuantity("id-1", 1); err != nil {
		t.Fatal(err)
	}
	if err := l.Append(p); err == nil {
		t.Error("Append reused an id after removal")
	}
}
