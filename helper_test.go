package partstock

import "time"

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// testClock returns a clock that starts at a fixed instant and advances by
// one second per call, so createdAt values are deterministic and distinct.
func testClock() func() time.Time {
	t := time.UnixMilli(1_700_000_000_000)
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

// testLedger creates a USD ledger with a deterministic clock.
func testLedger() *Ledger {
	l := NewLedger("USD")
	l.clock = testClock()
	return l
}

// mustAdd adds a draft or panics, for terse test setup.
func mustAdd(l *Ledger, name string, quantity int64, price float64) Part {
	p, err := l.Add(Draft{Name: name, Quantity: quantity, Price: USD(price)})
	if err != nil {
		panic(err)
	}
	return p
}
