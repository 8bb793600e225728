// Package catalog supplies the initial inventory used when no snapshot
// exists yet. A source returns plain records: ids and creation times are
// minted by the ledger when the session normalizes them through the regular
// add path.
package catalog

import "context"

// Record is one part-shaped entry of a catalog. It carries no id and no
// creation time.
type Record struct {
	Name     string  `json:"name"`
	Quantity int64   `json:"quantity"`
	Price    float64 `json:"price"`
}

// Source supplies the initial list of parts.
type Source interface {
	Fetch(ctx context.Context) ([]Record, error)
}

// StaticSource is a fixed, built-in catalog.
type StaticSource []Record

// Fetch returns the records as-is.
func (s StaticSource) Fetch(_ context.Context) ([]Record, error) {
	return []Record(s), nil
}

// Default returns the built-in starter catalog, used when no remote catalog
// is configured.
func Default() StaticSource {
	return StaticSource{
		{Name: "M3 Hex Bolt", Quantity: 250, Price: 0.08},
		{Name: "M3 Nylock Nut", Quantity: 180, Price: 0.12},
		{Name: "608ZZ Bearing", Quantity: 40, Price: 1.35},
		{Name: "GT2 Timing Belt (1m)", Quantity: 12, Price: 3.20},
		{Name: "NEMA 17 Stepper Motor", Quantity: 6, Price: 14.50},
		{Name: "Limit Switch", Quantity: 30, Price: 0.75},
		{Name: "Aluminium Extrusion 2020 (50cm)", Quantity: 16, Price: 4.90},
	}
}
