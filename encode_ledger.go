package partstock

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// partRecord is a specialized struct for decoding snapshot lines.
type partRecord struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Quantity  int64           `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Currency  string          `json:"currency"`
	CreatedAt int64           `json:"createdAt"`
}

// DecodeLedger decodes a JSONL snapshot from an io.Reader, one part per
// line, and returns the reconstructed ledger in snapshot order. Any invalid
// line fails the whole decode; the caller decides whether a failed decode
// counts as corruption.
func DecodeLedger(r io.Reader, currency string) (*Ledger, error) {
	ledger := NewLedger(currency)
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}

		var rec partRecord
		if err := json.Unmarshal(lineBytes, &rec); err != nil {
			return nil, fmt.Errorf("could not decode snapshot line %q: %w", string(lineBytes), err)
		}
		if rec.Name == "" {
			return nil, fmt.Errorf("snapshot line %q has no name", string(lineBytes))
		}
		p := Part{
			ID:        rec.ID,
			Name:      rec.Name,
			Quantity:  rec.Quantity,
			Price:     M(rec.Price, rec.Currency),
			CreatedAt: rec.CreatedAt,
		}
		if err := ledger.Append(p); err != nil {
			return nil, err
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading snapshot: %w", err)
	}

	return ledger, nil
}

// EncodePart marshals a single part to JSON and writes it to the writer,
// followed by a newline, in JSONL format.
func EncodePart(w io.Writer, p Part) error {
	decimal.MarshalJSONWithoutQuotes = true
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal part %q: %w", p.Name, err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write part %q: %w", p.Name, err)
	}
	return nil
}

// EncodeLedger persists the full ledger to an io.Writer in JSONL format,
// one part per line, in canonical (insertion) order. The snapshot is always
// written wholesale; there is no incremental persistence.
func EncodeLedger(w io.Writer, ledger *Ledger) error {
	decimal.MarshalJSONWithoutQuotes = true
	for p := range ledger.Parts() {
		if err := EncodePart(w, p); err != nil {
			return err
		}
	}
	return nil
}
