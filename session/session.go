// Package session implements the controller that wires user intents to the
// inventory ledger: it loads the snapshot (or bootstraps from a catalog) on
// start, applies add/remove/sort/page intents synchronously, and writes the
// snapshot back on an explicit save.
package session

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/etnz/partstock"
	"github.com/etnz/partstock/catalog"
	"github.com/etnz/partstock/kv"
)

// State of the controller. There are only two: a session is Loading until
// the snapshot-or-catalog path completes, and Ready forever after. Every
// failure on the way is recoverable and still ends in Ready.
type State int

const (
	Loading State = iota
	Ready
)

// Notifier receives fire-and-forget user feedback. It is not part of the
// ledger's correctness contract.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// nopNotifier discards all notifications.
type nopNotifier struct{}

func (nopNotifier) Success(string) {}
func (nopNotifier) Error(string)   {}

// AmountPrompt asks the user how many units of a part to remove. It returns
// the raw textual answer; ok is false when the prompt was cancelled. An
// empty answer is treated as a cancellation too.
type AmountPrompt interface {
	Ask(part partstock.Part) (answer string, ok bool)
}

// Options configures a Controller. The zero value is usable: silent
// notifications, no prompt (removals then need an explicit amount), USD
// pricing and the default page size.
type Options struct {
	Notifier Notifier
	Prompt   AmountPrompt
	Logger   zerolog.Logger
	Currency string
	PageSize int
}

// Controller owns the ledger for the lifetime of a session. All mutations
// go through it, synchronously, on the caller's goroutine.
type Controller struct {
	store  kv.Store
	source catalog.Source
	notify Notifier
	prompt AmountPrompt
	log    zerolog.Logger

	ledger   *partstock.Ledger
	state    State
	saving   bool
	sort     partstock.SortField
	dir      partstock.Direction
	page     int
	pageSize int
}

// New creates a controller in the Loading state. Call Start to load the
// ledger and reach Ready.
func New(store kv.Store, source catalog.Source, opts Options) *Controller {
	if opts.Notifier == nil {
		opts.Notifier = nopNotifier{}
	}
	if opts.Currency == "" {
		opts.Currency = "USD"
	}
	if opts.PageSize <= 0 {
		opts.PageSize = partstock.DefaultPageSize
	}
	return &Controller{
		store:    store,
		source:   source,
		notify:   opts.Notifier,
		prompt:   opts.Prompt,
		log:      opts.Logger,
		ledger:   partstock.NewLedger(opts.Currency),
		state:    Loading,
		sort:     partstock.SortNone,
		dir:      partstock.Ascending,
		page:     1,
		pageSize: opts.PageSize,
	}
}

// State returns the controller state.
func (c *Controller) State() State { return c.state }

// Saving reports whether a save is in flight. It is a UI guard, not a
// mutex: the session is single-threaded.
func (c *Controller) Saving() bool { return c.saving }

// Ledger exposes the authoritative ledger, mainly for tests and rendering.
func (c *Controller) Ledger() *partstock.Ledger { return c.ledger }

// Start loads the last-saved snapshot; when there is none (or it is
// corrupt, treated the same), it bootstraps the ledger from the catalog
// source. Any failure surfaces a warning and leaves the ledger empty; the
// controller always ends up Ready.
func (c *Controller) Start(ctx context.Context) {
	defer func() { c.state = Ready }()

	data, found, err := c.store.Get(ctx, kv.SnapshotKey)
	if err != nil {
		c.log.Warn().Err(err).Msg("snapshot load failed")
		c.notify.Error("Failed to load parts data")
		return
	}
	if found {
		ledger, err := partstock.DecodeLedger(bytes.NewReader(data), c.ledger.Currency())
		if err != nil {
			// Corruption is treated the same as absence.
			c.log.Warn().Err(err).Msg("snapshot corrupt, falling back to catalog")
		} else if ledger.Len() > 0 {
			c.ledger = ledger
			c.log.Info().Int("parts", ledger.Len()).Msg("snapshot loaded")
			return
		}
	}

	records, err := c.source.Fetch(ctx)
	if err != nil {
		c.log.Warn().Err(err).Msg("catalog fetch failed")
		c.notify.Error("Failed to load parts data")
		return
	}
	for _, rec := range records {
		draft := partstock.Draft{
			Name:     rec.Name,
			Quantity: rec.Quantity,
			Price:    partstock.M(rec.Price, c.ledger.Currency()),
		}
		if _, err := c.ledger.Add(draft); err != nil {
			c.log.Warn().Err(err).Str("name", rec.Name).Msg("skipping catalog record")
		}
	}
	c.log.Info().Int("parts", c.ledger.Len()).Msg("ledger bootstrapped from catalog")
}

// Add appends a new part built from the draft and notifies the user.
func (c *Controller) Add(d partstock.Draft) error {
	if err := c.ready(); err != nil {
		return err
	}
	part, err := c.ledger.Add(d)
	if err != nil {
		c.notify.Error("Please enter a valid part")
		return err
	}
	c.log.Info().Str("id", part.ID).Str("name", part.Name).Msg("part added")
	c.notify.Success(fmt.Sprintf("Added %q to inventory", part.Name))
	return nil
}

// Delete removes some or all of the part with the given id. The amount
// comes from the injected prompt; an empty or cancelled answer aborts
// silently. An unknown id is a stale-reference no-op.
func (c *Controller) Delete(id string) error {
	if err := c.ready(); err != nil {
		return err
	}
	part, ok := c.ledger.Get(id)
	if !ok {
		return nil
	}
	if c.prompt == nil {
		return nil
	}
	answer, ok := c.prompt.Ask(part)
	if !ok || strings.TrimSpace(answer) == "" {
		return nil
	}
	amount, err := strconv.ParseInt(strings.TrimSpace(answer), 10, 64)
	if err != nil {
		c.notify.Error("Please enter a valid number")
		return &partstock.InvalidAmountError{}
	}
	return c.Remove(id, amount)
}

// Remove applies a removal of a known integer amount, bypassing the prompt.
func (c *Controller) Remove(id string, amount int64) error {
	if err := c.ready(); err != nil {
		return err
	}
	removal, err := c.ledger.RemoveQuantity(id, amount)

	var insufficient *partstock.InsufficientStockError
	var invalid *partstock.InvalidAmountError
	switch {
	case errors.Is(err, partstock.ErrNotFound):
		// Stale reference: no-op guard, not surfaced as a hard error.
		return nil
	case errors.As(err, &invalid):
		c.notify.Error("Please enter a valid number")
		return err
	case errors.As(err, &insufficient):
		c.notify.Error(fmt.Sprintf("Cannot delete %d. Only %d available.", insufficient.Requested, insufficient.Available))
		return err
	case err != nil:
		return err
	}

	if removal.Full {
		c.log.Info().Str("id", id).Msg("part deleted")
		c.notify.Success(fmt.Sprintf("Deleted %q from inventory", removal.Part.Name))
	} else {
		c.log.Info().Str("id", id).Int64("remaining", removal.Remaining).Msg("quantity removed")
		c.notify.Success(fmt.Sprintf("Removed %d of %q (%d remaining)", amount, removal.Part.Name, removal.Remaining))
	}
	return nil
}

// Sort selects the sort field. Re-selecting the current field toggles the
// direction; a new field starts ascending. Either way the view goes back to
// page 1.
func (c *Controller) Sort(field partstock.SortField) {
	if c.sort == field {
		if c.dir == partstock.Ascending {
			c.dir = partstock.Descending
		} else {
			c.dir = partstock.Ascending
		}
	} else {
		c.sort = field
		c.dir = partstock.Ascending
	}
	c.page = 1
}

// SetPage moves the view to the requested page. An out-of-range page is
// self-corrected at projection time, not here.
func (c *Controller) SetPage(page int) { c.page = page }

// View projects the current sorted, paginated view of the ledger.
func (c *Controller) View() partstock.View {
	return partstock.Project(c.ledger, c.sort, c.dir, c.page, c.pageSize)
}

// Save serializes the full ledger and overwrites the snapshot. The saving
// flag is set for the duration of the call regardless of the outcome; the
// in-memory ledger stays authoritative whether the write succeeds or not.
func (c *Controller) Save(ctx context.Context) error {
	if err := c.ready(); err != nil {
		return err
	}
	if c.saving {
		return nil
	}
	c.saving = true
	defer func() { c.saving = false }()

	var buf bytes.Buffer
	if err := partstock.EncodeLedger(&buf, c.ledger); err != nil {
		c.notify.Error("Failed to save parts data")
		return &partstock.PersistenceError{Op: "encode", Err: err}
	}
	if err := c.store.Set(ctx, kv.SnapshotKey, buf.Bytes()); err != nil {
		c.log.Warn().Err(err).Msg("snapshot write failed")
		c.notify.Error("Failed to save parts data")
		return &partstock.PersistenceError{Op: "write", Err: err}
	}
	c.log.Info().Int("parts", c.ledger.Len()).Msg("snapshot saved")
	c.notify.Success("Save successful!")
	return nil
}

func (c *Controller) ready() error {
	if c.state != Ready {
		return fmt.Errorf("session is still loading")
	}
	return nil
}
