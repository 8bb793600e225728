package session

import (
	"context"
	"fmt"

	"github.com/etnz/partstock"
)

// IntentKind enumerates the discrete user intents a session understands.
// The enum keeps the state machine decoupled from any particular frontend:
// the interactive CLI, the one-shot commands and the tests all speak it.
type IntentKind int

const (
	IntentAdd IntentKind = iota
	IntentDelete
	IntentSort
	IntentPage
	IntentSave
)

// Intent is one user command. Only the fields relevant to its Kind are read.
type Intent struct {
	Kind  IntentKind
	Draft partstock.Draft     // IntentAdd
	ID    string              // IntentDelete
	Field partstock.SortField // IntentSort
	Page  int                 // IntentPage
}

// Handle is the transition function: it applies one intent to the session.
// All intents are handled synchronously; only Save touches the store.
func (c *Controller) Handle(ctx context.Context, intent Intent) error {
	switch intent.Kind {
	case IntentAdd:
		return c.Add(intent.Draft)
	case IntentDelete:
		return c.Delete(intent.ID)
	case IntentSort:
		c.Sort(intent.Field)
		return nil
	case IntentPage:
		c.SetPage(intent.Page)
		return nil
	case IntentSave:
		return c.Save(ctx)
	default:
		return fmt.Errorf("unknown intent kind %d", intent.Kind)
	}
}
