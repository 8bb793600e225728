package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/partstock"
	"github.com/etnz/partstock/session"
)

type addCmd struct {
	name     string
	quantity int64
	price    float64
	save     bool
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a new part to the inventory" }
func (*addCmd) Usage() string {
	return `pst add -name <name> -q <quantity> -price <unit_price> [-save]

  Adds a new part to the inventory. The part receives a fresh id and a
  creation timestamp. The inventory is only written back to the store when
  -save is given (or with an explicit 'pst save').

Usage Examples:
$ pst add -name "M5 Washer" -q 500 -price 0.03 -save

`
}

func (p *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.name, "name", "", "Display name of the part.")
	f.Int64Var(&p.quantity, "q", 0, "Initial quantity, a positive integer.")
	f.Float64Var(&p.price, "price", 0, "Unit price, in the session currency.")
	f.BoolVar(&p.save, "save", false, "Write the snapshot after adding.")
}

func (p *addCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name is required.")
		return subcommands.ExitUsageError
	}

	controller := openSession(ctx, session.Options{})
	intent := session.Intent{
		Kind: session.IntentAdd,
		Draft: partstock.Draft{
			Name:     p.name,
			Quantity: p.quantity,
			Price:    partstock.M(p.price, *currency),
		},
	}
	if err := controller.Handle(ctx, intent); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if p.save {
		if err := controller.Handle(ctx, session.Intent{Kind: session.IntentSave}); err != nil {
			return subcommands.ExitFailure
		}
	}
	return subcommands.ExitSuccess
}
