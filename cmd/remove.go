package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/partstock"
	"github.com/etnz/partstock/session"
)

type removeCmd struct {
	id     string
	amount int64
	save   bool
}

func (*removeCmd) Name() string     { return "remove" }
func (*removeCmd) Synopsis() string { return "remove some or all of a part's quantity" }
func (*removeCmd) Usage() string {
	return `pst remove -id <id> [-amount <n>] [-save]

  Removes n units of the part. Removing the full quantity deletes the part
  entirely. Without -amount, the command prompts for the quantity to remove;
  an empty answer aborts. The id may be the truncated form shown by 'pst list'
  as long as it is unambiguous.

`
}

func (p *removeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.id, "id", "", "Id (or unambiguous prefix) of the part.")
	f.Int64Var(&p.amount, "amount", 0, "Quantity to remove. Prompts when omitted.")
	f.BoolVar(&p.save, "save", false, "Write the snapshot after removing.")
}

func (p *removeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required.")
		return subcommands.ExitUsageError
	}

	controller := openSession(ctx, session.Options{Prompt: stdinPrompt{}})

	part, ok := controller.Ledger().Find(p.id)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no part matches id %q.\n", p.id)
		return subcommands.ExitFailure
	}

	var err error
	if p.amount > 0 {
		err = controller.Remove(part.ID, p.amount)
	} else {
		err = controller.Handle(ctx, session.Intent{Kind: session.IntentDelete, ID: part.ID})
	}
	if err != nil {
		return subcommands.ExitFailure
	}

	if p.save {
		if err := controller.Handle(ctx, session.Intent{Kind: session.IntentSave}); err != nil {
			return subcommands.ExitFailure
		}
	}
	return subcommands.ExitSuccess
}

// stdinPrompt implements the blocking textual prompt for removal amounts.
type stdinPrompt struct{}

func (stdinPrompt) Ask(part partstock.Part) (string, bool) {
	fmt.Fprintf(os.Stderr, "How many %q to delete? (Available: %d) ", part.Name, part.Quantity)
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		return "", false
	}
	return scanner.Text(), true
}
