package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/etnz/partstock/session"
)

type saveCmd struct{}

func (*saveCmd) Name() string     { return "save" }
func (*saveCmd) Synopsis() string { return "write the inventory snapshot to the store" }
func (*saveCmd) Usage() string {
	return `pst save

  Serializes the full inventory and overwrites the previous snapshot. On an
  empty store this materializes the bootstrap catalog into a first snapshot.

`
}

func (*saveCmd) SetFlags(f *flag.FlagSet) {}

func (*saveCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	controller := openSession(ctx, session.Options{})
	if err := controller.Handle(ctx, session.Intent{Kind: session.IntentSave}); err != nil {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
