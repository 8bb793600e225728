package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/partstock/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion: exits early when invoked by the completion hook.
	completion := &complete.Command{
		Sub: map[string]*complete.Command{
			"add": {Flags: map[string]complete.Predictor{
				"name": predict.Something, "q": predict.Something, "price": predict.Something, "save": predict.Nothing,
			}},
			"remove": {Flags: map[string]complete.Predictor{
				"id": predict.Something, "amount": predict.Something, "save": predict.Nothing,
			}},
			"list": {Flags: map[string]complete.Predictor{
				"sort": predict.Set{"name", "quantity", "price", "total", "created", "none"},
				"dir":  predict.Set{"asc", "desc"},
				"page": predict.Something,
			}},
			"save":    {},
			"session": {},
			"topic":   {Args: predict.Set{"readme", "inventory", "views", "persistence"}},
		},
	}
	completion.Complete("pst")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
