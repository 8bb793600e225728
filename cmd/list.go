package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/partstock"
	"github.com/etnz/partstock/renderer"
	"github.com/etnz/partstock/session"
)

type listCmd struct {
	sort string
	dir  string
	page int
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "display the inventory sorted and paginated" }
func (*listCmd) Usage() string {
	return `pst list [-sort <field>] [-dir asc|desc] [-page <n>]

  Displays one page of the inventory. Sort fields: name, quantity, price,
  total, created, or none for the original order. A page beyond the last
  one falls back to page 1.

`
}

func (p *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.sort, "sort", "none", "Sort field (name, quantity, price, total, created, none).")
	f.StringVar(&p.dir, "dir", "asc", "Sort direction (asc, desc).")
	f.IntVar(&p.page, "page", 1, "Page to display, 1-based.")
}

func (p *listCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	field, err := partstock.ParseSortField(p.sort)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	dir, err := partstock.ParseDirection(p.dir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	controller := openSession(ctx, session.Options{})
	controller.Sort(field)
	if dir == partstock.Descending {
		controller.Sort(field) // same field again toggles to descending
	}
	controller.SetPage(p.page)

	printMarkdown(renderer.InventoryMarkdown(controller.View()))
	return subcommands.ExitSuccess
}
