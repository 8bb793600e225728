package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/subcommands"

	"github.com/etnz/partstock"
	"github.com/etnz/partstock/renderer"
	"github.com/etnz/partstock/session"
)

type sessionCmd struct{}

func (*sessionCmd) Name() string     { return "session" }
func (*sessionCmd) Synopsis() string { return "run an interactive inventory session" }
func (*sessionCmd) Usage() string {
	return `pst session

  Starts an interactive session. The inventory stays in memory between
  commands and is only persisted on 'save'. Commands:

    add <name> <quantity> <price>   add a part
    remove <id>                     remove (prompts for the amount)
    sort <field>                    sort; repeating a field toggles direction
    page <n>                        jump to a page
    list                            redraw the current page
    save                            write the snapshot
    quit                            leave without saving

`
}

func (*sessionCmd) SetFlags(f *flag.FlagSet) {}

func (*sessionCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	scanner := bufio.NewScanner(os.Stdin)
	controller := openSession(ctx, session.Options{Prompt: scannerPrompt{scanner}})

	printMarkdown(renderer.InventoryMarkdown(controller.View()))

	for {
		fmt.Fprint(os.Stderr, "pst> ")
		if !scanner.Scan() {
			return subcommands.ExitSuccess
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		intent, ok, quit := parseIntent(fields)
		if quit {
			return subcommands.ExitSuccess
		}
		if ok {
			if intent.Kind == session.IntentDelete {
				// Accept the truncated ids shown in the table.
				if part, found := controller.Ledger().Find(intent.ID); found {
					intent.ID = part.ID
				}
			}
			// Intent errors are already surfaced as notifications.
			_ = controller.Handle(ctx, intent)
		}
		if fields[0] != "save" {
			printMarkdown(renderer.InventoryMarkdown(controller.View()))
		}
	}
}

// parseIntent maps one input line onto a session intent. ok is false when
// the line is not a valid command (a usage hint has been printed); quit
// reports the quit command.
func parseIntent(fields []string) (intent session.Intent, ok, quit bool) {
	switch fields[0] {
	case "quit", "exit":
		return session.Intent{}, false, true
	case "list":
		return session.Intent{}, false, false
	case "add":
		if len(fields) != 4 {
			fmt.Fprintln(os.Stderr, "usage: add <name> <quantity> <price>")
			return session.Intent{}, false, false
		}
		quantity, err1 := strconv.ParseInt(fields[2], 10, 64)
		price, err2 := strconv.ParseFloat(fields[3], 64)
		if err1 != nil || err2 != nil {
			fmt.Fprintln(os.Stderr, "usage: add <name> <quantity> <price>")
			return session.Intent{}, false, false
		}
		return session.Intent{
			Kind:  session.IntentAdd,
			Draft: partstock.Draft{Name: fields[1], Quantity: quantity, Price: partstock.M(price, *currency)},
		}, true, false
	case "remove":
		if len(fields) != 2 {
			fmt.Fprintln(os.Stderr, "usage: remove <id>")
			return session.Intent{}, false, false
		}
		return session.Intent{Kind: session.IntentDelete, ID: fields[1]}, true, false
	case "sort":
		if len(fields) != 2 {
			fmt.Fprintln(os.Stderr, "usage: sort <name|quantity|price|total|created|none>")
			return session.Intent{}, false, false
		}
		field, err := partstock.ParseSortField(fields[1])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return session.Intent{}, false, false
		}
		return session.Intent{Kind: session.IntentSort, Field: field}, true, false
	case "page":
		if len(fields) != 2 {
			fmt.Fprintln(os.Stderr, "usage: page <n>")
			return session.Intent{}, false, false
		}
		page, err := strconv.Atoi(fields[1])
		if err != nil {
			fmt.Fprintln(os.Stderr, "usage: page <n>")
			return session.Intent{}, false, false
		}
		return session.Intent{Kind: session.IntentPage, Page: page}, true, false
	case "save":
		return session.Intent{Kind: session.IntentSave}, true, false
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", fields[0])
		return session.Intent{}, false, false
	}
}

// scannerPrompt asks for removal amounts on the session's own stdin scanner.
type scannerPrompt struct {
	scanner *bufio.Scanner
}

func (p scannerPrompt) Ask(part partstock.Part) (string, bool) {
	fmt.Fprintf(os.Stderr, "How many %q to delete? (Available: %d) ", part.Name, part.Quantity)
	if !p.scanner.Scan() {
		return "", false
	}
	return p.scanner.Text(), true
}
