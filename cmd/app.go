// Package cmd implements the CLI application to manage a parts inventory.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/etnz/partstock/catalog"
	"github.com/etnz/partstock/kv"
	"github.com/etnz/partstock/session"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "inventory")
	c.Register(&removeCmd{}, "inventory")
	c.Register(&listCmd{}, "inventory")
	c.Register(&saveCmd{}, "inventory")

	c.Register(&sessionCmd{}, "session")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	storeDir   = flag.String("store-dir", defaultString("store_dir", ".partstock"), "Directory holding the inventory snapshot")
	redisAddr  = flag.String("redis", defaultString("redis_addr", ""), "Redis address (host:port); when set, snapshots live in redis instead of files")
	catalogURL = flag.String("catalog-url", defaultString("catalog_url", ""), "URL of a remote JSON catalog used to bootstrap an empty inventory")
	currency   = flag.String("currency", defaultString("currency", "USD"), "Currency new parts are priced in")
	verbose    = flag.Bool("v", false, "Enable verbose logging")
)

// openStore picks the snapshot store from the global flags.
func openStore() kv.Store {
	if *redisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: *redisAddr})
		return kv.NewRedisStore(client)
	}
	return kv.NewFileStore(*storeDir)
}

// openSource picks the bootstrap catalog from the global flags.
func openSource() catalog.Source {
	if *catalogURL != "" {
		return &catalog.HTTPSource{URL: *catalogURL}
	}
	return catalog.Default()
}

// newLogger builds the CLI logger: console output on stderr, quiet unless -v.
func newLogger() zerolog.Logger {
	level := zerolog.WarnLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}

// openSession builds the controller and runs it through its loading phase.
func openSession(ctx context.Context, opts session.Options) *session.Controller {
	if opts.Notifier == nil {
		opts.Notifier = consoleNotifier{}
	}
	opts.Logger = newLogger()
	opts.Currency = *currency
	controller := session.New(openStore(), openSource(), opts)
	controller.Start(ctx)
	return controller
}

// consoleNotifier prints fire-and-forget feedback to stderr, the CLI stand-in
// for the toast layer.
type consoleNotifier struct{}

func (consoleNotifier) Success(msg string) { fmt.Fprintf(os.Stderr, "✅ %s\n", msg) }
func (consoleNotifier) Error(msg string)   { fmt.Fprintf(os.Stderr, "⚠️  %s\n", msg) }
