package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders a markdown document to the terminal. When rendering
// fails (no TTY, unknown terminal) the raw markdown is still printed.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Fprintln(os.Stderr, "warning: could not render markdown:", err)
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}
