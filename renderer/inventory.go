// Package renderer turns projections of the inventory into markdown, the
// only presentation format the application knows about. How the markdown is
// displayed (glamour in a terminal, a plain pager, a file) is the caller's
// concern.
package renderer

import (
	"fmt"
	"strings"
	"time"

	"github.com/etnz/partstock"
)

// InventoryMarkdown renders one page of the inventory as a markdown table,
// followed by the grand total over the full inventory (not just the page).
func InventoryMarkdown(v partstock.View) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Parts Inventory\n\n")

	if v.TotalParts == 0 {
		fmt.Fprintln(&b, "_No parts in inventory._")
		fmt.Fprintf(&b, "\nTotal inventory value: **%s**\n", v.GrandTotal)
		return b.String()
	}

	fmt.Fprintln(&b, "| Id | Name | Quantity | Unit Price | Total Value | Created |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|:---|")
	for _, p := range v.Parts {
		fmt.Fprintf(&b, "| %s | %s | %d | %s | %s | %s |\n",
			shortID(p.ID),
			p.Name,
			p.Quantity,
			p.Price,
			p.TotalValue(),
			time.UnixMilli(p.CreatedAt).Format("2006-01-02 15:04"),
		)
	}

	fmt.Fprintf(&b, "\nPage %d of %d (%d parts)\n", v.Page, v.TotalPages, v.TotalParts)
	fmt.Fprintf(&b, "\nTotal inventory value: **%s**\n", v.GrandTotal)
	return b.String()
}

// shortID keeps ids readable in a table; the full id is still what remove
// commands expect.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
