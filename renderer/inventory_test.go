package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/partstock"
)

func TestInventoryMarkdown(t *testing.T) {
	l := partstock.NewLedger("USD")
	if err := l.Append(partstock.Part{ID: "aaaabbbbcccc", Name: "608ZZ Bearing", Quantity: 40, Price: partstock.M(1.35, "USD"), CreatedAt: 1700000000000}); err != nil {
		t.Fatal(err)
	}
	v := partstock.Project(l, partstock.SortNone, partstock.Ascending, 1, 5)

	md := InventoryMarkdown(v)

	for _, want := range []string{
		"# Parts Inventory",
		"| aaaabbbb |", // truncated id
		"| 608ZZ Bearing |",
		"| 40 |",
		"| $1.35 |",
		"| $54.00 |", // derived total value
		"Page 1 of 1 (1 parts)",
		"Total inventory value: **$54.00**",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown does not contain %q:\n%s", want, md)
		}
	}
}

func TestInventoryMarkdown_empty(t *testing.T) {
	l := partstock.NewLedger("USD")
	v := partstock.Project(l, partstock.SortNone, partstock.Ascending, 1, 5)

	md := InventoryMarkdown(v)

	if !strings.Contains(md, "No parts in inventory") {
		t.Errorf("markdown lacks the empty notice:\n%s", md)
	}
	if !strings.Contains(md, "Total inventory value: **$0.00**") {
		t.Errorf("markdown lacks the zero currency total:\n%s", md)
	}
}
