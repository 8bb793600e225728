package partstock

import (
	"fmt"
	"testing"
)

func TestProject_sortByTotalDescending(t *testing.T) {
	l := testLedger()
	mustAdd(l, "two at three", 2, 3.00)  // total 6.00
	mustAdd(l, "one at ten", 1, 10.00)   // total 10.00
	mustAdd(l, "five at one", 5, 1.00)   // total 5.00

	v := Project(l, SortByTotal, Descending, 1, DefaultPageSize)

	wantOrder := []string{"one at ten", "two at three", "five at one"}
	if len(v.Parts) != len(wantOrder) {
		t.Fatalf("visible parts = %d, want %d", len(v.Parts), len(wantOrder))
	}
	for i, want := range wantOrder {
		if v.Parts[i].Name != want {
			t.Errorf("parts[%d] = %q, want %q", i, v.Parts[i].Name, want)
		}
	}
	if got, want := v.GrandTotal.String(), "$21.00"; got != want {
		t.Errorf("grand total = %q, want %q", got, want)
	}
}

func TestProject_sortByNameIsCaseInsensitive(t *testing.T) {
	l := testLedger()
	mustAdd(l, "washer", 1, 1)
	mustAdd(l, "Bolt", 1, 1)
	mustAdd(l, "bearing", 1, 1)

	v := Project(l, SortByName, Ascending, 1, DefaultPageSize)
	wantOrder := []string{"bearing", "Bolt", "washer"}
	for i, want := range wantOrder {
		if v.Parts[i].Name != want {
			t.Errorf("parts[%d] = %q, want %q", i, v.Parts[i].Name, want)
		}
	}
}

func TestProject_sortIsStable(t *testing.T) {
	l := testLedger()
	// Same quantity everywhere: a stable sort must keep insertion order.
	for i := 0; i < 6; i++ {
		mustAdd(l, fmt.Sprintf("part-%d", i), 7, float64(i))
	}
	v := Project(l, SortByQuantity, Ascending, 1, 10)
	for i := range v.Parts {
		if want := fmt.Sprintf("part-%d", i); v.Parts[i].Name != want {
			t.Errorf("parts[%d] = %q, want %q (stable order)", i, v.Parts[i].Name, want)
		}
	}
}

func TestProject_pagination(t *testing.T) {
	l := testLedger()
	for i := 0; i < 12; i++ {
		mustAdd(l, fmt.Sprintf("part-%02d", i), 1, 1)
	}

	testCases := []struct {
		page          int
		wantEffective int
		wantLen       int
		wantFirst     string
	}{
		{1, 1, 5, "part-00"},
		{2, 2, 5, "part-05"},
		{3, 3, 2, "part-10"},
		{5, 1, 5, "part-00"}, // beyond the last page: self-corrects to 1
		{0, 1, 5, "part-00"},
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprintf("page %d", tc.page), func(t *testing.T) {
			v := Project(l, SortNone, Ascending, tc.page, 5)
			if v.TotalPages != 3 {
				t.Errorf("totalPages = %d, want 3", v.TotalPages)
			}
			if v.TotalParts != 12 {
				t.Errorf("totalParts = %d, want 12", v.TotalParts)
			}
			if v.Page != tc.wantEffective {
				t.Errorf("effective page = %d, want %d", v.Page, tc.wantEffective)
			}
			if len(v.Parts) != tc.wantLen {
				t.Fatalf("visible parts = %d, want %d", len(v.Parts), tc.wantLen)
			}
			if v.Parts[0].Name != tc.wantFirst {
				t.Errorf("first visible part = %q, want %q", v.Parts[0].Name, tc.wantFirst)
			}
		})
	}
}

func TestProject_emptyLedger(t *testing.T) {
	l := testLedger()
	v := Project(l, SortByName, Descending, 3, DefaultPageSize)
	if v.TotalPages != 0 {
		t.Errorf("totalPages = %d, want 0", v.TotalPages)
	}
	if v.Page != 0 {
		t.Errorf("page = %d, want 0", v.Page)
	}
	if len(v.Parts) != 0 {
		t.Errorf("visible parts = %d, want 0", len(v.Parts))
	}
	if got, want := v.GrandTotal.String(), "$0.00"; got != want {
		t.Errorf("grand total = %q, want %q", got, want)
	}
}

func TestProject_grandTotalCoversAllPages(t *testing.T) {
	l := testLedger()
	for i := 0; i < 7; i++ {
		mustAdd(l, fmt.Sprintf("part-%d", i), 1, 10) // 7 x $10
	}
	v := Project(l, SortNone, Ascending, 2, 5)
	if len(v.Parts) != 2 {
		t.Fatalf("visible parts = %d, want 2", len(v.Parts))
	}
	if got, want := v.GrandTotal.String(), "$70.00"; got != want {
		t.Errorf("grand total = %q, want %q (full set, not the page)", got, want)
	}
}

func TestProject_doesNotMutateLedger(t *testing.T) {
	l := testLedger()
	mustAdd(l, "b", 1, 1)
	mustAdd(l, "a", 2, 2)
	before := snapshot(l)

	Project(l, SortByName, Ascending, 1, DefaultPageSize)

	if !equalParts(snapshot(l), before) {
		t.Error("projection mutated the ledger order")
	}
}

func TestParseSortField(t *testing.T) {
	for _, s := range []string{"none", "name", "quantity", "price", "total", "created"} {
		f, err := ParseSortField(s)
		if err != nil {
			t.Errorf("ParseSortField(%q) failed: %v", s, err)
		}
		if f.String() != s {
			t.Errorf("round trip %q -> %q", s, f.String())
		}
	}
	if _, err := ParseSortField("bogus"); err == nil {
		t.Error("ParseSortField(bogus) succeeded, want error")
	}
}
