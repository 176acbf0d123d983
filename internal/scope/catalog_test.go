package scope

import "testing"

func testEntries(names ...string) []Entry {
	out := make([]Entry, 0, len(names))
	for _, name := range names {
		out = append(out, Index{Name: name, Health: "green", DocsCount: "1"})
	}
	return out
}

func TestFilteredEntries(t *testing.T) {
	cases := []struct {
		name   string
		filter string
		want   []string
	}{
		{"empty_filter_keeps_order", "", []string{"logs-app", "metrics", "Logs-Old"}},
		{"substring", "logs", []string{"logs-app", "Logs-Old"}},
		{"case_insensitive", "LOGS", []string{"logs-app", "Logs-Old"}},
		{"trimmed", "  metr  ", []string{"metrics"}},
		{"no_match", "zzz", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := NewCatalog()
			c.Replace(KindIndices, testEntries("logs-app", "metrics", "Logs-Old"))
			c.SetFilter(tc.filter)
			got := c.FilteredEntries()
			if len(got) != len(tc.want) {
				t.Fatalf("filtered = %d entries, want %d", len(got), len(tc.want))
			}
			for i, entry := range got {
				if entry.Key() != tc.want[i] {
					t.Fatalf("filtered[%d] = %q, want %q", i, entry.Key(), tc.want[i])
				}
			}
		})
	}
}

func TestReplacePreservesSelectionByKey(t *testing.T) {
	c := NewCatalog()
	c.Replace(KindIndices, testEntries("a", "b", "c"))
	c.SelectNext() // a -> b
	if name, _ := c.SelectedName(); name != "b" {
		t.Fatalf("selected = %q, want b", name)
	}

	// Reordered and partially dropped; "b" must stay selected by key.
	c.Replace(KindIndices, testEntries("c", "b"))
	if name, _ := c.SelectedName(); name != "b" {
		t.Fatalf("selected after replace = %q, want b", name)
	}

	// Selection gone entirely: fall back to first.
	c.Replace(KindIndices, testEntries("x", "y"))
	if name, _ := c.SelectedName(); name != "x" {
		t.Fatalf("selected after drop = %q, want x", name)
	}

	// Empty replacement clears the selection.
	c.Replace(KindIndices, nil)
	if _, ok := c.SelectedName(); ok {
		t.Fatal("expected no selection after empty replace")
	}
}

func TestSelectionWrapsThroughFilteredView(t *testing.T) {
	c := NewCatalog()
	c.Replace(KindIndices, testEntries("logs-a", "metrics", "logs-b"))
	c.SetFilter("logs")
	if changed := c.ReconcileSelection(); changed {
		t.Fatal("selection logs-a was still visible, expected no change")
	}

	c.SelectNext()
	if name, _ := c.SelectedName(); name != "logs-b" {
		t.Fatalf("selected = %q, want logs-b (metrics filtered out)", name)
	}
	c.SelectNext()
	if name, _ := c.SelectedName(); name != "logs-a" {
		t.Fatalf("selected = %q, want wrap to logs-a", name)
	}
	c.SelectPrev()
	if name, _ := c.SelectedName(); name != "logs-b" {
		t.Fatalf("selected = %q, want wrap back to logs-b", name)
	}
}

func TestSelectionClearedWhenViewEmpty(t *testing.T) {
	c := NewCatalog()
	c.Replace(KindIndices, testEntries("a"))
	c.SetFilter("nope")
	c.SelectNext()
	if _, ok := c.SelectedName(); ok {
		t.Fatal("expected selection cleared on empty filtered view")
	}
}

func TestReconcileSelectionAfterFilterChange(t *testing.T) {
	c := NewCatalog()
	c.Replace(KindIndices, testEntries("logs-a", "metrics", "logs-b"))

	// Select metrics, then filter it out: selection moves to first visible.
	c.SelectNext()
	c.SetFilter("logs")
	if changed := c.ReconcileSelection(); !changed {
		t.Fatal("expected selection change when filter excludes metrics")
	}
	if name, _ := c.SelectedName(); name != "logs-a" {
		t.Fatalf("selected = %q, want logs-a", name)
	}

	// Nothing visible: selection clears, reported as changed once.
	c.SetFilter("zzz")
	if changed := c.ReconcileSelection(); !changed {
		t.Fatal("expected change when view becomes empty")
	}
	if changed := c.ReconcileSelection(); changed {
		t.Fatal("second reconcile on empty view should be a no-op")
	}
}

func TestPerKindSelectionMemory(t *testing.T) {
	c := NewCatalog()
	c.Replace(KindIndices, testEntries("i1", "i2"))
	c.Replace(KindAliases, []Entry{Alias{Name: "al", Target: "i1"}})
	c.SelectNext()

	if changed := c.SetActiveKind(KindAliases); !changed {
		t.Fatal("expected kind change")
	}
	if changed := c.SetActiveKind(KindAliases); changed {
		t.Fatal("same kind must be a no-op")
	}
	if name, _ := c.SelectedName(); name != "al" {
		t.Fatalf("alias selection = %q, want al", name)
	}

	c.SetActiveKind(KindIndices)
	if name, _ := c.SelectedName(); name != "i2" {
		t.Fatalf("index selection = %q, want i2 remembered", name)
	}
}
