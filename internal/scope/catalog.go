package scope

import "strings"

// noSelection marks a collection without a selected entry.
const noSelection = -1

// Collection is an ordered sequence of entries of one kind plus a selection.
// The selection is an index into the full entry list; the visible subset is
// derived on demand from the catalog filter.
type Collection struct {
	entries  []Entry
	selected int
}

// NewCollection returns an empty collection with no selection.
func NewCollection() *Collection {
	return &Collection{selected: noSelection}
}

// Entries returns the full entry list in fetch order.
func (c *Collection) Entries() []Entry { return c.entries }

// Selected returns the selected entry, if any.
func (c *Collection) Selected() (Entry, bool) {
	if c.selected == noSelection || c.selected >= len(c.entries) {
		return nil, false
	}
	return c.entries[c.selected], true
}

// SelectedIndex returns the selected position in the full entry list, or -1.
func (c *Collection) SelectedIndex() int { return c.selected }

// Replace swaps in a fresh entry list. The previous selection is preserved by
// identity key rather than position: a refresh may reorder or drop entries,
// and positional carry-over would silently select an unrelated entry.
// Falls back to the first entry, or to no selection when the list is empty.
func (c *Collection) Replace(entries []Entry) {
	var prevKey string
	if entry, ok := c.Selected(); ok {
		prevKey = entry.Key()
	}
	c.entries = entries
	if len(entries) == 0 {
		c.selected = noSelection
		return
	}
	c.selected = 0
	if prevKey == "" {
		return
	}
	for i, entry := range entries {
		if entry.Key() == prevKey {
			c.selected = i
			return
		}
	}
}

// Catalog holds the three collections, the active kind, and the shared
// free-text filter. Each collection keeps its own selection so switching
// kinds back and forth does not lose the operator's place.
type Catalog struct {
	indices     *Collection
	aliases     *Collection
	datastreams *Collection
	active      Kind
	filter      string
}

// NewCatalog returns a catalog with three empty collections, browsing indices.
func NewCatalog() *Catalog {
	return &Catalog{
		indices:     NewCollection(),
		aliases:     NewCollection(),
		datastreams: NewCollection(),
	}
}

// Collection returns the collection for the given kind.
func (c *Catalog) Collection(kind Kind) *Collection {
	switch kind {
	case KindAliases:
		return c.aliases
	case KindDataStreams:
		return c.datastreams
	default:
		return c.indices
	}
}

// Active returns the kind currently being browsed.
func (c *Catalog) Active() Kind { return c.active }

// Filter returns the committed filter text.
func (c *Catalog) Filter() string { return c.filter }

// SetActiveKind switches the active collection. It reports whether the kind
// actually changed so the caller knows to reset document pagination.
func (c *Catalog) SetActiveKind(kind Kind) bool {
	if c.active == kind {
		return false
	}
	c.active = kind
	return true
}

// SetFilter replaces the filter text. It does not move the selection;
// callers follow up with ReconcileSelection.
func (c *Catalog) SetFilter(text string) {
	c.filter = strings.TrimSpace(text)
}

// needle is the normalized filter used for matching.
func (c *Catalog) needle() string {
	return strings.ToLower(strings.TrimSpace(c.filter))
}

// FilteredIndexes returns the positions of the active collection's entries
// that pass the filter, in original order.
func (c *Catalog) FilteredIndexes() []int {
	return filterEntries(c.Collection(c.active).entries, c.needle())
}

// FilteredEntries returns the visible entries of the active collection.
func (c *Catalog) FilteredEntries() []Entry {
	coll := c.Collection(c.active)
	idxs := c.FilteredIndexes()
	out := make([]Entry, 0, len(idxs))
	for _, i := range idxs {
		out = append(out, coll.entries[i])
	}
	return out
}

// SelectedName returns the identity key of the active selection, if any.
func (c *Catalog) SelectedName() (string, bool) {
	entry, ok := c.Collection(c.active).Selected()
	if !ok {
		return "", false
	}
	return entry.Key(), true
}

// SelectedFilteredPos returns the selection's position within the filtered
// view, or -1 when the selection is absent or filtered out.
func (c *Catalog) SelectedFilteredPos() int {
	sel := c.Collection(c.active).selected
	if sel == noSelection {
		return -1
	}
	for pos, idx := range c.FilteredIndexes() {
		if idx == sel {
			return pos
		}
	}
	return -1
}

// SelectNext moves the selection forward through the filtered view,
// wrapping at the end. An empty view clears the selection.
func (c *Catalog) SelectNext() { c.shiftSelection(1) }

// SelectPrev moves the selection backward through the filtered view,
// wrapping at the start. An empty view clears the selection.
func (c *Catalog) SelectPrev() { c.shiftSelection(-1) }

func (c *Catalog) shiftSelection(delta int) {
	coll := c.Collection(c.active)
	filtered := c.FilteredIndexes()
	if len(filtered) == 0 {
		coll.selected = noSelection
		return
	}
	pos := 0
	for i, idx := range filtered {
		if idx == coll.selected {
			pos = i
			break
		}
	}
	if delta >= 0 {
		pos = (pos + 1) % len(filtered)
	} else if pos == 0 {
		pos = len(filtered) - 1
	} else {
		pos--
	}
	coll.selected = filtered[pos]
}

// ReconcileSelection re-validates the active selection against the current
// filtered view: keep it when still visible, otherwise move to the first
// visible entry, or clear it when nothing is visible. It reports whether the
// effective selection changed so callers can re-fetch documents.
func (c *Catalog) ReconcileSelection() bool {
	coll := c.Collection(c.active)
	filtered := c.FilteredIndexes()
	if len(filtered) == 0 {
		if coll.selected != noSelection {
			coll.selected = noSelection
			return true
		}
		return false
	}
	for _, idx := range filtered {
		if idx == coll.selected {
			return false
		}
	}
	coll.selected = filtered[0]
	return true
}

// Replace installs a freshly fetched entry list for the given kind,
// preserving that collection's selection by identity key.
func (c *Catalog) Replace(kind Kind, entries []Entry) {
	c.Collection(kind).Replace(entries)
}
