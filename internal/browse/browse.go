// Package browse holds the document browsing state: the committed search
// query, the page cursor, the most recent result page, and its summary.
package browse

import (
	"fmt"
	"strings"
)

// Document is one search hit. Source is the decoded JSON body and is
// replaced wholesale on every fetch.
type Document struct {
	ID     string
	Source any
}

// Summary describes the last search response. All fields are optional:
// a cluster may omit any of them, and none have been seen before the
// first fetch.
type Summary struct {
	Total        *int64
	TookMS       *int64
	ShardsFailed *int64
	TimedOut     *bool
}

// Degraded reports whether the summary indicates an incomplete answer.
func (s Summary) Degraded() bool {
	if s.ShardsFailed != nil && *s.ShardsFailed > 0 {
		return true
	}
	return s.TimedOut != nil && *s.TimedOut
}

// noSelection marks an empty document selection.
const noSelection = -1

// defaultPageSize is the page length used when the caller passes zero.
const defaultPageSize = 5

// Browser owns the committed query, the page cursor, and the current page
// of documents. Pagination state is only meaningful relative to the scope
// entry and query it was fetched under; both invalidate it on change.
type Browser struct {
	query    string
	from     int64
	size     int64
	total    *int64
	docs     []Document
	summary  Summary
	selected int
}

// NewBrowser returns a browser on the first page with the given page size.
func NewBrowser(pageSize int64) *Browser {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return &Browser{size: pageSize, selected: noSelection}
}

// Query returns the committed query string.
func (b *Browser) Query() string { return b.query }

// From returns the current page offset.
func (b *Browser) From() int64 { return b.from }

// Size returns the fixed page length.
func (b *Browser) Size() int64 { return b.size }

// Documents returns the current page of documents.
func (b *Browser) Documents() []Document { return b.docs }

// Summary returns the last search summary.
func (b *Browser) Summary() Summary { return b.summary }

// Selected returns the selected document, if any.
func (b *Browser) Selected() (Document, bool) {
	if b.selected == noSelection || b.selected >= len(b.docs) {
		return Document{}, false
	}
	return b.docs[b.selected], true
}

// SelectedIndex returns the selected row, or -1.
func (b *Browser) SelectedIndex() int { return b.selected }

// CommitQuery stores the trimmed text as the committed query and resets
// pagination; the caller must re-fetch.
func (b *Browser) CommitQuery(text string) {
	b.query = strings.TrimSpace(text)
	b.ResetPaging()
}

// ResetPaging drops the cursor back to the first page and forgets the total
// and the document selection. Called on every scope or query change.
func (b *Browser) ResetPaging() {
	b.from = 0
	b.total = nil
	b.selected = noSelection
}

// NextPage advances the cursor by one page and reports whether it moved.
// With a known total the advance stops at the last page; with no total yet
// it advances optimistically — an empty follow-up page is a valid state.
func (b *Browser) NextPage() bool {
	if b.total != nil && b.from+b.size >= *b.total {
		return false
	}
	b.from += b.size
	return true
}

// PrevPage retreats the cursor by one page, clamping at the first page,
// and reports whether it moved.
func (b *Browser) PrevPage() bool {
	if b.from == 0 {
		return false
	}
	b.from -= b.size
	if b.from < 0 {
		b.from = 0
	}
	return true
}

// ApplyResult replaces the page and summary wholesale and re-clamps the
// document selection into the new page.
func (b *Browser) ApplyResult(docs []Document, summary Summary) {
	b.docs = docs
	b.summary = summary
	b.total = summary.Total
	if len(docs) == 0 {
		b.selected = noSelection
		return
	}
	if b.selected == noSelection {
		b.selected = 0
	} else if b.selected >= len(docs) {
		b.selected = len(docs) - 1
	}
}

// Clear empties the browser as if a fetch had returned nothing. Used when
// no scope entry is selected.
func (b *Browser) Clear() {
	b.ApplyResult(nil, Summary{})
}

// SelectNext moves the document selection down, wrapping to the top.
func (b *Browser) SelectNext() {
	if len(b.docs) == 0 {
		b.selected = noSelection
		return
	}
	if b.selected != noSelection && b.selected+1 < len(b.docs) {
		b.selected++
	} else {
		b.selected = 0
	}
}

// SelectPrev moves the document selection up, wrapping to the bottom.
func (b *Browser) SelectPrev() {
	if len(b.docs) == 0 {
		b.selected = noSelection
		return
	}
	if b.selected <= 0 {
		b.selected = len(b.docs) - 1
	} else {
		b.selected--
	}
}

// Title renders the results pane title. The exact wording is load-bearing
// for UI parity: page arithmetic when the total is known, a raw
// offset/size label when it is not.
func (b *Browser) Title() string {
	if b.total != nil {
		total := *b.total
		if total == 0 {
			return "Results (0)"
		}
		page := b.from/b.size + 1
		pages := (total + b.size - 1) / b.size
		return fmt.Sprintf("Results (page %d/%d, total %d)", page, pages, total)
	}
	return fmt.Sprintf("Results (from %d, size %d)", b.from, b.size)
}
