// Package scope models the browsable cluster collections (indices, aliases,
// data streams) together with filtering and selection reconciliation.
package scope

import "strings"

// Kind identifies one of the three browsable collections.
type Kind int

const (
	KindIndices Kind = iota
	KindAliases
	KindDataStreams
)

// Title returns the display label for the kind.
func (k Kind) Title() string {
	switch k {
	case KindAliases:
		return "Aliases"
	case KindDataStreams:
		return "DataStreams"
	default:
		return "Indices"
	}
}

// Label returns the short lowercase label used in the header scope chip.
func (k Kind) Label() string {
	switch k {
	case KindAliases:
		return "alias"
	case KindDataStreams:
		return "datastream"
	default:
		return "index"
	}
}

// Entry is one browsable cluster object. Key is the identity used for
// filtering and for preserving selection across refreshes.
type Entry interface {
	Key() string
}

// Index is a concrete index as reported by the cat API.
type Index struct {
	Name      string
	Health    string
	DocsCount string
}

func (e Index) Key() string { return e.Name }

// Alias points at a backing index.
type Alias struct {
	Name   string
	Target string
}

func (e Alias) Key() string { return e.Name }

// DataStream is a managed stream of backing indices.
type DataStream struct {
	Name           string
	Status         string
	Generation     int64
	BackingIndices int
}

func (e DataStream) Key() string { return e.Name }

// filterEntries returns the positions of entries whose key contains needle
// (already lowercased) as a substring. An empty needle matches everything.
func filterEntries(entries []Entry, needle string) []int {
	out := make([]int, 0, len(entries))
	for i, entry := range entries {
		if needle == "" || strings.Contains(strings.ToLower(entry.Key()), needle) {
			out = append(out, i)
		}
	}
	return out
}
