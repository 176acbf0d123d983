// Package docview turns one document's decoded JSON value into a bounded
// list of display lines, with view modes, token highlighting, and overflow
// handling. Styling is left to the caller; lines carry only match markers.
package docview

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Mode selects how the document body is rendered.
type Mode int

const (
	ModePretty Mode = iota
	ModeRaw
	ModeFlatten
)

// Next cycles Pretty -> Raw -> Flatten -> Pretty.
func (m Mode) Next() Mode {
	switch m {
	case ModePretty:
		return ModeRaw
	case ModeRaw:
		return ModeFlatten
	default:
		return ModePretty
	}
}

// Title returns the display label for the mode.
func (m Mode) Title() string {
	switch m {
	case ModeRaw:
		return "Raw"
	case ModeFlatten:
		return "Flatten"
	default:
		return "Pretty"
	}
}

// Placeholder tokens used by the flatten view.
const (
	rootLabel          = "<root>"
	complexPlaceholder = "<complex>"
	emptyPlaceholder   = "<empty>"
	invalidPlaceholder = "<invalid json>"
	truncationSentinel = "..."
)

// Segment is a run of text within a line, optionally marked as a
// highlight match.
type Segment struct {
	Text  string
	Match bool
}

// Line is an ordered sequence of segments.
type Line struct {
	Segments []Segment
}

func plainLine(text string) Line {
	return Line{Segments: []Segment{{Text: text}}}
}

// Text returns the line's text with match markers dropped.
func (l Line) Text() string {
	var b strings.Builder
	for _, seg := range l.Segments {
		b.WriteString(seg.Text)
	}
	return b.String()
}

// BodyLines renders the document source under the given mode.
func BodyLines(source any, mode Mode) []string {
	switch mode {
	case ModeRaw:
		return rawLines(source)
	case ModeFlatten:
		return Flatten(source)
	default:
		return prettyLines(source)
	}
}

func prettyLines(source any) []string {
	data, err := json.MarshalIndent(source, "", "  ")
	if err != nil {
		return []string{invalidPlaceholder}
	}
	return strings.Split(string(data), "\n")
}

func rawLines(source any) []string {
	data, err := json.Marshal(source)
	if err != nil {
		return []string{invalidPlaceholder}
	}
	return []string{string(data)}
}

// Flatten renders every leaf of the value as one "path = value" line via a
// depth-first walk: object keys join with ".", array elements index as
// "[i]". A value with no leaves yields a single placeholder line.
func Flatten(source any) []string {
	var out []string
	flattenValue(source, "", &out)
	if len(out) == 0 {
		out = append(out, emptyPlaceholder)
	}
	return out
}

func flattenValue(value any, prefix string, out *[]string) {
	switch v := value.(type) {
	case map[string]any:
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			next := key
			if prefix != "" {
				next = prefix + "." + key
			}
			flattenValue(v[key], next, out)
		}
	case []any:
		for i, elem := range v {
			flattenValue(elem, fmt.Sprintf("%s[%d]", prefix, i), out)
		}
	default:
		label := prefix
		if label == "" {
			label = rootLabel
		}
		*out = append(*out, label+" = "+inlineValue(value))
	}
}

// inlineValue renders a leaf: strings quoted, numbers and booleans as their
// literal text, null as the literal null. Anything composite that slipped
// through renders as a fixed placeholder.
func inlineValue(value any) string {
	switch v := value.(type) {
	case string:
		return `"` + v + `"`
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case json.Number:
		return v.String()
	case nil:
		return "null"
	default:
		return complexPlaceholder
	}
}

// HighlightToken derives the highlight token from the committed query: its
// first whitespace-delimited field with one layer of surrounding quotes
// trimmed. Empty result means no highlighting.
func HighlightToken(query string) string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return ""
	}
	token := strings.Trim(fields[0], `"`)
	token = strings.Trim(token, `'`)
	return token
}

// HighlightLine splits a line into segments around every literal occurrence
// of token. Matches are found by repeatedly searching the remainder after
// each hit, so adjacent occurrences are marked independently.
func HighlightLine(text, token string) Line {
	if token == "" || !strings.Contains(text, token) {
		return plainLine(text)
	}
	var segs []Segment
	rest := text
	for {
		pos := strings.Index(rest, token)
		if pos < 0 {
			break
		}
		if pos > 0 {
			segs = append(segs, Segment{Text: rest[:pos]})
		}
		segs = append(segs, Segment{Text: token, Match: true})
		rest = rest[pos+len(token):]
	}
	// The trailing remainder is kept even when empty so a match at the end
	// of the line still yields a (prefix, match, suffix) shape.
	segs = append(segs, Segment{Text: rest})
	return Line{Segments: segs}
}
