package pipeline

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Counter accumulates hierarchical section numbers across one export run:
// one slot per outline depth. Visiting depth d zeroes every deeper slot
// and increments slot d, which yields 1, 1.1, 1.2, 2, 2.1 style numbering.
type Counter struct {
	slots []int
}

// NewCounter returns a counter with a single zeroed slot.
func NewCounter() *Counter {
	return &Counter{slots: []int{0}}
}

// Next advances the counter for a document at the given depth and returns
// the rendered numbering, slots 0..depth joined by dots.
func (c *Counter) Next(depth int) string {
	if depth < 0 {
		depth = 0
	}
	for len(c.slots) <= depth {
		c.slots = append(c.slots, 0)
	}
	c.slots[depth]++
	for i := depth + 1; i < len(c.slots); i++ {
		c.slots[i] = 0
	}

	parts := make([]string, depth+1)
	for i := 0; i <= depth; i++ {
		parts[i] = strconv.Itoa(c.slots[i])
	}
	return strings.Join(parts, ".")
}

// Entry is one numbered outline item.
type Entry struct {
	Numbering string
	Title     string
	FullTitle string // "<numbering> - <title>", doubles as the anchor target
	Depth     int
}

// indentUnit spaces outline entries; five units per depth level.
const indentUnit = "&nbsp;"

// TOC accumulates the anchor-linked outline as documents are numbered.
// State is owned by a single export run; reset by building a fresh TOC.
type TOC struct {
	counter *Counter
	buf     strings.Builder
}

func NewTOC() *TOC {
	return &TOC{counter: NewCounter()}
}

// Add numbers a document at the given depth and appends its outline line.
// The link target is the full title string itself; document headings carry
// the same string as their anchor id, keeping link and target in lockstep.
func (t *TOC) Add(depth int, title string) Entry {
	numbering := t.counter.Next(depth)
	full := numbering + " - " + title
	indent := strings.Repeat(indentUnit, 5*depth)
	fmt.Fprintf(&t.buf, "%s<a href='#%s'>%s</a><br/>", indent, full, full)
	return Entry{Numbering: numbering, Title: title, FullTitle: full, Depth: depth}
}

// Block renders the outline section: heading, accumulated entries, and a
// trailing page break so document content starts on a fresh page.
func (t *TOC) Block() string {
	return `<div style="padding-bottom: 10px"><div style="padding-bottom: 20px"><h1>Table of Contents</h1></div>` +
		t.buf.String() +
		`</div><div style="page-break-before: always;"></div>`
}

// DefaultTitle derives a document title from its file name for documents
// whose frontmatter carries none: extension dropped, words title-cased.
func DefaultTitle(filename string) string {
	stem := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	return cases.Title(language.Und).String(stem)
}
