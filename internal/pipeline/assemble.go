package pipeline

import (
	"fmt"
	"html"
	"path/filepath"
	"strings"
)

// PageBreak separates consecutive documents in paged output.
const PageBreak = `<div class="page-break"></div>`

// DefaultDescription fills the metadata block when frontmatter has none.
const DefaultDescription = "No description"

// Related mirrors the optional related-links frontmatter mapping.
type Related struct {
	Title       string
	Description string
	Links       []string
}

// DocMeta is the heading and metadata block rendered ahead of a document
// body. Documents without parsable frontmatter have no DocMeta: their body
// still renders, but they never appear in the outline.
type DocMeta struct {
	Entry       Entry
	DocPath     string
	Description string
	Related     *Related
}

// StringField returns the string value for key, or fallback when the key
// is missing or holds a non-string.
func StringField(data map[string]any, key, fallback string) string {
	if v, ok := data[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return fallback
}

// RelatedFromData extracts the optional related mapping. Anything that is
// not a non-empty mapping yields nil; non-string link entries are skipped.
func RelatedFromData(data map[string]any) *Related {
	raw, ok := data["related"].(map[string]any)
	if !ok || len(raw) == 0 {
		return nil
	}
	related := &Related{
		Title:       StringField(raw, "title", "Related"),
		Description: StringField(raw, "description", "No related description"),
	}
	if links, ok := raw["links"].([]any); ok {
		for _, l := range links {
			if s, ok := l.(string); ok {
				related.Links = append(related.Links, s)
			}
		}
	}
	return related
}

// DocPathFor renders the repository-relative path shown in the metadata
// block: forward slashes, MDX extension dropped, rooted at the docs dir.
func DocPathFor(relPath string) string {
	p := "/" + filepath.ToSlash(relPath)
	return strings.ReplaceAll(p, ".mdx", "")
}

func (m *DocMeta) block() string {
	var b strings.Builder
	fmt.Fprintf(&b, "<h1 id=\"%s\">%s</h1>\n", m.Entry.FullTitle, m.Entry.FullTitle)
	fmt.Fprintf(&b, `<div class="doc-path"><p>Documentation path: %s</p></div>`+"\n", m.DocPath)
	fmt.Fprintf(&b, "<p><strong>Description:</strong> %s</p>\n", m.Description)
	if m.Related != nil {
		b.WriteString(`<div style="margin-left:20px;">` + "\n")
		b.WriteString("<p><strong>Related:</strong></p>\n")
		fmt.Fprintf(&b, "<p><strong>Title:</strong> %s</p>\n", m.Related.Title)
		fmt.Fprintf(&b, "<p><strong>Related Description:</strong> %s</p>\n", m.Related.Description)
		b.WriteString("<p><strong>Links:</strong></p>\n<ul>\n")
		for _, link := range m.Related.Links {
			fmt.Fprintf(&b, "<li>%s</li>\n", link)
		}
		b.WriteString("</ul>\n</div>\n")
	}
	b.WriteString("<br/>\n")
	return b.String()
}

// Assembler accumulates per-document fragments and produces the output
// variants of one export run. State belongs to a single run; build a
// fresh Assembler per export.
type Assembler struct {
	toc   *TOC
	pages strings.Builder
	count int
}

func NewAssembler() *Assembler {
	return &Assembler{toc: NewTOC()}
}

// AddEntry numbers a document at the given depth and records its outline
// line, returning the entry whose FullTitle anchors the document heading.
func (a *Assembler) AddEntry(depth int, title string) Entry {
	return a.toc.Add(depth, title)
}

// AppendDocument adds one document fragment: the optional heading and
// metadata block, then the rendered body. A page break precedes every
// document except the first, so none trails the last.
func (a *Assembler) AppendDocument(meta *DocMeta, bodyHTML string) {
	if a.count > 0 {
		a.pages.WriteString(PageBreak)
	}
	a.count++
	if meta != nil {
		a.pages.WriteString(meta.block())
	}
	a.pages.WriteString(bodyHTML)
}

// Content returns the accumulated outline and document markup before the
// shell is applied. Version scanning runs over it, so markers anywhere in
// the output count: body HTML, outline titles, and metadata blocks alike.
func (a *Assembler) Content() string {
	return a.toc.buf.String() + a.pages.String()
}

// ShellOptions configure the shared outer document shell.
type ShellOptions struct {
	Title string // <title> text; empty falls back to "Documentation"
	CSS   string // stylesheet inlined into <head>
}

// Variants bundles the three interchangeable outputs of one run, all
// wrapped in the identical shell.
type Variants struct {
	Combined    string // cover + TOC + documents
	TOCOnly     string
	ContentOnly string
}

// Build wraps the accumulated content into the three variants. cover may
// be empty; it precedes the TOC in the combined output only.
func (a *Assembler) Build(cover string, opts ShellOptions) Variants {
	toc := a.toc.Block()
	pages := a.pages.String()
	return Variants{
		Combined:    wrapShell(cover+toc+pages, opts),
		TOCOnly:     wrapShell(toc, opts),
		ContentOnly: wrapShell(pages, opts),
	}
}

const shellTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
%s
</style>
</head>
<body>
%s
</body>
</html>`

func wrapShell(body string, opts ShellOptions) string {
	title := opts.Title
	if title == "" {
		title = "Documentation"
	}
	return fmt.Sprintf(shellTemplate, html.EscapeString(title), sanitizeCSS(opts.CSS), body)
}

// sanitizeCSS escapes sequences that could close the <style> block early.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
