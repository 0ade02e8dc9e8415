// Package pipeline implements the per-document transformation stages of a
// documentation export:
//
//   - frontmatter split, tag-safe YAML decoding, restore and escape
//   - body rewrites (asset URL absolutization, code-fence headers)
//   - hierarchical outline numbering and TOC generation
//   - Markdown to HTML conversion via Goldmark
//   - assembly of per-document fragments into the output variants
//   - post-render resolution of relative asset paths to file:// URLs
//
// PDF generation is handled separately by the root docs2pdf package using
// headless Chrome (go-rod). The pipeline stays concerned with document
// structure and content only.
package pipeline
