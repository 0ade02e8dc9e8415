package pipeline

import (
	"html"
	"regexp"
	"strconv"
	"strings"

	"github.com/alnah/go-docs2pdf/internal/yamlutil"
)

// tagPattern matches HTML-tag-like sequences. MDX frontmatter embeds
// component tags in field values, which a YAML parser would otherwise
// read as flow syntax.
var tagPattern = regexp.MustCompile(`<[^>]+>`)

const tagPlaceholderPrefix = "HTML_TAG_"

// tagMapping records one protected tag occurrence, in insertion order.
type tagMapping struct {
	placeholder string
	tag         string
}

// Split separates a document into its frontmatter block and body. The
// frontmatter is delimited by a `---` first line and a matching closing
// `---` line. Without both delimiters the whole text is body. Callers
// should normalize line endings first (see NormalizeLineEndings): the
// closing delimiter is matched exactly.
func Split(content string) (frontmatter, body string, found bool) {
	lines := strings.Split(content, "\n")
	if strings.TrimSpace(lines[0]) != "---" {
		return "", content, false
	}
	for i := 1; i < len(lines); i++ {
		if lines[i] == "---" {
			return strings.Join(lines[1:i], "\n"), strings.Join(lines[i+1:], "\n"), true
		}
	}
	return "", content, false
}

// protectTags replaces every tag-like occurrence with a unique placeholder
// so the YAML parser never sees raw angle brackets. Each occurrence gets
// its own placeholder; the mapping preserves insertion order.
func protectTags(frontmatter string) (string, []tagMapping) {
	var mappings []tagMapping
	protected := tagPattern.ReplaceAllStringFunc(frontmatter, func(tag string) string {
		placeholder := tagPlaceholderPrefix + strconv.Itoa(len(mappings))
		mappings = append(mappings, tagMapping{placeholder: placeholder, tag: tag})
		return placeholder
	})
	return protected, mappings
}

// restoreTags puts protected tags back into top-level string values and
// HTML-escapes the result so tag content renders literally. Non-string
// values pass through untouched. Mappings are applied highest index first:
// HTML_TAG_1 is a prefix of HTML_TAG_10.
func restoreTags(data map[string]any, mappings []tagMapping) {
	for key, value := range data {
		s, ok := value.(string)
		if !ok {
			continue
		}
		for i := len(mappings) - 1; i >= 0; i-- {
			s = strings.ReplaceAll(s, mappings[i].placeholder, mappings[i].tag)
		}
		data[key] = html.EscapeString(s)
	}
}

// DecodeFrontmatter parses a frontmatter block into a mapping, shielding
// embedded markup from the YAML parser and escaping it in the decoded
// string values. Any parse failure yields nil: the document then renders
// without metadata and is left out of the TOC.
func DecodeFrontmatter(frontmatter string) map[string]any {
	if strings.TrimSpace(frontmatter) == "" {
		return nil
	}
	protected, mappings := protectTags(frontmatter)
	data, err := yamlutil.DecodeMap([]byte(protected))
	if err != nil {
		return nil
	}
	restoreTags(data, mappings)
	return data
}
