package pipeline

import (
	"regexp"
	"strings"
)

// Code-header placeholders use Unicode Private Use Area characters. They
// pass through Goldmark unchanged (no WithUnsafe needed) and are converted
// to real markup after HTML generation by ConvertCodeHeaderPlaceholders.
const (
	HeaderStartPlaceholder = "\uE000"
	HeaderEndPlaceholder   = "\uE001"
)

// Precompiled regex patterns.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// srcLight/srcDark attribute assignments on MDX image components.
	// Plain src attributes are deliberately not matched.
	assetAttrPattern = regexp.MustCompile(`src(?:Light|Dark)="(.*?)"`)

	// Fenced code blocks carrying a filename attribute:
	// ```lang filename="name" [switcher] ... ```
	codeFencePattern = regexp.MustCompile("(?s)```" + `(\w+)?\s+filename="([^"]+)"\s*(switcher)?` + "\n(.*?)```")
)

// NormalizeLineEndings converts \r\n and \r to \n. Frontmatter splitting
// matches delimiter lines exactly, so this runs first.
func NormalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// RewriteAssetPaths replaces every srcLight/srcDark attribute with a plain
// src pointing at base + original path + suffix. base is typically an image
// proxy prefix and suffix a fixed width/quality query string.
func RewriteAssetPaths(content, base, suffix string) string {
	return assetAttrPattern.ReplaceAllStringFunc(content, func(m string) string {
		sub := assetAttrPattern.FindStringSubmatch(m)
		return `src="` + base + sub[1] + suffix + `"`
	})
}

// RewriteCodeFences normalizes fences annotated with filename metadata:
// the filename (and language, when present) moves into a marker-delimited
// header line, and the fence itself is retagged with just the language.
// The code content is carried over byte-for-byte. Fences without a
// filename attribute are left for the standard fenced-code path.
func RewriteCodeFences(content string) string {
	return codeFencePattern.ReplaceAllStringFunc(content, func(m string) string {
		sub := codeFencePattern.FindStringSubmatch(m)
		lang, filename, code := sub[1], sub[2], sub[4]

		header := filename
		if lang != "" {
			header = filename + " (" + lang + ")"
		}

		return HeaderStartPlaceholder + header + HeaderEndPlaceholder +
			"\n```" + lang + "\n" + code + "\n```"
	})
}

// ConvertCodeHeaderPlaceholders converts header markers to styled markup.
// Called after Goldmark conversion, which leaves the placeholder runes
// intact and HTML-escapes the header text between them.
func ConvertCodeHeaderPlaceholders(content string) string {
	return strings.ReplaceAll(
		strings.ReplaceAll(content, HeaderStartPlaceholder, `<span class="code-header"><i>`),
		HeaderEndPlaceholder, "</i></span>",
	)
}
