package pipeline

import (
	"strings"
	"testing"
)

func TestNormalizeLineEndings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "already normalized",
			input:    "line1\nline2",
			expected: "line1\nline2",
		},
		{
			name:     "windows endings",
			input:    "---\r\ntitle: X\r\n---\r\nbody",
			expected: "---\ntitle: X\n---\nbody",
		},
		{
			name:     "old mac endings",
			input:    "line1\rline2",
			expected: "line1\nline2",
		},
		{
			name:     "mixed endings",
			input:    "a\r\nb\rc\nd",
			expected: "a\nb\nc\nd",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := NormalizeLineEndings(tt.input); got != tt.expected {
				t.Errorf("NormalizeLineEndings(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestRewriteAssetPaths(t *testing.T) {
	t.Parallel()

	const (
		base   = "https://h/i?u="
		suffix = "&w=100"
	)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "srcLight attribute",
			input:    `<Image srcLight="/x.png" alt="x" />`,
			expected: `<Image src="https://h/i?u=/x.png&w=100" alt="x" />`,
		},
		{
			name:     "srcDark attribute",
			input:    `<Image srcDark="/dark/x.png" />`,
			expected: `<Image src="https://h/i?u=/dark/x.png&w=100" />`,
		},
		{
			name:     "plain src is untouched",
			input:    `<img src="/y.png" />`,
			expected: `<img src="/y.png" />`,
		},
		{
			name: "both variants on one component",
			input: `<Image srcLight="/light.png" srcDark="/dark.png" />`,
			expected: `<Image src="https://h/i?u=/light.png&w=100" ` +
				`src="https://h/i?u=/dark.png&w=100" />`,
		},
		{
			name:     "multiple components across lines",
			input:    "<Image srcLight=\"/a.png\" />\ntext\n<Image srcDark=\"/b.png\" />",
			expected: "<Image src=\"https://h/i?u=/a.png&w=100\" />\ntext\n<Image src=\"https://h/i?u=/b.png&w=100\" />",
		},
		{
			name:     "no matches leaves content unchanged",
			input:    "# Heading\n\nJust prose.",
			expected: "# Heading\n\nJust prose.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := RewriteAssetPaths(tt.input, base, suffix); got != tt.expected {
				t.Errorf("RewriteAssetPaths(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestRewriteCodeFences(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:  "language and filename",
			input: "```js filename=\"a.js\"\nconsole.log('hi')\n```",
			expected: HeaderStartPlaceholder + "a.js (js)" + HeaderEndPlaceholder +
				"\n```js\nconsole.log('hi')\n\n```",
		},
		{
			name:  "filename without language",
			input: "``` filename=\".env\"\nKEY=value\n```",
			expected: HeaderStartPlaceholder + ".env" + HeaderEndPlaceholder +
				"\n```\nKEY=value\n\n```",
		},
		{
			name:  "switcher marker is dropped",
			input: "```tsx filename=\"page.tsx\" switcher\nexport default Page\n```",
			expected: HeaderStartPlaceholder + "page.tsx (tsx)" + HeaderEndPlaceholder +
				"\n```tsx\nexport default Page\n\n```",
		},
		{
			name:     "fence without filename is untouched",
			input:    "```go\nfmt.Println(1)\n```",
			expected: "```go\nfmt.Println(1)\n```",
		},
		{
			name:     "plain fence is untouched",
			input:    "```\nplain\n```",
			expected: "```\nplain\n```",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := RewriteCodeFences(tt.input); got != tt.expected {
				t.Errorf("RewriteCodeFences(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestRewriteCodeFences_CodePreservedVerbatim(t *testing.T) {
	t.Parallel()

	code := "export async function getData() {\n  const res = await fetch(url)\n\n  return res.json()\n}\n"
	input := "```ts filename=\"lib/data.ts\"\n" + code + "```"

	got := RewriteCodeFences(input)
	if !strings.Contains(got, code) {
		t.Errorf("rewritten fence lost code content:\n%s", got)
	}
	if !strings.Contains(got, HeaderStartPlaceholder+"lib/data.ts (ts)"+HeaderEndPlaceholder) {
		t.Errorf("rewritten fence missing header marker:\n%s", got)
	}
	if strings.Contains(got, "filename=") {
		t.Errorf("rewritten fence still carries filename metadata:\n%s", got)
	}
}

func TestRewriteCodeFences_MultipleBlocks(t *testing.T) {
	t.Parallel()

	input := "```js filename=\"a.js\"\none\n```\n\nprose\n\n```py filename=\"b.py\"\ntwo\n```"
	got := RewriteCodeFences(input)

	if !strings.Contains(got, "a.js (js)") || !strings.Contains(got, "b.py (py)") {
		t.Fatalf("expected both headers, got:\n%s", got)
	}
	if !strings.Contains(got, "\nprose\n") {
		t.Errorf("prose between fences was disturbed:\n%s", got)
	}
}

func TestConvertCodeHeaderPlaceholders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "converts marker pair",
			input:    "<p>" + HeaderStartPlaceholder + "a.js (js)" + HeaderEndPlaceholder + "</p>",
			expected: `<p><span class="code-header"><i>a.js (js)</i></span></p>`,
		},
		{
			name:     "no markers leaves content unchanged",
			input:    "<p>plain</p>",
			expected: "<p>plain</p>",
		},
		{
			name: "multiple pairs",
			input: HeaderStartPlaceholder + "a" + HeaderEndPlaceholder + " and " +
				HeaderStartPlaceholder + "b" + HeaderEndPlaceholder,
			expected: `<span class="code-header"><i>a</i></span> and <span class="code-header"><i>b</i></span>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ConvertCodeHeaderPlaceholders(tt.input); got != tt.expected {
				t.Errorf("ConvertCodeHeaderPlaceholders(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
