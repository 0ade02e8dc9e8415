package pipeline

import (
	"strings"
	"testing"
)

func TestSplit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		content   string
		wantFM    string
		wantBody  string
		wantFound bool
	}{
		{
			name:      "document with frontmatter",
			content:   "---\ntitle: Routing\ndescription: Pages\n---\n# Routing\n\nBody text.",
			wantFM:    "title: Routing\ndescription: Pages",
			wantBody:  "# Routing\n\nBody text.",
			wantFound: true,
		},
		{
			name:      "no frontmatter",
			content:   "# Just a heading\n\nText.",
			wantFM:    "",
			wantBody:  "# Just a heading\n\nText.",
			wantFound: false,
		},
		{
			name:      "empty document",
			content:   "",
			wantFM:    "",
			wantBody:  "",
			wantFound: false,
		},
		{
			name:      "unclosed delimiter treated as body",
			content:   "---\ntitle: Broken\nno closing line",
			wantFM:    "",
			wantBody:  "---\ntitle: Broken\nno closing line",
			wantFound: false,
		},
		{
			name:      "leading delimiter with surrounding spaces",
			content:   "  ---  \ntitle: Padded\n---\nbody",
			wantFM:    "title: Padded",
			wantBody:  "body",
			wantFound: true,
		},
		{
			name:      "empty frontmatter block",
			content:   "---\n---\nbody only",
			wantFM:    "",
			wantBody:  "body only",
			wantFound: true,
		},
		{
			name:      "horizontal rule later in body is not a delimiter",
			content:   "intro\n---\nmore",
			wantFM:    "",
			wantBody:  "intro\n---\nmore",
			wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fm, body, found := Split(tt.content)
			if found != tt.wantFound {
				t.Fatalf("Split() found = %v, want %v", found, tt.wantFound)
			}
			if fm != tt.wantFM {
				t.Errorf("Split() frontmatter = %q, want %q", fm, tt.wantFM)
			}
			if body != tt.wantBody {
				t.Errorf("Split() body = %q, want %q", body, tt.wantBody)
			}
		})
	}
}

func TestProtectTags(t *testing.T) {
	t.Parallel()

	t.Run("each occurrence gets its own placeholder", func(t *testing.T) {
		t.Parallel()

		protected, mappings := protectTags(`description: Use <AppOnly>content</AppOnly> here`)
		if len(mappings) != 2 {
			t.Fatalf("got %d mappings, want 2", len(mappings))
		}
		if mappings[0].tag != "<AppOnly>" || mappings[1].tag != "</AppOnly>" {
			t.Errorf("mappings = %+v, want <AppOnly> then </AppOnly>", mappings)
		}
		if strings.Contains(protected, "<") {
			t.Errorf("protected text still contains angle brackets: %q", protected)
		}
		if !strings.Contains(protected, "HTML_TAG_0") || !strings.Contains(protected, "HTML_TAG_1") {
			t.Errorf("protected text missing placeholders: %q", protected)
		}
	})

	t.Run("repeated identical tags stay distinct occurrences", func(t *testing.T) {
		t.Parallel()

		_, mappings := protectTags("a <b> c <b> d")
		if len(mappings) != 2 {
			t.Fatalf("got %d mappings, want 2", len(mappings))
		}
		if mappings[0].placeholder == mappings[1].placeholder {
			t.Error("identical tags share a placeholder, want unique placeholders")
		}
	})

	t.Run("no tags leaves text unchanged", func(t *testing.T) {
		t.Parallel()

		protected, mappings := protectTags("title: Plain text")
		if protected != "title: Plain text" {
			t.Errorf("protected = %q, want unchanged input", protected)
		}
		if len(mappings) != 0 {
			t.Errorf("got %d mappings, want 0", len(mappings))
		}
	})
}

func TestDecodeFrontmatter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		fm    string
		check func(t *testing.T, data map[string]any)
	}{
		{
			name: "plain fields",
			fm:   "title: Routing\ndescription: How routing works",
			check: func(t *testing.T, data map[string]any) {
				if data["title"] != "Routing" {
					t.Errorf("title = %v, want Routing", data["title"])
				}
				if data["description"] != "How routing works" {
					t.Errorf("description = %v, want 'How routing works'", data["description"])
				}
			},
		},
		{
			name: "embedded tag survives parsing and comes out escaped",
			fm:   `description: "a <b> tag"`,
			check: func(t *testing.T, data map[string]any) {
				want := "a &lt;b&gt; tag"
				if data["description"] != want {
					t.Errorf("description = %v, want %q", data["description"], want)
				}
			},
		},
		{
			name: "component tag in unquoted value",
			fm:   "title: Using <AppOnly> sections",
			check: func(t *testing.T, data map[string]any) {
				want := "Using &lt;AppOnly&gt; sections"
				if data["title"] != want {
					t.Errorf("title = %v, want %q", data["title"], want)
				}
			},
		},
		{
			name: "non-string values pass through unchanged",
			fm:   "title: Config\ndraft: true\nweight: 3",
			check: func(t *testing.T, data map[string]any) {
				if data["draft"] != true {
					t.Errorf("draft = %v (%T), want true", data["draft"], data["draft"])
				}
				switch w := data["weight"].(type) {
				case int, int64, uint64, float64:
					// decoded as a number, good
				default:
					t.Errorf("weight = %v (%T), want numeric", w, w)
				}
			},
		},
		{
			name: "nested related mapping is preserved",
			fm:   "title: Pages\nrelated:\n  title: Next steps\n  links:\n    - app/routing\n    - app/rendering",
			check: func(t *testing.T, data map[string]any) {
				related, ok := data["related"].(map[string]any)
				if !ok {
					t.Fatalf("related = %T, want map", data["related"])
				}
				links, ok := related["links"].([]any)
				if !ok || len(links) != 2 {
					t.Fatalf("links = %v, want two entries", related["links"])
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data := DecodeFrontmatter(tt.fm)
			if data == nil {
				t.Fatal("DecodeFrontmatter() = nil, want data")
			}
			tt.check(t, data)
		})
	}
}

func TestDecodeFrontmatter_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fm   string
	}{
		{name: "empty block", fm: ""},
		{name: "whitespace only", fm: "   \n\t"},
		{name: "malformed yaml", fm: "title: [unclosed"},
		{name: "scalar root", fm: "just a bare string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if data := DecodeFrontmatter(tt.fm); data != nil {
				t.Errorf("DecodeFrontmatter(%q) = %v, want nil", tt.fm, data)
			}
		})
	}
}

func TestDecodeFrontmatter_ManyTags(t *testing.T) {
	t.Parallel()

	// Eleven tags: placeholder HTML_TAG_1 is a prefix of HTML_TAG_10, so
	// restoration order matters.
	var b strings.Builder
	b.WriteString("description: ")
	for i := 0; i < 11; i++ {
		b.WriteString("<i> ")
	}
	data := DecodeFrontmatter(b.String())
	if data == nil {
		t.Fatal("DecodeFrontmatter() = nil, want data")
	}
	desc, _ := data["description"].(string)
	if strings.Contains(desc, "HTML_TAG_") {
		t.Errorf("description still contains placeholders: %q", desc)
	}
	if got, want := strings.Count(desc, "&lt;i&gt;"), 11; got != want {
		t.Errorf("restored %d tags, want %d: %q", got, want, desc)
	}
}
