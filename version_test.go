package docs2pdf

import (
	"testing"
	"time"
)

func TestLatestVersion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "no version markers",
			content: "<h1>Getting Started</h1><p>Install the framework.</p>",
			want:    "",
		},
		{
			name:    "single marker",
			content: "<p>Introduced in v13.4.0 for the App Router.</p>",
			want:    "13.4.0",
		},
		{
			name:    "picks the highest of several",
			content: "<p>Changed in v12.2.0, updated in v13.0.1, deprecated since v9.5.5.</p>",
			want:    "13.0.1",
		},
		{
			name:    "numeric comparison beats lexical",
			content: "<p>See v1.9.9 and v1.10.0.</p>",
			want:    "1.10.0",
		},
		{
			name:    "major version dominates",
			content: "<p>v2.0.0 and v10.0.0</p>",
			want:    "10.0.0",
		},
		{
			name:    "two-part versions are ignored",
			content: "<p>since v1.2</p>",
			want:    "",
		},
		{
			name:    "prerelease suffix keeps the numeric core",
			content: "<p>v14.0.0-canary.12</p>",
			want:    "14.0.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := LatestVersion(tt.content); got != tt.want {
				t.Errorf("LatestVersion() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMaxVersion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b string
		want string
	}{
		{name: "both empty", a: "", b: "", want: ""},
		{name: "empty loses left", a: "", b: "1.0.0", want: "1.0.0"},
		{name: "empty loses right", a: "1.0.0", b: "", want: "1.0.0"},
		{name: "patch decides", a: "13.0.0", b: "13.0.2", want: "13.0.2"},
		{name: "minor decides numerically", a: "13.10.0", b: "13.9.9", want: "13.10.0"},
		{name: "equal picks either", a: "1.2.3", b: "1.2.3", want: "1.2.3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := maxVersion(tt.a, tt.b); got != tt.want {
				t.Errorf("maxVersion(%q, %q) = %q, want %q", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestDocumentTitle(t *testing.T) {
	t.Parallel()

	if got := DocumentTitle("Next.js", "15.1.0"); got != "Next.js Documentation v15.1.0" {
		t.Errorf("DocumentTitle() = %q", got)
	}
	if got := DocumentTitle("Next.js", ""); got != "Next.js Documentation" {
		t.Errorf("DocumentTitle() without version = %q", got)
	}
}

func TestOutputFileName(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		project string
		version string
		want    string
	}{
		{
			name:    "version stamped with run date",
			project: "Next.js",
			version: "15.1.0",
			want:    "Next.js_Docs_v15.1.0_2026-08-24.pdf",
		},
		{
			name:    "no version falls back",
			project: "Next.js",
			version: "",
			want:    "Next.js_Documentation.pdf",
		},
		{
			name:    "spaces become underscores",
			project: "My Project",
			version: "1.0.0",
			want:    "My_Project_Docs_v1.0.0_2026-08-24.pdf",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := OutputFileName(tt.project, tt.version, now); got != tt.want {
				t.Errorf("OutputFileName() = %q, want %q", got, tt.want)
			}
		})
	}
}
