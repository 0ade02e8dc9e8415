package pipeline

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestGoldmarkConverter_ToHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		input        string
		wantContains []string
		wantNot      []string
	}{
		{
			name:  "basic heading with id",
			input: "# Hello World",
			wantContains: []string{
				"<h1",
				`id="hello-world"`,
				"Hello World",
				"</h1>",
			},
		},
		{
			name:  "fragment output carries no document shell",
			input: "# Test",
			wantNot: []string{
				"<!DOCTYPE html>",
				"<html>",
				"<body>",
			},
		},
		{
			name:  "soft line breaks stay soft",
			input: "Line one\nLine two",
			wantContains: []string{
				"<p>",
				"Line one",
				"Line two",
			},
			wantNot: []string{
				"<br",
			},
		},
		{
			name:  "GFM table",
			input: "| A | B |\n|---|---|\n| 1 | 2 |",
			wantContains: []string{
				"<table>",
				"<thead>",
				"<tbody>",
				"<th>",
				"<td>",
			},
		},
		{
			name:  "GFM strikethrough",
			input: "~~deleted~~",
			wantContains: []string{
				"<del>",
				"deleted",
				"</del>",
			},
		},
		{
			name:  "GFM task list",
			input: "- [x] Done\n- [ ] Todo",
			wantContains: []string{
				"<input",
				"checked",
				"type=\"checkbox\"",
			},
		},
		{
			name:  "footnote",
			input: "Text[^1]\n\n[^1]: Footnote content",
			wantContains: []string{
				"<sup",
				"footnote",
			},
		},
		{
			name:  "definition list",
			input: "Term\n: definition text",
			wantContains: []string{
				"<dl>",
				"<dt>",
				"<dd>",
			},
		},
		{
			name:  "typographer smart quotes",
			input: `She said "hello"`,
			wantContains: []string{
				"&ldquo;",
				"&rdquo;",
			},
		},
		{
			name:  "code block with syntax highlighting classes",
			input: "```go\nfunc main() {}\n```",
			wantContains: []string{
				"<pre",
				"<code",
				"func",
			},
		},
		{
			name:  "inline code",
			input: "Use `fmt.Println` function",
			wantContains: []string{
				"<code>",
				"fmt.Println",
				"</code>",
			},
		},
		{
			name:  "markdown image",
			input: "![alt text](image.png)",
			wantContains: []string{
				"<img",
				"src=\"image.png\"",
				"alt=\"alt text\"",
			},
		},
		{
			name:  "raw HTML never renders live",
			input: "<script>alert('xss')</script>",
			wantContains: []string{
				"<!-- raw HTML omitted -->",
			},
			wantNot: []string{
				"<script>",
			},
		},
		{
			name:  "code header placeholders pass through",
			input: HeaderStartPlaceholder + "a.js (js)" + HeaderEndPlaceholder + "\n\n```js\ncode\n```",
			wantContains: []string{
				HeaderStartPlaceholder,
				HeaderEndPlaceholder,
				"a.js (js)",
			},
		},
		{
			name:  "unicode content",
			input: "# 日本語\n\nBonjour le monde",
			wantContains: []string{
				"日本語",
				"Bonjour le monde",
			},
		},
	}

	converter := NewGoldmarkConverter()
	ctx := context.Background()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := converter.ToHTML(ctx, tt.input)
			if err != nil {
				t.Fatalf("ToHTML() unexpected error: %v", err)
			}

			for _, want := range tt.wantContains {
				if !strings.Contains(result, want) {
					t.Errorf("ToHTML() result should contain %q\nGot:\n%s", want, result)
				}
			}
			for _, notWant := range tt.wantNot {
				if strings.Contains(result, notWant) {
					t.Errorf("ToHTML() result should NOT contain %q\nGot:\n%s", notWant, result)
				}
			}
		})
	}
}

func TestGoldmarkConverter_ToHTML_ContextCancellation(t *testing.T) {
	t.Parallel()

	converter := NewGoldmarkConverter()

	t.Run("cancelled context returns error", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := converter.ToHTML(ctx, "# Test")
		if err == nil {
			t.Fatal("expected error for cancelled context")
		}
		if err != context.Canceled {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	})

	t.Run("deadline exceeded returns error", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
		defer cancel()

		_, err := converter.ToHTML(ctx, "# Test")
		if err == nil {
			t.Fatal("expected error for timed out context")
		}
		if err != context.DeadlineExceeded {
			t.Errorf("expected context.DeadlineExceeded, got %v", err)
		}
	})

	t.Run("valid context succeeds", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		result, err := converter.ToHTML(ctx, "# Test")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(result, "Test") {
			t.Error("result should contain converted content")
		}
	})
}
