package main

// Notes:
// - parseExportFlags: we test defaults, group parsing, shorthands,
//   explicit-zero detection through the set markers, and rejection of
//   positional arguments and unknown flags.

import (
	"errors"
	"testing"
)

func TestParseExportFlagsDefaults(t *testing.T) {
	t.Parallel()

	f, err := parseExportFlags(nil)
	if err != nil {
		t.Fatalf("parseExportFlags(nil) error = %v", err)
	}

	if f.source.repoURL != "" || f.source.skipSync {
		t.Errorf("source flags = %+v, want zero values", f.source)
	}
	if f.assets.rewriteSet || f.output.htmlSet || f.page.marginSet || f.page.scaleSet {
		t.Error("set markers must be false when no flag is given")
	}
	if f.misc.verbose {
		t.Error("verbose must default to false")
	}
}

func TestParseExportFlagsAllGroups(t *testing.T) {
	t.Parallel()

	f, err := parseExportFlags([]string{
		"--repo-url", "https://github.com/sveltejs/svelte.git",
		"--branch", "main",
		"--docs-dir", "documentation/docs",
		"--clone-dir", "svelte-docs",
		"--skip-sync",
		"--rewrite-assets",
		"--asset-base-url", "https://svelte.dev/img?u=",
		"--asset-url-suffix", "&w=1280",
		"--output-dir", "exports",
		"--html",
		"--page-format", "letter",
		"--margin", "0.75",
		"--scale", "0.9",
		"--config", "custom",
		"--style", "default",
		"--assets-dir", "brand",
		"--date", "auto:long",
		"--timeout", "5m",
		"--verbose",
	})
	if err != nil {
		t.Fatalf("parseExportFlags() error = %v", err)
	}

	if f.source.repoURL != "https://github.com/sveltejs/svelte.git" {
		t.Errorf("repoURL = %q", f.source.repoURL)
	}
	if f.source.branch != "main" || f.source.docsDir != "documentation/docs" {
		t.Errorf("source = %+v", f.source)
	}
	if !f.source.skipSync {
		t.Error("skipSync = false, want true")
	}
	if !f.assets.rewrite || !f.assets.rewriteSet {
		t.Errorf("assets = %+v, want rewrite set and true", f.assets)
	}
	if f.assets.baseURL != "https://svelte.dev/img?u=" || f.assets.urlSuffix != "&w=1280" {
		t.Errorf("assets = %+v", f.assets)
	}
	if f.output.dir != "exports" || !f.output.html || !f.output.htmlSet {
		t.Errorf("output = %+v", f.output)
	}
	if f.page.format != "letter" {
		t.Errorf("format = %q", f.page.format)
	}
	if f.page.margin != 0.75 || !f.page.marginSet {
		t.Errorf("margin = %v (set=%v)", f.page.margin, f.page.marginSet)
	}
	if f.page.scale != 0.9 || !f.page.scaleSet {
		t.Errorf("scale = %v (set=%v)", f.page.scale, f.page.scaleSet)
	}
	if f.misc.config != "custom" || f.misc.style != "default" || f.misc.assetsDir != "brand" {
		t.Errorf("misc = %+v", f.misc)
	}
	if f.misc.date != "auto:long" || f.misc.timeout != "5m" || !f.misc.verbose {
		t.Errorf("misc = %+v", f.misc)
	}
}

func TestParseExportFlagsShorthands(t *testing.T) {
	t.Parallel()

	f, err := parseExportFlags([]string{"-o", "out", "-p", "legal", "-c", "cfg", "-t", "90s", "-v"})
	if err != nil {
		t.Fatalf("parseExportFlags() error = %v", err)
	}

	if f.output.dir != "out" || f.page.format != "legal" {
		t.Errorf("shorthands parsed as %+v / %+v", f.output, f.page)
	}
	if f.misc.config != "cfg" || f.misc.timeout != "90s" || !f.misc.verbose {
		t.Errorf("misc shorthands parsed as %+v", f.misc)
	}
}

func TestParseExportFlagsExplicitZero(t *testing.T) {
	t.Parallel()

	f, err := parseExportFlags([]string{"--margin", "0", "--rewrite-assets=false"})
	if err != nil {
		t.Fatalf("parseExportFlags() error = %v", err)
	}

	if !f.page.marginSet || f.page.margin != 0 {
		t.Error("explicit --margin 0 must be marked as set")
	}
	if !f.assets.rewriteSet || f.assets.rewrite {
		t.Error("explicit --rewrite-assets=false must be marked as set")
	}
	if f.page.scaleSet {
		t.Error("scale was not given, must not be marked as set")
	}
}

func TestParseExportFlagsRejectsPositional(t *testing.T) {
	t.Parallel()

	_, err := parseExportFlags([]string{"stray.md"})
	if !errors.Is(err, ErrUnexpectedArgument) {
		t.Errorf("parseExportFlags() error = %v, want ErrUnexpectedArgument", err)
	}
}

func TestParseExportFlagsUnknownFlag(t *testing.T) {
	t.Parallel()

	if _, err := parseExportFlags([]string{"--no-such-flag"}); err == nil {
		t.Error("expected error for unknown flag")
	}
}
