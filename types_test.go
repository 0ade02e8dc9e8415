package docs2pdf

import (
	"errors"
	"testing"
	"time"
)

func TestDefaultPageSettings(t *testing.T) {
	t.Parallel()

	p := DefaultPageSettings()
	if p.Format != PageFormatA4 {
		t.Errorf("Format = %q, want %q", p.Format, PageFormatA4)
	}
	if p.Margin != DefaultMargin {
		t.Errorf("Margin = %v, want %v", p.Margin, DefaultMargin)
	}
	if p.Scale != DefaultScale {
		t.Errorf("Scale = %v, want %v", p.Scale, DefaultScale)
	}
	if !p.PrintBackground {
		t.Error("PrintBackground = false, want true")
	}
}

func TestPageSettingsValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		page    *PageSettings
		wantErr error
	}{
		{"nil settings pass", nil, nil},
		{"defaults pass", DefaultPageSettings(), nil},
		{"uppercase format", &PageSettings{Format: "A4", Margin: 0.5, Scale: 1}, nil},
		{"letter", &PageSettings{Format: "letter", Margin: 0.5, Scale: 1}, nil},
		{"legal", &PageSettings{Format: "Legal", Margin: 0.5, Scale: 1}, nil},
		{"unknown format", &PageSettings{Format: "tabloid", Margin: 0.5, Scale: 1}, ErrInvalidPageFormat},
		{"empty format", &PageSettings{Margin: 0.5, Scale: 1}, ErrInvalidPageFormat},
		{"zero margin passes", &PageSettings{Format: "a4", Margin: 0, Scale: 1}, nil},
		{"margin too large", &PageSettings{Format: "a4", Margin: 3.1, Scale: 1}, ErrInvalidMargin},
		{"negative margin", &PageSettings{Format: "a4", Margin: -0.1, Scale: 1}, ErrInvalidMargin},
		{"scale too small", &PageSettings{Format: "a4", Margin: 0.5, Scale: 0.05}, ErrInvalidScale},
		{"scale too large", &PageSettings{Format: "a4", Margin: 0.5, Scale: 2.5}, ErrInvalidScale},
		{"max bounds pass", &PageSettings{Format: "a4", Margin: MaxMargin, Scale: MaxScale}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.page.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestWithTimeoutPanicsOnNonPositive(t *testing.T) {
	t.Parallel()

	for _, d := range []time.Duration{0, -time.Second} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("WithTimeout(%v) did not panic", d)
				}
			}()
			WithTimeout(d)
		}()
	}
}

func TestExporterOptions(t *testing.T) {
	t.Parallel()

	e := &Exporter{}
	WithTimeout(90 * time.Second)(e)
	WithStyle("default")(e)
	WithAssetsDir("/tmp/assets")(e)

	if e.cfg.timeout != 90*time.Second {
		t.Errorf("timeout = %v, want 90s", e.cfg.timeout)
	}
	if e.cfg.style != "default" {
		t.Errorf("style = %q, want %q", e.cfg.style, "default")
	}
	if e.cfg.assetsDir != "/tmp/assets" {
		t.Errorf("assetsDir = %q, want %q", e.cfg.assetsDir, "/tmp/assets")
	}
}
