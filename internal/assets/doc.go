// Package assets provides the stylesheet and cover template used when
// rendering exported documentation.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (shipped defaults)
//	    ├── FilesystemLoader  - loads from a custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// AssetResolver is the loader the exporter uses. It tries the custom
// FilesystemLoader first, falling back to EmbeddedLoader when the asset is
// not found, so a user can override the stylesheet while keeping the
// shipped cover template, or the other way around.
//
// # Directory Structure
//
// Custom asset directories mirror the embedded tree:
//
//	{basePath}/
//	├── styles/
//	│   └── {name}.css      # e.g. styles/default.css
//	└── templates/
//	    └── {name}.html     # e.g. templates/cover.html
//
// Asset names are validated against path separators and traversal;
// FilesystemLoader additionally resolves symlinks and verifies that every
// read stays inside its base directory.
package assets
