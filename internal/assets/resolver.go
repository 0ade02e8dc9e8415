package assets

import (
	"errors"
)

// AssetResolver combines custom and embedded loaders. When a custom asset
// directory is configured the custom loader runs first, with the embedded
// assets as fallback, so users can override one asset and inherit the rest.
type AssetResolver struct {
	custom   AssetLoader // nil if no custom path configured
	embedded AssetLoader
}

// NewAssetResolver creates an AssetResolver. An empty customBasePath means
// embedded assets only. Returns an error if customBasePath is set but invalid.
func NewAssetResolver(customBasePath string) (*AssetResolver, error) {
	resolver := &AssetResolver{
		embedded: NewEmbeddedLoader(),
	}

	if customBasePath != "" {
		fsLoader, err := NewFilesystemLoader(customBasePath)
		if err != nil {
			return nil, err
		}
		resolver.custom = fsLoader
	}

	return resolver, nil
}

// LoadStyle loads a CSS style, trying the custom loader first if available.
func (r *AssetResolver) LoadStyle(name string) (string, error) {
	return r.loadWithFallback(name, AssetLoader.LoadStyle)
}

// LoadTemplate loads an HTML template, trying the custom loader first if
// available.
func (r *AssetResolver) LoadTemplate(name string) (string, error) {
	return r.loadWithFallback(name, AssetLoader.LoadTemplate)
}

// loadWithFallback implements the custom-first logic. Only a not-found
// outcome falls through to embedded; validation and I/O errors surface.
func (r *AssetResolver) loadWithFallback(name string, load func(AssetLoader, string) (string, error)) (string, error) {
	if r.custom == nil {
		return load(r.embedded, name)
	}

	content, err := load(r.custom, name)
	if err == nil {
		return content, nil
	}
	if !isNotFoundError(err) {
		return "", err
	}

	return load(r.embedded, name)
}

// isNotFoundError checks if the error indicates the asset was not found.
func isNotFoundError(err error) bool {
	return errors.Is(err, ErrStyleNotFound) || errors.Is(err, ErrTemplateNotFound)
}

// HasCustomLoader returns true if a custom asset loader is configured.
func (r *AssetResolver) HasCustomLoader() bool {
	return r.custom != nil
}

// Compile-time interface check.
var _ AssetLoader = (*AssetResolver)(nil)
