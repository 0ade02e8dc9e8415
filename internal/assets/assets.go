package assets

// defaultLoader is the package-level embedded loader used by the
// convenience functions below.
var defaultLoader = NewEmbeddedLoader()

// LoadStyle loads a CSS file by name using the default embedded loader.
// The name should not include the .css extension or path components.
func LoadStyle(name string) (string, error) {
	return defaultLoader.LoadStyle(name)
}

// LoadTemplate loads an HTML template by name using the default embedded
// loader. The name should not include the .html extension.
func LoadTemplate(name string) (string, error) {
	return defaultLoader.LoadTemplate(name)
}
