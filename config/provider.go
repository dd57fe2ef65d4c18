package config

// Provider exposes configuration information from an arbitrary
// backing source.  output is a pointer to a struct or a
// map[string]any; path selects a subtree, "" the whole tree.
type Provider interface {
	Unmarshal(path string, output any) error
}
