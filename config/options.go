package config

import "fmt"

// Options are the library settings loadable from configuration:
// the verbosity of logging advice and named sets of method
// names to forward when attaching with the forward-proxy
// strategy.
type Options struct {
	Verbosity   int
	ForwardSets map[string][]string
}

// ForwardSet resolves a named forward set.
func (o *Options) ForwardSet(name string) ([]string, error) {
	if names, ok := o.ForwardSets[name]; ok {
		return names, nil
	}
	return nil, fmt.Errorf("config: unknown forward set %q", name)
}

// Load populates Options from a provider subtree.
func Load(provider Provider, path string) (Options, error) {
	if provider == nil {
		panic("provider cannot be nil")
	}
	var options Options
	if err := provider.Unmarshal(path, &options); err != nil {
		return Options{}, fmt.Errorf("config: %w", err)
	}
	return options, nil
}
