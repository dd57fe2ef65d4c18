package koanfp

import (
	"fmt"

	"github.com/knadh/koanf"
	"github.com/montanonic/javascript-allonge-six/config"
)

// provider adapts a shared Koanf instance to config.Provider.
// https://github.com/knadh/koanf
type provider struct {
	k *koanf.Koanf
}

func (p *provider) Unmarshal(path string, output any) error {
	if err := p.k.Unmarshal(path, output); err != nil {
		return fmt.Errorf("koanf: %w", err)
	}
	return nil
}

// Use returns a config.Provider backed by the shared Koanf
// instance.
func Use(k *koanf.Koanf) config.Provider {
	if k == nil {
		panic("k cannot be nil")
	}
	return &provider{k}
}
