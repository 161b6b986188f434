package config

import "github.com/lixenwraith/neon-rails/input"

// KeyTable returns the default bindings merged with configured overrides
func (c *Config) KeyTable() (*input.KeyTable, error) {
	if len(c.Keys) == 0 {
		return input.DefaultKeyTable(), nil
	}
	override, err := input.LoadBindings(c.Keys)
	if err != nil {
		return nil, err
	}
	return input.MergeKeyTable(input.DefaultKeyTable(), override), nil
}
