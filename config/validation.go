package config

import "fmt"

// Validate rejects configurations the engine factory could not act on.
func (c *Config) Validate() error {
	switch c.RecipesDB.Kind {
	case KindMemory:
		if c.RecipesDB.Path != "" {
			return fmt.Errorf("memory storage takes no path, got %q", c.RecipesDB.Path)
		}
	case KindFS, KindSQL:
		if c.RecipesDB.Path == "" {
			return fmt.Errorf("%s storage requires a path", c.RecipesDB.Kind)
		}
	default:
		return fmt.Errorf("unknown storage kind %q", c.RecipesDB.Kind)
	}

	if c.Service.Addr == "" {
		return fmt.Errorf("service addr must not be empty")
	}
	return nil
}
