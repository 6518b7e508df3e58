package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Kind names one of the recognized storage engines.
type Kind string

const (
	KindMemory Kind = "memory"
	KindFS     Kind = "fs"
	KindSQL    Kind = "sql"
)

// Storage selects exactly one storage engine. In YAML it is a single-key
// mapping: the key is the engine kind, the value its path (null for memory).
//
//	recipes_db:
//	  fs: /var/lib/recipes
type Storage struct {
	Kind Kind
	Path string
}

// UnmarshalYAML decodes the single-key mapping form.
func (s *Storage) UnmarshalYAML(value *yaml.Node) error {
	var m map[string]*string
	if err := value.Decode(&m); err != nil {
		return fmt.Errorf("recipes_db must be a mapping of engine kind to path: %w", err)
	}
	if len(m) != 1 {
		return fmt.Errorf("recipes_db must select exactly one storage kind, got %d", len(m))
	}
	for kind, path := range m {
		s.Kind = Kind(kind)
		if path != nil {
			s.Path = *path
		}
	}
	return nil
}
