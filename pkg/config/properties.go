package config

import (
	"fmt"
	"strings"

	"github.com/magiconair/properties"
)

// PropertiesPrefix namespaces rainlight keys in a .properties file.
const PropertiesPrefix = "rainlight."

// ImportProperties applies every "rainlight.<key>=<value>" entry of a Java
// style properties file to c and returns the keys it set. Other entries are
// ignored.
func (c *Config) ImportProperties(path string) ([]string, error) {
	p, err := properties.LoadFile(path, properties.UTF8)
	if err != nil {
		return nil, fmt.Errorf("load properties: %w", err)
	}

	var imported []string
	for _, key := range Keys() {
		value, ok := p.Get(PropertiesPrefix + key)
		if !ok {
			continue
		}
		if err := c.Set(key, strings.TrimSpace(value)); err != nil {
			return nil, err
		}
		imported = append(imported, key)
	}
	return imported, nil
}
