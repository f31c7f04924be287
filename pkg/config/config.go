package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	homedir "github.com/mitchellh/go-homedir"
	yaml "gopkg.in/yaml.v3"
)

// Config holds user preferences. Zero values mean "use the flag default".
type Config struct {
	Color    string `yaml:"color,omitempty"`
	Output   string `yaml:"output,omitempty"`
	ExitZero bool   `yaml:"exit-zero,omitempty"`
	Latin1   bool   `yaml:"latin1,omitempty"`
	// configPath is the file path used for reading and writing this config.
	configPath string `yaml:"-"`
}

var validValues = map[string][]string{
	"color":     {"auto", "always", "never"},
	"output":    {"default", "json"},
	"exit-zero": {"true", "false"},
	"latin1":    {"true", "false"},
}

// Keys returns the settable keys in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(validValues))
	for k := range validValues {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ValidValues returns the accepted values for key.
func ValidValues(key string) []string {
	return validValues[key]
}

// Set validates value and assigns it to key.
func (c *Config) Set(key, value string) error {
	allowed, ok := validValues[key]
	if !ok {
		return fmt.Errorf("unknown config key %q", key)
	}
	valid := false
	for _, v := range allowed {
		if v == value {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("invalid value %q for %s: must be one of %v", value, key, allowed)
	}

	switch key {
	case "color":
		c.Color = value
	case "output":
		c.Output = value
	case "exit-zero":
		c.ExitZero, _ = strconv.ParseBool(value)
	case "latin1":
		c.Latin1, _ = strconv.ParseBool(value)
	}
	return nil
}

// Path returns the file this config is read from and written to.
func (c *Config) Path() string {
	return c.configPath
}

func (c *Config) Write() error {
	configPath := c.configPath
	if configPath == "" {
		var err error
		configPath, err = getDefaultConfigPath()
		if err != nil {
			return err
		}
	}
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	tmpFile, err := os.CreateTemp(configDir, "config.*.tmp")
	if err != nil {
		return fmt.Errorf("create temp config file: %w", err)
	}
	tmpPath := tmpFile.Name()

	encoder := yaml.NewEncoder(tmpFile)
	if err := encoder.Encode(c); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("encode config: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp config file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0600); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("chmod temp config file: %w", err)
	}
	if err := os.Rename(tmpPath, configPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temp config file: %w", err)
	}
	c.configPath = configPath
	return nil
}

// ReadConfig loads cfgPath, or the default path when cfgPath is empty.
// A missing default file or an empty file yields an empty Config.
func ReadConfig(cfgPath string) (c Config, err error) {
	resolvedPath, err := resolveConfigPath(cfgPath)
	if err != nil {
		return Config{}, err
	}

	file, err := os.OpenFile(resolvedPath, os.O_RDONLY, 0644)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{configPath: resolvedPath}, nil
		}
		return Config{}, fmt.Errorf("open config file: %w", err)
	}
	defer file.Close()
	decoder := yaml.NewDecoder(file)
	err = decoder.Decode(&c)
	if err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	for key, value := range map[string]string{"color": c.Color, "output": c.Output} {
		if value == "" {
			continue
		}
		if err := (&Config{}).Set(key, value); err != nil {
			return Config{}, fmt.Errorf("decode config: %w", err)
		}
	}
	c.configPath = resolvedPath
	return c, nil
}

func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

func resolveConfigPath(cfgPath string) (string, error) {
	if cfgPath == "" {
		return getDefaultConfigPath()
	}
	if !fileExists(cfgPath) {
		return "", fmt.Errorf("config file %q does not exist", cfgPath)
	}
	return cfgPath, nil
}

func getDefaultConfigPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}

	return filepath.Join(home, ".rainlight", "config"), nil
}
