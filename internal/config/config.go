package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"multiorder/container"
)

// Element kinds understood by the multiorder command.
const (
	KindInt    = "int"
	KindFloat  = "float"
	KindString = "string"
)

var SupportedKinds = []string{KindInt, KindFloat, KindString}

// Config describes one run: which elements to load, what to remove and which orders to print.
//
// Example file:
//
//	kind: int
//	elements: [7, 15, 6, 1, 2]
//	remove: [6]
//	orders: [ascending, side-cross]
//	limit: 3
type Config struct {
	Kind     string   `yaml:"kind"`
	Elements []any    `yaml:"elements"`
	Remove   []any    `yaml:"remove"`
	Orders   []string `yaml:"orders"`
	// Limit caps the number of elements printed per order, 0 means no limit.
	Limit int `yaml:"limit"`
}

// Load reads a YAML config file.
func Load(path string) (*Config, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config %s", path)
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(body, cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to parse config %s", path)
	}
	return cfg, nil
}

// Default returns the config used when no file is given.
func Default() *Config {
	return &Config{Kind: KindInt}
}

// ParsedOrders resolves Orders to container orders; an empty list means all six.
func (c *Config) ParsedOrders() ([]container.Order, error) {
	if len(c.Orders) == 0 {
		return container.Orders(), nil
	}
	orders := make([]container.Order, 0, len(c.Orders))
	for _, name := range c.Orders {
		o, err := container.ParseOrder(name)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func (c *Config) Validate() error {
	if c.Kind == "" {
		c.Kind = KindInt
	}
	switch c.Kind {
	case KindInt, KindFloat, KindString:
	default:
		return errors.Errorf("unsupported element kind %q, the possible values are %v", c.Kind, SupportedKinds)
	}
	if c.Limit < 0 {
		return errors.Errorf("limit must not be negative, got %d", c.Limit)
	}
	_, err := c.ParsedOrders()
	return err
}
