package config

import (
	"os"
	"strings"

	"github.com/eirikbell/rental/item"
	"github.com/eirikbell/rental/registry"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config settings of one store run
type Config struct {
	Buckets        int      `yaml:"buckets"`
	ItemsFile      string   `yaml:"items_file"`
	CustomersFile  string   `yaml:"customers_file"`
	CommandsFile   string   `yaml:"commands_file"`
	LogLevel       string   `yaml:"log_level"`
	InventoryOrder []string `yaml:"inventory_order"`
}

// Default settings, matching the file names the store has always used
func Default() Config {
	return Config{
		Buckets:        registry.DefaultSize,
		ItemsFile:      "data4movies.txt",
		CustomersFile:  "data4customers.txt",
		CommandsFile:   "data4commands.txt",
		LogLevel:       "info",
		InventoryOrder: []string{"C", "F", "C"},
	}
}

// Normalize replaces missing or invalid values with defaults
func (c *Config) Normalize() {
	d := Default()

	if c.Buckets <= 0 {
		c.Buckets = d.Buckets
	}
	if c.ItemsFile == "" {
		c.ItemsFile = d.ItemsFile
	}
	if c.CustomersFile == "" {
		c.CustomersFile = d.CustomersFile
	}
	if c.CommandsFile == "" {
		c.CommandsFile = d.CommandsFile
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
		c.LogLevel = strings.ToLower(c.LogLevel)
	default:
		c.LogLevel = d.LogLevel
	}

	var order []string
	for _, code := range c.InventoryOrder {
		if _, err := item.ParseCategory(code); err == nil {
			order = append(order, strings.TrimSpace(code))
		}
	}
	if len(order) == 0 {
		order = d.InventoryOrder
	}
	c.InventoryOrder = order
}

// Categories inventory order as genres
func (c Config) Categories() []item.Category {
	out := make([]item.Category, 0, len(c.InventoryOrder))
	for _, code := range c.InventoryOrder {
		if cat, err := item.ParseCategory(code); err == nil {
			out = append(out, cat)
		}
	}
	return out
}

// Parse reads YAML over the defaults, so absent keys keep their default
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), errors.Wrap(err, "Cannot parse config")
	}

	cfg.Normalize()
	return cfg, nil
}

// Load reads the config file at path. A missing file gives the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Default(), errors.Wrapf(err, "Cannot read config %s", path)
	}

	return Parse(data)
}
