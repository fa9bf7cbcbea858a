package config

import (
	"github.com/flaggen/flaggen/internal/logger"
)

// Generator holds the batch settings.
type Generator struct {
	Number   int    `json:"number"   mapstructure:"number"    toml:"number"`
	Length   int    `json:"length"   mapstructure:"length"    toml:"length"`
	Charset  string `json:"charset"  mapstructure:"charset"   toml:"charset"`
	Prefix   string `json:"prefix"   mapstructure:"prefix"    toml:"prefix"`
	Suffix   string `json:"suffix"   mapstructure:"suffix"    toml:"suffix"`
	Template string `json:"template" mapstructure:"template"  toml:"template"`
	Unique   bool   `json:"unique"   mapstructure:"unique"    toml:"unique"`
	NoBraces bool   `json:"no_braces" mapstructure:"no_braces" toml:"no_braces"`
}

// Output holds where and how flags are written.
type Output struct {
	Path   string `json:"path"   mapstructure:"path"   toml:"path"`   // empty writes to stdout
	Format string `json:"format" mapstructure:"format" toml:"format"` // text, json, yaml, csv, hashed
}

// Metrics holds the Prometheus textfile settings.
type Metrics struct {
	File string `json:"file" mapstructure:"file" toml:"file"` // empty disables the dump
}

// Config overall data structure.
type Config struct {
	Generator Generator  `json:"generator" mapstructure:"generator" toml:"generator"`
	Output    Output     `json:"output"    mapstructure:"output"    toml:"output"`
	Metrics   Metrics    `json:"metrics"   mapstructure:"metrics"   toml:"metrics"`
	Log       logger.Log `json:"log"       mapstructure:"log"       toml:"log"`
}
