package config

import (
	"bytes"
	"io"
	"os"

	"github.com/achilleasa/objmesh/asset/obj"
	"github.com/achilleasa/objmesh/log"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ParserConfig controls how object files are parsed.
type ParserConfig struct {
	// Keep faces with fewer than 3 or more than 4 vertices in the parsed
	// scene instead of dropping them.
	RetainAllArities bool `yaml:"retain_all_arities"`

	// Reject faces whose vertices reference a different set of attributes
	// than the face's first vertex.
	StrictFaces bool `yaml:"strict_faces"`
}

// Config holds the settings that can be supplied via a yaml file.
type Config struct {
	Parser   ParserConfig `yaml:"parser"`
	LogLevel string       `yaml:"log_level"`
}

// Default returns the configuration used when no config file is specified.
func Default() *Config {
	return &Config{
		LogLevel: log.Notice.String(),
	}
}

// Load a yaml config from a file. Settings missing from the file retain
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "config: could not read %s", path)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "config: could not load %s", path)
	}
	return cfg, nil
}

// Parse a yaml config. Unknown keys are reported as errors.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, err
	}

	if _, err := log.ParseLevel(cfg.LogLevel); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Level returns the configured log level.
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.Notice
	}
	return level
}

// ParserOptions converts the parser settings into obj parser options.
func (c *Config) ParserOptions() obj.Options {
	opts := obj.Options{}
	if c.Parser.RetainAllArities {
		opts.Arity = obj.RetainAllArities
	}
	opts.StrictFaces = c.Parser.StrictFaces
	return opts
}
