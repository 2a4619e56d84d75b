// Copyright 2026 The slf4d Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package slf4d

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"
)

// Config describes a provider declaratively, so deployments can swap log
// levels, formats, and sinks without a rebuild. Load one with [LoadConfig]
// and turn it into a provider with [Config.BuildProvider]:
//
//	cfg, err := slf4d.LoadConfig("logging.yaml")
//	if err != nil { ... }
//	provider, err := cfg.BuildProvider()
//	if err != nil { ... }
//	slf4d.Configure(provider)
//
// An example configuration:
//
//	level: info
//	format: text
//	color: true
//	modules:
//	  - prefix: myapp.db
//	    level: debug
//	  - pattern: "\\.internal\\."
//	    level: warn
//	writers:
//	  - type: stdout
//	  - type: rotating
//	    dir: /var/log/myapp
//	    prefix: myapp
//	    maxSize: 500000000
//	    compress: true
type Config struct {
	// Level is the root severity threshold. Defaults to "info".
	Level string `yaml:"level" toml:"level" validate:"omitempty"`

	// Format selects the serializer: "text" (default) or "json".
	Format string `yaml:"format" toml:"format" validate:"omitempty,oneof=text json"`

	// Color enables ANSI coloring for the text format.
	Color bool `yaml:"color" toml:"color"`

	// Modules lists level overrides, applied in order with the last matching
	// entry winning.
	Modules []ModuleConfig `yaml:"modules" toml:"modules" validate:"dive"`

	// Writers lists the sinks. Defaults to a single stdout writer.
	Writers []WriterConfig `yaml:"writers" toml:"writers" validate:"dive"`
}

// ModuleConfig is one level override: either a regular-expression pattern or
// a literal name prefix, never both.
type ModuleConfig struct {
	Pattern string `yaml:"pattern" toml:"pattern" validate:"required_without=Prefix,excluded_with=Prefix"`
	Prefix  string `yaml:"prefix" toml:"prefix"`
	Level   string `yaml:"level" toml:"level" validate:"required"`
}

// WriterConfig is one sink.
type WriterConfig struct {
	Type     string `yaml:"type" toml:"type" validate:"required,oneof=stdout file rotating"`
	Path     string `yaml:"path" toml:"path" validate:"required_if=Type file"`
	Dir      string `yaml:"dir" toml:"dir" validate:"required_if=Type rotating"`
	Prefix   string `yaml:"prefix" toml:"prefix"`
	MaxSize  int64  `yaml:"maxSize" toml:"maxSize" validate:"omitempty,gt=0"`
	Compress bool   `yaml:"compress" toml:"compress"`
}

// LoadConfig reads and validates a configuration file. The format is chosen
// by extension: .yaml/.yml or .toml.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading logging configuration: %w", err)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported file extension %q", ErrInvalidConfig, ext)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration's structure. Level names are checked
// during [Config.BuildProvider], where they are parsed.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// BuildProvider constructs a provider from the configuration.
func (c *Config) BuildProvider() (*DefaultProvider, error) {
	rootLevel := LevelInfo
	if c.Level != "" {
		var err error
		if rootLevel, err = ParseLevel(c.Level); err != nil {
			return nil, fmt.Errorf("%w: root level: %v", ErrInvalidConfig, err)
		}
	}

	var serializer Serializer
	switch c.Format {
	case "", "text":
		serializer = NewTextSerializer(c.Color)
	case "json":
		serializer = NewJSONSerializer()
	}

	writers, err := c.buildWriters()
	if err != nil {
		return nil, err
	}

	provider := NewProvider(NewSerializeHandler(serializer, writers...), rootLevel)
	factory := provider.DefaultFactory()
	for _, m := range c.Modules {
		level, err := ParseLevel(m.Level)
		if err != nil {
			return nil, fmt.Errorf("%w: module level: %v", ErrInvalidConfig, err)
		}
		if m.Prefix != "" {
			factory.SetModuleLevelPrefix(m.Prefix, level)
			continue
		}
		if err := factory.SetModuleLevel(m.Pattern, level); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	}
	return provider, nil
}

func (c *Config) buildWriters() ([]Writer, error) {
	if len(c.Writers) == 0 {
		return []Writer{NewStdoutWriter()}, nil
	}
	writers := make([]Writer, 0, len(c.Writers))
	for _, wc := range c.Writers {
		switch wc.Type {
		case "stdout":
			writers = append(writers, NewStdoutWriter())
		case "file":
			fw, err := NewFileWriter(wc.Path)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
			}
			writers = append(writers, fw)
		case "rotating":
			opts := []RotatingOption{}
			if wc.Prefix != "" {
				opts = append(opts, WithPrefix(wc.Prefix))
			}
			if wc.MaxSize > 0 {
				opts = append(opts, WithMaxFileSize(wc.MaxSize))
			}
			if wc.Compress {
				opts = append(opts, WithCompression())
			}
			rw, err := NewRotatingWriter(wc.Dir, opts...)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
			}
			writers = append(writers, rw)
		}
	}
	return writers, nil
}
