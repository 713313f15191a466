package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	flag "github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/rogpeppe/loosen/gen"
)

// configNames holds the names of the configuration files
// searched for, in order of preference.
var configNames = []string{
	".loosen.toml",
	".loosen.yaml",
	".loosen.yml",
}

// fileConfig holds the settings in a configuration file.
type fileConfig struct {
	Tuple string   `toml:"tuple" yaml:"tuple"`
	Tests bool     `toml:"tests" yaml:"tests"`
	Jobs  int      `toml:"jobs" yaml:"jobs"`
	Write bool     `toml:"write" yaml:"write"`
	Funcs []string `toml:"funcs" yaml:"funcs"`
}

// loadConfig reads the configuration file at path.
// Unknown keys are an error.
func loadConfig(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c fileConfig
	switch ext := filepath.Ext(path); ext {
	case ".toml":
		md, err := toml.Decode(string(data), &c)
		if err != nil {
			return nil, fmt.Errorf("cannot parse %s: %w", path, err)
		}
		if undec := md.Undecoded(); len(undec) > 0 {
			keys := make([]string, len(undec))
			for i, k := range undec {
				keys[i] = k.String()
			}
			return nil, fmt.Errorf("unknown keys in %s: %s", path, strings.Join(keys, ", "))
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("cannot parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unknown configuration file format %q", ext)
	}
	if c.Jobs < 0 {
		return nil, fmt.Errorf("invalid jobs value %d in %s", c.Jobs, path)
	}
	return &c, nil
}

// findConfig walks up from dir looking for a configuration file.
// It returns the empty string if there is none.
func findConfig(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		for _, name := range configNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			} else if !errors.Is(err, fs.ErrNotExist) {
				return "", err
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// genConfig returns the generator configuration from the
// configuration file and the flags that were set.
func (o *options) genConfig(flags *flag.FlagSet) (*gen.Config, error) {
	path := o.config
	if path == "" {
		var err error
		path, err = findConfig(".")
		if err != nil {
			return nil, configError("cannot search for configuration file", "", "", err)
		}
	}
	c := &fileConfig{}
	if path != "" {
		var err error
		c, err = loadConfig(path)
		if err != nil {
			return nil, configError("cannot load configuration", "", "fix or remove "+path, err)
		}
	}
	if flags.Changed("tuple") {
		c.Tuple = o.tuple
	}
	if flags.Changed("tests") {
		c.Tests = o.tests
	}
	if flags.Changed("jobs") {
		c.Jobs = o.jobs
	}
	if flags.Changed("write") {
		c.Write = o.write
	}
	if flags.Changed("funcs") {
		c.Funcs = o.funcs
	}
	if c.Jobs < 0 {
		return nil, inputError("invalid --jobs value", fmt.Sprintf("%d is negative", c.Jobs), "", nil)
	}
	return &gen.Config{
		TuplePath: c.Tuple,
		Funcs:     c.Funcs,
		InPlace:   c.Write,
		Tests:     c.Tests,
		Jobs:      c.Jobs,
	}, nil
}
