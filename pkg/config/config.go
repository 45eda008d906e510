// Package config loads projection settings from files and the environment.
//
// Settings are resolved in increasing order of precedence:
//
//  1. A TOML (.toml) or YAML (.yaml, .yml) job file
//  2. MULTIMODE_* environment variables, including those from a .env file
//  3. Command line flags, applied by the caller
//
// A job file looks like:
//
//	attribute = "type"
//	in = "actor"
//	common = "event"
//	out = "organization"
//	threshold = 0.5
//	remove_nodes = true
package config

import (
	stderrors "errors"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/joancf/Multimode-Networks/pkg/errors"
	"github.com/joancf/Multimode-Networks/pkg/multimode"
)

// EnvPrefix prefixes every environment variable read by [File.ApplyEnv].
const EnvPrefix = "MULTIMODE_"

// Format is a job file encoding.
type Format string

// Supported job file formats.
const (
	FormatTOML Format = "toml" // .toml, decoded with BurntSushi/toml
	FormatYAML Format = "yaml" // .yaml or .yml, decoded with yaml.v3
)

// File holds the projection settings a job file or the environment can set.
type File struct {
	Attribute        string  `toml:"attribute" yaml:"attribute"`
	In               string  `toml:"in" yaml:"in"`
	Common           string  `toml:"common" yaml:"common"`
	Out              string  `toml:"out" yaml:"out"`
	Threshold        float64 `toml:"threshold" yaml:"threshold"`
	RemoveEdges      bool    `toml:"remove_edges" yaml:"remove_edges"`
	RemoveNodes      bool    `toml:"remove_nodes" yaml:"remove_nodes"`
	ConsiderDirected bool    `toml:"directed" yaml:"directed"`
}

// Load resolves settings from the job file at path, which may be empty,
// and the environment.
//
// With no envFiles, a .env file in the working directory is loaded if
// present. Named envFiles must exist. Variables already set in the process
// environment are never overwritten by an env file.
func Load(path string, envFiles ...string) (*File, error) {
	if len(envFiles) == 0 {
		_ = godotenv.Load()
	} else if err := godotenv.Load(envFiles...); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "load env files")
	}

	f := &File{}
	if path != "" {
		var err error
		if f, err = ReadFile(path); err != nil {
			return nil, err
		}
	}
	if err := f.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	return f, nil
}

// FormatOf infers a job file's format from its extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", errors.New(errors.ErrCodeUnsupported, "unsupported config format %q (use .toml, .yaml or .yml)", filepath.Ext(path))
	}
}

// ReadFile decodes the job file at path.
func ReadFile(path string) (*File, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	fh, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "open %s", path)
	}
	defer fh.Close()
	return Decode(fh, format)
}

// Decode reads a job file in the given format. Unknown keys are rejected.
func Decode(r io.Reader, format Format) (*File, error) {
	var f File
	switch format {
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(&f)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode toml")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown config key %q", undecoded[0].String())
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil && !stderrors.Is(err, io.EOF) {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode yaml")
		}
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported config format %q", format)
	}
	return &f, nil
}

// ApplyEnv overrides fields with MULTIMODE_* variables found by lookup:
// ATTRIBUTE, IN, COMMON, OUT, THRESHOLD, REMOVE_EDGES, REMOVE_NODES and
// DIRECTED.
func (f *File) ApplyEnv(lookup func(string) (string, bool)) error {
	strs := []struct {
		key string
		dst *string
	}{
		{"ATTRIBUTE", &f.Attribute},
		{"IN", &f.In},
		{"COMMON", &f.Common},
		{"OUT", &f.Out},
	}
	for _, s := range strs {
		if v, ok := lookup(EnvPrefix + s.key); ok {
			*s.dst = v
		}
	}

	if v, ok := lookup(EnvPrefix + "THRESHOLD"); ok {
		t, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "%sTHRESHOLD", EnvPrefix)
		}
		f.Threshold = t
	}

	bools := []struct {
		key string
		dst *bool
	}{
		{"REMOVE_EDGES", &f.RemoveEdges},
		{"REMOVE_NODES", &f.RemoveNodes},
		{"DIRECTED", &f.ConsiderDirected},
	}
	for _, b := range bools {
		v, ok := lookup(EnvPrefix + b.key)
		if !ok {
			continue
		}
		parsed, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s%s", EnvPrefix, b.key)
		}
		*b.dst = parsed
	}
	return nil
}

// Options converts the settings to projection options. Logger and Progress
// are left for the caller.
func (f *File) Options() multimode.Options {
	return multimode.Options{
		Attribute:        f.Attribute,
		In:               f.In,
		Common:           f.Common,
		Out:              f.Out,
		Threshold:        f.Threshold,
		RemoveEdges:      f.RemoveEdges,
		RemoveNodes:      f.RemoveNodes,
		ConsiderDirected: f.ConsiderDirected,
	}
}
