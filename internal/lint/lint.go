// Package lint checks configuration files for syntactic and semantic
// problems, reporting every failure as an xgx-cause chain.
//
// It is the reference consumer of the propagation protocol: reading a file
// produces io terminals, decoding produces parse terminals with source
// locations, semantic checks produce validation nodes, and every layer
// either passes through, wraps with context, or recovers explicitly.
package lint

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	xgxcause "github.com/xgx-io/xgx-cause"
)

// Format identifies the on-disk encoding of a config file.
type Format int

const (
	// FormatTOML is the default encoding.
	FormatTOML Format = iota

	// FormatYAML covers .yaml and .yml.
	FormatYAML

	// FormatUnknown marks extensions the linter does not handle.
	FormatUnknown
)

// String returns the lowercase tag used in diagnostics.
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// DetectFormat picks the format from the file extension.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatUnknown
	}
}

// Config is the schema the linter understands.
type Config struct {
	Server ServerConfig `toml:"server" yaml:"server"`
	Log    LogConfig    `toml:"log" yaml:"log"`
}

// ServerConfig holds the listener settings.
type ServerConfig struct {
	Host string `toml:"host" yaml:"host"`
	Port int    `toml:"port" yaml:"port"`
}

// LogConfig holds the logging settings.
type LogConfig struct {
	Level string `toml:"level" yaml:"level"`
}

// logLevels is the accepted set for log.level.
var logLevels = map[string]struct{}{
	"debug": {},
	"info":  {},
	"warn":  {},
	"error": {},
}

// Result is the outcome of linting one file.
type Result struct {
	Path string

	// Skipped is set when a missing file was tolerated outside strict
	// mode (the recover policy).
	Skipped bool

	// Violations are the semantic failures found; syntactic failures
	// abort the run and surface as the error return instead.
	Violations []*xgxcause.ErrorValue
}

// Load reads and decodes one config file. The read boundary translates
// filesystem failures into io terminals; the decode boundary translates
// decoder failures into parse terminals pinned to a source location when
// the decoder reports one.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, xgxcause.Attach(err, xgxcause.KindIO, "reading config file", "file", path)
	}
	return decode(path, data)
}

func decode(path string, data []byte) (*Config, error) {
	var cfg Config
	switch DetectFormat(path) {
	case FormatTOML:
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return nil, xgxcause.Wrap(fromTOML(err, path),
				xgxcause.KindParse, "decoding config file", "file", path, "format", "toml")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, xgxcause.Wrap(
				xgxcause.FromKind(err, xgxcause.KindParse, "file", path),
				xgxcause.KindParse, "decoding config file", "file", path, "format", "yaml")
		}
	default:
		return nil, xgxcause.New(xgxcause.KindValidation, "unsupported config format",
			"file", path, "ext", filepath.Ext(path))
	}
	return &cfg, nil
}

// fromTOML absorbs a toml decode failure, keeping the decoder's line/col
// when it reports one.
func fromTOML(err error, path string) *xgxcause.ErrorValue {
	var perr toml.ParseError
	if errors.As(err, &perr) {
		return xgxcause.FromKind(err, xgxcause.KindParse,
			"file", path, "line", perr.Position.Line, "col", perr.Position.Col)
	}
	return xgxcause.FromKind(err, xgxcause.KindParse, "file", path)
}

// Validate runs the semantic checks and returns one validation terminal
// per breach. A nil cfg is a programming error upstream; Validate treats
// it as no violations.
func Validate(cfg *Config) []*xgxcause.ErrorValue {
	if cfg == nil {
		return nil
	}
	var out []*xgxcause.ErrorValue

	if cfg.Server.Host == "" {
		out = append(out, xgxcause.Validation("server.host", "required"))
	}
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		out = append(out, xgxcause.Validation("server.port",
			fmt.Sprintf("must be 1..65535, got %d", cfg.Server.Port)))
	}
	if cfg.Log.Level != "" {
		if _, ok := logLevels[cfg.Log.Level]; !ok {
			out = append(out, xgxcause.Validation("log.level",
				fmt.Sprintf("must be one of debug|info|warn|error, got %q", cfg.Log.Level)))
		}
	}
	return out
}

// File lints one file end-to-end.
//
// Propagation per boundary:
//   - Load failures pass through unchanged (policy 1), except the
//     anticipated missing-file case outside strict mode, which recovers
//     into a skipped result (policy 3, with an explicit Ignore).
//   - each violation is wrapped with file context (policy 2) so the
//     rendered chain names the offending file.
func File(path string, strict bool) (*Result, error) {
	cfg, err := Load(path)
	if err != nil {
		if !strict && xgxcause.Has(err, fs.ErrNotExist) {
			xgxcause.Ignore(err, "missing config tolerated outside strict mode")
			return &Result{Path: path, Skipped: true}, nil
		}
		return nil, err
	}

	raw := Validate(cfg)
	violations := make([]*xgxcause.ErrorValue, len(raw))
	for i, v := range raw {
		violations[i] = xgxcause.Wrap(v, xgxcause.KindValidation, "config check failed", "file", path)
	}
	return &Result{Path: path, Violations: violations}, nil
}
