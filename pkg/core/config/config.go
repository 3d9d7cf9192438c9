package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/sparrow/foundation/core/error"
	"github.com/msto63/sparrow/foundation/core/i18n"
	mdwlog "github.com/msto63/sparrow/foundation/core/log"
	"github.com/msto63/sparrow/foundation/utils/regexx"
	"github.com/msto63/sparrow/foundation/utils/slicex"
)

// EnvConfig names the environment variable holding an explicit config path
const EnvConfig = "SPARROW_CONFIG"

// Locale context modes
const (
	ContextDevice = "device"
	ContextGMT    = "gmt"
)

var contexts = []string{ContextDevice, ContextGMT}

// Config holds the complete application configuration
type Config struct {
	General    GeneralConfig    `toml:"general" yaml:"general"`
	Locale     LocaleConfig     `toml:"locale" yaml:"locale"`
	Regex      RegexConfig      `toml:"regex" yaml:"regex"`
	Resources  ResourcesConfig  `toml:"resources" yaml:"resources"`
	Playground PlaygroundConfig `toml:"playground" yaml:"playground"`

	// path is the file the configuration was read from, if any
	path string
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
}

// LocaleConfig selects the conversion context
type LocaleConfig struct {
	Context    string `toml:"context" yaml:"context"`
	Identifier string `toml:"identifier" yaml:"identifier"`
	Timezone   string `toml:"timezone" yaml:"timezone"`
}

// RegexConfig holds pattern engine settings
type RegexConfig struct {
	Engine       string   `toml:"engine" yaml:"engine"`
	MatchTimeout Duration `toml:"match_timeout" yaml:"match_timeout"`
	// CacheSize bounds the compiled pattern cache; 0 disables it.
	CacheSize *int `toml:"cache_size" yaml:"cache_size"`
}

// ResourcesConfig locates the resource bundle
type ResourcesConfig struct {
	Dir string `toml:"dir" yaml:"dir"`
}

// PlaygroundConfig holds terminal playground settings
type PlaygroundConfig struct {
	InputLimit int `toml:"input_limit" yaml:"input_limit"`
}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// UnmarshalYAML parses a duration scalar
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	return d.UnmarshalText([]byte(value.Value))
}

// Default returns a configuration with every default applied
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file, chosen by extension
func Load(path string) (*Config, error) {
	// Expand environment variables in path
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		code := mdwerror.CodeConfigError
		if os.IsNotExist(err) {
			code = mdwerror.CodeNotFound
		}
		return nil, mdwerror.Wrap(err, "config file not readable").
			WithCode(code).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = decodeTOML(data, &cfg)
	case ".yaml", ".yml":
		err = decodeYAML(data, &cfg)
	default:
		return nil, mdwerror.New("unsupported config file type").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Load").
			WithDetail("path", path).
			WithDetail("extension", ext)
	}
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	// Apply defaults
	cfg.applyDefaults()

	// Expand environment variables in path-like fields
	cfg.expandEnvVars()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.path = path
	return &cfg, nil
}

func decodeTOML(data []byte, cfg *Config) error {
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		sort.Strings(keys)
		return mdwerror.New("unknown config keys").
			WithCode(mdwerror.CodeInvalidConfig).
			WithDetail("keys", strings.Join(keys, ", "))
	}
	return nil
}

func decodeYAML(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Discover returns the first existing config file: $SPARROW_CONFIG, then the
// default locations. The second result is false when none exists.
func Discover() (string, bool) {
	if path := os.Getenv(EnvConfig); path != "" {
		return path, true
	}

	// Try default locations
	defaultPaths := []string{
		"./configs/sparrow.toml",
		"./configs/sparrow.yaml",
		"./configs/sparrow.yml",
		"./sparrow.toml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		defaultPaths = append(defaultPaths, filepath.Join(home, ".config", "sparrow", "sparrow.toml"))
	}
	for _, p := range defaultPaths {
		if _, err := os.Stat(p); err == nil {
			return p, true
		}
	}
	return "", false
}

// LoadFromEnv loads the discovered configuration, or the defaults when no
// file exists. An explicit $SPARROW_CONFIG that cannot be read is an error.
func LoadFromEnv() (*Config, error) {
	path, ok := Discover()
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

// Path returns the file the configuration came from, or "" for defaults
func (c *Config) Path() string {
	return c.path
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	if c.General.LogLevel == "" {
		c.General.LogLevel = "info"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}

	// Locale
	if c.Locale.Context == "" {
		c.Locale.Context = ContextDevice
	}

	// Regex
	if c.Regex.Engine == "" {
		c.Regex.Engine = "icu"
	}
	if c.Regex.MatchTimeout.Duration == 0 {
		c.Regex.MatchTimeout.Duration = 2 * time.Second
	}
	if c.Regex.CacheSize == nil {
		size := 128
		c.Regex.CacheSize = &size
	}

	// Resources
	if c.Resources.Dir == "" {
		c.Resources.Dir = "./Resources"
	}

	// Playground
	if c.Playground.InputLimit == 0 {
		c.Playground.InputLimit = 256
	}
}

// expandEnvVars expands environment variables in configuration values
func (c *Config) expandEnvVars() {
	c.Resources.Dir = os.ExpandEnv(c.Resources.Dir)
	c.Locale.Identifier = os.ExpandEnv(c.Locale.Identifier)
	c.Locale.Timezone = os.ExpandEnv(c.Locale.Timezone)
}

// Validate checks every setting and returns the first problem as a coded error
func (c *Config) Validate() error {
	invalid := func(key, value, msg string) error {
		return mdwerror.New(msg).
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.Validate").
			WithDetail("key", key).
			WithDetail("value", value)
	}

	if _, err := mdwlog.ParseLevel(c.General.LogLevel); err != nil {
		return invalid("general.log_level", c.General.LogLevel, "unknown log level")
	}
	if _, err := mdwlog.ParseFormat(c.General.LogFormat); err != nil {
		return invalid("general.log_format", c.General.LogFormat, "unknown log format")
	}

	if !slicex.Contains(contexts, strings.ToLower(c.Locale.Context)) {
		return invalid("locale.context", c.Locale.Context, "locale context must be device or gmt")
	}
	if c.Locale.Identifier != "" {
		if _, _, err := i18n.ParseLocale(c.Locale.Identifier); err != nil {
			return invalid("locale.identifier", c.Locale.Identifier, "unknown locale")
		}
	}
	if _, err := i18n.LoadLocation(c.Locale.Timezone); err != nil {
		return invalid("locale.timezone", c.Locale.Timezone, "unknown time zone")
	}

	if _, err := regexx.EngineByName(c.Regex.Engine, regexx.ICU{}); err != nil {
		return invalid("regex.engine", c.Regex.Engine, "regex engine must be icu or re2")
	}
	if c.Regex.MatchTimeout.Duration < 0 {
		return invalid("regex.match_timeout", c.Regex.MatchTimeout.String(), "match timeout must not be negative")
	}

	if c.Regex.CacheSize != nil && *c.Regex.CacheSize < 0 {
		return invalid("regex.cache_size", strconv.Itoa(*c.Regex.CacheSize), "cache size must not be negative")
	}

	if c.Playground.InputLimit < 0 {
		return invalid("playground.input_limit", strconv.Itoa(c.Playground.InputLimit), "input limit must not be negative")
	}
	return nil
}

// Context builds the conversion context the configuration selects
func (c *Config) Context() (i18n.Context, error) {
	if strings.EqualFold(c.Locale.Context, ContextGMT) {
		return i18n.GMT(), nil
	}
	return i18n.NewContext(c.Locale.Identifier, c.Locale.Timezone)
}

// Engine returns the configured regex engine
func (c *Config) Engine() (regexx.Engine, error) {
	return regexx.EngineByName(c.Regex.Engine, regexx.ICU{MatchTimeout: c.Regex.MatchTimeout.Duration})
}
