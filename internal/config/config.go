package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Version is the threadlens release version.
const Version = "0.1.0"

// Config holds all threadlens configuration.
type Config struct {
	Source   SourceConfig
	Artifact ArtifactConfig
	Output   OutputConfig
	LogLevel string
}

// SourceConfig holds dataset source settings.
type SourceConfig struct {
	Provider string // "file" or "http"
	Path     string
	Endpoint string
	Timeout  time.Duration
}

// ArtifactConfig holds locations of the optional precomputed artifacts.
// Each location is a local path or an http(s) URL; empty means not configured.
type ArtifactConfig struct {
	Topics      string
	SemanticMap string
	Events      string
	Network     string
	Timeout     time.Duration
}

// OutputConfig holds export destination settings.
type OutputConfig struct {
	Format  string // "stdout" or "file"
	Path    string // file output only
	Detail  string // "minimal" or "full"
	Pretty  bool
	MaxSize int64 // file rotation threshold in bytes, 0 disables
}

// Load reads configuration from environment variables with sensible
// defaults. When THREADLENS_CONFIG names a YAML file, its values apply
// first and individual env vars override them.
func Load() (Config, error) {
	cfg := defaults()
	if path := os.Getenv("THREADLENS_CONFIG"); path != "" {
		if err := cfg.applyFile(path); err != nil {
			return cfg, err
		}
	}
	cfg.applyEnv()
	return cfg, nil
}

func defaults() Config {
	return Config{
		Source: SourceConfig{
			Provider: "file",
			Timeout:  30 * time.Second,
		},
		Artifact: ArtifactConfig{
			Timeout: 30 * time.Second,
		},
		Output: OutputConfig{
			Format: "stdout",
			Detail: "full",
		},
		LogLevel: "info",
	}
}

// fileConfig mirrors Config for the YAML overlay. Zero values mean
// "not set in the file" and leave the current value alone.
type fileConfig struct {
	Source struct {
		Provider string `yaml:"provider"`
		Path     string `yaml:"path"`
		Endpoint string `yaml:"endpoint"`
		Timeout  string `yaml:"timeout"`
	} `yaml:"source"`
	Artifacts struct {
		Topics      string `yaml:"topics"`
		SemanticMap string `yaml:"semantic_map"`
		Events      string `yaml:"events"`
		Network     string `yaml:"network"`
		Timeout     string `yaml:"timeout"`
	} `yaml:"artifacts"`
	Output struct {
		Format  string `yaml:"format"`
		Path    string `yaml:"path"`
		Detail  string `yaml:"detail"`
		Pretty  *bool  `yaml:"pretty"`
		MaxSize int64  `yaml:"max_size"`
	} `yaml:"output"`
	LogLevel string `yaml:"log_level"`
}

func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config file: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("config file %s: %w", path, err)
	}

	setString(&c.Source.Provider, fc.Source.Provider)
	setString(&c.Source.Path, fc.Source.Path)
	setString(&c.Source.Endpoint, fc.Source.Endpoint)
	if err := setDuration(&c.Source.Timeout, fc.Source.Timeout); err != nil {
		return fmt.Errorf("config file %s: source.timeout: %w", path, err)
	}

	setString(&c.Artifact.Topics, fc.Artifacts.Topics)
	setString(&c.Artifact.SemanticMap, fc.Artifacts.SemanticMap)
	setString(&c.Artifact.Events, fc.Artifacts.Events)
	setString(&c.Artifact.Network, fc.Artifacts.Network)
	if err := setDuration(&c.Artifact.Timeout, fc.Artifacts.Timeout); err != nil {
		return fmt.Errorf("config file %s: artifacts.timeout: %w", path, err)
	}

	setString(&c.Output.Format, fc.Output.Format)
	setString(&c.Output.Path, fc.Output.Path)
	setString(&c.Output.Detail, fc.Output.Detail)
	if fc.Output.Pretty != nil {
		c.Output.Pretty = *fc.Output.Pretty
	}
	if fc.Output.MaxSize != 0 {
		c.Output.MaxSize = fc.Output.MaxSize
	}
	setString(&c.LogLevel, fc.LogLevel)
	return nil
}

func (c *Config) applyEnv() {
	c.Source.Provider = getenv("THREADLENS_SOURCE", c.Source.Provider)
	c.Source.Path = getenv("THREADLENS_DATASET", c.Source.Path)
	c.Source.Endpoint = getenv("THREADLENS_ENDPOINT", c.Source.Endpoint)
	c.Source.Timeout = getenvDuration("THREADLENS_FETCH_TIMEOUT", c.Source.Timeout)

	c.Artifact.Topics = getenv("THREADLENS_TOPICS", c.Artifact.Topics)
	c.Artifact.SemanticMap = getenv("THREADLENS_SEMANTIC_MAP", c.Artifact.SemanticMap)
	c.Artifact.Events = getenv("THREADLENS_EVENTS", c.Artifact.Events)
	c.Artifact.Network = getenv("THREADLENS_NETWORK", c.Artifact.Network)
	c.Artifact.Timeout = getenvDuration("THREADLENS_ARTIFACT_TIMEOUT", c.Artifact.Timeout)

	c.Output.Format = getenv("THREADLENS_OUTPUT", c.Output.Format)
	c.Output.Path = getenv("THREADLENS_OUTPUT_PATH", c.Output.Path)
	c.Output.Detail = getenv("THREADLENS_OUTPUT_DETAIL", c.Output.Detail)
	c.Output.Pretty = getenvBool("THREADLENS_OUTPUT_PRETTY", c.Output.Pretty)
	c.Output.MaxSize = getenvInt64("THREADLENS_OUTPUT_MAX_SIZE", c.Output.MaxSize)

	c.LogLevel = getenv("THREADLENS_LOG_LEVEL", c.LogLevel)
}

// Validate checks the configuration, collecting every problem found.
func (c Config) Validate() error {
	var errs []error

	switch c.Source.Provider {
	case "file":
		if c.Source.Path == "" {
			errs = append(errs, errors.New("file source requires THREADLENS_DATASET"))
		}
	case "http":
		if c.Source.Endpoint == "" {
			errs = append(errs, errors.New("http source requires THREADLENS_ENDPOINT"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown source provider %q", c.Source.Provider))
	}
	if c.Source.Timeout < 0 {
		errs = append(errs, errors.New("fetch timeout must not be negative"))
	}

	switch c.Output.Format {
	case "stdout":
	case "file":
		if c.Output.Path == "" {
			errs = append(errs, errors.New("file output requires THREADLENS_OUTPUT_PATH"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown output format %q", c.Output.Format))
	}
	switch c.Output.Detail {
	case "minimal", "full", "":
	default:
		errs = append(errs, fmt.Errorf("unknown output detail %q", c.Output.Detail))
	}
	if c.Output.MaxSize < 0 {
		errs = append(errs, errors.New("output max size must not be negative"))
	}

	return errors.Join(errs...)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, v string) error {
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return err
	}
	*dst = d
	return nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func getenvInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
