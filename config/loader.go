package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPaths are tried in order when no path is given.
var DefaultPaths = []string{"cleanup.yml", "config/cleanup.yml"}

// Environment overrides, applied after the YAML file.
const (
	EnvLogLevel    = "CLEANUP_LOG_LEVEL"
	EnvInputDir    = "CLEANUP_INPUT_DIR"
	EnvOutputDir   = "CLEANUP_OUTPUT_DIR"
	EnvParallelism = "CLEANUP_PARALLELISM"
)

// Load reads, defaults and validates the run file at path. An empty path
// searches DefaultPaths.
func Load(path string) (*AppConfig, error) {
	if err := loadEnvFile(); err != nil {
		return nil, err
	}

	data, used, err := readFirst(path)
	if err != nil {
		return nil, err
	}

	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", used, err)
	}
	if err := applyEnvOverrides(&cfg); err != nil {
		return nil, err
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config %s: %w", used, err)
	}
	return &cfg, nil
}

func readFirst(path string) ([]byte, string, error) {
	paths := DefaultPaths
	if path != "" {
		paths = []string{path}
	}
	var err error
	for _, p := range paths {
		var data []byte
		data, err = os.ReadFile(p)
		if err == nil {
			return data, p, nil
		}
	}
	return nil, "", fmt.Errorf("read config: %w", err)
}

// loadEnvFile loads ENV_FILE, or .env when ENV_FILE is unset. A missing file
// is not an error.
func loadEnvFile() error {
	name := os.Getenv("ENV_FILE")
	if name == "" {
		name = ".env"
	}
	if err := godotenv.Load(name); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load env file %s: %w", name, err)
	}
	return nil
}

func applyEnvOverrides(cfg *AppConfig) error {
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv(EnvInputDir); v != "" {
		cfg.InputDir = v
	}
	if v := os.Getenv(EnvOutputDir); v != "" {
		cfg.OutputDir = v
	}
	if v := os.Getenv(EnvParallelism); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvParallelism, err)
		}
		cfg.Parallelism = n
	}
	return nil
}

// SetDefaults fills unset values.
func (c *AppConfig) SetDefaults() {
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.OnMissingField == "" {
		c.OnMissingField = OnMissingFail
	}
	if c.Parallelism == 0 {
		c.Parallelism = 1
	}
	for i := range c.Converters {
		job := &c.Converters[i]
		if job.OnMissingField == "" {
			job.OnMissingField = c.OnMissingField
		}
		for j := range job.Fields {
			if job.Fields[j].Target == "" {
				job.Fields[j].Target = job.Fields[j].Source
			}
		}
	}
}

// Validate checks struct tags plus the rules tags cannot express.
func (c *AppConfig) Validate() error {
	v := validator.New()
	if err := v.Struct(c); err != nil {
		return err
	}
	for _, job := range c.Converters {
		switch {
		case job.Kind == KindCustom && len(job.Fields) == 0:
			return fmt.Errorf("converter %q: custom converters need fields", job.Name)
		case job.Kind != KindCustom && len(job.Fields) > 0:
			return fmt.Errorf("converter %q: fields are only allowed for kind %q", job.Name, KindCustom)
		case job.Kind != KindCustom && job.Identifier != "":
			return fmt.Errorf("converter %q: identifier is only allowed for kind %q", job.Name, KindCustom)
		}
	}

	// No two jobs may write the same file.
	writers := make(map[string]string, len(c.Converters))
	for _, job := range c.Converters {
		dst := filepath.Clean(c.DestinationPath(job))
		if other, ok := writers[dst]; ok {
			return fmt.Errorf("converters %q and %q write the same destination %s", other, job.Name, dst)
		}
		writers[dst] = job.Name
	}
	return nil
}

// SourcePath resolves job.Source against InputDir.
func (c *AppConfig) SourcePath(job ConverterJob) string {
	return resolve(c.InputDir, job.Source)
}

// DestinationPath resolves job.Destination against OutputDir.
func (c *AppConfig) DestinationPath(job ConverterJob) string {
	return resolve(c.OutputDir, job.Destination)
}

// Find returns the job named name.
func (c *AppConfig) Find(name string) (ConverterJob, bool) {
	for _, job := range c.Converters {
		if job.Name == name {
			return job, true
		}
	}
	return ConverterJob{}, false
}

func resolve(dir, p string) string {
	if dir == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}
