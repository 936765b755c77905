package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/technophile-04/create-eth-codemod/core/logger"
	"gopkg.in/yaml.v3"
)

const FileName = "codemod.yaml"

type Config struct {
	Extensions []string `yaml:"extensions"`
	IgnoreDirs []string `yaml:"ignore_dirs"`
	Exclude    []string `yaml:"exclude"`
	Workers    int      `yaml:"workers"`
	Verbose    bool     `yaml:"verbose"`
	Cache      Cache    `yaml:"cache"`
}

type Cache struct {
	MaxEntries int `yaml:"max_entries"`
}

func Default() *Config {
	return &Config{
		Extensions: []string{".ts", ".tsx", ".js", ".jsx", ".mjs", ".cjs", ".md", ".mdx"},
		IgnoreDirs: []string{
			"node_modules", ".git", ".next", "dist", "build", "out", "coverage",
			".turbo", ".vercel", "cache", "artifacts", "typechain-types",
		},
		Workers: runtime.NumCPU(),
		Cache: Cache{
			MaxEntries: 4096,
		},
	}
}

// Load reads codemod.yaml from root (or the explicit path when set), falling
// back to Default. Missing fields keep their defaults; CODEMOD_* variables
// from the environment or a .env file in root override the file.
func Load(root, path string) (*Config, error) {
	if err := godotenv.Load(filepath.Join(root, ".env")); err != nil && !os.IsNotExist(err) {
		logger.Debug("Ignoring unreadable .env: %v", err)
	}

	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = filepath.Join(root, FileName)
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse yaml %s: %w", path, err)
		}
		logger.Debug("Config file found: %s", path)
	case os.IsNotExist(err) && !explicit:
		logger.Debug("No config file found, using default config")
	default:
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	cfg.normalize()
	logger.Debug("Config: %+v", *cfg)
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := strings.TrimSpace(os.Getenv("CODEMOD_WORKERS")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid CODEMOD_WORKERS %q: %w", v, err)
		}
		c.Workers = n
	}
	if v := strings.TrimSpace(os.Getenv("CODEMOD_VERBOSE")); v != "" {
		verbose, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid CODEMOD_VERBOSE %q: %w", v, err)
		}
		c.Verbose = verbose
	}
	return nil
}

func (c *Config) normalize() {
	if c.Workers < 1 {
		c.Workers = 1
	}
	if c.Cache.MaxEntries < 1 {
		c.Cache.MaxEntries = Default().Cache.MaxEntries
	}
	for i, ext := range c.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext != "" && !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		c.Extensions[i] = ext
	}
}
