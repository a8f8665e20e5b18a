package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"devapi/internal/domain"
)

// fileConfig mirrors the optional YAML config file.
type fileConfig struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
	} `yaml:"server"`

	API struct {
		Name string `yaml:"name"`
	} `yaml:"api"`

	Dataset struct {
		OverridePath string `yaml:"override_path"`
	} `yaml:"dataset"`
}

// Load builds the immutable startup configuration. Precedence, lowest to
// highest: defaults, YAML config file, .env file, process environment,
// positional port argument, -host flag. A bad value at any layer keeps the
// value from the layer below; only an unreadable explicit config file is an
// error.
func Load(configPath, hostFlag string, args []string) (domain.Config, error) {
	cfg := domain.Config{
		APIName: domain.DefaultAPIName,
		Host:    domain.DefaultHost,
		Port:    domain.DefaultPort,
	}

	if configPath != "" {
		fc, err := loadFile(configPath)
		if err != nil {
			return domain.Config{}, err
		}
		if fc.API.Name != "" {
			cfg.APIName = fc.API.Name
		}
		if fc.Server.Host != "" {
			cfg.Host = fc.Server.Host
		}
		if fc.Server.Port != 0 {
			if validPort(fc.Server.Port) {
				cfg.Port = fc.Server.Port
			} else {
				log.Printf("config: ignoring out-of-range port %d in %s", fc.Server.Port, configPath)
			}
		}
		cfg.DatasetPath = fc.Dataset.OverridePath
	}

	// Local development convenience; a missing .env is not an error.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("config: could not load .env: %v", err)
	}

	if name := os.Getenv("API_NAME"); name != "" {
		cfg.APIName = name
	}
	if port := os.Getenv("API_PORT"); port != "" {
		cfg.Port = parsePort(port, cfg.Port)
	}
	if path := os.Getenv("DATASET_PATH"); path != "" {
		cfg.DatasetPath = path
	}
	cfg.DisableNumeric = boolEnv("DISABLE_NUMERIC")
	cfg.DisableRecords = boolEnv("DISABLE_RECORDS")

	if len(args) > 0 {
		cfg.Port = parsePort(args[0], cfg.Port)
	}
	if hostFlag != "" {
		cfg.Host = hostFlag
	}

	return cfg, nil
}

func loadFile(path string) (fileConfig, error) {
	var fc fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return fc, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fc, fmt.Errorf("parse config %s: %w", path, err)
	}
	return fc, nil
}

// parsePort returns fallback for anything that is not a port number,
// matching the documented "bad argument means default" behavior.
func parsePort(s string, fallback int) int {
	p, err := strconv.Atoi(s)
	if err != nil || !validPort(p) {
		log.Printf("config: invalid port %q, using %d", s, fallback)
		return fallback
	}
	return p
}

func validPort(p int) bool {
	return p >= 1 && p <= 65535
}

func boolEnv(key string) bool {
	v := os.Getenv(key)
	if v == "" {
		return false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false
	}
	return b
}
