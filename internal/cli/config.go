package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/shelter/internal/paths"
	"github.com/mesh-intelligence/shelter/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// Config keys.
	cfgKeyBackend  = "backend"
	cfgKeyDataDir  = "data_dir"
	cfgKeyDataFile = "data_file"
	cfgKeyAdopter  = "adopter"
	cfgKeyLogLevel = "log_level"

	envPrefix = "SHELTER"
)

// configFile holds the structure written to config.yaml on first run.
type configFile struct {
	Backend  string `yaml:"backend"`
	DataDir  string `yaml:"data_dir,omitempty"`
	DataFile string `yaml:"data_file,omitempty"`
	LogLevel string `yaml:"log_level"`
}

// loadConfig reads config.yaml from configDir using Viper. It creates the
// directory and a default config.yaml on first run. A missing or deleted
// config.yaml is not an error.
//
// SHELTER_BACKEND, SHELTER_DATA_FILE, SHELTER_ADOPTER and SHELTER_LOG_LEVEL
// override the file. data_dir is left to paths.ResolveDataDir, which applies
// its own env precedence.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return nil, fmt.Errorf("create config dir: %w", err)
	}
	if err := writeConfigIfMissing(filepath.Join(configDir, configFileExt)); err != nil {
		return nil, fmt.Errorf("write default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyBackend, types.DefaultBackend)
	v.SetDefault(cfgKeyLogLevel, types.DefaultLogLevel)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	v.SetEnvPrefix(envPrefix)
	for _, key := range []string{cfgKeyBackend, cfgKeyDataFile, cfgKeyAdopter, cfgKeyLogLevel} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// writeConfigIfMissing creates config.yaml with default values if the file
// does not exist. If it already exists, the function returns nil (idempotent).
func writeConfigIfMissing(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat config file: %w", err)
	}

	cfg := configFile{
		Backend:  types.DefaultBackend,
		LogLevel: types.DefaultLogLevel,
	}
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	header := []byte("# Shelter configuration\n# backend: text | sqlite\n")
	return os.WriteFile(path, append(header, data...), 0o644)
}

// resolveConfig loads config.yaml and applies flag and env precedence to
// produce the effective Config.
func resolveConfig() (types.Config, error) {
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return types.Config{}, fmt.Errorf("resolve config dir: %w", err)
	}

	v, err := loadConfig(configDir)
	if err != nil {
		return types.Config{}, err
	}

	dataDir, err := paths.ResolveDataDir(flags.dataDir, v.GetString(cfgKeyDataDir))
	if err != nil {
		return types.Config{}, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		Backend:  v.GetString(cfgKeyBackend),
		DataDir:  dataDir,
		DataFile: v.GetString(cfgKeyDataFile),
		Adopter:  v.GetString(cfgKeyAdopter),
		LogLevel: v.GetString(cfgKeyLogLevel),
	}
	if flags.logLevel != "" {
		cfg.LogLevel = flags.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
