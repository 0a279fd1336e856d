// Package config loads the application configuration from config.toml next
// to the executable, with SIMPILOT_* environment overrides for development
// and CI.
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// AppConfig is the full application configuration.
type AppConfig struct {
	Server    ServerConfig    `toml:"server"`
	Data      DataConfig      `toml:"data"`
	Ingest    IngestConfig    `toml:"ingest"`
	SimBridge SimBridgeConfig `toml:"simbridge"`
}

type ServerConfig struct {
	Port    int  `toml:"port"`
	DevMode bool `toml:"dev_mode"`
}

type DataConfig struct {
	DataDir string `toml:"data_dir"`
}

// IngestConfig tunes sheet recognition and column matching.
type IngestConfig struct {
	HeaderScanRows int     `toml:"header_scan_rows"`
	MinConfidence  float64 `toml:"min_confidence"`
}

// SimBridgeConfig points at the optional process-simulation bridge. An
// empty base URL disables pushes.
type SimBridgeConfig struct {
	BaseURL string `toml:"base_url"`
}

// DefaultConfig returns the configuration used when no config.toml exists.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:    8720,
			DevMode: false,
		},
		Data: DataConfig{
			DataDir: "data",
		},
		Ingest: IngestConfig{
			HeaderScanRows: 10,
			MinConfidence:  0.4,
		},
		SimBridge: SimBridgeConfig{
			BaseURL: "",
		},
	}
}

// GetExeDir returns the directory the running executable lives in. Config
// and data sit next to the binary so the whole install is portable.
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// LoadConfig reads config.toml from the executable directory. A missing
// file yields defaults; a malformed one is an error.
func LoadConfig() (*AppConfig, error) {
	config := DefaultConfig()

	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}
	configPath := filepath.Join(exeDir, "config.toml")

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			applyEnvOverrides(config)
			return config, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, config); err != nil {
		return nil, err
	}
	applyEnvOverrides(config)
	return config, nil
}

func applyEnvOverrides(config *AppConfig) {
	if v := os.Getenv("SIMPILOT_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			config.Server.Port = port
		}
	}
	if v := os.Getenv("SIMPILOT_DEV_MODE"); v != "" {
		config.Server.DevMode = v == "1" || v == "true"
	}
	if v := os.Getenv("SIMPILOT_DATA_DIR"); v != "" {
		config.Data.DataDir = v
	}
	if v := os.Getenv("SIMPILOT_SIMBRIDGE_URL"); v != "" {
		config.SimBridge.BaseURL = v
	}
}

// SaveConfig writes the configuration back to config.toml.
func SaveConfig(config *AppConfig) error {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}
	data, err := toml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(exeDir, "config.toml"), data, 0644)
}

// EnsureDataDir creates the data directory tree next to the executable and
// returns its absolute path.
func EnsureDataDir(config *AppConfig) (string, error) {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}
	dataDir := config.Data.DataDir
	if !filepath.IsAbs(dataDir) {
		dataDir = filepath.Join(exeDir, dataDir)
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}
	for _, subdir := range []string{"uploads", "exports"} {
		if err := os.MkdirAll(filepath.Join(dataDir, subdir), 0755); err != nil {
			return "", err
		}
	}
	return dataDir, nil
}
