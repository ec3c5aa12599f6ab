package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const configFile = "fluxion-editor.yaml"

// Config is the editor's persisted settings, stored next to the working
// directory as fluxion-editor.yaml.
type Config struct {
	WindowWidth  int    `yaml:"window_width"`
	WindowHeight int    `yaml:"window_height"`
	LastFile     string `yaml:"last_file"`
	// TargetWidth/TargetHeight back the letterbox frame when the open
	// scene's camera declares no viewport of its own.
	TargetWidth  float64 `yaml:"target_width"`
	TargetHeight float64 `yaml:"target_height"`
	// AutosaveSec is the autosave interval for dirty named documents.
	// Zero disables autosave.
	AutosaveSec int `yaml:"autosave_sec"`
}

func DefaultConfig() Config {
	return Config{
		WindowWidth:  1500,
		WindowHeight: 900,
		TargetWidth:  1920,
		TargetHeight: 1080,
		AutosaveSec:  120,
	}
}

func LoadConfig() (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(configFile)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read %s: %w", configFile, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("unmarshal %s: %w", configFile, err)
	}
	if cfg.WindowWidth <= 0 || cfg.WindowHeight <= 0 {
		cfg.WindowWidth = DefaultConfig().WindowWidth
		cfg.WindowHeight = DefaultConfig().WindowHeight
	}
	if cfg.TargetWidth <= 0 || cfg.TargetHeight <= 0 {
		cfg.TargetWidth = DefaultConfig().TargetWidth
		cfg.TargetHeight = DefaultConfig().TargetHeight
	}
	return cfg, nil
}

func (c Config) Save() error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(configFile, data, 0644)
}
