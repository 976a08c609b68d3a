package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env-default:"info"`
	Arena    Arena  `yaml:"arena"`
}

type Arena struct {
	Games    int    `yaml:"games" env-default:"100"`
	Opponent string `yaml:"opponent" env-default:"random"`
	Seed     int64  `yaml:"seed" env-default:"1"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}
