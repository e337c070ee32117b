package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
)

// MustLoad читает конфигурацию из YAML-файла и переменных окружения.
// Паникует при любой ошибке: без конфига сервис стартовать не должен.
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yaml"
	}

	var cfg Config

	if _, err := os.Stat(configPath); err == nil {
		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			panic(fmt.Sprintf("cannot read config %s: %s", configPath, err))
		}
	} else {
		// Файла нет — читаем только окружение (docker/прод сценарий)
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			panic(fmt.Sprintf("cannot read config from env: %s", err))
		}
	}

	cfg.configPath = configPath

	return &cfg
}

// ConfigPath возвращает путь, из которого был прочитан конфиг.
func (c *Config) ConfigPath() string {
	if c.ConfigFilePath != "" && c.ConfigFileName != "" {
		return filepath.Join(c.ConfigFilePath, c.ConfigFileName)
	}
	return c.configPath
}
