// Package config предоставляет структуры и функцию для парсинга и загрузки конфига
package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config общая структура для хранения настроек приложения.
type Config struct {
	Env                   string        `yaml:"env" env:"ENV" env-default:"local"`
	SeedPlantID           string        `yaml:"seed_plant_id" env:"SEED_PLANT_ID" env-default:"4"`
	RolloverCheckInterval time.Duration `yaml:"rollover_check_interval" env:"ROLLOVER_CHECK_INTERVAL" env-default:"1h"`
}

// MustLoad загружает конфиг из файла по пути CONFIG_PATH. Если переменная
// не задана, конфиг собирается из переменных окружения и значений по
// умолчанию: приложению не нужны обязательные внешние настройки.
func MustLoad() *Config {
	var cfg Config

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			log.Fatalf("cannot read config from environment: %s", err)
		}
		return &cfg
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("file: %s - does not exist", configPath)
	}
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return &cfg
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"Env: %s\n"+
			"SeedPlantID: %s\n"+
			"RolloverCheckInterval: %s\n",
		c.Env,
		c.SeedPlantID,
		c.RolloverCheckInterval,
	)
}
