package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort string  `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	Redis    Redis   `yaml:"redis"`
	Match    Match   `yaml:"match"`
	Dataset  Dataset `yaml:"dataset"`
	Model    Model   `yaml:"model"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

type Match struct {
	Rounds    int           `yaml:"rounds" env:"MATCH_ROUNDS" env-default:"100"`
	Pace      time.Duration `yaml:"pace" env:"MATCH_PACE" env-default:"0s"`
	Opponents []string      `yaml:"opponents" env:"MATCH_OPPONENTS" env-default:"random,fixed,neural"`
	Watch     bool          `yaml:"watch" env:"MATCH_WATCH" env-default:"false"`
}

type Dataset struct {
	Size int    `yaml:"size" env:"DATASET_SIZE" env-default:"2000"`
	Path string `yaml:"path" env:"DATASET_PATH" env-default:""`
}

type Model struct {
	Hidden       []int   `yaml:"hidden" env:"MODEL_HIDDEN" env-default:"27"`
	Epochs       int     `yaml:"epochs" env:"MODEL_EPOCHS" env-default:"50"`
	LearningRate float64 `yaml:"learning-rate" env:"MODEL_LEARNING_RATE" env-default:"0.05"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	if that.Host == "" || that.Port == "" {
		return ""
	}

	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
