package internal

import (
	"fmt"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	LogLevel       string `env:"LOG_LEVEL,default=INFO"`
	LevelMin       int    `env:"LEVEL_MIN,default=0" validate:"gte=0"`
	LevelMax       int    `env:"LEVEL_MAX,default=3" validate:"gtfield=LevelMin"`
	AskerName      string `env:"ASKER_NAME,default=Alice" validate:"required"`
	AskerLevel     int    `env:"ASKER_LEVEL,default=3"`
	ResponderName  string `env:"RESPONDER_NAME,default=Bob" validate:"required"`
	ResponderLevel int    `env:"RESPONDER_LEVEL,default=1"`
	Rounds         int    `env:"ROUNDS,default=5" validate:"gte=1"`
	Seed           *int   `env:"SEED"`
	Colours        bool   `env:"COLOURS,default=true"`
}

var validate = validator.New()

// LoadConfig reads an optional .env file, then the environment.
func LoadConfig(filenames ...string) (Config, error) {
	_ = godotenv.Load(filenames...)
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	if err := validate.Struct(config); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return config, nil
}
