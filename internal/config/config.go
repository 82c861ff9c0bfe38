package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

const (
	defaultPlayer1Name   = "Player1"
	defaultPlayer1Symbol = "o"
	defaultPlayer2Name   = "Player2"
	defaultPlayer2Symbol = "×"
)

type Config struct {
	LogLevel  string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info" validate:"oneof=debug info warn error"`
	LogFormat string  `yaml:"log-format" env:"LOG_FORMAT" env-default:"text" validate:"oneof=json text"`
	Screen    Screen  `yaml:"screen"`
	Players   Players `yaml:"players"`
}

type Screen struct {
	Clear  string `yaml:"clear" env:"SCREEN_CLEAR" env-default:"newline" validate:"oneof=newline ansi"`
	Colors bool   `yaml:"colors" env:"SCREEN_COLORS" env-default:"false"`
}

type Players struct {
	First  Player `yaml:"first" env-prefix:"PLAYER1_"`
	Second Player `yaml:"second" env-prefix:"PLAYER2_"`
}

type Player struct {
	Name   string `yaml:"name" env:"NAME" validate:"required"`
	Symbol string `yaml:"symbol" env:"SYMBOL" validate:"required,len=1"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterStructValidation(func(sl validator.StructLevel) {
		players, ok := sl.Current().Interface().(Players)
		if !ok {
			return
		}

		if players.First.Symbol == players.Second.Symbol {
			sl.ReportError(players.Second.Symbol, "Second", "second", "distinct_symbol", "")
		}
	}, Players{})

	return v
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Load reads path if it exists, then environment variables, and validates the result.
func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("could not read config: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("could not read environment: %w", err)
		}
	default:
		return nil, fmt.Errorf("could not stat config: %w", err)
	}

	config.Players.applyDefaults()

	if err = validate.Struct(config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

func (that *Players) applyDefaults() {
	setDefault(&that.First.Name, defaultPlayer1Name)
	setDefault(&that.First.Symbol, defaultPlayer1Symbol)
	setDefault(&that.Second.Name, defaultPlayer2Name)
	setDefault(&that.Second.Symbol, defaultPlayer2Symbol)
}

// Names returns the player names in turn order.
func (that *Players) Names() [2]string {
	return [2]string{that.First.Name, that.Second.Name}
}

// Symbols returns the player symbols in turn order.
func (that *Players) Symbols() [2]string {
	return [2]string{that.First.Symbol, that.Second.Symbol}
}

func setDefault(field *string, value string) {
	if *field == "" {
		*field = value
	}
}
