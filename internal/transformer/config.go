package transformer

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/resume-scorer/internal/parsing"
)

// Config sizes the encoder. Dimensions must be divisible by Heads.
type Config struct {
	Dimensions int `json:"dimensions" yaml:"dimensions" validate:"required,min=2"`
	Heads      int `json:"heads" yaml:"heads" validate:"required,min=1"`
	Layers     int `json:"layers" yaml:"layers" validate:"min=0,max=12"`
	HiddenDim  int `json:"hidden_dim" yaml:"hidden_dim" validate:"required,min=1"`
	MaxTokens  int `json:"max_tokens" yaml:"max_tokens" validate:"required,min=1,max=128"`
}

// DefaultConfig is the 64-dimension, 4-head, 2-layer encoder used for match
// scoring.
func DefaultConfig() Config {
	return Config{
		Dimensions: 64,
		Heads:      4,
		Layers:     2,
		HiddenDim:  64,
		MaxTokens:  parsing.MaxEncoderTokens,
	}
}

// AttentionConfig is DefaultConfig with a single layer, used to expose
// token-to-token attention weights.
func AttentionConfig() Config {
	cfg := DefaultConfig()
	cfg.Layers = 1
	return cfg
}

// ConfigError reports an invalid encoder configuration.
type ConfigError struct {
	Message string
	Cause   error
}

func (e *ConfigError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid encoder config: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid encoder config: %s", e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Validate checks field ranges and that heads evenly split the dimensions.
func (c Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return &ConfigError{Message: "field constraint failed", Cause: err}
	}
	if c.Dimensions%c.Heads != 0 {
		return &ConfigError{Message: fmt.Sprintf("dimensions %d not divisible by heads %d", c.Dimensions, c.Heads)}
	}
	return nil
}
