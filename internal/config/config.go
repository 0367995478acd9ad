package config

import (
	"fmt"
	"strings"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	SourceFile  = "file"
	SourceHTTP  = "http"
	SourceMySQL = "mysql"

	OutputText = "text"
	OutputHTML = "html"
)

// DefaultSupportedLanguages are the languages offered by the language pickers.
var DefaultSupportedLanguages = []string{"de", "uk", "ar", "tr", "en", "vi", "es", "bg"}

type Config struct {
	Content   ContentConfig   `mapstructure:"content"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Session   SessionConfig   `mapstructure:"session"`
	UI        UIConfig        `mapstructure:"ui"`
	Templates TemplatesConfig `mapstructure:"templates"`
	Outputs   OutputsConfig   `mapstructure:"outputs"`
}

type ContentConfig struct {
	Source     string        `mapstructure:"source" validate:"omitempty,oneof=file http mysql"`
	Location   string        `mapstructure:"location" validate:"required_unless=Source mysql"`
	Collection string        `mapstructure:"collection" validate:"required"`
	Format     string        `mapstructure:"format" validate:"omitempty,oneof=json yaml"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

type DatabaseConfig struct {
	Host            string            `mapstructure:"host"`
	Port            int               `mapstructure:"port"`
	Database        string            `mapstructure:"database"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime_seconds"`
}

type SessionConfig struct {
	CardsPerSection    int           `mapstructure:"cards_per_section" validate:"gt=0"`
	SourceLanguage     string        `mapstructure:"source_language" validate:"required,nefield=TargetLanguage"`
	TargetLanguage     string        `mapstructure:"target_language" validate:"required"`
	SupportedLanguages []string      `mapstructure:"supported_languages" validate:"min=2,unique,dive,required"`
	TransitionDelay    time.Duration `mapstructure:"transition_delay"`
}

type UIConfig struct {
	Language     string            `mapstructure:"language" validate:"required,oneof=de uk en"`
	Output       string            `mapstructure:"output" validate:"required,oneof=text html"`
	SectionNames map[string]string `mapstructure:"section_names"`
}

type TemplatesConfig struct {
	DeckTemplate string `mapstructure:"deck_template" validate:"omitempty,file"`
}

type OutputsConfig struct {
	DeckDirectory string `mapstructure:"deck_directory"`
}

// UsesDatabase reports whether cards are read from MySQL instead of a document.
func (c ContentConfig) UsesDatabase() bool {
	return c.Source == SourceMySQL
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/phrasecards")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("content.location", "data.json")
	v.SetDefault("content.collection", "SprechenTeil3")
	v.SetDefault("content.timeout", 10*time.Second)
	v.SetDefault("database.host", "127.0.0.1")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "phrasecards")
	v.SetDefault("database.username", "phrasecards")
	v.SetDefault("session.cards_per_section", 5)
	v.SetDefault("session.source_language", "de")
	v.SetDefault("session.target_language", "uk")
	v.SetDefault("session.supported_languages", DefaultSupportedLanguages)
	v.SetDefault("session.transition_delay", 300*time.Millisecond)
	v.SetDefault("ui.language", "de")
	v.SetDefault("ui.output", OutputText)
	// Template is optional - if not specified, will use embedded fallback template
	v.SetDefault("templates.deck_template", "")
	v.SetDefault("outputs.deck_directory", "outputs/decks")

	// Bind database password to environment variable only
	if err := v.BindEnv("database.password", "PHRASECARDS_DATABASE_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind PHRASECARDS_DATABASE_PASSWORD environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.Validate(cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks cfg after command-line overrides have been applied.
func (loader *ConfigLoader) Validate(cfg Config) error {
	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return fmt.Errorf("validator.Struct() > %w", err)
		}
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}
	return nil
}

// Load reads the configuration with a fresh loader.
func Load(configFile string) (*Config, error) {
	loader, err := NewConfigLoader(configFile)
	if err != nil {
		return nil, err
	}
	return loader.Load()
}
