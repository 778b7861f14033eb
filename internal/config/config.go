package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/avstrong/confirmation/internal/render"
)

const EnvPrefix = "CONFIRMATION"

var ErrInvalid = errors.New("invalid config")

type Config struct {
	Env    string       `mapstructure:"env"    validate:"required,oneof=development production test"`
	Log    LogConfig    `mapstructure:"log"`
	Server ServerConfig `mapstructure:"server"`
	Render RenderConfig `mapstructure:"render"`
	Hotel  HotelConfig  `mapstructure:"hotel"`
}

type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}

type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              string        `mapstructure:"port"                validate:"required,numeric"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout" validate:"gt=0"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout"    validate:"gt=0"`
	LivenessEndpoint  string        `mapstructure:"liveness_endpoint"   validate:"required,startswith=/"`
}

type RenderConfig struct {
	// Style is used when a request does not ask for one.
	Style        string   `mapstructure:"style"          validate:"required"`
	Styles       []string `mapstructure:"styles"         validate:"required,min=1,dive,required"`
	FontDir      string   `mapstructure:"font_dir"`
	UTF8Font     string   `mapstructure:"utf8_font"`
	UTF8BoldFont string   `mapstructure:"utf8_bold_font"`
	Compress     bool     `mapstructure:"compress"`
}

type HotelConfig struct {
	Name             string   `mapstructure:"name"              validate:"required"`
	Tagline          string   `mapstructure:"tagline"`
	Address          string   `mapstructure:"address"`
	Coordinates      string   `mapstructure:"coordinates"`
	Email            string   `mapstructure:"email"             validate:"omitempty,email"`
	Phones           []string `mapstructure:"phones"`
	Website          string   `mapstructure:"website"`
	TermsURL         string   `mapstructure:"terms_url"`
	BankName         string   `mapstructure:"bank_name"`
	IBAN             string   `mapstructure:"iban"              validate:"omitempty,alphanum"`
	BIC              string   `mapstructure:"bic"               validate:"omitempty,alphanum"`
	AccountHolder    string   `mapstructure:"account_holder"`
	CancellationDays int      `mapstructure:"cancellation_days" validate:"gte=0"`
	ManagerName      string   `mapstructure:"manager_name"`
	ManagerTitle     string   `mapstructure:"manager_title"`
	Currency         string   `mapstructure:"currency"`
	CheckInHours     string   `mapstructure:"check_in_hours"`
	CheckOutHours    string   `mapstructure:"check_out_hours"`
	ParkingNote      string   `mapstructure:"parking_note"`
}

func (h HotelConfig) Profile() render.Profile {
	return render.Profile{
		HotelName:        h.Name,
		Tagline:          h.Tagline,
		Address:          h.Address,
		Coordinates:      h.Coordinates,
		Email:            h.Email,
		Phones:           append([]string(nil), h.Phones...),
		Website:          h.Website,
		TermsURL:         h.TermsURL,
		BankName:         h.BankName,
		IBAN:             h.IBAN,
		BIC:              h.BIC,
		AccountHolder:    h.AccountHolder,
		CancellationDays: h.CancellationDays,
		ManagerName:      h.ManagerName,
		ManagerTitle:     h.ManagerTitle,
		Currency:         h.Currency,
		CheckInHours:     h.CheckInHours,
		CheckOutHours:    h.CheckOutHours,
		ParkingNote:      h.ParkingNote,
	}
}

//nolint:gomnd
func setDefaults(v *viper.Viper) {
	p := render.DefaultProfile()

	v.SetDefault("env", "development")
	v.SetDefault("log.level", "info")

	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", "8092")
	v.SetDefault("server.read_header_timeout", 20*time.Second)
	v.SetDefault("server.shutdown_timeout", 4*time.Second)
	v.SetDefault("server.liveness_endpoint", "/liveness")

	v.SetDefault("render.style", render.DefaultStyle().Name)
	v.SetDefault("render.styles", render.StyleNames())
	v.SetDefault("render.font_dir", "")
	v.SetDefault("render.utf8_font", "")
	v.SetDefault("render.utf8_bold_font", "")
	v.SetDefault("render.compress", true)

	v.SetDefault("hotel.name", p.HotelName)
	v.SetDefault("hotel.tagline", p.Tagline)
	v.SetDefault("hotel.address", p.Address)
	v.SetDefault("hotel.coordinates", p.Coordinates)
	v.SetDefault("hotel.email", p.Email)
	v.SetDefault("hotel.phones", p.Phones)
	v.SetDefault("hotel.website", p.Website)
	v.SetDefault("hotel.terms_url", p.TermsURL)
	v.SetDefault("hotel.bank_name", p.BankName)
	v.SetDefault("hotel.iban", p.IBAN)
	v.SetDefault("hotel.bic", p.BIC)
	v.SetDefault("hotel.account_holder", p.AccountHolder)
	v.SetDefault("hotel.cancellation_days", p.CancellationDays)
	v.SetDefault("hotel.manager_name", p.ManagerName)
	v.SetDefault("hotel.manager_title", p.ManagerTitle)
	v.SetDefault("hotel.currency", p.Currency)
	v.SetDefault("hotel.check_in_hours", p.CheckInHours)
	v.SetDefault("hotel.check_out_hours", p.CheckOutHours)
	v.SetDefault("hotel.parking_note", p.ParkingNote)
}

// Load reads path, or config.yaml from . or ./config when path is empty,
// then applies CONFIRMATION_* environment overrides (server.port ->
// CONFIRMATION_SERVER_PORT). A missing default file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	enabled := false

	for _, name := range c.Render.Styles {
		if _, err := render.StyleByName(name); err != nil {
			return fmt.Errorf("%w: render.styles: %w", ErrInvalid, err)
		}

		if name == c.Render.Style {
			enabled = true
		}
	}

	if !enabled {
		return fmt.Errorf("%w: render.style %q is not listed in render.styles", ErrInvalid, c.Render.Style)
	}

	return nil
}

// RenderOptions translates the font and output settings for render.New.
func (c *Config) RenderOptions() []render.Option {
	opts := []render.Option{render.WithCompression(c.Render.Compress)}

	if c.Render.FontDir != "" {
		opts = append(opts, render.WithFontDir(c.Render.FontDir))
	}

	if c.Render.UTF8Font != "" {
		opts = append(opts, render.WithUTF8Font(c.Render.UTF8Font, c.Render.UTF8BoldFont))
	}

	return opts
}
