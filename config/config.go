/*
Package config loads the application configuration from defaults, an
optional YAML file, SWIPECHAT_ environment variables and command-line flags,
in increasing order of precedence.
*/
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"git.sr.ht/~gioverse/swipechat/logging"
)

// Name is used for the config file, the environment prefix and the flag set.
const Name = "swipechat"

// Config is the complete application configuration.
type Config struct {
	Window  Window         `mapstructure:"window"`
	Theme   string         `mapstructure:"theme" validate:"oneof=light dark"`
	Log     logging.Config `mapstructure:"log"`
	Profile string         `mapstructure:"profile" validate:"oneof=none cpu mem block goroutine mutex trace gio"`
	Swipe   Swipe          `mapstructure:"swipe"`
	Reply   Reply          `mapstructure:"reply"`
	Seed    Seed           `mapstructure:"seed"`
	Debug   Debug          `mapstructure:"debug"`
}

// Window configures the native window. Sizes are in Dp.
type Window struct {
	Title  string  `mapstructure:"title" validate:"required"`
	Width  float32 `mapstructure:"width" validate:"min=200,max=4000"`
	Height float32 `mapstructure:"height" validate:"min=200,max=4000"`
}

// Swipe configures the swipe-to-reply gesture. Distances are in Dp.
type Swipe struct {
	Threshold  float32 `mapstructure:"threshold" validate:"min=10,max=400"`
	IconTravel float32 `mapstructure:"icon_travel" validate:"min=0,max=400"`
	Damping    float32 `mapstructure:"damping" validate:"gt=0"`
	Stiffness  float32 `mapstructure:"stiffness" validate:"gt=0"`
}

// Reply configures the reply preview animation.
type Reply struct {
	Height   float32       `mapstructure:"height" validate:"min=10,max=400"`
	Duration time.Duration `mapstructure:"duration" validate:"min=0s,max=5s"`
}

// Seed selects the initial conversation.
type Seed struct {
	// File is a YAML transcript replacing the built-in conversation.
	File string `mapstructure:"file"`
	// Filler prepends that many generated messages as history.
	Filler int `mapstructure:"filler" validate:"min=0,max=1000"`
}

// Debug toggles layout debugging aids.
type Debug struct {
	Outline bool `mapstructure:"outline"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("window.title", "Chat")
	v.SetDefault("window.width", 400)
	v.SetDefault("window.height", 720)
	v.SetDefault("theme", "light")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", true)
	v.SetDefault("profile", "none")
	v.SetDefault("swipe.threshold", 80)
	v.SetDefault("swipe.icon_travel", 50)
	v.SetDefault("swipe.damping", 20)
	v.SetDefault("swipe.stiffness", 300)
	v.SetDefault("reply.height", 60)
	v.SetDefault("reply.duration", 300*time.Millisecond)
	v.SetDefault("seed.file", "")
	v.SetDefault("seed.filler", 0)
	v.SetDefault("debug.outline", false)
}

// flags maps config keys to the flags that override them.
var flags = map[string]string{
	"window.width":    "width",
	"window.height":   "height",
	"theme":           "theme",
	"log.level":       "log-level",
	"log.pretty":      "log-pretty",
	"profile":         "profile",
	"swipe.threshold": "threshold",
	"seed.file":       "seed",
	"seed.filler":     "filler",
	"debug.outline":   "outline",
}

func flagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet(Name, pflag.ContinueOnError)
	// Callers print Usage themselves.
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.StringP("config", "c", "", "path to a YAML config file")
	fs.Float32("width", 400, "window width in Dp")
	fs.Float32("height", 720, "window height in Dp")
	fs.String("theme", "light", "color theme: light or dark")
	fs.String("log-level", "info", "log level: trace, debug, info, warn or error")
	fs.Bool("log-pretty", true, "human readable console logs")
	fs.String("profile", "none", "profiling mode: none, cpu, mem, block, goroutine, mutex, trace or gio")
	fs.Float32("threshold", 80, "swipe distance in Dp revealing the reply icon")
	fs.String("seed", "", "YAML transcript replacing the built-in conversation")
	fs.Int("filler", 0, "number of generated history messages")
	fs.Bool("outline", false, "outline rows for layout debugging")
	return fs
}

// Load builds the configuration for the given command-line arguments,
// excluding the program name. It returns pflag.ErrHelp if help was
// requested.
func Load(args []string) (*Config, error) {
	fs := flagSet()
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	setDefaults(v)
	for key, name := range flags {
		if err := v.BindPFlag(key, fs.Lookup(name)); err != nil {
			return nil, fmt.Errorf("binding flag %s: %w", name, err)
		}
	}

	// Environment variable support
	v.SetEnvPrefix(Name)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	explicit, _ := fs.GetString("config")
	if explicit != "" {
		v.SetConfigFile(explicit)
	} else {
		v.SetConfigName(Name)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, Name))
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	cfg.Theme = strings.ToLower(strings.TrimSpace(cfg.Theme))
	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// Usage returns the help text listing every flag.
func Usage() string {
	return fmt.Sprintf("Usage of %s:\n%s", Name, flagSet().FlagUsages())
}
