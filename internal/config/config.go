package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/akyairhashvil/prodgarden/internal/garden"
	"github.com/akyairhashvil/prodgarden/internal/timer"
	"github.com/akyairhashvil/prodgarden/internal/util"
)

const (
	configName = "config"
	configType = "yaml"
	envPrefix  = "PRODGARDEN"
)

// Config is the user-editable application configuration.
type Config struct {
	DataDir           string       `mapstructure:"data_dir" validate:"required"`
	AssetsDir         string       `mapstructure:"assets_dir"`
	LogLevel          string       `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	DefaultVegetation string       `mapstructure:"default_vegetation" validate:"vegetation"`
	Timer             TimerConfig  `mapstructure:"timer"`
	Garden            GardenConfig `mapstructure:"garden"`

	path string
}

type TimerConfig struct {
	Work      time.Duration `mapstructure:"work" validate:"gte=1s,lte=24h"`
	Break     time.Duration `mapstructure:"break" validate:"gte=1s,lte=24h"`
	Countdown time.Duration `mapstructure:"countdown" validate:"gte=1s,lte=24h"`
}

type GardenConfig struct {
	Width    int `mapstructure:"width" validate:"gt=0"`
	Height   int `mapstructure:"height" validate:"gt=0"`
	TileSize int `mapstructure:"tile_size" validate:"gt=0,ltefield=Width,ltefield=Height"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("vegetation", func(fl validator.FieldLevel) bool {
		_, err := garden.CatalogFor(fl.Field().String(), "")
		return err == nil
	})
	return v
}

// DefaultPath is config.yaml under the XDG config directory.
func DefaultPath() string {
	return filepath.Join(util.ConfigDir(AppName), configName+"."+configType)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("data_dir", util.DataDir(AppName))
	v.SetDefault("assets_dir", "assets")
	v.SetDefault("log_level", "info")
	v.SetDefault("default_vegetation", DefaultVegetation)
	v.SetDefault("timer.work", DefaultWorkDuration.String())
	v.SetDefault("timer.break", DefaultBreakDuration.String())
	v.SetDefault("timer.countdown", DefaultTimerDuration.String())
	v.SetDefault("garden.width", GameWidth)
	v.SetDefault("garden.height", GameHeight)
	v.SetDefault("garden.tile_size", TileSize)
}

// Load reads the config file at path (DefaultPath when empty). A missing
// file is created with the default values. PRODGARDEN_* environment
// variables override file values, e.g. PRODGARDEN_TIMER_WORK=50m.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType(configType)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create config dir: %w", err)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := v.WriteConfigAs(path); err != nil {
			return nil, fmt.Errorf("write default config: %w", err)
		}
	}

	cfg := &Config{path: path}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the configuration Load would produce from an empty file.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	cfg := &Config{path: DefaultPath()}
	_ = v.Unmarshal(cfg)
	return cfg
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Path is the file the config was loaded from.
func (c *Config) Path() string { return c.path }

func (c *Config) DBPath() string       { return filepath.Join(c.DataDir, DBFileName) }
func (c *Config) SessionPath() string  { return filepath.Join(c.DataDir, SessionFileName) }
func (c *Config) MapsDir() string      { return filepath.Join(c.DataDir, MapsDirName) }
func (c *Config) MetadataPath() string { return filepath.Join(c.DataDir, MetadataFileName) }
func (c *Config) LogPath() string      { return filepath.Join(c.DataDir, LogFileName) }

// TimerSettings converts the configured durations to whole seconds.
func (c *Config) TimerSettings() timer.Settings {
	return timer.Settings{
		WorkSeconds:  int(c.Timer.Work / time.Second),
		BreakSeconds: int(c.Timer.Break / time.Second),
		TimerSeconds: int(c.Timer.Countdown / time.Second),
	}
}

func (c *Config) Geometry() garden.Geometry {
	return garden.Geometry{
		Width:    c.Garden.Width,
		Height:   c.Garden.Height,
		TileSize: c.Garden.TileSize,
	}
}

// LibraryConfig wires the garden library to the data directory.
func (c *Config) LibraryConfig() garden.LibraryConfig {
	return garden.LibraryConfig{
		Dir:               c.MapsDir(),
		MetadataPath:      c.MetadataPath(),
		AssetsDir:         c.AssetsDir,
		DefaultVegetation: c.DefaultVegetation,
		Geometry:          c.Geometry(),
	}
}
