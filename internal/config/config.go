// Package config loads roomfield settings from defaults, an optional TOML
// file and ROOMFIELD_ environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/spf13/viper"

	"github.com/cwbudde/algo-room/room/engine"
	"github.com/cwbudde/algo-room/room/geometry"
	"github.com/cwbudde/algo-room/room/mode"
)

// EnvPrefix is the environment variable prefix, e.g. ROOMFIELD_ROOM_LX.
const EnvPrefix = "ROOMFIELD"

// Config holds application configuration.
type Config struct {
	Room      RoomConfig
	Source    SourceConfig
	Modes     ModesConfig
	Acoustics AcousticsConfig
	Render    RenderConfig
	Engine    EngineConfig
}

// RoomConfig holds the box dimensions in meters.
type RoomConfig struct {
	Lx, Ly, Lz float64
}

// SourceConfig holds the source position. Centered places it at the room
// centre and overrides X, Y and Z. It defaults to true unless a file or the
// environment sets a coordinate.
type SourceConfig struct {
	Centered bool
	X, Y, Z  float64
}

// ModesConfig holds the enumeration limits.
type ModesConfig struct {
	NXMax  int `mapstructure:"nx_max"`
	NYMax  int `mapstructure:"ny_max"`
	NZMax  int `mapstructure:"nz_max"`
	Filter string
}

// AcousticsConfig holds drive and damping settings.
type AcousticsConfig struct {
	Frequency  float64
	Zeta       float64
	Crossover  float64
	Absorption float64
	Animate    bool
	Time       float64
}

// RenderConfig holds grid and memory settings.
type RenderConfig struct {
	Resolution  int
	HighRes     bool   `mapstructure:"high_res"`
	MemoryLimit uint64 `mapstructure:"memory_limit"` // bytes available to one evaluation
}

// EngineConfig holds engine-owned constants.
type EngineConfig struct {
	SpeedOfSound float64 `mapstructure:"speed_of_sound"`
	Epsilon      float64
	Workers      int
}

// SetDefaults registers every default on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("room.lx", 5.0)
	v.SetDefault("room.ly", 4.0)
	v.SetDefault("room.lz", 3.0)
	v.SetDefault("source.centered", true)
	v.SetDefault("source.x", 2.5)
	v.SetDefault("source.y", 2.0)
	v.SetDefault("source.z", 1.5)
	v.SetDefault("modes.nx_max", 5)
	v.SetDefault("modes.ny_max", 5)
	v.SetDefault("modes.nz_max", 5)
	v.SetDefault("modes.filter", "All")
	v.SetDefault("acoustics.frequency", 100.0)
	v.SetDefault("acoustics.zeta", 0.01)
	v.SetDefault("acoustics.crossover", 800.0)
	v.SetDefault("acoustics.absorption", 0.2)
	v.SetDefault("acoustics.animate", false)
	v.SetDefault("acoustics.time", 0.0)
	v.SetDefault("render.resolution", 32)
	v.SetDefault("render.high_res", false)
	v.SetDefault("render.memory_limit", uint64(2<<30))
	v.SetDefault("engine.speed_of_sound", 343.0)
	v.SetDefault("engine.epsilon", 1e-8)
	v.SetDefault("engine.workers", 0)
}

// New returns a viper instance with defaults and environment binding. If
// path is not empty the file is read and must exist.
func New(path string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetConfigType("toml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if sourceGiven(v) {
		v.Set("source.centered", false)
	}

	return v, nil
}

// sourceGiven reports whether the file or the environment sets a source
// coordinate without saying whether the source is centred.
func sourceGiven(v *viper.Viper) bool {
	if fromFileOrEnv(v, "source.centered") {
		return false
	}

	for _, key := range []string{"source.x", "source.y", "source.z"} {
		if fromFileOrEnv(v, key) {
			return true
		}
	}

	return false
}

func fromFileOrEnv(v *viper.Viper, key string) bool {
	if v.InConfig(key) {
		return true
	}

	_, ok := os.LookupEnv(EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_")))

	return ok
}

// Decode unmarshals v into a Config.
func Decode(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	return c, nil
}

// Load is New followed by Decode.
func Load(path string) (Config, error) {
	v, err := New(path)
	if err != nil {
		return Config{}, err
	}

	return Decode(v)
}

// Default returns the configuration with no file and no environment.
func Default() Config {
	v := viper.New()
	SetDefaults(v)

	c, err := Decode(v)
	if err != nil {
		panic(err)
	}

	return c
}

// Request resolves the configuration into an engine request.
func (c Config) Request() (engine.Request, error) {
	filter, err := ResolveFilter(c.Modes.Filter)
	if err != nil {
		return engine.Request{}, err
	}

	src := geometry.Point{X: c.Source.X, Y: c.Source.Y, Z: c.Source.Z}
	if c.Source.Centered {
		src = geometry.Point{X: c.Room.Lx / 2, Y: c.Room.Ly / 2, Z: c.Room.Lz / 2}
	}

	return engine.Request{
		Lx:          c.Room.Lx,
		Ly:          c.Room.Ly,
		Lz:          c.Room.Lz,
		Source:      src,
		Zeta:        c.Acoustics.Zeta,
		Limits:      mode.Limits{NX: c.Modes.NXMax, NY: c.Modes.NYMax, NZ: c.Modes.NZMax},
		Filter:      filter,
		FrequencyHz: c.Acoustics.Frequency,
		CrossoverHz: c.Acoustics.Crossover,
		Absorption:  c.Acoustics.Absorption,
		Resolution:  c.Render.Resolution,
		HighRes:     c.Render.HighRes,
		Animate:     c.Acoustics.Animate,
		TimeSeconds: c.Acoustics.Time,
	}, nil
}

// ResolveFilter parses a filter name. Unknown names get the closest valid
// name as a suggestion.
func ResolveFilter(name string) (mode.Filter, error) {
	f, err := mode.ParseFilter(name)
	if err == nil {
		return f, nil
	}
	if !errors.Is(err, mode.ErrUnknownFilter) {
		return f, err
	}

	if s := suggest(name, mode.FilterNames()); s != "" {
		return f, fmt.Errorf("%w (did you mean %q?)", err, s)
	}

	return f, fmt.Errorf("%w (valid: %s)", err, strings.Join(mode.FilterNames(), ", "))
}

// suggest returns the candidate closest to name, or "" when none is within
// half of the name's length.
func suggest(name string, candidates []string) string {
	in := strings.ToLower(strings.TrimSpace(name))
	best, bestDist := "", len(in)/2+1
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(in, strings.ToLower(c))
		if d < bestDist {
			best, bestDist = c, d
		}
	}

	return best
}
