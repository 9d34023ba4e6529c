// Package config resolves runtime settings from .env files, environment variables
// and command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"vquest/constants"
	"vquest/store"
)

// Environment variables
const (
	EnvSave     = "VQUEST_SAVE"
	EnvDebug    = "VQUEST_DEBUG"
	EnvLogDir   = "VQUEST_LOG_DIR"
	EnvSeed     = "VQUEST_SEED"
	EnvMute     = "VQUEST_MUTE"
	EnvVolume   = "VQUEST_VOLUME"
	EnvAttempts = "VQUEST_ATTEMPTS"
)

// Config holds resolved settings.
type Config struct {
	SavePath    string
	Debug       bool
	LogDir      string
	Seed        int64 // 0 picks a time-based seed
	Mute        bool
	Volume      float64 // base-2 exponent, 0 is unchanged
	MaxAttempts int
	Width       int
	Height      int
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		SavePath:    store.DefaultPath(),
		LogDir:      "logs",
		Volume:      -1,
		MaxAttempts: constants.MaxAttempts,
		Width:       constants.ScreenW,
		Height:      constants.ScreenH,
	}
}

// Load reads envFiles (".env" when none are given; missing files are skipped),
// applies environment variables over the defaults, then parses args as flags.
func Load(name string, args []string, envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			log.Printf("[Config] ignoring %s: %v", f, err)
		}
	}

	cfg := Default()
	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}

	fsFlags := flag.NewFlagSet(name, flag.ContinueOnError)
	fsFlags.SetOutput(io.Discard)
	fsFlags.StringVar(&cfg.SavePath, "save", cfg.SavePath, "save file path")
	fsFlags.BoolVar(&cfg.Debug, "debug", cfg.Debug, "write a debug log")
	fsFlags.StringVar(&cfg.LogDir, "logdir", cfg.LogDir, "debug log directory")
	fsFlags.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 = time based)")
	fsFlags.BoolVar(&cfg.Mute, "mute", cfg.Mute, "disable sound")
	fsFlags.Float64Var(&cfg.Volume, "volume", cfg.Volume, "volume as a base-2 exponent")
	fsFlags.IntVar(&cfg.MaxAttempts, "attempts", cfg.MaxAttempts, "attempts per level")
	fsFlags.IntVar(&cfg.Width, "width", cfg.Width, "window width")
	fsFlags.IntVar(&cfg.Height, "height", cfg.Height, "window height")
	if err := fsFlags.Parse(args); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}

	return cfg, cfg.validate()
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv(EnvSave); ok && v != "" {
		c.SavePath = v
	}
	if v, ok := os.LookupEnv(EnvLogDir); ok && v != "" {
		c.LogDir = v
	}
	var err error
	if c.Debug, err = envBool(EnvDebug, c.Debug); err != nil {
		return err
	}
	if c.Mute, err = envBool(EnvMute, c.Mute); err != nil {
		return err
	}
	if v, ok := os.LookupEnv(EnvSeed); ok && v != "" {
		if c.Seed, err = strconv.ParseInt(v, 10, 64); err != nil {
			return fmt.Errorf("config: %s: %w", EnvSeed, err)
		}
	}
	if v, ok := os.LookupEnv(EnvVolume); ok && v != "" {
		if c.Volume, err = strconv.ParseFloat(v, 64); err != nil {
			return fmt.Errorf("config: %s: %w", EnvVolume, err)
		}
	}
	if v, ok := os.LookupEnv(EnvAttempts); ok && v != "" {
		if c.MaxAttempts, err = strconv.Atoi(v); err != nil {
			return fmt.Errorf("config: %s: %w", EnvAttempts, err)
		}
	}
	return nil
}

func (c Config) validate() error {
	if c.MaxAttempts < 1 {
		return fmt.Errorf("config: attempts must be at least 1, got %d", c.MaxAttempts)
	}
	if c.Width < 1 || c.Height < 1 {
		return fmt.Errorf("config: invalid window size %dx%d", c.Width, c.Height)
	}
	return nil
}

func envBool(key string, def bool) (bool, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def, fmt.Errorf("config: %s: %w", key, err)
	}
	return b, nil
}
