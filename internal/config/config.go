// Package config loads the YAML configuration shared by the strawbos front
// ends.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/KnNgZmN/PrototipoCinnamStrawbOS/internal/logger"
	"github.com/KnNgZmN/PrototipoCinnamStrawbOS/kernel"
	"github.com/KnNgZmN/PrototipoCinnamStrawbOS/kernel/mem"
	"github.com/KnNgZmN/PrototipoCinnamStrawbOS/kernel/proc"
)

// ErrInvalid indicates a configuration value out of range.
var ErrInvalid = errors.New("config: invalid value")

// Config is the effective configuration.
type Config struct {
	Kernel KernelConfig `yaml:"kernel"`
	VFS    VFSConfig    `yaml:"vfs"`
	Log    LogConfig    `yaml:"log"`
}

// KernelConfig sizes the simulated kernel.
type KernelConfig struct {
	MaxProcesses int           `yaml:"max_processes"`
	MemorySize   int           `yaml:"memory_size"`
	MaxBlocks    int           `yaml:"max_blocks"`
	Tick         time.Duration `yaml:"tick"` // simulated time per scheduler unit
}

// VFSConfig locates the virtual file store dump.
type VFSConfig struct {
	Path     string `yaml:"path"`
	Autoload bool   `yaml:"autoload"`
}

// LogConfig controls the debug log file.
type LogConfig struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir"`
	Level   string `yaml:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Kernel: KernelConfig{
			MaxProcesses: proc.DefaultCapacity,
			MemorySize:   mem.DefaultCapacity,
			MaxBlocks:    mem.DefaultMaxBlocks,
			Tick:         time.Second,
		},
		VFS: VFSConfig{
			Path:     "vfs.dat",
			Autoload: true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads the YAML file at path over the defaults. An empty path
// returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	if err := cfg.decode(f); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func (c *Config) decode(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Validate checks every value.
func (c Config) Validate() error {
	switch {
	case c.Kernel.MaxProcesses <= 0:
		return fmt.Errorf("%w: kernel.max_processes must be positive, got %d", ErrInvalid, c.Kernel.MaxProcesses)
	case c.Kernel.MemorySize <= 0:
		return fmt.Errorf("%w: kernel.memory_size must be positive, got %d", ErrInvalid, c.Kernel.MemorySize)
	case c.Kernel.MaxBlocks <= 0:
		return fmt.Errorf("%w: kernel.max_blocks must be positive, got %d", ErrInvalid, c.Kernel.MaxBlocks)
	case c.Kernel.Tick < 0:
		return fmt.Errorf("%w: kernel.tick must not be negative, got %s", ErrInvalid, c.Kernel.Tick)
	case c.VFS.Path == "":
		return fmt.Errorf("%w: vfs.path is empty", ErrInvalid)
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %w", ErrInvalid, err)
	}
	return nil
}

// KernelOptions converts the kernel section into kernel.Options.
func (c Config) KernelOptions(log *slog.Logger) kernel.Options {
	return kernel.Options{
		MaxProcesses: c.Kernel.MaxProcesses,
		MemorySize:   c.Kernel.MemorySize,
		MaxBlocks:    c.Kernel.MaxBlocks,
		Ticker:       proc.Interval(c.Kernel.Tick),
		Logger:       log,
	}
}

// LoggerOptions converts the log section into logger.Options.
func (c Config) LoggerOptions() logger.Options {
	level, _ := logger.ParseLevel(c.Log.Level)
	return logger.Options{
		Enabled: c.Log.Enabled,
		LogDir:  c.Log.Dir,
		Level:   level,
	}
}

// Write encodes c as YAML.
func (c Config) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return err
	}
	return enc.Close()
}
