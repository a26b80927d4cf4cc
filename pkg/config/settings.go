// Package config holds the read-only application settings.
package config

import (
	"strconv"
	"sync/atomic"
)

// Settings is the typed view of the merged configuration layers.
type Settings struct {
	App    App    `toml:"app"`
	Log    Log    `toml:"log"`
	Server Server `toml:"server"`
	Dev    Dev    `toml:"dev"`

	raw map[string]any
}

type App struct {
	Name        string `toml:"name"`
	Description string `toml:"description"`
	// Theme selects the active theme by name. Empty means the last enabled theme.
	Theme         string `toml:"theme"`
	Language      string `toml:"language"`
	Direction     string `toml:"direction"` // "ltr" | "rtl" | "auto"
	StartupBanner string `toml:"startup_banner"`
	RunMode       string `toml:"run_mode"`
}

type Log struct {
	Level      string `toml:"level"` // "debug" | "info" | "warn" | "error"
	Path       string `toml:"path"`
	File       string `toml:"file"`
	StdoutOnly bool   `toml:"stdout_only"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
	MaxAgeDays int    `toml:"max_age_days"`
	// BodyPaths lists request paths whose small JSON bodies the access log keeps.
	BodyPaths []string `toml:"body_paths"`
}

type Server struct {
	BindAddress     string `toml:"bind_address"`
	BindPort        int    `toml:"bind_port"`
	TLSCert         string `toml:"tls_cert"`
	TLSKey          string `toml:"tls_key"`
	ReadTimeoutSec  int    `toml:"read_timeout_seconds"`
	WriteTimeoutSec int    `toml:"write_timeout_seconds"`
	IdleTimeoutSec  int    `toml:"idle_timeout_seconds"`
	// RequestTimeoutSec bounds the request context of every handler. Zero disables it.
	RequestTimeoutSec int `toml:"request_timeout_seconds"`
}

// Addr is the listen address.
func (s Server) Addr() string {
	return s.BindAddress + ":" + strconv.Itoa(s.BindPort)
}

type Dev struct {
	// StaticFiles serves theme static files from this directory instead of the embedded copy.
	StaticFiles string `toml:"static_files"`
}

// Defaults returns the settings used when no file overrides them.
func Defaults() *Settings {
	return &Settings{
		App: App{
			Name:          "Steeze Pages",
			Language:      "en-US",
			Direction:     "ltr",
			StartupBanner: "slant",
			RunMode:       "default",
		},
		Log: Log{
			Level:      "info",
			Path:       "log",
			File:       "system.log",
			MaxSizeMB:  50,
			MaxBackups: 3,
			MaxAgeDays: 7,
		},
		Server: Server{
			BindAddress:     "localhost",
			BindPort:        8088,
			ReadTimeoutSec:  15,
			WriteTimeoutSec: 30,
			IdleTimeoutSec:  60,
		},
		raw: map[string]any{},
	}
}

var current atomic.Pointer[Settings]

// Install makes s the settings returned by Current.
func Install(s *Settings) { current.Store(s) }

// Current returns the installed settings, or Defaults when none were installed.
func Current() *Settings {
	if s := current.Load(); s != nil {
		return s
	}
	return Defaults()
}
