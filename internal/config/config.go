// Package config loads pastepill settings from ~/.config/pastepill/config.yaml
// and PASTEPILL_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

const (
	defaultPasteDelay   = 150 * time.Millisecond
	defaultPasteTimeout = 5 * time.Second
)

type Config struct {
	WindowLabel string

	RecordingWidth   int
	RecordingHeight  int
	TranscriptWidth  int
	TranscriptHeight int
	FocusOnShow      bool

	PasteDelay   time.Duration
	PasteTimeout time.Duration

	Hotkey  string
	Tray    bool
	Notify  bool
	LogFile string
}

// DefaultDir returns ~/.config/pastepill.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot find home dir: %w", err)
	}
	return filepath.Join(home, ".config", "pastepill"), nil
}

// Load reads config.yaml from dir. A missing file is not an error; the
// defaults and environment overrides still apply.
func Load(dir string) (Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if dir != "" {
		v.AddConfigPath(dir)
	}

	v.SetDefault("window_label", "main")
	v.SetDefault("recording_width", 400)
	v.SetDefault("recording_height", 100)
	v.SetDefault("transcript_width", 600)
	v.SetDefault("transcript_height", 150)
	v.SetDefault("focus_on_show", true)
	v.SetDefault("paste_delay", defaultPasteDelay.String())
	v.SetDefault("paste_timeout", defaultPasteTimeout.String())
	v.SetDefault("hotkey", "Scroll_Lock")
	v.SetDefault("tray", true)
	v.SetDefault("notify", true)
	v.SetDefault("log_file", "")

	// PASTEPILL_PASTE_DELAY=300ms and friends.
	v.SetEnvPrefix("pastepill")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config error: %w", err)
		}
	}

	return Config{
		WindowLabel:      v.GetString("window_label"),
		RecordingWidth:   v.GetInt("recording_width"),
		RecordingHeight:  v.GetInt("recording_height"),
		TranscriptWidth:  v.GetInt("transcript_width"),
		TranscriptHeight: v.GetInt("transcript_height"),
		FocusOnShow:      v.GetBool("focus_on_show"),
		PasteDelay:       duration(v, "paste_delay", defaultPasteDelay),
		PasteTimeout:     duration(v, "paste_timeout", defaultPasteTimeout),
		Hotkey:           v.GetString("hotkey"),
		Tray:             v.GetBool("tray"),
		Notify:           v.GetBool("notify"),
		LogFile:          v.GetString("log_file"),
	}, nil
}

// duration parses key, falling back to def when the value is malformed.
func duration(v *viper.Viper, key string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(v.GetString(key))
	if err != nil {
		return def
	}
	return d
}
