package gateway

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// Duration wraps time.Duration so TOML values like "60s" parse directly.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

// Config is the gateway server configuration.
type Config struct {
	// Address to listen on (e.g., ":8000")
	ListenAddr string `toml:"listen_addr"`

	// Model is the pinned provider model identifier.
	Model string `toml:"model"`

	// SourceLang and TargetLang fix the translation direction for this
	// deployment.
	SourceLang string `toml:"source_lang"`
	TargetLang string `toml:"target_lang"`

	// RequestTimeout bounds the outbound provider call.
	RequestTimeout Duration `toml:"request_timeout"`

	// CacheEnabled turns the translation cache on.
	CacheEnabled bool `toml:"cache_enabled"`

	// CachePath is the path to the SQLite cache file.
	// Empty means in-memory.
	CachePath string `toml:"cache_path"`

	// APIKey, when set, requires callers to present it in X-API-Key.
	APIKey string `toml:"api_key"`
}

// DefaultConfig returns the configuration used when no file or flags
// override it.
func DefaultConfig() Config {
	return Config{
		ListenAddr:     ":8000",
		Model:          "gpt-4o-mini",
		SourceLang:     "English",
		TargetLang:     "French",
		RequestTimeout: Duration{60 * time.Second},
	}
}

// LoadConfig reads a TOML config file over the defaults.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	if _, err := toml.DecodeFile(path, &config); err != nil {
		return Config{}, fmt.Errorf("decode config file %s: %w", path, err)
	}

	return config, nil
}
