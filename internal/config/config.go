// Package config parses widgets.toml configuration.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// FileName is the configuration file looked up by Load.
const FileName = "widgets.toml"

// DefaultAccentColor is the default TUI accent color (indigo).
const DefaultAccentColor = "#7D56F4"

// DefaultJokeEndpoint is the public random-joke API.
const DefaultJokeEndpoint = "https://official-joke-api.appspot.com/random_joke"

// DefaultLogFileName is created under os.TempDir when [log] file is empty.
const DefaultLogFileName = "widgets.log"

// hexColorRe matches a 6-digit hex color string like "#7D56F4".
var hexColorRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Config is the top-level widgets.toml configuration.
type Config struct {
	Clock ClockConfig `toml:"clock"`
	Joke  JokeConfig  `toml:"joke"`
	TUI   TUIConfig   `toml:"tui"`
	Log   LogConfig   `toml:"log"`
}

// ClockConfig controls the digital clock widget.
type ClockConfig struct {
	Use24Hour bool `toml:"use_24_hour"`
}

// JokeConfig controls the random joke widget.
type JokeConfig struct {
	Endpoint       string `toml:"endpoint"`
	TimeoutSeconds int    `toml:"timeout_seconds"` // 0 = no timeout
}

// Timeout returns the fetch timeout as a duration. Zero means none.
func (j JokeConfig) Timeout() time.Duration {
	return time.Duration(j.TimeoutSeconds) * time.Second
}

// TUIConfig controls the terminal UI appearance.
type TUIConfig struct {
	AccentColor string `toml:"accent_color"`
}

// LogConfig controls where diagnostics go while the TUI owns the terminal.
type LogConfig struct {
	File string `toml:"file"` // empty = DefaultLogFileName in os.TempDir
}

// Path returns the file diagnostics are written to while the TUI runs.
func (l LogConfig) Path() string {
	if l.File != "" {
		return l.File
	}
	return filepath.Join(os.TempDir(), DefaultLogFileName)
}

// Validate checks the configuration for issues that would cause confusing
// runtime failures. It returns all found issues joined together.
func (c *Config) Validate() error {
	var errs []error

	if c.Joke.Endpoint == "" {
		errs = append(errs, fmt.Errorf("joke.endpoint must not be empty"))
	} else {
		u, parseErr := url.ParseRequestURI(c.Joke.Endpoint)
		if parseErr != nil || (u.Scheme != "http" && u.Scheme != "https") {
			errs = append(errs, fmt.Errorf("joke.endpoint must be a valid http or https URL"))
		}
	}
	if c.Joke.TimeoutSeconds < 0 {
		errs = append(errs, fmt.Errorf("joke.timeout_seconds must be >= 0 (0 = no timeout)"))
	}

	if c.TUI.AccentColor != "" && !hexColorRe.MatchString(c.TUI.AccentColor) {
		errs = append(errs, fmt.Errorf("tui.accent_color must be a hex color (e.g. \"#7D56F4\")"))
	}

	return errors.Join(errs...)
}

// Defaults returns a Config with the built-in defaults.
func Defaults() Config {
	return Config{
		Clock: ClockConfig{
			Use24Hour: true,
		},
		Joke: JokeConfig{
			Endpoint:       DefaultJokeEndpoint,
			TimeoutSeconds: 10,
		},
		TUI: TUIConfig{
			AccentColor: DefaultAccentColor,
		},
		Log: LogConfig{File: ""},
	}
}

// Load reads widgets.toml from the given path. If path is empty, it walks up
// from the current working directory looking for widgets.toml and falls back
// to Defaults when none exists. Returns an error if the file contains unknown
// keys (likely typos) or fails validation.
func Load(path string) (*Config, error) {
	if path == "" {
		found, err := findConfig()
		if err != nil {
			return nil, err
		}
		if found == "" {
			cfg := Defaults()
			return &cfg, nil
		}
		path = found
	}

	cfg := Defaults()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("config: unknown keys in %s: %s (possible typos?)", path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}

	return &cfg, nil
}

// findConfig walks up from the current directory looking for widgets.toml.
// It returns "" without error when the filesystem root is reached.
func findConfig() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("config: get working directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// InitFile writes a default widgets.toml template to the given directory.
func InitFile(dir string) (string, error) {
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("config: %s already exists at %s", FileName, path)
	}

	content := `# widgets.toml: terminal widgets configuration

[clock]
use_24_hour = true  # false starts the clock in 12-hour mode

[joke]
endpoint = "https://official-joke-api.appspot.com/random_joke"
timeout_seconds = 10  # 0 = wait forever

[tui]
accent_color = "#7D56F4"  # hex color for titles and focused buttons

[log]
file = ""  # diagnostics file while the TUI is running (empty = widgets.log in the system temp dir)
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("config: write %s: %w", path, err)
	}
	return path, nil
}
