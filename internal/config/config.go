// Package config loads the demo's YAML settings.
package config

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cansyan/cellgrid/ui"
)

// Config is the contents of the settings file. Unset fields take the value
// from Default.
type Config struct {
	Theme   string            `yaml:"theme"`  // auto, dark or light
	Keys    map[string]string `yaml:"keys"`   // key name to action name
	Layout  []string          `yaml:"layout"` // template rows
	Mouse   *bool             `yaml:"mouse"`
	LogFile string            `yaml:"log_file"`
	Debug   bool              `yaml:"debug"`
}

// Default returns the settings used when no file is given.
func Default() *Config {
	mouse := true
	return &Config{
		Theme: "auto",
		Keys: map[string]string{
			"esc":    "quit",
			"ctrl+q": "quit",
			"ctrl+l": "redraw",
			"ctrl+c": "copy",
			"ctrl+v": "paste",
			"ctrl+t": "theme",
		},
		Layout: []string{
			"[. . . f]",
			"[t p s f]",
			"[c . q f]",
		},
		Mouse:   &mouse,
		LogFile: "",
	}
}

// Load reads the file at path and fills the gaps from Default. A missing
// file or an empty path yields the defaults.
func Load(path string) (*Config, error) {
	const op ui.Op = "config.Load"
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, ui.E(op, ui.KindConfig, err, path)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, ui.E(op, ui.KindConfig, err, path)
	}
	merged := Merge(&cfg, Default())
	if errs := Validate(merged); len(errs) > 0 {
		return nil, ui.E(op, ui.KindConfig, joinErrors(errs), path)
	}
	return merged, nil
}

// Merge returns partial with its unset fields taken from defaults. Key
// bindings are merged per key.
func Merge(partial, defaults *Config) *Config {
	result := *partial
	if result.Theme == "" {
		result.Theme = defaults.Theme
	}
	keys := make(map[string]string, len(defaults.Keys)+len(partial.Keys))
	for k, v := range defaults.Keys {
		keys[k] = v
	}
	for k, v := range partial.Keys {
		keys[k] = v
	}
	result.Keys = keys
	if len(result.Layout) == 0 {
		result.Layout = defaults.Layout
	}
	if result.Mouse == nil {
		result.Mouse = defaults.Mouse
	}
	if result.LogFile == "" {
		result.LogFile = defaults.LogFile
	}
	result.Debug = partial.Debug || defaults.Debug
	return &result
}

// ValidationError is one problem found in a Config.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Validate checks a merged config.
func Validate(cfg *Config) []ValidationError {
	var errs []ValidationError

	switch strings.ToLower(cfg.Theme) {
	case "auto", "dark", "light":
	default:
		errs = append(errs, ValidationError{
			Field:   "theme",
			Message: fmt.Sprintf("unknown theme %q (must be auto, dark or light)", cfg.Theme),
		})
	}

	for _, key := range slices.Sorted(maps.Keys(cfg.Keys)) {
		if _, _, err := ui.ParseKey(key); err != nil {
			errs = append(errs, ValidationError{
				Field:   "keys." + key,
				Message: err.Error(),
			})
		}
	}

	if _, err := ui.ParseTemplate(cfg.Layout...); err != nil {
		errs = append(errs, ValidationError{
			Field:   "layout",
			Message: err.Error(),
		})
	}
	return errs
}

func joinErrors(errs []ValidationError) error {
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

// Palette returns the configured theme.
func (c *Config) Palette() *ui.Theme {
	return ui.ThemeByName(c.Theme)
}

// KeyMap builds the configured key bindings.
func (c *Config) KeyMap() (*ui.KeyMap, error) {
	return ui.ParseKeyMap(c.Keys)
}

// Template parses the configured layout.
func (c *Config) Template() (*ui.Template, error) {
	return ui.ParseTemplate(c.Layout...)
}

// MouseEnabled reports whether mouse input is wanted.
func (c *Config) MouseEnabled() bool {
	return c.Mouse == nil || *c.Mouse
}
