package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/dshills/runetext/internal/collate"
)

// Settings configures the engine's ambient behavior.
type Settings struct {
	// Locale is the BCP 47 tag driving default collation and the
	// decimal-separator convention. Empty means the root locale.
	Locale string `toml:"locale" yaml:"locale"`

	// FloatPrecision is the default digit count for float rendering
	// when a caller gives none.
	FloatPrecision int `toml:"float_precision" yaml:"float_precision"`

	// IntegerBase is the default base for integer rendering.
	IntegerBase int `toml:"integer_base" yaml:"integer_base"`
}

// DefaultSettings returns the built-in defaults: root locale, two
// fraction digits, base 10.
func DefaultSettings() Settings {
	return Settings{
		Locale:         "und",
		FloatPrecision: 2,
		IntegerBase:    10,
	}
}

// Load reads settings from a TOML or YAML file, selected by extension
// (.yaml/.yml vs anything else). Missing file yields the defaults, not
// an error, matching layered-config behavior.
func Load(path string) (Settings, error) {
	s := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, fmt.Errorf("reading settings %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &s); err != nil {
			return DefaultSettings(), fmt.Errorf("parsing settings %s: %w", path, err)
		}
	default:
		if err := toml.Unmarshal(data, &s); err != nil {
			return DefaultSettings(), fmt.Errorf("parsing settings %s: %w", path, err)
		}
	}

	if err := s.Validate(); err != nil {
		return DefaultSettings(), err
	}
	return s, nil
}

// Validate checks settings ranges and the locale tag.
func (s Settings) Validate() error {
	if _, err := language.Parse(s.localeOrUnd()); err != nil {
		return fmt.Errorf("%w: %q", ErrBadLocale, s.Locale)
	}
	if s.IntegerBase != 0 && (s.IntegerBase < 2 || s.IntegerBase > 36) {
		return fmt.Errorf("%w: %d", ErrBadBase, s.IntegerBase)
	}
	if s.FloatPrecision < 0 {
		return fmt.Errorf("%w: %d", ErrBadPrecision, s.FloatPrecision)
	}
	return nil
}

// Tag returns the parsed locale tag.
func (s Settings) Tag() (language.Tag, error) {
	tag, err := language.Parse(s.localeOrUnd())
	if err != nil {
		return language.Und, fmt.Errorf("%w: %q", ErrBadLocale, s.Locale)
	}
	return tag, nil
}

// Apply installs the settings as the process-wide defaults.
func (s Settings) Apply() error {
	tag, err := s.Tag()
	if err != nil {
		return err
	}
	collate.SetDefaultLocale(tag)
	return nil
}

func (s Settings) localeOrUnd() string {
	if s.Locale == "" {
		return "und"
	}
	return s.Locale
}
