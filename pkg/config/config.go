// Package config holds the engine configuration: the classes written for each
// flag, the selectors that pick observed fields, and the marker classes and
// data attributes the engine reads. Values load from JSON or YAML and can be
// overlaid with tokens from a go-theme manifest.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formstate/pkg/state"
)

// Config is passed to the engine by value.
type Config struct {
	// ClassNames maps each flag to its container class.
	ClassNames state.ClassNames
	// VisibleSelector picks inputs that are subject to the visibility filter.
	VisibleSelector string
	// AlwaysSelector picks textareas and selects observed regardless of
	// visibility.
	AlwaysSelector string
	// FormClasses mark forms that take part in submit validation.
	FormClasses []string
	// ValidatedClass is added to a form after its first submit attempt.
	ValidatedClass string

	DatepickerClass    string
	FieldLargeClass    string
	FieldSmallClass    string
	FileContainerClass string
	InputGroupClass    string

	MaskAttr      string
	ReverseAttr   string
	ValidAttr     string
	ValidRuleAttr string

	// ClearIfNotMatch empties masked values that do not fill the mask.
	ClearIfNotMatch bool
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		ClassNames:         state.DefaultClassNames(),
		VisibleSelector:    ".ads__form-control > input, .ads__form-file > input",
		AlwaysSelector:     ".ads__form-control > textarea, .ads__form-select > select",
		FormClasses:        []string{"needs-validation", "ads__form-needs-validation"},
		ValidatedClass:     "was-validated",
		DatepickerClass:    "b3__form-datepicker",
		FieldLargeClass:    "form-control-lg",
		FieldSmallClass:    "form-control-sm",
		FileContainerClass: "ads__form-file",
		InputGroupClass:    "input-group",
		MaskAttr:           "data-b3-mask",
		ReverseAttr:        "data-b3-mask-reverse",
		ValidAttr:          "data-valid",
		ValidRuleAttr:      "data-valid-rule",
		ClearIfNotMatch:    true,
	}
}

type file struct {
	ClassNames map[string]string `json:"classNames" yaml:"classNames"`
	Selectors  struct {
		Visible string `json:"visible" yaml:"visible"`
		Always  string `json:"always" yaml:"always"`
	} `json:"selectors" yaml:"selectors"`
	Forms struct {
		Classes        []string `json:"classes" yaml:"classes"`
		ValidatedClass string   `json:"validatedClass" yaml:"validatedClass"`
	} `json:"forms" yaml:"forms"`
	Markers struct {
		Datepicker    string `json:"datepicker" yaml:"datepicker"`
		FieldLarge    string `json:"fieldLarge" yaml:"fieldLarge"`
		FieldSmall    string `json:"fieldSmall" yaml:"fieldSmall"`
		FileContainer string `json:"fileContainer" yaml:"fileContainer"`
		InputGroup    string `json:"inputGroup" yaml:"inputGroup"`
	} `json:"markers" yaml:"markers"`
	Attributes struct {
		Mask      string `json:"mask" yaml:"mask"`
		Reverse   string `json:"reverse" yaml:"reverse"`
		Valid     string `json:"valid" yaml:"valid"`
		ValidRule string `json:"validRule" yaml:"validRule"`
	} `json:"attributes" yaml:"attributes"`
	ClearIfNotMatch *bool `json:"clearIfNotMatch" yaml:"clearIfNotMatch"`
}

// Load parses a JSON or YAML payload and overlays it on Default. Source names
// the payload in error messages.
func Load(data []byte, source string) (Config, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Config{}, fmt.Errorf("%w: %s", ErrEmptyConfig, source)
	}

	var raw file
	if err := json.Unmarshal(data, &raw); err != nil {
		raw = file{}
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: invalid JSON or YAML", source)
		}
	}
	return raw.apply(Default(), source)
}

// LoadFile reads and parses the file at path.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Load(data, path)
}

func (f file) apply(cfg Config, source string) (Config, error) {
	overrides := make(state.ClassNames, len(f.ClassNames))
	for key, class := range f.ClassNames {
		flag, ok := lookupFlag(key)
		if !ok {
			return Config{}, fmt.Errorf("config: %s: unknown flag %q in classNames", source, key)
		}
		overrides[flag] = class
	}
	cfg.ClassNames = cfg.ClassNames.Merge(overrides)

	setString(&cfg.VisibleSelector, f.Selectors.Visible)
	setString(&cfg.AlwaysSelector, f.Selectors.Always)
	if classes := trimAll(f.Forms.Classes); len(classes) > 0 {
		cfg.FormClasses = classes
	}
	setString(&cfg.ValidatedClass, f.Forms.ValidatedClass)

	setString(&cfg.DatepickerClass, f.Markers.Datepicker)
	setString(&cfg.FieldLargeClass, f.Markers.FieldLarge)
	setString(&cfg.FieldSmallClass, f.Markers.FieldSmall)
	setString(&cfg.FileContainerClass, f.Markers.FileContainer)
	setString(&cfg.InputGroupClass, f.Markers.InputGroup)

	setString(&cfg.MaskAttr, strings.ToLower(f.Attributes.Mask))
	setString(&cfg.ReverseAttr, strings.ToLower(f.Attributes.Reverse))
	setString(&cfg.ValidAttr, strings.ToLower(f.Attributes.Valid))
	setString(&cfg.ValidRuleAttr, strings.ToLower(f.Attributes.ValidRule))

	if f.ClearIfNotMatch != nil {
		cfg.ClearIfNotMatch = *f.ClearIfNotMatch
	}
	return cfg, nil
}

// Normalize fills every empty setting from Default, so a zero or partially
// built Config is always usable.
func (c Config) Normalize() Config {
	def := Default()
	c.ClassNames = def.ClassNames.Merge(c.ClassNames)
	setDefault(&c.VisibleSelector, def.VisibleSelector)
	setDefault(&c.AlwaysSelector, def.AlwaysSelector)
	if c.FormClasses = trimAll(c.FormClasses); len(c.FormClasses) == 0 {
		c.FormClasses = def.FormClasses
	}
	setDefault(&c.ValidatedClass, def.ValidatedClass)
	setDefault(&c.DatepickerClass, def.DatepickerClass)
	setDefault(&c.FieldLargeClass, def.FieldLargeClass)
	setDefault(&c.FieldSmallClass, def.FieldSmallClass)
	setDefault(&c.FileContainerClass, def.FileContainerClass)
	setDefault(&c.InputGroupClass, def.InputGroupClass)
	setDefault(&c.MaskAttr, def.MaskAttr)
	setDefault(&c.ReverseAttr, def.ReverseAttr)
	setDefault(&c.ValidAttr, def.ValidAttr)
	setDefault(&c.ValidRuleAttr, def.ValidRuleAttr)
	return c
}

func lookupFlag(key string) (state.Flag, bool) {
	key = strings.TrimSpace(key)
	for _, flag := range state.AllFlags {
		if strings.EqualFold(string(flag), key) {
			return flag, true
		}
	}
	return "", false
}

func setString(dst *string, value string) {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		*dst = trimmed
	}
}

func setDefault(dst *string, fallback string) {
	if strings.TrimSpace(*dst) == "" {
		*dst = fallback
	}
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
