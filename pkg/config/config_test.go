package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formstate/pkg/config"
	"github.com/goliatone/go-formstate/pkg/state"
)

func TestLoad_YAMLOverlaysDefaults(t *testing.T) {
	cfg, err := config.Load([]byte(`
classNames:
  isInvalid: field--error
  hasValue: "  "
forms:
  classes: [validate-me]
attributes:
  mask: DATA-MASK
clearIfNotMatch: false
`), "formstate.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if got := cfg.ClassNames.Class(state.FlagIsInvalid); got != "field--error" {
		t.Fatalf("isInvalid class: %q", got)
	}
	if got := cfg.ClassNames.Class(state.FlagHasValue); got != "has-value" {
		t.Fatalf("blank override should keep default, got %q", got)
	}
	if diff := cmp.Diff([]string{"validate-me"}, cfg.FormClasses); diff != "" {
		t.Fatalf("form classes mismatch (-want +got):\n%s", diff)
	}
	if cfg.MaskAttr != "data-mask" {
		t.Fatalf("mask attr: %q", cfg.MaskAttr)
	}
	if cfg.ClearIfNotMatch {
		t.Fatalf("expected clearIfNotMatch disabled")
	}
	if cfg.VisibleSelector != config.Default().VisibleSelector {
		t.Fatalf("unset selector should keep default")
	}
}

func TestLoad_JSON(t *testing.T) {
	cfg, err := config.Load([]byte(`{"markers":{"datepicker":"picker"},"forms":{"validatedClass":"checked"}}`), "inline.json")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DatepickerClass != "picker" || cfg.ValidatedClass != "checked" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if !cfg.ClearIfNotMatch {
		t.Fatalf("clearIfNotMatch should default to true")
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := config.Load([]byte("  \n"), "empty.yaml"); !errors.Is(err, config.ErrEmptyConfig) {
		t.Fatalf("expected ErrEmptyConfig, got %v", err)
	}

	_, err := config.Load([]byte("classNames: [unterminated"), "broken.yaml")
	if err == nil || !strings.Contains(err.Error(), "config: parse broken.yaml") {
		t.Fatalf("expected parse error, got %v", err)
	}

	_, err = config.Load([]byte("classNames:\n  bogus: x\n"), "flags.yaml")
	if err == nil || !strings.Contains(err.Error(), `unknown flag "bogus"`) {
		t.Fatalf("expected unknown flag error, got %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "formstate.yaml")
	if err := os.WriteFile(path, []byte("markers:\n  inputGroup: search-group\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := config.LoadFile(path)
	if err != nil {
		t.Fatalf("load file: %v", err)
	}
	if cfg.InputGroupClass != "search-group" {
		t.Fatalf("input group class: %q", cfg.InputGroupClass)
	}

	if _, err := config.LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestNormalize_FillsZeroValue(t *testing.T) {
	cfg := config.Config{ValidatedClass: "done"}.Normalize()
	def := config.Default()

	if cfg.ValidatedClass != "done" {
		t.Fatalf("explicit value overwritten: %q", cfg.ValidatedClass)
	}
	if cfg.AlwaysSelector != def.AlwaysSelector || cfg.ValidAttr != def.ValidAttr {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
	if diff := cmp.Diff(def.ClassNames, cfg.ClassNames); diff != "" {
		t.Fatalf("class names mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyTheme_VariantTokensWin(t *testing.T) {
	selector := &stubSelector{selection: &theme.Selection{
		Theme:   "acme",
		Variant: "dark",
		Manifest: &theme.Manifest{
			Name:    "acme",
			Version: "1.0.0",
			Tokens: map[string]string{
				"brand":                     "#123456",
				"formstate.class.isFocused": "acme-focus",
				"formstate.class.isInvalid": "acme-error",
				"formstate.class.notAFlag":  "ignored",
			},
			Variants: map[string]theme.Variant{
				"dark": {Tokens: map[string]string{"formstate.class.isInvalid": "acme-error-dark"}},
			},
		},
	}}

	cfg, err := config.Default().ApplyTheme(selector, "acme", "dark")
	if err != nil {
		t.Fatalf("apply theme: %v", err)
	}
	if selector.name != "acme" || selector.variant != "dark" {
		t.Fatalf("selector called with %q/%q", selector.name, selector.variant)
	}
	if got := cfg.ClassNames.Class(state.FlagIsFocused); got != "acme-focus" {
		t.Fatalf("isFocused: %q", got)
	}
	if got := cfg.ClassNames.Class(state.FlagIsInvalid); got != "acme-error-dark" {
		t.Fatalf("isInvalid: %q", got)
	}
	if got := cfg.ClassNames.Class(state.FlagHasValue); got != "has-value" {
		t.Fatalf("hasValue: %q", got)
	}
}

func TestApplyTheme_Errors(t *testing.T) {
	if _, err := config.Default().ApplyTheme(nil, "x", ""); err == nil {
		t.Fatalf("expected error for nil selector")
	}
	boom := errors.New("boom")
	if _, err := config.Default().ApplyTheme(&stubSelector{err: boom}, "x", ""); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped selector error, got %v", err)
	}
}

type stubSelector struct {
	selection *theme.Selection
	err       error
	name      string
	variant   string
}

func (s *stubSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	s.name, s.variant = name, variant
	return s.selection, s.err
}
