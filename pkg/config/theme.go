package config

import (
	"errors"
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formstate/pkg/state"
)

// ThemeTokenPrefix namespaces the manifest tokens that override class names,
// e.g. "formstate.class.isInvalid".
const ThemeTokenPrefix = "formstate.class."

// ApplyTheme resolves a theme selection and overlays its class tokens on c.
// Variant tokens win over manifest tokens. Unknown flags are ignored so a
// manifest can carry tokens for newer releases.
func (c Config) ApplyTheme(selector theme.ThemeSelector, name, variant string) (Config, error) {
	if selector == nil {
		return c, errors.New("config: theme selector is nil")
	}
	selection, err := selector.Select(strings.TrimSpace(name), strings.TrimSpace(variant))
	if err != nil {
		return c, fmt.Errorf("config: select theme %q: %w", name, err)
	}
	if selection == nil || selection.Manifest == nil {
		return c, nil
	}
	return c.WithTokens(themeTokens(selection)), nil
}

// WithTokens overlays class names from a flat token map.
func (c Config) WithTokens(tokens map[string]string) Config {
	overrides := make(state.ClassNames)
	for key, value := range tokens {
		if !strings.HasPrefix(key, ThemeTokenPrefix) {
			continue
		}
		flag, ok := lookupFlag(strings.TrimPrefix(key, ThemeTokenPrefix))
		if !ok {
			continue
		}
		overrides[flag] = value
	}
	if len(overrides) == 0 {
		return c
	}
	c.ClassNames = c.ClassNames.Merge(overrides)
	return c
}

func themeTokens(selection *theme.Selection) map[string]string {
	manifest := selection.Manifest
	tokens := make(map[string]string, len(manifest.Tokens))
	for k, v := range manifest.Tokens {
		tokens[k] = v
	}
	if variant, ok := manifest.Variants[selection.Variant]; ok {
		for k, v := range variant.Tokens {
			tokens[k] = v
		}
	}
	return tokens
}
