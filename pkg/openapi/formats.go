package openapi

import (
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formstate/pkg/validator"
)

// RegisterFormats defines a kin-openapi string format for every rule in reg.
// kin-openapi keeps formats in a package-level table, so call this during
// start-up before validating concurrently. It returns the registered names.
func RegisterFormats(reg *validator.Registry) []string {
	if reg == nil {
		reg = validator.NewRegistry()
	}
	names := reg.Names()
	for _, name := range names {
		rule, ok := reg.Lookup(name)
		if !ok {
			continue
		}
		openapi3.DefineStringFormatValidator(name, openapi3.NewCallbackValidator(formatCheck(name, rule)))
	}
	return names
}

func formatCheck(name string, rule validator.Rule) func(string) error {
	return func(value string) error {
		if !rule(value) {
			return fmt.Errorf("value is not a valid %s", name)
		}
		return nil
	}
}
