package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/goliatone/go-formstate/pkg/mask"
	"github.com/goliatone/go-formstate/pkg/validator"
)

// Result is the outcome of one checked value.
type Result struct {
	Format    string
	Value     string
	Formatted string
	Valid     bool
	Known     bool
}

// String renders the result as a single report line.
func (r Result) String() string {
	verdict := "invalid"
	if r.Valid {
		verdict = "valid"
	}
	if !r.Known {
		verdict += " (no rule)"
	}
	if r.Formatted != "" && r.Formatted != r.Value {
		return fmt.Sprintf("%s %q -> %q: %s", r.Format, r.Value, r.Formatted, verdict)
	}
	return fmt.Sprintf("%s %q: %s", r.Format, r.Value, verdict)
}

// Check validates value against format, formatting it through the format's
// mask first when one exists.
func Check(reg *validator.Registry, format, value string) Result {
	spec := mask.Resolve(format)
	res := Result{Format: spec.Format, Value: value}
	candidate := value
	if spec.HasMask() && value != "" {
		res.Formatted, _ = spec.Apply(value)
		candidate = res.Formatted
	}
	res.Valid, res.Known = reg.Validate(spec.Format, candidate)
	return res
}

// Session asks for values interactively and writes a line per checked value
// to out. An empty format asks the user to pick one first. The loop ends when
// the user declines to continue; an abort ends it without error.
func Session(ctx context.Context, driver Driver, reg *validator.Registry, format string, out io.Writer) ([]Result, error) {
	if driver == nil {
		return nil, errors.New("prompt: driver is nil")
	}
	if reg == nil {
		reg = validator.NewRegistry()
	}

	format = strings.TrimSpace(format)
	if format == "" {
		picked, err := driver.Select(ctx, SelectConfig{
			Message: "Format",
			Options: reg.Names(),
		})
		if err != nil {
			return nil, ignoreAbort(err)
		}
		format = picked
	}

	var results []Result
	for {
		value, err := driver.Input(ctx, InputConfig{Message: fmt.Sprintf("Value (%s)", format)})
		if err != nil {
			return results, ignoreAbort(err)
		}
		res := Check(reg, format, value)
		results = append(results, res)
		if _, err := fmt.Fprintln(out, res.String()); err != nil {
			return results, err
		}

		again, err := driver.Confirm(ctx, ConfirmConfig{Message: "Check another value?"})
		if err != nil {
			return results, ignoreAbort(err)
		}
		if !again {
			return results, nil
		}
	}
}

func ignoreAbort(err error) error {
	if errors.Is(err, ErrAborted) {
		return nil
	}
	return err
}
