package engine

import (
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-formstate/pkg/dom"
	"github.com/goliatone/go-formstate/pkg/mask"
	"github.com/goliatone/go-formstate/pkg/state"
)

// validateMasked checks f against the rule named by id, stores the verdict,
// renders validity and rewrites the value through the mask. The verdict is
// computed on the masked text when a mask applies, since that is what the
// user sees in the field.
func (s *Session) validateMasked(f dom.Field, id string) {
	cfg := s.engine.cfg
	spec := mask.Resolve(id)
	if reverse, ok := s.reverse(f); ok {
		spec.Reverse = reverse
	}

	raw := f.Value()
	display := raw
	complete := true
	if spec.HasMask() && raw != "" {
		display, complete = spec.Apply(raw)
	}

	result, known := s.engine.registry.Validate(spec.Format, display)
	f.SetAttr(cfg.ValidAttr, strconv.FormatBool(result))
	f.SetAttr(cfg.ValidRuleAttr, spec.Format)
	s.update(f, state.ValidityFlags)

	if spec.HasMask() {
		if !complete && cfg.ClearIfNotMatch && !spec.Reverse {
			display = ""
		}
		if display != raw {
			f.SetValue(display)
		}
	}

	s.engine.logger.Debug("masked validation",
		zap.String("field", f.Name()),
		zap.String("format", spec.Format),
		zap.Bool("known", known),
		zap.Bool("valid", result),
	)
}

// reverse reads the reverse attribute. A bare attribute means true; ok is
// false when the attribute is absent or unparsable so the mask default holds.
func (s *Session) reverse(f dom.Field) (reverse, ok bool) {
	raw, present := f.Attr(s.engine.cfg.ReverseAttr)
	if !present {
		return false, false
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return true, true
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}
