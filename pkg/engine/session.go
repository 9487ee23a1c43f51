package engine

import (
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-formstate/pkg/dom"
	"github.com/goliatone/go-formstate/pkg/state"
)

// Session is the result of one initialisation pass. It owns the attribute
// subscriptions and the file label snapshots for the fields it observes.
// Field implementations must be comparable since they key the snapshots.
type Session struct {
	engine *Engine

	fields []dom.Field
	forms  []dom.Form
	subs   []dom.Subscription

	seen   map[dom.Field]struct{}
	labels map[dom.Field]string
}

// Fields returns the observed fields in selection order.
func (s *Session) Fields() []dom.Field {
	return append([]dom.Field(nil), s.fields...)
}

// Forms returns the forms registered for submit handling.
func (s *Session) Forms() []dom.Form {
	return append([]dom.Form(nil), s.forms...)
}

// Close cancels every attribute subscription. Handlers keep working on
// explicit calls.
func (s *Session) Close() {
	if s == nil {
		return
	}
	for _, sub := range s.subs {
		sub.Cancel()
	}
	s.subs = nil
}

func (s *Session) attach(f dom.Field) {
	if f == nil {
		return
	}
	if _, dup := s.seen[f]; dup {
		return
	}
	s.seen[f] = struct{}{}
	s.fields = append(s.fields, f)

	fs := s.update(f, state.StructuralFlags)
	s.propagateSearch(f, fs)

	s.subs = append(s.subs, f.Observe(func(field dom.Field, attr string) {
		s.HandleAttributeMutation(field, attr)
	}))

	s.snapshotLabel(f)
}

// HandleChange reacts to a committed value change.
func (s *Session) HandleChange(f dom.Field) {
	if f == nil {
		return
	}
	cfg := s.engine.cfg
	s.engine.logger.Debug("change", zap.String("field", f.Name()))

	if s.isFile(f) {
		s.writeFileLabel(f)
	}
	if id, ok := f.Attr(cfg.MaskAttr); ok && strings.TrimSpace(id) != "" {
		s.validateMasked(f, strings.TrimSpace(id))
	}

	s.update(f, state.ChangeFlags)

	if f.Required() && s.formValidated(f) {
		s.update(f, state.ValidityFlags)
	}
}

// HandleFocus marks the field container focused.
func (s *Session) HandleFocus(f dom.Field) {
	s.setFocus(f, true)
}

// HandleBlur clears the focused state.
func (s *Session) HandleBlur(f dom.Field) {
	s.setFocus(f, false)
}

func (s *Session) setFocus(f dom.Field, focused bool) {
	if f == nil {
		return
	}
	s.update(f, state.FocusFlags, func(p *state.Props) { p.Focused = focused })
}

// HandleAttributeMutation reacts to an observed attribute change. Only the
// disabled attribute affects rendered state.
func (s *Session) HandleAttributeMutation(f dom.Field, attr string) {
	if f == nil || !strings.EqualFold(attr, "disabled") {
		return
	}
	s.engine.logger.Debug("disabled changed",
		zap.String("field", f.Name()),
		zap.Bool("disabled", f.Disabled()),
	)
	s.update(f, state.DisableFlags)
}

// HandleSubmit runs submit validation for form. It returns false when the
// caller must cancel the submission. The form is marked validated on every
// attempt and each required, non-hidden field has its validity refreshed.
func (s *Session) HandleSubmit(form dom.Form) bool {
	if form == nil {
		return true
	}
	valid := form.CheckValidity()
	if !valid {
		s.engine.logger.Info("submit cancelled: form failed validation")
	}

	for _, f := range form.Fields() {
		if f.Required() && !f.Hidden() {
			s.update(f, state.ValidityFlags)
		}
	}
	form.ToggleClass(s.engine.cfg.ValidatedClass, true)
	return valid
}

// Refresh re-derives and renders every flag for f.
func (s *Session) Refresh(f dom.Field) {
	if f == nil {
		return
	}
	fs := s.update(f, state.AllFlags)
	s.propagateSearch(f, fs)
}

// State derives the current flags for f without touching the document.
func (s *Session) State(f dom.Field) state.FlagSet {
	if f == nil {
		return state.FlagSet{}
	}
	return state.Derive(s.props(f))
}

// update derives flags for f and renders the selected subset onto its
// container.
func (s *Session) update(f dom.Field, flags []state.Flag, adjust ...func(*state.Props)) state.FlagSet {
	p := s.props(f)
	for _, fn := range adjust {
		fn(&p)
	}
	fs := state.Derive(p)

	c := f.Container()
	if c == nil {
		return fs
	}
	delta := state.Render(fs, s.engine.names(), flags)
	for _, class := range delta.Remove {
		c.ToggleClass(class, false)
	}
	for _, class := range delta.Add {
		c.ToggleClass(class, true)
	}
	return fs
}

func (s *Session) props(f dom.Field) state.Props {
	cfg := s.engine.cfg
	names := s.engine.names()

	p := state.Props{
		Value:       f.Value(),
		Disabled:    f.Disabled(),
		Multiple:    f.Multiple(),
		Placeholder: f.Placeholder(),
		Type:        f.Type(),
		Datepicker:  f.HasClass(cfg.DatepickerClass),
		FieldLarge:  f.HasClass(cfg.FieldLargeClass),
		FieldSmall:  f.HasClass(cfg.FieldSmallClass),
		Record:      s.record(f),
		NativeValid: f.CheckValidity(),
	}
	if c := f.Container(); c != nil {
		p.LabelCount = len(c.Labels())
		p.Focused = c.HasClass(names.Class(state.FlagIsFocused))
		p.ContainerLarge = c.HasClass(names.Class(state.FlagLarge))
		p.ContainerSmall = c.HasClass(names.Class(state.FlagSmall))
	}
	return p
}

// record reads the stored validity verdict. Any value other than "true"
// counts as a failed check.
func (s *Session) record(f dom.Field) *state.ValidityRecord {
	cfg := s.engine.cfg
	raw, ok := f.Attr(cfg.ValidAttr)
	if !ok {
		return nil
	}
	result, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		result = false
	}
	rule, _ := f.Attr(cfg.ValidRuleAttr)
	return &state.ValidityRecord{Rule: rule, Result: result}
}

// propagateSearch mirrors the search flag onto an enclosing input group.
func (s *Session) propagateSearch(f dom.Field, fs state.FlagSet) {
	c := f.Container()
	if c == nil {
		return
	}
	group := c.Parent()
	if group == nil || !group.HasClass(s.engine.cfg.InputGroupClass) {
		return
	}
	group.ToggleClass(s.engine.names().Class(state.FlagIsSearch), fs.IsSearch)
}

func (s *Session) formValidated(f dom.Field) bool {
	form := f.Form()
	return form != nil && form.HasClass(s.engine.cfg.ValidatedClass)
}
