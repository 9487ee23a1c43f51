// Package engine keeps the container classes of observed form fields in sync
// with the fields themselves. Init runs the initial derivation pass over a
// document and returns a Session; browser events map to the Session's Handle*
// methods, all of which run synchronously and recompute flags from scratch.
package engine

import (
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	"github.com/goliatone/go-formstate/pkg/config"
	"github.com/goliatone/go-formstate/pkg/dom"
	"github.com/goliatone/go-formstate/pkg/state"
	"github.com/goliatone/go-formstate/pkg/validator"
)

// Option customises an Engine.
type Option func(*Engine)

// WithConfig replaces the default configuration. Empty settings fall back to
// their defaults.
func WithConfig(cfg config.Config) Option {
	return func(e *Engine) {
		e.cfg = cfg.Normalize()
	}
}

// WithLogger sets the logger used for trigger diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithRegistry sets the validator registry consulted by masked validation.
func WithRegistry(reg *validator.Registry) Option {
	return func(e *Engine) {
		if reg != nil {
			e.registry = reg
		}
	}
}

// WithLabelPolicy overrides the policy used to clean file names before they
// are written into labels.
func WithLabelPolicy(policy *bluemonday.Policy) Option {
	return func(e *Engine) {
		if policy != nil {
			e.labelPolicy = policy
		}
	}
}

// Engine holds configuration shared by every Session. It carries no
// per-document state and may be reused.
type Engine struct {
	cfg         config.Config
	registry    *validator.Registry
	logger      *zap.Logger
	labelPolicy *bluemonday.Policy
}

// New constructs an Engine.
func New(options ...Option) *Engine {
	e := &Engine{
		cfg:    config.Default(),
		logger: zap.NewNop(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(e)
		}
	}
	if e.registry == nil {
		e.registry = validator.NewRegistry()
	}
	if e.labelPolicy == nil {
		e.labelPolicy = defaultLabelPolicy()
	}
	return e
}

// Config returns the effective configuration.
func (e *Engine) Config() config.Config {
	return e.cfg
}

// Registry returns the validator registry.
func (e *Engine) Registry() *validator.Registry {
	return e.registry
}

// Init selects the observed fields of doc, renders their structural flags,
// subscribes to their attribute changes and records file labels.
func (e *Engine) Init(doc dom.Document) (*Session, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}

	s := &Session{
		engine: e,
		seen:   make(map[dom.Field]struct{}),
		labels: make(map[dom.Field]string),
	}

	for _, f := range doc.QueryFields(e.cfg.VisibleSelector) {
		if excluded(f) {
			e.logger.Debug("field skipped by visibility filter", zap.String("field", f.Name()))
			continue
		}
		s.attach(f)
	}
	for _, f := range doc.QueryFields(e.cfg.AlwaysSelector) {
		s.attach(f)
	}
	s.forms = doc.QueryForms(e.cfg.FormClasses...)

	e.logger.Debug("session initialised",
		zap.Int("fields", len(s.fields)),
		zap.Int("forms", len(s.forms)),
	)
	return s, nil
}

// excluded reports whether the visibility filter drops f: it has no layout
// box and its computed visibility is hidden.
func excluded(f dom.Field) bool {
	return !f.Rendered() && f.VisibilityHidden()
}

func (e *Engine) names() state.ClassNames {
	return e.cfg.ClassNames
}
