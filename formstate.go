// Package formstate computes presentation state for form fields in HTML
// documents. It wires the engine to the golang.org/x/net/html document model
// so pages can be annotated server-side.
package formstate

import (
	"fmt"
	"io"

	"github.com/goliatone/go-formstate/internal/htmldom"
	"github.com/goliatone/go-formstate/pkg/config"
	"github.com/goliatone/go-formstate/pkg/engine"
	"github.com/goliatone/go-formstate/pkg/openapi"
)

// Document is the HTML document implementation of the dom contracts.
type Document = htmldom.Document

// Option aliases engine options so callers need a single import.
type Option = engine.Option

// NewEngine constructs an engine.
func NewEngine(options ...Option) *engine.Engine {
	return engine.New(options...)
}

// ParseHTML parses markup into a Document.
func ParseHTML(r io.Reader) (*Document, error) {
	return htmldom.Parse(r)
}

// AnnotateOptions controls Annotate.
type AnnotateOptions struct {
	// Submit runs submit validation on every registered form after the
	// initialisation pass.
	Submit bool
	// Operation, when set, stamps mask attributes from its request body
	// formats before the pass runs.
	Operation *openapi.Operation
}

// Annotate parses r, runs the initialisation pass and writes the document
// with computed classes to w. The returned session reports observed fields.
func Annotate(r io.Reader, w io.Writer, opts AnnotateOptions, options ...Option) (*engine.Session, error) {
	doc, err := ParseHTML(r)
	if err != nil {
		return nil, err
	}
	eng := NewEngine(options...)
	if opts.Operation != nil {
		BindOperation(doc, *opts.Operation, eng.Config())
	}

	session, err := eng.Init(doc)
	if err != nil {
		return nil, err
	}
	if opts.Submit {
		for _, form := range session.Forms() {
			session.HandleSubmit(form)
		}
	}
	for _, f := range session.Fields() {
		if _, ok := f.Attr(eng.Config().MaskAttr); ok && f.Value() != "" {
			session.HandleChange(f)
		}
	}
	session.Close()

	if err := doc.Render(w); err != nil {
		return nil, fmt.Errorf("formstate: %w", err)
	}
	return session, nil
}

// BindOperation copies the format identifier of each operation field onto the
// matching control as a mask attribute and marks required properties. It
// returns the number of controls updated. Existing mask attributes win.
func BindOperation(doc *Document, op openapi.Operation, cfg config.Config) int {
	cfg = cfg.Normalize()
	bound := 0
	for _, field := range op.Fields {
		control, ok := doc.Field(field.Name)
		if !ok {
			continue
		}
		if _, exists := control.Attr(cfg.MaskAttr); !exists {
			control.SetAttr(cfg.MaskAttr, field.Format)
		}
		if field.Required && !control.Required() {
			control.SetAttr("required", "")
		}
		bound++
	}
	return bound
}
