// Package report summarises the derived state of every field observed by an
// engine session and renders it through the template engine.
package report

import (
	"embed"
	"fmt"
	"io"
	"io/fs"

	"github.com/goliatone/go-formstate/pkg/engine"
	"github.com/goliatone/go-formstate/pkg/render/template"
	"github.com/goliatone/go-formstate/pkg/render/template/gotemplate"
	"github.com/goliatone/go-formstate/pkg/state"
)

//go:embed templates/*.tpl
var templates embed.FS

// TemplateName is the embedded report template.
const TemplateName = "report"

// Flag is one derived flag of a row.
type Flag struct {
	Name string `json:"name"`
	On   bool   `json:"on"`
}

// Row describes one observed field.
type Row struct {
	Field   string   `json:"field"`
	Type    string   `json:"type"`
	Format  string   `json:"format,omitempty"`
	Value   string   `json:"value"`
	Classes []string `json:"classes"`
	Flags   []Flag   `json:"flags"`
}

// Report is the data handed to the template.
type Report struct {
	Source string `json:"source"`
	Forms  int    `json:"forms"`
	Rows   []Row  `json:"rows"`
}

// Build collects a Report from session. Flags are listed in render order.
func Build(source string, session *engine.Session, maskAttr string) Report {
	rep := Report{Source: source}
	if session == nil {
		return rep
	}
	rep.Forms = len(session.Forms())
	for _, f := range session.Fields() {
		derived := session.State(f)
		row := Row{
			Field: f.Name(),
			Type:  f.Type(),
			Value: f.Value(),
		}
		if format, ok := f.Attr(maskAttr); ok {
			row.Format = format
		}
		if c := f.Container(); c != nil {
			row.Classes = c.Classes()
		}
		for _, flag := range state.AllFlags {
			row.Flags = append(row.Flags, Flag{Name: string(flag), On: derived.Get(flag)})
		}
		rep.Rows = append(rep.Rows, row)
	}
	return rep
}

// NewRenderer returns a template engine preloaded with the embedded report
// template. A directory passed with gotemplate.WithBaseDir is searched first,
// so a "report" template there replaces the embedded one.
func NewRenderer(options ...gotemplate.Option) (*gotemplate.Engine, error) {
	sub, err := fs.Sub(templates, "templates")
	if err != nil {
		return nil, fmt.Errorf("report: templates: %w", err)
	}
	opts := append([]gotemplate.Option{gotemplate.WithFS(sub)}, options...)
	return gotemplate.New(opts...)
}

// Render writes rep through renderer's report template.
func Render(renderer template.TemplateRenderer, rep Report, w io.Writer) error {
	if renderer == nil {
		return fmt.Errorf("report: renderer is nil")
	}
	if _, err := renderer.RenderTemplate(TemplateName, rep, w); err != nil {
		return fmt.Errorf("report: render: %w", err)
	}
	return nil
}
