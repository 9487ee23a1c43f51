package report_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-formstate/internal/htmldom"
	"github.com/goliatone/go-formstate/pkg/engine"
	"github.com/goliatone/go-formstate/pkg/render/template/gotemplate"
	"github.com/goliatone/go-formstate/pkg/report"
)

const page = `<form class="needs-validation">
<div class="ads__form-control"><label>CPF</label><input name="cpf" data-b3-mask="cpf" value="111.444.777-35"></div>
<div class="ads__form-control"><textarea name="notes"></textarea></div>
</form>`

func TestBuildAndRender(t *testing.T) {
	doc, err := htmldom.ParseString(page)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	session, err := engine.New().Init(doc)
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	defer session.Close()

	rep := report.Build("page.html", session, "data-b3-mask")
	if rep.Forms != 1 || len(rep.Rows) != 2 {
		t.Fatalf("unexpected report: %+v", rep)
	}
	if rep.Rows[0].Format != "cpf" || rep.Rows[0].Value != "111.444.777-35" {
		t.Fatalf("row 0: %+v", rep.Rows[0])
	}

	renderer, err := report.NewRenderer()
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}
	var buf bytes.Buffer
	if err := report.Render(renderer, rep, &buf); err != nil {
		t.Fatalf("render: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"page.html: 2 field(s), 1 form(s)",
		"cpf [text] format=cpf",
		"classes:   ads__form-control has-value",
		"hasValue=x",
		"notes [textarea]",
		"notLabel=x",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q:\n%s", want, out)
		}
	}
}

func TestNewRenderer_CustomTemplateDir(t *testing.T) {
	dir := t.TempDir()
	custom := "{{ source }} has {{ rows|length }} rows"
	if err := os.WriteFile(filepath.Join(dir, "report.html"), []byte(custom), 0o644); err != nil {
		t.Fatalf("write template: %v", err)
	}

	renderer, err := report.NewRenderer(gotemplate.WithBaseDir(dir), gotemplate.WithExtension("html"))
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}
	var buf bytes.Buffer
	if err := report.Render(renderer, report.Report{Source: "custom.html", Rows: []report.Row{}}, &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	if got := buf.String(); got != "custom.html has 0 rows" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestBuild_NilSession(t *testing.T) {
	rep := report.Build("x", nil, "data-b3-mask")
	if rep.Source != "x" || len(rep.Rows) != 0 {
		t.Fatalf("unexpected report: %+v", rep)
	}
}
