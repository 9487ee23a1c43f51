package formstate_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	formstate "github.com/goliatone/go-formstate"
	"github.com/goliatone/go-formstate/pkg/config"
	"github.com/goliatone/go-formstate/pkg/openapi"
)

const form = `<form class="ads__form-needs-validation">
<div class="ads__form-control"><label>CPF</label><input name="cpf" value="11144477735"></div>
<div class="ads__form-control"><label>Name</label><input name="name"></div>
</form>`

func TestAnnotate_WritesClasses(t *testing.T) {
	var out bytes.Buffer
	session, err := formstate.Annotate(strings.NewReader(form), &out, formstate.AnnotateOptions{Submit: true})
	if err != nil {
		t.Fatalf("annotate: %v", err)
	}
	if len(session.Fields()) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(session.Fields()))
	}

	html := out.String()
	for _, want := range []string{
		`class="ads__form-needs-validation was-validated"`,
		`<div class="ads__form-control has-value">`,
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("output missing %q:\n%s", want, html)
		}
	}
}

func TestAnnotate_WithOperation(t *testing.T) {
	doc, err := openapi.NewDocument(openapi.SourceFromFile("inline.yaml"), []byte(`
openapi: 3.0.3
info: {title: t, version: "1"}
paths:
  /people:
    post:
      operationId: createPerson
      requestBody:
        content:
          application/json:
            schema:
              type: object
              required: [name]
              properties:
                cpf: {type: string, format: cpf}
                name: {type: string, x-formstate-mask: "aaaa"}
      responses:
        "200": {description: ok}
`))
	if err != nil {
		t.Fatalf("document: %v", err)
	}
	op, err := doc.Operation(context.Background(), "createPerson")
	if err != nil {
		t.Fatalf("operation: %v", err)
	}

	var out bytes.Buffer
	if _, err := formstate.Annotate(strings.NewReader(form), &out, formstate.AnnotateOptions{Operation: &op}); err != nil {
		t.Fatalf("annotate: %v", err)
	}
	html := out.String()
	for _, want := range []string{
		`data-b3-mask="cpf"`,
		`value="111.444.777-35"`,
		`data-valid="true"`,
		`data-b3-mask="aaaa" required=""`,
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("output missing %q:\n%s", want, html)
		}
	}
}

func TestBindOperation_KeepsExistingMask(t *testing.T) {
	doc, err := formstate.ParseHTML(strings.NewReader(`<div class="ads__form-control"><input name="when" data-b3-mask="time"></div>`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	op := openapi.Operation{ID: "x", Fields: []openapi.Field{{Name: "when", Format: "date"}, {Name: "missing", Format: "cpf"}}}

	if n := formstate.BindOperation(doc, op, config.Default()); n != 1 {
		t.Fatalf("expected 1 bound control, got %d", n)
	}
	f, _ := doc.Field("when")
	if got, _ := f.Attr("data-b3-mask"); got != "time" {
		t.Fatalf("existing mask overwritten: %q", got)
	}
}

func TestParseHTML_RoundTrip(t *testing.T) {
	doc, err := formstate.ParseHTML(strings.NewReader("<p>hi</p>"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !strings.Contains(doc.String(), "<p>hi</p>") {
		t.Fatalf("unexpected render: %s", doc.String())
	}
}
