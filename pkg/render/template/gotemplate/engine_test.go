package gotemplate_test

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/goliatone/go-formstate/pkg/render/template/gotemplate"
)

func newEngine(t *testing.T, opts ...gotemplate.Option) *gotemplate.Engine {
	t.Helper()
	engine, err := gotemplate.New(append([]gotemplate.Option{gotemplate.WithFS(os.DirFS("testdata"))}, opts...)...)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func TestNew_RequiresSource(t *testing.T) {
	if _, err := gotemplate.New(); err == nil {
		t.Fatalf("expected error without template source")
	}
}

func TestRenderTemplate_WritesToOutputs(t *testing.T) {
	engine := newEngine(t)

	var buf bytes.Buffer
	got, err := engine.RenderTemplate("hello", map[string]any{"name": "Ada"}, &buf)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "Hello Ada!" || buf.String() != got {
		t.Fatalf("result %q, writer %q", got, buf.String())
	}

	if _, err := engine.RenderTemplate("missing", nil); err == nil {
		t.Fatalf("expected error for missing template")
	}
}

func TestRender_DispatchesInlineContent(t *testing.T) {
	engine := newEngine(t)

	type row struct {
		Name  string `json:"name"`
		Valid bool   `json:"valid"`
	}
	got, err := engine.Render("{% for r in rows %}{{ r.name }}={{ r.valid|mark }};{% endfor %}", map[string]any{
		"rows": []row{{Name: "cpf", Valid: true}, {Name: "date"}},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "cpf=x;date=.;" {
		t.Fatalf("got %q", got)
	}
}

func TestGlobalContextAndFilter(t *testing.T) {
	engine := newEngine(t, gotemplate.WithGlobalData(map[string]any{"env": "test"}))

	err := engine.RegisterFilter("shout", func(input any, _ any) (any, error) {
		return strings.ToUpper(fmt.Sprint(input)) + "!", nil
	})
	if err != nil && !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("register filter: %v", err)
	}

	got, err := engine.RenderTemplate("shout", map[string]any{"name": "ada"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "test:ADA!" {
		t.Fatalf("got %q", got)
	}

	if err := engine.RegisterFilter("", nil); err == nil {
		t.Fatalf("expected error for empty filter")
	}
}

func TestRegisterFilter_PropagatesErrors(t *testing.T) {
	engine := newEngine(t)
	boom := errors.New("boom")
	err := engine.RegisterFilter("explode", func(any, any) (any, error) { return nil, boom })
	if err != nil && !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("register: %v", err)
	}
	if _, err := engine.RenderString("{{ 1|explode }}", nil); err == nil {
		t.Fatalf("expected filter error")
	}
}
