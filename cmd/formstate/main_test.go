package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCheck_FormatsAndValidates(t *testing.T) {
	out, err := execute(t, "check", "cpf", "11144477735")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if want := `cpf "11144477735" -> "111.444.777-35": valid`; !strings.Contains(out, want) {
		t.Fatalf("output %q missing %q", out, want)
	}

	if _, err := execute(t, "check", "cpf", "12345678900"); err == nil {
		t.Fatalf("expected invalid cpf to fail the command")
	}
}

func TestFormats_ListsFields(t *testing.T) {
	spec := filepath.Join("..", "..", "pkg", "openapi", "testdata", "customers.yaml")
	out, err := execute(t, "formats", spec, "createCustomer")
	if err != nil {
		t.Fatalf("formats: %v", err)
	}
	for _, want := range []string{"FIELD", "cpf", "999.999.999-99", "99999-999"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}

	if _, err := execute(t, "formats", spec, "missingOperation"); err == nil {
		t.Fatalf("expected unknown operation to fail")
	}
}

func TestAnnotate_WritesOutputFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.html")
	page := `<form class="needs-validation"><div class="ads__form-control"><input name="cpf" data-b3-mask="cpf" value="11144477735"></div></form>`
	if err := os.WriteFile(in, []byte(page), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	outPath := filepath.Join(dir, "out.html")

	if _, err := execute(t, "annotate", in, "-o", outPath); err != nil {
		t.Fatalf("annotate: %v", err)
	}
	got, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	html := string(got)
	for _, want := range []string{`value="111.444.777-35"`, `data-valid="true"`, "has-value"} {
		if !strings.Contains(html, want) {
			t.Fatalf("output missing %q:\n%s", want, html)
		}
	}
}

func TestRoot_MissingConfigFails(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.html")
	if err := os.WriteFile(in, []byte(`<p></p>`), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	if _, err := execute(t, "--config", filepath.Join(dir, "absent.yaml"), "inspect", in); err == nil {
		t.Fatalf("expected missing config file to fail")
	}
}
