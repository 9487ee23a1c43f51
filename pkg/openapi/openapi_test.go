package openapi_test

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formstate/pkg/openapi"
	"github.com/goliatone/go-formstate/pkg/validator"
)

func loadCustomers(t *testing.T) openapi.Document {
	t.Helper()
	doc, err := openapi.Load(context.Background(), openapi.SourceFromFS("customers.yaml"), os.DirFS("testdata"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return doc
}

func TestOperations_FieldFormats(t *testing.T) {
	doc := loadCustomers(t)

	ops, err := doc.Operations(context.Background())
	if err != nil {
		t.Fatalf("operations: %v", err)
	}
	if _, ok := ops["get:/customers/{id}"]; !ok {
		t.Fatalf("expected synthesised id for anonymous operation, got %v", keys(ops))
	}

	op := ops["createCustomer"]
	if op.Method != "POST" || op.Path != "/customers" {
		t.Fatalf("unexpected operation: %+v", op)
	}
	want := []openapi.Field{
		{Name: "birth", Format: "date"},
		{Name: "cpf", Format: "cpf", Required: true},
		{Name: "phone", Format: "phone"},
		{Name: "zip", Format: "cep"},
	}
	if diff := cmp.Diff(want, op.Fields); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
}

func TestOperation_ValidateUsesRegisteredFormats(t *testing.T) {
	names := openapi.RegisterFormats(validator.NewRegistry())
	if diff := cmp.Diff([]string{"cnpj", "cpf", "date", "email", "phone", "time"}, names); diff != "" {
		t.Fatalf("registered names mismatch (-want +got):\n%s", diff)
	}

	op, err := loadCustomers(t).Operation(context.Background(), "createCustomer")
	if err != nil {
		t.Fatalf("operation: %v", err)
	}

	valid := map[string]any{"name": "Ada", "cpf": "111.444.777-35", "birth": "29/02/2020"}
	if err := op.Validate(valid); err != nil {
		t.Fatalf("expected valid payload, got %v", err)
	}

	invalid := map[string]any{"name": "Ada", "cpf": "111.444.777-34"}
	err = op.Validate(invalid)
	if err == nil || !strings.Contains(err.Error(), "cpf") {
		t.Fatalf("expected cpf format error, got %v", err)
	}

	badDate := map[string]any{"name": "Ada", "cpf": "11144477735", "birth": "31/02/2021"}
	if err := op.Validate(badDate); err == nil {
		t.Fatalf("expected date format error")
	}

	trailing := map[string]any{"name": "Ada", "cpf": "11144477735", "birth": "12/05/2020 junk"}
	if err := op.Validate(trailing); err == nil {
		t.Fatalf("expected date with trailing text to be rejected")
	}
}

func TestOperation_NotFound(t *testing.T) {
	_, err := loadCustomers(t).Operation(context.Background(), "deleteCustomer")
	if err == nil || !strings.Contains(err.Error(), `"deleteCustomer" not found`) {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestLoad_Errors(t *testing.T) {
	ctx := context.Background()
	if _, err := openapi.Load(ctx, nil, nil); err == nil {
		t.Fatalf("expected error for nil source")
	}
	if _, err := openapi.Load(ctx, openapi.SourceFromFS("customers.yaml"), nil); err == nil {
		t.Fatalf("expected error without filesystem")
	}
	if _, err := openapi.Load(ctx, openapi.SourceFromFile("testdata/missing.yaml"), nil); err == nil {
		t.Fatalf("expected error for missing file")
	}

	doc, err := openapi.NewDocument(openapi.SourceFromFile("inline.yaml"), []byte("openapi: 3.0.3\ninfo: {title: x, version: '1'}\npaths: {}\n"))
	if err != nil {
		t.Fatalf("new document: %v", err)
	}
	if _, err := doc.Operations(ctx); err == nil {
		t.Fatalf("expected error for document without paths")
	}
}

func keys(m map[string]openapi.Operation) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
