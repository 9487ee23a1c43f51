package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// MaskExtension lets a schema property name its format identifier explicitly,
// taking precedence over the standard format keyword.
const MaskExtension = "x-formstate-mask"

// Document wraps a raw OpenAPI payload and its origin.
type Document struct {
	source Source
	raw    []byte
}

// NewDocument constructs a Document, copying raw.
func NewDocument(src Source, raw []byte) (Document, error) {
	if src == nil {
		return Document{}, errors.New("openapi: source is required")
	}
	if len(raw) == 0 {
		return Document{}, errors.New("openapi: raw document is empty")
	}
	return Document{source: src, raw: append([]byte(nil), raw...)}, nil
}

// Location returns the origin identifier.
func (d Document) Location() string {
	if d.source == nil {
		return ""
	}
	return d.source.Location()
}

// Field is a request body property carrying a format identifier.
type Field struct {
	Name     string
	Format   string
	Required bool
}

// Operation is the subset of an OpenAPI operation the annotator needs.
type Operation struct {
	ID     string
	Method string
	Path   string
	Fields []Field

	body *openapi3.Schema
}

// Validate checks a decoded request body against the operation schema with
// format validation enabled.
func (op Operation) Validate(body map[string]any) error {
	if op.body == nil {
		return fmt.Errorf("openapi: operation %q has no request body schema", op.ID)
	}
	if err := op.body.VisitJSON(body, openapi3.EnableFormatValidation()); err != nil {
		return fmt.Errorf("openapi: operation %q: %w", op.ID, err)
	}
	return nil
}

// Operations parses the document and returns its operations keyed by
// operationId. Operations without an id are keyed "method:path".
func (d Document) Operations(ctx context.Context) (map[string]Operation, error) {
	if len(d.raw) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}
	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(d.raw)
	if err != nil {
		return nil, fmt.Errorf("openapi: load %s: %w", d.Location(), err)
	}
	if spec.Paths == nil || spec.Paths.Len() == 0 {
		return nil, fmt.Errorf("openapi: %s does not contain any paths", d.Location())
	}

	out := make(map[string]Operation)
	for path, item := range spec.Paths.Map() {
		if item == nil {
			continue
		}
		for method, operation := range item.Operations() {
			if operation == nil {
				continue
			}
			op := Operation{
				ID:     operation.OperationID,
				Method: strings.ToUpper(method),
				Path:   path,
			}
			if op.ID == "" {
				op.ID = strings.ToLower(method) + ":" + path
			}
			op.body = requestSchema(operation.RequestBody)
			op.Fields = FieldFormats(op.body)
			out[op.ID] = op
		}
	}
	return out, nil
}

// Operation returns a single operation by id.
func (d Document) Operation(ctx context.Context, id string) (Operation, error) {
	ops, err := d.Operations(ctx)
	if err != nil {
		return Operation{}, err
	}
	op, ok := ops[strings.TrimSpace(id)]
	if !ok {
		return Operation{}, fmt.Errorf("openapi: operation %q not found in %s", id, d.Location())
	}
	return op, nil
}

func requestSchema(body *openapi3.RequestBodyRef) *openapi3.Schema {
	if body == nil || body.Value == nil {
		return nil
	}
	content := body.Value.Content
	for _, mediaType := range []string{"application/json", "application/x-www-form-urlencoded", "multipart/form-data"} {
		if mt, ok := content[mediaType]; ok && mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	for _, mt := range content {
		if mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	return nil
}

// FieldFormats lists the top-level properties of schema that declare a format
// identifier, sorted by name.
func FieldFormats(schema *openapi3.Schema) []Field {
	if schema == nil || len(schema.Properties) == 0 {
		return nil
	}
	required := make(map[string]bool, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = true
	}

	var out []Field
	for name, ref := range schema.Properties {
		if ref == nil || ref.Value == nil {
			continue
		}
		format := propertyFormat(ref.Value)
		if format == "" {
			continue
		}
		out = append(out, Field{Name: name, Format: format, Required: required[name]})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func propertyFormat(schema *openapi3.Schema) string {
	if raw, ok := schema.Extensions[MaskExtension]; ok {
		if s, ok := raw.(string); ok && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
	}
	return strings.TrimSpace(schema.Format)
}
