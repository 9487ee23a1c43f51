package htmldom

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"

	"github.com/goliatone/go-formstate/pkg/dom"
)

// htmlEmail is the WHATWG "valid e-mail address" production used by browsers
// for type=email inputs.
var htmlEmail = regexp.MustCompile("^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$")

// Field wraps an input, select or textarea element.
type Field struct {
	element
}

var _ dom.Field = Field{}

func newField(d *Document, n *html.Node) Field {
	return Field{element{doc: d, node: n}}
}

// Tag returns the element name.
func (f Field) Tag() string {
	if f.node == nil {
		return ""
	}
	return f.node.Data
}

// Name returns the name attribute, or the id when unnamed.
func (f Field) Name() string {
	if name := attr(f.node, "name"); name != "" {
		return name
	}
	return attr(f.node, "id")
}

// Type mirrors the DOM type property.
func (f Field) Type() string {
	switch f.Tag() {
	case "select":
		if f.Multiple() {
			return "select-multiple"
		}
		return "select-one"
	case "textarea":
		return "textarea"
	}
	t := strings.ToLower(strings.TrimSpace(attr(f.node, "type")))
	if t == "" {
		return "text"
	}
	return t
}

// Value mirrors the DOM value property.
func (f Field) Value() string {
	switch f.Tag() {
	case "textarea":
		return textContent(f.node)
	case "select":
		return f.selectValue()
	default:
		return attr(f.node, "value")
	}
}

// SetValue writes the value property. Like the DOM, this is not reported to
// attribute observers.
func (f Field) SetValue(value string) {
	if f.node == nil {
		return
	}
	switch f.Tag() {
	case "textarea":
		replaceText(f.node, value)
	case "select":
		for _, opt := range f.options() {
			if optionValue(opt) == value {
				writeAttr(opt, "selected", "")
			} else {
				removeAttrSilently(opt, "selected")
			}
		}
	default:
		writeAttr(f.node, "value", value)
	}
}

func (f Field) Disabled() bool {
	_, ok := lookupAttr(f.node, "disabled")
	return ok
}

func (f Field) Required() bool {
	_, ok := lookupAttr(f.node, "required")
	return ok
}

func (f Field) Multiple() bool {
	_, ok := lookupAttr(f.node, "multiple")
	return ok
}

func (f Field) Placeholder() string {
	return attr(f.node, "placeholder")
}

func (f Field) Hidden() bool {
	_, ok := lookupAttr(f.node, "hidden")
	return ok
}

// Container returns the parent element.
func (f Field) Container() dom.Container {
	parent := parentElement(f.node)
	if parent == nil {
		return nil
	}
	return Container{element{doc: f.doc, node: parent}}
}

// Form returns the nearest enclosing form.
func (f Field) Form() dom.Form {
	for p := parentElement(f.node); p != nil; p = parentElement(p) {
		if p.Data == "form" {
			return Form{element{doc: f.doc, node: p}}
		}
	}
	return nil
}

// Observe registers fn for attribute changes on the field.
func (f Field) Observe(fn dom.AttributeObserver) dom.Subscription {
	if f.doc == nil || f.node == nil {
		return dom.SubscriptionFunc(nil)
	}
	return f.doc.observe(f.node, fn)
}

// Rendered approximates "has a layout box": the element and its ancestors are
// neither hidden nor display:none, and the input is not type=hidden.
func (f Field) Rendered() bool {
	if f.Tag() == "input" && f.Type() == "hidden" {
		return false
	}
	for n := f.node; n != nil && n.Type == html.ElementNode; n = parentElement(n) {
		if _, hidden := lookupAttr(n, "hidden"); hidden {
			return false
		}
		if styleValue(n, "display") == "none" {
			return false
		}
	}
	return true
}

// VisibilityHidden resolves the inherited visibility property from inline
// styles.
func (f Field) VisibilityHidden() bool {
	for n := f.node; n != nil && n.Type == html.ElementNode; n = parentElement(n) {
		switch styleValue(n, "visibility") {
		case "hidden", "collapse":
			return true
		case "visible":
			return false
		}
	}
	return false
}

// CheckValidity applies the constraints browsers enforce on submit: required,
// pattern, minlength/maxlength, type=email and type=number. Disabled controls
// are barred from validation.
func (f Field) CheckValidity() bool {
	if f.node == nil || f.Disabled() {
		return true
	}
	typ := f.Type()
	switch typ {
	case "hidden", "submit", "button", "reset", "image":
		return true
	case "checkbox", "radio":
		if !f.Required() {
			return true
		}
		_, checked := lookupAttr(f.node, "checked")
		return checked
	}

	value := f.Value()
	if value == "" {
		return !f.Required()
	}

	if pattern, ok := lookupAttr(f.node, "pattern"); ok && f.Tag() == "input" {
		re, err := regexp.Compile("^(?:" + pattern + ")$")
		if err == nil && !re.MatchString(value) {
			return false
		}
	}

	length := utf8.RuneCountInString(value)
	if limit, ok := intAttr(f.node, "minlength"); ok && length < limit {
		return false
	}
	if limit, ok := intAttr(f.node, "maxlength"); ok && length > limit {
		return false
	}

	switch typ {
	case "email":
		if f.Multiple() {
			for _, part := range strings.Split(value, ",") {
				if !htmlEmail.MatchString(strings.TrimSpace(part)) {
					return false
				}
			}
			return true
		}
		return htmlEmail.MatchString(value)
	case "number", "range":
		n, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return false
		}
		if limit, ok := floatAttr(f.node, "min"); ok && n < limit {
			return false
		}
		if limit, ok := floatAttr(f.node, "max"); ok && n > limit {
			return false
		}
	}
	return true
}

func (f Field) options() []*html.Node {
	var out []*html.Node
	walk(f.node, func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "option" {
			out = append(out, n)
		}
	})
	return out
}

func (f Field) selectValue() string {
	opts := f.options()
	for _, opt := range opts {
		if _, selected := lookupAttr(opt, "selected"); selected {
			return optionValue(opt)
		}
	}
	if f.Multiple() || len(opts) == 0 {
		return ""
	}
	return optionValue(opts[0])
}

func optionValue(opt *html.Node) string {
	if value, ok := lookupAttr(opt, "value"); ok {
		return value
	}
	return strings.TrimSpace(textContent(opt))
}

func removeAttrSilently(n *html.Node, name string) {
	kept := n.Attr[:0]
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == name {
			continue
		}
		kept = append(kept, a)
	}
	n.Attr = kept
}

func styleValue(n *html.Node, property string) string {
	style := attr(n, "style")
	if style == "" {
		return ""
	}
	value := ""
	for _, decl := range strings.Split(style, ";") {
		key, val, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(key), property) {
			val = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(val), "!important"))
			value = strings.ToLower(val)
		}
	}
	return value
}

func intAttr(n *html.Node, name string) (int, bool) {
	raw, ok := lookupAttr(n, name)
	if !ok {
		return 0, false
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

func floatAttr(n *html.Node, name string) (float64, bool) {
	raw, ok := lookupAttr(n, name)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
