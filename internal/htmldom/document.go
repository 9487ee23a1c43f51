// Package htmldom implements the pkg/dom contracts over a parsed HTML tree so
// field state can be computed server-side and written back into markup.
package htmldom

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/goliatone/go-formstate/pkg/dom"
)

// Document wraps a parsed HTML tree together with the attribute observers
// registered against its elements.
type Document struct {
	root      *html.Node
	observers map[*html.Node][]*observer
	nextID    int
}

type observer struct {
	id int
	fn dom.AttributeObserver
}

var _ dom.Document = (*Document)(nil)

// Parse reads an HTML document.
func Parse(r io.Reader) (*Document, error) {
	if r == nil {
		return nil, errors.New("htmldom: reader is nil")
	}
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("htmldom: parse: %w", err)
	}
	return New(root), nil
}

// ParseString is a convenience wrapper around Parse.
func ParseString(markup string) (*Document, error) {
	return Parse(strings.NewReader(markup))
}

// New wraps an already parsed tree.
func New(root *html.Node) *Document {
	return &Document{
		root:      root,
		observers: make(map[*html.Node][]*observer),
	}
}

// Render writes the current tree, including every class toggled so far.
func (d *Document) Render(w io.Writer) error {
	if d == nil || d.root == nil {
		return errors.New("htmldom: document is empty")
	}
	if err := html.Render(w, d.root); err != nil {
		return fmt.Errorf("htmldom: render: %w", err)
	}
	return nil
}

// String renders the document, returning an empty string on failure.
func (d *Document) String() string {
	var b strings.Builder
	if err := d.Render(&b); err != nil {
		return ""
	}
	return b.String()
}

// QueryFields implements dom.Document. Selectors take the form
// ".container-class > tag", comma separated.
func (d *Document) QueryFields(selector string) []dom.Field {
	if d == nil || d.root == nil {
		return nil
	}
	parts := parseSelectors(selector)
	if len(parts) == 0 {
		return nil
	}

	var out []dom.Field
	walk(d.root, func(n *html.Node) {
		if !isControl(n) {
			return
		}
		for _, sel := range parts {
			if sel.matches(n) {
				out = append(out, newField(d, n))
				return
			}
		}
	})
	return out
}

// QueryForms implements dom.Document.
func (d *Document) QueryForms(classes ...string) []dom.Form {
	if d == nil || d.root == nil {
		return nil
	}
	var out []dom.Form
	walk(d.root, func(n *html.Node) {
		if n.Type != html.ElementNode || n.Data != "form" {
			return
		}
		for _, class := range classes {
			if hasClass(n, class) {
				out = append(out, Form{element{doc: d, node: n}})
				return
			}
		}
	})
	return out
}

// Field returns the first control whose name or id equals key.
func (d *Document) Field(key string) (Field, bool) {
	var found *html.Node
	walk(d.root, func(n *html.Node) {
		if found != nil || !isControl(n) {
			return
		}
		if attr(n, "name") == key || attr(n, "id") == key {
			found = n
		}
	})
	if found == nil {
		return Field{}, false
	}
	return newField(d, found), true
}

// Form returns the form with the given id.
func (d *Document) Form(id string) (Form, bool) {
	var found *html.Node
	walk(d.root, func(n *html.Node) {
		if found == nil && n.Type == html.ElementNode && n.Data == "form" && attr(n, "id") == id {
			found = n
		}
	})
	if found == nil {
		return Form{}, false
	}
	return Form{element{doc: d, node: found}}, true
}

func (d *Document) observe(n *html.Node, fn dom.AttributeObserver) dom.Subscription {
	if fn == nil {
		return dom.SubscriptionFunc(nil)
	}
	d.nextID++
	id := d.nextID
	d.observers[n] = append(d.observers[n], &observer{id: id, fn: fn})
	return dom.SubscriptionFunc(func() {
		list := d.observers[n]
		for i, obs := range list {
			if obs.id == id {
				d.observers[n] = append(list[:i:i], list[i+1:]...)
				break
			}
		}
		if len(d.observers[n]) == 0 {
			delete(d.observers, n)
		}
	})
}

// Observers returns the number of live observers, for leak checks.
func (d *Document) Observers() int {
	total := 0
	for _, list := range d.observers {
		total += len(list)
	}
	return total
}

func (d *Document) notify(n *html.Node, name string) {
	list := d.observers[n]
	if len(list) == 0 || !isControl(n) {
		return
	}
	snapshot := append([]*observer(nil), list...)
	f := newField(d, n)
	for _, obs := range snapshot {
		obs.fn(f, name)
	}
}

type selector struct {
	class string
	tag   string
}

func (s selector) matches(n *html.Node) bool {
	if n.Data != s.tag {
		return false
	}
	parent := parentElement(n)
	return parent != nil && hasClass(parent, s.class)
}

func parseSelectors(raw string) []selector {
	var out []selector
	for _, part := range strings.Split(raw, ",") {
		pieces := strings.Split(part, ">")
		if len(pieces) != 2 {
			continue
		}
		class := strings.TrimPrefix(strings.TrimSpace(pieces[0]), ".")
		tag := strings.ToLower(strings.TrimSpace(pieces[1]))
		if class == "" || tag == "" {
			continue
		}
		out = append(out, selector{class: class, tag: tag})
	}
	return out
}

func walk(n *html.Node, fn func(*html.Node)) {
	if n == nil {
		return
	}
	fn(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}

func isControl(n *html.Node) bool {
	if n == nil || n.Type != html.ElementNode {
		return false
	}
	switch n.Data {
	case "input", "select", "textarea":
		return true
	default:
		return false
	}
}

func parentElement(n *html.Node) *html.Node {
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode {
			return p
		}
	}
	return nil
}
