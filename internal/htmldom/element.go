package htmldom

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/goliatone/go-formstate/pkg/dom"
)

// element is the shared base for every wrapper. Wrappers are small values so
// two lookups of the same node compare equal and can key maps.
type element struct {
	doc  *Document
	node *html.Node
}

func (e element) HasClass(class string) bool {
	return hasClass(e.node, class)
}

func (e element) Classes() []string {
	return strings.Fields(attr(e.node, "class"))
}

func (e element) ToggleClass(class string, on bool) {
	class = strings.TrimSpace(class)
	if class == "" || e.node == nil {
		return
	}
	current := e.Classes()
	has := false
	next := make([]string, 0, len(current)+1)
	for _, c := range current {
		if c == class {
			has = true
			if !on {
				continue
			}
		}
		next = append(next, c)
	}
	if on == has {
		return
	}
	if on {
		next = append(next, class)
	}
	e.setAttr("class", strings.Join(next, " "))
}

func (e element) Attr(name string) (string, bool) {
	return lookupAttr(e.node, name)
}

func (e element) SetAttr(name, value string) {
	e.setAttr(name, value)
}

func (e element) RemoveAttr(name string) {
	if e.node == nil {
		return
	}
	key := strings.ToLower(name)
	kept := e.node.Attr[:0]
	removed := false
	for _, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == key {
			removed = true
			continue
		}
		kept = append(kept, a)
	}
	e.node.Attr = kept
	if removed {
		e.doc.notify(e.node, key)
	}
}

func (e element) setAttr(name, value string) {
	if e.node == nil {
		return
	}
	writeAttr(e.node, name, value)
	e.doc.notify(e.node, strings.ToLower(name))
}

// Container wraps a field's parent element.
type Container struct {
	element
}

var _ dom.Container = Container{}

// Labels returns every label element inside the container.
func (c Container) Labels() []dom.Label {
	var out []dom.Label
	for child := c.node.FirstChild; child != nil; child = child.NextSibling {
		walk(child, func(n *html.Node) {
			if n.Type == html.ElementNode && n.Data == "label" {
				out = append(out, Label{element{doc: c.doc, node: n}})
			}
		})
	}
	return out
}

// Parent returns the enclosing element as a container.
func (c Container) Parent() dom.Container {
	parent := parentElement(c.node)
	if parent == nil {
		return nil
	}
	return Container{element{doc: c.doc, node: parent}}
}

// Label wraps a label element.
type Label struct {
	element
}

var _ dom.Label = Label{}

// Text returns the concatenated text content.
func (l Label) Text() string {
	return textContent(l.node)
}

// SetText replaces the label children with a single text node.
func (l Label) SetText(text string) {
	replaceText(l.node, text)
}

// Form wraps a form element.
type Form struct {
	element
}

var _ dom.Form = Form{}

// Fields returns every control inside the form.
func (f Form) Fields() []dom.Field {
	var out []dom.Field
	for child := f.node.FirstChild; child != nil; child = child.NextSibling {
		walk(child, func(n *html.Node) {
			if isControl(n) {
				out = append(out, newField(f.doc, n))
			}
		})
	}
	return out
}

// CheckValidity reports whether every control satisfies its constraints.
func (f Form) CheckValidity() bool {
	valid := true
	for _, field := range f.Fields() {
		if !field.CheckValidity() {
			valid = false
		}
	}
	return valid
}

func hasClass(n *html.Node, class string) bool {
	if n == nil || class == "" {
		return false
	}
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

func attr(n *html.Node, name string) string {
	value, _ := lookupAttr(n, name)
	return value
}

func lookupAttr(n *html.Node, name string) (string, bool) {
	if n == nil {
		return "", false
	}
	key := strings.ToLower(name)
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func writeAttr(n *html.Node, name, value string) {
	key := strings.ToLower(name)
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr[i].Val = value
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: value})
}

func textContent(n *html.Node) string {
	var b strings.Builder
	walk(n, func(c *html.Node) {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	})
	return b.String()
}

func replaceText(n *html.Node, text string) {
	if n == nil {
		return
	}
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		n.RemoveChild(c)
		c = next
	}
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}
