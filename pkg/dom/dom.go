// Package dom declares the document contracts the field state engine reads
// from and writes to. The engine never creates or removes elements; it reads
// field properties, toggles container classes and rewrites file labels.
//
// internal/htmldom provides the implementation backed by golang.org/x/net/html;
// the root formstate package exposes its constructor.
package dom

// ClassList is implemented by anything whose class attribute the engine can
// inspect or toggle.
type ClassList interface {
	HasClass(class string) bool
	ToggleClass(class string, on bool)
	Classes() []string
}

// Field is an observed input, select or textarea.
type Field interface {
	ClassList

	// Tag returns the lower-case element name.
	Tag() string
	// Name returns the name attribute, falling back to the id.
	Name() string
	Value() string
	SetValue(value string)
	Type() string
	Disabled() bool
	Required() bool
	Multiple() bool
	Placeholder() string
	// Hidden reports the presence of the hidden attribute.
	Hidden() bool

	Attr(name string) (string, bool)
	SetAttr(name, value string)
	RemoveAttr(name string)

	// CheckValidity runs native constraint validation for the element.
	CheckValidity() bool
	// Rendered reports whether the element takes up layout space.
	Rendered() bool
	// VisibilityHidden reports a computed visibility of hidden.
	VisibilityHidden() bool

	// Container returns the structural wrapper (the parent element).
	Container() Container
	// Form returns the enclosing form, or nil.
	Form() Form
	// Observe registers fn for attribute changes on this element.
	Observe(fn AttributeObserver) Subscription
}

// Container is the wrapper element whose classes encode field state.
type Container interface {
	ClassList

	Labels() []Label
	// Parent returns the enclosing element, or nil at the document root.
	Parent() Container
}

// Label is a label element inside a container.
type Label interface {
	Text() string
	// SetText replaces the label content with plain text.
	SetText(text string)
}

// Form is a form element that participates in submit validation.
type Form interface {
	ClassList

	// CheckValidity runs native constraint validation over every control.
	CheckValidity() bool
	// Fields returns every input, select and textarea in document order.
	Fields() []Field
}

// Document exposes element queries.
type Document interface {
	// QueryFields returns the fields matching a "container > tag" selector in
	// document order. Only the child combinator form is supported.
	QueryFields(selector string) []Field
	// QueryForms returns the forms carrying any of the given classes.
	QueryForms(classes ...string) []Form
}

// AttributeObserver receives the name of a changed attribute.
type AttributeObserver func(field Field, attr string)

// Subscription cancels an attribute observer.
type Subscription interface {
	Cancel()
}

// SubscriptionFunc adapts a function into a Subscription.
type SubscriptionFunc func()

// Cancel calls the underlying function.
func (fn SubscriptionFunc) Cancel() {
	if fn != nil {
		fn()
	}
}
