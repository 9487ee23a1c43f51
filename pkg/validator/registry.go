package validator

import (
	"sort"
	"strings"
	"sync"
)

// Built-in format identifiers. They match the mask names fields declare.
const (
	FormatDate  = "date"
	FormatTime  = "time"
	FormatEmail = "email"
	FormatPhone = "phone"
	FormatCPF   = "cpf"
	FormatCNPJ  = "cnpj"
	FormatCEP   = "cep"
	FormatMoney = "money"
)

// Rule reports whether a raw value is valid for a format.
type Rule func(value string) bool

// Registry maps format identifiers to rules. Identifiers are matched
// case-insensitively after trimming. The zero value is usable and empty.
type Registry struct {
	mu    sync.RWMutex
	rules map[string]Rule
}

// NewRegistry constructs a registry with the built-in rules registered.
func NewRegistry() *Registry {
	reg := &Registry{}
	reg.registerBuiltins()
	return reg
}

// Register adds or replaces the rule for name. Empty names and nil rules are
// ignored.
func (r *Registry) Register(name string, rule Rule) {
	if r == nil || rule == nil {
		return
	}
	key := normalizeName(name)
	if key == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.rules == nil {
		r.rules = make(map[string]Rule)
	}
	r.rules[key] = rule
}

// Lookup returns the rule registered for name.
func (r *Registry) Lookup(name string) (Rule, bool) {
	if r == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	rule, ok := r.rules[normalizeName(name)]
	return rule, ok
}

// Validate runs the rule registered for name against value. Unknown formats
// are reported valid with known=false, so a field that declares a mask
// without a rule is never flagged.
func (r *Registry) Validate(name, value string) (valid, known bool) {
	rule, ok := r.Lookup(name)
	if !ok {
		return true, false
	}
	return rule(value), true
}

// Names lists the registered identifiers in sorted order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	names := make([]string, 0, len(r.rules))
	for name := range r.rules {
		names = append(names, name)
	}
	r.mu.RUnlock()
	sort.Strings(names)
	return names
}

func (r *Registry) registerBuiltins() {
	r.Register(FormatDate, Date)
	r.Register(FormatTime, Time)
	r.Register(FormatEmail, Email)
	r.Register(FormatPhone, Phone)
	r.Register(FormatCPF, CPF)
	r.Register(FormatCNPJ, CNPJ)
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
