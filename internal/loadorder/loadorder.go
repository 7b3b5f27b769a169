// Package loadorder resolves which implementation of a module the
// launcher should load, native or built-in, based on user overrides.
package loadorder

import (
	"fmt"
	"strings"
)

// Order selects one implementation source for a module.
type Order int

const (
	Native  Order = iota // the platform DLL
	Builtin              // the bundled implementation
)

func (o Order) String() string {
	if o == Builtin {
		return "builtin"
	}
	return "native"
}

// SyntaxError reports a malformed load order specification.
type SyntaxError struct {
	Spec string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid load order specification '%s' (expected name,name=order,order with orders native/builtin)", e.Spec)
}

// Table records per-module load order preferences. The zero value uses
// the default native,builtin order for every module.
type Table struct {
	modules map[string][]Order
}

// defaultOrder is tried for modules without an override.
var defaultOrder = []Order{Native, Builtin}

// AddOption parses one override specification. Entries are
// "name,name=order,order" pairs separated by ':' or ';'. Orders may be
// spelled out or given by first letter; an empty order list disables
// the named modules.
func (t *Table) AddOption(spec string) error {
	entries := strings.FieldsFunc(spec, func(r rune) bool { return r == ':' || r == ';' })
	if len(entries) == 0 {
		return &SyntaxError{Spec: spec}
	}
	for _, entry := range entries {
		names, orders, ok := strings.Cut(entry, "=")
		if !ok {
			return &SyntaxError{Spec: entry}
		}
		seq, err := parseOrders(orders, entry)
		if err != nil {
			return err
		}
		for _, name := range strings.Split(names, ",") {
			name = Normalize(name)
			if name == "" {
				return &SyntaxError{Spec: entry}
			}
			if t.modules == nil {
				t.modules = make(map[string][]Order)
			}
			t.modules[name] = seq
		}
	}
	return nil
}

func parseOrders(list, entry string) ([]Order, error) {
	if list == "" {
		return []Order{}, nil
	}
	var seq []Order
	for _, word := range strings.Split(list, ",") {
		switch strings.ToLower(strings.TrimSpace(word)) {
		case "native", "n":
			seq = append(seq, Native)
		case "builtin", "b":
			seq = append(seq, Builtin)
		default:
			return nil, &SyntaxError{Spec: entry}
		}
	}
	return seq, nil
}

// Lookup returns the load order sequence to try for a module. An empty
// non-nil result means the module is disabled.
func (t *Table) Lookup(name string) []Order {
	if seq, ok := t.modules[Normalize(name)]; ok {
		return append([]Order(nil), seq...)
	}
	return append([]Order(nil), defaultOrder...)
}

// Disabled reports whether the module's override turned it off.
func (t *Table) Disabled(name string) bool {
	seq, ok := t.modules[Normalize(name)]
	return ok && len(seq) == 0
}

// Overridden reports whether the module has an explicit entry.
func (t *Table) Overridden(name string) bool {
	_, ok := t.modules[Normalize(name)]
	return ok
}

// Normalize lowercases a module name and strips a trailing .dll suffix
// so lookups are spelling independent.
func Normalize(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.TrimSuffix(name, ".dll")
}
