package debug

import (
	"fmt"
	"strings"
)

// SyntaxError reports a malformed debug filter expression.
type SyntaxError struct {
	Expr   string
	Clause string // offending clause, empty when the whole expression is bad
}

func (e *SyntaxError) Error() string {
	if e.Clause == "" || e.Clause == e.Expr {
		return fmt.Sprintf("invalid debug filter %q", e.Expr)
	}
	return fmt.Sprintf("invalid debug filter clause %q in %q", e.Clause, e.Expr)
}

// ParseFilter parses a comma-separated filter expression of the form
// "[class]+channel,[class]-channel,..." into edits. Empty clauses from
// doubled or trailing commas are skipped, but the expression must
// contain at least one clause. No edits are returned unless every
// clause is well formed.
func ParseFilter(expr string) ([]Edit, error) {
	var edits []Edit
	for _, clause := range strings.Split(expr, ",") {
		if clause == "" {
			continue
		}
		edit, err := parseClause(expr, clause)
		if err != nil {
			return nil, err
		}
		edits = append(edits, edit)
	}
	if len(edits) == 0 {
		return nil, &SyntaxError{Expr: expr}
	}
	return edits, nil
}

// parseClause handles one clause: an optional class name, a mandatory
// '+' or '-' sign, and a channel name. The sign is the first '+' in the
// clause, or the first '-' when no '+' appears. With an empty class
// prefix, "relay=" and "snoop=" introduce a module list instead of a
// channel, and the blanket mask still applies.
func parseClause(expr, clause string) (Edit, error) {
	sign := strings.IndexByte(clause, '+')
	if sign < 0 {
		sign = strings.IndexByte(clause, '-')
	}
	if sign < 0 || sign == len(clause)-1 {
		return Edit{}, &SyntaxError{Expr: expr, Clause: clause}
	}
	enable := clause[sign] == '+'

	var set, clear ClassSet
	if prefix := clause[:sign]; prefix != "" {
		cls, ok := classByName(prefix)
		if !ok {
			return Edit{}, &SyntaxError{Expr: expr, Clause: clause}
		}
		if enable {
			set[cls] = true
		} else {
			clear[cls] = true
		}
	} else {
		if enable {
			set = AllClasses()
		} else {
			clear = AllClasses()
		}
		if mods := parseModuleList(clause[sign+1:], enable); mods != nil {
			return Edit{Set: set, Clear: clear, Modules: mods}, nil
		}
	}

	channel := clause[sign+1:]
	if channel == "all" {
		channel = ""
	}
	return Edit{Channel: channel, Set: set, Clear: clear}, nil
}

// parseModuleList recognizes the "relay=mod:mod" and "snoop=mod:mod"
// forms. The keyword is case insensitive; module names are stored
// uppercased in the order given.
func parseModuleList(rest string, enable bool) *ModuleEdit {
	keyword, list, ok := strings.Cut(rest, "=")
	if !ok {
		return nil
	}
	var facility Facility
	switch strings.ToLower(keyword) {
	case "relay":
		facility = Relay
	case "snoop":
		facility = Snoop
	default:
		return nil
	}
	names := strings.Split(list, ":")
	for i, name := range names {
		names[i] = strings.ToUpper(name)
	}
	return &ModuleEdit{Facility: facility, Exclude: !enable, Names: names}
}
