package debug

import (
	"slices"
	"strings"
)

// Class identifies one message severity category.
type Class int

// Message classes, in declaration order. Filter expressions and the
// usage dump enumerate classes in exactly this order.
const (
	Fixme Class = iota
	Err
	Warn
	Trace

	numClasses
)

var classNames = [numClasses]string{"fixme", "err", "warn", "trace"}

// String returns the class name used in filter expressions.
func (c Class) String() string {
	if c < 0 || c >= numClasses {
		return "unknown"
	}
	return classNames[c]
}

// ClassNames lists every class name in declaration order.
func ClassNames() []string {
	return append([]string(nil), classNames[:]...)
}

func classByName(name string) (Class, bool) {
	for i, n := range classNames {
		if n == name {
			return Class(i), true
		}
	}
	return 0, false
}

// ClassSet records a subset of message classes.
type ClassSet [numClasses]bool

// AllClasses returns the set containing every class.
func AllClasses() ClassSet {
	var s ClassSet
	for i := range s {
		s[i] = true
	}
	return s
}

// Has reports whether the set contains c.
func (s ClassSet) Has(c Class) bool {
	return c >= 0 && c < numClasses && s[c]
}

// defaultClasses is the visibility applied before any edits: errors and
// unimplemented-feature notices on, warnings and traces off.
func defaultClasses() ClassSet {
	var s ClassSet
	s[Fixme] = true
	s[Err] = true
	return s
}

// Facility names a subsystem with per-module include/exclude filtering.
type Facility int

const (
	Relay Facility = iota
	Snoop
)

func (f Facility) String() string {
	if f == Snoop {
		return "snoop"
	}
	return "relay"
}

// Edit adjusts trace configuration for one filter clause. A mask edit
// targets Channel ("" applies to every channel). A facility edit has
// Modules set, always targets every channel, and still carries its
// blanket Set/Clear masks.
type Edit struct {
	Channel string
	Set     ClassSet
	Clear   ClassSet
	Modules *ModuleEdit
}

// ModuleEdit replaces a facility's include or exclude module list.
type ModuleEdit struct {
	Facility Facility
	Exclude  bool
	Names    []string // uppercased, in the order given
}

// Registry holds the trace configuration built from filter edits. The
// zero value is ready to use and shows the default classes everywhere.
type Registry struct {
	edits []Edit

	relayInclude []string
	relayExclude []string
	snoopInclude []string
	snoopExclude []string
}

// Apply records edits in order. Mask edits accumulate; a facility edit
// replaces the target module list.
func (r *Registry) Apply(edits []Edit) {
	for _, e := range edits {
		if m := e.Modules; m != nil {
			names := append([]string(nil), m.Names...)
			switch {
			case m.Facility == Relay && !m.Exclude:
				r.relayInclude = names
			case m.Facility == Relay:
				r.relayExclude = names
			case !m.Exclude:
				r.snoopInclude = names
			default:
				r.snoopExclude = names
			}
		}
		r.edits = append(r.edits, Edit{Channel: e.Channel, Set: e.Set, Clear: e.Clear})
	}
}

// ChannelClasses reports the class visibility for a channel after all
// recorded edits. Edits fold left over the defaults; clears apply
// before sets within a single edit.
func (r *Registry) ChannelClasses(channel string) ClassSet {
	flags := defaultClasses()
	for _, e := range r.edits {
		if e.Channel != "" && e.Channel != channel {
			continue
		}
		for c := range flags {
			if e.Clear[c] {
				flags[c] = false
			}
			if e.Set[c] {
				flags[c] = true
			}
		}
	}
	return flags
}

// Enabled reports whether messages of class c on the named channel are
// shown.
func (r *Registry) Enabled(c Class, channel string) bool {
	return r.ChannelClasses(channel).Has(c)
}

// FacilityEnabled reports whether the facility traces calls into the
// named module. A non-empty include list admits only its members;
// otherwise a non-empty exclude list rejects its members.
func (r *Registry) FacilityEnabled(f Facility, module string) bool {
	module = strings.ToUpper(module)
	include, exclude := r.relayInclude, r.relayExclude
	if f == Snoop {
		include, exclude = r.snoopInclude, r.snoopExclude
	}
	if len(include) > 0 {
		return slices.Contains(include, module)
	}
	if len(exclude) > 0 {
		return !slices.Contains(exclude, module)
	}
	return true
}
