// Package winver tracks which Windows and DOS versions the launcher
// reports to programs.
package winver

import (
	"fmt"
	"strconv"
	"strings"
)

// Platform distinguishes the Windows product families.
type Platform int

const (
	Win3x Platform = iota
	Win9x
	NT
)

func (p Platform) String() string {
	switch p {
	case Win9x:
		return "win9x"
	case NT:
		return "nt"
	default:
		return "win3x"
	}
}

// Version describes one reportable Windows release.
type Version struct {
	Name     string
	Major    int
	Minor    int
	Build    int
	Platform Platform
}

// knownVersions is ordered oldest to newest. Known and error messages
// enumerate it in this order.
var knownVersions = []Version{
	{Name: "win20", Major: 2, Minor: 0, Build: 11, Platform: Win3x},
	{Name: "win30", Major: 3, Minor: 0, Build: 102, Platform: Win3x},
	{Name: "win31", Major: 3, Minor: 10, Build: 103, Platform: Win3x},
	{Name: "nt351", Major: 3, Minor: 51, Build: 1057, Platform: NT},
	{Name: "win95", Major: 4, Minor: 0, Build: 950, Platform: Win9x},
	{Name: "nt40", Major: 4, Minor: 0, Build: 1381, Platform: NT},
	{Name: "win98", Major: 4, Minor: 10, Build: 1998, Platform: Win9x},
	{Name: "nt2k", Major: 5, Minor: 0, Build: 2195, Platform: NT},
}

const defaultName = "win98"

// Known lists the recognized Windows version names, oldest first.
func Known() []string {
	names := make([]string, len(knownVersions))
	for i, v := range knownVersions {
		names[i] = v.Name
	}
	return names
}

// UnknownVersionError reports a version name outside the known set.
type UnknownVersionError struct {
	Name string
}

func (e *UnknownVersionError) Error() string {
	return fmt.Sprintf("unknown Windows version '%s' (valid versions: %s)",
		e.Name, strings.Join(Known(), ","))
}

// InvalidDOSVersionError reports a DOS version string that is not of
// the x.xx form.
type InvalidDOSVersionError struct {
	Value string
}

func (e *InvalidDOSVersionError) Error() string {
	return fmt.Sprintf("invalid DOS version '%s' (expected x.xx, e.g. 6.22)", e.Value)
}

// Emulation tracks the versions reported to launched programs.
type Emulation struct {
	win       Version
	forced    bool
	dosMajor  int
	dosMinor  int
	dosForced bool
}

// New returns an Emulation reporting the default Windows version.
func New() *Emulation {
	e := &Emulation{}
	for _, v := range knownVersions {
		if v.Name == defaultName {
			e.win = v
		}
	}
	return e
}

// SetWindows selects the Windows version to imitate by name.
func (e *Emulation) SetWindows(name string) error {
	for _, v := range knownVersions {
		if v.Name == name {
			e.win = v
			e.forced = true
			return nil
		}
	}
	return &UnknownVersionError{Name: name}
}

// SetDOS selects the DOS version to imitate, given as "major.minor"
// such as "6.22". It only affects programs when win31 is reported.
func (e *Emulation) SetDOS(ver string) error {
	majorText, minorText, ok := strings.Cut(ver, ".")
	if !ok {
		return &InvalidDOSVersionError{Value: ver}
	}
	major, err := strconv.Atoi(majorText)
	if err != nil || major < 0 {
		return &InvalidDOSVersionError{Value: ver}
	}
	minor, err := strconv.Atoi(minorText)
	if err != nil || minor < 0 {
		return &InvalidDOSVersionError{Value: ver}
	}
	e.dosMajor, e.dosMinor, e.dosForced = major, minor, true
	return nil
}

// Windows returns the reported Windows version.
func (e *Emulation) Windows() Version { return e.win }

// Overridden reports whether SetWindows replaced the default.
func (e *Emulation) Overridden() bool { return e.forced }

// DOS returns the reported DOS version and whether one was set.
func (e *Emulation) DOS() (major, minor int, ok bool) {
	return e.dosMajor, e.dosMinor, e.dosForced
}
