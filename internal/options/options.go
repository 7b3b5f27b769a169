// Package options implements the launcher's command-line scanner: a
// fixed table of recognized options is applied to an argument vector,
// consumed tokens are filtered out, and whatever remains becomes the
// argument vector of the program being launched.
package options

// Settings holds the launcher toggles that options mutate directly.
type Settings struct {
	// Managed lets the window manager manage created windows.
	Managed bool
}

// TerminalKind selects which terminal action an option requests. The
// zero value means no terminal action.
type TerminalKind int

const (
	// Help asks the caller to print the option table and stop.
	Help TerminalKind = iota + 1
	// Version asks the caller to print the release banner and stop.
	Version
)

// Effect describes what applying an option does. The set of shapes is
// closed: an option either toggles a setting, forwards its argument to
// a collaborator, or ends the scan with a terminal request.
type Effect interface{ effect() }

// Toggle flips a launcher setting.
type Toggle struct {
	Apply func(*Settings)
}

// Forward hands the option argument to a collaborator.
type Forward struct {
	Apply func(arg string) error
}

// Terminal stops the scan and reports Kind to the caller.
type Terminal struct {
	Kind TerminalKind
}

func (Toggle) effect()   {}
func (Forward) effect()  {}
func (Terminal) effect() {}

// Option describes one recognized command-line option.
type Option struct {
	Long     string // option name without dashes, never empty
	Short    byte   // single-letter alias, 0 when absent
	TakesArg bool   // consumes the next token or an inline =value
	Inherit  bool   // consumed text is replayed in child processes
	Effect   Effect
	Usage    string // verbatim line(s) for the usage dump
}

// Table is an ordered, immutable option registry. When several entries
// could match a token, the earliest one wins.
type Table []Option

// Hooks connects the forwarding options to their collaborators. A nil
// hook turns the corresponding option into a no-op.
type Hooks struct {
	DebugMsg func(expr string) error
	DLL      func(spec string) error
	DOSVer   func(ver string) error
	WinVer   func(ver string) error
}

// Builtin returns the launcher's option surface. The order is the order
// of the usage dump.
func Builtin(h Hooks) Table {
	return Table{
		{
			Long:     "debugmsg",
			TakesArg: true,
			Inherit:  true,
			Effect:   Forward{Apply: h.DebugMsg},
			Usage:    "--debugmsg name  Turn debugging-messages on or off",
		},
		{
			Long:     "dll",
			TakesArg: true,
			Inherit:  true,
			Effect:   Forward{Apply: h.DLL},
			Usage:    "--dll name       Enable or disable built-in DLLs",
		},
		{
			Long:     "dosver",
			TakesArg: true,
			Inherit:  true,
			Effect:   Forward{Apply: h.DOSVer},
			Usage: "--dosver x.xx    DOS version to imitate (e.g. 6.22)\n" +
				"                    Only valid with --winver win31",
		},
		{
			Long:   "help",
			Short:  'h',
			Effect: Terminal{Kind: Help},
			Usage:  "--help,-h        Show this help message",
		},
		{
			Long:   "managed",
			Effect: Toggle{Apply: func(s *Settings) { s.Managed = true }},
			Usage:  "--managed        Allow the window manager to manage created windows",
		},
		{
			Long:   "version",
			Short:  'v',
			Effect: Terminal{Kind: Version},
			Usage:  "--version,-v     Display the Wine version",
		},
		{
			Long:     "winver",
			TakesArg: true,
			Inherit:  true,
			Effect:   Forward{Apply: h.WinVer},
			Usage:    "--winver         Version to imitate (win95,nt40,win31,nt2k,win98,nt351,win30,win20)",
		},
	}
}
