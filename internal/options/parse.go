package options

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"unicode/utf16"
)

// InheritEnv is the environment variable that carries inheritable
// options into child processes.
const InheritEnv = "WINEOPTIONS"

const (
	// maxInheritedLen bounds the accepted InheritEnv value. Longer
	// values are ignored with a diagnostic.
	maxInheritedLen = 1023
	// maxInheritedArgs bounds the synthetic argument list built from
	// InheritEnv. Extra tokens are dropped.
	maxInheritedArgs = 255
)

// ErrEmptyArgv is returned when Parse is given no argument vector at
// all. Argument 0 must always name the program.
var ErrEmptyArgv = errors.New("empty argument vector")

// UnknownOptionError reports a token that looks like an option but
// matches nothing in the table.
type UnknownOptionError struct {
	Token     string
	Inherited bool // found while replaying the InheritEnv variable
}

func (e *UnknownOptionError) Error() string {
	if e.Inherited {
		return fmt.Sprintf("unknown option '%s' in %s variable", e.Token, InheritEnv)
	}
	return fmt.Sprintf("unknown option '%s'", e.Token)
}

// Parser scans argument vectors against an option table.
type Parser struct {
	Table Table
	// Env supplies the inherited-options slot. Nil means the process
	// environment.
	Env Environ
	// Diag receives warnings about recoverable oddities. Nil discards
	// them.
	Diag io.Writer
	// Defaults seeds the settings before any option applies.
	Defaults Settings
}

// Result carries everything a parse pass produced.
type Result struct {
	Settings Settings
	// Terminal is non-zero when an option such as --help cut the scan
	// short. Args is not populated in that case.
	Terminal TerminalKind
	// Inherit is the accumulated verbatim text of every consumed
	// inheritable option, in consumption order.
	Inherit string

	args     []string
	wideOnce sync.Once
	wide     [][]uint16
}

// Args returns the launched program's argument vector: the program name
// followed by every token the scan left untouched.
func (r *Result) Args() []string { return r.args }

// WideArgs returns Args encoded as UTF-16, built on first use and
// cached.
func (r *Result) WideArgs() [][]uint16 {
	r.wideOnce.Do(func() {
		r.wide = make([][]uint16, len(r.args))
		for i, arg := range r.args {
			r.wide[i] = utf16.Encode([]rune(arg))
		}
	})
	return r.wide
}

// Parse runs the full scan: inherited options from the environment are
// replayed first, then argv (argument 0 names the program and is never
// matched), then the new inherited set is written back to the
// environment, and finally the surviving tokens are validated. The
// original vector is left untouched.
func (p *Parser) Parse(argv []string) (*Result, error) {
	if len(argv) == 0 {
		return nil, ErrEmptyArgv
	}
	res := &Result{Settings: p.Defaults}
	env := p.Env
	if env == nil {
		env = SystemEnv{}
	}

	if err := p.replayInherited(env, res); err != nil {
		return nil, err
	}
	if res.Terminal != 0 {
		return res, nil
	}

	rest, err := p.scan(argv[1:], res)
	if err != nil {
		return nil, err
	}
	if res.Terminal != 0 {
		return res, nil
	}

	if err := env.Set(InheritEnv, res.Inherit); err != nil {
		return nil, fmt.Errorf("update %s: %w", InheritEnv, err)
	}

	args := []string{argv[0]}
	for i := 0; i < len(rest); i++ {
		tok := rest[i]
		if tok == "--" {
			args = append(args, rest[i+1:]...)
			break
		}
		if strings.HasPrefix(tok, "-") {
			return nil, &UnknownOptionError{Token: tok}
		}
		args = append(args, tok)
	}
	res.args = args
	return res, nil
}

// scan applies table effects left to right and returns the tokens that
// were not consumed. Scanning stops at the "--" sentinel, which is kept
// along with everything after it, or when a terminal option fires.
func (p *Parser) scan(args []string, res *Result) ([]string, error) {
	var rest []string
	for i := 0; i < len(args); i++ {
		tok := args[i]
		if tok == "--" {
			rest = append(rest, args[i:]...)
			break
		}
		m, ok := p.Table.lookup(tok)
		if !ok {
			rest = append(rest, tok)
			continue
		}
		consumed := args[i : i+1]
		arg := ""
		switch {
		case m.hasInline:
			arg = m.inline
		case m.opt.TakesArg && i+1 < len(args):
			arg = args[i+1]
			consumed = args[i : i+2]
			i++
		}
		switch eff := m.opt.Effect.(type) {
		case Toggle:
			if eff.Apply != nil {
				eff.Apply(&res.Settings)
			}
		case Forward:
			if eff.Apply != nil {
				if err := eff.Apply(arg); err != nil {
					return nil, err
				}
			}
		case Terminal:
			res.Terminal = eff.Kind
			return rest, nil
		}
		if m.opt.Inherit {
			if res.Inherit != "" {
				res.Inherit += " "
			}
			res.Inherit += strings.Join(consumed, " ")
		}
	}
	return rest, nil
}

// replayInherited seeds res with the options persisted in InheritEnv.
// Oversized values are ignored with a diagnostic. Any token the table
// does not consume makes the whole variable invalid.
func (p *Parser) replayInherited(env Environ, res *Result) error {
	raw := env.Get(InheritEnv)
	if raw == "" {
		return nil
	}
	if len(raw) > maxInheritedLen {
		p.warnf("ignoring %s: value longer than %d bytes", InheritEnv, maxInheritedLen)
		return nil
	}
	tokens := strings.Fields(raw)
	if len(tokens) > maxInheritedArgs {
		tokens = tokens[:maxInheritedArgs]
	}
	rest, err := p.scan(tokens, res)
	if err != nil {
		return err
	}
	if res.Terminal != 0 {
		return nil
	}
	if len(rest) > 0 {
		return &UnknownOptionError{Token: rest[0], Inherited: true}
	}
	return nil
}

func (p *Parser) warnf(format string, args ...any) {
	if p.Diag == nil {
		return
	}
	fmt.Fprintf(p.Diag, "warning: "+format+"\n", args...)
}
