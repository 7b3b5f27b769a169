package options

import "strings"

// match describes a successful table lookup for one token.
type match struct {
	opt       *Option
	inline    string // value from the --name=value form
	hasInline bool
}

// lookup resolves a token against the table. Tokens shorter than two
// characters, tokens without a leading dash, and the "--" sentinel never
// match. A single-character body is compared against short aliases; a
// longer body sheds at most one extra leading dash and is compared
// against long names, with "name=value" also matching an argument-taking
// entry by prefix.
func (t Table) lookup(tok string) (match, bool) {
	if len(tok) < 2 || tok[0] != '-' {
		return match{}, false
	}
	body := tok[1:]
	if len(body) == 1 {
		if body[0] == '-' {
			return match{}, false
		}
		for i := range t {
			if t[i].Short == body[0] {
				return match{opt: &t[i]}, true
			}
		}
		return match{}, false
	}
	body = strings.TrimPrefix(body, "-")
	name, value, hasValue := strings.Cut(body, "=")
	for i := range t {
		opt := &t[i]
		if opt.Long == body {
			return match{opt: opt}, true
		}
		if hasValue && opt.TakesArg && opt.Long == name {
			return match{opt: opt, inline: value, hasInline: true}, true
		}
	}
	return match{}, false
}
