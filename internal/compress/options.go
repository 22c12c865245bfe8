package compress

import "strings"

// Options gates the individual rule families. Dropping empty statements and
// rewriting undefined are always on.
type Options struct {
	Booleans     bool // true -> !0, false -> !1
	DropDebugger bool // remove debugger statements
	JoinVars     bool // merge consecutive declarations of the same kind
	Loops        bool // while (x) -> for (; x; )
	Typeofs      bool // typeof x == "undefined" -> x === void 0
}

// DefaultOptions enables every rule.
func DefaultOptions() Options {
	return Options{
		Booleans:     true,
		DropDebugger: true,
		JoinVars:     true,
		Loops:        true,
		Typeofs:      true,
	}
}

// Fingerprint is a stable encoding of the options used in cache keys.
func (o Options) Fingerprint() string {
	var sb strings.Builder
	flag := func(name string, on bool) {
		sb.WriteString(name)
		if on {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	flag("b", o.Booleans)
	flag("d", o.DropDebugger)
	flag("j", o.JoinVars)
	flag("l", o.Loops)
	flag("t", o.Typeofs)
	return sb.String()
}
