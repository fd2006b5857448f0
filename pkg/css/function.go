// Package css parses and serializes CSS color syntax: the generic functional
// form name(arg arg ... [/ alpha]) and the dispatch logic that turns a color
// string into a space id, coordinates and alpha.
package css

import (
	"strconv"
	"strings"

	"github.com/aretw0/gamut/pkg/domain"
)

// ParseFunction recognizes the generic CSS functional syntax
// name(arg1 arg2 ... [/ alphaArg]) with space- or comma-delimited arguments.
// It returns nil for non-function input.
func ParseFunction(s string) *domain.FuncCall {
	s = strings.TrimSpace(s)
	open := strings.IndexByte(s, '(')
	if open <= 0 || !strings.HasSuffix(s, ")") {
		return nil
	}
	name := strings.ToLower(s[:open])
	if !validFunctionName(name) {
		return nil
	}
	rawArgs := s[open+1 : len(s)-1]

	call := &domain.FuncCall{Name: name, RawArgs: rawArgs}
	for _, tok := range strings.FieldsFunc(rawArgs, isArgSeparator) {
		call.Args = append(call.Args, classifyArg(tok))
	}
	return call
}

// The slash before an alpha argument is a separator here; its presence is
// still visible through RawArgs.
func isArgSeparator(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == ',' || r == '/'
}

func validFunctionName(name string) bool {
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= '0' && c <= '9':
		case c == '-':
		default:
			return false
		}
	}
	c := name[0]
	return c >= 'a' && c <= 'z'
}

// classifyArg tags one argument token as a number, a percentage (stored as a
// fraction of 1), an angle in degrees, or an opaque identifier.
func classifyArg(tok string) domain.Arg {
	if strings.HasSuffix(tok, "%") {
		if v, err := strconv.ParseFloat(tok[:len(tok)-1], 64); err == nil {
			return domain.Arg{Value: v / 100, Kind: domain.ArgPercentage, Raw: tok}
		}
	}
	if strings.HasSuffix(tok, "deg") {
		if v, err := strconv.ParseFloat(tok[:len(tok)-3], 64); err == nil {
			return domain.Arg{Value: v, Kind: domain.ArgAngle, Raw: tok}
		}
	}
	if v, err := strconv.ParseFloat(tok, 64); err == nil {
		return domain.Arg{Value: v, Kind: domain.ArgNumber, Raw: tok}
	}
	return domain.Arg{Kind: domain.ArgIdent, Raw: tok}
}
