package domain

// ArgKind classifies one argument of a CSS color function.
type ArgKind int

const (
	// ArgNumber is a bare number.
	ArgNumber ArgKind = iota
	// ArgPercentage is a %-suffixed value, stored as a fraction of 1.
	ArgPercentage
	// ArgAngle is a deg-suffixed value, stored as a bare number of degrees.
	ArgAngle
	// ArgIdent is an opaque identifier token, e.g. a color space id.
	ArgIdent
)

// Arg is one classified argument of a CSS color function.
type Arg struct {
	// Value is the numeric value. Percentages are stored as fractions of 1.
	// For identifiers the value is meaningless; use Raw.
	Value float64
	Kind  ArgKind
	Raw   string
}

// FuncCall is a parsed CSS functional expression name(arg arg ... [/ alpha]).
// It is shared between the CSS parser and the per-space parse overrides.
type FuncCall struct {
	// Name is the lowercased function name ("rgb", "color", "lab", ...).
	Name string
	// RawArgs is the unparsed argument text, used to detect the "/" alpha
	// delimiter.
	RawArgs string
	// Args are the classified arguments, with "/" delimiters removed.
	Args []Arg
}

// HasAlphaSlash reports whether the call's raw argument text carries a
// "/ alpha" clause.
func (f *FuncCall) HasAlphaSlash() bool {
	for i := 0; i < len(f.RawArgs); i++ {
		if f.RawArgs[i] == '/' {
			return true
		}
	}
	return false
}
