package domain

import "errors"

// ErrCannotParse is returned when an input string matches no known grammar,
// no space-specific parser, and no resolver fallback.
var ErrCannotParse = errors.New("cannot parse color string")

// ErrUnknownSpace is returned when a requested color space id is not
// registered.
var ErrUnknownSpace = errors.New("unknown color space")

// ErrInvalidSpaceArg is returned when a space lookup receives neither an id
// string nor a space record.
var ErrInvalidSpaceArg = errors.New("invalid color space argument")

// ErrUnsupportedWhitePoint is returned when chromatic adaptation is requested
// between any pair of white points other than D50 and D65.
var ErrUnsupportedWhitePoint = errors.New("unsupported white point pair")

// ErrMissingConnection is returned when a space definition supplies neither a
// direct connection to XYZ nor a resolvable connection space.
var ErrMissingConnection = errors.New("no connection to XYZ")

// ErrNameNotFound is returned by name resolvers when a color name is not in
// the palette.
var ErrNameNotFound = errors.New("color name not found")
