// Package style configures how path data and transform lists are written
// back to their attribute strings.
package style

import (
	"errors"
	"fmt"
	"math"
	stdstrconv "strconv"

	"github.com/tdewolff/parse/v2/strconv"
)

// Coordinates selects absolute or relative output for path commands.
type Coordinates string

const (
	// Original keeps each command's own relative flag.
	Original Coordinates = "original"
	Absolute Coordinates = "absolute"
	Relative Coordinates = "relative"
)

// Commands selects whether repeated command letters are written.
type Commands string

const (
	Explicit Commands = "explicit"
	// Implicit drops a letter equal to the previous one, and L after M.
	Implicit Commands = "implicit"
)

// Shorthand controls H/V and S/T usage.
type Shorthand string

const (
	Preserve Shorthand = "preserve"
	// Always collapses into a shorthand when the geometry allows it.
	Always Shorthand = "always"
	// Never expands every shorthand into its full form.
	Never Shorthand = "never"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid style")

// Style holds the serializer settings. Zero values are not meaningful;
// start from Default or Canonical.
type Style struct {
	Coordinates     Coordinates `yaml:"coordinates" toml:"coordinates"`
	Commands        Commands    `yaml:"commands" toml:"commands"`
	ShorthandLines  Shorthand   `yaml:"shorthand_lines" toml:"shorthand_lines"`
	ShorthandCurves Shorthand   `yaml:"shorthand_curves" toml:"shorthand_curves"`
	// Precision is the number of decimals kept; negative means the
	// shortest representation that parses back to the same value.
	Precision        int    `yaml:"precision" toml:"precision"`
	StripLeadingZero bool   `yaml:"strip_leading_zero" toml:"strip_leading_zero"`
	ListSeparator    string `yaml:"list_separator" toml:"list_separator"`
}

// Default returns the settings used when a caller passes none.
func Default() Style {
	return Style{
		Coordinates:     Original,
		Commands:        Explicit,
		ShorthandLines:  Preserve,
		ShorthandCurves: Preserve,
		Precision:       -1,
		ListSeparator:   " ",
	}
}

// Canonical returns a lossless style: absolute coordinates, every letter
// written, shorthands untouched.
func Canonical() Style {
	s := Default()
	s.Coordinates = Absolute
	return s
}

// Compact returns a style tuned for small output.
func Compact() Style {
	return Style{
		Coordinates:      Relative,
		Commands:         Implicit,
		ShorthandLines:   Always,
		ShorthandCurves:  Always,
		Precision:        3,
		StripLeadingZero: true,
		ListSeparator:    ",",
	}
}

// Validate checks that every enumerated field has a known value.
func (s Style) Validate() error {
	switch s.Coordinates {
	case Original, Absolute, Relative:
	default:
		return fmt.Errorf("%w: coordinates %q", ErrInvalid, s.Coordinates)
	}
	switch s.Commands {
	case Explicit, Implicit:
	default:
		return fmt.Errorf("%w: commands %q", ErrInvalid, s.Commands)
	}
	for name, v := range map[string]Shorthand{"shorthand_lines": s.ShorthandLines, "shorthand_curves": s.ShorthandCurves} {
		switch v {
		case Preserve, Always, Never:
		default:
			return fmt.Errorf("%w: %s %q", ErrInvalid, name, v)
		}
	}
	switch s.ListSeparator {
	case " ", ",", ", ":
	default:
		return fmt.Errorf("%w: list_separator %q", ErrInvalid, s.ListSeparator)
	}
	if s.Precision > 17 {
		return fmt.Errorf("%w: precision %d", ErrInvalid, s.Precision)
	}
	return nil
}

// AppendNumber formats f according to the precision and leading zero
// settings.
func (s Style) AppendNumber(b []byte, f float64) []byte {
	start := len(b)
	if s.Precision >= 0 && math.Abs(f)*math.Pow10(s.Precision) < 1e18 {
		b = strconv.AppendDecimal(b, f, s.Precision)
	} else {
		if f == 0 {
			f = 0 // drops the sign of -0
		}
		b = stdstrconv.AppendFloat(b, f, 'f', -1, 64)
	}
	if s.StripLeadingZero {
		b = stripLeadingZero(b, start)
	}
	return b
}

// FormatNumber is AppendNumber into a new string.
func (s Style) FormatNumber(f float64) string {
	return string(s.AppendNumber(nil, f))
}

func stripLeadingZero(b []byte, start int) []byte {
	num := b[start:]
	switch {
	case len(num) > 2 && num[0] == '0' && num[1] == '.':
		return append(b[:start], num[1:]...)
	case len(num) > 3 && num[0] == '-' && num[1] == '0' && num[2] == '.':
		return append(b[:start+1], num[2:]...)
	}
	return b
}
