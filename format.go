package numerics

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var ErrInvalidFormat = errors.New("numerics: invalid format specifier")

// String renders the vector as "<X, Y>" using the shortest representation
// that round-trips each float32 component.
func (a Vector2) String() string {
	s, _ := a.Text("G", language.Und)
	return s
}

// Format implements fmt.Formatter. Float verbs and their flags apply to each
// component, so %.2f prints "<1.00, 2.00>". %v and %s pad the whole text to
// the given width.
func (a Vector2) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
		if verb == 'v' && s.Flag('#') {
			fmt.Fprintf(s, "numerics.Vector2{X:%#v, Y:%#v}", a.X, a.Y)
			return
		}
		// Width and the '-' flag pad the whole "<X, Y>" text.
		fmt.Fprintf(s, fmt.FormatString(s, 's'), a.String())
	case 'b', 'e', 'E', 'f', 'F', 'g', 'G', 'x', 'X':
		d := fmt.FormatString(s, verb)
		fmt.Fprintf(s, "<"+d+", "+d+">", a.X, a.Y)
	default:
		fmt.Fprintf(s, "%%!%c(numerics.Vector2=%s)", verb, a.String())
	}
}

// Text renders the vector with a format specifier and the numeric
// conventions of tag. language.Und selects invariant formatting.
//
// Specifiers, each with an optional precision suffix:
//
//	G, G<n>  shortest round-trip, or n significant digits
//	F, F<n>  fixed point with n decimals (default 2)
//	N, N<n>  fixed point with digit grouping (default 2)
//	E, E<n>  scientific with n decimals (default 6)
//
// An empty specifier means G.
func (a Vector2) Text(format string, tag language.Tag) (string, error) {
	kind, prec, err := parseSpecifier(format)
	if err != nil {
		return "", err
	}

	mark := "."
	var p *message.Printer
	if kind == 'N' || tag != language.Und {
		if tag == language.Und {
			p = message.NewPrinter(language.English)
		} else {
			p = message.NewPrinter(tag)
			mark = decimalMark(p)
		}
	}

	sep := ","
	if mark == "," {
		sep = ";"
	}

	x := formatComponent(p, kind, prec, mark, a.X)
	y := formatComponent(p, kind, prec, mark, a.Y)
	return "<" + x + sep + " " + y + ">", nil
}

func parseSpecifier(format string) (byte, int, error) {
	if format == "" {
		return 'G', -1, nil
	}
	kind := format[0]
	if kind >= 'a' && kind <= 'z' {
		kind -= 'a' - 'A'
	}
	switch kind {
	case 'G', 'F', 'N', 'E':
	default:
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidFormat, format)
	}
	if len(format) == 1 {
		return kind, -1, nil
	}
	prec, err := strconv.Atoi(format[1:])
	if err != nil || prec < 0 || prec > 99 || format[1] == '+' {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidFormat, format)
	}
	return kind, prec, nil
}

func formatComponent(p *message.Printer, kind byte, prec int, mark string, v float32) string {
	var s string
	switch kind {
	case 'G':
		if prec == 0 {
			prec = -1
		}
		s = strconv.FormatFloat(float64(v), 'G', prec, 32)
	case 'F':
		if prec < 0 {
			prec = 2
		}
		s = strconv.FormatFloat(float64(v), 'f', prec, 32)
	case 'E':
		if prec < 0 {
			prec = 6
		}
		s = strconv.FormatFloat(float64(v), 'E', prec, 32)
	case 'N':
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			return strconv.FormatFloat(float64(v), 'G', -1, 32)
		}
		if prec < 0 {
			prec = 2
		}
		return p.Sprintf("%v", number.Decimal(v, number.Scale(prec)))
	}
	if mark != "." {
		s = strings.Replace(s, ".", mark, 1)
	}
	return s
}

// decimalMark reports the decimal separator p uses, falling back to "."
// when the locale does not render with a single-rune mark between ASCII
// digits.
func decimalMark(p *message.Printer) string {
	s := p.Sprintf("%v", number.Decimal(1.5, number.Scale(1)))
	mark := strings.TrimSuffix(strings.TrimPrefix(s, "1"), "5")
	if utf8.RuneCountInString(mark) != 1 {
		return "."
	}
	return mark
}
