package cli

import (
	"fmt"
	"strconv"

	"github.com/funvibe/numtower/pkg/tower"
)

// reader walks one prefix expression, e.g.
//
//	(add (rat 1 2) (rat 1 3))
//	(mag (complex 3 4))
//	(div (polar 6 1.2) (polar 2 0.4))
//
// Construction forms: num, rat, complex (real, imag), polar (mag, ang); a
// bare number literal is shorthand for num. Operation forms: add, sub, mul,
// div with two subexpressions; real, imag, mag, ang with one.
type reader struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           byte // current char under examination
}

func newReader(input string) *reader {
	r := &reader{input: input}
	r.readChar()
	return r
}

func (r *reader) readChar() {
	if r.readPosition >= len(r.input) {
		r.ch = 0
	} else {
		r.ch = r.input[r.readPosition]
	}
	r.position = r.readPosition
	r.readPosition++
}

func (r *reader) skipWhitespace() {
	for r.ch == ' ' || r.ch == '\t' || r.ch == '\n' || r.ch == '\r' {
		r.readChar()
	}
}

func isAtomChar(ch byte) bool {
	return ch != 0 && ch != '(' && ch != ')' && ch != ' ' && ch != '\t' && ch != '\n' && ch != '\r'
}

func (r *reader) readAtom() string {
	start := r.position
	for isAtomChar(r.ch) {
		r.readChar()
	}
	return r.input[start:r.position]
}

func (r *reader) readFloat() (float64, error) {
	r.skipWhitespace()
	atom := r.readAtom()
	if atom == "" {
		return 0, fmt.Errorf("expected a number at position %d", r.position)
	}
	v, err := strconv.ParseFloat(atom, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", atom)
	}
	return v, nil
}

func (r *reader) readInt() (int64, error) {
	r.skipWhitespace()
	atom := r.readAtom()
	if atom == "" {
		return 0, fmt.Errorf("expected an integer at position %d", r.position)
	}
	v, err := strconv.ParseInt(atom, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("not an integer: %q", atom)
	}
	return v, nil
}

func (r *reader) expectClose() error {
	r.skipWhitespace()
	if r.ch != ')' {
		return fmt.Errorf("expected ) at position %d", r.position)
	}
	r.readChar()
	return nil
}

func (r *reader) parseExpr(tw *tower.Tower) (tower.Object, error) {
	r.skipWhitespace()
	if r.ch == 0 {
		return nil, fmt.Errorf("unexpected end of input")
	}
	if r.ch != '(' {
		v, err := r.readFloat()
		if err != nil {
			return nil, err
		}
		return tw.MakeSchemeNumber(v)
	}
	r.readChar() // consume (
	r.skipWhitespace()
	head := r.readAtom()

	switch head {
	case "num":
		v, err := r.readFloat()
		if err != nil {
			return nil, err
		}
		if err := r.expectClose(); err != nil {
			return nil, err
		}
		return tw.MakeSchemeNumber(v)

	case "rat":
		n, err := r.readInt()
		if err != nil {
			return nil, err
		}
		d, err := r.readInt()
		if err != nil {
			return nil, err
		}
		if err := r.expectClose(); err != nil {
			return nil, err
		}
		return tw.MakeRational(n, d)

	case "complex", "polar":
		a, err := r.readFloat()
		if err != nil {
			return nil, err
		}
		b, err := r.readFloat()
		if err != nil {
			return nil, err
		}
		if err := r.expectClose(); err != nil {
			return nil, err
		}
		if head == "complex" {
			return tw.MakeComplexFromRealImag(a, b)
		}
		return tw.MakeComplexFromMagAng(a, b)

	case "add", "sub", "mul", "div":
		x, err := r.parseExpr(tw)
		if err != nil {
			return nil, err
		}
		y, err := r.parseExpr(tw)
		if err != nil {
			return nil, err
		}
		if err := r.expectClose(); err != nil {
			return nil, err
		}
		switch head {
		case "add":
			return tw.Add(x, y)
		case "sub":
			return tw.Sub(x, y)
		case "mul":
			return tw.Mul(x, y)
		default:
			return tw.Div(x, y)
		}

	case "real", "imag", "mag", "ang":
		z, err := r.parseExpr(tw)
		if err != nil {
			return nil, err
		}
		if err := r.expectClose(); err != nil {
			return nil, err
		}
		switch head {
		case "real":
			return tw.RealPart(z)
		case "imag":
			return tw.ImagPart(z)
		case "mag":
			return tw.Magnitude(z)
		default:
			return tw.Angle(z)
		}

	default:
		return nil, fmt.Errorf("unknown form %q", head)
	}
}

// Eval parses and evaluates a single expression against tw.
func Eval(tw *tower.Tower, input string) (tower.Object, error) {
	r := newReader(input)
	obj, err := r.parseExpr(tw)
	if err != nil {
		return nil, err
	}
	r.skipWhitespace()
	if r.ch != 0 {
		return nil, fmt.Errorf("unexpected trailing input at position %d", r.position)
	}
	return obj, nil
}
