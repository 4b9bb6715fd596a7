package object

import (
	"fmt"
	"math/big"
)

type ObjectType string

const (
	INTEGER_OBJ  = "INTEGER"
	NUMBER_OBJ   = "NUMBER"
	RATIONAL_OBJ = "RATIONAL"
	PAIR_OBJ     = "PAIR"
	TAGGED_OBJ   = "TAGGED"
)

// Tag identifies which package or representation produced a value. The set is
// open: a new package brings its own tag and registers implementations under
// it without touching existing code.
type Tag string

const (
	SchemeNumberTag Tag = "scheme-number"
	RationalTag     Tag = "rational"
	ComplexTag      Tag = "complex"
	RectangularTag  Tag = "rectangular"
	PolarTag        Tag = "polar"
)

type Object interface {
	Type() ObjectType
	Inspect() string
}

// Integer is a raw constructor input, e.g. a rational's numerator.
type Integer struct {
	Value int64
}

func (i *Integer) Type() ObjectType { return INTEGER_OBJ }
func (i *Integer) Inspect() string  { return fmt.Sprintf("%d", i.Value) }

// Number is the ordinary-number payload: a plain host float.
type Number struct {
	Value float64
}

func (n *Number) Type() ObjectType { return NUMBER_OBJ }
func (n *Number) Inspect() string  { return fmt.Sprintf("%g", n.Value) }

// Rat is the rational payload. Num/Den are kept in lowest terms with Den > 0;
// the reduction happens in the rational package's constructor, never here.
type Rat struct {
	Num *big.Int
	Den *big.Int
}

func (r *Rat) Type() ObjectType { return RATIONAL_OBJ }
func (r *Rat) Inspect() string  { return fmt.Sprintf("%s/%s", r.Num.String(), r.Den.String()) }

// Pair is a representation payload: (real, imag) under the rectangular tag,
// (magnitude, angle) under the polar tag. The pair itself carries no
// interpretation; the surrounding tag does.
type Pair struct {
	First  float64
	Second float64
}

func (p *Pair) Type() ObjectType { return PAIR_OBJ }
func (p *Pair) Inspect() string  { return fmt.Sprintf("(%g, %g)", p.First, p.Second) }

// Tagged is the tagged compound. Payloads may themselves be tagged, which is
// how a complex value wraps its rectangular-or-polar representation.
type Tagged struct {
	TagName Tag
	Payload Object
}

func (t *Tagged) Type() ObjectType { return TAGGED_OBJ }
func (t *Tagged) Inspect() string {
	if p, ok := t.Payload.(*Pair); ok {
		return fmt.Sprintf("%s(%g, %g)", t.TagName, p.First, p.Second)
	}
	return fmt.Sprintf("%s(%s)", t.TagName, t.Payload.Inspect())
}
