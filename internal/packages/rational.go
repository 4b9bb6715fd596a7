package packages

import (
	"math/big"

	"github.com/funvibe/numtower/internal/config"
	"github.com/funvibe/numtower/internal/object"
	"github.com/funvibe/numtower/internal/registry"
)

// DivisionByZeroError indicates a rational with a zero denominator, either
// from the constructor directly or from dividing by a zero rational.
type DivisionByZeroError struct{}

func (e *DivisionByZeroError) Error() string { return "division by zero" }

// makeRat is the only place a rational is reduced: numerator and denominator
// are divided by their gcd and the sign is normalized onto the numerator, so
// every stored rational has Den > 0 and gcd(Num, Den) == 1.
func makeRat(n, d *big.Int) (object.Object, error) {
	if d.Sign() == 0 {
		return nil, &DivisionByZeroError{}
	}
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(n), new(big.Int).Abs(d))
	num := new(big.Int).Quo(n, g)
	den := new(big.Int).Quo(d, g)
	if den.Sign() < 0 {
		num.Neg(num)
		den.Neg(den)
	}
	return object.Attach(object.RationalTag, &object.Rat{Num: num, Den: den}), nil
}

// InstallRationalPackage registers rational arithmetic in cross-multiply
// form. All four operations funnel results through makeRat, which is where
// the lowest-terms invariant and the zero-denominator failure live.
func InstallRationalPackage(t *registry.Table) {
	binary := func(fn func(x, y *object.Rat) (*big.Int, *big.Int)) registry.Impl {
		return func(args ...object.Object) (object.Object, error) {
			if len(args) != 2 {
				return nil, errArity("rational operation", 2, len(args))
			}
			x, err := asRat(args[0])
			if err != nil {
				return nil, err
			}
			y, err := asRat(args[1])
			if err != nil {
				return nil, err
			}
			n, d := fn(x, y)
			return makeRat(n, d)
		}
	}

	mul := func(a, b *big.Int) *big.Int { return new(big.Int).Mul(a, b) }

	sig := []object.Tag{object.RationalTag, object.RationalTag}
	t.Put(config.AddOp, sig, binary(func(x, y *object.Rat) (*big.Int, *big.Int) {
		n := new(big.Int).Add(mul(x.Num, y.Den), mul(y.Num, x.Den))
		return n, mul(x.Den, y.Den)
	}))
	t.Put(config.SubOp, sig, binary(func(x, y *object.Rat) (*big.Int, *big.Int) {
		n := new(big.Int).Sub(mul(x.Num, y.Den), mul(y.Num, x.Den))
		return n, mul(x.Den, y.Den)
	}))
	t.Put(config.MulOp, sig, binary(func(x, y *object.Rat) (*big.Int, *big.Int) {
		return mul(x.Num, y.Num), mul(x.Den, y.Den)
	}))
	t.Put(config.DivOp, sig, binary(func(x, y *object.Rat) (*big.Int, *big.Int) {
		// y.Num == 0 surfaces as makeRat's zero-denominator failure.
		return mul(x.Num, y.Den), mul(x.Den, y.Num)
	}))

	t.Put(config.MakeOp, []object.Tag{object.RationalTag}, func(args ...object.Object) (object.Object, error) {
		if len(args) != 2 {
			return nil, errArity(config.MakeOp, 2, len(args))
		}
		n, err := asInt(args[0])
		if err != nil {
			return nil, err
		}
		d, err := asInt(args[1])
		if err != nil {
			return nil, err
		}
		return makeRat(big.NewInt(n), big.NewInt(d))
	})
}
