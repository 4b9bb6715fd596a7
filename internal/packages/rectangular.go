package packages

import (
	"math"

	"github.com/funvibe/numtower/internal/config"
	"github.com/funvibe/numtower/internal/object"
	"github.com/funvibe/numtower/internal/registry"
)

// InstallRectangularPackage registers the (real, imag) representation of a
// complex number. Accessors operate on the bare pair; magnitude and angle are
// derived through the host trig primitives.
func InstallRectangularPackage(t *registry.Table) {
	tag := func(first, second float64) object.Object {
		return object.Attach(object.RectangularTag, &object.Pair{First: first, Second: second})
	}

	accessor := func(fn func(p *object.Pair) float64) registry.Impl {
		return func(args ...object.Object) (object.Object, error) {
			if len(args) != 1 {
				return nil, errArity("rectangular accessor", 1, len(args))
			}
			p, err := asPair(args[0])
			if err != nil {
				return nil, err
			}
			return &object.Number{Value: fn(p)}, nil
		}
	}

	own := []object.Tag{object.RectangularTag}
	t.Put(config.RealPartOp, own, accessor(func(p *object.Pair) float64 { return p.First }))
	t.Put(config.ImagPartOp, own, accessor(func(p *object.Pair) float64 { return p.Second }))
	t.Put(config.MagnitudeOp, own, accessor(func(p *object.Pair) float64 {
		return math.Hypot(p.First, p.Second)
	}))
	// Atan2 takes (imag, real) so the quadrant comes out right; its value at
	// the origin is whatever the host primitive defines.
	t.Put(config.AngleOp, own, accessor(func(p *object.Pair) float64 {
		return math.Atan2(p.Second, p.First)
	}))

	t.Put(config.MakeFromRealImagOp, own, func(args ...object.Object) (object.Object, error) {
		x, y, err := twoFloats(args)
		if err != nil {
			return nil, err
		}
		return tag(x, y), nil
	})
	t.Put(config.MakeFromMagAngOp, own, func(args ...object.Object) (object.Object, error) {
		r, a, err := twoFloats(args)
		if err != nil {
			return nil, err
		}
		return tag(r*math.Cos(a), r*math.Sin(a)), nil
	})
}
