package packages

import (
	"math"

	"github.com/funvibe/numtower/internal/config"
	"github.com/funvibe/numtower/internal/object"
	"github.com/funvibe/numtower/internal/registry"
)

// InstallPolarPackage registers the (magnitude, angle) representation of a
// complex number. It is interchangeable with the rectangular package: both
// answer the same four accessors, each computing the quantities its own pair
// does not hold directly.
func InstallPolarPackage(t *registry.Table) {
	tag := func(first, second float64) object.Object {
		return object.Attach(object.PolarTag, &object.Pair{First: first, Second: second})
	}

	accessor := func(fn func(p *object.Pair) float64) registry.Impl {
		return func(args ...object.Object) (object.Object, error) {
			if len(args) != 1 {
				return nil, errArity("polar accessor", 1, len(args))
			}
			p, err := asPair(args[0])
			if err != nil {
				return nil, err
			}
			return &object.Number{Value: fn(p)}, nil
		}
	}

	own := []object.Tag{object.PolarTag}
	t.Put(config.RealPartOp, own, accessor(func(p *object.Pair) float64 {
		return p.First * math.Cos(p.Second)
	}))
	t.Put(config.ImagPartOp, own, accessor(func(p *object.Pair) float64 {
		return p.First * math.Sin(p.Second)
	}))
	t.Put(config.MagnitudeOp, own, accessor(func(p *object.Pair) float64 { return p.First }))
	t.Put(config.AngleOp, own, accessor(func(p *object.Pair) float64 { return p.Second }))

	t.Put(config.MakeFromRealImagOp, own, func(args ...object.Object) (object.Object, error) {
		x, y, err := twoFloats(args)
		if err != nil {
			return nil, err
		}
		return tag(math.Hypot(x, y), math.Atan2(y, x)), nil
	})
	t.Put(config.MakeFromMagAngOp, own, func(args ...object.Object) (object.Object, error) {
		r, a, err := twoFloats(args)
		if err != nil {
			return nil, err
		}
		return tag(r, a), nil
	})
}
