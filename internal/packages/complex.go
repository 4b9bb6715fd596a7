package packages

import (
	"github.com/funvibe/numtower/internal/config"
	"github.com/funvibe/numtower/internal/dispatch"
	"github.com/funvibe/numtower/internal/object"
	"github.com/funvibe/numtower/internal/registry"
)

// InstallComplexPackage registers complex arithmetic. The package is itself
// generic over the rectangular and polar representations: add/sub/mul/div are
// written purely against the four generic accessors, dispatched through the
// same table on the inner representation tag. It never touches a pair
// directly, so new representations slot in underneath it unchanged.
//
// Both result constructors are routed through the rectangular package's
// registered constructors, make-from-mag-ang included. The polar package's
// constructors are installed but not wired in here, so polar-looking
// construction yields rectangular-tagged payloads; callers relying on the
// accessors never observe the difference.
func InstallComplexPackage(t *registry.Table) {
	makeFromRealImag := func(x, y float64) (object.Object, error) {
		sig := []object.Tag{object.RectangularTag}
		impl, ok := t.Get(config.MakeFromRealImagOp, sig)
		if !ok {
			return nil, &dispatch.NoMethodError{Op: config.MakeFromRealImagOp, Tags: sig}
		}
		return impl(&object.Number{Value: x}, &object.Number{Value: y})
	}
	makeFromMagAng := func(r, a float64) (object.Object, error) {
		sig := []object.Tag{object.RectangularTag}
		impl, ok := t.Get(config.MakeFromMagAngOp, sig)
		if !ok {
			return nil, &dispatch.NoMethodError{Op: config.MakeFromMagAngOp, Tags: sig}
		}
		return impl(&object.Number{Value: r}, &object.Number{Value: a})
	}

	part := func(op string, z object.Object) (float64, error) {
		res, err := dispatch.Apply(t, op, z)
		if err != nil {
			return 0, err
		}
		return asFloat(res)
	}
	parts := func(op string, z1, z2 object.Object) (float64, float64, error) {
		a, err := part(op, z1)
		if err != nil {
			return 0, 0, err
		}
		b, err := part(op, z2)
		if err != nil {
			return 0, 0, err
		}
		return a, b, nil
	}

	tag := func(inner object.Object, err error) (object.Object, error) {
		if err != nil {
			return nil, err
		}
		return object.Attach(object.ComplexTag, inner), nil
	}

	// Addition and subtraction are componentwise; multiplication and
	// division work on magnitudes and angles. Either way the cost is the
	// accessor dispatches, whatever representation the operands hold.
	addSub := func(sign float64) registry.Impl {
		return func(args ...object.Object) (object.Object, error) {
			if len(args) != 2 {
				return nil, errArity("complex operation", 2, len(args))
			}
			x1, x2, err := parts(config.RealPartOp, args[0], args[1])
			if err != nil {
				return nil, err
			}
			y1, y2, err := parts(config.ImagPartOp, args[0], args[1])
			if err != nil {
				return nil, err
			}
			return tag(makeFromRealImag(x1+sign*x2, y1+sign*y2))
		}
	}
	mulDiv := func(combine func(r1, r2, a1, a2 float64) (float64, float64)) registry.Impl {
		return func(args ...object.Object) (object.Object, error) {
			if len(args) != 2 {
				return nil, errArity("complex operation", 2, len(args))
			}
			r1, r2, err := parts(config.MagnitudeOp, args[0], args[1])
			if err != nil {
				return nil, err
			}
			a1, a2, err := parts(config.AngleOp, args[0], args[1])
			if err != nil {
				return nil, err
			}
			r, a := combine(r1, r2, a1, a2)
			return tag(makeFromMagAng(r, a))
		}
	}

	sig := []object.Tag{object.ComplexTag, object.ComplexTag}
	t.Put(config.AddOp, sig, addSub(1))
	t.Put(config.SubOp, sig, addSub(-1))
	t.Put(config.MulOp, sig, mulDiv(func(r1, r2, a1, a2 float64) (float64, float64) {
		return r1 * r2, a1 + a2
	}))
	t.Put(config.DivOp, sig, mulDiv(func(r1, r2, a1, a2 float64) (float64, float64) {
		return r1 / r2, a1 - a2
	}))

	// Accessors at the complex tag re-dispatch on the inner representation
	// tag. This is the second level of the two-level dispatch: the outer
	// strip exposes the rectangular-or-polar value, which Apply routes again.
	own := []object.Tag{object.ComplexTag}
	for _, op := range []string{config.RealPartOp, config.ImagPartOp, config.MagnitudeOp, config.AngleOp} {
		op := op
		t.Put(op, own, func(args ...object.Object) (object.Object, error) {
			if len(args) != 1 {
				return nil, errArity(op, 1, len(args))
			}
			return dispatch.Apply(t, op, args[0])
		})
	}

	t.Put(config.MakeFromRealImagOp, own, func(args ...object.Object) (object.Object, error) {
		x, y, err := twoFloats(args)
		if err != nil {
			return nil, err
		}
		return tag(makeFromRealImag(x, y))
	})
	t.Put(config.MakeFromMagAngOp, own, func(args ...object.Object) (object.Object, error) {
		r, a, err := twoFloats(args)
		if err != nil {
			return nil, err
		}
		return tag(makeFromMagAng(r, a))
	})
}
