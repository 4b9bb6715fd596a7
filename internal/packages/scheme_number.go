package packages

import (
	"github.com/funvibe/numtower/internal/config"
	"github.com/funvibe/numtower/internal/object"
	"github.com/funvibe/numtower/internal/registry"
)

// InstallSchemeNumberPackage registers arithmetic over ordinary numbers.
// The implementations are direct pass-throughs to the host float arithmetic;
// every result is re-tagged scheme-number on the way out. Division by zero is
// whatever the host float division yields, as with any other host primitive.
func InstallSchemeNumberPackage(t *registry.Table) {
	tag := func(v float64) object.Object {
		return object.Attach(object.SchemeNumberTag, &object.Number{Value: v})
	}

	binary := func(fn func(x, y float64) float64) registry.Impl {
		return func(args ...object.Object) (object.Object, error) {
			x, y, err := twoFloats(args)
			if err != nil {
				return nil, err
			}
			return tag(fn(x, y)), nil
		}
	}

	sig := []object.Tag{object.SchemeNumberTag, object.SchemeNumberTag}
	t.Put(config.AddOp, sig, binary(func(x, y float64) float64 { return x + y }))
	t.Put(config.SubOp, sig, binary(func(x, y float64) float64 { return x - y }))
	t.Put(config.MulOp, sig, binary(func(x, y float64) float64 { return x * y }))
	t.Put(config.DivOp, sig, binary(func(x, y float64) float64 { return x / y }))

	t.Put(config.MakeOp, []object.Tag{object.SchemeNumberTag}, func(args ...object.Object) (object.Object, error) {
		if len(args) != 1 {
			return nil, errArity(config.MakeOp, 1, len(args))
		}
		v, err := asFloat(args[0])
		if err != nil {
			return nil, err
		}
		return tag(v), nil
	})
}
