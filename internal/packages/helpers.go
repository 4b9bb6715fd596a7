package packages

import (
	"fmt"

	"github.com/funvibe/numtower/internal/object"
)

func asFloat(o object.Object) (float64, error) {
	switch v := o.(type) {
	case *object.Number:
		return v.Value, nil
	case *object.Integer:
		return float64(v.Value), nil
	default:
		return 0, fmt.Errorf("expected a number, got %s", o.Type())
	}
}

func asInt(o object.Object) (int64, error) {
	v, ok := o.(*object.Integer)
	if !ok {
		return 0, fmt.Errorf("expected an integer, got %s", o.Type())
	}
	return v.Value, nil
}

func asPair(o object.Object) (*object.Pair, error) {
	p, ok := o.(*object.Pair)
	if !ok {
		return nil, fmt.Errorf("expected a pair, got %s", o.Type())
	}
	return p, nil
}

func asRat(o object.Object) (*object.Rat, error) {
	r, ok := o.(*object.Rat)
	if !ok {
		return nil, fmt.Errorf("expected a rational, got %s", o.Type())
	}
	return r, nil
}

func errArity(op string, want, got int) error {
	return fmt.Errorf("%s expects %d arguments, got %d", op, want, got)
}

func twoFloats(args []object.Object) (float64, float64, error) {
	if len(args) != 2 {
		return 0, 0, fmt.Errorf("expected 2 arguments, got %d", len(args))
	}
	x, err := asFloat(args[0])
	if err != nil {
		return 0, 0, err
	}
	y, err := asFloat(args[1])
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}
