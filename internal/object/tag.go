package object

import "fmt"

// BadTaggedDatumError indicates TypeTag or Contents was invoked on a value
// that is not a tagged compound (e.g. a bare payload created outside the
// generic system).
type BadTaggedDatumError struct {
	Value Object
}

func (e *BadTaggedDatumError) Error() string {
	if e.Value == nil {
		return "not a tagged datum: nil"
	}
	return fmt.Sprintf("not a tagged datum: %s", e.Value.Inspect())
}

// Attach wraps payload in a compound carrying tag. It never fails.
func Attach(tag Tag, payload Object) *Tagged {
	return &Tagged{TagName: tag, Payload: payload}
}

// TypeTag returns the outer tag of v.
func TypeTag(v Object) (Tag, error) {
	t, ok := v.(*Tagged)
	if !ok {
		return "", &BadTaggedDatumError{Value: v}
	}
	return t.TagName, nil
}

// Contents strips exactly one tag level from v and returns the payload.
func Contents(v Object) (Object, error) {
	t, ok := v.(*Tagged)
	if !ok {
		return nil, &BadTaggedDatumError{Value: v}
	}
	return t.Payload, nil
}
