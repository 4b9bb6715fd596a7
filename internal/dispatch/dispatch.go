package dispatch

import (
	"fmt"
	"strings"

	"github.com/funvibe/numtower/internal/object"
	"github.com/funvibe/numtower/internal/registry"
)

// NoMethodError indicates no implementation is registered for an operation
// under the tag signature collected from the actual arguments. It carries
// both so the failure names exactly what was looked up.
type NoMethodError struct {
	Op   string
	Tags []object.Tag
}

func (e *NoMethodError) Error() string {
	parts := make([]string, len(e.Tags))
	for i, tag := range e.Tags {
		parts[i] = string(tag)
	}
	return fmt.Sprintf("no method for operation %q on types (%s)", e.Op, strings.Join(parts, " "))
}

// Apply is the single chokepoint for generic calls. It collects the outer
// tags of the arguments in order, looks up (op, tags) in the table, strips
// one tag level from every argument and invokes the matched implementation
// positionally. The implementation's result is returned verbatim.
func Apply(t *registry.Table, op string, args ...object.Object) (object.Object, error) {
	tags := make([]object.Tag, len(args))
	for i, arg := range args {
		tag, err := object.TypeTag(arg)
		if err != nil {
			return nil, err
		}
		tags[i] = tag
	}

	impl, ok := t.Get(op, tags)
	if !ok {
		return nil, &NoMethodError{Op: op, Tags: tags}
	}

	stripped := make([]object.Object, len(args))
	for i, arg := range args {
		contents, err := object.Contents(arg)
		if err != nil {
			return nil, err
		}
		stripped[i] = contents
	}
	return impl(stripped...)
}
