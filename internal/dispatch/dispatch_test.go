package dispatch

import (
	"errors"
	"strings"
	"testing"

	"github.com/funvibe/numtower/internal/object"
	"github.com/funvibe/numtower/internal/registry"
)

func TestApplyStripsOneTagLevel(t *testing.T) {
	tbl := registry.NewTable()
	var seen []object.Object
	tbl.Put("add", []object.Tag{object.SchemeNumberTag, object.SchemeNumberTag},
		func(args ...object.Object) (object.Object, error) {
			seen = args
			return &object.Number{Value: 0}, nil
		})

	x := object.Attach(object.SchemeNumberTag, &object.Number{Value: 1})
	y := object.Attach(object.SchemeNumberTag, &object.Number{Value: 2})
	if _, err := Apply(tbl, "add", x, y); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	if len(seen) != 2 {
		t.Fatalf("impl received %d args, want 2", len(seen))
	}
	for i, arg := range seen {
		n, ok := arg.(*object.Number)
		if !ok {
			t.Fatalf("arg %d = %T, want untagged *Number", i, arg)
		}
		if n.Value != float64(i+1) {
			t.Errorf("arg %d = %g, want %d (positional order must be preserved)", i, n.Value, i+1)
		}
	}
}

func TestApplyNoMethod(t *testing.T) {
	tbl := registry.NewTable()
	x := object.Attach(object.RationalTag, &object.Rat{})
	y := object.Attach(object.ComplexTag, &object.Pair{})

	_, err := Apply(tbl, "add", x, y)
	if err == nil {
		t.Fatal("Apply() expected error, got nil")
	}

	var noMethod *NoMethodError
	if !errors.As(err, &noMethod) {
		t.Fatalf("Apply() error = %T, want *NoMethodError", err)
	}
	if noMethod.Op != "add" {
		t.Errorf("NoMethodError.Op = %q, want %q", noMethod.Op, "add")
	}
	if len(noMethod.Tags) != 2 || noMethod.Tags[0] != object.RationalTag || noMethod.Tags[1] != object.ComplexTag {
		t.Errorf("NoMethodError.Tags = %v, want [rational complex]", noMethod.Tags)
	}
	// The message must name the operation and the full tag list.
	msg := err.Error()
	if !strings.Contains(msg, `"add"`) || !strings.Contains(msg, "(rational complex)") {
		t.Errorf("error message %q does not name operation and tags", msg)
	}
}

func TestApplyRejectsUntaggedArgument(t *testing.T) {
	tbl := registry.NewTable()
	_, err := Apply(tbl, "add", &object.Number{Value: 1})
	if err == nil {
		t.Fatal("Apply() expected error, got nil")
	}
	var bad *object.BadTaggedDatumError
	if !errors.As(err, &bad) {
		t.Errorf("Apply() error = %T, want *BadTaggedDatumError", err)
	}
}

func TestApplyReturnsImplResultVerbatim(t *testing.T) {
	tbl := registry.NewTable()
	want := object.Attach(object.RationalTag, &object.Rat{})
	tbl.Put("id", []object.Tag{object.RationalTag}, func(args ...object.Object) (object.Object, error) {
		return want, nil
	})

	got, err := Apply(tbl, "id", object.Attach(object.RationalTag, &object.Rat{}))
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if got != want {
		t.Error("Apply() did not return the implementation result verbatim")
	}
}
