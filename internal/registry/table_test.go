package registry

import (
	"testing"

	"github.com/funvibe/numtower/internal/object"
)

func constImpl(v float64) Impl {
	return func(args ...object.Object) (object.Object, error) {
		return &object.Number{Value: v}, nil
	}
}

func call(t *testing.T, impl Impl) float64 {
	t.Helper()
	res, err := impl()
	if err != nil {
		t.Fatalf("impl() error = %v", err)
	}
	return res.(*object.Number).Value
}

func TestPutAndGet(t *testing.T) {
	tbl := NewTable()
	sig := []object.Tag{object.RationalTag, object.RationalTag}
	tbl.Put("add", sig, constImpl(1))

	impl, ok := tbl.Get("add", sig)
	if !ok {
		t.Fatal("Get() reported missing entry after Put()")
	}
	if got := call(t, impl); got != 1 {
		t.Errorf("impl() = %g, want 1", got)
	}
}

func TestFirstRegistrationWins(t *testing.T) {
	tbl := NewTable()
	sig := []object.Tag{object.RationalTag, object.RationalTag}

	tbl.Put("add", sig, constImpl(1))
	tbl.Put("add", sig, constImpl(2)) // silently ignored

	impl, ok := tbl.Get("add", sig)
	if !ok {
		t.Fatal("Get() reported missing entry")
	}
	if got := call(t, impl); got != 1 {
		t.Errorf("impl() = %g, want 1 (first registration must win)", got)
	}
	if tbl.Len() != 1 {
		t.Errorf("Len() = %d, want 1", tbl.Len())
	}
}

func TestSignatureOrderMatters(t *testing.T) {
	tbl := NewTable()
	tbl.Put("add", []object.Tag{object.RationalTag, object.ComplexTag}, constImpl(1))

	if _, ok := tbl.Get("add", []object.Tag{object.ComplexTag, object.RationalTag}); ok {
		t.Error("Get() matched a reordered signature; keys must be order-sensitive")
	}
	if _, ok := tbl.Get("add", []object.Tag{object.RationalTag, object.ComplexTag}); !ok {
		t.Error("Get() missed the exact signature")
	}
}

func TestExactMatchOnly(t *testing.T) {
	tbl := NewTable()
	tbl.Put("add", []object.Tag{object.RationalTag, object.RationalTag}, constImpl(1))

	tests := []struct {
		name string
		op   string
		sig  []object.Tag
	}{
		{"different op", "sub", []object.Tag{object.RationalTag, object.RationalTag}},
		{"shorter signature", "add", []object.Tag{object.RationalTag}},
		{"longer signature", "add", []object.Tag{object.RationalTag, object.RationalTag, object.RationalTag}},
		{"empty signature", "add", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := tbl.Get(tt.op, tt.sig); ok {
				t.Error("Get() matched a non-identical key")
			}
		})
	}
}

func TestDistinctArityKeysDoNotCollide(t *testing.T) {
	tbl := NewTable()
	tbl.Put("make", []object.Tag{object.ComplexTag}, constImpl(1))
	tbl.Put("make", []object.Tag{object.ComplexTag, object.ComplexTag}, constImpl(2))

	impl, ok := tbl.Get("make", []object.Tag{object.ComplexTag})
	if !ok {
		t.Fatal("Get() missed single-tag entry")
	}
	if got := call(t, impl); got != 1 {
		t.Errorf("single-tag impl() = %g, want 1", got)
	}

	impl, ok = tbl.Get("make", []object.Tag{object.ComplexTag, object.ComplexTag})
	if !ok {
		t.Fatal("Get() missed two-tag entry")
	}
	if got := call(t, impl); got != 2 {
		t.Errorf("two-tag impl() = %g, want 2", got)
	}
}
