package object

import (
	"errors"
	"math/big"
	"testing"
)

func bigInt(v int64) *big.Int { return big.NewInt(v) }

func TestAttachAndTypeTag(t *testing.T) {
	v := Attach(SchemeNumberTag, &Number{Value: 5})

	tag, err := TypeTag(v)
	if err != nil {
		t.Fatalf("TypeTag() error = %v", err)
	}
	if tag != SchemeNumberTag {
		t.Errorf("TypeTag() = %q, want %q", tag, SchemeNumberTag)
	}

	c, err := Contents(v)
	if err != nil {
		t.Fatalf("Contents() error = %v", err)
	}
	n, ok := c.(*Number)
	if !ok {
		t.Fatalf("Contents() = %T, want *Number", c)
	}
	if n.Value != 5 {
		t.Errorf("Contents().Value = %g, want 5", n.Value)
	}
}

func TestNestedTagging(t *testing.T) {
	// A complex value wraps a further-tagged representation pair; stripping
	// must go exactly one level at a time.
	inner := Attach(RectangularTag, &Pair{First: 3, Second: 4})
	outer := Attach(ComplexTag, inner)

	tag, err := TypeTag(outer)
	if err != nil {
		t.Fatalf("TypeTag(outer) error = %v", err)
	}
	if tag != ComplexTag {
		t.Errorf("TypeTag(outer) = %q, want %q", tag, ComplexTag)
	}

	stripped, err := Contents(outer)
	if err != nil {
		t.Fatalf("Contents(outer) error = %v", err)
	}
	innerTag, err := TypeTag(stripped)
	if err != nil {
		t.Fatalf("TypeTag(inner) error = %v", err)
	}
	if innerTag != RectangularTag {
		t.Errorf("TypeTag(inner) = %q, want %q", innerTag, RectangularTag)
	}

	payload, err := Contents(stripped)
	if err != nil {
		t.Fatalf("Contents(inner) error = %v", err)
	}
	if _, ok := payload.(*Pair); !ok {
		t.Errorf("Contents(inner) = %T, want *Pair", payload)
	}
}

func TestBadTaggedDatum(t *testing.T) {
	tests := []struct {
		name  string
		value Object
	}{
		{"bare number", &Number{Value: 1.5}},
		{"bare integer", &Integer{Value: 7}},
		{"bare pair", &Pair{First: 1, Second: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := TypeTag(tt.value); err == nil {
				t.Error("TypeTag() expected error, got nil")
			} else {
				var bad *BadTaggedDatumError
				if !errors.As(err, &bad) {
					t.Errorf("TypeTag() error = %T, want *BadTaggedDatumError", err)
				}
			}

			if _, err := Contents(tt.value); err == nil {
				t.Error("Contents() expected error, got nil")
			}
		})
	}
}

func TestInspect(t *testing.T) {
	tests := []struct {
		name     string
		value    Object
		expected string
	}{
		{"number", &Number{Value: 5}, "5"},
		{"rational", &Rat{Num: bigInt(2), Den: bigInt(3)}, "2/3"},
		{"tagged number", Attach(SchemeNumberTag, &Number{Value: 5}), "scheme-number(5)"},
		{"tagged pair", Attach(RectangularTag, &Pair{First: 3, Second: 4}), "rectangular(3, 4)"},
		{
			"nested complex",
			Attach(ComplexTag, Attach(RectangularTag, &Pair{First: 3, Second: 4})),
			"complex(rectangular(3, 4))",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.value.Inspect(); got != tt.expected {
				t.Errorf("Inspect() = %q, want %q", got, tt.expected)
			}
		})
	}
}
