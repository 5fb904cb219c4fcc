package width_test

import (
	"testing"

	"github.com/markrepedersen/netparser/width"
)

func TestConstructorMasksOverflow(t *testing.T) {
	// Constructing a width-w value from an input wider than w bits masks
	// rather than panics or silently keeps the high bits.
	got := width.NewU4(0xFF) // 0xFF has bits above the 4-bit boundary set
	if got != width.MaxU4 {
		t.Fatalf("NewU4(0xFF) = %v, want %v", got, width.MaxU4)
	}
	got6 := width.NewU6(0xFF)
	if got6 != width.MaxU6 {
		t.Fatalf("NewU6(0xFF) = %v, want %v", got6, width.MaxU6)
	}
}

func TestMaxValuesMatchBitWidth(t *testing.T) {
	cases := []struct {
		name string
		max  uint64
		want uint64
	}{
		{"U1", uint64(width.MaxU1), 1},
		{"U3", uint64(width.MaxU3), 7},
		{"U4", uint64(width.MaxU4), 15},
		{"U7", uint64(width.MaxU7), 127},
		{"U9", uint64(width.MaxU9), 511},
		{"U12", uint64(width.MaxU12), 4095},
		{"U15", uint64(width.MaxU15), 32767},
		{"U17", uint64(width.MaxU17), 131071},
		{"U20", uint64(width.MaxU20), 1048575},
		{"U24", uint64(width.MaxU24), 16777215},
		{"U48", uint64(width.MaxU48), 281474976710655},
		{"U56", uint64(width.MaxU56), 72057594037927935},
	}
	for _, c := range cases {
		if c.max != c.want {
			t.Errorf("%s: max = %d, want %d", c.name, c.max, c.want)
		}
	}
}

func TestWrappingAddMasksResult(t *testing.T) {
	// U4 max is 15; 15+2 should wrap to 1, never observable as 17.
	sum := width.MaxU4.Add(width.NewU4(2))
	if sum != width.NewU4(1) {
		t.Fatalf("MaxU4.Add(2) = %v, want 1", sum)
	}
}

func TestWrappingSubMasksResult(t *testing.T) {
	zero := width.NewU5(0)
	one := width.NewU5(1)
	diff := zero.Sub(one)
	if diff != width.MaxU5 {
		t.Fatalf("0-1 (mod 2^5) = %v, want %v", diff, width.MaxU5)
	}
}

func TestBitwiseOpsStayWithinWidth(t *testing.T) {
	a := width.NewU6(0b101010)
	b := width.NewU6(0b011100)
	if got := a.And(b); got != width.NewU6(0b001000) {
		t.Fatalf("And = %v", got)
	}
	if got := a.Or(b); got != width.NewU6(0b111110) {
		t.Fatalf("Or = %v", got)
	}
	if got := a.Xor(b); got != width.NewU6(0b110110) {
		t.Fatalf("Xor = %v", got)
	}
	if got := a.Not(); got != width.NewU6(^a.Uint8()) {
		t.Fatalf("Not = %v", got)
	}
}

func TestShlMasksOverflowBits(t *testing.T) {
	// Shifting a 4-bit value left until bits fall off the top must mask,
	// not silently widen.
	v := width.NewU4(0b1111)
	got := v.Shl(2)
	if got != width.NewU4(0b1100) {
		t.Fatalf("Shl(2) = %v, want 0b1100", got)
	}
}

func TestEqualityComparesMaskedValue(t *testing.T) {
	// Two constructions from different raw inputs that mask to the same
	// value must compare equal using Go's native == on the named type.
	a := width.NewU3(0b1011) // masks to 0b011
	b := width.NewU3(0b011)
	if a != b {
		t.Fatalf("a=%v b=%v, want equal", a, b)
	}
}

func TestStringFormatsDecimal(t *testing.T) {
	v := width.NewU10(42)
	if v.String() != "42" {
		t.Fatalf("String() = %q, want %q", v.String(), "42")
	}
}
