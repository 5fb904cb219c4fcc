package parse_test

import (
	"errors"
	"testing"

	"github.com/markrepedersen/netparser/parse"
)

func TestCursorTakeAndRemaining(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5}
	c := parse.NewCursor(buf)
	got, err := c.Take(2)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != string(buf[:2]) {
		t.Fatalf("got %v want %v", got, buf[:2])
	}
	if string(c.Remaining()) != string(buf[2:]) {
		t.Fatalf("remaining mismatch: %v", c.Remaining())
	}
}

func TestCursorNeedMore(t *testing.T) {
	c := parse.NewCursor([]byte{1, 2})
	_, err := c.Take(3)
	if err == nil {
		t.Fatal("expected error")
	}
	var pe *parse.Error
	if !errors.As(err, &pe) {
		t.Fatalf("expected *parse.Error, got %T", err)
	}
}

func TestCursorBigLittleEndian(t *testing.T) {
	c := parse.NewCursor([]byte{0x01, 0x02, 0x03, 0x04})
	be, err := c.BEU16()
	if err != nil || be != 0x0102 {
		t.Fatalf("BEU16 = %x, %v", be, err)
	}
	c2 := parse.NewCursor([]byte{0x01, 0x02, 0x03, 0x04})
	le, err := c2.LEU16()
	if err != nil || le != 0x0201 {
		t.Fatalf("LEU16 = %x, %v", le, err)
	}
}

func TestContextPushesLabel(t *testing.T) {
	c := parse.NewCursor([]byte{1, 2})
	_, err := parse.Context(c, "inner frame", func(c *parse.Cursor) (int, error) {
		return parse.Context(c, "outer frame", func(c *parse.Cursor) (int, error) {
			_, err := c.Take(10)
			return 0, err
		})
	})
	if err == nil {
		t.Fatal("expected error")
	}
	var pe *parse.Error
	if !errors.As(err, &pe) {
		t.Fatalf("expected *parse.Error: %T", err)
	}
	chain := pe.Chain()
	if len(chain) != 3 {
		t.Fatalf("expected 3 chain entries (needmore, outer, inner), got %d: %v", len(chain), chain)
	}
}

func TestMany0StopsOnFailureWithoutConsuming(t *testing.T) {
	c := parse.NewCursor([]byte{1, 1, 1, 0xFF})
	vals := parse.Many0(c, func(c *parse.Cursor) (byte, error) {
		b, err := c.U8()
		if err != nil {
			return 0, err
		}
		if b != 1 {
			return 0, errors.New("not one")
		}
		return b, nil
	})
	if len(vals) != 3 {
		t.Fatalf("expected 3 values, got %d", len(vals))
	}
	if c.Len() != 1 || c.Remaining()[0] != 0xFF {
		t.Fatalf("expected trailing 0xFF untouched, got %v", c.Remaining())
	}
}

func TestMany0NeverFailsOnEmptyInput(t *testing.T) {
	c := parse.NewCursor(nil)
	vals := parse.Many0(c, func(c *parse.Cursor) (byte, error) { return c.U8() })
	if len(vals) != 0 {
		t.Fatalf("expected no values, got %v", vals)
	}
}
