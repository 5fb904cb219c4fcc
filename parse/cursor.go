// Package parse implements the byte- and bit-aligned parser framework the
// protocol decoders are built on: a [Cursor] over a byte slice, a
// [BitCursor] for sub-byte fields, and an explicit, owned error chain
// ([Error]) that parsers push context onto as failures unwind.
//
// There is no generic `tuple`/`map` combinator layer: Go's type system
// makes a faithful heterogeneous n-ary tuple combinator fight the
// language, so sequential composition here is just ordinary Go — a decode
// function reads its fields in wire order and returns on the first error,
// which is what `tuple` means operationally. [Context] and [Many0] are the
// two combinators that do carry their weight as generics, because both are
// homogeneous in the type they operate over.
package parse

import "encoding/binary"

// Cursor reads fixed- and variable-width fields from a byte slice in wire
// order, tracking the offset at which a future failure would be reported.
// The zero value is not usable; construct with [NewCursor].
type Cursor struct {
	buf []byte
	pos int
}

// NewCursor returns a Cursor positioned at the start of buf.
func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Pos returns the number of bytes consumed so far.
func (c *Cursor) Pos() int { return c.pos }

// Remaining returns the unconsumed tail of the input. Appended to
// everything consumed so far it reconstructs the original buffer passed
// to NewCursor — true by construction since Cursor never copies or
// discards bytes.
func (c *Cursor) Remaining() []byte { return c.buf[c.pos:] }

// Len returns the number of unconsumed bytes.
func (c *Cursor) Len() int { return len(c.buf) - c.pos }

// fail builds a fresh *Error rooted at the cursor's current position.
func (c *Cursor) fail(kind Kind) error {
	return &Error{
		chain: []frame{{pos: c.pos, kind: kind}},
		input: c.buf,
	}
}

// Take consumes and returns exactly n bytes, or fails with KindNeedMore.
func (c *Cursor) Take(n int) ([]byte, error) {
	if n < 0 {
		panic("parse: negative Take length")
	}
	if c.Len() < n {
		return nil, c.fail(KindNeedMore)
	}
	b := c.buf[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

// U8 consumes one byte.
func (c *Cursor) U8() (uint8, error) {
	b, err := c.Take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// BEU16 consumes two bytes as a big-endian uint16, the byte order used by
// Ethernet/IP/TCP/UDP/ICMP/ARP.
func (c *Cursor) BEU16() (uint16, error) {
	b, err := c.Take(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

// BEU32 consumes four bytes as a big-endian uint32.
func (c *Cursor) BEU32() (uint32, error) {
	b, err := c.Take(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// BEU64 consumes eight bytes as a big-endian uint64.
func (c *Cursor) BEU64() (uint64, error) {
	b, err := c.Take(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

// LEU16 consumes two bytes as a little-endian uint16. RadioTap, 802.11
// duration/sequence-control/FCS, and management-body scalar fields are
// little-endian.
func (c *Cursor) LEU16() (uint16, error) {
	b, err := c.Take(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// LEU32 consumes four bytes as a little-endian uint32.
func (c *Cursor) LEU32() (uint32, error) {
	b, err := c.Take(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// LEU64 consumes eight bytes as a little-endian uint64.
func (c *Cursor) LEU64() (uint64, error) {
	b, err := c.Take(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// Context runs p and, on failure, pushes label and the cursor position at
// which p was entered onto the returned error's chain before propagating it. On
// success it returns p's result unchanged. Wrapping every protocol
// boundary this way turns a failure chain into a readable protocol trace.
func Context[T any](c *Cursor, label string, p func(*Cursor) (T, error)) (T, error) {
	startPos := c.pos
	v, err := p(c)
	if err != nil {
		pe := asError(err, startPos, c.buf)
		pe.chain = append(pe.chain, frame{pos: startPos, kind: KindCustom, label: label})
		return v, pe
	}
	return v, nil
}

// Many0 repeats p until the cursor is empty or p fails; it never itself
// fails — a failing p simply ends the repetition, and the cursor is
// rewound to where the failed attempt began so a partial read never
// leaks. A p that succeeds without consuming input also ends the
// repetition, so Many0 always terminates.
func Many0[T any](c *Cursor, p func(*Cursor) (T, error)) []T {
	var out []T
	for c.Len() > 0 {
		start := c.pos
		v, err := p(c)
		if err != nil {
			c.pos = start
			break
		}
		out = append(out, v)
		if c.pos == start {
			break
		}
	}
	return out
}
