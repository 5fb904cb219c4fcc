package parse

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Kind classifies the low-level reason a parser failed. See [Error].
type Kind uint8

const (
	_ Kind = iota
	// KindNeedMore means the cursor ran out of input before a fixed-size
	// read could complete.
	KindNeedMore
	// KindTagMismatch means an expected constant byte sequence was not
	// found. Reserved for parsers that check magic/tag bytes.
	KindTagMismatch
	// KindNumericOverflow means a narrow-width integer constructor was
	// given a value wider than its declared bit width.
	KindNumericOverflow
	// KindUnaligned means a bit-cursor exited [Cursor.Bits] without
	// having consumed a whole number of bytes.
	KindUnaligned
	// KindCustom is a named context frame pushed by [Context]. It carries
	// no independent meaning beyond the label it's pushed with.
	KindCustom
)

func (k Kind) String() string {
	switch k {
	case KindNeedMore:
		return "need more input"
	case KindTagMismatch:
		return "tag mismatch"
	case KindNumericOverflow:
		return "numeric overflow"
	case KindUnaligned:
		return "unaligned bit-cursor exit"
	case KindCustom:
		return "context"
	default:
		return "unknown error kind"
	}
}

// frame is one entry in an [Error]'s chain: the cursor offset at which a
// parser was entered or failed, and why.
type frame struct {
	pos   int
	kind  Kind
	label string // populated for KindCustom
}

// Error is the parse-failure value threaded back up through the decoder.
// It owns an explicit, newest-first chain of [frame]s: the innermost
// (lowest-level) failure is pushed first, and each enclosing [Context]
// call pushes its label on top as the failure unwinds. Rendering walks the
// chain in that push order, so it reads innermost-first, outermost-last.
type Error struct {
	chain []frame
	// input is the byte slice the innermost cursor was parsing when the
	// failure occurred, captured once so Render can show a hex window.
	input []byte
}

// Error implements the error interface with a compact one-line summary:
// the innermost failure kind followed by each context label, outermost
// last.
func (e *Error) Error() string {
	if len(e.chain) == 0 {
		return "parse error"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s at offset %d", e.chain[0].kind, e.chain[0].pos)
	for _, f := range e.chain[1:] {
		if f.kind == KindCustom {
			fmt.Fprintf(&b, ": %s (offset %d)", f.label, f.pos)
		} else {
			fmt.Fprintf(&b, ": %s (offset %d)", f.kind, f.pos)
		}
	}
	return b.String()
}

// Chain returns the ordered (position, label) pairs of the failure, newest
// (innermost) first. The label is either a [Kind].String() or, for context
// frames, the label passed to [Context].
func (e *Error) Chain() []string {
	out := make([]string, len(e.chain))
	for i, f := range e.chain {
		if f.kind == KindCustom {
			out[i] = fmt.Sprintf("%s @%d", f.label, f.pos)
		} else {
			out[i] = fmt.Sprintf("%s @%d", f.kind, f.pos)
		}
	}
	return out
}

// Render produces a diagnostic rendering of the failure: for each context
// frame, the failing offset, a ±30 byte hex window around it, and a caret
// marking the unread portion from that offset to the end of the window.
func (e *Error) Render() string {
	var b strings.Builder
	b.WriteString(e.Error())
	b.WriteString("\n")
	for _, f := range e.chain {
		lo := f.pos - 30
		if lo < 0 {
			lo = 0
		}
		hi := f.pos + 30
		if hi > len(e.input) {
			hi = len(e.input)
		}
		window := e.input[lo:hi]
		label := f.kind.String()
		if f.kind == KindCustom {
			label = f.label
		}
		fmt.Fprintf(&b, "  %s @%d:\n", label, f.pos)
		fmt.Fprintf(&b, "    %s\n", hex.EncodeToString(window))
		caretPos := (f.pos - lo) * 2
		if caretPos < 0 {
			caretPos = 0
		}
		fmt.Fprintf(&b, "    %s%s\n", strings.Repeat(" ", caretPos), strings.Repeat("^", 2*(hi-f.pos)))
	}
	return b.String()
}

// asError converts err into *Error, wrapping it fresh if it isn't already
// one (defensive: every failure inside this package is created via fail or
// pushed via Context, but a caller-supplied predicate function in Many0 or
// a hand-written decoder might return a plain error).
func asError(err error, pos int, input []byte) *Error {
	if pe, ok := err.(*Error); ok {
		return pe
	}
	return &Error{
		chain: []frame{{pos: pos, kind: KindCustom, label: err.Error()}},
		input: input,
	}
}
