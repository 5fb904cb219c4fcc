// Package radiotap decodes the RadioTap v0 capture-metadata preamble that
// precedes 802.11 frames on linktype 127 (DLT_IEEE802_11_RADIO): a fixed
// 8-byte header naming its own total length, which is authoritative. Any
// per-radio extension fields between the fixed header and that length are
// skipped unparsed.
package radiotap

import (
	"errors"

	"github.com/markrepedersen/netparser/parse"
)

const fixedHeaderSize = 8

var errShortItLen = errors.New("RadioTap it_len shorter than the fixed 8-byte header")

// Header is the decoded RadioTap preamble. ItPresent is the raw 32-bit
// presence bitmask; the individual radio fields it announces are not
// interpreted.
type Header struct {
	Version   uint8
	Pad       uint8
	ItLen     uint16
	ItPresent uint32
}

// Decode reads a RadioTap header from c, then advances c past it_len bytes
// from the position Decode was entered at — it_len is authoritative over
// the fixed header's own declared size.
func Decode(c *parse.Cursor) (Header, error) {
	return parse.Context(c, "RadioTap header", func(c *parse.Cursor) (Header, error) {
		var h Header
		startPos := c.Pos()
		var err error
		if h.Version, err = c.U8(); err != nil {
			return h, err
		}
		if h.Pad, err = c.U8(); err != nil {
			return h, err
		}
		if h.ItLen, err = c.LEU16(); err != nil {
			return h, err
		}
		if h.ItPresent, err = c.LEU32(); err != nil {
			return h, err
		}
		if int(h.ItLen) < fixedHeaderSize {
			return h, errShortItLen
		}
		skipTo := startPos + int(h.ItLen)
		alreadyConsumed := c.Pos()
		extra := skipTo - alreadyConsumed
		if extra > 0 {
			if _, err := c.Take(extra); err != nil {
				return h, err
			}
		}
		return h, nil
	})
}
