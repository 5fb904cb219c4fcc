// Package udp decodes UDP datagrams (RFC 768): a fixed 8-byte header
// followed by a payload made of every byte left in the input. The caller
// (an IPv4/IPv6 decoder) bounds that input to the datagram.
package udp

import (
	"errors"

	"github.com/markrepedersen/netparser/common"
	"github.com/markrepedersen/netparser/parse"
)

const headerSize = 8

var errShortLength = errors.New("UDP length field shorter than header")

// Datagram is a fully-decoded UDP datagram.
type Datagram struct {
	SourcePort      uint16
	DestinationPort uint16
	Length          uint16
	Checksum        uint16
	Payload         common.Blob
}

// Decode reads a UDP datagram from c. Everything c has left after the
// 8-byte header becomes Payload; the wire Length field is reported as read
// and does not bound the payload. A Length below the header size fails the
// decode.
func Decode(c *parse.Cursor) (Datagram, error) {
	return parse.Context(c, "UDP datagram", func(c *parse.Cursor) (Datagram, error) {
		var d Datagram
		var err error
		d.SourcePort, err = c.BEU16()
		if err != nil {
			return d, err
		}
		d.DestinationPort, err = c.BEU16()
		if err != nil {
			return d, err
		}
		d.Length, err = c.BEU16()
		if err != nil {
			return d, err
		}
		d.Checksum, err = c.BEU16()
		if err != nil {
			return d, err
		}
		if d.Length < headerSize {
			return d, errShortLength
		}
		payload := c.Remaining()
		if _, err := c.Take(len(payload)); err != nil {
			return d, err
		}
		d.Payload = common.NewBlob(payload)
		return d, nil
	})
}
