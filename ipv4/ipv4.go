// Package ipv4 decodes IPv4 headers (RFC 791) and dispatches the payload
// to the layer-4 decoder its Protocol field names. A recognised protocol
// whose payload fails to parse surfaces that failure rather than
// degrading to Unknown.
package ipv4

import (
	"errors"
	"fmt"

	"github.com/markrepedersen/netparser/common"
	"github.com/markrepedersen/netparser/icmp"
	"github.com/markrepedersen/netparser/parse"
	"github.com/markrepedersen/netparser/tcp"
	"github.com/markrepedersen/netparser/udp"
	"github.com/markrepedersen/netparser/width"
)

// L4Kind tags which decoded variant L4Payload carries.
type L4Kind uint8

const (
	L4TCP L4Kind = iota
	L4UDP
	L4ICMP
	L4Unknown
)

// L4Payload is the layer-4 payload variant an IPv4/IPv6 packet carries,
// tagged by the IP protocol number.
type L4Payload struct {
	Kind L4Kind
	TCP  *tcp.Packet
	UDP  *udp.Datagram
	ICMP *icmp.Packet
	// Unknown holds the raw bytes when Kind == L4Unknown.
	Unknown common.Blob
}

func decodeL4(c *parse.Cursor, proto common.IPProto) (L4Payload, error) {
	var out L4Payload
	switch proto {
	case common.IPProtoTCP:
		p, err := tcp.Decode(c)
		if err != nil {
			return out, err
		}
		out.Kind = L4TCP
		out.TCP = &p
	case common.IPProtoUDP:
		d, err := udp.Decode(c)
		if err != nil {
			return out, err
		}
		out.Kind = L4UDP
		out.UDP = &d
	case common.IPProtoICMP:
		p, err := icmp.Decode(c)
		if err != nil {
			return out, err
		}
		out.Kind = L4ICMP
		out.ICMP = &p
	default:
		rest := c.Remaining()
		if _, err := c.Take(len(rest)); err != nil {
			return out, err
		}
		out.Kind = L4Unknown
		out.Unknown = common.NewBlob(rest)
	}
	return out, nil
}

// Packet is a fully-decoded IPv4 header plus its layer-4 payload.
type Packet struct {
	Version        width.U4
	IHL            width.U4
	DSCP           width.U6
	ECN            width.U2
	TotalLength    uint16
	Identification uint16
	Flags          width.U3
	FragmentOffset width.U13
	TTL            uint8
	Protocol       common.IPProto
	Checksum       uint16
	Source         common.IPv4Addr
	Destination    common.IPv4Addr
	Payload        L4Payload
}

var (
	errShortIHL = errors.New("IPv4 IHL below minimum header size of 5 words")
)

// Decode reads an IPv4 packet from c. The option area ((IHL-5)*4 bytes)
// is consumed and discarded explicitly before the payload is handed to
// the layer-4 decoder, so a non-default IHL never misaligns layer 4.
func Decode(c *parse.Cursor) (Packet, error) {
	return parse.Context(c, "IPv4 packet", func(c *parse.Cursor) (Packet, error) {
		var p Packet
		versionIHL, err := c.U8()
		if err != nil {
			return p, err
		}
		p.Version = width.NewU4(versionIHL >> 4)
		p.IHL = width.NewU4(versionIHL)
		tosByte, err := c.U8()
		if err != nil {
			return p, err
		}
		p.DSCP = width.NewU6(tosByte >> 2)
		p.ECN = width.NewU2(tosByte)
		if p.TotalLength, err = c.BEU16(); err != nil {
			return p, err
		}
		if p.Identification, err = c.BEU16(); err != nil {
			return p, err
		}
		flagsFrag, err := c.BEU16()
		if err != nil {
			return p, err
		}
		p.Flags = width.NewU3(uint8(flagsFrag >> 13))
		p.FragmentOffset = width.NewU13(flagsFrag)
		if p.TTL, err = c.U8(); err != nil {
			return p, err
		}
		protoByte, err := c.U8()
		if err != nil {
			return p, err
		}
		p.Protocol = common.IPProto(protoByte)
		if p.Checksum, err = c.BEU16(); err != nil {
			return p, err
		}
		srcBytes, err := c.Take(4)
		if err != nil {
			return p, err
		}
		copy(p.Source[:], srcBytes)
		dstBytes, err := c.Take(4)
		if err != nil {
			return p, err
		}
		copy(p.Destination[:], dstBytes)

		ihl := int(p.IHL.Uint8())
		if ihl < 5 {
			return p, errShortIHL
		}
		optionBytes := (ihl - 5) * 4
		if optionBytes > 0 {
			if _, err := c.Take(optionBytes); err != nil {
				return p, err
			}
		}

		// TotalLength bounds the packet (header + payload); hand the
		// layer-4 decoder only what's claimed.
		totalConsumedSoFar := ihl * 4
		payloadLen := int(p.TotalLength) - totalConsumedSoFar
		if payloadLen < 0 {
			return p, fmt.Errorf("IPv4 total length %d shorter than header %d", p.TotalLength, totalConsumedSoFar)
		}
		payloadBytes, err := c.Take(payloadLen)
		if err != nil {
			return p, err
		}
		payloadCursor := parse.NewCursor(payloadBytes)
		p.Payload, err = decodeL4(payloadCursor, p.Protocol)
		if err != nil {
			return p, err
		}
		return p, nil
	})
}
