// Package ipv6 decodes the fixed 40-byte IPv6 header (RFC 8200) and
// dispatches to the layer-4 decoder named by NextHeader. Extension header
// chains are not walked; only the fixed header is interpreted.
package ipv6

import (
	"github.com/markrepedersen/netparser/common"
	"github.com/markrepedersen/netparser/icmp"
	"github.com/markrepedersen/netparser/ipv4"
	"github.com/markrepedersen/netparser/parse"
	"github.com/markrepedersen/netparser/tcp"
	"github.com/markrepedersen/netparser/udp"
	"github.com/markrepedersen/netparser/width"
)

// L4Payload reuses ipv4's tagged layer-4 payload shape — IPv4 and IPv6
// both dispatch into the same TCP/UDP/ICMP decoders (common.IPProto
// doubles as IPv6's Next Header field), so there is no reason for two
// distinct tagged-union types. TCP and UDP use the same protocol numbers
// in both; the ICMP decoder is selected by 1 in IPv4 and by 58 here.
type L4Payload = ipv4.L4Payload

func decodeL4(c *parse.Cursor, proto common.IPProto) (L4Payload, error) {
	var out L4Payload
	switch proto {
	case common.IPProtoTCP:
		p, err := tcp.Decode(c)
		if err != nil {
			return out, err
		}
		out.Kind = ipv4.L4TCP
		out.TCP = &p
	case common.IPProtoUDP:
		d, err := udp.Decode(c)
		if err != nil {
			return out, err
		}
		out.Kind = ipv4.L4UDP
		out.UDP = &d
	case common.IPProtoIPv6ICMP:
		p, err := icmp.Decode(c)
		if err != nil {
			return out, err
		}
		out.Kind = ipv4.L4ICMP
		out.ICMP = &p
	default:
		rest := c.Remaining()
		if _, err := c.Take(len(rest)); err != nil {
			return out, err
		}
		out.Kind = ipv4.L4Unknown
		out.Unknown = common.NewBlob(rest)
	}
	return out, nil
}

// Packet is a fully-decoded IPv6 fixed header plus its layer-4 payload.
type Packet struct {
	Version       width.U4
	TrafficClass  uint8
	FlowLabel     width.U20
	PayloadLength uint16
	NextHeader    common.IPProto
	HopLimit      uint8
	Source        common.IPv6Addr
	Destination   common.IPv6Addr
	Payload       L4Payload
}

// Decode reads an IPv6 packet from c.
func Decode(c *parse.Cursor) (Packet, error) {
	return parse.Context(c, "IPv6 packet", func(c *parse.Cursor) (Packet, error) {
		var p Packet
		var err error
		err = c.Bits(4, func(bc *parse.BitCursor) error {
			version, err := bc.Bits(4)
			if err != nil {
				return err
			}
			tc, err := bc.Bits(8)
			if err != nil {
				return err
			}
			flow, err := bc.Bits(20)
			if err != nil {
				return err
			}
			p.Version = width.NewU4(uint8(version))
			p.TrafficClass = uint8(tc)
			p.FlowLabel = width.NewU20(uint32(flow))
			return nil
		})
		if err != nil {
			return p, err
		}
		if p.PayloadLength, err = c.BEU16(); err != nil {
			return p, err
		}
		nextHeader, err := c.U8()
		if err != nil {
			return p, err
		}
		p.NextHeader = common.IPProto(nextHeader)
		if p.HopLimit, err = c.U8(); err != nil {
			return p, err
		}
		srcBytes, err := c.Take(16)
		if err != nil {
			return p, err
		}
		copy(p.Source[:], srcBytes)
		dstBytes, err := c.Take(16)
		if err != nil {
			return p, err
		}
		copy(p.Destination[:], dstBytes)

		payloadBytes, err := c.Take(int(p.PayloadLength))
		if err != nil {
			return p, err
		}
		payloadCursor := parse.NewCursor(payloadBytes)
		p.Payload, err = decodeL4(payloadCursor, p.NextHeader)
		if err != nil {
			return p, err
		}
		return p, nil
	})
}
